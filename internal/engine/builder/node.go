package builder

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/depbuild/internal/adapters/linear"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depbuild/internal/adapters/shell"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depbuild/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/depbuild/internal/core/ports"
)

// NodeID is the unique identifier for the builder Graft node.
const NodeID graft.ID = "engine.builder"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			linear.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(executor, renderer, telemetry), nil
		},
	})
}
