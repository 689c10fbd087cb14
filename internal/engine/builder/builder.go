// Package builder runs `cargo build -p` for each resolved dependency, one at a time.
package builder

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackageStatus is the build status of one entry of the plan.
type PackageStatus struct {
	Dependency domain.ResolvedDependency
	Status     domain.BuildStatus
}

// Builder builds resolved dependencies sequentially, in plan order.
type Builder struct {
	executor  ports.Executor
	renderer  ports.Renderer
	telemetry ports.Telemetry

	mu       sync.RWMutex
	statuses []PackageStatus
}

// NewBuilder creates a new Builder.
func NewBuilder(executor ports.Executor, renderer ports.Renderer, telemetry ports.Telemetry) *Builder {
	return &Builder{
		executor:  executor,
		renderer:  renderer,
		telemetry: telemetry,
	}
}

// Run builds every dependency in order. It stops at the first failure, returning an error
// that matches domain.ErrBuildFailed, and leaves the remaining entries pending.
// A cancelled context stops the run before the next build starts.
// When opts.Journal is set, the telemetry journal is opened before anything is built.
func (b *Builder) Run(ctx context.Context, deps []domain.ResolvedDependency, opts domain.BuildOptions) error {
	b.initStatuses(deps)

	if opts.Journal != "" {
		if err := b.telemetry.Journal(opts.Journal); err != nil {
			return err
		}
	}

	b.renderer.OnPlanEmit(domain.IDs(deps))

	for i, dep := range deps {
		if err := ctx.Err(); err != nil {
			return zerr.With(zerr.Wrap(err, "build canceled"), "package", dep.String())
		}

		b.updateStatus(i, domain.BuildStatusRunning)
		if err := b.build(ctx, dep, opts); err != nil {
			b.updateStatus(i, domain.BuildStatusFailed)
			return errors.Join(domain.ErrBuildFailed, zerr.With(err, "package", dep.String()))
		}
		b.updateStatus(i, domain.BuildStatusCompleted)
	}

	b.renderer.OnFinish()
	return nil
}

func (b *Builder) build(ctx context.Context, dep domain.ResolvedDependency, opts domain.BuildOptions) error {
	ctx, vertex := b.telemetry.Record(ctx, dep.String())

	cmd := domain.NewBuildCommand(opts, dep)
	vertex.Log(domain.LogLevelInfo, strings.Join(cmd.Argv(), " "))

	b.renderer.OnBuildStart(dep.String(), time.Now())

	err := b.executor.Execute(
		ctx,
		cmd,
		io.MultiWriter(b.renderer.Stdout(), vertex.Stdout()),
		io.MultiWriter(b.renderer.Stderr(), vertex.Stderr()),
	)

	vertex.Complete(err)
	b.renderer.OnBuildComplete(dep.String(), time.Now(), err)
	return err
}

// initStatuses resets the plan, marking every entry pending.
func (b *Builder) initStatuses(deps []domain.ResolvedDependency) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.statuses = make([]PackageStatus, len(deps))
	for i, dep := range deps {
		b.statuses[i] = PackageStatus{Dependency: dep, Status: domain.BuildStatusPending}
	}
}

func (b *Builder) updateStatus(i int, status domain.BuildStatus) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[i].Status = status
}

// Statuses returns the status of every entry of the last plan, in plan order.
func (b *Builder) Statuses() []PackageStatus {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]PackageStatus, len(b.statuses))
	copy(out, b.statuses)
	return out
}
