package ports

import (
	"io"
	"time"
)

// Renderer is the abstraction for progress output.
// It decouples the build loop from presentation.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// OnPlanEmit is called once with every package that is about to be built, in build order.
	OnPlanEmit(deps []string)

	// OnBuildStart is called when a package build begins.
	OnBuildStart(dep string, startTime time.Time)

	// OnBuildComplete is called when a package build finishes.
	// err is nil if the build succeeded.
	OnBuildComplete(dep string, endTime time.Time, err error)

	// OnFinish is called after the last package was built successfully.
	OnFinish()

	// Stdout is where the output of build commands is streamed.
	Stdout() io.Writer

	// Stderr is where the error output of build commands is streamed.
	Stderr() io.Writer
}
