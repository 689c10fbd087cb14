// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/depbuild/internal/ui/style"
)

// Renderer implements ports.Renderer by printing one progress line per event to stderr.
// Build output is passed through to stdout and stderr unchanged.
type Renderer struct {
	stdout io.Writer
	stderr io.Writer

	mu      sync.Mutex
	started map[string]time.Time

	label   lipgloss.Style
	success lipgloss.Style
	failure lipgloss.Style
	faint   lipgloss.Style
}

var _ ports.Renderer = (*Renderer)(nil)

// NewRenderer creates a new Renderer. Nil writers default to os.Stdout and os.Stderr.
func NewRenderer(stdout, stderr io.Writer) *Renderer {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	profile := colorProfile()
	lg := lipgloss.NewRenderer(stderr, termenv.WithProfile(profile))
	// Progress output is usually piped in CI, so the profile is not detected from the writer.
	lg.SetColorProfile(profile)

	return &Renderer{
		stdout:  stdout,
		stderr:  stderr,
		started: make(map[string]time.Time),
		label:   lg.NewStyle().Bold(true),
		success: lg.NewStyle().Foreground(style.Green),
		failure: lg.NewStyle().Foreground(style.Red),
		faint:   lg.NewStyle().Foreground(style.Slate),
	}
}

// colorProfile returns the color profile based on environment.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// Stdout returns the writer build output is streamed to.
func (r *Renderer) Stdout() io.Writer {
	return r.stdout
}

// Stderr returns the writer build error output is streamed to.
func (r *Renderer) Stderr() io.Writer {
	return r.stderr
}

// OnPlanEmit announces the start of the run.
func (r *Renderer) OnPlanEmit(deps []string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	noun := "packages"
	if len(deps) == 1 {
		noun = "package"
	}
	r.printf("Start building packages %s\n", r.faint.Render(fmt.Sprintf("(%d %s)", len(deps), noun)))
}

// OnBuildStart prints which package is being built.
func (r *Renderer) OnBuildStart(dep string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started[dep] = startTime
	r.printf("Building package: %s\n", r.label.Render(dep))
}

// OnBuildComplete prints the outcome of a package build with its duration.
func (r *Renderer) OnBuildComplete(dep string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var duration time.Duration
	if start, ok := r.started[dep]; ok {
		duration = endTime.Sub(start).Round(time.Millisecond)
		delete(r.started, dep)
	}

	if err != nil {
		r.printf("%s %s %s\n", r.failure.Render(style.Cross), dep, r.faint.Render(fmt.Sprintf("failed after %v", duration)))
		return
	}
	r.printf("%s %s %s\n", r.success.Render(style.Check), dep, r.faint.Render(fmt.Sprintf("(%v)", duration)))
}

// OnFinish prints the closing line.
func (r *Renderer) OnFinish() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.printf("Finished\n")
}

// printf writes to stderr. Must be called with r.mu held.
func (r *Renderer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.stderr, format, args...)
}
