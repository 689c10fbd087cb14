// Package shell provides the shell executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

var _ ports.Executor = (*Executor)(nil)

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs cmd with the parent environment forwarded and cmd.Environment applied on top.
// Output goes to stdout and stderr. A nil writer sends that stream to the logger line by line.
func (e *Executor) Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error {
	if cmd == nil || cmd.Name == "" {
		return nil
	}

	env := resolveEnvironment(os.Environ(), cmd.Environment)

	executable := cmd.Name
	if !filepath.IsAbs(cmd.Name) {
		if lp, err := lookPath(cmd.Name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args...) //nolint:gosec // command assembled from config
	// Keep the name as invoked rather than the resolved path.
	c.Args[0] = cmd.Name
	c.Dir = cmd.Dir
	c.Env = env

	if stdout == nil {
		w := &logWriter{logger: e.logger, level: "info"}
		defer func() { _ = w.Close() }()
		stdout = w
	}
	if stderr == nil {
		// Cargo reports progress on stderr, so its lines are warnings rather than errors.
		w := &logWriter{logger: e.logger, level: "warn"}
		defer func() { _ = w.Close() }()
		stderr = w
	}
	c.Stdout = stdout
	c.Stderr = stderr

	if err := c.Run(); err != nil {
		wrapped := zerr.With(zerr.Wrap(err, domain.ErrCommandFailed.Error()), "command", strings.Join(cmd.Argv(), " "))

		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return zerr.With(wrapped, "exit_code", -1)
		}
		wrapped = zerr.With(wrapped, "exit_code", exitErr.ExitCode())
		if !exitErr.Exited() {
			// Terminated by a signal; the state reads like "signal: killed".
			wrapped = zerr.With(wrapped, "signal", exitErr.String())
		}
		return wrapped
	}

	return nil
}

// logWriter forwards complete lines to the logger and buffers partial ones.
type logWriter struct {
	logger ports.Logger
	level  string
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Close flushes a trailing line that had no newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimSuffix(string(line), "\r")
	switch w.level {
	case "warn":
		w.logger.Warn(msg)
	default:
		w.logger.Info(msg)
	}
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH entry of env.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
