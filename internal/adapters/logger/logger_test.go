package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/depbuild/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	return lg, &buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Info("Start building packages")

	assert.Contains(t, buf.String(), "Start building packages")
	assert.Contains(t, buf.String(), "INFO")
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Warn("some warning")

	assert.Contains(t, buf.String(), "some warning")
	assert.Contains(t, buf.String(), "WARN")
}

func TestLogger_Error(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Error(os.ErrPermission)

	assert.Contains(t, buf.String(), "Error: permission denied")
	assert.Contains(t, buf.String(), "ERRO")
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newBufferedLogger()
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg := logger.New()
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "standard error",
			err:  errors.New("simple error"),
			want: "Error: simple error",
		},
		{
			name: "single zerr",
			err:  zerr.New("can't find dependencies"),
			want: "Error: can't find dependencies",
		},
		{
			name: "wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("no such file or directory"), "failed to read document"),
				"failed to load manifest",
			),
			want: "Error: failed to load manifest\n" +
				"\n" +
				"  Caused by:\n" +
				"    → failed to read document\n" +
				"    → no such file or directory",
		},
		{
			name: "metadata does not add links",
			err:  zerr.With(zerr.New("command failed"), "exit_code", 101),
			want: "Error: command failed",
		},
		{
			name: "multi-line messages are indented",
			err:  zerr.Wrap(errors.New("first\nsecond"), "outer"),
			want: "Error: outer\n" +
				"\n" +
				"  Caused by:\n" +
				"    → first\n" +
				"      second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatError(tt.err))
		})
	}
}
