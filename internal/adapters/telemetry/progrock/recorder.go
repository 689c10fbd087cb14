// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/depbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

// Recorder implements ports.Telemetry on top of a progrock recorder.
// Every call to Record opens a fresh vertex, even for repeated names.
type Recorder struct {
	mu  sync.RWMutex
	w   progrock.Writer
	rec *progrock.Recorder
	seq atomic.Uint64
}

var _ ports.Telemetry = (*Recorder)(nil)

// New creates a new Recorder that drops every update until a journal is attached.
func New() *Recorder {
	return NewRecorder(progrock.Discard{})
}

// NewRecorder creates a new Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Journal creates the file at path and records every later update into it as JSON lines,
// in addition to the current writer. Vertices started earlier keep their original writer.
func (r *Recorder) Journal(path string) error {
	journal, err := progrock.CreateJournal(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrJournalFailed.Error()), "path", path)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.w = progrock.MultiWriter{r.w, journal}
	r.rec = progrock.NewRecorder(r.w)
	return nil
}

// Record starts a vertex named after the unit of work.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	n := r.seq.Add(1)
	d := digest.FromString(strconv.FormatUint(n, 10) + "/" + name)

	r.mu.RLock()
	rec := r.rec
	r.mu.RUnlock()

	return ctx, &Vertex{vertex: rec.Vertex(d, name)}
}

// Close completes the root group and closes every writer, flushing the journal if any.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rec.Complete()
	return r.rec.Close()
}
