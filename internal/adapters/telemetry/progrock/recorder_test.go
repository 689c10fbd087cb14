package progrock_test

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	vprogrock "github.com/vito/progrock"
	"go.trai.ch/depbuild/internal/adapters/telemetry/progrock"
	"go.trai.ch/depbuild/internal/core/domain"
	"go.trai.ch/zerr"
)

// tapeWriter collects every status update written by the recorder.
type tapeWriter struct {
	mu      sync.Mutex
	updates []*vprogrock.StatusUpdate
	closed  bool
}

func (w *tapeWriter) WriteStatus(u *vprogrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.updates = append(w.updates, u)
	return nil
}

func (w *tapeWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
	return nil
}

func (w *tapeWriter) vertices(name string) map[string]*vprogrock.Vertex {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make(map[string]*vprogrock.Vertex)
	for _, u := range w.updates {
		for _, v := range u.Vertexes {
			if v.Name == name {
				out[v.Id] = v
			}
		}
	}
	return out
}

func (w *tapeWriter) logs() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	var sb strings.Builder
	for _, u := range w.updates {
		for _, l := range u.Logs {
			sb.Write(l.Data)
		}
	}
	return sb.String()
}

func TestNew(t *testing.T) {
	recorder := progrock.New()
	require.NotNil(t, recorder)

	_, vertex := recorder.Record(context.Background(), "serde:1.0.0")
	_, err := io.WriteString(vertex.Stdout(), "   Compiling serde v1.0.0\n")
	require.NoError(t, err)
	vertex.Log(domain.LogLevelDebug, "debug msg")
	vertex.Complete(nil)

	assert.NoError(t, recorder.Close())
}

func TestRecorder_Vertices(t *testing.T) {
	tape := &tapeWriter{}
	recorder := progrock.NewRecorder(tape)

	_, ok := recorder.Record(context.Background(), "clap:2.33.1")
	_, _ = io.WriteString(ok.Stdout(), "built clap\n")
	ok.Log(domain.LogLevelError, "something odd")
	ok.Complete(nil)

	_, failed := recorder.Record(context.Background(), "toml:0.5.6")
	failed.Complete(errors.New("exit status 101"))

	clap := tape.vertices("clap:2.33.1")
	require.Len(t, clap, 1)
	for _, v := range clap {
		assert.Nil(t, v.Error)
	}

	toml := tape.vertices("toml:0.5.6")
	require.Len(t, toml, 1)
	for _, v := range toml {
		require.NotNil(t, v.Error)
		assert.Equal(t, "exit status 101", *v.Error)
	}

	logs := tape.logs()
	assert.Contains(t, logs, "built clap")
	assert.Contains(t, logs, "[ERROR] something odd")

	require.NoError(t, recorder.Close())
	assert.True(t, tape.closed)
}

func TestRecorder_RepeatedNamesGetDistinctVertices(t *testing.T) {
	tape := &tapeWriter{}
	recorder := progrock.NewRecorder(tape)

	for range 2 {
		_, v := recorder.Record(context.Background(), "a:1")
		v.Complete(nil)
	}

	assert.Len(t, tape.vertices("a:1"), 2)
}

// journalLine is the subset of a journaled status update the tests inspect.
type journalLine struct {
	Vertexes []struct {
		ID    string  `json:"id"`
		Name  string  `json:"name"`
		Error *string `json:"error"`
	} `json:"vertexes"`
	Logs []struct {
		Vertex string `json:"vertex"`
		Data   []byte `json:"data"`
	} `json:"logs"`
}

func readJournal(t *testing.T, path string) []journalLine {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	var lines []journalLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var line journalLine
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		lines = append(lines, line)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestRecorder_Journal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build.jsonl")
	recorder := progrock.New()
	require.NoError(t, recorder.Journal(path))

	_, ok := recorder.Record(context.Background(), "clap:2.33.1")
	_, _ = io.WriteString(ok.Stdout(), "   Compiling clap v2.33.1\n")
	ok.Complete(nil)

	_, failed := recorder.Record(context.Background(), "toml:0.5.6")
	_, _ = io.WriteString(failed.Stderr(), "error: could not compile `toml`\n")
	failed.Complete(errors.New("exit status 101"))

	require.NoError(t, recorder.Close())

	names := make(map[string]*string)
	var logs strings.Builder
	for _, line := range readJournal(t, path) {
		for _, v := range line.Vertexes {
			names[v.Name] = v.Error
		}
		for _, l := range line.Logs {
			logs.Write(l.Data)
		}
	}

	require.Contains(t, names, "clap:2.33.1")
	assert.Nil(t, names["clap:2.33.1"])
	require.Contains(t, names, "toml:0.5.6")
	require.NotNil(t, names["toml:0.5.6"])
	assert.Equal(t, "exit status 101", *names["toml:0.5.6"])

	assert.Contains(t, logs.String(), "Compiling clap v2.33.1")
	assert.Contains(t, logs.String(), "could not compile `toml`")
}

func TestRecorder_Journal_KeepsCurrentWriter(t *testing.T) {
	tape := &tapeWriter{}
	path := filepath.Join(t.TempDir(), "build.jsonl")
	recorder := progrock.NewRecorder(tape)
	require.NoError(t, recorder.Journal(path))

	_, v := recorder.Record(context.Background(), "serde:1.0.0")
	v.Complete(nil)
	require.NoError(t, recorder.Close())

	assert.Len(t, tape.vertices("serde:1.0.0"), 1)
	assert.True(t, tape.closed)
	assert.NotEmpty(t, readJournal(t, path))
}

func TestRecorder_Journal_Error(t *testing.T) {
	recorder := progrock.New()
	path := filepath.Join(t.TempDir(), "missing", "build.jsonl")

	err := recorder.Journal(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open journal")

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, path, zErr.Metadata()["path"])
	require.NoError(t, recorder.Close())
}
