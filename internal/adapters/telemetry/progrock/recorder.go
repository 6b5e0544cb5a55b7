// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/extrepo/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder

	mu   sync.Mutex
	seen map[string]int
}

// New creates a new Recorder reporting vertex activity through logger.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(NewLogWriter(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:    w,
		rec:  progrock.NewRecorder(w),
		seen: make(map[string]int),
	}
}

// Record starts a vertex named after the unit of work.
// Repeated names get distinct digests so each package keeps its own vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(r.digestFor(name), name)
	return ctx, &Vertex{vertex: v}
}

func (r *Recorder) digestFor(name string) digest.Digest {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := r.seen[name]
	r.seen[name] = n + 1
	if n == 0 {
		return digest.FromString(name)
	}
	return digest.FromString(name + "#" + strconv.Itoa(n))
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
