package progrock

import (
	"bytes"
	"strings"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/extrepo/internal/core/domain"
	"go.trai.ch/extrepo/internal/core/ports"
)

var _ progrock.Writer = (*LogWriter)(nil)

// LogWriter is a progrock.Writer that reports vertex activity through a ports.Logger.
// Vertex log lines are forwarded by level with the vertex name as prefix. Error lines are dropped
// because the failing operation returns the error to its caller.
type LogWriter struct {
	logger ports.Logger

	mu      sync.Mutex
	names   map[string]string
	pending map[string][]byte
	cached  map[string]bool
}

// NewLogWriter creates a LogWriter reporting to logger.
func NewLogWriter(logger ports.Logger) *LogWriter {
	return &LogWriter{
		logger:  logger,
		names:   make(map[string]string),
		pending: make(map[string][]byte),
		cached:  make(map[string]bool),
	}
}

// WriteStatus forwards the complete log lines and cache hits of the update.
func (w *LogWriter) WriteStatus(u *progrock.StatusUpdate) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, v := range u.Vertexes {
		if v.Name != "" {
			w.names[v.Id] = v.Name
		}
		if v.Cached && !w.cached[v.Id] {
			w.cached[v.Id] = true
			w.logger.Info(w.names[v.Id] + ": unchanged, copy skipped")
		}
	}

	for _, l := range u.Logs {
		buf := append(w.pending[l.Vertex], l.Data...)
		for {
			i := bytes.IndexByte(buf, '\n')
			if i < 0 {
				break
			}
			w.emit(l.Vertex, string(buf[:i]))
			buf = buf[i+1:]
		}
		w.pending[l.Vertex] = buf
	}

	for _, v := range u.Vertexes {
		if v.Completed != nil {
			w.flush(v.Id)
		}
	}
	return nil
}

// Close emits any partial lines still buffered.
func (w *LogWriter) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for id := range w.pending {
		w.flush(id)
	}
	return nil
}

func (w *LogWriter) flush(id string) {
	if rest := w.pending[id]; len(rest) > 0 {
		w.emit(id, string(rest))
	}
	delete(w.pending, id)
}

func (w *LogWriter) emit(id, line string) {
	name := w.names[id]
	switch {
	case strings.HasPrefix(line, levelTag(domain.LogLevelWarn)):
		w.logger.Warn(name + ": " + strings.TrimPrefix(line, levelTag(domain.LogLevelWarn)))
	case strings.HasPrefix(line, levelTag(domain.LogLevelError)):
		// Returned to the caller.
	case strings.HasPrefix(line, levelTag(domain.LogLevelInfo)):
		w.logger.Info(name + ": " + strings.TrimPrefix(line, levelTag(domain.LogLevelInfo)))
	default:
		w.logger.Info(name + ": " + line)
	}
}

func levelTag(level domain.LogLevel) string {
	return "[" + level.String() + "] "
}
