// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/extrepo/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Output runs the command and returns its stdout.
// Stderr is forwarded to the logger line by line as warnings.
func (r *Runner) Output(ctx context.Context, name string, args []string) ([]byte, error) {
	var stdout bytes.Buffer
	stderr := &logWriter{logger: r.logger}

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool path is resolved by the locator
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stderr.Flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return nil, zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode), "command", name)
	}

	return stdout.Bytes(), nil
}

// logWriter buffers partial writes and logs complete lines.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs any trailing output that did not end with a newline.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	w.logger.Warn(line)
}
