package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/extrepo/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		level string
		text  string
	}{
		{
			name:  "info",
			log:   func(l *logger.Logger) { l.Info("Processing: a.apk") },
			level: "level=INFO",
			text:  "Processing: a.apk",
		},
		{
			name:  "warn",
			log:   func(l *logger.Logger) { l.Warn("aapt not found") },
			level: "level=WARN",
			text:  "aapt not found",
		},
		{
			name:  "error",
			log:   func(l *logger.Logger) { l.Error(os.ErrPermission) },
			level: "level=ERROR",
			text:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := logger.NewWithWriter(&buf)

			tt.log(lg)

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, tt.text)
			assert.NotContains(t, out, "time=")
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)

	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.SetOutput(&second)
	lg.Info("moved")

	assert.Empty(t, first.String())
	assert.Contains(t, second.String(), "moved")
}

func TestFormatError(t *testing.T) {
	t.Run("plain error", func(t *testing.T) {
		assert.Equal(t, "Error: boom", logger.FormatError(errors.New("boom")))
	})

	t.Run("zerr chain", func(t *testing.T) {
		err := zerr.Wrap(zerr.Wrap(errors.New("exit status 1"), "command failed"), "failed to dump badging")
		assert.Equal(t,
			"Error: failed to dump badging\nCaused by:\n  -> command failed\n  -> exit status 1",
			logger.FormatError(err),
		)
	})

	t.Run("joined sentinel", func(t *testing.T) {
		sentinel := zerr.New("repository generation failed")
		err := errors.Join(sentinel, errors.New("disk full"))
		assert.Equal(t,
			"Error: repository generation failed\nCaused by:\n  -> disk full",
			logger.FormatError(err),
		)
	})
}
