package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wxpack/internal/adapters/logger"
	"go.trai.ch/wxpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	originalStderr := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w
	defer func() { os.Stderr = originalStderr }()

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	require.NoError(t, w.Close())
	output := <-done
	require.NoError(t, r.Close())
	return output
}

func TestNew_WritesToStderr(t *testing.T) {
	output := captureStderr(t, func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("assembled pipeline")
	})

	assert.Contains(t, output, "assembled pipeline")
	assert.Contains(t, output, "INFO")
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name  string
		log   func(l *logger.Logger)
		level string
		text  string
	}{
		{
			name:  "info",
			log:   func(l *logger.Logger) { l.Info("some message") },
			level: "INFO",
			text:  "some message",
		},
		{
			name:  "warn",
			log:   func(l *logger.Logger) { l.Warn("extension .wxss claimed by style and passthrough") },
			level: "WARN",
			text:  "claimed by style and passthrough",
		},
		{
			name:  "error",
			log:   func(l *logger.Logger) { l.Error(os.ErrPermission) },
			level: "ERROR",
			text:  "permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewWithOutput(&buf))

			assert.Contains(t, buf.String(), tt.level)
			assert.Contains(t, buf.String(), tt.text)
		})
	}
}

func TestLogger_ErrorIncludesMetadata(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithOutput(&buf)

	lg.Error(zerr.With(zerr.Wrap(domain.ErrMissingEnvironmentProfile, "cannot load profile payload"), "profile", "prod"))

	out := buf.String()
	assert.Contains(t, out, "cannot load profile payload")
	assert.Contains(t, out, "prod")
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithOutput(&first)

	lg.Info("before")
	lg.SetOutput(&second)
	lg.Info("after")

	assert.True(t, strings.Contains(first.String(), "before"))
	assert.False(t, strings.Contains(first.String(), "after"))
	assert.Contains(t, second.String(), "after")
}
