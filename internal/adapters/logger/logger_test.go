package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/tasker/internal/adapters/logger"
	"go.trai.ch/tasker/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name       string
		log        func(*logger.Logger)
		goldenName string
	}{
		{
			name:       "info",
			log:        func(l *logger.Logger) { l.Info("using data directory /home/me/.local/tasker") },
			goldenName: "info_basic",
		},
		{
			name:       "warn",
			log:        func(l *logger.Logger) { l.Warn("input closed before quit") },
			goldenName: "warn_basic",
		},
		{
			name: "error chain",
			log: func(l *logger.Logger) {
				err := zerr.Wrap(errors.New("disk full"), domain.ErrStoreWriteFailed.Error())
				l.Error(zerr.Wrap(err, "failed to save recurring tasks"))
			},
			goldenName: "error_chain",
		},
		{
			name: "error with metadata only wrapper",
			log: func(l *logger.Logger) {
				l.Error(zerr.With(errors.New("boom"), "task", "Standup"))
			},
			goldenName: "error_metadata",
		},
		{
			name: "multiline error",
			log: func(l *logger.Logger) {
				l.Error(zerr.Wrap(errors.New("line1\nline2"), "outer"))
			},
			goldenName: "error_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			tt.log(lg)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("bad"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"hello"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"error":"bad"`)
}

func TestLogger_SetOutputKeepsFormat(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	buf := &bytes.Buffer{}
	lg.SetOutput(buf)
	lg.Info("moved")

	assert.Contains(t, buf.String(), `"msg":"moved"`)
}

func TestLogger_SetFormat(t *testing.T) {
	lg, buf := newTestLogger(t)

	require.NoError(t, lg.SetFormat(domain.LogFormatJSON))
	lg.Info("structured")
	assert.Contains(t, buf.String(), `"msg":"structured"`)

	buf.Reset()
	require.NoError(t, lg.SetFormat(domain.LogFormatPretty))
	lg.Info("pretty")
	assert.Equal(t, "pretty\n", buf.String())

	err := lg.SetFormat("xml")
	assert.ErrorIs(t, err, domain.ErrUnknownLogFormat)
}

func TestCollectMessages(t *testing.T) {
	base := errors.New("exit status 2")
	err := zerr.With(zerr.Wrap(base, "task manager command failed"), "exit_code", 2)
	err = zerr.Wrap(err, "failed to export tasks")

	assert.Equal(t,
		[]string{"failed to export tasks", "task manager command failed", "exit status 2"},
		logger.CollectMessages(err),
	)
}

func TestFormatChain(t *testing.T) {
	got := logger.FormatChain([]string{"top", "middle", "root"})
	assert.Equal(t, "Error: top\n\n  Caused by:\n    → middle\n    → root", got)
}
