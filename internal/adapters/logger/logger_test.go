package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nudge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newBufferedLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)

	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_InfoAndWarn(t *testing.T) {
	l, buf := newBufferedLogger(t)

	l.Info("reconciled domain dailyTask")
	l.Warn("plan file missing, using defaults")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "reconciled domain dailyTask")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "plan file missing")
}

func TestLogger_ErrorFlattensChain(t *testing.T) {
	l, buf := newBufferedLogger(t)

	err := zerr.Wrap(errors.New("disk full"), "failed to add notification")
	l.Error(err)

	out := buf.String()
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "failed to add notification")
	assert.Contains(t, out, "disk full")
}

func TestLogger_ErrorNilIsNoOp(t *testing.T) {
	l, buf := newBufferedLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}
