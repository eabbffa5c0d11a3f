package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cbuild/internal/adapters/logger"
	"go.trai.ch/cbuild/internal/ui/style"
	"go.trai.ch/zerr"
)

func TestLogger_Info(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf)

	log.Info("compiling src/main.c")
	assert.Contains(t, buf.String(), "compiling src/main.c")
}

func TestLogger_Warn(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf)

	log.Warn("cache file not writable")
	assert.Contains(t, buf.String(), style.Warning+" cache file not writable")
}

func TestLogger_ErrorNil(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf)

	log.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf)

	cause := errors.New("permission denied")
	err := zerr.Wrap(cause, "failed to save build cache")
	log.Error(err)

	out := buf.String()
	assert.Contains(t, out, "Error: failed to save build cache")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ permission denied")
}

func TestLogger_ErrorPlain(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := new(bytes.Buffer)
	log := logger.NewWithWriter(buf)

	log.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "Error: boom")
	assert.NotContains(t, out, "Caused by:")
}
