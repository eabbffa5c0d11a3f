package shell_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cbuild/internal/adapters/logger"
	"go.trai.ch/cbuild/internal/adapters/shell"
)

func TestRunner_Success(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	logBuf := new(bytes.Buffer)
	runner := shell.NewRunner(logger.NewWithWriter(logBuf))

	err := runner.Run(context.Background(), []string{"sh", "-c", "exit 0"})
	require.NoError(t, err)

	assert.Contains(t, logBuf.String(), "CMD sh -c exit 0")
}

func TestRunner_InheritedStdio(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	logBuf := new(bytes.Buffer)
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	runner := shell.NewRunner(
		logger.NewWithWriter(logBuf),
		shell.WithStdout(stdout),
		shell.WithStderr(stderr),
	)

	err := runner.Run(context.Background(), []string{"sh", "-c", "echo out; echo err >&2"})
	require.NoError(t, err)

	assert.Equal(t, "out\n", stdout.String())
	assert.Equal(t, "err\n", stderr.String())
}

func TestRunner_NonZeroExit(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	runner := shell.NewRunner(logger.NewWithWriter(new(bytes.Buffer)))

	err := runner.Run(context.Background(), []string{"sh", "-c", "exit 3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command failed")
}

func TestRunner_MissingBinary(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	runner := shell.NewRunner(logger.NewWithWriter(new(bytes.Buffer)))

	err := runner.Run(context.Background(), []string{"definitely-not-a-real-binary-xyz"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to start command")
}

func TestRunner_EmptyCommand(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	runner := shell.NewRunner(logger.NewWithWriter(new(bytes.Buffer)))

	err := runner.Run(context.Background(), nil)
	require.Error(t, err)
}
