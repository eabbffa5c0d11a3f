// Package shell provides a subprocess runner for compiler invocations.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/cbuild/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Runner = (*Runner)(nil)

// Runner implements ports.Runner using os/exec. Subprocesses share the
// tool's stdout and stderr so compiler diagnostics reach the user
// unmodified.
type Runner struct {
	logger ports.Logger
	stdout io.Writer
	stderr io.Writer
}

// Option configures a Runner.
type Option func(*Runner)

// WithStdout overrides the writer commands inherit as stdout.
func WithStdout(w io.Writer) Option {
	return func(r *Runner) {
		r.stdout = w
	}
}

// WithStderr overrides the writer commands inherit as stderr.
func WithStderr(w io.Writer) Option {
	return func(r *Runner) {
		r.stderr = w
	}
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run echoes the command line prefixed with "CMD", executes it, and waits
// for completion. A non-zero exit status is returned as an error carrying
// the exit code.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return zerr.New("empty command")
	}

	r.logger.Info("CMD " + strings.Join(argv, " "))

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // compiler invocation built from user config
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitErr.ExitCode())
		}
		return zerr.Wrap(err, "failed to start command")
	}

	return nil
}
