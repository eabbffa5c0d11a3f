// Package ports defines the core interfaces for the application.
package ports

import "context"

// Runner defines the interface for invoking external commands.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes argv (argv[0] is the executable) and waits for it to
	// complete. The child inherits the parent's stdout and stderr; there
	// is no output capture, retry or timeout.
	//
	// It returns an error if the process cannot be spawned or exits with
	// a non-zero status.
	Run(ctx context.Context, argv []string) error
}
