package ports

import (
	"context"
	"io"

	"go.trai.ch/klse/internal/core/domain"
)

//go:generate mockgen -source=shell.go -destination=mocks/mock_shell.go -package=mocks

// ShellRunner runs opaque task command strings.
type ShellRunner interface {
	// RunShell interprets command with the given shell mode and waits for it.
	// A non-zero exit status is reported as domain.ErrTaskCommandFailed.
	RunShell(ctx context.Context, mode domain.ShellMode, command string, stdout, stderr io.Writer) error
}

// ProcessRunner runs a program from an argument vector.
type ProcessRunner interface {
	// Run starts argv[0] with the remaining arguments and waits for it.
	// The exit code is returned as is; err is only set when the process
	// could not be started or waited on.
	Run(ctx context.Context, argv []string, stdout, stderr io.Writer) (exitCode int, err error)
}
