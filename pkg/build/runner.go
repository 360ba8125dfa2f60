// pkg/build/runner.go
package build

import (
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Runner executes a build command
type Runner interface {
	Run(ctx context.Context, argv []string, environ []string) error
}

// ExecRunner runs commands as child processes
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Dir    string // Working directory, "" for the current one
}

// Run starts argv[0] with the remaining arguments and waits for it
func (r *ExecRunner) Run(ctx context.Context, argv []string, environ []string) error {
	if len(argv) == 0 {
		return ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = environ
	cmd.Dir = r.Dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", argv[0], err)
	}
	return nil
}
