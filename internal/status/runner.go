package status

import (
	"context"
	"errors"
	"os/exec"
)

// RunResult is the captured stdout and exit code of a command.
type RunResult struct {
	Output   string
	ExitCode int
}

// Runner executes an external command. A non-zero exit is reported through
// ExitCode, not as an error; errors mean the command could not run at all.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*RunResult, error)
}

type execRunner struct{}

// ExecRunner returns the os/exec backed Runner.
func ExecRunner() Runner {
	return execRunner{}
}

func (execRunner) Run(ctx context.Context, name string, args ...string) (*RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	output, err := cmd.Output()

	exitCode := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
		err = nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}

	return &RunResult{Output: string(output), ExitCode: exitCode}, err
}
