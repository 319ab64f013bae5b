package packagemanager

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// Runner executes an external program and returns its standard output
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs real processes; the context kills them on cancel or deadline
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

type Status int

const (
	Succeeded Status = iota
	Failed
	TimedOut
	Errored
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case TimedOut:
		return "timed out"
	case Errored:
		return "errored"
	}
	return "unknown"
}

// Result is the classified outcome of one Command
type Result struct {
	Command  Command
	Status   Status
	Output   []byte
	ExitCode int
	Err      error
	Duration time.Duration
}

func (r Result) OK() bool {
	return r.Status == Succeeded
}

// exitCoder is satisfied by *exec.ExitError
type exitCoder interface {
	ExitCode() int
}

// Execute runs cmd under its timeout and classifies the outcome: a deadline
// is TimedOut, a non-zero exit is Failed, anything else that went wrong is Errored.
func Execute(ctx context.Context, runner Runner, cmd Command) Result {
	runCtx := ctx
	if cmd.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cmd.Timeout)
		defer cancel()
	}

	start := time.Now()
	output, err := runner.Run(runCtx, cmd.Name, cmd.Args...)
	result := Result{
		Command:  cmd,
		Output:   output,
		Err:      err,
		Duration: time.Since(start),
	}

	var exitErr exitCoder
	switch {
	case err == nil:
		result.Status = Succeeded
	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		result.Status = TimedOut
		result.Err = context.DeadlineExceeded
	case errors.As(err, &exitErr) && exitErr.ExitCode() > 0:
		result.Status = Failed
		result.ExitCode = exitErr.ExitCode()
	default:
		result.Status = Errored
	}

	return result
}
