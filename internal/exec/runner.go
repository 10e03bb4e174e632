// Package exec runs the external tools setup depends on (git and a Python
// interpreter) behind a stub-friendly interface.
package exec

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
)

// CmdResult is what a finished process left behind.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunOpts adjusts how a single process is started.
type RunOpts struct {
	// Dir is the working directory; empty inherits the caller's.
	Dir string
	// Env holds KEY=VALUE entries added on top of the inherited environment.
	// A key set here replaces the inherited value.
	Env []string
}

// CommandRunner starts a process and waits for it.
//
// A process that ran is reported through CmdResult, whatever its exit code.
// The error return is reserved for processes that never ran: a missing
// binary, a canceled context, or a failure to wire up its pipes.
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error)
}

// RealRunner runs processes with os/exec and buffers their output.
type RealRunner struct{}

// NewRealRunner returns a RealRunner.
func NewRealRunner() *RealRunner {
	return &RealRunner{}
}

// Run implements CommandRunner.
func (r *RealRunner) Run(ctx context.Context, name string, args []string, opts RunOpts) (CmdResult, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = opts.Dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if len(opts.Env) > 0 {
		// os/exec keeps the last value for a duplicated key
		cmd.Env = append(cmd.Environ(), opts.Env...)
	}

	err := cmd.Run()
	res := CmdResult{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) && ctx.Err() == nil {
		res.ExitCode = exitErr.ExitCode()
		return res, nil
	}
	return res, err
}
