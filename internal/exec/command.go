package exec

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
)

// Command is a command line to run on behalf of a setup step.
type Command struct {
	// Argv is the program and its arguments. Ignored when Shell is set.
	Argv []string
	// Line is the literal command line, used when Shell is set.
	Line string
	// Shell interprets Line with "sh -c".
	Shell bool
	// Dir is the working directory; empty means the current process directory.
	Dir string
	// Env holds KEY=VALUE overrides for this command only. They are not part
	// of String, so a manual fallback line stays copy-pasteable.
	Env []string
}

// ParseCommand splits a literal command line on whitespace.
// No quoting rules apply; use ShellCommand when the line needs a shell.
func ParseCommand(line string) Command {
	return Command{Argv: strings.Fields(line)}
}

// ShellCommand returns a Command that runs line through "sh -c".
func ShellCommand(line string) Command {
	return Command{Line: line, Shell: true}
}

// In returns a copy of c that runs in dir.
func (c Command) In(dir string) Command {
	c.Dir = dir
	return c
}

// WithEnv returns a copy of c with kv appended to its environment overrides.
func (c Command) WithEnv(kv ...string) Command {
	c.Env = append(append([]string(nil), c.Env...), kv...)
	return c
}

// String renders the command as a line a user could paste into a shell.
func (c Command) String() string {
	if c.Shell {
		return c.Line
	}
	return FormatCommandLine(c.Argv)
}

func (c Command) argv() (string, []string, bool) {
	if c.Shell {
		if strings.TrimSpace(c.Line) == "" {
			return "", nil, false
		}
		return "sh", []string{"-c", c.Line}, true
	}
	if len(c.Argv) == 0 || c.Argv[0] == "" {
		return "", nil, false
	}
	return c.Argv[0], c.Argv[1:], true
}

// Execute runs cmd synchronously and returns its captured stdout.
//
// A non-zero exit yields an E_COMMAND_FAILED error whose details carry
// "stderr", "exit_code" and "command". A process that could not be started
// (missing binary, canceled context) yields E_COMMAND_START.
func Execute(ctx context.Context, cr CommandRunner, cmd Command) (string, error) {
	line := cmd.String()
	name, args, ok := cmd.argv()
	if !ok {
		return "", errors.New(errors.EUsage, "empty command")
	}

	slog.DebugContext(ctx, "running command", "command", line, "dir", cmd.Dir, "env", cmd.Env)

	result, err := cr.Run(ctx, name, args, RunOpts{Dir: cmd.Dir, Env: cmd.Env})
	if err != nil {
		slog.DebugContext(ctx, "command did not start", "command", line, "err", err)
		return "", errors.WrapWithDetails(errors.ECommandStart, "failed to start: "+line, err, map[string]string{
			"command": line,
			"stderr":  err.Error(),
		})
	}

	slog.DebugContext(ctx, "command finished", "command", line, "exit_code", result.ExitCode)

	if result.ExitCode != 0 {
		return "", errors.NewWithDetails(errors.ECommandFailed, "command exited "+strconv.Itoa(result.ExitCode)+": "+line, map[string]string{
			"command":   line,
			"exit_code": strconv.Itoa(result.ExitCode),
			"stderr":    result.Stderr,
		})
	}

	return result.Stdout, nil
}

// FailureOutput returns the diagnostic text captured for a failed Execute,
// or "" if err did not come from Execute.
func FailureOutput(err error) string {
	return errors.Detail(err, "stderr")
}
