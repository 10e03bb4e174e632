package setup

import (
	"context"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
)

// VenvCommand returns `<python> -m venv <dir>`.
func VenvCommand(python, dir string) exec.Command {
	return exec.Command{Argv: []string{python, "-m", "venv", dir}}
}

// CreateEnvironment creates the Python virtual environment at l.VenvDir
// unless the directory already exists. Once created, the directory belongs
// to the environment tool.
func CreateEnvironment(ctx context.Context, d Deps, l config.Layout) StepResult {
	r := d.Reporter
	res := StepResult{Name: StepEnvironment, Path: l.VenvDir}

	r.Header(titleEnvironment)

	exists, err := fs.Exists(d.FS, l.VenvDir)
	if err != nil {
		r.Failure("Cannot check %s: %v", l.VenvDir, err)
		res.Status, res.Err = StatusFailed, err
		return res
	}
	if exists {
		r.Info("Virtual environment already exists at %s", l.VenvDir)
		res.Status = StatusPresent
		return res
	}

	r.Info("Creating virtual environment...")

	cmd := VenvCommand(l.Python, l.VenvDir)
	if _, err := exec.Execute(ctx, d.Runner, cmd.In(l.Root)); err != nil {
		r.Error(exec.FailureOutput(err))
		r.Failure("Failed to create virtual environment. Please run manually:")
		r.Hint(cmd.String())
		res.Status, res.Err = StatusFailed, err
		return res
	}

	r.Success("Virtual environment created")
	res.Status = StatusDone
	return res
}
