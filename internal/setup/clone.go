package setup

import (
	"context"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
	"github.com/NielsdaWheelz/mcpsetup/internal/git"
)

// CloneServer clones the MCP server repository into l.ServerDir unless that
// directory already exists. Presence alone counts; contents are not checked.
//
// On a failed clone the captured git stderr is printed along with the
// command to run by hand.
func CloneServer(ctx context.Context, d Deps, l config.Layout) StepResult {
	r := d.Reporter
	res := StepResult{Name: StepClone, Path: l.ServerDir}

	r.Header(titleClone)

	exists, err := fs.Exists(d.FS, l.ServerDir)
	if err != nil {
		r.Failure("Cannot check %s: %v", l.ServerDir, err)
		res.Status, res.Err = StatusFailed, err
		return res
	}
	if exists {
		r.Info("LinkedIn MCP server already exists at %s", l.ServerDir)
		res.Status = StatusPresent
		return res
	}

	name := git.RepoSlug(l.RepoURL)
	if name == "" {
		name = l.RepoURL
	}
	r.Info("Cloning %s...", name)

	if err := git.Clone(ctx, d.Runner, l.RepoURL, l.ServerDir, l.Root); err != nil {
		r.Error(exec.FailureOutput(err))
		r.Failure("Failed to clone. Please run manually:")
		r.Hint(git.CloneCommand(l.RepoURL, l.ServerDir).String())
		res.Status, res.Err = StatusFailed, err
		return res
	}

	r.Success("LinkedIn MCP server cloned successfully")
	res.Status = StatusDone
	return res
}
