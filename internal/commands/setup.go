// Package commands implements mcpsetup CLI commands.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
	"github.com/NielsdaWheelz/mcpsetup/internal/render"
	"github.com/NielsdaWheelz/mcpsetup/internal/setup"
)

// SetupOpts holds options for the setup command.
type SetupOpts struct {
	SkipClone bool
	SkipVenv  bool
	JSON      bool
}

// Setup implements `mcpsetup setup`.
// Runs every step, prints a summary, and returns E_SETUP_INCOMPLETE if any
// step failed. With JSON set, progress goes to stderr and stdout carries only
// the JSON summary.
func Setup(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, layout config.Layout, opts SetupOpts, stdout, stderr io.Writer) error {
	progress := stdout
	if opts.JSON {
		progress = stderr
	}

	deps := setup.Deps{
		Runner:   cr,
		FS:       fsys,
		Reporter: render.NewReporter(progress),
	}
	sum := setup.Run(ctx, deps, layout, setup.Options{
		SkipClone: opts.SkipClone,
		SkipVenv:  opts.SkipVenv,
	})

	if opts.JSON {
		if err := render.WriteJSON(stdout, toSetupSummary(sum)); err != nil {
			return errors.Wrap(errors.EInternal, "failed to write json output", err)
		}
	} else {
		writeSetupOutput(stdout, sum)
	}

	return sum.Err()
}

// writeSetupOutput writes the stable key: value summary for setup.
func writeSetupOutput(w io.Writer, sum setup.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "root: %s\n", sum.Root)
	for _, st := range sum.Steps {
		fmt.Fprintf(w, "%s: %s\n", st.Name, st.Status)
	}
}

func toSetupSummary(sum setup.Summary) render.SetupSummary {
	out := render.SetupSummary{
		Root:  sum.Root,
		OK:    sum.Err() == nil,
		Steps: make([]render.StepSummary, 0, len(sum.Steps)),
	}
	for _, st := range sum.Steps {
		s := render.StepSummary{
			Step:   st.Name,
			Status: string(st.Status),
			Path:   st.Path,
			Files:  st.Files,
		}
		if st.Err != nil {
			s.ErrorCode = string(errors.GetCode(st.Err))
			s.Error = st.Err.Error()
			s.Stderr = exec.FailureOutput(st.Err)
		}
		out.Steps = append(out.Steps, s)
	}
	return out
}
