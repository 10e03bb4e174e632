package setup

import (
	"context"
	"log/slog"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
)

// Options toggles individual steps.
type Options struct {
	SkipClone bool
	SkipVenv  bool
}

// Run executes clone, environment and files in that order. Every step runs
// regardless of earlier failures; inspect Summary.Err for the overall result.
func Run(ctx context.Context, d Deps, l config.Layout, opts Options) Summary {
	sum := Summary{Root: l.Root}

	if opts.SkipClone {
		sum.Steps = append(sum.Steps, skipped(d, StepClone, l.ServerDir, titleClone, "--skip-clone"))
	} else {
		sum.Steps = append(sum.Steps, CloneServer(ctx, d, l))
	}

	if opts.SkipVenv {
		sum.Steps = append(sum.Steps, skipped(d, StepEnvironment, l.VenvDir, titleEnvironment, "--skip-venv"))
	} else {
		sum.Steps = append(sum.Steps, CreateEnvironment(ctx, d, l))
	}

	sum.Steps = append(sum.Steps, WriteProjectFiles(d, l))

	for _, st := range sum.Steps {
		if st.Err != nil {
			slog.InfoContext(ctx, "setup step failed", "step", st.Name, "err", st.Err)
			continue
		}
		slog.DebugContext(ctx, "setup step finished", "step", st.Name, "status", st.Status)
	}

	return sum
}

func skipped(d Deps, name, path, title, flag string) StepResult {
	d.Reporter.Header(title)
	d.Reporter.Info("Skipped (%s)", flag)
	return StepResult{Name: name, Status: StatusSkipped, Path: path}
}
