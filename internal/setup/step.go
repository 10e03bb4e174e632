// Package setup implements the ordered bootstrap steps: clone the MCP server,
// create the Python environment, and write the project template files.
//
// Steps never abort the run. Each one reports its progress, inspects every
// command and write result, and returns a StepResult that the orchestrator
// collects into a Summary.
package setup

import (
	"fmt"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
	"github.com/NielsdaWheelz/mcpsetup/internal/render"
)

// Step names, stable in JSON output.
const (
	StepClone       = "clone"
	StepEnvironment = "environment"
	StepFiles       = "files"
)

// Step banners.
const (
	titleClone       = "Step 1: Cloning LinkedIn MCP Server"
	titleEnvironment = "Step 2: Creating Virtual Environment"
	titleFiles       = "Step 3: Creating Project Files"
)

// Status is the outcome of one step.
type Status string

const (
	// StatusDone means the step performed its action.
	StatusDone Status = "done"
	// StatusPresent means the target already existed and nothing was run.
	StatusPresent Status = "present"
	// StatusSkipped means the step was disabled for this run.
	StatusSkipped Status = "skipped"
	// StatusFailed means the step reported a failure; later steps still ran.
	StatusFailed Status = "failed"
)

// StepResult records what a step did.
type StepResult struct {
	Name   string
	Status Status
	Path   string   // directory the step targets (empty for files)
	Files  []string // relative paths written (files step only)
	Err    error
}

// Deps are the collaborators shared by all steps.
type Deps struct {
	Runner   exec.CommandRunner
	FS       fs.FS
	Reporter *render.Reporter
}

// Summary is the ordered list of step results from one run.
type Summary struct {
	Root  string
	Steps []StepResult
}

// Failed returns the results whose status is StatusFailed.
func (s Summary) Failed() []StepResult {
	var failed []StepResult
	for _, st := range s.Steps {
		if st.Status == StatusFailed {
			failed = append(failed, st)
		}
	}
	return failed
}

// Err returns E_SETUP_INCOMPLETE naming the failed steps, or nil.
func (s Summary) Err() error {
	failed := s.Failed()
	if len(failed) == 0 {
		return nil
	}
	names := make([]string, len(failed))
	for i, f := range failed {
		names[i] = f.Name
	}
	noun := "step"
	if len(failed) > 1 {
		noun = "steps"
	}
	return errors.NewWithDetails(errors.ESetupIncomplete,
		fmt.Sprintf("%d %s failed: %v", len(failed), noun, names),
		map[string]string{"failed_steps": fmt.Sprint(names)})
}
