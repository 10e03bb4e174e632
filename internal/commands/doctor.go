package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
	"github.com/NielsdaWheelz/mcpsetup/internal/git"
	"github.com/NielsdaWheelz/mcpsetup/internal/scaffold"
)

// DoctorReport holds all the data for doctor output.
type DoctorReport struct {
	Root string

	// Tooling
	GitVersion    string
	PythonVersion string

	// Layout state
	ServerDirPresent bool
	VenvDirPresent   bool
	Files            []FileState

	// .env contents; EnvPresent is false when the file does not exist
	EnvPresent      bool
	EnvMissing      []string
	EnvPlaceholders []string
}

// FileState records whether a template file exists.
type FileState struct {
	RelPath string
	Present bool
}

// Doctor implements `mcpsetup doctor`.
// Checks that git and python run, then reports what a setup run has (or has
// not yet) produced. Nothing is modified. Returns E_ENV_TEMPLATE_INVALID
// after printing the report if .env exists but is unusable.
func Doctor(ctx context.Context, cr exec.CommandRunner, fsys fs.FS, layout config.Layout, stdout, stderr io.Writer) error {
	gitVersion, err := git.Version(ctx, cr)
	if err != nil {
		return err
	}

	pythonVersion, err := checkPython(ctx, cr, layout.Python)
	if err != nil {
		return err
	}

	report := DoctorReport{
		Root:          layout.Root,
		GitVersion:    gitVersion,
		PythonVersion: pythonVersion,
	}

	if report.ServerDirPresent, err = fs.Exists(fsys, layout.ServerDir); err != nil {
		return errors.Wrap(errors.EInternal, "failed to check "+layout.ServerDir, err)
	}
	if report.VenvDirPresent, err = fs.Exists(fsys, layout.VenvDir); err != nil {
		return errors.Wrap(errors.EInternal, "failed to check "+layout.VenvDir, err)
	}

	for _, tf := range scaffold.DefaultFiles(filepath.ToSlash(layout.Rel(layout.PackageDir))) {
		present, err := fs.Exists(fsys, layout.Path(tf.RelPath))
		if err != nil {
			return errors.Wrap(errors.EInternal, "failed to check "+tf.RelPath, err)
		}
		report.Files = append(report.Files, FileState{RelPath: tf.RelPath, Present: present})
	}

	envReport, err := scaffold.CheckEnvFile(fsys, layout.Path(scaffold.EnvFile))
	switch {
	case err == nil:
		report.EnvPresent = true
		report.EnvMissing = envReport.Missing
		report.EnvPlaceholders = envReport.Placeholders
	case os.IsNotExist(err):
		// nothing to check until setup has run
	default:
		writeDoctorOutput(stdout, report)
		return err
	}

	writeDoctorOutput(stdout, report)

	if len(report.EnvMissing) > 0 {
		return errors.NewWithDetails(errors.EEnvTemplateInvalid,
			".env is missing required keys: "+strings.Join(report.EnvMissing, ", "),
			map[string]string{"missing": strings.Join(report.EnvMissing, ",")})
	}
	return nil
}

// checkPython verifies the configured interpreter runs and returns its version.
func checkPython(ctx context.Context, cr exec.CommandRunner, python string) (string, error) {
	out, err := exec.Execute(ctx, cr, exec.Command{Argv: []string{python, "--version"}})
	if err != nil {
		return "", errors.Wrap(errors.EPythonNotInstalled, python+" is not installed or not on PATH", err)
	}
	return strings.TrimSpace(out), nil
}

// writeDoctorOutput writes the stable key: value output for doctor.
func writeDoctorOutput(w io.Writer, r DoctorReport) {
	fmt.Fprintf(w, "root: %s\n", r.Root)
	fmt.Fprintf(w, "git: %s\n", r.GitVersion)
	fmt.Fprintf(w, "python: %s\n", r.PythonVersion)
	fmt.Fprintf(w, "server_dir: %s\n", presence(r.ServerDirPresent))
	fmt.Fprintf(w, "venv_dir: %s\n", presence(r.VenvDirPresent))
	for _, f := range r.Files {
		fmt.Fprintf(w, "file %s: %s\n", f.RelPath, presence(f.Present))
	}
	if !r.EnvPresent {
		return
	}
	fmt.Fprintf(w, "env_missing_keys: %s\n", listOrNone(r.EnvMissing))
	fmt.Fprintf(w, "env_placeholders: %s\n", listOrNone(r.EnvPlaceholders))
}

func presence(ok bool) string {
	if ok {
		return "present"
	}
	return "missing"
}

func listOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
