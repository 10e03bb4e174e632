// Package cli handles command-line parsing and dispatch for mcpsetup.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/mcpsetup/internal/commands"
	"github.com/NielsdaWheelz/mcpsetup/internal/config"
	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
	"github.com/NielsdaWheelz/mcpsetup/internal/paths"
	"github.com/NielsdaWheelz/mcpsetup/internal/version"
)

// app carries the dependencies and resolved state shared by all subcommands.
// It is populated by the root command's PersistentPreRunE.
type app struct {
	runner exec.CommandRunner
	fsys   fs.FS
	stdout io.Writer
	stderr io.Writer

	// flags
	root     string
	cfgFile  string
	logLevel string

	cfg    *config.Config
	layout config.Layout
}

// osEnv reads the process environment.
type osEnv struct{}

func (osEnv) Get(key string) string { return os.Getenv(key) }

// Run parses arguments and dispatches to the appropriate subcommand.
// Returns an error if the command fails; the caller should print the error and exit.
func Run(args []string, stdout, stderr io.Writer) error {
	a := &app{
		runner: exec.NewRealRunner(),
		fsys:   fs.NewRealFS(),
		stdout: stdout,
		stderr: stderr,
	}
	return a.execute(args)
}

func (a *app) execute(args []string) error {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}
	if _, ok := errors.AsAppError(err); ok {
		return err
	}
	// our RunE funcs only return AppErrors, so the rest came from cobra's
	// own argument and command parsing
	return errors.Wrap(errors.EUsage, err.Error(), err)
}

// appError passes AppErrors through and marks anything else as internal.
func appError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := errors.AsAppError(err); ok {
		return err
	}
	return errors.Wrap(errors.EInternal, err.Error(), err)
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mcpsetup",
		Short: "Bootstrap a local LinkedIn MCP client project",
		Long: `mcpsetup prepares a project directory for a LinkedIn MCP client.
It clones the MCP server, creates a Python virtual environment and writes
the project template files (requirements.txt, .env, .gitignore and the
client package).`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Usage()
			return errors.New(errors.EUsage, "no command specified")
		},
	}
	root.SetVersionTemplate("mcpsetup {{.Version}}\n")
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.EUsage, "invalid flags: "+err.Error(), err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.root, "root", "", "project root (default: current directory)")
	pf.StringVar(&a.cfgFile, "config", "", "path to config file (YAML)")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")

	root.PersistentPreRunE = a.prepare

	root.AddCommand(a.setupCmd(), a.doctorCmd(), a.configCmd(), a.versionCmd())
	return root
}

// needsProject reports whether cmd works on a project. Help, version and
// shell completion must keep working when the config is broken.
func needsProject(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "completion" {
			return false
		}
	}
	return true
}

// prepare configures logging, loads the config and resolves the layout.
func (a *app) prepare(cmd *cobra.Command, args []string) error {
	if !needsProject(cmd) {
		return nil
	}

	opts := config.LoadOpts{File: a.cfgFile}
	// --log-level takes precedence over the config file and environment.
	if cmd.Flags().Changed("log-level") {
		if !config.ValidLogLevel(a.logLevel) {
			return errors.New(errors.EUsage, fmt.Sprintf("invalid --log-level %q: must be one of debug, info, warn, error", a.logLevel))
		}
		opts.LogLevel = a.logLevel
	}
	initLogger(a.stderr, a.logLevel)

	if home, err := os.UserHomeDir(); err == nil {
		opts.DefaultFile = paths.DefaultConfigFile(osEnv{}, home)
	}
	cfg, err := config.Load(opts)
	if err != nil {
		return err
	}
	initLogger(a.stderr, cfg.LogLevel)

	rootDir := a.root
	if rootDir == "" {
		if rootDir, err = os.Getwd(); err != nil {
			return errors.Wrap(errors.EInternal, "failed to get working directory", err)
		}
	}
	layout, err := config.NewLayout(cfg, rootDir)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.layout = layout
	slog.Debug("resolved layout", "root", layout.Root, "server_dir", layout.ServerDir, "venv_dir", layout.VenvDir)
	return nil
}

func (a *app) setupCmd() *cobra.Command {
	var opts commands.SetupOpts
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Clone the server, create the environment and write project files",
		Long: `Runs three steps in order:
  1. clone the LinkedIn MCP server repository
  2. create a Python virtual environment
  3. write requirements.txt, .env, .gitignore and the client package

Every step runs even if an earlier one failed. The command exits non-zero
if any step failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appError(commands.Setup(cmd.Context(), a.runner, a.fsys, a.layout, opts, a.stdout, a.stderr))
		},
	}
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "print a JSON summary to stdout")
	cmd.Flags().BoolVar(&opts.SkipClone, "skip-clone", false, "skip cloning the server")
	cmd.Flags().BoolVar(&opts.SkipVenv, "skip-venv", false, "skip creating the virtual environment")
	return cmd
}

func (a *app) doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites and report project state",
		Long: `Verifies git and python are installed, then reports which setup
artifacts exist and whether .env holds every required key.
Nothing is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appError(commands.Doctor(cmd.Context(), a.runner, a.fsys, a.layout, a.stdout, a.stderr))
		},
	}
}

func (a *app) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return appError(commands.ShowConfig(a.cfg, a.layout, a.stdout))
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := fmt.Fprintf(a.stdout, "mcpsetup %s\n", version.Version); err != nil {
				return errors.Wrap(errors.EInternal, "failed to write version", err)
			}
			return nil
		},
	}
}

func initLogger(w io.Writer, level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
