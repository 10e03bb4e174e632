package config

import (
	"path/filepath"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
)

// Layout is the resolved set of paths a setup run works on. It is built once
// per run and handed to each step.
type Layout struct {
	Root       string // absolute project root
	ServerDir  string // cloned repository directory
	VenvDir    string // runtime environment directory
	PackageDir string // client package directory
	RepoURL    string
	Python     string
}

// NewLayout resolves cfg against root. root may be relative; it is made absolute.
func NewLayout(cfg *Config, root string) (Layout, error) {
	if root == "" {
		return Layout{}, errors.New(errors.EUsage, "project root is empty")
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return Layout{}, errors.Wrap(errors.EInternal, "failed to resolve project root", err)
	}

	return Layout{
		Root:       abs,
		ServerDir:  filepath.Join(abs, cfg.Server.Dir),
		VenvDir:    filepath.Join(abs, cfg.Environment.Dir),
		PackageDir: filepath.Join(abs, cfg.Package.Dir),
		RepoURL:    cfg.Server.Repository,
		Python:     cfg.Environment.Python,
	}, nil
}

// Path joins rel onto the project root.
func (l Layout) Path(rel string) string {
	return filepath.Join(l.Root, filepath.FromSlash(rel))
}

// Rel returns path relative to the project root, for display.
func (l Layout) Rel(path string) string {
	rel, err := filepath.Rel(l.Root, path)
	if err != nil {
		return path
	}
	return filepath.ToSlash(rel)
}
