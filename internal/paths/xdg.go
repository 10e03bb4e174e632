// Package paths resolves where mcpsetup looks for its user-level config file.
package paths

import (
	"path/filepath"
	"runtime"
)

// AppName is the directory name used under the platform config root.
const AppName = "mcpsetup"

// ConfigFileName is the file looked up inside the config directory.
const ConfigFileName = "config.yaml"

// Env is the interface for environment variable lookups.
// Implementations must return "" for unset variables.
type Env interface {
	Get(key string) string
}

// ConfigDir computes the user config directory.
//
// Resolution order:
//  1. MCPSETUP_CONFIG_DIR env var (if set)
//  2. macOS: ~/Library/Preferences/mcpsetup
//  3. XDG_CONFIG_HOME/mcpsetup (if set)
//  4. ~/.config/mcpsetup
//
// Does not touch the filesystem. ~ inside env vars is treated as literal.
func ConfigDir(env Env, homeDir string) string {
	return ConfigDirWithOS(env, homeDir, runtime.GOOS == "darwin")
}

// ConfigDirWithOS is like ConfigDir but accepts an explicit OS flag for testing.
func ConfigDirWithOS(env Env, homeDir string, isDarwin bool) string {
	if v := env.Get("MCPSETUP_CONFIG_DIR"); v != "" {
		return v
	}
	if isDarwin {
		return filepath.Join(homeDir, "Library", "Preferences", AppName)
	}
	if v := env.Get("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, AppName)
	}
	return filepath.Join(homeDir, ".config", AppName)
}

// DefaultConfigFile returns the config file path inside ConfigDir.
func DefaultConfigFile(env Env, homeDir string) string {
	return filepath.Join(ConfigDir(env, homeDir), ConfigFileName)
}
