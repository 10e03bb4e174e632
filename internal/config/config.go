// Package config loads mcpsetup settings and derives the on-disk layout that
// every setup step works against.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/git"
)

// Defaults for a fresh project.
const (
	DefaultRepository = "https://github.com/hritik003/linkedin-mcp.git"
	DefaultServerDir  = "linkedin-mcp-server"
	DefaultVenvDir    = ".venv"
	DefaultPython     = "python"
	DefaultPackageDir = "linkedin_mcp"
	DefaultLogLevel   = "warn"
)

// EnvPrefix prefixes every environment override, e.g. MCPSETUP_SERVER_DIR.
const EnvPrefix = "MCPSETUP"

// Config is the root configuration.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" yaml:"server"`
	Environment EnvironmentConfig `mapstructure:"environment" yaml:"environment"`
	Package     PackageConfig     `mapstructure:"package" yaml:"package"`
	LogLevel    string            `mapstructure:"log_level" yaml:"log_level"`
}

// ServerConfig describes the external server checkout.
type ServerConfig struct {
	Repository string `mapstructure:"repository" yaml:"repository"`
	Dir        string `mapstructure:"dir" yaml:"dir"`
}

// EnvironmentConfig describes the isolated Python environment.
type EnvironmentConfig struct {
	Dir    string `mapstructure:"dir" yaml:"dir"`
	Python string `mapstructure:"python" yaml:"python"`
}

// PackageConfig describes the local client package stub.
type PackageConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir"`
}

// LoadOpts selects the config file.
type LoadOpts struct {
	// File is an explicit config file; it must exist.
	File string
	// DefaultFile is read only if it exists.
	DefaultFile string
	// LogLevel, when set, replaces log_level from every other source before
	// validation.
	LogLevel string
}

// Load reads defaults, then the YAML config file (if any), then environment
// variables with the MCPSETUP_ prefix, and validates the result.
// Returns E_CONFIG_INVALID for unreadable files and invalid values.
func Load(opts LoadOpts) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path := opts.File
	if path == "" && opts.DefaultFile != "" {
		if _, err := os.Stat(opts.DefaultFile); err == nil {
			path = opts.DefaultFile
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(errors.EConfigInvalid, fmt.Sprintf("reading config file %s: %v", path, err), err)
		}
	}

	if opts.LogLevel != "" {
		v.Set("log_level", opts.LogLevel)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(errors.EConfigInvalid, "unmarshalling config: "+err.Error(), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.repository", DefaultRepository)
	v.SetDefault("server.dir", DefaultServerDir)
	v.SetDefault("environment.dir", DefaultVenvDir)
	v.SetDefault("environment.python", DefaultPython)
	v.SetDefault("package.dir", DefaultPackageDir)
	v.SetDefault("log_level", DefaultLogLevel)
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:      ServerConfig{Repository: DefaultRepository, Dir: DefaultServerDir},
		Environment: EnvironmentConfig{Dir: DefaultVenvDir, Python: DefaultPython},
		Package:     PackageConfig{Dir: DefaultPackageDir},
		LogLevel:    DefaultLogLevel,
	}
}

// Validate checks cfg and returns E_CONFIG_INVALID describing the first problem.
func Validate(cfg *Config) error {
	if git.ParseOriginHost(cfg.Server.Repository) == "" {
		return errors.New(errors.EConfigInvalid, fmt.Sprintf("server.repository %q must be an https:// or user@host:path git URL", cfg.Server.Repository))
	}

	dirs := []struct {
		key   string
		value string
	}{
		{"server.dir", cfg.Server.Dir},
		{"environment.dir", cfg.Environment.Dir},
		{"package.dir", cfg.Package.Dir},
	}
	for _, d := range dirs {
		if err := validateRelDir(d.key, d.value); err != nil {
			return err
		}
	}

	if strings.TrimSpace(cfg.Environment.Python) == "" {
		return errors.New(errors.EConfigInvalid, "environment.python must not be empty")
	}

	if !ValidLogLevel(cfg.LogLevel) {
		return errors.New(errors.EConfigInvalid, fmt.Sprintf("log_level %q must be one of debug, info, warn, error", cfg.LogLevel))
	}

	return nil
}

// ValidLogLevel reports whether level names a supported log level.
func ValidLogLevel(level string) bool {
	switch strings.ToLower(level) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// validateRelDir requires a non-empty relative path that stays under the root.
func validateRelDir(key, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.New(errors.EConfigInvalid, key+" must not be empty")
	}
	if filepath.IsAbs(value) {
		return errors.New(errors.EConfigInvalid, fmt.Sprintf("%s %q must be relative to the project root", key, value))
	}
	clean := filepath.Clean(value)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return errors.New(errors.EConfigInvalid, fmt.Sprintf("%s %q must name a directory inside the project root", key, value))
	}
	return nil
}

// Marshal renders cfg as YAML, in the same shape the config file accepts.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}
