package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
)

// Note: t.Parallel() is intentionally omitted in this package.
// These tests read process-global MCPSETUP_* environment variables.

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOpts{})
	require.NoError(t, err)

	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "https://github.com/hritik003/linkedin-mcp.git", cfg.Server.Repository)
	assert.Equal(t, "linkedin-mcp-server", cfg.Server.Dir)
	assert.Equal(t, ".venv", cfg.Environment.Dir)
	assert.Equal(t, "python", cfg.Environment.Python)
	assert.Equal(t, "linkedin_mcp", cfg.Package.Dir)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  repository: git@github.com:me/fork.git
environment:
  python: python3.12
log_level: debug
`)

	cfg, err := Load(LoadOpts{File: path})
	require.NoError(t, err)

	assert.Equal(t, "git@github.com:me/fork.git", cfg.Server.Repository)
	assert.Equal(t, "python3.12", cfg.Environment.Python)
	assert.Equal(t, "debug", cfg.LogLevel)
	// untouched keys keep their defaults
	assert.Equal(t, "linkedin-mcp-server", cfg.Server.Dir)
	assert.Equal(t, ".venv", cfg.Environment.Dir)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MCPSETUP_SERVER_DIR", "vendor/server")
	t.Setenv("MCPSETUP_ENVIRONMENT_PYTHON", "python3")

	path := writeConfig(t, "server:\n  dir: from-file\n")
	cfg, err := Load(LoadOpts{File: path})
	require.NoError(t, err)

	assert.Equal(t, "vendor/server", cfg.Server.Dir)
	assert.Equal(t, "python3", cfg.Environment.Python)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(LoadOpts{File: "/nonexistent/path/config.yaml"})
	require.Error(t, err)
	assert.Equal(t, errors.EConfigInvalid, errors.GetCode(err))
}

func TestLoad_MissingDefaultFileIsIgnored(t *testing.T) {
	cfg, err := Load(LoadOpts{DefaultFile: filepath.Join(t.TempDir(), "config.yaml")})
	require.NoError(t, err)
	assert.Equal(t, DefaultServerDir, cfg.Server.Dir)
}

func TestLoad_DefaultFileIsRead(t *testing.T) {
	path := writeConfig(t, "package:\n  dir: client\n")

	cfg, err := Load(LoadOpts{DefaultFile: path})
	require.NoError(t, err)
	assert.Equal(t, "client", cfg.Package.Dir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [unterminated\n")

	_, err := Load(LoadOpts{File: path})
	assert.Equal(t, errors.EConfigInvalid, errors.GetCode(err))
}

func TestLoad_InvalidValue(t *testing.T) {
	path := writeConfig(t, "environment:\n  dir: /abs/venv\n")

	_, err := Load(LoadOpts{File: path})
	require.Error(t, err)
	assert.Equal(t, errors.EConfigInvalid, errors.GetCode(err))
	assert.Contains(t, err.Error(), "environment.dir")
}

func TestLoad_LogLevelOverrideReplacesInvalidFileValue(t *testing.T) {
	path := writeConfig(t, "log_level: loud\n")

	_, err := Load(LoadOpts{File: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")

	cfg, err := Load(LoadOpts{File: path, LogLevel: "debug"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestValidLogLevel(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error", "DEBUG"} {
		assert.True(t, ValidLogLevel(level), level)
	}
	for _, level := range []string{"", "loud", "trace"} {
		assert.False(t, ValidLogLevel(level), level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"scp-like repository", func(c *Config) { c.Server.Repository = "git@github.com:o/r.git" }, ""},
		{"nested relative dir", func(c *Config) { c.Server.Dir = "third_party/server" }, ""},
		{"file repository", func(c *Config) { c.Server.Repository = "file:///tmp/repo" }, "server.repository"},
		{"empty repository", func(c *Config) { c.Server.Repository = "" }, "server.repository"},
		{"empty server dir", func(c *Config) { c.Server.Dir = " " }, "server.dir"},
		{"absolute venv dir", func(c *Config) { c.Environment.Dir = "/opt/venv" }, "environment.dir"},
		{"escaping package dir", func(c *Config) { c.Package.Dir = "../elsewhere" }, "package.dir"},
		{"root as dir", func(c *Config) { c.Package.Dir = "./" }, "package.dir"},
		{"empty python", func(c *Config) { c.Environment.Python = "" }, "environment.python"},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, errors.EConfigInvalid, errors.GetCode(err))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Environment.Python = "python3"

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "repository: https://github.com/hritik003/linkedin-mcp.git")

	// The rendered YAML is accepted back as a config file.
	loaded, err := Load(LoadOpts{File: writeConfig(t, string(data))})
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	var raw map[string]any
	require.NoError(t, yaml.Unmarshal(data, &raw))
	assert.Contains(t, raw, "log_level")
}

func TestNewLayout(t *testing.T) {
	root := t.TempDir()
	layout, err := NewLayout(Default(), root)
	require.NoError(t, err)

	assert.Equal(t, root, layout.Root)
	assert.Equal(t, filepath.Join(root, "linkedin-mcp-server"), layout.ServerDir)
	assert.Equal(t, filepath.Join(root, ".venv"), layout.VenvDir)
	assert.Equal(t, filepath.Join(root, "linkedin_mcp"), layout.PackageDir)
	assert.Equal(t, DefaultRepository, layout.RepoURL)
	assert.Equal(t, "python", layout.Python)

	assert.Equal(t, filepath.Join(root, "linkedin_mcp", "__init__.py"), layout.Path("linkedin_mcp/__init__.py"))
	assert.Equal(t, "linkedin_mcp/__init__.py", layout.Rel(layout.Path("linkedin_mcp/__init__.py")))
}

func TestNewLayout_RelativeRoot(t *testing.T) {
	layout, err := NewLayout(Default(), ".")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, wd, layout.Root)
}

func TestNewLayout_EmptyRoot(t *testing.T) {
	_, err := NewLayout(Default(), "")
	assert.Equal(t, errors.EUsage, errors.GetCode(err))
}
