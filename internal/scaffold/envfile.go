package scaffold

import (
	"bytes"
	"sort"
	"strings"

	"github.com/joho/godotenv"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/fs"
)

// RequiredEnvKeys are the keys the MCP client reads from .env.
var RequiredEnvKeys = []string{
	"LINKEDIN_EMAIL",
	"LINKEDIN_PASSWORD",
	"MCP_SERVER_HOST",
	"MCP_SERVER_PORT",
	"MCP_SERVER_PATH",
}

// EnvReport describes a parsed .env file.
type EnvReport struct {
	Missing      []string // required keys that are absent or empty
	Placeholders []string // required keys still holding the template value
}

// CheckEnvFile parses the .env file at path and compares it with
// RequiredEnvKeys. Returns E_ENV_TEMPLATE_INVALID if the file cannot be
// parsed; a missing file is returned as the underlying fs error.
func CheckEnvFile(fsys fs.FS, path string) (EnvReport, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return EnvReport{}, err
	}

	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return EnvReport{}, errors.Wrap(errors.EEnvTemplateInvalid, "failed to parse "+path+": "+err.Error(), err)
	}

	defaults, err := godotenv.Unmarshal(EnvTemplate)
	if err != nil {
		return EnvReport{}, errors.Wrap(errors.EInternal, "env template does not parse", err)
	}

	var report EnvReport
	for _, key := range RequiredEnvKeys {
		v, ok := values[key]
		if !ok || strings.TrimSpace(v) == "" {
			report.Missing = append(report.Missing, key)
			continue
		}
		if isPlaceholder(key, v, defaults) {
			report.Placeholders = append(report.Placeholders, key)
		}
	}
	sort.Strings(report.Missing)
	sort.Strings(report.Placeholders)
	return report, nil
}

// isPlaceholder reports whether a credential still holds its template value.
// Server settings have working defaults and never count as placeholders.
func isPlaceholder(key, value string, defaults map[string]string) bool {
	if !strings.HasPrefix(key, "LINKEDIN_") {
		return false
	}
	return defaults[key] == value
}
