// Package git wraps the git operations setup needs via exec.CommandRunner.
package git

import (
	"context"
	"strings"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
)

// CloneCommand returns the command that clones url into dest. Terminal
// prompts are disabled, so a repository that needs credentials fails with
// git's error instead of waiting on input that never comes.
func CloneCommand(url, dest string) exec.Command {
	return exec.Command{Argv: []string{"git", "clone", url, dest}}.WithEnv("GIT_TERMINAL_PROMPT=0")
}

// Clone runs `git clone <url> <dest>` from dir.
// A non-zero exit returns the E_COMMAND_FAILED error from exec.Execute;
// its captured stderr is available through exec.FailureOutput.
func Clone(ctx context.Context, cr exec.CommandRunner, url, dest, dir string) error {
	_, err := exec.Execute(ctx, cr, CloneCommand(url, dest).In(dir))
	return err
}

// Version returns the first line of `git --version`.
// Returns E_GIT_NOT_INSTALLED if git cannot be run.
func Version(ctx context.Context, cr exec.CommandRunner) (string, error) {
	out, err := exec.Execute(ctx, cr, exec.Command{Argv: []string{"git", "--version"}})
	if err != nil {
		return "", errors.Wrap(errors.EGitNotInstalled, "git is not installed or not on PATH", err)
	}
	return firstLine(out), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// ParseOriginHost extracts the hostname from a git remote URL.
// Supports:
//   - scp-like: git@github.com:owner/repo.git -> github.com
//   - https: https://github.com/owner/repo.git -> github.com
//
// Returns "" for other schemes (ssh://, git://, file://), unparseable URLs
// and empty input.
func ParseOriginHost(raw string) string {
	host, _ := splitRemote(raw)
	return host
}

// RepoSlug returns the "owner/repo" part of a remote URL without a trailing
// ".git", or "" when the URL is not a supported remote.
// example: https://github.com/hritik003/linkedin-mcp.git -> hritik003/linkedin-mcp
func RepoSlug(raw string) string {
	host, path := splitRemote(raw)
	if host == "" {
		return ""
	}
	path = strings.Trim(path, "/")
	path = strings.TrimSuffix(path, ".git")
	return path
}

// splitRemote returns the host and path of a supported remote URL.
func splitRemote(raw string) (host, path string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ""
	}

	// scp-like: <user>@<host>:<path>
	if strings.Contains(raw, "@") && strings.Contains(raw, ":") && !strings.Contains(raw, "://") {
		atIdx := strings.Index(raw, "@")
		colonIdx := strings.Index(raw, ":")
		if colonIdx > atIdx {
			host := raw[atIdx+1 : colonIdx]
			if isValidHost(host) {
				return host, raw[colonIdx+1:]
			}
		}
		return "", ""
	}

	if strings.HasPrefix(raw, "https://") {
		rest := strings.TrimPrefix(raw, "https://")
		slashIdx := strings.Index(rest, "/")
		if slashIdx > 0 {
			host := rest[:slashIdx]
			if colonIdx := strings.Index(host, ":"); colonIdx > 0 {
				host = host[:colonIdx]
			}
			if isValidHost(host) {
				return host, rest[slashIdx+1:]
			}
		}
		return "", ""
	}

	return "", ""
}

// isValidHost performs basic validation on a hostname.
func isValidHost(host string) bool {
	if host == "" {
		return false
	}
	if !strings.Contains(host, ".") {
		return false
	}
	if strings.HasPrefix(host, ".") || strings.HasSuffix(host, ".") {
		return false
	}
	return true
}
