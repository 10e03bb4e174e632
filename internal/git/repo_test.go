package git

import (
	"context"
	"strings"
	"testing"

	"github.com/NielsdaWheelz/mcpsetup/internal/errors"
	"github.com/NielsdaWheelz/mcpsetup/internal/exec"
)

// stubRunner implements exec.CommandRunner for testing.
type stubRunner struct {
	// responses maps "name|arg1,arg2|dir" -> CmdResult
	responses map[string]exec.CmdResult
	// startErr, when set, is returned for every call
	startErr error
	calls    []stubCall
}

type stubCall struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func newStubRunner() *stubRunner {
	return &stubRunner{responses: make(map[string]exec.CmdResult)}
}

func (s *stubRunner) On(name string, args []string, dir string, result exec.CmdResult) {
	s.responses[makeKey(name, args, dir)] = result
}

func makeKey(name string, args []string, dir string) string {
	return name + "|" + strings.Join(args, ",") + "|" + dir
}

func (s *stubRunner) Run(ctx context.Context, name string, args []string, opts exec.RunOpts) (exec.CmdResult, error) {
	s.calls = append(s.calls, stubCall{Name: name, Args: args, Dir: opts.Dir, Env: opts.Env})
	if s.startErr != nil {
		return exec.CmdResult{}, s.startErr
	}
	if result, ok := s.responses[makeKey(name, args, opts.Dir)]; ok {
		return result, nil
	}
	// Default: command not found
	return exec.CmdResult{ExitCode: 127, Stderr: "command not found"}, nil
}

func TestClone_Success(t *testing.T) {
	ctx := context.Background()
	cr := newStubRunner()

	url := "https://github.com/hritik003/linkedin-mcp.git"
	dest := "/proj/linkedin-mcp-server"
	cr.On("git", []string{"clone", url, dest}, "/proj", exec.CmdResult{ExitCode: 0})

	if err := Clone(ctx, cr, url, dest, "/proj"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(cr.calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(cr.calls))
	}
	if cr.calls[0].Dir != "/proj" {
		t.Errorf("Dir = %q, want %q", cr.calls[0].Dir, "/proj")
	}
	if got := strings.Join(cr.calls[0].Env, " "); got != "GIT_TERMINAL_PROMPT=0" {
		t.Errorf("Env = %q, want GIT_TERMINAL_PROMPT=0", got)
	}
}

func TestClone_FailureCarriesStderr(t *testing.T) {
	ctx := context.Background()
	cr := newStubRunner()

	url := "https://github.com/nobody/missing.git"
	dest := "/proj/server"
	cr.On("git", []string{"clone", url, dest}, "/proj", exec.CmdResult{
		Stderr:   "fatal: repository 'https://github.com/nobody/missing.git/' not found\n",
		ExitCode: 128,
	})

	err := Clone(ctx, cr, url, dest, "/proj")
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.GetCode(err) != errors.ECommandFailed {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.ECommandFailed)
	}
	if !strings.Contains(exec.FailureOutput(err), "not found") {
		t.Errorf("stderr = %q, want to contain 'not found'", exec.FailureOutput(err))
	}
}

func TestCloneCommand_String(t *testing.T) {
	got := CloneCommand("https://github.com/o/r.git", "/a b/server").String()
	want := "git clone https://github.com/o/r.git '/a b/server'"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestVersion(t *testing.T) {
	ctx := context.Background()
	cr := newStubRunner()
	cr.On("git", []string{"--version"}, "", exec.CmdResult{Stdout: "git version 2.43.0\n"})

	v, err := Version(ctx, cr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "git version 2.43.0" {
		t.Errorf("Version = %q, want %q", v, "git version 2.43.0")
	}
}

func TestVersion_NotInstalled(t *testing.T) {
	ctx := context.Background()
	cr := newStubRunner()

	_, err := Version(ctx, cr)
	if errors.GetCode(err) != errors.EGitNotInstalled {
		t.Errorf("code = %q, want %q", errors.GetCode(err), errors.EGitNotInstalled)
	}
}

func TestParseOriginHost(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"scp-like github.com with .git", "git@github.com:foo/bar.git", "github.com"},
		{"scp-like enterprise host", "git@enterprise.example.com:foo/bar.git", "enterprise.example.com"},
		{"https github.com with .git", "https://github.com/foo/bar.git", "github.com"},
		{"https github.com without .git", "https://github.com/foo/bar", "github.com"},
		{"https with port", "https://github.com:443/foo/bar.git", "github.com"},
		{"ssh:// URL", "ssh://git@github.com/foo/bar.git", ""},
		{"git:// URL", "git://github.com/foo/bar.git", ""},
		{"file:// URL", "file:///path/to/repo", ""},
		{"http URL", "http://github.com/foo/bar.git", ""},
		{"host without dot", "https://localhost/foo/bar.git", ""},
		{"https without path", "https://github.com", ""},
		{"empty", "", ""},
		{"whitespace", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseOriginHost(tt.raw); got != tt.want {
				t.Errorf("ParseOriginHost(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestRepoSlug(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://github.com/hritik003/linkedin-mcp.git", "hritik003/linkedin-mcp"},
		{"https://github.com/hritik003/linkedin-mcp", "hritik003/linkedin-mcp"},
		{"git@github.com:owner/repo.git", "owner/repo"},
		{"https://github.com/owner/repo/", "owner/repo"},
		{"file:///tmp/repo", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := RepoSlug(tt.raw); got != tt.want {
				t.Errorf("RepoSlug(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
