package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp vault directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp vault. The global config
// lookup is pointed at an empty directory so the developer's real config
// never leaks into tests.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{"XDG_CONFIG_HOME": t.TempDir()},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr,
// and exit code. Args should not include "kanban-sync" or "--vault" -
// those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"kanban-sync", "--vault", r.Dir}, args...)
	code := Run(context.Background(), &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns
// non-zero. Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// WriteDoc writes a document into the vault, creating parent folders.
func (r *CLI) WriteDoc(id, content string) {
	r.t.Helper()

	path := filepath.Join(r.Dir, filepath.FromSlash(id))

	err := os.MkdirAll(filepath.Dir(path), 0o750)
	if err != nil {
		r.t.Fatalf("failed to create folder for %s: %v", id, err)
	}

	writeErr := os.WriteFile(path, []byte(content), 0o600)
	if writeErr != nil {
		r.t.Fatalf("failed to write document %s: %v", id, writeErr)
	}
}

// ReadDoc reads and returns the content of a vault document.
func (r *CLI) ReadDoc(id string) string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.Dir, filepath.FromSlash(id)))
	if err != nil {
		r.t.Fatalf("failed to read document %s: %v", id, err)
	}

	return string(content)
}

// Exists reports whether a vault path exists.
func (r *CLI) Exists(id string) bool {
	r.t.Helper()

	_, err := os.Stat(filepath.Join(r.Dir, filepath.FromSlash(id)))

	return err == nil
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
