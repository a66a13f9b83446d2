package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saikrn112/kanban-sync/internal/fs"
)

// Contract: hooks see every mutating call and can short-circuit it; nil
// hooks pass straight through.
func Test_Injected_InterceptsWritesAndRenames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	injected := fs.NewInjected(fs.NewReal())

	writes := 0
	injected.OnWrite = func(string) error {
		writes++

		return nil
	}

	path := filepath.Join(dir, "a.txt")

	err := injected.WriteFileAtomic(path, []byte("hello"), 0o600)
	if err != nil {
		t.Fatalf("write: %v", err)
	}

	if writes != 1 {
		t.Errorf("writes = %d, want 1", writes)
	}

	content, readErr := injected.ReadFile(path)
	if readErr != nil || string(content) != "hello" {
		t.Errorf("read back = %q, %v", content, readErr)
	}

	// A failing rename hook blocks the move.
	injected.OnRename = func(string, string) error {
		return errors.New("injected")
	}

	renameErr := injected.Rename(path, filepath.Join(dir, "b.txt"))
	if renameErr == nil {
		t.Fatal("rename should fail through the hook")
	}

	if _, statErr := os.Stat(path); statErr != nil {
		t.Errorf("blocked rename should leave the source in place: %v", statErr)
	}
}

// A failing write hook leaves the previous file contents intact.
func Test_Injected_BlockedWriteLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")

	err := os.WriteFile(path, []byte("original"), 0o600)
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	injected := fs.NewInjected(fs.NewReal())
	injected.OnWrite = func(string) error {
		return errors.New("injected")
	}

	writeErr := injected.WriteFileAtomic(path, []byte("replacement"), 0o600)
	if writeErr == nil {
		t.Fatal("write should fail through the hook")
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil || string(content) != "original" {
		t.Errorf("file = %q, %v, want original contents", content, readErr)
	}
}
