// Package fs provides the filesystem abstraction the vault is built on.
//
// Two implementations are provided:
//   - [Real]: production implementation wrapping the [os] package
//   - [Injected]: testing implementation that injects deterministic failures
//
// The interface is intentionally small: it covers exactly the operations a
// vault performs (whole-file reads, atomic writes, directory listing and
// creation, stat, rename).
package fs

import "os"

// FS defines the filesystem operations the vault performs.
type FS interface {
	// ReadFile reads an entire file into memory. See [os.ReadFile].
	ReadFile(path string) ([]byte, error)

	// WriteFileAtomic writes data to a file atomically.
	// Uses a temp file + rename so readers never observe a partial write.
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error

	// ReadDir reads a directory and returns its entries sorted by name.
	// See [os.ReadDir].
	ReadDir(path string) ([]os.DirEntry, error)

	// MkdirAll creates a directory and all parents. See [os.MkdirAll].
	// No error if the directory already exists.
	MkdirAll(path string, perm os.FileMode) error

	// Stat returns file info. Returns [os.ErrNotExist] if the path is absent.
	Stat(path string) (os.FileInfo, error)

	// Exists reports whether a file or directory exists.
	// Returns (false, nil) if not found, (false, err) on other errors.
	Exists(path string) (bool, error)

	// Rename moves a file or directory. Atomic on the same filesystem.
	Rename(oldpath, newpath string) error
}
