package fs

import "os"

// Injected wraps an [FS] and intercepts mutating operations through hooks.
//
// A nil hook passes the call straight through. A hook returning a non-nil
// error short-circuits the operation; returning nil lets it proceed. Hooks
// see every call, which also makes Injected useful for counting writes and
// moves in tests.
type Injected struct {
	FS

	// OnWrite runs before every WriteFileAtomic.
	OnWrite func(path string) error

	// OnRename runs before every Rename.
	OnRename func(oldpath, newpath string) error
}

// NewInjected wraps base with no hooks installed.
func NewInjected(base FS) *Injected {
	return &Injected{FS: base}
}

func (i *Injected) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if i.OnWrite != nil {
		err := i.OnWrite(path)
		if err != nil {
			return err
		}
	}

	return i.FS.WriteFileAtomic(path, data, perm)
}

func (i *Injected) Rename(oldpath, newpath string) error {
	if i.OnRename != nil {
		err := i.OnRename(oldpath, newpath)
		if err != nil {
			return err
		}
	}

	return i.FS.Rename(oldpath, newpath)
}

// Compile-time interface check.
var _ FS = (*Injected)(nil)
