// Package vault implements the document store over a markdown vault: a
// directory tree of .md documents addressed by vault-relative slash paths.
package vault

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/saikrn112/kanban-sync/internal/frontmatter"
	"github.com/saikrn112/kanban-sync/internal/fs"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600

	// MarkdownExt is the document file extension.
	MarkdownExt = ".md"
)

// ErrDestinationExists is returned by [Vault.Move] on a name collision.
var ErrDestinationExists = errors.New("destination already exists")

// Vault is a document store rooted at a directory. Document ids are
// vault-relative slash-separated paths ("projects/tasks/Task A.md").
type Vault struct {
	fsys fs.FS
	root string
	log  *logrus.Logger
}

// New creates a Vault rooted at root. A nil logger discards diagnostics.
func New(root string, fsys fs.FS, log *logrus.Logger) *Vault {
	if log == nil {
		log = logrus.New()
		log.SetOutput(os.Stderr)
		log.SetLevel(logrus.PanicLevel)
	}

	return &Vault{fsys: fsys, root: root, log: log}
}

// Root returns the vault's root directory.
func (v *Vault) Root() string {
	return v.root
}

// Abs converts a document id to an absolute filesystem path.
func (v *Vault) Abs(id string) string {
	return filepath.Join(v.root, filepath.FromSlash(id))
}

// List returns the ids of all markdown documents in the vault, sorted.
// Dot-prefixed files and directories are skipped. An empty vault yields an
// empty list.
func (v *Vault) List() ([]string, error) {
	var ids []string

	err := v.walk("", &ids)
	if err != nil {
		return nil, err
	}

	sort.Strings(ids)

	return ids, nil
}

func (v *Vault) walk(dir string, ids *[]string) error {
	entries, err := v.fsys.ReadDir(filepath.Join(v.root, filepath.FromSlash(dir)))
	if err != nil {
		if os.IsNotExist(err) && dir == "" {
			return nil
		}

		return fmt.Errorf("reading vault directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		child := path.Join(dir, name)

		if entry.IsDir() {
			walkErr := v.walk(child, ids)
			if walkErr != nil {
				return walkErr
			}

			continue
		}

		if strings.HasSuffix(name, MarkdownExt) {
			*ids = append(*ids, child)
		}
	}

	return nil
}

// ReadText returns the raw contents of a document.
func (v *Vault) ReadText(id string) (string, error) {
	content, err := v.fsys.ReadFile(v.Abs(id))
	if err != nil {
		return "", fmt.Errorf("reading document: %w", err)
	}

	return string(content), nil
}

// Metadata returns the document's frontmatter, or nil when the document is
// unreadable or has no frontmatter block. Parse anomalies never propagate;
// a missing record and a malformed record look the same to callers.
func (v *Vault) Metadata(id string) frontmatter.Frontmatter {
	content, err := v.fsys.ReadFile(v.Abs(id))
	if err != nil {
		v.log.WithField("id", id).WithError(err).Debug("metadata read failed")

		return nil
	}

	fm, ok := frontmatter.Parse(content)
	if !ok {
		return nil
	}

	return fm
}

// MutateMetadata writes fields into the document's frontmatter in place,
// preserving every other line, and persists the result atomically. A
// document without a frontmatter block gets one created.
func (v *Vault) MutateMetadata(id string, fields []frontmatter.Field) error {
	abs := v.Abs(id)

	content, err := v.fsys.ReadFile(abs)
	if err != nil {
		return fmt.Errorf("reading document: %w", err)
	}

	updated := frontmatter.SetFields(content, fields)

	writeErr := v.fsys.WriteFileAtomic(abs, updated, filePerms)
	if writeErr != nil {
		return fmt.Errorf("writing document: %w", writeErr)
	}

	return nil
}

// MkdirAll ensures a vault-relative directory exists.
func (v *Vault) MkdirAll(dir string) error {
	err := v.fsys.MkdirAll(filepath.Join(v.root, filepath.FromSlash(dir)), dirPerms)
	if err != nil {
		return fmt.Errorf("creating folder %s: %w", dir, err)
	}

	return nil
}

// Move relocates a document to a new id, creating parent folders as
// needed. Moving onto an existing document fails with
// [ErrDestinationExists] rather than overwriting it.
func (v *Vault) Move(id, newID string) error {
	dest := v.Abs(newID)

	mkdirErr := v.fsys.MkdirAll(filepath.Dir(dest), dirPerms)
	if mkdirErr != nil {
		return fmt.Errorf("creating folder for %s: %w", newID, mkdirErr)
	}

	exists, err := v.fsys.Exists(dest)
	if err != nil {
		return fmt.Errorf("checking destination %s: %w", newID, err)
	}

	if exists {
		return fmt.Errorf("%w: %s", ErrDestinationExists, newID)
	}

	renameErr := v.fsys.Rename(v.Abs(id), dest)
	if renameErr != nil {
		return fmt.Errorf("moving %s: %w", id, renameErr)
	}

	return nil
}
