// Package watch adapts filesystem notifications into the vault's document
// event stream.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"github.com/saikrn112/kanban-sync/internal/vault"
)

// eventBuffer bounds how far the consumer may fall behind before events
// back-pressure the notify goroutine.
const eventBuffer = 64

// Watcher turns fsnotify events on a vault tree into [vault.Event]
// values on a single channel. One channel, one consumer: the sequential
// delivery the engine's concurrency model relies on.
//
// fsnotify reports a rename as a Rename on the old path followed by a
// Create on the new one, so the adapter emits Deleted + Created; the
// index rebuild triggered by Created covers what an explicit Renamed
// event would.
type Watcher struct {
	fsw    *fsnotify.Watcher
	root   string
	events chan vault.Event
	log    *logrus.Logger
}

// New creates a Watcher over the vault root, registering the root and
// every non-hidden subdirectory. Directories created later are registered
// as they appear.
func New(root string, log *logrus.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	w := &Watcher{
		fsw:    fsw,
		root:   root,
		events: make(chan vault.Event, eventBuffer),
		log:    log,
	}

	addErr := w.addTree(root)
	if addErr != nil {
		_ = fsw.Close()

		return nil, addErr
	}

	return w, nil
}

// Events returns the document event channel. It is closed when Run
// returns.
func (w *Watcher) Events() <-chan vault.Event {
	return w.events
}

// Run pumps filesystem notifications into the event channel until ctx is
// canceled or the underlying watcher closes.
func (w *Watcher) Run(ctx context.Context) error {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}

			w.handle(ctx, ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}

			w.log.WithError(err).Warn("watch error")
		}
	}
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close() //nolint:wrapcheck // passthrough close
}

func (w *Watcher) handle(ctx context.Context, ev fsnotify.Event) {
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}

	id := filepath.ToSlash(rel)
	if hidden(id) {
		return
	}

	if ev.Op.Has(fsnotify.Create) {
		info, statErr := os.Stat(ev.Name)
		if statErr == nil && info.IsDir() {
			addErr := w.addTree(ev.Name)
			if addErr != nil {
				w.log.WithField("dir", id).WithError(addErr).Warn("watch registration failed")
			}

			return
		}
	}

	if !strings.HasSuffix(id, vault.MarkdownExt) {
		return
	}

	var out vault.Event

	switch {
	case ev.Op.Has(fsnotify.Create):
		out = vault.Event{Op: vault.OpCreated, ID: id}
	case ev.Op.Has(fsnotify.Write):
		out = vault.Event{Op: vault.OpModified, ID: id}
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		out = vault.Event{Op: vault.OpDeleted, ID: id}
	default:
		return
	}

	select {
	case w.events <- out:
	case <-ctx.Done():
	}
}

// addTree registers dir and all non-hidden subdirectories.
func (w *Watcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if p != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}

		addErr := w.fsw.Add(p)
		if addErr != nil {
			return fmt.Errorf("watching %s: %w", p, addErr)
		}

		return nil
	})
}

func hidden(id string) bool {
	for _, part := range strings.Split(id, "/") {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}

	return false
}
