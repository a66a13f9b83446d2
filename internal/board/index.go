package board

import (
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/saikrn112/kanban-sync/internal/vault"
)

// Index tracks which vault documents are boards: documents whose
// frontmatter carries a truthy marker attribute.
//
// The index is rebuilt in full on every create/rename event rather than
// diffed incrementally; scans are cheap relative to event frequency, and
// rebuilds are idempotent.
type Index struct {
	mu     sync.Mutex
	marker string
	boards map[string]struct{}
	log    *logrus.Logger
}

// NewIndex creates an empty index keyed on the given marker attribute.
func NewIndex(marker string, log *logrus.Logger) *Index {
	return &Index{
		marker: marker,
		boards: make(map[string]struct{}),
		log:    log,
	}
}

// Rebuild scans every vault document and replaces the known-board set.
// An empty vault yields an empty index.
func (i *Index) Rebuild(v *vault.Vault) error {
	ids, err := v.List()
	if err != nil {
		return err
	}

	boards := make(map[string]struct{})

	for _, id := range ids {
		if v.Metadata(id).Truthy(i.marker) {
			boards[id] = struct{}{}
		}
	}

	i.mu.Lock()
	i.boards = boards
	i.mu.Unlock()

	if i.log != nil {
		i.log.WithField("boards", len(boards)).Debug("board index rebuilt")
	}

	return nil
}

// Forget removes one document from the known-board set.
func (i *Index) Forget(id string) {
	i.mu.Lock()
	delete(i.boards, id)
	i.mu.Unlock()
}

// IsBoard reports whether id is a known board.
func (i *Index) IsBoard(id string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()

	_, ok := i.boards[id]

	return ok
}

// Boards returns the known board ids, sorted.
func (i *Index) Boards() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	ids := make([]string, 0, len(i.boards))
	for id := range i.boards {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
