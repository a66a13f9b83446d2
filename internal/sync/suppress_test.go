package sync_test

import (
	"testing"
	"time"

	"github.com/saikrn112/kanban-sync/internal/board"
	"github.com/saikrn112/kanban-sync/internal/config"
	"github.com/saikrn112/kanban-sync/internal/sync"
	"github.com/saikrn112/kanban-sync/internal/vault"
)

// reentrant delivers an event back to the engine from inside a sync, the
// way a watcher thread would when the engine's own write comes back as a
// change event.
type reentrant struct {
	deliver func()
}

func (r *reentrant) Notify(string, time.Duration) {
	r.deliver()
}

// Contract: board events arriving while a sync session is active are the
// engine's own writes reflected back, and must be ignored.
func Test_HandleEvent_SuppressesBoardEvents_DuringSync(t *testing.T) {
	t.Parallel()

	cfg := config.Default()

	f := newFixture(t, cfg, map[string]string{
		"board.md":  boardHeader + "## in-progress\n- [ ] [[Task A]]\n",
		"Task A.md": "---\nstatus: open\n---\n",
	})

	// The notifier fires mid-sync, while the session is active. A board
	// deletion event delivered then must be suppressed, so the board
	// stays indexed.
	var engine *sync.Engine

	hook := &reentrant{deliver: func() {
		engine.HandleEvent(vault.Event{Op: vault.OpDeleted, ID: "board.md"})
	}}

	idx := board.NewIndex(cfg.BoardMarker, nil)
	engine = sync.New(f.vault, idx, cfg, hook, nil)

	rebuildErr := idx.Rebuild(f.vault)
	if rebuildErr != nil {
		t.Fatalf("rebuild: %v", rebuildErr)
	}

	err := engine.SyncBoard("board.md")
	if err != nil {
		t.Fatalf("sync: %v", err)
	}

	if !idx.IsBoard("board.md") {
		t.Error("board event during sync should be suppressed, board forgotten")
	}

	// The same event outside a sync session applies normally.
	engine.HandleEvent(vault.Event{Op: vault.OpDeleted, ID: "board.md"})

	if idx.IsBoard("board.md") {
		t.Error("board event outside a sync session should apply")
	}
}
