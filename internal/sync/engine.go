// Package sync reconciles item metadata against board state and derives
// each item's filesystem placement from the resulting status.
package sync

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/saikrn112/kanban-sync/internal/board"
	"github.com/saikrn112/kanban-sync/internal/config"
	"github.com/saikrn112/kanban-sync/internal/frontmatter"
	"github.com/saikrn112/kanban-sync/internal/notify"
	"github.com/saikrn112/kanban-sync/internal/policy"
	"github.com/saikrn112/kanban-sync/internal/vault"
)

// Frontmatter keys for the Eisenhower flags. The status key comes from
// configuration.
const (
	fieldUrgent    = "urgent"
	fieldImportant = "important"
)

// notifyDuration is how long a change notice stays visible on hosts that
// support dismissal.
const notifyDuration = 4 * time.Second

// Engine orchestrates board syncs: parse the board, resolve each card's
// target state, write metadata where it differs, and re-place the item's
// document when its archival state changed.
type Engine struct {
	vault    *vault.Vault
	index    *board.Index
	cfg      config.Config
	table    policy.Table
	notifier notify.Notifier
	log      *logrus.Logger
	session  session

	// DryRun reports pending writes and moves without applying them.
	DryRun bool
}

// New creates an Engine. A nil notifier disables change notices.
func New(v *vault.Vault, idx *board.Index, cfg config.Config, notifier notify.Notifier, log *logrus.Logger) *Engine {
	if notifier == nil {
		notifier = notify.Discard
	}

	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}

	return &Engine{
		vault:    v,
		index:    idx,
		cfg:      cfg,
		table:    cfg.QuadrantTable(),
		notifier: notifier,
		log:      log,
	}
}

// Index returns the engine's board index.
func (e *Engine) Index() *board.Index {
	return e.index
}

// SyncBoard reconciles every card on one board, in parse order.
//
// Items are processed sequentially; an error on one item is logged and
// does not abort its siblings. A board that parses to zero cards is a
// no-op: no metadata is read and nothing is written. The sync session is
// held for the whole call so that events caused by the engine's own
// writes are not mistaken for external board edits.
func (e *Engine) SyncBoard(id string) error {
	if !e.session.begin(id) {
		e.log.WithField("board", id).Debug("sync already in progress, skipping")

		return nil
	}
	defer e.session.end()

	text, err := e.vault.ReadText(id)
	if err != nil {
		return fmt.Errorf("reading board %s: %w", id, err)
	}

	cards := board.Parse(text)
	if len(cards) == 0 {
		e.log.WithField("board", id).Debug("board has no cards")

		return nil
	}

	for _, card := range cards {
		cardErr := e.syncCard(card)
		if cardErr != nil {
			e.log.WithFields(logrus.Fields{
				"board": id,
				"card":  card.Target,
			}).WithError(cardErr).Warn("card sync failed")
		}
	}

	return nil
}

// SyncAll rebuilds the board index and syncs every known board.
func (e *Engine) SyncAll() error {
	err := e.index.Rebuild(e.vault)
	if err != nil {
		return fmt.Errorf("rebuilding board index: %w", err)
	}

	for _, id := range e.index.Boards() {
		syncErr := e.SyncBoard(id)
		if syncErr != nil {
			e.log.WithField("board", id).WithError(syncErr).Warn("board sync failed")
		}
	}

	return nil
}

// syncCard reconciles a single card. Unresolvable targets are a soft
// no-op. The metadata write and the placement move are not transactional:
// a move failure surfaces as the card's error, but the metadata change
// already committed stays.
func (e *Engine) syncCard(card board.Card) error {
	target := e.table.Resolve(card.Column)

	itemID := e.vault.ResolveLink(card.Target)
	if itemID == "" {
		e.log.WithField("card", card.Target).Debug("card link does not resolve, skipping")

		return nil
	}

	fm := e.vault.Metadata(itemID)
	curStatus, _ := fm.GetString(e.cfg.StatusProperty)

	needsUpdate := curStatus != target.Status

	if target.Quadrant {
		curUrgent, _ := fm.GetBool(fieldUrgent)
		curImportant, _ := fm.GetBool(fieldImportant)
		needsUpdate = needsUpdate || curUrgent != target.Urgent || curImportant != target.Important
	}

	if !needsUpdate {
		return nil
	}

	if e.DryRun {
		e.notifier.Notify(fmt.Sprintf("would set %s: %s", itemName(itemID), target.Status), notifyDuration)

		return nil
	}

	fields := []frontmatter.Field{{Key: e.cfg.StatusProperty, Value: target.Status}}
	if target.Quadrant {
		fields = append(fields,
			frontmatter.Field{Key: fieldUrgent, Value: frontmatter.BoolString(target.Urgent)},
			frontmatter.Field{Key: fieldImportant, Value: frontmatter.BoolString(target.Important)},
		)
	}

	err := e.vault.MutateMetadata(itemID, fields)
	if err != nil {
		return fmt.Errorf("updating metadata: %w", err)
	}

	if e.cfg.ShowNotifications {
		e.notifier.Notify(fmt.Sprintf("%s → %s", itemName(itemID), target.Status), notifyDuration)
	}

	placeErr := e.placeItem(itemID, target.Status)
	if placeErr != nil {
		return fmt.Errorf("placing item: %w", placeErr)
	}

	return nil
}

// HandleEvent reacts to one document-change event. Board events arriving
// while a sync session is active are ignored: they would be the engine's
// own writes reflected back as external edits.
func (e *Engine) HandleEvent(ev vault.Event) {
	if e.session.active() && e.index.IsBoard(ev.ID) {
		e.log.WithField("id", ev.ID).Debug("board event suppressed during sync")

		return
	}

	switch ev.Op {
	case vault.OpCreated, vault.OpRenamed:
		err := e.index.Rebuild(e.vault)
		if err != nil {
			e.log.WithError(err).Warn("board index rebuild failed")
		}
	case vault.OpDeleted:
		e.index.Forget(ev.ID)
	case vault.OpModified:
		if !e.index.IsBoard(ev.ID) {
			return
		}

		err := e.SyncBoard(ev.ID)
		if err != nil {
			e.log.WithField("board", ev.ID).WithError(err).Warn("board sync failed")
		}
	}
}

// itemName is the display name of a document: its basename without the
// extension.
func itemName(id string) string {
	return strings.TrimSuffix(path.Base(id), vault.MarkdownExt)
}
