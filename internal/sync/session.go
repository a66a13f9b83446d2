package sync

import "sync"

// session is the suppression state machine: Idle, or Syncing one board.
//
// The original design held a process-wide boolean for this; a guarded
// state machine keeps the same single-flag semantics while staying
// correct if the host ever delivers events from more than one goroutine.
type session struct {
	mu      sync.Mutex
	syncing bool
	boardID string
}

// begin moves the session to Syncing(boardID). Returns false when a sync
// is already running, in which case the caller must not proceed.
func (s *session) begin(boardID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.syncing {
		return false
	}

	s.syncing = true
	s.boardID = boardID

	return true
}

// end returns the session to Idle.
func (s *session) end() {
	s.mu.Lock()
	s.syncing = false
	s.boardID = ""
	s.mu.Unlock()
}

// active reports whether a sync is in flight.
func (s *session) active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.syncing
}
