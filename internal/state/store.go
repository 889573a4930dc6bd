package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

// Snapshot represents the latest roster data available to the UI.
type Snapshot struct {
	Players             []pupbowl.Player
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int // Number of consecutive fetch failures
}

// IsOffline returns true when the API has been unreachable for multiple fetches.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent access to the roster snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Replace swaps in a freshly fetched roster wholesale. The previous
// contents are discarded, clearing any record of earlier failures.
func (s *Store) Replace(players []pupbowl.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Players = clonePlayers(players)
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
}

// Fail records a fetch failure. The roster is reset to empty rather than
// kept, so the UI never renders data the last fetch could not confirm.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.Players = nil
	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// RemoveByID drops the player with the given id, preserving the order of
// the remaining players. It reports whether a player was removed. Players
// whose ids do not match are untouched, so a stale id is a no-op.
func (s *Store) RemoveByID(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.snapshot.Players[:0]
	removed := false
	for _, p := range s.snapshot.Players {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return false
	}
	s.snapshot.Players = kept
	return true
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Players = clonePlayers(s.snapshot.Players)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func clonePlayers(players []pupbowl.Player) []pupbowl.Player {
	if len(players) == 0 {
		return nil
	}
	dup := make([]pupbowl.Player, len(players))
	copy(dup, players)
	return dup
}
