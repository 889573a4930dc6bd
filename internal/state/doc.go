// Package state provides thread-safe roster state for the Kennel application.
//
// # Overview
//
// This package implements the store that holds the most recently fetched
// roster between the network layer and the UI. Fetch results land here,
// and every frame the UI renders is drawn from a snapshot taken here.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest roster
//   - Uses sync.RWMutex for concurrent access
//   - Written by fetch and delete handlers, read by the render path
//
// Snapshot:
//   - Immutable view of the roster at a point in time
//   - Contains players, fetch timestamp, and error info
//   - Returned by value with defensive copies
//
// # Update Semantics
//
// The store exposes exactly three mutations, and they are deliberately
// narrow:
//
//	// Successful fetch: the roster is replaced wholesale.
//	store.Replace(players)
//	→ snapshot.Players = players
//	→ snapshot.LastError = nil
//
//	// Failed fetch: the roster is reset to empty.
//	store.Fail(err)
//	→ snapshot.Players = nil
//	→ snapshot.LastError = err
//
//	// Successful delete: one player is removed locally, order preserved.
//	store.RemoveByID(id)
//
// Replace never merges. A fetch represents the full server roster, so the
// previous contents are always discarded. Fail resets rather than keeps:
// after a failed fetch the UI shows an empty roster instead of data the
// last fetch could not confirm. RemoveByID exists so a confirmed delete
// does not need a follow-up fetch; it filters by id equality and leaves
// fetch bookkeeping (LastUpdated, LastError) untouched.
//
// # Defensive Copying
//
// Both Replace and Snapshot copy the player slice so the UI and the store
// never share a backing array. Mutating a returned snapshot has no effect
// on later snapshots.
//
// # Offline Tracking
//
// ConsecutiveFailures counts fetch failures since the last success. The
// header uses IsOffline (two or more in a row) to distinguish a blip from
// a dead connection.
//
// # Testing Considerations
//
// The Store is safe to construct with zero value:
//
//	store := &state.Store{}  // Ready to use immediately
//
// No initialization is required, and Snapshot() on a fresh store returns
// an empty Snapshot.
package state
