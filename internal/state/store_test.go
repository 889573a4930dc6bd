package state

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/pupbowl/kennel/internal/pupbowl"
)

func roster(ids ...int) []pupbowl.Player {
	players := make([]pupbowl.Player, 0, len(ids))
	for _, id := range ids {
		players = append(players, pupbowl.Player{ID: id})
	}
	return players
}

func idsOf(players []pupbowl.Player) []int {
	ids := make([]int, 0, len(players))
	for _, p := range players {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestStore_ReplaceAndSnapshotClone(t *testing.T) {
	var s Store

	before := time.Now()
	s.Replace([]pupbowl.Player{
		{ID: 1, Name: "Biscuit"},
		{ID: 2, Name: "Ziggy"},
	})

	snap := s.Snapshot()
	if len(snap.Players) != 2 || snap.Players[0].Name != "Biscuit" {
		t.Fatalf("snapshot players = %#v, want Biscuit then Ziggy", snap.Players)
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}

	// Returned snapshot should be independent of the stored one.
	snap.Players[0].Name = "Mutated"
	snap2 := s.Snapshot()
	if snap2.Players[0].Name != "Biscuit" {
		t.Fatalf("Snapshot should clone players; got %q want Biscuit", snap2.Players[0].Name)
	}
}

func TestStore_ReplaceIsWholesale(t *testing.T) {
	var s Store

	s.Replace(roster(1, 2, 3))
	s.Replace(roster(7, 8))

	snap := s.Snapshot()
	if !reflect.DeepEqual(idsOf(snap.Players), []int{7, 8}) {
		t.Fatalf("players = %v, want second fetch only", idsOf(snap.Players))
	}
}

func TestStore_FailResetsToEmpty(t *testing.T) {
	var s Store

	s.Replace(roster(1, 2))

	before := time.Now()
	origErr := errors.New("boom")
	s.Fail(origErr)

	snap := s.Snapshot()
	if len(snap.Players) != 0 {
		t.Fatalf("players after Fail = %v, want empty", idsOf(snap.Players))
	}
	if snap.LastUpdated.Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", snap.LastUpdated, before)
	}
	if snap.LastError == nil || snap.LastError.Error() != "boom" {
		t.Fatalf("LastError = %v, want boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}

	// A later successful fetch repopulates and clears the error.
	s.Replace(roster(5))
	snap = s.Snapshot()
	if len(snap.Players) != 1 || snap.Players[0].ID != 5 {
		t.Fatalf("players after recovery = %v, want [5]", idsOf(snap.Players))
	}
	if snap.LastError != nil {
		t.Fatalf("LastError after recovery = %v, want nil", snap.LastError)
	}
}

func TestStore_RemoveByID(t *testing.T) {
	var s Store

	s.Replace(roster(1, 2, 3, 2))

	if !s.RemoveByID(2) {
		t.Fatalf("RemoveByID(2) = false, want true")
	}
	snap := s.Snapshot()
	if !reflect.DeepEqual(idsOf(snap.Players), []int{1, 3}) {
		t.Fatalf("players = %v, want [1 3] with order preserved", idsOf(snap.Players))
	}

	if s.RemoveByID(99) {
		t.Fatalf("RemoveByID(99) = true, want false for unknown id")
	}
	snap = s.Snapshot()
	if !reflect.DeepEqual(idsOf(snap.Players), []int{1, 3}) {
		t.Fatalf("players = %v, want unchanged on miss", idsOf(snap.Players))
	}

	if s.RemoveByID(1) != true || s.RemoveByID(3) != true {
		t.Fatalf("RemoveByID should remove remaining players")
	}
	if got := s.Snapshot().Players; len(got) != 0 {
		t.Fatalf("players = %v, want empty", idsOf(got))
	}
	if s.RemoveByID(1) {
		t.Fatalf("RemoveByID on empty roster = true, want false")
	}
}

func TestStore_ConsecutiveFailures(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 0 failures")
	}

	s.Fail(errors.New("fail 1"))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 1 {
		t.Fatalf("ConsecutiveFailures = %d, want 1", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false with 1 failure")
	}

	s.Fail(errors.New("fail 2"))
	snap = s.Snapshot()
	if !snap.IsOffline() {
		t.Fatal("IsOffline() = false, want true with 2 failures")
	}

	s.Replace(roster(1))
	snap = s.Snapshot()
	if snap.ConsecutiveFailures != 0 {
		t.Fatalf("ConsecutiveFailures = %d, want 0 after success", snap.ConsecutiveFailures)
	}
	if snap.IsOffline() {
		t.Fatal("IsOffline() = true, want false after success")
	}
}

func TestStore_RemoveDoesNotTouchFetchBookkeeping(t *testing.T) {
	var s Store

	s.Replace(roster(1, 2))
	stamped := s.Snapshot().LastUpdated

	time.Sleep(time.Millisecond)
	s.RemoveByID(1)

	snap := s.Snapshot()
	if !snap.LastUpdated.Equal(stamped) {
		t.Fatalf("LastUpdated changed on RemoveByID: %v != %v", snap.LastUpdated, stamped)
	}
	if snap.LastError != nil || snap.ConsecutiveFailures != 0 {
		t.Fatalf("RemoveByID should not record fetch outcomes: %#v", snap)
	}
}
