package app

import (
	"context"
	"errors"
	"testing"

	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
)

type stubAPI struct {
	players []pupbowl.Player
	err     error
}

func (s *stubAPI) ListPlayers(ctx context.Context) ([]pupbowl.Player, error) {
	return s.players, s.err
}

func (s *stubAPI) GetPlayer(ctx context.Context, id int) (pupbowl.Player, error) {
	return pupbowl.Player{}, errors.New("not implemented")
}

func (s *stubAPI) CreatePlayer(ctx context.Context, params pupbowl.CreatePlayerParams) (pupbowl.Player, error) {
	return pupbowl.Player{}, errors.New("not implemented")
}

func (s *stubAPI) DeletePlayer(ctx context.Context, id int) error {
	return errors.New("not implemented")
}

func TestBootstrap_PopulatesStore(t *testing.T) {
	store := &state.Store{}
	api := &stubAPI{players: []pupbowl.Player{{ID: 1, Name: "Biscuit"}, {ID: 2, Name: "Ziggy"}}}

	bootstrap(context.Background(), store, api)

	snap := store.Snapshot()
	if len(snap.Players) != 2 || snap.Players[0].Name != "Biscuit" {
		t.Fatalf("players = %#v, want fetched roster", snap.Players)
	}
	if snap.LastError != nil {
		t.Fatalf("LastError = %v, want nil", snap.LastError)
	}
}

func TestBootstrap_FailureResetsToEmpty(t *testing.T) {
	store := &state.Store{}
	store.Replace([]pupbowl.Player{{ID: 9}})

	api := &stubAPI{err: errors.New("connection refused")}
	bootstrap(context.Background(), store, api)

	snap := store.Snapshot()
	if len(snap.Players) != 0 {
		t.Fatalf("players = %#v, want empty after failed fetch", snap.Players)
	}
	if snap.LastError == nil {
		t.Fatalf("LastError = nil, want recorded failure")
	}
}
