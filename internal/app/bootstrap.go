package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/pupbowl/kennel/internal/pupbowl"
	"github.com/pupbowl/kennel/internal/state"
)

// bootstrap performs the initial roster fetch. A failure resets the store
// to empty rather than aborting startup; the UI renders the empty roster
// and the header reports the fetch problem.
func bootstrap(ctx context.Context, store *state.Store, api pupbowl.API) {
	players, err := api.ListPlayers(ctx)
	if err != nil {
		store.Fail(err)
		log.Warn().Err(err).Msg("initial roster fetch failed")
		return
	}
	store.Replace(players)
	log.Info().Int("players", len(players)).Msg("roster loaded")
}
