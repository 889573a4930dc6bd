// Package pupbowl provides an HTTP client for the Puppy Bowl players API.
//
// # Overview
//
// This package defines the API client for the hosted Puppy Bowl roster
// service. It handles HTTP communication, JSON envelope decoding, and
// type-safe representation of players and their competition status.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the players API schema
//   - status.go: The player status enum and its display helpers
//
// # Client Usage
//
// Create a client using the cohort base URL from configuration:
//
//	client, err := pupbowl.NewClient(cfg.APIURL, cfg.Timeout())
//	if err != nil {
//		log.Fatal().Err(err).Msg("failed to create client")
//	}
//
//	// Fetch the full roster
//	players, err := client.ListPlayers(ctx)
//
//	// Fetch a single player
//	player, err := client.GetPlayer(ctx, 42)
//
//	// Add a player
//	created, err := client.CreatePlayer(ctx, pupbowl.CreatePlayerParams{
//		Name:   "Biscuit",
//		Breed:  "Corgi",
//		Status: pupbowl.StatusBench,
//	})
//
//	// Remove a player
//	err = client.DeletePlayer(ctx, 42)
//
// # API Endpoints
//
// The client covers the four roster endpoints:
//
//   - GET /players: Full roster wrapped in a success envelope
//   - GET /players/{id}: Single player wrapped in a data envelope
//   - POST /players: Create a player from a JSON body
//   - DELETE /players/{id}: Remove a player
//
// All endpoints are resolved against the cohort base URL, which includes a
// path segment identifying the cohort (for example
// "https://fsa-puppy-bowl.herokuapp.com/api/2302-acc-pt-web-pt-a").
//
// # Envelope Handling
//
// The list endpoint wraps the roster in a flagged envelope:
//
//	{"success": true, "error": null, "data": {"players": [...]}}
//
// ListPlayers rejects envelopes that report failure or that omit the
// players array entirely; both cases surface as errors so callers can
// decide how to degrade.
//
// Single-player responses carry a bare data envelope with no success
// flag:
//
//	{"data": {"player": {...}}}
//
// For GetPlayer and CreatePlayer the success signal is a 2xx status plus
// a present player object; an envelope with no player object is an
// error, and stray flag keys are ignored.
//
// # Error Handling
//
// The client distinguishes between several error types:
//
//   - Client initialization errors: Invalid base URL
//   - Network errors: Connection refused, timeout, DNS failure
//   - HTTP errors: Non-2xx status codes, reported as *RequestError
//   - Deserialization errors: Malformed JSON or malformed envelopes
//
// Non-2xx responses always produce a *RequestError carrying the request
// URL and status code, so callers can branch on errors.As and read
// StatusCode(). All other failures are wrapped with descriptive context
// using fmt.Errorf.
//
// # Timestamp Parsing
//
// Player provides helper methods for timestamp parsing:
//
//   - ParsedCreatedAt(): Returns time.Time for the creation timestamp
//   - ParsedUpdatedAt(): Returns time.Time for the last update timestamp
//
// The service emits RFC3339 timestamps with fractional seconds; both
// RFC3339Nano and plain RFC3339 are accepted. Invalid or missing
// timestamps return time.Time{} (zero value).
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying
// http.Client handles connection pooling and concurrent requests
// internally.
//
// # Design Rationale
//
// The package is intentionally minimal:
//
//   - No caching (the state store holds the roster between fetches)
//   - No retries (the UI decides when to refresh)
//   - No request validation (the service accepts what it accepts)
//
// The API interface exists so the UI can be driven by a stub in tests
// without a network round trip.
package pupbowl
