package pupbowl

import (
	"time"
)

// Player describes a roster entry in transport-friendly form.
type Player struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Breed     string `json:"breed"`
	Status    Status `json:"status"`
	ImageURL  string `json:"imageUrl"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	TeamID    *int   `json:"teamId"`
}

// CreatePlayerParams carries the fields accepted by POST /players.
// Field order and JSON names match the service contract exactly.
type CreatePlayerParams struct {
	Name     string `json:"name"`
	Breed    string `json:"breed"`
	Status   Status `json:"status"`
	ImageURL string `json:"imageUrl"`
}

// EnvelopeError mirrors the error object the service embeds in envelopes.
type EnvelopeError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// PlayerListResponse mirrors GET /players.
type PlayerListResponse struct {
	Success bool           `json:"success"`
	Error   *EnvelopeError `json:"error"`
	Data    struct {
		Players []Player `json:"players"`
	} `json:"data"`
}

// PlayerResponse mirrors GET /players/{id} and POST /players. Unlike the
// list envelope these carry no success flag; a 2xx status and a present
// player object are the success signal.
type PlayerResponse struct {
	Data struct {
		Player *Player `json:"player"`
	} `json:"data"`
}

// ParsedCreatedAt returns the parsed CreatedAt timestamp.
func (p Player) ParsedCreatedAt() time.Time {
	return parseTime(p.CreatedAt)
}

// ParsedUpdatedAt returns the parsed UpdatedAt timestamp.
func (p Player) ParsedUpdatedAt() time.Time {
	return parseTime(p.UpdatedAt)
}

func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t
		}
	}
	return time.Time{}
}
