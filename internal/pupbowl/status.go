package pupbowl

import (
	"unicode"
	"unicode/utf8"
)

// Status represents a player's competition status.
type Status string

const (
	// StatusField marks a player currently on the field.
	StatusField Status = "field"
	// StatusBench marks a player waiting on the bench.
	StatusBench Status = "bench"
)

// String returns the raw status value.
func (s Status) String() string {
	return string(s)
}

// Known reports whether the status is one the service documents.
func (s Status) Known() bool {
	switch s {
	case StatusField, StatusBench:
		return true
	}
	return false
}

// Display returns a human-readable label for the status.
// Unknown values are shown as-is so new server states stay visible.
func (s Status) Display() string {
	switch s {
	case StatusField:
		return "Field"
	case StatusBench:
		return "Bench"
	case "":
		return "Unknown"
	}
	r, size := utf8.DecodeRuneInString(string(s))
	return string(unicode.ToUpper(r)) + string(s)[size:]
}
