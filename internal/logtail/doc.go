// Package logtail reads and decodes Kennel's own diagnostics log.
//
// # Overview
//
// Kennel writes structured zerolog JSON to a log file because stderr
// belongs to the terminal UI. This package implements tail-like reading
// of that file and decodes each line back into a displayable event, so
// the diagnostics view can show recent activity without leaving the app.
//
// # Reading
//
// Read returns the last N lines using a fixed-size ring buffer, so only
// maxLines strings are retained no matter how large the file has grown.
// A non-positive maxLines returns the whole file. A missing file is not
// an error; it reads as empty, which is the normal state on first run.
//
// # Decoding
//
// ParseLine understands the zerolog JSON shape:
//
//	{"level":"warn","error":"...","time":"2026-08-25T14:03:22Z","message":"roster refresh failed"}
//
// The level, time, and message keys map onto Entry fields; every other
// key becomes a Field, sorted by key for stable display. Lines that are
// not valid JSON fall back to a message-only Entry carrying the raw
// text, so a corrupted log never breaks the view.
//
// # Separation of Concerns
//
// This package reads and decodes; the UI decides colors and layout.
// Entries carry no styling.
package logtail
