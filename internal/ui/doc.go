// Package ui provides the terminal user interface for Kennel.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program: a single Model value receives messages
// (key presses, ticks, finished API calls) and returns an updated copy of
// itself plus follow-up commands. All rendering happens in View from the
// current Model state; nothing draws out of band.
//
// # Package Structure
//
// The package is organized into focused modules:
//
//   - app.go: Model, Update dispatch, message and command plumbing, and the main Run function
//   - roster.go: Roster list, selection handling, delete flow, and the split-pane layout
//   - detail.go: Full player card fetched fresh each time it is opened
//   - form.go: Add-player modal and the create flow
//   - search.go: Live fuzzy filter over the roster by name or breed
//   - logs.go: Diagnostics view tailing the structured log file
//   - header.go: Status bar and per-view command hints
//   - theme.go: Color themes and derived lipgloss styles
//
// # View Types
//
// Three main views are available, plus two overlays:
//
//   - Roster View: Player list with a summary pane for the selection
//   - Detail View: Full card for one player, refetched on open and reload
//   - Diagnostics View: Colorized tail of Kennel's own log file
//   - Add Player form and help screen render as centered modals
//
// # State Rules
//
// The roster state lives in state.Store and only three things touch it:
// a finished roster fetch replaces it wholesale, a failed roster fetch
// empties it, and a confirmed delete removes one row. Everything else
// (search, selection, the detail card) is view-local and disposable.
// Creating a player never edits the roster directly; the follow-up
// refresh is what makes the new player appear.
//
// # Event Flow
//
//  1. Run() builds the Model and starts the Bubble Tea program
//  2. Commands call the players API off the main loop and post result messages
//  3. Update applies each message and schedules the next command
//  4. An optional tick re-fetches the roster at the configured interval
//  5. Context cancellation cleanly shuts down the program
//
// # Usage Example
//
//	opts := ui.Options{
//		Context:   ctx,
//		API:       client,
//		Store:     store,
//		Config:    cfg,
//		PollEvery: 30 * time.Second,
//	}
//	if err := ui.Run(opts); err != nil {
//		log.Fatal(err)
//	}
//
// # Key Bindings
//
//   - a: Add a player
//   - d: Delete the selected player
//   - Enter: Open the full card for the selected player
//   - /: Filter the roster by name or breed
//   - r: Refresh the current view
//   - l: Diagnostics view
//   - b or ESC: Back to the roster
//   - T: Cycle theme
//   - h or ?: Help
//   - q or Ctrl+C: Quit
package ui
