// Package ui provides the terminal user interface for Bestiary.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is the single root model; it
// holds the latest state.Snapshot and switches between three views
// (catalog list, entry detail, debug log). All mutations of shared
// state happen in the browse controllers, which run inside tea.Cmd
// goroutines; the model itself only reads snapshots.
//
// # Package Structure
//
//   - ui.go: root model, messages, commands, the update loop, and Run
//   - list.go: catalog list rendering, selection, and infinite scroll
//   - search.go: the focused search input with debounced store updates
//   - detail.go: entry detail view with animated stat bars
//   - logs.go: tail of the application's own log file
//   - header.go, help.go: chrome shared across views
//   - keys.go, theme.go: bindings and color themes
//
// # State Flow
//
// The model subscribes to the store at construction. Each
// storeUpdateMsg pulls a fresh snapshot and re-arms the subscription
// wait, so the loop always renders the latest state no matter how
// many store mutations were coalesced in between.
package ui
