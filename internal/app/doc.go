// Package app provides the orchestration layer for bestiary.
//
// # Overview
//
// This package is the composition root. Run loads configuration and
// user preferences, opens the log file, builds the catalog client,
// the shared state store, and the two fetch controllers, then hands
// everything to the UI and blocks until the user quits or the
// context is cancelled.
//
// # Data Flow
//
//	Run()
//	 ├─> config.Load()        settings (endpoint, page size, log path)
//	 ├─> prefs.Load()         user preferences (theme)
//	 ├─> openLogger()         slog via tint into the log file
//	 ├─> pokeapi.NewClient()  HTTP gateway
//	 ├─> state.NewStore()     shared catalog state
//	 ├─> browse.NewLister()   list-fetch controller
//	 ├─> browse.NewDetailer() detail-fetch controller
//	 └─> ui.Run()             Bubble Tea program (blocks)
//
// The UI triggers controller operations through commands; controllers
// mutate the store; the store notifies the UI through its subscription
// channel. No component reaches around this loop.
//
// # Error Handling
//
// Configuration and client construction failures are fatal and
// returned from Run. A missing or unwritable log file only downgrades
// logging to a no-op: the browser must work without it.
package app
