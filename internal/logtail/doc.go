// Package logtail reads the tail of the application's own log file
// for the debug view.
//
// Read extracts the last N lines with a single sequential pass and a
// ring buffer, so memory stays O(N) regardless of how large the log
// has grown. LevelOf recognizes the level tokens the tint slog
// handler writes, letting the UI style lines per level without
// parsing timestamps or attributes.
package logtail
