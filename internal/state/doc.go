// Package state provides the shared catalog state container.
//
// # Overview
//
// This package implements the single mutable store holding the
// accumulated catalog entries, the search term with its derived
// filtered view, the pagination cursor, and the independent loading
// and error state for initial loads, refreshes, incremental page
// loads, and detail fetches. The controllers in internal/browse are
// the only writers of fetch state; the UI sets the search term and
// reads snapshots.
//
// # Concurrency Model
//
// All mutation happens under one mutex. The Begin* methods combine the
// in-flight check with setting the guard, so two concurrent attempts
// at the same operation class result in exactly one fetch. The
// Finish* methods clear the guard unconditionally, success or failure.
// List fetches and detail fetches are independent classes and may be
// in flight simultaneously.
//
// Replacing the list bumps an internal generation number. Incremental
// page loads carry the generation observed when the request started;
// a response arriving after a replace presents a stale generation and
// is discarded instead of re-appending old data.
//
// # Invariant
//
// After every mutation, Filtered is exactly the order-preserving
// subsequence of Entries whose names case-insensitively contain
// Search, and equals Entries when Search is empty.
//
// # Subscriptions
//
// Subscribe returns a buffered channel signalled after every mutation.
// Signals coalesce: a subscriber that has not drained the channel yet
// receives one combined notification. No global or singleton store
// exists; the container is passed by reference to whoever needs it.
package state
