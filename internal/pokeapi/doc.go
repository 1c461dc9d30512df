// Package pokeapi provides an HTTP client for a PokéAPI-compatible
// creature-catalog service.
//
// # Overview
//
// The package owns the two read-only operations the rest of the
// application consumes: fetching one page of catalog entries and
// fetching the full record for a single entry by id. Raw API payloads
// are normalized into UI-friendly types at this boundary, so no other
// package sees wire-format details.
//
// # Architecture
//
//   - client.go: HTTP client, request handling, Gateway interface
//   - types.go: wire payloads and the normalized Entry/EntryDetail types
//   - errors.go: failure classification into user-facing categories
//
// # Client Usage
//
//	client, err := pokeapi.NewClient("", 0) // public endpoint, default timeout
//	if err != nil {
//		log.Fatalf("init client: %v", err)
//	}
//
//	page, err := client.FetchPage(ctx, pokeapi.Cursor{PageSize: 20, Offset: 0})
//	detail, err := client.FetchDetail(ctx, 25)
//
// # Error Classification
//
// Failures are wrapped in *APIError carrying a Kind: timeout, offline,
// not-found, rate-limited, server, or unknown. Message(err) maps any
// error to the single human-readable string shown to the user for its
// class. Classification inspects the transport error for requests that
// never produced a response and the HTTP status for those that did.
//
// # Pagination Contract
//
// Page.HasMore is derived from the payload's next link. Callers must
// not infer the end of the catalog from a short page.
package pokeapi
