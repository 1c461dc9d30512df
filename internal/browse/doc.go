// Package browse contains the fetch controllers that sit between the
// UI and the catalog gateway.
//
// Lister owns the list lifecycle: initial load, pull-style refresh,
// and incremental page loads for infinite scroll. Detailer owns the
// per-entry record shown on the detail screen. Both mutate only the
// shared state.Store and rely on its guards for single-flight
// semantics, so invoking them concurrently from UI commands is safe.
//
// Failure severity follows the screen contract: initial, refresh, and
// detail failures record a classified user-facing message in the
// store; incremental page failures are logged and swallowed so the
// user's position and data stay intact. No controller retries on its
// own; retry is always an explicit user action.
package browse
