package browse

import (
	"context"
	"log/slog"

	"github.com/kmies/bestiary/internal/pokeapi"
	"github.com/kmies/bestiary/internal/state"
)

// Lister orchestrates initial, incremental, and refresh loads of the
// catalog list against the store and the gateway. Callers may invoke
// it from any goroutine; the store's guards provide single-flight per
// operation class.
type Lister struct {
	gateway  pokeapi.Gateway
	store    *state.Store
	log      *slog.Logger
	pageSize int
}

// NewLister builds a Lister. A nil logger discards output.
func NewLister(gateway pokeapi.Gateway, store *state.Store, pageSize int, log *slog.Logger) *Lister {
	if pageSize <= 0 {
		pageSize = pokeapi.DefaultPageSize
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Lister{gateway: gateway, store: store, log: log, pageSize: pageSize}
}

// LoadInitial fetches the first page and replaces the accumulated
// list. No-op when an initial or refresh fetch is already in flight.
// On failure the previous list stays and the classified message is
// recorded for display.
func (l *Lister) LoadInitial(ctx context.Context) {
	if !l.store.BeginInitial() {
		return
	}
	page, err := l.gateway.FetchPage(ctx, pokeapi.Cursor{PageSize: l.pageSize, Offset: 0})
	if err != nil {
		l.log.Warn("initial load failed", "error", err)
		l.store.FinishInitial(pokeapi.Page{}, pokeapi.Message(err))
		return
	}
	l.store.FinishInitial(page, "")
}

// LoadMore fetches the next page and appends it. No-op when a page
// load is in flight, when an initial/refresh load is active, when no
// further pages exist, or when a search term is active. Failures are
// logged and never surfaced; the current view stays intact.
func (l *Lister) LoadMore(ctx context.Context) {
	gen, cursor, ok := l.store.BeginPage()
	if !ok {
		return
	}
	page, err := l.gateway.FetchPage(ctx, cursor)
	if err != nil {
		l.log.Warn("page load failed", "offset", cursor.Offset, "error", err)
		l.store.FinishPage(gen, pokeapi.Page{}, true)
		return
	}
	l.store.FinishPage(gen, page, false)
}

// Refresh refetches the first page and replaces the list only once the
// fresh page has arrived, so a failed refresh leaves the previous list
// visible. No-op while any list fetch is in flight.
func (l *Lister) Refresh(ctx context.Context) {
	if !l.store.BeginRefresh() {
		return
	}
	page, err := l.gateway.FetchPage(ctx, pokeapi.Cursor{PageSize: l.pageSize, Offset: 0})
	if err != nil {
		l.log.Warn("refresh failed", "error", err)
		l.store.FinishRefresh(pokeapi.Page{}, pokeapi.Message(err))
		return
	}
	l.store.FinishRefresh(page, "")
}

// Retry re-runs the initial load.
func (l *Lister) Retry(ctx context.Context) {
	l.LoadInitial(ctx)
}
