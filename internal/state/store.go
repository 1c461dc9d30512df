package state

import (
	"sync"
	"time"

	"github.com/kmies/bestiary/internal/pokeapi"
)

// Snapshot is the latest catalog state available to the UI.
type Snapshot struct {
	// Accumulated entries in arrival order and the derived filtered
	// view for the current search term.
	Entries  []pokeapi.Entry
	Filtered []pokeapi.Entry
	Search   string

	Cursor  pokeapi.Cursor
	HasMore bool
	Total   int

	// Initial/refresh load state. ListError carries the classified
	// user-facing message, empty when the last fetch succeeded.
	Loading    bool
	Refreshing bool
	ListError  string

	// Incremental page load state. Page failures never set ListError.
	LoadingMore bool

	// Detail record state, independent of the list lifecycle.
	Detail        *pokeapi.EntryDetail
	DetailID      int
	DetailLoading bool
	DetailError   string

	LastUpdated time.Time
}

// Store is the single shared catalog state container. All mutation
// happens through its methods under one mutex; consumers observe it
// through Snapshot and the Subscribe channel. In-flight guards for
// each fetch class live here so that check-and-set is atomic.
type Store struct {
	mu        sync.Mutex
	snap      Snapshot
	gen       uint64
	detailGen uint64
	subs      []chan struct{}
}

// NewStore creates an empty store whose cursor starts at offset zero.
func NewStore(pageSize int) *Store {
	if pageSize <= 0 {
		pageSize = pokeapi.DefaultPageSize
	}
	return &Store{
		snap: Snapshot{Cursor: pokeapi.Cursor{PageSize: pageSize}},
	}
}

// Subscribe returns a channel that receives a coalesced signal after
// every mutation. The channel is never closed.
func (s *Store) Subscribe() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan struct{}, 1)
	s.subs = append(s.subs, ch)
	return ch
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.snap
	snap.Entries = cloneEntries(s.snap.Entries)
	snap.Filtered = cloneEntries(s.snap.Filtered)
	if s.snap.Detail != nil {
		detail := *s.snap.Detail
		snap.Detail = &detail
	}
	return snap
}

// SetSearch updates the search term and recomputes the filtered view.
func (s *Store) SetSearch(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Search == term {
		return
	}
	s.snap.Search = term
	s.refilter()
	s.notify()
}

// BeginInitial arms the initial-load guard. Returns false when an
// initial or refresh fetch is already in flight.
func (s *Store) BeginInitial() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Loading || s.snap.Refreshing {
		return false
	}
	s.snap.Loading = true
	s.snap.ListError = ""
	s.notify()
	return true
}

// FinishInitial settles an initial load. On success the accumulated
// entries are replaced and the cursor advances past the first page; on
// failure the classified message is recorded and the entries are left
// untouched. The guard is cleared either way.
func (s *Store) FinishInitial(page pokeapi.Page, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Loading = false
	if errMsg != "" {
		s.snap.ListError = errMsg
	} else {
		s.replace(page)
	}
	s.snap.LastUpdated = time.Now()
	s.notify()
}

// BeginRefresh arms the refresh guard. Returns false when any list
// fetch is in flight.
func (s *Store) BeginRefresh() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.Loading || s.snap.Refreshing || s.snap.LoadingMore {
		return false
	}
	s.snap.Refreshing = true
	s.snap.ListError = ""
	s.notify()
	return true
}

// FinishRefresh settles a refresh. The previous entries are replaced
// only on success, so a failed refresh keeps the old list visible.
func (s *Store) FinishRefresh(page pokeapi.Page, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.Refreshing = false
	if errMsg != "" {
		s.snap.ListError = errMsg
	} else {
		s.replace(page)
	}
	s.snap.LastUpdated = time.Now()
	s.notify()
}

// BeginPage arms the incremental-load guard and returns the cursor to
// request together with the generation the response must present to
// be applied. Returns ok=false when another page load is in flight,
// when an initial/refresh load is active, when no further pages are
// known to exist, or when a search term is active.
func (s *Store) BeginPage() (gen uint64, cursor pokeapi.Cursor, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.LoadingMore || s.snap.Loading || s.snap.Refreshing {
		return 0, pokeapi.Cursor{}, false
	}
	if !s.snap.HasMore || s.snap.Search != "" {
		return 0, pokeapi.Cursor{}, false
	}
	s.snap.LoadingMore = true
	s.notify()
	return s.gen, s.snap.Cursor, true
}

// FinishPage settles an incremental load. A page whose generation no
// longer matches (the list was replaced while the request was in
// flight) is discarded. Failures only clear the guard; the caller logs
// them.
func (s *Store) FinishPage(gen uint64, page pokeapi.Page, failed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap.LoadingMore = false
	if !failed && gen == s.gen {
		s.snap.Entries = append(s.snap.Entries, page.Entries...)
		s.snap.Cursor.Offset += s.snap.Cursor.PageSize
		s.snap.HasMore = page.HasMore
		s.snap.Total = page.Total
		s.refilter()
		s.snap.LastUpdated = time.Now()
	}
	s.notify()
}

// BeginDetail arms the detail guard for id and returns the generation
// the response must present to be applied. Returns ok=false when a
// detail fetch is already in flight.
func (s *Store) BeginDetail(id int) (gen uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snap.DetailLoading {
		return 0, false
	}
	s.detailGen++
	s.snap.DetailLoading = true
	s.snap.DetailError = ""
	s.snap.DetailID = id
	s.notify()
	return s.detailGen, true
}

// FinishDetail settles a detail fetch. A response whose generation no
// longer matches (the view was reset, and possibly re-entered for a
// different id, while the request was in flight) is discarded without
// touching the guard, which by then belongs to the newer request or
// was already cleared by ResetDetail.
func (s *Store) FinishDetail(gen uint64, detail *pokeapi.EntryDetail, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.detailGen {
		return
	}
	s.snap.DetailLoading = false
	if errMsg != "" {
		s.snap.Detail = nil
		s.snap.DetailError = errMsg
	} else {
		s.snap.Detail = detail
	}
	s.notify()
}

// ResetDetail clears the stored detail record, error, and guard, so
// that re-entering the detail view never shows stale data. Bumping the
// generation orphans any in-flight fetch.
func (s *Store) ResetDetail() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.detailGen++
	s.snap.Detail = nil
	s.snap.DetailID = 0
	s.snap.DetailError = ""
	s.snap.DetailLoading = false
	s.notify()
}

// DetailID returns the id of the last requested detail record.
func (s *Store) DetailID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.DetailID
}

// replace swaps in a fresh first page and bumps the generation so any
// in-flight incremental load from the old list is discarded on arrival.
func (s *Store) replace(page pokeapi.Page) {
	s.gen++
	s.snap.Entries = cloneEntries(page.Entries)
	s.snap.Cursor.Offset = s.snap.Cursor.PageSize
	s.snap.HasMore = page.HasMore
	s.snap.Total = page.Total
	s.refilter()
}

// refilter recomputes the derived view. Must hold mu.
func (s *Store) refilter() {
	s.snap.Filtered = Filter(s.snap.Entries, s.snap.Search)
}

// notify signals every subscriber without blocking. Must hold mu.
func (s *Store) notify() {
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func cloneEntries(entries []pokeapi.Entry) []pokeapi.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]pokeapi.Entry, len(entries))
	copy(dup, entries)
	return dup
}
