package ui

import (
	"testing"

	"github.com/kmies/bestiary/internal/pokeapi"
	"github.com/kmies/bestiary/internal/state"
)

func makeEntries(n int) []pokeapi.Entry {
	entries := make([]pokeapi.Entry, n)
	for i := range entries {
		entries[i] = pokeapi.Entry{ID: i + 1, Name: "entry"}
	}
	return entries
}

func TestShouldLoadMore(t *testing.T) {
	entries := makeEntries(20)

	cases := []struct {
		name     string
		snap     state.Snapshot
		selected int
		want     bool
	}{
		{
			name:     "near_end",
			snap:     state.Snapshot{Entries: entries, Filtered: entries, HasMore: true},
			selected: 16,
			want:     true,
		},
		{
			name:     "far_from_end",
			snap:     state.Snapshot{Entries: entries, Filtered: entries, HasMore: true},
			selected: 3,
			want:     false,
		},
		{
			name:     "no_more_pages",
			snap:     state.Snapshot{Entries: entries, Filtered: entries, HasMore: false},
			selected: 19,
			want:     false,
		},
		{
			name:     "search_active",
			snap:     state.Snapshot{Entries: entries, Filtered: entries[:2], Search: "bulb", HasMore: true},
			selected: 1,
			want:     false,
		},
		{
			name:     "already_loading",
			snap:     state.Snapshot{Entries: entries, Filtered: entries, HasMore: true, LoadingMore: true},
			selected: 19,
			want:     false,
		},
		{
			name:     "refresh_in_flight",
			snap:     state.Snapshot{Entries: entries, Filtered: entries, HasMore: true, Refreshing: true},
			selected: 19,
			want:     false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := shouldLoadMore(tc.snap, tc.selected); got != tc.want {
				t.Fatalf("shouldLoadMore(%s, %d) = %v, want %v", tc.name, tc.selected, got, tc.want)
			}
		})
	}
}

func TestComputeScrollTop(t *testing.T) {
	cases := []struct {
		name                   string
		selected, top, visible int
		want                   int
	}{
		{"inside_window", 5, 0, 10, 0},
		{"below_window", 12, 0, 10, 3},
		{"above_window", 2, 5, 10, 2},
		{"at_last_visible_row", 9, 0, 10, 0},
		{"zero_visible", 4, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := computeScrollTop(tc.selected, tc.top, tc.visible)
			if got != tc.want {
				t.Fatalf("computeScrollTop(%d, %d, %d) = %d, want %d",
					tc.selected, tc.top, tc.visible, got, tc.want)
			}
		})
	}
}

func TestClampSelection(t *testing.T) {
	m := Model{height: 12}
	m.snapshot = state.Snapshot{Filtered: makeEntries(5)}
	m.selectedRow = 9
	m.clampSelection()
	if m.selectedRow != 4 {
		t.Fatalf("selectedRow = %d, want 4", m.selectedRow)
	}

	m.snapshot = state.Snapshot{}
	m.clampSelection()
	if m.selectedRow != 0 || m.scrollTop != 0 {
		t.Fatalf("empty list: selectedRow = %d, scrollTop = %d, want 0, 0", m.selectedRow, m.scrollTop)
	}
}
