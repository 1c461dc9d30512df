package state

import (
	"reflect"
	"testing"

	"github.com/kmies/bestiary/internal/pokeapi"
)

func entriesNamed(names ...string) []pokeapi.Entry {
	entries := make([]pokeapi.Entry, len(names))
	for i, name := range names {
		entries[i] = pokeapi.Entry{ID: i + 1, Name: name}
	}
	return entries
}

func TestFilter_EmptyTermReturnsAll(t *testing.T) {
	entries := entriesNamed("bulbasaur", "charmander", "squirtle")
	got := Filter(entries, "")
	if !reflect.DeepEqual(got, entries) {
		t.Fatalf("Filter(entries, \"\") = %#v, want full input", got)
	}
}

func TestFilter_CaseInsensitiveSubstring(t *testing.T) {
	entries := entriesNamed("bulbasaur", "charmander", "charizard", "squirtle")

	cases := []struct {
		term string
		want []string
	}{
		{"char", []string{"charmander", "charizard"}},
		{"CHAR", []string{"charmander", "charizard"}},
		{"saur", []string{"bulbasaur"}},
		{"zz", nil},
		{"a", []string{"bulbasaur", "charmander", "charizard"}},
	}
	for _, tc := range cases {
		got := Filter(entries, tc.term)
		var names []string
		for _, e := range got {
			names = append(names, e.Name)
		}
		if !reflect.DeepEqual(names, tc.want) {
			t.Fatalf("Filter(term=%q) = %v, want %v", tc.term, names, tc.want)
		}
	}
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	entries := entriesNamed("pidgey", "pikachu", "pidgeotto", "raichu", "pichu")
	got := Filter(entries, "pi")

	lastIdx := -1
	for _, e := range got {
		found := -1
		for i, src := range entries {
			if src.ID == e.ID {
				found = i
				break
			}
		}
		if found <= lastIdx {
			t.Fatalf("filtered view reorders entries: %#v", got)
		}
		lastIdx = found
	}
}
