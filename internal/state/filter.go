package state

import (
	"strings"

	"github.com/kmies/bestiary/internal/pokeapi"
)

// Filter returns the order-preserving subsequence of entries whose
// names contain term, case-insensitively. An empty term returns the
// input unchanged.
func Filter(entries []pokeapi.Entry, term string) []pokeapi.Entry {
	if term == "" {
		return entries
	}
	needle := strings.ToLower(term)
	var matched []pokeapi.Entry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), needle) {
			matched = append(matched, entry)
		}
	}
	return matched
}
