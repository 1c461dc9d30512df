package pokeapi

import (
	"fmt"
	"strconv"
	"strings"
)

const artworkURLFormat = "https://raw.githubusercontent.com/PokeAPI/sprites/master/sprites/pokemon/other/official-artwork/%d.png"

// Cursor identifies the next page to request from the catalog.
type Cursor struct {
	PageSize int
	Offset   int
}

// Entry is one lightweight catalog list item, normalized from the raw
// resource reference the API returns.
type Entry struct {
	ID        int
	Name      string
	SourceURL string
	ImageURL  string
}

// DisplayName returns the entry name in human-readable form
// ("mr-mime" becomes "Mr Mime").
func (e Entry) DisplayName() string {
	return titleCase(e.Name)
}

// Page is one slice of the catalog plus whether a subsequent page exists.
type Page struct {
	Entries []Entry
	HasMore bool
	Total   int
}

// Stat is a single named base stat.
type Stat struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// Ability is a creature ability with its hidden flag.
type Ability struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden"`
}

// EntryDetail is the full record for one catalog entry.
type EntryDetail struct {
	ID             int
	Name           string
	HeightDM       int // decimeters, as the API reports it
	WeightHG       int // hectograms
	BaseExperience int
	Types          []string
	Stats          []Stat
	Abilities      []Ability
	ImageURL       string
}

// DisplayName returns the detail name in human-readable form.
func (d EntryDetail) DisplayName() string {
	return titleCase(d.Name)
}

// pageResponse mirrors the paginated list payload.
type pageResponse struct {
	Count    int           `json:"count"`
	Next     *string       `json:"next"`
	Previous *string       `json:"previous"`
	Results  []resourceRef `json:"results"`
}

// resourceRef is a name/url pair pointing at a full resource.
type resourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// detailResponse mirrors the per-creature payload, reduced to the
// fields the UI cares about.
type detailResponse struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	Weight         int    `json:"weight"`
	BaseExperience int    `json:"base_experience"`
	Types          []struct {
		Slot int         `json:"slot"`
		Type resourceRef `json:"type"`
	} `json:"types"`
	Stats []struct {
		BaseStat int         `json:"base_stat"`
		Stat     resourceRef `json:"stat"`
	} `json:"stats"`
	Abilities []struct {
		Ability  resourceRef `json:"ability"`
		IsHidden bool        `json:"is_hidden"`
	} `json:"abilities"`
}

// normalizeEntry converts a raw resource reference into an Entry.
// References whose URL carries no parseable id are rejected.
func normalizeEntry(ref resourceRef) (Entry, error) {
	id := idFromURL(ref.URL)
	if id <= 0 {
		return Entry{}, fmt.Errorf("no id in resource url %q", ref.URL)
	}
	return Entry{
		ID:        id,
		Name:      ref.Name,
		SourceURL: ref.URL,
		ImageURL:  fmt.Sprintf(artworkURLFormat, id),
	}, nil
}

func normalizeDetail(raw detailResponse) EntryDetail {
	detail := EntryDetail{
		ID:             raw.ID,
		Name:           raw.Name,
		HeightDM:       raw.Height,
		WeightHG:       raw.Weight,
		BaseExperience: raw.BaseExperience,
		ImageURL:       fmt.Sprintf(artworkURLFormat, raw.ID),
	}
	for _, t := range raw.Types {
		if t.Type.Name != "" {
			detail.Types = append(detail.Types, t.Type.Name)
		}
	}
	for _, s := range raw.Stats {
		detail.Stats = append(detail.Stats, Stat{Name: s.Stat.Name, Value: s.BaseStat})
	}
	for _, a := range raw.Abilities {
		detail.Abilities = append(detail.Abilities, Ability{Name: a.Ability.Name, Hidden: a.IsHidden})
	}
	return detail
}

// idFromURL extracts the numeric id from the trailing path segment of
// a resource URL such as ".../pokemon/25/". Returns 0 when absent.
func idFromURL(raw string) int {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return 0
	}
	segment := trimmed[strings.LastIndex(trimmed, "/")+1:]
	id, err := strconv.Atoi(segment)
	if err != nil || id < 0 {
		return 0
	}
	return id
}

// titleCase converts an API slug ("mr-mime") to display form ("Mr Mime").
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}
	return strings.Join(words, " ")
}
