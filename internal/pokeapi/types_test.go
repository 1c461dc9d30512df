package pokeapi

import "testing"

func TestIDFromURL(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want int
	}{
		{"trailing slash", "https://pokeapi.co/api/v2/pokemon/25/", 25},
		{"no trailing slash", "https://pokeapi.co/api/v2/pokemon/151", 151},
		{"missing id", "https://pokeapi.co/api/v2/pokemon/", 0},
		{"non numeric", "https://pokeapi.co/api/v2/pokemon/pikachu/", 0},
		{"empty", "", 0},
		{"whitespace", "   ", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := idFromURL(tc.url); got != tc.want {
				t.Fatalf("idFromURL(%q) = %d, want %d", tc.url, got, tc.want)
			}
		})
	}
}

func TestNormalizeEntry(t *testing.T) {
	entry, err := normalizeEntry(resourceRef{Name: "pikachu", URL: "https://pokeapi.co/api/v2/pokemon/25/"})
	if err != nil {
		t.Fatalf("normalizeEntry returned error: %v", err)
	}
	if entry.ID != 25 || entry.Name != "pikachu" {
		t.Fatalf("entry = %#v, want pikachu id=25", entry)
	}
	if entry.SourceURL == "" || entry.ImageURL == "" {
		t.Fatalf("entry urls empty: %#v", entry)
	}

	if _, err := normalizeEntry(resourceRef{Name: "broken", URL: "https://pokeapi.co/api/v2/pokemon/"}); err == nil {
		t.Fatal("normalizeEntry accepted ref without id")
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"pikachu", "Pikachu"},
		{"mr-mime", "Mr Mime"},
		{"ho-oh", "Ho Oh"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := (Entry{Name: tc.in}).DisplayName(); got != tc.want {
			t.Fatalf("DisplayName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
