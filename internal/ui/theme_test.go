package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if got := GetTheme("Kanagawa"); got.Name != "Kanagawa" {
		t.Fatalf("GetTheme(Kanagawa).Name = %q", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "Nightfox" {
		t.Fatalf("GetTheme unknown = %q, want Nightfox fallback", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themeOrder[0]
	for range themeOrder {
		seen[name] = true
		name = NextTheme(name)
	}
	if name != themeOrder[0] {
		t.Fatalf("cycle did not wrap: ended at %q", name)
	}
	for _, want := range ThemeNames() {
		if !seen[want] {
			t.Fatalf("cycle skipped %q", want)
		}
	}
	if got := NextTheme("unknown"); got != themeOrder[0] {
		t.Fatalf("NextTheme(unknown) = %q, want %q", got, themeOrder[0])
	}
}

func TestThemesAreComplete(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Text == "" || th.Muted == "" || th.Danger == "" {
			t.Fatalf("theme %q is missing text colors", name)
		}
		if th.BarStart == "" || th.BarEnd == "" {
			t.Fatalf("theme %q is missing bar gradient endpoints", name)
		}
		if len(th.TypeColors) == 0 {
			t.Fatalf("theme %q has no type colors", name)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q", got)
	}
	if got := truncate("abcdef", 4); got != "abc…" {
		t.Fatalf("truncate = %q, want abc…", got)
	}
	if got := truncate("abcdef", 0); got != "" {
		t.Fatalf("truncate zero = %q, want empty", got)
	}
}
