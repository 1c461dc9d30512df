package pokeapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "https" {
		t.Fatalf("scheme = %q, want https", u.Scheme)
	}
	if u.Host != "pokeapi.co" || u.Path != "/api/v2" {
		t.Fatalf("base = %q, want public endpoint", u.String())
	}

	u, err = parseBaseURL("http://example.com:1234/v2/?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "/v2" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchPageEncodesCursorAndNormalizes(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/v2/pokemon":
			gotQuery = r.URL.Query()
			next := "https://example.com/api/v2/pokemon?offset=40&limit=20"
			_ = json.NewEncoder(w).Encode(pageResponse{
				Count: 1302,
				Next:  &next,
				Results: []resourceRef{
					{Name: "bulbasaur", URL: "https://example.com/api/v2/pokemon/1/"},
					{Name: "ivysaur", URL: "https://example.com/api/v2/pokemon/2/"},
					{Name: "broken", URL: "https://example.com/api/v2/pokemon/"},
				},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL+"/api/v2", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	page, err := c.FetchPage(ctx, Cursor{PageSize: 20, Offset: 20})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if gotQuery.Get("limit") != "20" || gotQuery.Get("offset") != "20" {
		t.Fatalf("query = %v, want limit=20 offset=20", gotQuery)
	}
	if !page.HasMore {
		t.Fatal("HasMore = false, want true with next link present")
	}
	if page.Total != 1302 {
		t.Fatalf("Total = %d, want 1302", page.Total)
	}
	// The malformed ref is dropped, the rest keep arrival order.
	if len(page.Entries) != 2 || page.Entries[0].ID != 1 || page.Entries[1].ID != 2 {
		t.Fatalf("Entries = %#v, want ids 1,2", page.Entries)
	}
	if page.Entries[0].Name != "bulbasaur" {
		t.Fatalf("Entries[0].Name = %q, want bulbasaur", page.Entries[0].Name)
	}
	if !strings.Contains(page.Entries[0].ImageURL, "/1.png") {
		t.Fatalf("ImageURL = %q, want artwork for id 1", page.Entries[0].ImageURL)
	}
	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "bestiary/") {
		t.Fatalf("User-Agent = %q, want bestiary/*", gotUserAgent)
	}
}

func TestClient_FetchPageLastPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(pageResponse{
			Count:   1,
			Next:    nil,
			Results: []resourceRef{{Name: "mew", URL: "https://example.com/api/v2/pokemon/151/"}},
		})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	page, err := c.FetchPage(context.Background(), Cursor{PageSize: 20, Offset: 140})
	if err != nil {
		t.Fatalf("FetchPage returned error: %v", err)
	}
	if page.HasMore {
		t.Fatal("HasMore = true, want false without next link")
	}
}

func TestClient_FetchDetailNormalizes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/pokemon/25" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 25,
			"name": "pikachu",
			"height": 4,
			"weight": 60,
			"base_experience": 112,
			"types": [{"slot": 1, "type": {"name": "electric", "url": ""}}],
			"stats": [
				{"base_stat": 35, "stat": {"name": "hp", "url": ""}},
				{"base_stat": 90, "stat": {"name": "speed", "url": ""}}
			],
			"abilities": [
				{"is_hidden": false, "ability": {"name": "static", "url": ""}},
				{"is_hidden": true, "ability": {"name": "lightning-rod", "url": ""}}
			]
		}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	detail, err := c.FetchDetail(context.Background(), 25)
	if err != nil {
		t.Fatalf("FetchDetail returned error: %v", err)
	}
	if detail.ID != 25 || detail.Name != "pikachu" {
		t.Fatalf("detail = %#v, want pikachu id=25", detail)
	}
	if detail.HeightDM != 4 || detail.WeightHG != 60 || detail.BaseExperience != 112 {
		t.Fatalf("attributes = %d/%d/%d, want 4/60/112", detail.HeightDM, detail.WeightHG, detail.BaseExperience)
	}
	if len(detail.Types) != 1 || detail.Types[0] != "electric" {
		t.Fatalf("Types = %#v, want [electric]", detail.Types)
	}
	if len(detail.Stats) != 2 || detail.Stats[0] != (Stat{Name: "hp", Value: 35}) {
		t.Fatalf("Stats = %#v, want hp=35 first", detail.Stats)
	}
	if len(detail.Abilities) != 2 || !detail.Abilities[1].Hidden {
		t.Fatalf("Abilities = %#v, want hidden lightning-rod second", detail.Abilities)
	}
}

func TestClient_FetchDetailRequiresID(t *testing.T) {
	c, err := NewClient("127.0.0.1:1", 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if _, err := c.FetchDetail(context.Background(), 0); err == nil {
		t.Fatal("FetchDetail returned nil error, want error")
	}
}

func TestClient_StatusAndDecodeErrors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/pokemon/25":
			http.Error(w, "nope", http.StatusInternalServerError)
		case "/pokemon/9999":
			http.NotFound(w, r)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL, 0)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchPage(context.Background(), Cursor{PageSize: 20})
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchPage error = %v, want decode response error", err)
	}

	_, err = c.FetchDetail(context.Background(), 25)
	if ClassifyError(err) != KindServer {
		t.Fatalf("FetchDetail error = %v, want server classification", err)
	}

	_, err = c.FetchDetail(context.Background(), 9999)
	if ClassifyError(err) != KindNotFound {
		t.Fatalf("FetchDetail error = %v, want not-found classification", err)
	}
}
