package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Gateway defines the two catalog operations the rest of the
// application consumes. Implemented by *Client; fakes implement it in
// tests.
type Gateway interface {
	FetchPage(ctx context.Context, cursor Cursor) (Page, error)
	FetchDetail(ctx context.Context, id int) (EntryDetail, error)
}

// Ensure Client implements Gateway at compile time.
var _ Gateway = (*Client)(nil)

// Client talks to the PokéAPI-compatible catalog HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public PokéAPI endpoint.
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultPageSize matches the API's default page length.
	DefaultPageSize = 20

	defaultUserAgent      = "bestiary/0.1"
	defaultRequestTimeout = 10 * time.Second
)

// NewClient builds a Client for the given base URL. An empty base URL
// selects the public endpoint; a non-positive timeout selects the
// default.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchPage retrieves one page of catalog entries. HasMore reflects
// the payload's next link, not the number of items returned.
func (c *Client) FetchPage(ctx context.Context, cursor Cursor) (Page, error) {
	if c == nil {
		return Page{}, fmt.Errorf("client is nil")
	}
	if cursor.PageSize <= 0 {
		cursor.PageSize = DefaultPageSize
	}
	if cursor.Offset < 0 {
		cursor.Offset = 0
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(cursor.PageSize))
	values.Set("offset", strconv.Itoa(cursor.Offset))
	rel := &url.URL{Path: "pokemon", RawQuery: values.Encode()}

	var payload pageResponse
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return Page{}, err
	}

	page := Page{
		HasMore: payload.Next != nil && *payload.Next != "",
		Total:   payload.Count,
	}
	for _, ref := range payload.Results {
		entry, err := normalizeEntry(ref)
		if err != nil {
			// Malformed refs are skipped rather than failing the page.
			continue
		}
		page.Entries = append(page.Entries, entry)
	}
	return page, nil
}

// FetchDetail retrieves the full record for one entry by id.
func (c *Client) FetchDetail(ctx context.Context, id int) (EntryDetail, error) {
	if c == nil {
		return EntryDetail{}, fmt.Errorf("client is nil")
	}
	if id <= 0 {
		return EntryDetail{}, fmt.Errorf("entry id required")
	}
	rel := &url.URL{Path: "pokemon/" + strconv.Itoa(id)}

	var payload detailResponse
	if err := c.doURL(ctx, rel, &payload); err != nil {
		return EntryDetail{}, err
	}
	return normalizeDetail(payload), nil
}

func (c *Client) doURL(ctx context.Context, rel *url.URL, dest any) error {
	reqURL := c.resolve(rel)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &APIError{Kind: classifyTransport(err), Op: "get " + rel.Path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &APIError{Kind: classifyStatus(resp.StatusCode), Status: resp.StatusCode, Op: "get " + rel.Path}
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// resolve joins rel onto the base URL, preserving the base path prefix
// (ResolveReference would drop /api/v2 for absolute paths).
func (c *Client) resolve(rel *url.URL) *url.URL {
	joined := *c.baseURL
	joined.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(rel.Path, "/")
	joined.RawQuery = rel.RawQuery
	return &joined
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", raw, err)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
