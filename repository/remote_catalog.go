package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RemoteCatalog reads a catalog from the backend REST API:
// GET {baseURL}/api/{kind}?search={query} returning a JSON array.
type RemoteCatalog[T any] struct {
	baseURL string
	kind    string
	http    *http.Client
}

// NewRemoteCatalog creates a RemoteCatalog. A nil client gets a 5s timeout client.
func NewRemoteCatalog[T any](baseURL, kind string, client *http.Client) *RemoteCatalog[T] {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &RemoteCatalog[T]{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		kind:    kind,
		http:    client,
	}
}

// Fetch queries the backend; query is forwarded as the search parameter when not blank
func (c *RemoteCatalog[T]) Fetch(ctx context.Context, query string) ([]T, error) {
	endpoint, err := url.JoinPath(c.baseURL, "api", c.kind)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog endpoint: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if q := strings.TrimSpace(query); q != "" {
		params := req.URL.Query()
		params.Set("search", q)
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach catalog backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("catalog backend returned status %d", resp.StatusCode)
	}

	var items []T
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("malformed catalog response: %w", err)
	}
	return items, nil
}

func (c *RemoteCatalog[T]) Source() string {
	return fmt.Sprintf("remote:%s/api/%s", c.baseURL, c.kind)
}
