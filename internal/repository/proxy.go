package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// DefaultProxyBaseURL is the public RSS-to-JSON conversion endpoint.
const DefaultProxyBaseURL = "https://api.rss2json.com/v1/api.json"

// ProxyFetcher fetches feeds through an RSS-to-JSON conversion proxy.
// The proxy normalizes every feed dialect into a single JSON envelope,
// which keeps this client free of XML parsing.
type ProxyFetcher struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
}

// NewProxyFetcher creates a proxy-backed fetcher. An empty baseURL
// selects the public rss2json endpoint.
func NewProxyFetcher(baseURL string) *ProxyFetcher {
	if baseURL == "" {
		baseURL = DefaultProxyBaseURL
	}
	return &ProxyFetcher{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		userAgent: "globalpulse-news-api/1.0",
	}
}

// proxyEnvelope is the proxy's response shape. Status is "ok" on
// success; anything else counts as a failed source.
type proxyEnvelope struct {
	Status string `json:"status"`
	Items  []Item `json:"items"`
}

// Fetch retrieves and decodes one feed through the proxy.
func (p *ProxyFetcher) Fetch(ctx context.Context, feedURL string) ([]Item, error) {
	endpoint := fmt.Sprintf("%s?rss_url=%s", p.baseURL, url.QueryEscape(feedURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var envelope proxyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding proxy envelope: %w", err)
	}

	if envelope.Status != "ok" {
		return nil, fmt.Errorf("proxy reported status %q", envelope.Status)
	}

	return envelope.Items, nil
}
