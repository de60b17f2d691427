// Package frontpage fetches the raw markup of the news front page.
package frontpage

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/newsdesk-hq/hn-headlines/pkg/httpclient"
)

// DefaultFetchTimeout bounds a single front-page request.
const DefaultFetchTimeout = 10 * time.Second

// Source describes the page to fetch and how to identify to it.
type Source struct {
	URL       string
	UserAgent string
}

// DefaultSource returns the fixed Hacker News front page source.
func DefaultSource() Source {
	return Source{
		URL:       "https://news.ycombinator.com",
		UserAgent: "Mozilla/5.0",
	}
}

// Headers builds the request headers for the source (skips empty values).
func (s Source) Headers() map[string]string {
	headers := make(map[string]string, 1)
	if ua := strings.TrimSpace(s.UserAgent); ua != "" {
		headers["User-Agent"] = ua
	}
	return headers
}

// Fetcher retrieves the front page body over HTTP.
type Fetcher struct {
	client httpclient.Client
	src    Source
}

// NewFetcher constructs a fetcher with the provided HTTP client (or default).
func NewFetcher(client httpclient.Client, src Source) *Fetcher {
	if client == nil {
		client = DefaultHTTPClient()
	}
	if strings.TrimSpace(src.URL) == "" {
		src = DefaultSource()
	}
	return &Fetcher{client: client, src: src}
}

// DefaultHTTPClient returns a tuned HTTP client for front-page fetches.
func DefaultHTTPClient() httpclient.Client {
	return httpclient.NewRestyClient(DefaultFetchTimeout)
}

// Fetch performs one GET against the source and returns the UTF-8 body.
// Transport errors, non-2xx statuses, and invalid UTF-8 all fail.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	resp, err := f.client.Get(ctx, f.src.URL, f.src.Headers())
	if err != nil {
		return nil, fmt.Errorf("fetch front page: %w", err)
	}

	body := resp.Body()
	if code := resp.StatusCode(); code < 200 || code > 299 {
		return nil, fmt.Errorf("front page returned status %d body: %s", code, responseSnippet(body))
	}
	if !utf8.Valid(body) {
		return nil, fmt.Errorf("front page body is not valid utf-8")
	}

	return body, nil
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
