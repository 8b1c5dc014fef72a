// Package fetch retrieves raw sheet text over HTTP. It sits strictly outside
// the parsing core: retry, proxy fallback, caching and timeouts all live
// here, and the core only ever sees the fetched text.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	cache "github.com/patrickmn/go-cache"
)

// Getter fetches the raw text of a published sheet.
type Getter interface {
	Text(ctx context.Context, urls ...string) (string, error)
}

// DefaultTTL is how long fetched text stays fresh in the local cache.
const DefaultTTL = 30 * time.Minute

// Client fetches sheet text with retries, ordered fallback URLs and a
// time-to-live cache.
type Client struct {
	http    *http.Client
	cache   *cache.Cache
	retries int
}

// Option configures a Client.
type Option func(*Client)

// WithTTL sets the cache time-to-live.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.cache = cache.New(ttl, 2*ttl) }
}

// WithRetries sets how many times each URL is attempted.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client with a 20s request timeout, 2 attempts per URL and
// the default cache TTL.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: 20 * time.Second},
		cache:   cache.New(DefaultTTL, 2*DefaultTTL),
		retries: 2,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Text fetches the first URL that answers, trying each candidate in order
// (primary first, proxy fallbacks after) with retries. The result is cached
// under the primary URL until the TTL expires.
func (c *Client) Text(ctx context.Context, urls ...string) (string, error) {
	if len(urls) == 0 {
		return "", fmt.Errorf("fetch: no url given")
	}
	if text, ok := c.cache.Get(urls[0]); ok {
		return text.(string), nil
	}

	var lastErr error
	for _, url := range urls {
		for attempt := 0; attempt < c.retries; attempt++ {
			text, err := c.get(ctx, url)
			if err == nil {
				c.cache.SetDefault(urls[0], text)
				return text, nil
			}
			lastErr = err
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			log.Printf("fetch: %s attempt %d failed: %v", url, attempt+1, err)
		}
	}
	return "", fmt.Errorf("fetch: all sources failed: %w", lastErr)
}

// JSONText fetches a JSON export envelope and extracts the sheet text at the
// given jsonpath (e.g. "$.data.csv").
func (c *Client) JSONText(ctx context.Context, url, path string) (string, error) {
	body, err := c.Text(ctx, url)
	if err != nil {
		return "", err
	}
	var jobj any
	if err := json.Unmarshal([]byte(body), &jobj); err != nil {
		return "", fmt.Errorf("fetch: response is not json: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("fetch: cannot extract %q: %w", path, err)
	}
	// jsonpath may answer with a single value or a list of one.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	text, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("fetch: %q is not text: %v", path, jval)
	}
	return text, nil
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

var _ Getter = (*Client)(nil)
