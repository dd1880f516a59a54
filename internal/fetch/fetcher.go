// Package fetch retrieves book volumes from the Google Books API.
//
// Fetcher issues plain GETs: no retries, no caching. A rate limiter keeps
// bursts of lookups polite toward the public endpoint.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/abelbrown/bookfinder/internal/catalog"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// DefaultEndpoint is the public Google Books API root.
const DefaultEndpoint = "https://www.googleapis.com/books/v1"

const userAgent = "bookfinder/0.1 (https://github.com/abelbrown/bookfinder)"

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Endpoint          string
	APIKey            string
	Timeout           time.Duration
	RequestsPerSecond float64
}

// Fetcher retrieves volumes from the catalog API.
type Fetcher struct {
	endpoint string
	apiKey   string
	client   *http.Client
	limiter  *rate.Limiter
	log      *log.Logger // nil when logging is not initialised
}

// NewFetcher creates a Fetcher from opts.
func NewFetcher(opts Options) *Fetcher {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &Fetcher{
		endpoint: opts.Endpoint,
		apiKey:   opts.APIKey,
		client:   &http.Client{Timeout: opts.Timeout},
		limiter:  rate.NewLimiter(limit, 1),
		log:      logging.WithPrefix("fetch"),
	}
}

// Search returns up to maxResults volumes matching query.
// A response without an items field yields an empty, non-nil slice.
func (f *Fetcher) Search(ctx context.Context, query string, maxResults int) ([]catalog.Entry, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(maxResults))

	var resp volumesResponse
	if err := f.get(ctx, "/volumes", params, &resp); err != nil {
		return nil, fmt.Errorf("search volumes %q: %w", query, err)
	}

	entries := make([]catalog.Entry, 0, len(resp.Items))
	for _, v := range resp.Items {
		entries = append(entries, v.entry())
	}
	return entries, nil
}

// Volume looks up a single volume by identifier.
func (f *Fetcher) Volume(ctx context.Context, id string) (catalog.Entry, error) {
	var v volume
	if err := f.get(ctx, "/volumes/"+url.PathEscape(id), url.Values{}, &v); err != nil {
		return catalog.Entry{}, fmt.Errorf("get volume %q: %w", id, err)
	}
	if v.ID == "" {
		v.ID = id
	}
	return v.entry(), nil
}

// get performs one GET against the API and decodes the JSON body into out.
func (f *Fetcher) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := f.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	if f.apiKey != "" {
		params.Set("key", f.apiKey)
	}
	u := f.endpoint + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if f.log != nil {
		f.log.Debug("GET", "path", path, "status", resp.StatusCode, "took", time.Since(start))
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP error: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
