// -----------------------------------------------------------------------
// Google Maps scraping client - search and place detail retrieval
// -----------------------------------------------------------------------

package gmaps

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/ternarybob/arbor"
	"golang.org/x/time/rate"

	"github.com/ternarybob/locus/internal/common"
	"github.com/ternarybob/locus/internal/interfaces"
)

const (
	// DefaultBaseURL is the Google Maps endpoint scraped for results.
	DefaultBaseURL = "https://www.google.com/maps"

	// DefaultDelay is the fixed politeness delay between requests.
	DefaultDelay = 5 * time.Second

	// DefaultTimeout is the default HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent is sent when no user agent is configured.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	// resultsPerPage is how many results one search page yields.
	resultsPerPage = 20
)

// Client scrapes Google Maps search and place pages. It implements
// interfaces.MapsService. All requests pass through a single rate limiter
// so searches and detail fetches share the same politeness delay.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     arbor.ILogger
	limiter    *rate.Limiter
	userAgent  string
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets a logger.
func WithLogger(logger arbor.ILogger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDelay sets the fixed delay between network interactions.
func WithDelay(delay time.Duration) ClientOption {
	return func(c *Client) {
		if delay > 0 {
			c.limiter = rate.NewLimiter(rate.Every(delay), 1)
		}
	}
}

// WithUserAgent sets the user agent sent with scraping requests.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// NewClient creates a Google Maps scraping client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		logger:    common.GetLogger(),
		limiter:   rate.NewLimiter(rate.Every(DefaultDelay), 1),
		userAgent: DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile-time assertion: Client implements the collaborator interface
var _ interfaces.MapsService = (*Client)(nil)

// Search scrapes the Google Maps search page for the query and returns
// one handle per result, in page order. Handles carry title, URL and
// coordinates; detail fields require a Details call per handle.
func (c *Client) Search(ctx context.Context, query string, page int, log bool) ([]interfaces.PlaceHandle, error) {
	if page < 1 {
		page = 1
	}

	searchURL := fmt.Sprintf("%s/search/%s", c.baseURL, url.PathEscape(query))
	if page > 1 {
		// Google Maps pages results in blocks of twenty
		searchURL = fmt.Sprintf("%s?start=%d", searchURL, (page-1)*resultsPerPage)
	}

	if log {
		c.logger.Debug().
			Str("query", query).
			Int("page", page).
			Msg("Fetching Google Maps search page")
	}

	body, err := c.get(ctx, searchURL)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}

	results := parseSearchResults(body)

	handles := make([]interfaces.PlaceHandle, 0, len(results))
	for _, r := range results {
		handles = append(handles, &placeHandle{
			client: c,
			title:  r.Title,
			url:    r.URL,
			coords: r.Coords,
			log:    log,
		})
	}

	if log {
		c.logger.Info().
			Str("query", query).
			Int("page", page).
			Int("results", len(handles)).
			Msg("Google Maps search page parsed")
	}

	return handles, nil
}

// get fetches a URL after waiting for the rate limiter.
func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, req.URL.Host)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	return string(body), nil
}
