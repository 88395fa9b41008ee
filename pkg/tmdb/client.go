package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Client talks to the TMDB search and details endpoints with a bearer token.
type Client struct {
	searchURL  string
	detailsURL string
	imageURL   string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a new TMDB client. It does not contact the provider, so
// listing and rating keep working while the provider is down.
func NewClient(cfg utils.MovieAPIConfig, log *zap.Logger, opts ...Option) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("tmdb access token is required")
	}
	if cfg.SearchURL == "" || cfg.DetailsURL == "" {
		return nil, fmt.Errorf("tmdb search and details URLs are required")
	}

	c := &Client{
		searchURL:  cfg.SearchURL,
		detailsURL: strings.TrimRight(cfg.DetailsURL, "/"),
		imageURL:   cfg.ImageURL,
		token:      cfg.AccessToken,
		httpClient: &http.Client{},
		log:        log.With(zap.String("client", "tmdb")),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// doRequest performs an authenticated GET and returns the body of a 2xx response.
// Params are merged into any query string the configured URL already carries.
func (c *Client) doRequest(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: parse endpoint: %w", ErrUpstream, err)
	}
	if len(params) > 0 {
		query := u.Query()
		for key, values := range params {
			query[key] = values
		}
		u.RawQuery = query.Encode()
	}
	endpoint = u.String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrUpstream, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("TMDB request failed", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response body: %w", ErrUpstream, err)
	}

	c.log.Debug("TMDB request",
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// SearchTitles returns the provider's candidates for a free-text query.
// No matches yields an empty, non-nil slice.
func (c *Client) SearchTitles(ctx context.Context, query string) ([]Candidate, error) {
	params := url.Values{}
	params.Set("query", query)

	body, err := c.doRequest(ctx, c.searchURL, params)
	if err != nil {
		return nil, err
	}

	var response searchResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: decode search response: %w", ErrUpstream, err)
	}
	if response.Results == nil {
		return nil, fmt.Errorf("%w: search response has no results field", ErrMalformedResponse)
	}

	candidates := *response.Results
	if candidates == nil {
		candidates = []Candidate{}
	}

	c.log.Debug("TMDB search",
		zap.String("query", query),
		zap.Int("count", len(candidates)),
	)

	return candidates, nil
}

// FetchDetails resolves a candidate id into the fields stored in the catalog.
func (c *Client) FetchDetails(ctx context.Context, externalID int64) (*Details, error) {
	base, err := url.Parse(c.detailsURL)
	if err != nil {
		return nil, fmt.Errorf("%w: parse details URL: %w", ErrUpstream, err)
	}
	endpoint := base.JoinPath(strconv.FormatInt(externalID, 10)).String()

	body, err := c.doRequest(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var response detailsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("%w: decode details response: %w", ErrUpstream, err)
	}

	if response.OriginalTitle == nil || *response.OriginalTitle == "" {
		return nil, fmt.Errorf("%w: movie %d has no original_title", ErrMalformedResponse, externalID)
	}
	if response.ReleaseDate == nil {
		return nil, fmt.Errorf("%w: movie %d has no release_date", ErrMalformedResponse, externalID)
	}

	year, err := ReleaseYear(*response.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: movie %d: %w", ErrMalformedResponse, externalID, err)
	}

	details := &Details{
		Title:       *response.OriginalTitle,
		Year:        year,
		Description: response.Overview,
	}
	if response.PosterPath != nil {
		details.PosterPath = *response.PosterPath
	}

	return details, nil
}

// PosterURL joins the image host prefix and a poster path. An empty path
// means the provider has no poster, and yields an empty URL.
func (c *Client) PosterURL(posterPath string) string {
	if posterPath == "" {
		return ""
	}
	return c.imageURL + posterPath
}

// ReleaseYear extracts the year from a YYYY-MM-DD date.
func ReleaseYear(date string) (int, error) {
	t, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return 0, fmt.Errorf("release_date %q is not YYYY-MM-DD", date)
	}
	return t.Year(), nil
}
