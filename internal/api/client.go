package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/slayerdex/internal/character"
	"github.com/rshade/slayerdex/internal/logging"
	"github.com/rshade/slayerdex/pkg/version"
)

// DefaultBaseURL is the public character API.
const DefaultBaseURL = "https://www.demonslayer-api.com/api/v1"

// DefaultTimeout bounds a single request.
const DefaultTimeout = 10 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 4 << 20

const charactersPath = "characters"

// Client talks to the character API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	UserAgent  string
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithTimeout sets the request timeout on the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.HTTPClient.Timeout = d
		}
	}
}

// NewClient creates a client for baseURL, falling back to DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: DefaultTimeout},
		UserAgent:  "slayerdex/" + version.GetVersion(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCharacters fetches up to limit character summaries in server order.
func (c *Client) ListCharacters(ctx context.Context, limit int) ([]character.Summary, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	body, err := c.get(ctx, q)
	if err != nil {
		return nil, err
	}
	return decodeCollection[character.Summary](body)
}

// GetCharacter fetches a single character by id. The first element of the
// returned collection wins; an empty collection yields ErrEmptyResult.
func (c *Client) GetCharacter(ctx context.Context, id character.ID) (character.Detail, error) {
	q := url.Values{}
	q.Set("id", id.String())

	body, err := c.get(ctx, q)
	if err != nil {
		return character.Detail{}, err
	}
	items, err := decodeCollection[character.Detail](body)
	if err != nil {
		return character.Detail{}, err
	}
	if len(items) == 0 {
		return character.Detail{}, fmt.Errorf("%w: id %q", ErrEmptyResult, id)
	}
	return items[0], nil
}

func (c *Client) endpoint(q url.Values) (string, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parsing base url %q: %w", c.BaseURL, err)
	}
	u = u.JoinPath(charactersPath)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func (c *Client) get(ctx context.Context, q url.Values) ([]byte, error) {
	endpoint, err := c.endpoint(q)
	if err != nil {
		return nil, err
	}

	log := logging.ComponentLogger(*logging.FromContext(ctx), "api")
	traceID := logging.GetOrGenerateTraceID(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("X-Request-ID", traceID)

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		log.Warn().Str("trace_id", traceID).Str("url", endpoint).Err(err).Msg("request failed")
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	defer func() { _ = resp.Body.Close() }()

	logRequest(log.Debug(), traceID, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: endpoint}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", ErrNetwork, err)
	}
	return body, nil
}

func logRequest(ev *zerolog.Event, traceID, endpoint string, status int, took time.Duration) {
	ev.Str("trace_id", traceID).
		Str("url", endpoint).
		Int("status", status).
		Int64("duration_ms", took.Milliseconds()).
		Msg("character api request")
}
