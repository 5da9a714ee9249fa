// Package omdb is a minimal client for the OMDb API (search and detail
// endpoints only). Responses are decoded as untyped JSON; callers are
// expected to validate field presence and types themselves.
package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the public OMDb endpoint.
	DefaultBaseURL = "https://www.omdbapi.com/"

	// DefaultTimeout is the per-call deadline applied to every request.
	DefaultTimeout = 5 * time.Second

	// notFoundMessage is the literal error string OMDb returns when a search
	// matches nothing. It is the only upstream error treated as "no results"
	// rather than a failure.
	notFoundMessage = "Movie not found!"
)

var (
	// ErrTimeout is returned when a request exceeds its deadline.
	ErrTimeout = errors.New("omdb: request timed out")

	// ErrNotFound is returned when the upstream reports no results for a
	// search, or an unknown id for a detail lookup.
	ErrNotFound = errors.New("omdb: not found")
)

// UpstreamError is any other failure reported by the upstream: a non-2xx
// status, a malformed body, or an in-band error string that isn't the
// not-found sentinel.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("omdb: upstream error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("omdb: upstream error (status %d)", e.Status)
}

// Raw is a loosely-typed upstream record. Fields may be absent or of the
// wrong type; nothing here is safe to render without normalization.
type Raw map[string]any

// Plot selects the detail plot length.
type Plot string

const (
	PlotShort Plot = "short"
	PlotFull  Plot = "full"
)

type Client struct {
	apiKey  string
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

// New creates an OMDb client. An empty baseURL, zero timeout, or nil http
// client fall back to defaults.
func New(apiKey, baseURL string, timeout time.Duration, httpc *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		timeout: timeout,
		httpc:   httpc,
	}
}

// SearchSeries runs a title search restricted to series and returns the raw
// hits in upstream order. The upstream "Movie not found!" sentinel maps to
// ErrNotFound; any other in-band error string is an UpstreamError.
func (c *Client) SearchSeries(ctx context.Context, query string) ([]Raw, error) {
	params := url.Values{}
	params.Set("s", query)
	params.Set("type", "series")

	raw, err := c.getJSON(ctx, params)
	if err != nil {
		return nil, err
	}

	if msg := rawString(raw, "Error"); msg != "" {
		if msg == notFoundMessage {
			return nil, ErrNotFound
		}
		return nil, &UpstreamError{Status: http.StatusOK, Message: msg}
	}

	hits, ok := raw["Search"].([]any)
	if !ok {
		return nil, &UpstreamError{Status: http.StatusOK, Message: "malformed search payload"}
	}

	items := make([]Raw, 0, len(hits))
	for _, hit := range hits {
		if m, ok := hit.(map[string]any); ok {
			items = append(items, Raw(m))
		}
	}
	return items, nil
}

// Details fetches the full record for one id. Any in-band upstream error is
// treated as an unknown id.
func (c *Client) Details(ctx context.Context, id string, plot Plot) (Raw, error) {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", string(plot))

	raw, err := c.getJSON(ctx, params)
	if err != nil {
		return nil, err
	}

	if msg := rawString(raw, "Error"); msg != "" {
		return nil, ErrNotFound
	}

	return raw, nil
}

// getJSON performs one GET against the upstream with the client deadline and
// decodes the body as untyped JSON. Timeouts surface as ErrTimeout, non-2xx
// statuses and undecodable bodies as UpstreamError.
func (c *Client) getJSON(ctx context.Context, params url.Values) (Raw, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, errors.Wrap(err, "omdb request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	raw := Raw{}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, &UpstreamError{Status: resp.StatusCode, Message: "malformed response body"}
	}

	return raw, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func rawString(raw Raw, key string) string {
	s, _ := raw[key].(string)
	return s
}
