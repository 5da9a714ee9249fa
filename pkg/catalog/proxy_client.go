package catalog

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/showscope/showscope/pkg/omdb"
)

// ProxyClient talks to a running showscope proxy instead of OMDb directly,
// so a browse client needs no API credential. It reports errors with the
// same sentinels as Service, letting callers treat the two variants
// interchangeably.
type ProxyClient struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

func NewProxyClient(baseURL string, timeout time.Duration, httpc *http.Client) *ProxyClient {
	if timeout <= 0 {
		timeout = omdb.DefaultTimeout
	}
	if httpc == nil {
		httpc = &http.Client{}
	}
	return &ProxyClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		httpc:   httpc,
	}
}

// Search queries the proxy's /api/search endpoint.
func (pc *ProxyClient) Search(ctx context.Context, query string) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}

	params := url.Values{}
	params.Set("query", query)

	var shows []Show
	header, err := pc.getJSON(ctx, "/api/search", params, &shows)
	if err != nil {
		return nil, err
	}

	excluded, _ := strconv.Atoi(header.Get(ExcludedHeader))
	if shows == nil {
		shows = []Show{}
	}
	return &SearchResult{Shows: shows, Excluded: excluded}, nil
}

// Details queries the proxy's /api/details endpoint.
func (pc *ProxyClient) Details(ctx context.Context, id string) (*Show, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrEmptyID
	}

	params := url.Values{}
	params.Set("id", id)

	show := &Show{}
	if _, err := pc.getJSON(ctx, "/api/details", params, show); err != nil {
		return nil, err
	}
	return show, nil
}

func (pc *ProxyClient) getJSON(ctx context.Context, path string, params url.Values, out any) (http.Header, error) {
	ctx, cancel := context.WithTimeout(ctx, pc.timeout)
	defer cancel()

	reqURL := pc.baseURL + path + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := pc.httpc.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, omdb.ErrTimeout
		}
		return nil, errors.Wrap(err, "proxy request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, proxyStatusError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return nil, &omdb.UpstreamError{Status: resp.StatusCode, Message: "malformed proxy response"}
	}
	return resp.Header, nil
}

// proxyStatusError maps the proxy's error statuses back onto the shared
// sentinels so the view layer renders the same messages in both variants.
func proxyStatusError(resp *http.Response) error {
	body := struct {
		Error string `json:"error"`
	}{}
	_ = json.NewDecoder(resp.Body).Decode(&body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return omdb.ErrNotFound
	case http.StatusGatewayTimeout:
		return omdb.ErrTimeout
	}
	return &omdb.UpstreamError{Status: resp.StatusCode, Message: body.Error}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
