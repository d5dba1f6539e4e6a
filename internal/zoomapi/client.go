// Package zoomapi is a minimal client for the recording API: user listing,
// windowed recording enumeration, and streamed file downloads.
package zoomapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/np-at/zoomdl/internal/auth"
)

const defaultPageSize = 300

// Client issues authenticated calls against the recording API. One shared
// resty client underneath gives connection reuse; every call builds a fresh
// request from a requestOptions value, so no header or query state is shared
// between calls.
type Client struct {
	http     *resty.Client
	issuer   *auth.Issuer
	baseURL  string
	pageSize int
	log      zerolog.Logger

	// now is swappable so tests can pin the window arithmetic.
	now func() time.Time
}

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithPageSize sets the page size requested on listing calls.
func WithPageSize(n int) Option {
	return func(c *Client) error {
		if n < 1 {
			return fmt.Errorf("page size must be >= 1")
		}
		c.pageSize = n
		return nil
	}
}

// WithHTTPTimeout bounds the total time of a single HTTP request. A zero
// duration keeps the transport default (no client-side timeout).
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d < 0 {
			return fmt.Errorf("http timeout must be >= 0")
		}
		if d > 0 {
			c.http.SetTimeout(d)
		}
		return nil
	}
}

// WithClock overrides the time source used for window boundaries and token
// expiry. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Client) error {
		if now == nil {
			return fmt.Errorf("clock must not be nil")
		}
		c.now = now
		return nil
	}
}

// New constructs a Client for the given API base URL.
func New(issuer *auth.Issuer, baseURL string, log zerolog.Logger, opts ...Option) *Client {
	if issuer == nil {
		panic("issuer cannot be nil")
	}
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}

	c := &Client{
		http:     resty.New(),
		issuer:   issuer,
		baseURL:  baseURL,
		pageSize: defaultPageSize,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			panic(err)
		}
	}
	return c
}

// requestOptions describes one HTTP call. Values are built per call and never
// reused, which is what keeps the shared session safe to use sequentially.
type requestOptions struct {
	url          string
	query        map[string]string
	authenticate bool
	stream       bool
}

// get issues a single GET. When authenticate is set a token is minted fresh
// and attached as a bearer credential; download URLs carry their token in the
// query instead and pass authenticate=false.
func (c *Client) get(ctx context.Context, opts requestOptions) (*resty.Response, error) {
	req := c.http.R().SetContext(ctx)
	if len(opts.query) > 0 {
		req.SetQueryParams(opts.query)
	}
	if opts.authenticate {
		token, err := c.issuer.Issue(c.now())
		if err != nil {
			return nil, err
		}
		req.SetAuthToken(token)
	}
	if opts.stream {
		req.SetDoNotParseResponse(true)
	}
	resp, err := req.Get(opts.url)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", opts.url, err)
	}
	return resp, nil
}

// Post issues an authenticated JSON POST. The sweep itself is read-only; this
// exists for the handful of account-management endpoints that want a body.
func (c *Client) Post(ctx context.Context, url string, body interface{}) (*resty.Response, error) {
	token, err := c.issuer.Issue(c.now())
	if err != nil {
		return nil, err
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(url)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", url, err)
	}
	return resp, nil
}

// StreamFile opens a download URL for incremental reading. The auth token
// travels as the access_token query parameter per the provider's download
// convention, not as a header. Any non-OK status is an error; the caller owns
// closing the returned body.
func (c *Client) StreamFile(ctx context.Context, downloadURL string) (io.ReadCloser, error) {
	token, err := c.issuer.Issue(c.now())
	if err != nil {
		return nil, err
	}
	resp, err := c.get(ctx, requestOptions{
		url:    downloadURL,
		query:  map[string]string{"access_token": token},
		stream: true,
	})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		if body := resp.RawBody(); body != nil {
			_ = body.Close()
		}
		return nil, fmt.Errorf("download %s: status %d", downloadURL, resp.StatusCode())
	}
	return resp.RawBody(), nil
}
