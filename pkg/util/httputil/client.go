package httputil

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

var (
	defaultHttpClient = &http.Client{
		Timeout: time.Minute * 5,
	}

	DefaultClient = &Client{client: defaultHttpClient}
)

// Client issues plain HTTP requests with optional basic authentication.
// Bodies are handed back unread so large files can be streamed.
type Client struct {
	client *http.Client
}

// ClientOption configures the underlying *http.Client of New.
type ClientOption func(*http.Client)

// WithTimeout sets the overall request timeout. Zero means no timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *http.Client) {
		c.Timeout = timeout
	}
}

// WithInsecure skips TLS certificate verification.
func WithInsecure(insecure bool) ClientOption {
	return func(c *http.Client) {
		if !insecure {
			return
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} // nolint:gosec
		c.Transport = transport
	}
}

func (c *Client) Get(ctx context.Context, url string) (resp *http.Response, err error) {
	return c.GetWithAuth(ctx, url, "", "")
}

func (c *Client) GetWithAuth(ctx context.Context, url, username, password string) (resp *http.Response, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if username != "" || password != "" {
		req.SetBasicAuth(username, password)
	}
	return c.Do(req)
}

func (c *Client) Do(req *http.Request) (resp *http.Response, err error) {
	if req == nil {
		return nil, errors.New("nil pointer exception: parameter 'req' is nil")
	}

	return c.client.Do(req)
}

// HTTPClient exposes the wrapped client so other transports can share its
// connection pool and TLS settings.
func (c *Client) HTTPClient() *http.Client {
	return c.client
}

func New(opts ...ClientOption) *Client {
	if len(opts) == 0 {
		return &Client{client: defaultHttpClient}
	}

	hc := &http.Client{Timeout: defaultHttpClient.Timeout}
	for _, opt := range opts {
		opt(hc)
	}
	return &Client{client: hc}
}

// NewFromHTTPClient wraps an existing *http.Client.
func NewFromHTTPClient(hc *http.Client) *Client {
	if hc == nil {
		return New()
	}
	return &Client{client: hc}
}

// IsSuccess reports a 2xx status.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}
