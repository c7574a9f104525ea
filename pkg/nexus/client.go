package nexus

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/log/logfields"
	"github.com/coding-wepack/nexusctl/pkg/util/httputil"
	"github.com/coding-wepack/nexusctl/pkg/util/restyutil"
)

const (
	pathRepositories        = "/service/rest/v1/repositories"
	pathAssets              = "/service/rest/v1/assets"
	pathAsset               = "/service/rest/v1/assets/{id}"
	pathSearchAssets        = "/service/rest/v1/search/assets"
	pathSearchAssetDownload = "/service/rest/v1/search/assets/download"
	pathComponents          = "/service/rest/v1/components"
	pathComponent           = "/service/rest/v1/components/{id}"
	pathSearchComponents    = "/service/rest/v1/search"

	// legacyPathPrefix is the servlet context older Nexus 3 installs are
	// deployed under.
	legacyPathPrefix = "/nexus"
)

// Client talks to the Nexus Repository Manager 3 REST API. It holds no
// per-call state, so one Client can be shared between goroutines.
type Client struct {
	baseURL string

	username string
	password string
	insecure bool
	timeout  time.Duration
	tempDir  string

	maxPages       int
	legacyFallback bool

	httpClient *http.Client
	logger     log.Logger

	rest       *resty.Client
	downloader *Downloader
}

// ClientOption allows specifying various settings configurable by the user for overriding the defaults
// used when creating a new default client
type ClientOption func(*Client)

// ClientOptBasicAuth authenticates every request, downloads included.
func ClientOptBasicAuth(username, password string) ClientOption {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// ClientOptInsecure skips TLS verification.
func ClientOptInsecure(insecure bool) ClientOption {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// ClientOptTimeout bounds each HTTP request. Zero, the default, means a
// request may block for as long as the server keeps it open.
func ClientOptTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// ClientOptHTTPClient replaces the HTTP client. Insecure and timeout options
// are ignored when it is set.
func ClientOptHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// ClientOptTempDir sets where downloads are staged before being moved into
// place.
func ClientOptTempDir(dir string) ClientOption {
	return func(c *Client) {
		c.tempDir = dir
	}
}

// ClientOptMaxPages guards listings against a server that never stops
// returning continuation tokens. Zero means unlimited.
func ClientOptMaxPages(n int) ClientOption {
	return func(c *Client) {
		c.maxPages = n
	}
}

// ClientOptLegacyPathFallback retries a request under the /nexus prefix when
// the server answers 404.
func ClientOptLegacyPathFallback(enabled bool) ClientOption {
	return func(c *Client) {
		c.legacyFallback = enabled
	}
}

// ClientOptLogger replaces the logger.
func ClientOptLogger(logger log.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient returns a client for the server at baseURL, e.g.
// https://nexus.example.com.
func NewClient(baseURL string, options ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimSpace(baseURL))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid server url %q", baseURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, newInvalidError("new client", "server url %q must be absolute", baseURL)
	}

	c := &Client{baseURL: strings.TrimSuffix(u.String(), "/")}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = log.Named("nexus")
	}

	var transport *httputil.Client
	if c.httpClient != nil {
		transport = httputil.NewFromHTTPClient(c.httpClient)
	} else {
		transport = httputil.New(
			httputil.WithTimeout(c.timeout),
			httputil.WithInsecure(c.insecure),
		)
	}

	c.rest = restyutil.New(c.baseURL, transport.HTTPClient())
	if c.username != "" || c.password != "" {
		c.rest.SetBasicAuth(c.username, c.password)
	}

	c.downloader = NewDownloader(transport,
		DownloaderOptBasicAuth(c.username, c.password),
		DownloaderOptTempDir(c.tempDir),
		DownloaderOptLogger(c.logger.Named("download")),
	)

	return c, nil
}

// BaseURL returns the server URL without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Downloader returns the downloader sharing this client's transport and
// credentials.
func (c *Client) Downloader() *Downloader {
	return c.downloader
}

type request struct {
	op         string
	method     string
	path       string
	pathParams map[string]string
	query      url.Values
}

// do executes r and returns the response of a 2xx answer. Any other outcome
// is turned into an *Error.
func (c *Client) do(ctx context.Context, r request) (*resty.Response, error) {
	resp, err := c.execute(ctx, r, "")
	if err == nil && resp.StatusCode() == http.StatusNotFound && c.legacyFallback {
		c.logger.Debug("Got 404, retrying under legacy path prefix",
			logfields.String("op", r.op),
			logfields.String("prefix", legacyPathPrefix))
		resp, err = c.execute(ctx, r, legacyPathPrefix)
	}
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, newStatusError(r.op, resp.Request.URL, resp.StatusCode(), resp.Body())
	}
	return resp, nil
}

func (c *Client) execute(ctx context.Context, r request, prefix string) (*resty.Response, error) {
	req := c.rest.R().SetContext(ctx)
	if len(r.pathParams) > 0 {
		req.SetPathParams(r.pathParams)
	}
	if len(r.query) > 0 {
		req.SetQueryParamsFromValues(r.query)
	}

	resp, err := req.Execute(r.method, prefix+r.path)
	if err != nil {
		return nil, newTransportError(r.op, c.baseURL+prefix+r.path, err)
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, op, path string, pathParams map[string]string, query url.Values) ([]byte, string, error) {
	resp, err := c.do(ctx, request{
		op:         op,
		method:     http.MethodGet,
		path:       path,
		pathParams: pathParams,
		query:      query,
	})
	if err != nil {
		return nil, "", err
	}
	return resp.Body(), resp.Request.URL, nil
}

func (c *Client) delete(ctx context.Context, op, path, id string) error {
	if id == "" {
		return newInvalidError(op, "id is required")
	}
	_, err := c.do(ctx, request{
		op:         op,
		method:     http.MethodDelete,
		path:       path,
		pathParams: map[string]string{"id": id},
	})
	if err != nil {
		return err
	}
	c.logger.Debug("Deleted", logfields.String("op", op), logfields.String("id", id))
	return nil
}

// fetchPage requests one page of a paginated endpoint and decodes it.
func fetchPage[T any](ctx context.Context, c *Client, op, path string, query url.Values, continuationToken string) (*Page[T], error) {
	if continuationToken != "" {
		query.Set("continuationToken", continuationToken)
	}
	body, reqURL, err := c.get(ctx, op, path, nil, query)
	if err != nil {
		return nil, err
	}
	page, err := decodePage[T](body)
	if err != nil {
		return nil, newDecodeError(op, reqURL, err)
	}
	return page, nil
}

func (c *Client) paginateOptions(op string) []PaginateOption {
	return []PaginateOption{
		WithMaxPages(c.maxPages),
		WithPageHook(func(n, items int, hasMore bool) {
			c.logger.Debug("Fetched page",
				logfields.String("op", op),
				logfields.Int("page", n),
				logfields.Int("items", items),
				logfields.Bool("hasMore", hasMore))
		}),
	}
}

// paginate wraps Paginate so that a page limit (KindLimit) or a cancelled
// context (KindTransport) surfaces as an *Error like every other failure.
func paginate[T any](ctx context.Context, c *Client, op string, fetch PageFunc[T]) ([]T, error) {
	items, err := Paginate(ctx, fetch, c.paginateOptions(op)...)
	if err != nil {
		var e *Error
		switch {
		case errors.As(err, &e):
			return nil, err
		case errors.Is(err, ErrTooManyPages):
			return nil, &Error{Op: op, Kind: KindLimit, URL: c.baseURL, Err: err}
		default:
			return nil, newTransportError(op, c.baseURL, err)
		}
	}
	return items, nil
}
