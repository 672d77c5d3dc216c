package client

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/hcbtrack/hcb/pkg/hcb"
	"github.com/hcbtrack/hcb/pkg/logging"
	"github.com/hcbtrack/hcb/pkg/soap"
	"github.com/hcbtrack/hcb/pkg/util"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// Defaults mirroring the official mobile app.
const (
	DefaultEndpoint   = "https://api.synovia.com/SynoviaApi.svc"
	DefaultAppVersion = "3.6.0"
	DefaultServer     = "prdweb1"
	DefaultTimeout    = 30 * time.Second

	appName = "hctb"
)

// Well-known time of day ids shared by every school.
const (
	AMID = "55632A13-35C5-4169-B872-F5ABDC25DF6A"
	PMID = "6E7A050E-0295-4200-8EDC-3611BB5DE1C1"
)

// maxLogBody bounds response bodies written to debug logs and HTTPError.
const maxLogBody = 2048

// Client is a Here Comes the Bus API client.
type Client struct {
	endpoint   string
	host       string
	httpClient *http.Client
	timeout    time.Duration
	logger     *slog.Logger
	appVersion string
	server     string
	headers    http.Header
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint sets the service URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// WithHTTPClient sets the HTTP client used for requests. The caller keeps
// ownership of it; a WithTimeout option applies to a copy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the HTTP timeout, regardless of option order.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger for request tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithAppVersion sets the app version reported in headers and at login.
func WithAppVersion(version string) Option {
	return func(c *Client) {
		if version != "" {
			c.appVersion = version
		}
	}
}

// WithServer sets the backend pinned by the SRV cookie.
func WithServer(server string) Option {
	return func(c *Client) {
		if server != "" {
			c.server = server
		}
	}
}

// WithHeader adds a header to every request, replacing a default of the
// same name.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// New creates a new client.
func New(opts ...Option) *Client {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logging.Nop(),
		appVersion: DefaultAppVersion,
		server:     DefaultServer,
		headers:    http.Header{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 && c.httpClient.Timeout != c.timeout {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	if u, err := url.Parse(c.endpoint); err == nil {
		c.host = u.Host
	}
	return c
}

// Endpoint returns the service URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// GetSchoolID resolves a school code to the school's id.
func (c *Client) GetSchoolID(ctx context.Context, schoolCode string) (string, error) {
	doc, err := c.call(ctx, "s1100", schoolCode)
	if err != nil {
		return "", err
	}
	return hcb.SchoolIDFromDocument(doc)
}

// GetParentInfo logs in and returns the parent's account, linked students
// and times of day.
func (c *Client) GetParentInfo(ctx context.Context, schoolID, username, password string) (*hcb.AccountResponse, error) {
	doc, err := c.call(ctx, "s1157",
		schoolID, username, password,
		"LookupItem_Source_Android", "Android", c.appVersion, "")
	if err != nil {
		return nil, err
	}
	return hcb.AccountFromDocument(doc)
}

// GetStopInfo returns the bus location and stops of one student for one time
// of day.
func (c *Client) GetStopInfo(ctx context.Context, schoolID, parentID, studentID, timeOfDayID string) (*hcb.StopResponse, error) {
	doc, err := c.call(ctx, "s1158",
		schoolID, parentID, studentID, timeOfDayID,
		"true", "false", "10", "14", "english")
	if err != nil {
		return nil, err
	}
	return hcb.StopFromDocument(doc)
}

// call posts method with positional params and returns the parsed response.
func (c *Client) call(ctx context.Context, method string, params ...string) (*etree.Document, error) {
	body, err := soap.BuildEnvelope(method, soap.Positional(params...))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create request: %w", method, err)
	}
	c.setHeaders(req, method)

	requestID := uuid.NewString()
	logger := c.logger.With("operation", method, "request_id", requestID)
	logger.Debug("soap request", "endpoint", c.endpoint)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("soap request failed", "error", err, "duration", time.Since(start))
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := readBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", method, err)
	}
	logger.Debug("soap response",
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"body", util.TruncateBody(string(data), maxLogBody),
	)

	// Faults usually come back as 500s; report them as faults when the body
	// says so.
	doc, parseErr := xmlquery.Parse(string(data))
	if parseErr == nil {
		if err := soap.CheckFault(doc); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s: %w", method, &HTTPError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       util.TruncateBody(string(data), maxLogBody),
		})
	}

	if parseErr != nil {
		return nil, &hcb.SchemaError{Op: method, Reason: "unreadable document", Err: parseErr}
	}
	return doc, nil
}

func (c *Client) setHeaders(req *http.Request, method string) {
	h := req.Header
	h.Set("app-version", c.appVersion)
	h.Set("app-name", appName)
	h.Set("client-version", c.appVersion)
	h.Set("user-agent", fmt.Sprintf("%s/%s App-Press/%s", appName, c.appVersion, c.appVersion))
	h.Set("cache-control", "no-cache")
	h.Set("content-type", "text/xml")
	h.Set("connection", "Keep-Alive")
	h.Set("accept-encoding", "gzip")
	h.Set("cookie", "SRV="+c.server)
	h.Set("soapaction", soap.Action(method))
	for k, v := range c.headers {
		h[k] = v
	}
	if c.host != "" {
		req.Host = c.host
	}
}

// readBody reads the response body, gunzipping it when the server
// compressed it. Setting accept-encoding explicitly turns off the
// transport's own decompression.
func readBody(resp *http.Response) ([]byte, error) {
	var r io.Reader = resp.Body
	if strings.EqualFold(resp.Header.Get("Content-Encoding"), "gzip") {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, err
		}
		defer func() { _ = gz.Close() }()
		r = gz
	}
	return io.ReadAll(r)
}
