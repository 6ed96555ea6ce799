// Package http implements the request pipeline shared by every resource
// client: it builds authenticated requests, dispatches them over one shared
// transport, translates failures into the public error taxonomy, and tracks
// the panel's rate-limit headers.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ptero-io/ptero/pkg/ptero"
)

const defaultUserAgent = "ptero-go"

// Encoder lets a request body control its own serialization. Bodies that
// do not implement it are JSON-marshaled.
type Encoder interface {
	EncodeBody() ([]byte, error)
}

// Request describes one API call relative to the client's base URL.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	// Body is attached as JSON when non-nil, or via its Encoder
	// implementation if it has one.
	Body any
	// Classifier, when set, gets first look at non-2xx responses before the
	// generic status translation applies.
	Classifier ErrorClassifier
}

// Response is the raw result of one API call.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Logger matches ptero.Logger; redeclared here so the pipeline does not
// depend on the public package's interface identity.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Client executes authenticated calls against the application API. The
// base URL, credential, and transport are fixed at construction; the only
// mutable state is the rate-limit snapshot, which is lock-guarded.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *nethttp.Client
	userAgent  string
	logger     Logger
	debug      bool
	rateLimits rateLimitTracker
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default transport.
func WithHTTPClient(httpClient *nethttp.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used by debug mode.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithRetryConfig swaps the transport for a retrying one. Retries happen
// below the pipeline, so each pipeline invocation still observes a single
// final response.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		retryClient := retryablehttp.NewClient()
		retryClient.RetryMax = retryMax
		retryClient.RetryWaitMin = waitMin
		retryClient.RetryWaitMax = waitMax
		retryClient.Logger = nil
		c.httpClient = retryClient.StandardClient()
	}
}

// NewClient creates a pipeline client. baseURL must already be normalized
// to end with the application API path segment and a trailing slash;
// request paths are joined onto it verbatim.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &nethttp.Client{},
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// RateLimits returns a copy of the last recorded quota snapshot, or nil if
// no successful response has carried both headers yet.
func (c *Client) RateLimits() *ptero.RateLimits {
	return c.rateLimits.read()
}

// Do executes one call. On non-2xx statuses it returns the raw response
// together with the classified or translated error; on transport failures
// the response is nil. Failed calls never touch the rate-limit snapshot.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    httpReq.URL.String(),
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &ptero.NetworkError{Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &ptero.NetworkError{Err: err}
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    httpReq.URL.String(),
		})
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if req.Classifier != nil {
			if classified := req.Classifier.Classify(resp); classified != nil {
				return resp, classified
			}
		}

		return resp, translateStatus(resp.StatusCode)
	}

	c.rateLimits.record(resp.Headers)

	return resp, nil
}

// buildRequest constructs the outgoing request: URL join, standard
// headers, and the encoded body. Encoding failures abort before dispatch.
func (c *Client) buildRequest(ctx context.Context, req *Request) (*nethttp.Request, error) {
	var bodyReader io.Reader

	if req.Body != nil {
		data, err := encodeBody(req.Body)
		if err != nil {
			return nil, &ptero.EncodingError{Err: err}
		}

		bodyReader = bytes.NewReader(data)
	}

	httpReq, err := nethttp.NewRequestWithContext(ctx, req.Method, c.baseURL+req.Path, bodyReader)
	if err != nil {
		return nil, &ptero.NetworkError{Err: err}
	}

	if len(req.Query) > 0 {
		httpReq.URL.RawQuery = req.Query.Encode()
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	return httpReq, nil
}

func encodeBody(body any) ([]byte, error) {
	if enc, ok := body.(Encoder); ok {
		return enc.EncodeBody()
	}

	return json.Marshal(body)
}

// translateStatus maps a non-2xx status with no specific classification to
// the generic error taxonomy.
func translateStatus(status int) error {
	switch status {
	case nethttp.StatusForbidden:
		return ptero.ErrPermission
	case nethttp.StatusNotFound:
		return ptero.ErrNotFound
	case nethttp.StatusTooManyRequests:
		return ptero.ErrRateLimited
	default:
		return &ptero.HTTPError{StatusCode: status}
	}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Patch issues a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
