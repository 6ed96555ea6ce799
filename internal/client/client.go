// Package client implements the ptero.Client interface on top of the
// request pipeline in internal/http.
package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ptero-io/ptero/internal/http"
	"github.com/ptero-io/ptero/pkg/ptero"
)

// Static errors for err113 compliance.
var (
	ErrPanelURLRequired = errors.New("panel URL is required")
	ErrAPIKeyRequired   = errors.New("API key is required")
)

// Client implements the ptero.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	servers     ptero.ServersClient
	nodes       ptero.NodesClient
	allocations ptero.AllocationsClient
	nests       ptero.NestsClient
}

// New creates a client from an already-normalized config (see
// pkg/pteroclient for URL normalization).
func New(config *ptero.Config) (*Client, error) {
	if config.PanelURL == "" {
		return nil, ErrPanelURLRequired
	}

	if config.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}

	httpClient := http.NewClient(config.PanelURL, config.APIKey, httpOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.PanelURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// httpOptions builds pipeline options from config.
func httpOptions(config *ptero.Config) []http.Option {
	var opts []http.Option

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.RetryMax > 0 {
		opts = append(opts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return opts
}

func (c *Client) initializeResourceClients() {
	c.servers = NewServersClient(c.httpClient)
	c.nodes = NewNodesClient(c.httpClient)
	c.allocations = NewAllocationsClient(c.httpClient)
	c.nests = NewNestsClient(c.httpClient)
}

// Servers implements ptero.Client.Servers.
func (c *Client) Servers() ptero.ServersClient {
	return c.servers
}

// Nodes implements ptero.Client.Nodes.
func (c *Client) Nodes() ptero.NodesClient {
	return c.nodes
}

// Allocations implements ptero.Client.Allocations.
func (c *Client) Allocations() ptero.AllocationsClient {
	return c.allocations
}

// Nests implements ptero.Client.Nests.
func (c *Client) Nests() ptero.NestsClient {
	return c.nests
}

// RateLimits implements ptero.Client.RateLimits.
func (c *Client) RateLimits() *ptero.RateLimits {
	return c.httpClient.RateLimits()
}

// decodeObject unwraps a single-object envelope. A body that is not the
// expected envelope is a decoding error, never a partial result.
func decodeObject[T any](body []byte, what string) (*T, error) {
	var obj ptero.Object[T]
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, &ptero.DecodingError{Err: fmt.Errorf("parsing %s response: %w", what, err)}
	}

	if obj.Object == "" {
		return nil, &ptero.DecodingError{Err: fmt.Errorf("parsing %s response: missing object envelope", what)}
	}

	return &obj.Attributes, nil
}

// decodeList unwraps a list envelope, preserving document order.
func decodeList[T any](body []byte, what string) ([]T, error) {
	var list ptero.List[T]
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &ptero.DecodingError{Err: fmt.Errorf("parsing %s response: %w", what, err)}
	}

	return list.Resources(), nil
}

// loggerAdapter adapts ptero.Logger to http.Logger.
type loggerAdapter struct {
	logger ptero.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
