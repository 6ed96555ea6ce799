package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/ptero-io/ptero/internal/http"
	"github.com/ptero-io/ptero/pkg/ptero"
)

// ServersClient implements ptero.ServersClient.
type ServersClient struct {
	httpClient *http.Client
}

// NewServersClient creates a new servers client.
func NewServersClient(httpClient *http.Client) *ServersClient {
	return &ServersClient{httpClient: httpClient}
}

// List implements ptero.ServersClient.List.
func (c *ServersClient) List(ctx context.Context) ([]ptero.Server, error) {
	resp, err := c.httpClient.Get(ctx, "servers", nil)
	if err != nil {
		return nil, fmt.Errorf("listing servers: %w", err)
	}

	return decodeList[ptero.Server](resp.Body, "server list")
}

// Get implements ptero.ServersClient.Get.
func (c *ServersClient) Get(ctx context.Context, id int) (*ptero.Server, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("servers/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting server: %w", err)
	}

	return decodeObject[ptero.Server](resp.Body, "server")
}

// Create implements ptero.ServersClient.Create. Validation failures from
// the panel surface as *ptero.ResponseError.
func (c *ServersClient) Create(ctx context.Context, request *ptero.CreateServerRequest) (*ptero.Server, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodPost,
		Path:       "servers",
		Body:       request,
		Classifier: http.APIErrorClassifier{},
	})
	if err != nil {
		return nil, fmt.Errorf("creating server: %w", err)
	}

	return decodeObject[ptero.Server](resp.Body, "server")
}

// Delete implements ptero.ServersClient.Delete.
func (c *ServersClient) Delete(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("servers/%d", id))
	if err != nil {
		return fmt.Errorf("deleting server: %w", err)
	}

	return nil
}

// ForceDelete implements ptero.ServersClient.ForceDelete.
func (c *ServersClient) ForceDelete(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("servers/%d/force", id))
	if err != nil {
		return fmt.Errorf("force deleting server: %w", err)
	}

	return nil
}
