package client

import (
	"context"
	"fmt"
	nethttp "net/http"

	"github.com/ptero-io/ptero/internal/http"
	"github.com/ptero-io/ptero/pkg/ptero"
)

// NodesClient implements ptero.NodesClient.
type NodesClient struct {
	httpClient *http.Client
}

// NewNodesClient creates a new nodes client.
func NewNodesClient(httpClient *http.Client) *NodesClient {
	return &NodesClient{httpClient: httpClient}
}

// List implements ptero.NodesClient.List.
func (c *NodesClient) List(ctx context.Context) ([]ptero.Node, error) {
	resp, err := c.httpClient.Get(ctx, "nodes", nil)
	if err != nil {
		return nil, fmt.Errorf("listing nodes: %w", err)
	}

	return decodeList[ptero.Node](resp.Body, "node list")
}

// Get implements ptero.NodesClient.Get.
func (c *NodesClient) Get(ctx context.Context, id int) (*ptero.Node, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("nodes/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting node: %w", err)
	}

	return decodeObject[ptero.Node](resp.Body, "node")
}

// Create implements ptero.NodesClient.Create. Validation failures from the
// panel surface as *ptero.ResponseError.
func (c *NodesClient) Create(ctx context.Context, request *ptero.CreateNodeRequest) (*ptero.Node, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodPost,
		Path:       "nodes",
		Body:       request,
		Classifier: http.APIErrorClassifier{},
	})
	if err != nil {
		return nil, fmt.Errorf("creating node: %w", err)
	}

	return decodeObject[ptero.Node](resp.Body, "node")
}

// Update implements ptero.NodesClient.Update.
func (c *NodesClient) Update(ctx context.Context, id int, request *ptero.UpdateNodeRequest) (*ptero.Node, error) {
	resp, err := c.httpClient.Do(ctx, &http.Request{
		Method:     nethttp.MethodPatch,
		Path:       fmt.Sprintf("nodes/%d", id),
		Body:       request,
		Classifier: http.APIErrorClassifier{},
	})
	if err != nil {
		return nil, fmt.Errorf("updating node: %w", err)
	}

	return decodeObject[ptero.Node](resp.Body, "node")
}

// Delete implements ptero.NodesClient.Delete.
func (c *NodesClient) Delete(ctx context.Context, id int) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("nodes/%d", id))
	if err != nil {
		return fmt.Errorf("deleting node: %w", err)
	}

	return nil
}
