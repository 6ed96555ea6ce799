package client

import (
	"context"
	"fmt"

	"github.com/ptero-io/ptero/internal/http"
	"github.com/ptero-io/ptero/pkg/ptero"
)

// AllocationsClient implements ptero.AllocationsClient.
type AllocationsClient struct {
	httpClient *http.Client
}

// NewAllocationsClient creates a new allocations client.
func NewAllocationsClient(httpClient *http.Client) *AllocationsClient {
	return &AllocationsClient{httpClient: httpClient}
}

// List implements ptero.AllocationsClient.List.
func (c *AllocationsClient) List(ctx context.Context, nodeID int) ([]ptero.Allocation, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("nodes/%d/allocations", nodeID), nil)
	if err != nil {
		return nil, fmt.Errorf("listing allocations: %w", err)
	}

	return decodeList[ptero.Allocation](resp.Body, "allocation list")
}

// Create implements ptero.AllocationsClient.Create. The panel replies with
// an empty body on success, so there is nothing to decode.
func (c *AllocationsClient) Create(ctx context.Context, nodeID int, request *ptero.CreateAllocationRequest) error {
	_, err := c.httpClient.Post(ctx, fmt.Sprintf("nodes/%d/allocations", nodeID), request)
	if err != nil {
		return fmt.Errorf("creating allocation: %w", err)
	}

	return nil
}

// Delete implements ptero.AllocationsClient.Delete. The panel exposes a
// flat allocation route for deletion.
func (c *AllocationsClient) Delete(ctx context.Context, allocationID int) error {
	_, err := c.httpClient.Delete(ctx, fmt.Sprintf("allocations/%d", allocationID))
	if err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}

	return nil
}
