package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ptero-io/ptero/internal/http"
	"github.com/ptero-io/ptero/pkg/ptero"
)

// NestsClient implements ptero.NestsClient.
type NestsClient struct {
	httpClient *http.Client
}

// NewNestsClient creates a new nests client.
func NewNestsClient(httpClient *http.Client) *NestsClient {
	return &NestsClient{httpClient: httpClient}
}

// List implements ptero.NestsClient.List.
func (c *NestsClient) List(ctx context.Context) ([]ptero.Nest, error) {
	resp, err := c.httpClient.Get(ctx, "nests", nil)
	if err != nil {
		return nil, fmt.Errorf("listing nests: %w", err)
	}

	return decodeList[ptero.Nest](resp.Body, "nest list")
}

// Get implements ptero.NestsClient.Get.
func (c *NestsClient) Get(ctx context.Context, id int) (*ptero.Nest, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("nests/%d", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting nest: %w", err)
	}

	return decodeObject[ptero.Nest](resp.Body, "nest")
}

// ListEggs implements ptero.NestsClient.ListEggs.
func (c *NestsClient) ListEggs(ctx context.Context, nestID int, include ...string) ([]ptero.Egg, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("nests/%d/eggs", nestID), includeQuery(include))
	if err != nil {
		return nil, fmt.Errorf("listing eggs: %w", err)
	}

	return decodeList[ptero.Egg](resp.Body, "egg list")
}

// GetEgg implements ptero.NestsClient.GetEgg.
func (c *NestsClient) GetEgg(ctx context.Context, nestID, eggID int, include ...string) (*ptero.Egg, error) {
	resp, err := c.httpClient.Get(ctx, fmt.Sprintf("nests/%d/eggs/%d", nestID, eggID), includeQuery(include))
	if err != nil {
		return nil, fmt.Errorf("getting egg: %w", err)
	}

	return decodeObject[ptero.Egg](resp.Body, "egg")
}

// includeQuery renders include parameters as a single comma-joined value,
// the format the panel expects.
func includeQuery(include []string) url.Values {
	if len(include) == 0 {
		return nil
	}

	return url.Values{"include": []string{strings.Join(include, ",")}}
}
