//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/ptero-io/ptero/pkg/pteroclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	PanelURL string
	APIKey   string
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		PanelURL: os.Getenv("PTERO_PANEL"),
		APIKey:   os.Getenv("PTERO_API_KEY"),
	}
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if config.PanelURL == "" {
		t.Skip("PTERO_PANEL not set, skipping integration test")
	}

	if config.APIKey == "" {
		t.Skip("PTERO_API_KEY not set, skipping integration test")
	}
}

func newTestClient(t *testing.T) ptero.Client {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	client, err := pteroclient.NewWithAPIKey(config.PanelURL, config.APIKey)
	require.NoError(t, err)

	return client
}

// TestPanelWorkflow_ReadResources walks the read-only resource surface
// against a live panel.
func TestPanelWorkflow_ReadResources(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	servers, err := client.Servers().List(ctx)
	require.NoError(t, err, "Failed to list servers")

	for _, server := range servers {
		got, err := client.Servers().Get(ctx, server.ID)
		require.NoError(t, err, "Failed to get server %d", server.ID)
		assert.Equal(t, server.UUID, got.UUID)
	}

	nodes, err := client.Nodes().List(ctx)
	require.NoError(t, err, "Failed to list nodes")

	for _, node := range nodes {
		_, err := client.Allocations().List(ctx, node.ID)
		require.NoError(t, err, "Failed to list allocations on node %d", node.ID)
	}

	nests, err := client.Nests().List(ctx)
	require.NoError(t, err, "Failed to list nests")

	for _, nest := range nests {
		eggs, err := client.Nests().ListEggs(ctx, nest.ID, "variables")
		require.NoError(t, err, "Failed to list eggs in nest %d", nest.ID)

		for _, egg := range eggs {
			assert.Equal(t, nest.ID, egg.Nest)
		}
	}

	// Any successful call above should have populated the quota snapshot
	// if the panel sends rate-limit headers.
	if limits := client.RateLimits(); limits != nil {
		assert.GreaterOrEqual(t, limits.Limit, limits.Remaining)
	}
}

// TestPanelWorkflow_NotFound verifies the error taxonomy against a live
// panel using an ID that should not exist.
func TestPanelWorkflow_NotFound(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.Servers().Get(ctx, 999999999)
	require.Error(t, err)
	assert.True(t, ptero.IsNotFound(err), "expected a not-found error, got %v", err)
}
