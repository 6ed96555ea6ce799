// Package pteroclient constructs Pterodactyl application API clients.
//
// It is the single entry point for client construction: it validates the
// config, normalizes the panel URL, and returns a ptero.Client backed by
// the internal request pipeline.
package pteroclient

import (
	"fmt"
	"strings"

	"github.com/ptero-io/ptero/internal/client"
	"github.com/ptero-io/ptero/pkg/ptero"
)

const apiPathSegment = "api/application/"

// New creates a client for the panel named in config. The panel URL is
// normalized once here: a missing scheme defaults to https, and the
// application API path segment is appended exactly once.
func New(config *ptero.Config) (ptero.Client, error) {
	if config == nil {
		return nil, ptero.ErrConfigRequired
	}

	if config.PanelURL == "" {
		return nil, ptero.ErrPanelURLRequired
	}

	if config.APIKey == "" {
		return nil, ptero.ErrAPIKeyRequired
	}

	normalized := *config
	normalized.PanelURL = normalizePanelURL(config.PanelURL)

	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client with just a panel URL and an application
// API key, using defaults for everything else.
func NewWithAPIKey(panelURL, apiKey string) (ptero.Client, error) {
	return New(&ptero.Config{
		PanelURL: panelURL,
		APIKey:   apiKey,
	})
}

// normalizePanelURL produces the base URL the pipeline joins request paths
// onto. The result always ends with the application API path segment and a
// trailing slash, no matter how the panel URL was written.
func normalizePanelURL(panelURL string) string {
	normalized := strings.TrimSpace(panelURL)

	if !strings.Contains(normalized, "://") {
		normalized = "https://" + normalized
	}

	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}

	if !strings.HasSuffix(normalized, apiPathSegment) {
		normalized += apiPathSegment
	}

	return normalized
}
