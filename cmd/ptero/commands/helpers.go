package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/ptero-io/ptero/pkg/pteroclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// Common static errors used throughout the commands package.
var (
	ErrPanelRequired  = errors.New("panel URL is required (use --panel, PTERO_PANEL, or 'ptero login')")
	ErrAPIKeyRequired = errors.New("API key is required (use --api-key, PTERO_API_KEY, or 'ptero login')")
)

// createClient builds a client from the effective configuration (flags,
// environment, then config file).
func createClient() (ptero.Client, error) {
	panelURL := viper.GetString("panel")
	if panelURL == "" {
		return nil, ErrPanelRequired
	}

	apiKey := viper.GetString("api_key")
	if apiKey == "" {
		return nil, ErrAPIKeyRequired
	}

	client, err := pteroclient.New(&ptero.Config{
		PanelURL: panelURL,
		APIKey:   apiKey,
		Debug:    viper.GetBool("verbose"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes v to stdout as indented JSON.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// outputYAML writes v to stdout as YAML.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// cliConfig is the on-disk shape of ~/.ptero/config.yml.
type cliConfig struct {
	Panel  string `yaml:"panel,omitempty"`
	APIKey string `yaml:"api_key,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// saveConfig persists the credentials written by login.
func saveConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".ptero")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
