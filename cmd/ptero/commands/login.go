package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/ptero-io/ptero/pkg/pteroclient"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		panelURL string
		apiKey   string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Login to a Pterodactyl panel",
		Long:  "Verify an application API key against a panel and save it for later commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get panel URL
			if panelURL == "" {
				panelURL = viper.GetString("panel")
			}

			if panelURL == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Panel URL: ")
				panelURL, _ = reader.ReadString('\n')
				panelURL = strings.TrimSpace(panelURL)
			}

			if panelURL == "" {
				return ErrPanelRequired
			}

			// Get API key; read it without echo when prompted
			if apiKey == "" {
				apiKey = viper.GetString("api_key")
			}

			if apiKey == "" {
				fmt.Print("API key: ")
				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}
				apiKey = strings.TrimSpace(string(byteKey))
				fmt.Println()
			}

			if apiKey == "" {
				return ErrAPIKeyRequired
			}

			client, err := pteroclient.New(&ptero.Config{
				PanelURL: panelURL,
				APIKey:   apiKey,
			})
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			// Test the credential with a cheap read
			ctx := context.Background()
			servers, err := client.Servers().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to connect to panel: %w", err)
			}

			if err := saveConfig(&cliConfig{
				Panel:  panelURL,
				APIKey: apiKey,
				Output: viper.GetString("output"),
			}); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Printf("Successfully logged in to %s\n", panelURL)
			fmt.Printf("Panel has %d servers visible to this key\n", len(servers))

			return nil
		},
	}

	cmd.Flags().StringVar(&panelURL, "panel", "", "panel URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "application API key")

	return cmd
}
