package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewServersCommand creates the servers command group
func NewServersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "servers",
		Aliases: []string{"server"},
		Short:   "Manage servers",
		Long:    "List and manage panel servers",
	}

	cmd.AddCommand(newServersListCommand())
	cmd.AddCommand(newServersGetCommand())
	cmd.AddCommand(newServersDeleteCommand())

	return cmd
}

func newServersListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List servers",
		Long:  "List all servers on the panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			servers, err := client.Servers().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list servers: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(servers)
			case OutputFormatYAML:
				return outputYAML(servers)
			default:
				if len(servers) == 0 {
					fmt.Println("No servers found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Identifier", "Node", "User", "Suspended")

				for _, server := range servers {
					suspended := "no"
					if server.Suspended {
						suspended = "yes"
					}

					_ = table.Append(
						strconv.Itoa(server.ID),
						server.Name,
						server.Identifier,
						strconv.Itoa(server.Node),
						strconv.Itoa(server.User),
						suspended,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}

func newServersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get SERVER_ID",
		Short: "Get server details",
		Long:  "Display detailed information about a specific server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid server ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			server, err := client.Servers().Get(ctx, serverID)
			if err != nil {
				return fmt.Errorf("failed to get server: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(server)
			case OutputFormatYAML:
				return outputYAML(server)
			default:
				fmt.Printf("Server: %s\n", server.Name)
				fmt.Printf("  ID:          %d\n", server.ID)
				fmt.Printf("  UUID:        %s\n", server.UUID)
				fmt.Printf("  Identifier:  %s\n", server.Identifier)
				fmt.Printf("  Description: %s\n", server.Description)
				fmt.Printf("  Suspended:   %t\n", server.Suspended)
				fmt.Printf("  Node:        %d\n", server.Node)
				fmt.Printf("  User:        %d\n", server.User)
				fmt.Printf("  Nest:        %d\n", server.Nest)
				fmt.Printf("  Egg:         %d\n", server.Egg)
				fmt.Printf("  Memory:      %d MB\n", server.Limits.Memory)
				fmt.Printf("  Disk:        %d MB\n", server.Limits.Disk)
				fmt.Printf("  CPU:         %d%%\n", server.Limits.CPU)
				fmt.Printf("  Image:       %s\n", server.Container.Image)
				fmt.Printf("  Installed:   %t\n", server.Container.Installed.Bool())
			}

			return nil
		},
	}
}

func newServersDeleteCommand() *cobra.Command {
	var (
		force bool
		hard  bool
	)

	cmd := &cobra.Command{
		Use:   "delete SERVER_ID",
		Short: "Delete a server",
		Long:  "Delete a server, optionally forcing removal when normal deletion fails",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			serverID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid server ID '%s': %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete server %d? (y/N): ", serverID)
				var response string
				fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					fmt.Println("Cancelled")
					return nil
				}
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if hard {
				err = client.Servers().ForceDelete(ctx, serverID)
			} else {
				err = client.Servers().Delete(ctx, serverID)
			}

			if err != nil {
				return fmt.Errorf("failed to delete server: %w", err)
			}

			fmt.Printf("Successfully deleted server %d\n", serverID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")
	cmd.Flags().BoolVar(&hard, "hard", false, "force removal even if normal deletion fails")

	return cmd
}
