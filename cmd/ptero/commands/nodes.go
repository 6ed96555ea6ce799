package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/ptero-io/ptero/pkg/ptero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewNodesCommand creates the nodes command group
func NewNodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nodes",
		Aliases: []string{"node"},
		Short:   "Manage nodes",
		Long:    "List and manage panel nodes and their allocations",
	}

	cmd.AddCommand(newNodesListCommand())
	cmd.AddCommand(newNodesGetCommand())
	cmd.AddCommand(newNodesDeleteCommand())
	cmd.AddCommand(newAllocationsCommand())

	return cmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List nodes",
		Long:  "List all nodes on the panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			nodes, err := client.Nodes().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list nodes: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(nodes)
			case OutputFormatYAML:
				return outputYAML(nodes)
			default:
				if len(nodes) == 0 {
					fmt.Println("No nodes found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "FQDN", "Memory", "Disk", "Maintenance")

				for _, node := range nodes {
					maintenance := "no"
					if node.MaintenanceMode {
						maintenance = "yes"
					}

					_ = table.Append(
						strconv.Itoa(node.ID),
						node.Name,
						node.FQDN,
						fmt.Sprintf("%d MB", node.Memory),
						fmt.Sprintf("%d MB", node.Disk),
						maintenance,
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

func newNodesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NODE_ID",
		Short: "Get node details",
		Long:  "Display detailed information about a specific node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			node, err := client.Nodes().Get(ctx, nodeID)
			if err != nil {
				return fmt.Errorf("failed to get node: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(node)
			case OutputFormatYAML:
				return outputYAML(node)
			default:
				fmt.Printf("Node: %s\n", node.Name)
				fmt.Printf("  ID:            %d\n", node.ID)
				fmt.Printf("  FQDN:          %s\n", node.FQDN)
				fmt.Printf("  Scheme:        %s\n", node.Scheme)
				fmt.Printf("  Location:      %d\n", node.LocationID)
				fmt.Printf("  Public:        %t\n", node.Public)
				fmt.Printf("  Behind proxy:  %t\n", node.BehindProxy)
				fmt.Printf("  Maintenance:   %t\n", node.MaintenanceMode)
				fmt.Printf("  Memory:        %d MB (overallocate %d%%)\n", node.Memory, node.MemoryOverallocate)
				fmt.Printf("  Disk:          %d MB (overallocate %d%%)\n", node.Disk, node.DiskOverallocate)
				fmt.Printf("  Daemon listen: %d\n", node.DaemonListen)
				fmt.Printf("  Daemon SFTP:   %d\n", node.DaemonSFTP)

				if node.Description != nil {
					fmt.Printf("  Description:   %s\n", *node.Description)
				}
			}

			return nil
		},
	}
}

func newNodesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete NODE_ID",
		Short: "Delete a node",
		Long:  "Delete a node from the panel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node ID '%s': %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete node %d? (y/N): ", nodeID)
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

			if err := client.Nodes().Delete(ctx, nodeID); err != nil {
				return fmt.Errorf("failed to delete node: %w", err)
			}

			fmt.Printf("Successfully deleted node %d\n", nodeID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}

func newAllocationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "allocations",
		Aliases: []string{"allocation"},
		Short:   "Manage node allocations",
		Long:    "List and manage IP/port allocations on a node",
	}

	cmd.AddCommand(newAllocationsListCommand())
	cmd.AddCommand(newAllocationsCreateCommand())
	cmd.AddCommand(newAllocationsDeleteCommand())

	return cmd
}

func newAllocationsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list NODE_ID",
		Short: "List allocations",
		Long:  "List all allocations on a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			allocations, err := client.Allocations().List(ctx, nodeID)
			if err != nil {
				return fmt.Errorf("failed to list allocations: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(allocations)
			case OutputFormatYAML:
				return outputYAML(allocations)
			default:
				if len(allocations) == 0 {
					fmt.Println("No allocations found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "IP", "Alias", "Port", "Assigned")

				for _, allocation := range allocations {
					alias := ""
					if allocation.Alias != nil {
						alias = *allocation.Alias
					}

					assigned := "no"
					if allocation.Assigned {
						assigned = "yes"
					}

					_ = table.Append(
						strconv.Itoa(allocation.ID),
						allocation.IP,
						alias,
						strconv.Itoa(allocation.Port),
						assigned,
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

func newAllocationsCreateCommand() *cobra.Command {
	var (
		ip    string
		ports []string
		alias string
	)

	cmd := &cobra.Command{
		Use:   "create NODE_ID",
		Short: "Create allocations",
		Long:  "Create allocations on a node from an IP and a list of ports or port ranges",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid node ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			createReq := &ptero.CreateAllocationRequest{
				IP:    ip,
				Ports: ports,
			}

			if alias != "" {
				createReq.Alias = &alias
			}

			if err := client.Allocations().Create(ctx, nodeID, createReq); err != nil {
				return fmt.Errorf("failed to create allocations: %w", err)
			}

			fmt.Printf("Successfully created %d allocation entries on node %d\n", len(ports), nodeID)

			return nil
		},
	}

	cmd.Flags().StringVar(&ip, "ip", "", "IP address (required)")
	cmd.Flags().StringSliceVar(&ports, "ports", nil, "ports or port ranges, e.g. 25565 or 25566-25570 (required)")
	cmd.Flags().StringVar(&alias, "alias", "", "allocation alias")
	cmd.MarkFlagRequired("ip")
	cmd.MarkFlagRequired("ports")

	return cmd
}

func newAllocationsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete ALLOCATION_ID",
		Short: "Delete an allocation",
		Long:  "Delete an allocation by its ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			allocationID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid allocation ID '%s': %w", args[0], err)
			}

			if !force {
				fmt.Printf("Really delete allocation %d? (y/N): ", allocationID)
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

			if err := client.Allocations().Delete(ctx, allocationID); err != nil {
				return fmt.Errorf("failed to delete allocation: %w", err)
			}

			fmt.Printf("Successfully deleted allocation %d\n", allocationID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
