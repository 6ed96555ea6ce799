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

// NewNestsCommand creates the nests command group
func NewNestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "nests",
		Aliases: []string{"nest"},
		Short:   "Browse nests and eggs",
		Long:    "List nests and the eggs they contain",
	}

	cmd.AddCommand(newNestsListCommand())
	cmd.AddCommand(newNestsGetCommand())
	cmd.AddCommand(newEggsCommand())

	return cmd
}

func newNestsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List nests",
		Long:  "List all nests on the panel",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			nests, err := client.Nests().List(ctx)
			if err != nil {
				return fmt.Errorf("failed to list nests: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(nests)
			case OutputFormatYAML:
				return outputYAML(nests)
			default:
				if len(nests) == 0 {
					fmt.Println("No nests found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Author", "Description")

				for _, nest := range nests {
					_ = table.Append(
						strconv.Itoa(nest.ID),
						nest.Name,
						nest.Author,
						nest.Description,
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

func newNestsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get NEST_ID",
		Short: "Get nest details",
		Long:  "Display detailed information about a specific nest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nestID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid nest ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			nest, err := client.Nests().Get(ctx, nestID)
			if err != nil {
				return fmt.Errorf("failed to get nest: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(nest)
			case OutputFormatYAML:
				return outputYAML(nest)
			default:
				fmt.Printf("Nest: %s\n", nest.Name)
				fmt.Printf("  ID:          %d\n", nest.ID)
				fmt.Printf("  UUID:        %s\n", nest.UUID)
				fmt.Printf("  Author:      %s\n", nest.Author)
				fmt.Printf("  Description: %s\n", nest.Description)
			}

			return nil
		},
	}
}

func newEggsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eggs",
		Aliases: []string{"egg"},
		Short:   "Browse eggs",
		Long:    "List eggs within a nest",
	}

	cmd.AddCommand(newEggsListCommand())
	cmd.AddCommand(newEggsGetCommand())

	return cmd
}

func newEggsListCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "list NEST_ID",
		Short: "List eggs",
		Long:  "List all eggs within a nest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nestID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid nest ID '%s': %w", args[0], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			eggs, err := client.Nests().ListEggs(ctx, nestID, include...)
			if err != nil {
				return fmt.Errorf("failed to list eggs: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(eggs)
			case OutputFormatYAML:
				return outputYAML(eggs)
			default:
				if len(eggs) == 0 {
					fmt.Println("No eggs found")
					return nil
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Author", "Docker Image")

				for _, egg := range eggs {
					_ = table.Append(
						strconv.Itoa(egg.ID),
						egg.Name,
						egg.Author,
						egg.DockerImage,
					)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "related resources to include (e.g. variables, config)")

	return cmd
}

func newEggsGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get NEST_ID EGG_ID",
		Short: "Get egg details",
		Long:  "Display detailed information about a specific egg",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nestID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid nest ID '%s': %w", args[0], err)
			}

			eggID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid egg ID '%s': %w", args[1], err)
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			egg, err := client.Nests().GetEgg(ctx, nestID, eggID, include...)
			if err != nil {
				return fmt.Errorf("failed to get egg: %w", err)
			}

			// Output results
			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return outputJSON(egg)
			case OutputFormatYAML:
				return outputYAML(egg)
			default:
				fmt.Printf("Egg: %s\n", egg.Name)
				fmt.Printf("  ID:           %d\n", egg.ID)
				fmt.Printf("  UUID:         %s\n", egg.UUID)
				fmt.Printf("  Nest:         %d\n", egg.Nest)
				fmt.Printf("  Author:       %s\n", egg.Author)
				fmt.Printf("  Description:  %s\n", egg.Description)
				fmt.Printf("  Docker image: %s\n", egg.DockerImage)
				fmt.Printf("  Startup:      %s\n", egg.Startup)

				if egg.Relationships != nil && egg.Relationships.Variables != nil {
					fmt.Println("  Variables:")
					for _, variable := range egg.Relationships.Variables.Resources() {
						fmt.Printf("    - %s (%s)\n", variable.Name, variable.EnvVariable)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "related resources to include (e.g. variables, config)")

	return cmd
}
