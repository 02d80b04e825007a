package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewCatalogCommand creates the catalog command group
func NewCatalogCommand() *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect and refresh the agent and map catalogs",
	}

	catalogCmd.AddCommand(newCatalogSyncCommand())
	catalogCmd.AddCommand(newCatalogAgentsCommand())
	catalogCmd.AddCommand(newCatalogMapsCommand())

	return catalogCmd
}

func newCatalogSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Force a fresh catalog fetch and rewrite the local cache",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			agents, maps, err := a.catalog.Refresh(ctx)
			if err != nil {
				return fmt.Errorf("catalog sync failed: %w", err)
			}
			fmt.Printf("Synced %d agents and %d maps\n", agents, maps)
			return nil
		},
	}
}

func newCatalogAgentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "agents",
		Short: "List the playable agent catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tROLE")
			for _, agent := range a.service.Agents() {
				fmt.Fprintf(w, "%s\t%s\t%s\n", agent.ID, agent.Name, agent.Role.Name)
			}
			return w.Flush()
		},
	}
}

func newCatalogMapsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maps",
		Short: "List the map catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME")
			for _, m := range a.service.Maps() {
				fmt.Fprintf(w, "%s\t%s\n", m.ID, m.Name)
			}
			return w.Flush()
		},
	}
}
