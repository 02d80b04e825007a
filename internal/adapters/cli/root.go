package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath    string
	shareFragment string
	offline       bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "planner",
		Short: "Premier roster planner - agent pools and map compositions for your team",
		Long: `Premier roster planner manages a team roster, each player's agent pool,
the active map rotation, and a five-slot composition per map. State is
stored locally and can be exported, imported, or shared as an encoded link.

Examples:
  planner team name "FULL SEND"
  planner roster show
  planner roster rename --player main-0 --name TenZ
  planner roster pool --player main-0 --agent <agent-id>
  planner comp set --map <map-id> --slot 2 --player main-1 --agent <agent-id>
  planner maps toggle <map-id>
  planner export --out roster.json
  planner share encode`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: search ./config.yaml, ./configs, ~/.config/planner)")
	rootCmd.PersistentFlags().StringVar(&shareFragment, "share", "",
		"View a shared roster link instead of your saved state (read-only, never persisted)")
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false,
		"Serve catalogs from the local cache without calling the API")

	// Add command groups
	rootCmd.AddCommand(NewTeamCommand())
	rootCmd.AddCommand(NewRosterCommand())
	rootCmd.AddCommand(NewCompCommand())
	rootCmd.AddCommand(NewMapsCommand())
	rootCmd.AddCommand(NewExportCommand())
	rootCmd.AddCommand(NewImportCommand())
	rootCmd.AddCommand(NewShareCommand())
	rootCmd.AddCommand(NewCatalogCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
