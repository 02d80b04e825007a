package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	teamcommands "github.com/premiertools/planner/internal/application/team/commands"
)

// NewTeamCommand creates the team command group
func NewTeamCommand() *cobra.Command {
	teamCmd := &cobra.Command{
		Use:   "team",
		Short: "Manage the team",
	}

	teamCmd.AddCommand(newTeamNameCommand())

	return teamCmd
}

func newTeamNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name <name>",
		Short: "Set the team name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			if _, err := a.mediator.Send(ctx, &teamcommands.SetTeamNameCommand{Name: args[0]}); err != nil {
				return err
			}
			fmt.Printf("Team name set to %q\n", args[0])
			return nil
		},
	}
}
