package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	rostercommands "github.com/premiertools/planner/internal/application/roster/commands"
	rosterqueries "github.com/premiertools/planner/internal/application/roster/queries"
	"github.com/premiertools/planner/internal/domain/roster"
)

// NewRosterCommand creates the roster command group
func NewRosterCommand() *cobra.Command {
	rosterCmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage players and their agent pools",
	}

	rosterCmd.AddCommand(newRosterShowCommand())
	rosterCmd.AddCommand(newRosterRenameCommand())
	rosterCmd.AddCommand(newRosterPoolCommand())
	rosterCmd.AddCommand(newRosterSubCommand())

	return rosterCmd
}

func newRosterShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the roster with each player's agent pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rosterqueries.GetRosterQuery{})
			if err != nil {
				return err
			}
			r := resp.(*rosterqueries.GetRosterResponse)

			fmt.Printf("Team: %s\n\n", r.TeamName)
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tROLE\tPOOL")
			for _, p := range r.Starters {
				printRosterRow(a, w, p, "starter")
			}
			for _, p := range r.Substitutes {
				printRosterRow(a, w, p, "sub")
			}
			return w.Flush()
		},
	}
}

func printRosterRow(a *app, w *tabwriter.Writer, p roster.Player, kind string) {
	names := make([]string, 0, len(p.AgentPool))
	for _, agentID := range p.AgentPool {
		if agent, ok := a.service.AgentByID(agentID); ok {
			names = append(names, agent.Name)
		} else {
			names = append(names, agentID)
		}
	}
	pool := "-"
	if len(names) > 0 {
		pool = strings.Join(names, ", ")
	}
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, roster.DisplayName(p), kind, truncate(pool, 60))
}

func newRosterRenameCommand() *cobra.Command {
	var playerID, name string

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a player",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rostercommands.RenamePlayerCommand{PlayerID: playerID, Name: name})
			if err != nil {
				return err
			}
			if !resp.(*rostercommands.RenamePlayerResponse).Found {
				return fmt.Errorf("unknown player: %s", playerID)
			}
			fmt.Printf("Player %s renamed to %q\n", playerID, name)
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player id (required)")
	cmd.Flags().StringVar(&name, "name", "", "New display name")
	cmd.MarkFlagRequired("player")

	return cmd
}

func newRosterPoolCommand() *cobra.Command {
	var playerID, agentID string

	cmd := &cobra.Command{
		Use:   "pool",
		Short: "Toggle an agent in a player's pool",
		Long: `Toggle an agent in a player's pool. Adding marks the agent playable
for that player; removing also clears every composition slot where that
player had the agent assigned.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rostercommands.ToggleAgentCommand{PlayerID: playerID, AgentID: agentID})
			if err != nil {
				return err
			}
			r := resp.(*rostercommands.ToggleAgentResponse)
			if r.Removed {
				fmt.Printf("Removed agent from pool")
				if r.ClearedSlots > 0 {
					fmt.Printf(" (cleared %d composition slot(s))", r.ClearedSlots)
				}
				fmt.Println()
			} else {
				fmt.Println("Added agent to pool")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player id (required)")
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent id (required)")
	cmd.MarkFlagRequired("player")
	cmd.MarkFlagRequired("agent")

	return cmd
}

func newRosterSubCommand() *cobra.Command {
	subCmd := &cobra.Command{
		Use:   "sub",
		Short: "Manage substitutes",
	}

	subCmd.AddCommand(&cobra.Command{
		Use:   "add",
		Short: "Add a blank substitute (up to five)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rostercommands.AddSubstituteCommand{})
			if err != nil {
				return err
			}
			fmt.Printf("Added substitute %s\n", resp.(*rostercommands.AddSubstituteResponse).PlayerID)
			return nil
		},
	})

	subCmd.AddCommand(&cobra.Command{
		Use:   "rm <player-id>",
		Short: "Remove a substitute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rostercommands.RemoveSubstituteCommand{PlayerID: args[0]})
			if err != nil {
				return err
			}
			if !resp.(*rostercommands.RemoveSubstituteResponse).Found {
				return fmt.Errorf("unknown substitute: %s", args[0])
			}
			fmt.Printf("Removed substitute %s\n", args[0])
			return nil
		},
	})

	return subCmd
}
