package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	compositioncommands "github.com/premiertools/planner/internal/application/composition/commands"
	compositionqueries "github.com/premiertools/planner/internal/application/composition/queries"
	"github.com/premiertools/planner/internal/domain/roster"
)

// NewCompCommand creates the composition command group
func NewCompCommand() *cobra.Command {
	compCmd := &cobra.Command{
		Use:   "comp",
		Short: "Manage per-map compositions",
	}

	compCmd.AddCommand(newCompShowCommand())
	compCmd.AddCommand(newCompSetCommand())
	compCmd.AddCommand(newCompAgentsCommand())

	return compCmd
}

func newCompShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <map-id>",
		Short: "Show a map's five slots with role counts and duplicate warnings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &compositionqueries.GetCompositionQuery{MapID: args[0]})
			if err != nil {
				return err
			}
			r := resp.(*compositionqueries.GetCompositionResponse)

			w := newTabWriter()
			fmt.Fprintln(w, "SLOT\tPLAYER\tAGENT\tROLE\t")
			for i, slot := range r.Slots {
				playerName := "-"
				if slot.PlayerID != "" {
					if p := a.service.Plan().Roster.Find(slot.PlayerID); p != nil {
						playerName = roster.DisplayName(*p)
					} else {
						playerName = slot.PlayerID
					}
				}
				agentName, roleName, mark := "-", "-", ""
				if slot.AgentID != "" {
					if agent, ok := a.service.AgentByID(slot.AgentID); ok {
						agentName, roleName = agent.Name, agent.Role.Name
					} else {
						agentName = slot.AgentID
					}
					if r.Duplicates[slot.AgentID] {
						mark = "DUPLICATE"
					}
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i, playerName, agentName, roleName, mark)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			if len(r.RoleCounts) > 0 {
				parts := make([]string, 0, len(r.RoleCounts))
				for role, n := range r.RoleCounts {
					parts = append(parts, fmt.Sprintf("%s: %d", role, n))
				}
				fmt.Printf("\nRoles: %s\n", strings.Join(parts, ", "))
			}
			return nil
		},
	}
}

func newCompSetCommand() *cobra.Command {
	var mapID, playerID, agentID string
	var index int

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Assign a player and agent to one slot",
		Long: `Assign a player and agent to one slot of a map's composition.
Pass empty --player or --agent values to clear that part of the slot.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			_, err = a.mediator.Send(ctx, &compositioncommands.UpdateSlotCommand{
				MapID:    mapID,
				Index:    index,
				PlayerID: playerID,
				AgentID:  agentID,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Updated slot %d on %s\n", index, mapID)
			return nil
		},
	}

	cmd.Flags().StringVar(&mapID, "map", "", "Map id (required)")
	cmd.Flags().IntVar(&index, "slot", 0, "Slot index, 0-4")
	cmd.Flags().StringVar(&playerID, "player", "", "Player id for the slot")
	cmd.Flags().StringVar(&agentID, "agent", "", "Agent id for the slot")
	cmd.MarkFlagRequired("map")

	return cmd
}

func newCompAgentsCommand() *cobra.Command {
	var mapID, playerID string
	var index int

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the agents a player can take in a slot, picker-ordered",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &compositionqueries.AvailableAgentsQuery{
				PlayerID: playerID,
				MapID:    mapID,
				Index:    index,
			})
			if err != nil {
				return err
			}
			r := resp.(*compositionqueries.AvailableAgentsResponse)

			if len(r.Agents) == 0 {
				fmt.Println("No agents in this player's pool")
				return nil
			}
			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tROLE")
			for _, agent := range r.Agents {
				fmt.Fprintf(w, "%s\t%s\t%s\n", agent.ID, agent.Name, agent.Role.Name)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&playerID, "player", "", "Player id (required)")
	cmd.Flags().StringVar(&mapID, "map", "", "Map id (required)")
	cmd.Flags().IntVar(&index, "slot", 0, "Slot index, 0-4")
	cmd.MarkFlagRequired("player")
	cmd.MarkFlagRequired("map")

	return cmd
}
