package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rotationcommands "github.com/premiertools/planner/internal/application/rotation/commands"
	rotationqueries "github.com/premiertools/planner/internal/application/rotation/queries"
)

// NewMapsCommand creates the maps command group
func NewMapsCommand() *cobra.Command {
	mapsCmd := &cobra.Command{
		Use:   "maps",
		Short: "Manage the active map rotation",
	}

	mapsCmd.AddCommand(newMapsListCommand())
	mapsCmd.AddCommand(newMapsToggleCommand())

	return mapsCmd
}

func newMapsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the map catalog with rotation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rotationqueries.ListMapsQuery{})
			if err != nil {
				return err
			}
			r := resp.(*rotationqueries.ListMapsResponse)

			w := newTabWriter()
			fmt.Fprintln(w, "ID\tNAME\tROTATION")
			for _, status := range r.Maps {
				active := ""
				if status.Active {
					active = "active"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", status.Map.ID, status.Map.Name, active)
			}
			return w.Flush()
		},
	}
}

func newMapsToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <map-id>",
		Short: "Flip a map in or out of the active rotation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &rotationcommands.ToggleMapCommand{MapID: args[0]})
			if err != nil {
				return err
			}
			if resp.(*rotationcommands.ToggleMapResponse).Active {
				fmt.Printf("Map %s added to rotation\n", args[0])
			} else {
				fmt.Printf("Map %s removed from rotation\n", args[0])
			}
			return nil
		},
	}
}
