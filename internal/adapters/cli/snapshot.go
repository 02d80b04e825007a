package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	snapshotcommands "github.com/premiertools/planner/internal/application/snapshot/commands"
	"github.com/premiertools/planner/internal/domain/plan"
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full state bundle to a JSON file",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()
			sharedNotice(a)

			resp, err := a.mediator.Send(ctx, &snapshotcommands.ExportPlanCommand{})
			if err != nil {
				return err
			}
			r := resp.(*snapshotcommands.ExportPlanResponse)

			path := out
			if path == "" {
				path = r.Filename
			}
			if err := os.WriteFile(path, r.Data, 0o644); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
			fmt.Printf("Exported to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output path (default: derived from the team name)")

	return cmd
}

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Apply a previously exported bundle",
		Long: `Apply a previously exported bundle. Sections absent from the file
leave the matching local state untouched; a malformed file changes nothing.
Importing while viewing a shared link adopts the result as your own state.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.mediator.Send(ctx, &snapshotcommands.ImportPlanCommand{Data: data}); err != nil {
				return err
			}
			fmt.Printf("Imported %s\n", args[0])
			return nil
		},
	}
}

// NewShareCommand creates the share command group
func NewShareCommand() *cobra.Command {
	shareCmd := &cobra.Command{
		Use:   "share",
		Short: "Encode or inspect shareable roster links",
	}

	shareCmd.AddCommand(&cobra.Command{
		Use:   "encode",
		Short: "Print the current state as a URL-safe share fragment",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.mediator.Send(ctx, &snapshotcommands.EncodeShareCommand{})
			if err != nil {
				return err
			}
			fmt.Println(resp.(*snapshotcommands.EncodeShareResponse).Fragment)
			return nil
		},
	})

	shareCmd.AddCommand(&cobra.Command{
		Use:   "decode <fragment>",
		Short: "Decode a share fragment and print its contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshot, err := plan.DecodeShare(args[0])
			if err != nil {
				return err
			}
			data, err := plan.Marshal(snapshot)
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		},
	})

	return shareCmd
}
