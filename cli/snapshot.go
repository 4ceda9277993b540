package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newSnapshotCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect and upgrade tree state snapshots.",
	}
	cmd.AddCommand(newSnapshotInspectCommand(a), newSnapshotUpgradeCommand(a))
	return cmd
}

func newSnapshotInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a snapshot and print a summary as JSON.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, ops, err := a.pool()
			if err != nil {
				return err
			}
			data, err := readFileArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			s, err := ops.inspectSnapshot(a.log, pool, data)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), s)
		},
	}
}

func newSnapshotUpgradeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <in> <out>",
		Short: "Rewrite a snapshot with every bridge in the current format.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, ops, err := a.pool()
			if err != nil {
				return err
			}
			data, err := readFileArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			upgraded, err := ops.upgradeSnapshot(a.log, pool, data)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[1], upgraded, 0o644); err != nil {
				return err
			}
			a.log.Infof("wrote %s", args[1])
			return nil
		},
	}
}
