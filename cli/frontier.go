package cli

import (
	"github.com/spf13/cobra"
)

func newFrontierCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "frontier",
		Short: "Inspect encoded frontiers.",
	}
	cmd.AddCommand(newFrontierInspectCommand(a))
	return cmd
}

func newFrontierInspectCommand(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Decode a frontier and print it as JSON.",
		Long: `Decode a frontier and print it as JSON. The v1 format is the optional
frontier encoding, v0 is the legacy commitment tree encoding. The root is
printed for node kinds whose hash is available.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pool, ops, err := a.pool()
			if err != nil {
				return err
			}
			data, err := decodeHexArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			f, err := ops.inspectFrontier(data, format, pool.TreeDepth())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), f)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "v1", "frontier encoding, v0 or v1")
	return cmd
}
