package cli

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func newBridgeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Inspect and upgrade encoded bridges.",
	}
	cmd.AddCommand(newBridgeInspectCommand(a), newBridgeUpgradeCommand(a))
	return cmd
}

func newBridgeInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <hex>",
		Short: "Decode a version tagged bridge and print it as JSON.",
		Long: `Decode a version tagged bridge, in either the legacy or the current
format, and print it as JSON. Pass - to read the hex from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ops, err := a.pool()
			if err != nil {
				return err
			}
			data, err := decodeHexArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			b, err := ops.inspectBridge(data)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), b)
		},
	}
}

func newBridgeUpgradeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade <hex>",
		Short: "Re-encode a bridge in the current format.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, ops, err := a.pool()
			if err != nil {
				return err
			}
			data, err := decodeHexArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			upgraded, err := ops.upgradeBridge(data)
			if err != nil {
				return err
			}
			a.log.Debugf("upgraded bridge: %d bytes to %d", len(data), len(upgraded))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(upgraded))
			return err
		},
	}
}
