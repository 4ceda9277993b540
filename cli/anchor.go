package cli

import (
	"github.com/forestrie/go-notetree/treestate"
	"github.com/spf13/cobra"
)

func newAnchorCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "anchor",
		Short: "Inspect signed tree anchors.",
	}
	cmd.AddCommand(newAnchorInspectCommand(a))
	return cmd
}

func newAnchorInspectCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Decode a signed anchor and print its payload as JSON.",
		Long: `Decode a signed anchor and print its payload as JSON. The signature is
not checked, the published payload has no root to check it against.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readFileArg(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			codec, err := treestate.NewCodec()
			if err != nil {
				return err
			}
			_, anchor, err := treestate.DecodeSignedAnchor(codec, data)
			if err != nil {
				return err
			}
			a.log.Debugf("anchor for %s at size %d", anchor.Pool, anchor.TreeSize)
			return writeJSON(cmd.OutOrStdout(), anchorJSON{
				Pool:      anchor.Pool,
				Depth:     anchor.Depth,
				TreeSize:  anchor.TreeSize,
				Timestamp: anchor.Timestamp,
			})
		},
	}
}
