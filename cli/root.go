// Package cli implements the notetree command line.
package cli

import (
	"fmt"
	"os"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-notetree/config"
	"github.com/spf13/cobra"
)

const serviceName = "notetree"

// app is the state shared by every command once flags are parsed.
type app struct {
	configFile string
	poolName   string

	cfg *config.Config
	log logger.Logger
}

// NewRootCommand constructs the notetree command and all its subcommands.
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "notetree",
		Short: "Inspect and upgrade note commitment tree state.",
		Long: `Inspect and upgrade the encoded frontiers, bridges and snapshots of
shielded pool note commitment trees.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	cmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "", "TOML configuration file, defaults are used if not set")
	cmd.PersistentFlags().StringVarP(&a.poolName, "pool", "p", "sapling", "pool whose depth and node kind apply")

	cmd.AddCommand(
		newInitCommand(),
		newBridgeCommand(a),
		newFrontierCommand(a),
		newSnapshotCommand(a),
		newAnchorCommand(a),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.cfg = config.Default()
	if a.configFile != "" {
		cfg, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		a.cfg = cfg
	}

	logger.New(a.cfg.LogLevel)
	a.log = logger.Sugar.WithServiceName(serviceName)
	a.log.Debugf("config %q, pool %s", a.configFile, a.poolName)
	return nil
}

// pool returns the selected pool and the operations for its node kind.
func (a *app) pool() (config.Pool, nodeOps, error) {
	p, err := a.cfg.Pool(a.poolName)
	if err != nil {
		return config.Pool{}, nil, err
	}
	ops, err := opsFor(p.Node)
	if err != nil {
		return config.Pool{}, nil, err
	}
	return p, ops, nil
}

// ExecuteRoot runs rootCmd, exiting the process on failure.
func ExecuteRoot(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
