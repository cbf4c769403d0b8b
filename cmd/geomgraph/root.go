package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app holds the state shared by the subcommands once the config has been
// resolved.
type app struct {
	configFile string
	flags      Config
	cfg        Config
	log        *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{flags: defaultConfig()}
	root := &cobra.Command{
		Use:          "geomgraph",
		Short:        "Build and inspect topology graphs of geometries.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.startup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "TOML configuration file location")
	bindFlags(root, &a.flags)

	root.AddCommand(newNodeCmd(a), newGenCmd(a))
	return root
}

// startup reads the config file, applies any flags that were given, and sets
// up logging.
func (a *app) startup(cmd *cobra.Command) error {
	cfg, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	overrideFromFlags(cmd, &a.flags, &cfg)
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	a.cfg = cfg
	a.log = log
	a.log.WithFields(logrus.Fields{
		"config":        a.configFile,
		"boundary_rule": cfg.BoundaryRule,
		"indexed":       cfg.Indexed,
	}).Debug("starting")
	return nil
}
