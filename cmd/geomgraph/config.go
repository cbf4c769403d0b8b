package main

import (
	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/peterstace/geomgraph/geomgraph"
)

// Config holds the settings that can be given in a config file. Any that are
// also given as flags are overridden by the flag.
type Config struct {
	BoundaryRule  string `toml:"boundary_rule"`
	LogLevel      string `toml:"log_level"`
	IncludeProper bool   `toml:"include_proper"`
	RingSelfNodes bool   `toml:"ring_self_nodes"`
	Indexed       bool   `toml:"indexed"`
}

func defaultConfig() Config {
	return Config{
		BoundaryRule:  "mod2",
		LogLevel:      "info",
		IncludeProper: true,
		RingSelfNodes: true,
		Indexed:       true,
	}
}

// loadConfig reads a config file over the defaults. An empty path gives the
// defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrapf(err, "reading config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Newf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, nil
}

// bindFlags registers a flag for each config setting.
func bindFlags(cmd *cobra.Command, cfg *Config) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&cfg.BoundaryRule, "boundary-rule", cfg.BoundaryRule, "boundary node rule (mod2, endpoint, multivalent, monovalent)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.IncludeProper, "include-proper", cfg.IncludeProper, "record proper intersections between the two geometries")
	fs.BoolVar(&cfg.RingSelfNodes, "ring-self-nodes", cfg.RingSelfNodes, "node polygon rings against themselves")
	fs.BoolVar(&cfg.Indexed, "indexed", cfg.Indexed, "use the R-Tree backed edge set intersector")
}

// overrideFromFlags copies the flags that were set on the command line into
// cfg.
func overrideFromFlags(cmd *cobra.Command, flags, cfg *Config) {
	fs := cmd.Flags()
	if fs.Changed("boundary-rule") {
		cfg.BoundaryRule = flags.BoundaryRule
	}
	if fs.Changed("log-level") {
		cfg.LogLevel = flags.LogLevel
	}
	if fs.Changed("include-proper") {
		cfg.IncludeProper = flags.IncludeProper
	}
	if fs.Changed("ring-self-nodes") {
		cfg.RingSelfNodes = flags.RingSelfNodes
	}
	if fs.Changed("indexed") {
		cfg.Indexed = flags.Indexed
	}
}

func parseBoundaryRule(name string) (geomgraph.BoundaryNodeRule, error) {
	switch name {
	case "mod2", "":
		return geomgraph.Mod2BoundaryNodeRule{}, nil
	case "endpoint":
		return geomgraph.EndPointBoundaryNodeRule{}, nil
	case "multivalent":
		return geomgraph.MultiValentEndPointBoundaryNodeRule{}, nil
	case "monovalent":
		return geomgraph.MonoValentEndPointBoundaryNodeRule{}, nil
	}
	return nil, errors.Newf("unknown boundary rule: %q", name)
}

// graphOptions converts the config into options for building graphs.
func (c Config) graphOptions(log logrus.FieldLogger) ([]geomgraph.GraphOption, error) {
	rule, err := parseBoundaryRule(c.BoundaryRule)
	if err != nil {
		return nil, err
	}
	var esi geomgraph.EdgeSetIntersector = geomgraph.SimpleEdgeSetIntersector{}
	if c.Indexed {
		esi = geomgraph.IndexedEdgeSetIntersector{}
	}
	return []geomgraph.GraphOption{
		geomgraph.WithBoundaryNodeRule(rule),
		geomgraph.WithEdgeSetIntersector(esi),
		geomgraph.WithLogger(log),
	}, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parsing log level")
	}
	log := logrus.New()
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return log, nil
}
