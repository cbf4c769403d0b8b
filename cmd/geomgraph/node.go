package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/peterstace/geomgraph/geomgraph"
)

func newNodeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "node WKT0 WKT1",
		Short: "Node two geometries against each other and print the labelled graph.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var gs [2]geom.T
			for i, arg := range args {
				g, err := wkt.Unmarshal(arg)
				if err != nil {
					return errors.Wrapf(err, "parsing geometry %d", i)
				}
				gs[i] = g
			}
			return a.node(cmd.OutOrStdout(), gs[0], gs[1])
		},
	}
}

// node builds the topology graph of two geometries and writes its edges and
// nodes to w.
func (a *app) node(w io.Writer, g0, g1 geom.T) error {
	opts, err := a.cfg.graphOptions(a.log)
	if err != nil {
		return err
	}
	graphs, err := geomgraph.BuildPair(g0, g1, a.cfg.RingSelfNodes, opts...)
	if err != nil {
		return err
	}
	for _, gg := range graphs {
		if gg.HasTooFewPoints() {
			return errors.Newf("geometry %d has too few points near %v", gg.ArgIndex(), gg.InvalidPoint())
		}
	}

	edges := geomgraph.SplitPair(graphs, geomgraph.NewRobustLineIntersector(), a.cfg.IncludeProper)
	pg, err := geomgraph.BuildTopology(graphs, edges)
	if err != nil {
		if geomgraph.IsTopologyError(err) {
			return errors.Wrap(err, "inputs are not validly noded")
		}
		return err
	}
	a.log.WithFields(logrus.Fields{
		"edges": len(pg.Edges()),
		"nodes": len(pg.Nodes()),
	}).Info("built topology")

	if err := pg.Dump(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Nodes:"); err != nil {
		return err
	}
	_, err = io.WriteString(w, pg.NodeMap().String())
	return err
}
