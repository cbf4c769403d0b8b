package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkt"

	"github.com/peterstace/geomgraph/generate"
)

type genOptions struct {
	seed     int64
	geomType string
	count    int
}

func newGenCmd(a *app) *cobra.Command {
	var opts genOptions
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print random geometries as WKT, one per line.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.seed == 0 {
				opts.seed = time.Now().UnixNano()
			}
			a.log.WithField("seed", opts.seed).Info("generating")
			rnd := rand.New(rand.NewSource(opts.seed))
			for i := 0; i < opts.count; i++ {
				g, err := randomGeometry(rnd, opts.geomType)
				if err != nil {
					return err
				}
				s, err := wkt.Marshal(g)
				if err != nil {
					return errors.Wrap(err, "marshalling geometry")
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed (0 will cause the current unix nano epoch to be used)")
	cmd.Flags().StringVar(&opts.geomType, "type", "linestring", "geometry type (point, line, linestring, polygon, grid)")
	cmd.Flags().IntVar(&opts.count, "count", 1, "the number of geometries to generate")
	return cmd
}

func randomGeometry(rnd *rand.Rand, geomType string) (geom.T, error) {
	switch geomType {
	case "point":
		return generate.RandomPoint(rnd), nil
	case "line":
		return generate.RandomLine(rnd), nil
	case "linestring":
		return generate.RandomLineString(rnd), nil
	case "polygon":
		return generate.PerlinPolygon(rnd, 10, 50, 5), nil
	case "grid":
		return generate.RandomGridSegments(rnd, 10, 10), nil
	}
	return nil, errors.Newf("unknown geometry type: %q", geomType)
}
