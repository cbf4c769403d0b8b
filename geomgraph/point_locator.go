package geomgraph

import (
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/xy"
	"github.com/twpayne/go-geom/xy/location"
)

// locatePointInArea finds the location of a point relative to the areal
// components of g. Non-areal components are ignored, so a point is only ever
// in the interior or boundary of g if g has a polygon containing it.
func locatePointInArea(p geom.Coord, g geom.T) location.Type {
	switch g := g.(type) {
	case *geom.Polygon:
		return locatePointInPolygon(p, g)
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			if loc := locatePointInPolygon(p, g.Polygon(i)); loc != location.Exterior {
				return loc
			}
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			if loc := locatePointInArea(p, sub); loc != location.Exterior {
				return loc
			}
		}
	}
	return location.Exterior
}

func locatePointInPolygon(p geom.Coord, poly *geom.Polygon) location.Type {
	if poly.NumLinearRings() == 0 {
		return location.Exterior
	}
	shell := poly.LinearRing(0)
	if shell.NumCoords() == 0 {
		return location.Exterior
	}
	switch xy.LocatePointInRing(shell.Layout(), p, shell.FlatCoords()) {
	case location.Exterior:
		return location.Exterior
	case location.Boundary:
		return location.Boundary
	}
	for i := 1; i < poly.NumLinearRings(); i++ {
		hole := poly.LinearRing(i)
		switch xy.LocatePointInRing(hole.Layout(), p, hole.FlatCoords()) {
		case location.Boundary:
			return location.Boundary
		case location.Interior:
			return location.Exterior
		}
	}
	return location.Interior
}

// locatePoint finds the location of a point relative to every component of
// g. A point is Interior to a matching point component, to the interior of a
// line, or to the interior of an area. Line endpoints are counted across all
// components and the rule decides whether the count makes p Boundary.
func locatePoint(p geom.Coord, g geom.T, rule BoundaryNodeRule) location.Type {
	var pl pointLocation
	pl.visit(p, g)
	switch {
	case pl.numBoundaries > 0:
		return DetermineBoundary(rule, pl.numBoundaries)
	case pl.isIn:
		return location.Interior
	}
	return location.Exterior
}

type pointLocation struct {
	isIn          bool
	numBoundaries int
}

func (pl *pointLocation) update(loc location.Type) {
	switch loc {
	case location.Interior:
		pl.isIn = true
	case location.Boundary:
		pl.numBoundaries++
	}
}

func (pl *pointLocation) visit(p geom.Coord, g geom.T) {
	switch g := g.(type) {
	case *geom.Point:
		if !g.Empty() && equals2D(p, g.Coords()) {
			pl.isIn = true
		}
	case *geom.MultiPoint:
		for i := 0; i < g.NumPoints(); i++ {
			pl.visit(p, g.Point(i))
		}
	case *geom.LineString:
		pl.update(locatePointOnLine(p, g.Coords()))
	case *geom.LinearRing:
		pl.update(locatePointOnLine(p, g.Coords()))
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			pl.visit(p, g.LineString(i))
		}
	case *geom.Polygon:
		pl.update(locatePointInPolygon(p, g))
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			pl.visit(p, g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, sub := range g.Geoms() {
			pl.visit(p, sub)
		}
	}
}

// locatePointOnLine gives Boundary at the endpoints of an open line, Interior
// anywhere else on the line, and Exterior off it.
func locatePointOnLine(p geom.Coord, coords []geom.Coord) location.Type {
	if len(coords) == 0 {
		return location.Exterior
	}
	first, last := coords[0], coords[len(coords)-1]
	if !equals2D(first, last) && (equals2D(p, first) || equals2D(p, last)) {
		return location.Boundary
	}
	if len(coords) == 1 {
		if equals2D(p, first) {
			return location.Interior
		}
		return location.Exterior
	}
	for i := 1; i < len(coords); i++ {
		if onSegment(p, coords[i-1], coords[i]) {
			return location.Interior
		}
	}
	return location.Exterior
}

func onSegment(p, a, b geom.Coord) bool {
	if p[0] < math.Min(a[0], b[0]) || p[0] > math.Max(a[0], b[0]) ||
		p[1] < math.Min(a[1], b[1]) || p[1] > math.Max(a[1], b[1]) {
		return false
	}
	return orientationIndex(a, b, p) == 0
}
