// Package geomgraph represents geometries as planar graphs, and labels the
// components of those graphs topologically with respect to up to two input
// geometries.
//
// A GeometryGraph decomposes a geometry into edges (one per line or ring) and
// nodes. Its edges are then noded (split wherever they cross or touch other
// edges) so that edges only meet at shared endpoints. A PlanarGraph built from
// the noded edges holds two DirectedEdges per edge, sorted around each node in
// counter-clockwise order. The stars of directed edges at each node are used
// to aggregate labels, propagate depths, and link result edges into rings.
//
// Graphs are not safe for concurrent use, but graphs for different geometries
// share no state and may be built concurrently (see BuildPair).
package geomgraph
