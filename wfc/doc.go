// Package wfc generates 2D or 3D tile grids from a caller-supplied tile
// alphabet, adjacency rules, and per-direction neighbour geometry, using
// constraint propagation with backtracking (a Wave-Function-Collapse
// style solver).
//
// The package is generic over the tile alphabet T and the direction
// alphabet D; both must be comparable. The caller implements Ruleset to
// describe its alphabet, then drives a Board through New, Generate (or
// the single-step Generate1/GenerateN) and reads the result back with
// Get or Tiles.
package wfc
