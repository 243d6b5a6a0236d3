// Package fpl builds fully packed loop diagrams from alternating sign matrices
// and six-vertex configurations.
//
// # Overview
//
// A fully packed loop (FPL) on a D×D grid selects exactly two of the four
// edges at every vertex. The selected edges form non-crossing paths, whose
// ends sit on alternating boundary positions, and closed loops. Every
// six-vertex configuration with the ice boundary determines one FPL: on the
// even sublattice a vertex keeps the edges whose arrows point out, on the odd
// sublattice the edges whose arrows point in.
//
// The package has one data type and three independent consumers:
//
//  1. [Grid] - immutable D×D array of vertex codes plus the orientation
//     convention deciding which cells count as even
//  2. [RenderText] - ASCII diagram built from fixed tiles
//  3. [RenderSegments] - the same diagram as lattice line segments
//  4. [ExtractLinkPattern] - the non-crossing matching that the paths induce
//     on the boundary points
//
// # Quick Start
//
//	m, _ := asm.Parse("0 1 0; 1 -1 1; 0 1 0")
//	g := fpl.FromMatrix(m)
//
//	fmt.Println(g)              // text diagram
//	segs := fpl.RenderSegments(g)
//	lp, _ := fpl.ExtractLinkPattern(g)
//	fmt.Println(lp)             // [(1, 2), (3, 6), (4, 5)]
//
// # Coordinates
//
// Grid accessors use (row, column) with row 0 at the top. The vector renderer
// places vertex (r, c) at the lattice point (c, D-1-r), so the picture reads
// the same way up as the matrix.
//
// # Boundary
//
// Boundary points are the active edges leaving the grid. With the default
// [TopLeftEven] orientation they sit on even columns of the top side, on odd
// rows of the left side, and alternate from there around the square. Labels
// run clockwise from the top-left corner starting at 1.
//
// # Concurrency
//
// Grids are read-only after construction. All functions in this package are
// safe to call concurrently on a shared grid.
package fpl
