// Package pkg provides the libraries behind fpl, which draws the fully packed
// loop configurations of alternating sign matrices.
//
// # Overview
//
// An alternating sign matrix of order D corresponds to a six-vertex
// configuration on a D×D grid. Choosing two of the four edges at every vertex
// by its code and parity turns that configuration into a fully packed loop:
// every vertex has exactly two edges, and the strands that reach the boundary
// pair up the 2D boundary points into a non-crossing link pattern.
//
//	[asm] matrix or [sixvertex] configuration
//	         ↓
//	    [fpl] grid (orientation + parity)
//	         ↓
//	text diagram · lattice segments · link pattern
//	         ↓
//	[render] SVG/PDF/PNG/JSON, [render/nodelink] chord diagrams
//
// # Packages
//
//   - [vertex]: edge directions, the six vertex codes and the parity tables
//   - [asm]: alternating sign matrices, parsing and enumeration
//   - [sixvertex]: ice-rule configurations and the conversion to and from matrices
//   - [geom]: lattice points, segments and a segment canvas
//   - [fpl]: the fully packed loop grid and its renderers and link pattern
//   - [render]: vector output for lattice segments
//   - [render/nodelink]: link patterns as Graphviz chord diagrams
//   - [io]: reading and writing matrix and configuration documents
//   - [errors]: coded errors shared by all packages
//   - [buildinfo]: version information injected at build time
//
// # Quick Start
//
//	m, _ := asm.Parse("[[0,1,0],[1,-1,1],[0,1,0]]")
//	g := fpl.FromMatrix(m)
//	fmt.Println(fpl.RenderText(g))
//	lp, _ := fpl.ExtractLinkPattern(g)
//	fmt.Println(lp) // [(1, 2), (3, 6), (4, 5)]
package pkg
