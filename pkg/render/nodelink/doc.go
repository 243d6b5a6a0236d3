// Package nodelink draws link patterns as chord diagrams.
//
// # Overview
//
// A link pattern matches the 2D boundary points of a fully packed loop in
// pairs. This package places the points on a circle, in the same clockwise
// order as their labels, and joins matched points with a straight edge. A
// non-crossing pattern therefore gives a diagram whose chords never cross.
//
// # Usage
//
// Convert a pattern to DOT format, then render to SVG:
//
//	lp, _ := fpl.ExtractLinkPattern(g)
//	dot := nodelink.ToDOT(lp, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Radius: circle radius in inches (default 1.5)
//   - Points: when set, node labels also name the side and position of each
//     boundary point
//
// # DOT Format
//
// [ToDOT] emits an undirected graph with layout=neato and pinned node
// positions, so any Graphviz installation reproduces the same picture.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
