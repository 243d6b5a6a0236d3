// Package render turns fully packed loop diagrams into files.
//
// # Overview
//
// The vector renderer in [fpl] produces unit segments on the integer lattice.
// This package encodes them:
//
//   - [RenderSVG] draws the segments as an SVG document
//   - [RenderPDF] and [RenderPNG] convert that SVG with rsvg-convert
//   - [RenderJSON] exports the whole diagram (matrix, codes, segments,
//     boundary points, link pattern) for other tools
//
// The link pattern of a diagram is drawn separately as a chord diagram by the
// [nodelink] subpackage.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := render.RenderSVG(fpl.RenderSegments(g), render.WithVertices(g.Size()))
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Styling
//
// SVG output is configured with functional options: [WithScale] sets the
// distance between lattice points in pixels, [WithMargin] the padding around
// the drawing, [WithStroke] and [WithStrokeWidth] the line style, and
// [WithVertices] marks every grid vertex with a dot.
//
// [fpl]: github.com/matzehuels/fpl/pkg/fpl
// [nodelink]: github.com/matzehuels/fpl/pkg/render/nodelink
package render
