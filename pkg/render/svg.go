package render

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/matzehuels/fpl/pkg/geom"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale       float64
	margin      float64
	stroke      string
	strokeWidth float64
	background  string
	vertices    int
}

// WithScale sets the distance between neighbouring lattice points in pixels.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithMargin sets the padding around the drawing in pixels.
func WithMargin(m float64) SVGOption { return func(r *svgRenderer) { r.margin = m } }

// WithStroke sets the line color.
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// WithStrokeWidth sets the line width in pixels.
func WithStrokeWidth(w float64) SVGOption { return func(r *svgRenderer) { r.strokeWidth = w } }

// WithBackground fills the canvas with color. The default is transparent.
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithVertices marks the vertices of a size×size grid with dots.
func WithVertices(size int) SVGOption { return func(r *svgRenderer) { r.vertices = size } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: 40, margin: 20, stroke: "#1f2937", strokeWidth: 4}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws lattice segments as an SVG document. Lattice y grows upward
// and is flipped for SVG. Segments repeated in the input are drawn once.
func RenderSVG(segs []geom.Segment, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var canvas geom.Canvas
	seen := make(map[geom.Segment]bool, len(segs))
	for _, s := range segs {
		if key := s.Normalize(); !seen[key] {
			seen[key] = true
			canvas.Add(key)
		}
	}
	lines := canvas.Segments()
	slices.SortFunc(lines, geom.Compare)

	bounds := canvas.Bounds()
	if r.vertices > 0 {
		bounds.MinX, bounds.MinY = min(bounds.MinX, 0), min(bounds.MinY, 0)
		bounds.MaxX, bounds.MaxY = max(bounds.MaxX, r.vertices-1), max(bounds.MaxY, r.vertices-1)
	}
	width := float64(bounds.Width())*r.scale + 2*r.margin
	height := float64(bounds.Height())*r.scale + 2*r.margin

	px := func(p geom.Point) (float64, float64) {
		return float64(p.X-bounds.MinX)*r.scale + r.margin, float64(bounds.MaxY-p.Y)*r.scale + r.margin
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.background)
	}

	fmt.Fprintf(&buf, `  <g class="loops" stroke="%s" stroke-width="%.1f" stroke-linecap="round" fill="none">`+"\n",
		r.stroke, r.strokeWidth)
	for _, s := range lines {
		x1, y1 := px(s.From)
		x2, y2 := px(s.To)
		fmt.Fprintf(&buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>`+"\n", x1, y1, x2, y2)
	}
	buf.WriteString("  </g>\n")

	if r.vertices > 0 {
		fmt.Fprintf(&buf, `  <g class="vertices" fill="%s">`+"\n", r.stroke)
		for y := 0; y < r.vertices; y++ {
			for x := 0; x < r.vertices; x++ {
				cx, cy := px(geom.Point{X: x, Y: y})
				fmt.Fprintf(&buf, `    <circle cx="%.1f" cy="%.1f" r="%.1f"/>`+"\n", cx, cy, r.strokeWidth)
			}
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders segments as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(segs []geom.Segment, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	return ToPDF(RenderSVG(segs, r.svgOpts...))
}

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	svgOpts []SVGOption
	scale   float64
}

// WithPNGSVGOptions passes options through to the underlying SVG renderer.
func WithPNGSVGOptions(opts ...SVGOption) PNGOption {
	return func(r *pngRenderer) { r.svgOpts = opts }
}

// WithPNGScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithPNGScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// RenderPNG renders segments as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(segs []geom.Segment, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 2.0}
	for _, opt := range opts {
		opt(&r)
	}
	return ToPNG(RenderSVG(segs, r.svgOpts...), r.scale)
}
