package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/fpl/pkg/fpl"
	"github.com/matzehuels/fpl/pkg/render"
)

// Options configures chord diagram rendering.
type Options struct {
	// Radius of the circle in inches. Zero means 1.5.
	Radius float64
	// Points adds the side and position of each boundary point to its node
	// label. Usually the result of [fpl.BoundaryPoints].
	Points []fpl.BoundaryPoint
}

// ToDOT converts a link pattern to Graphviz DOT format. Label 1 sits just
// clockwise of the top of the circle and labels increase clockwise.
func ToDOT(lp *fpl.LinkPattern, opts Options) string {
	radius := opts.Radius
	if radius <= 0 {
		radius = 1.5
	}
	points := make(map[int]fpl.BoundaryPoint, len(opts.Points))
	for _, p := range opts.Points {
		points[p.Label] = p
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.45, fixedsize=true];\n")
	buf.WriteString("  edge [penwidth=2];\n")
	buf.WriteString("\n")

	n := lp.Points()
	for label := 1; label <= n; label++ {
		x, y := position(label, n, radius)
		fmt.Fprintf(&buf, "  \"%d\" [label=%q, pos=\"%.3f,%.3f!\"];\n", label, fmtLabel(label, points), x, y)
	}

	buf.WriteString("\n")
	for _, p := range lp.Pairs() {
		fmt.Fprintf(&buf, "  \"%d\" -- \"%d\";\n", p.A, p.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// position places label k of n on the circle, going clockwise from the top.
func position(k, n int, radius float64) (x, y float64) {
	theta := math.Pi/2 - (float64(k)-0.5)*2*math.Pi/float64(n)
	return radius * math.Cos(theta), radius * math.Sin(theta)
}

func fmtLabel(label int, points map[int]fpl.BoundaryPoint) string {
	p, ok := points[label]
	if !ok {
		return strconv.Itoa(label)
	}
	return fmt.Sprintf("%d\n%s %d", label, p.Side, p.Index)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
