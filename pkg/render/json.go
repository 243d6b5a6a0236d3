package render

import (
	"encoding/json"
	"strings"

	"github.com/matzehuels/fpl/pkg/fpl"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// JSONOption configures [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	text bool
}

// WithJSONText includes the text diagram, one string per line.
func WithJSONText() JSONOption { return func(r *jsonRenderer) { r.text = true } }

type jsonOutput struct {
	Size        int             `json:"size"`
	Orientation string          `json:"orientation"`
	Matrix      [][]int         `json:"matrix"`
	Codes       [][]vertex.Code `json:"codes"`
	Segments    [][4]int        `json:"segments"`
	Boundary    []jsonPoint     `json:"boundary"`
	LinkPattern [][2]int        `json:"link_pattern"`
	Text        []string        `json:"text,omitempty"`
}

type jsonPoint struct {
	Label int    `json:"label"`
	Side  string `json:"side"`
	Index int    `json:"index"`
}

// RenderJSON exports a grid and everything derived from it as a
// pretty-printed JSON document: the matrix, the vertex codes, the lattice
// segments in drawing order, the labelled boundary points and the link
// pattern.
//
// It fails only when the link pattern cannot be extracted, which does not
// happen for grids built from valid matrices or configurations.
func RenderJSON(g *fpl.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	lp, err := fpl.ExtractLinkPattern(g)
	if err != nil {
		return nil, err
	}

	out := jsonOutput{
		Size:        g.Size(),
		Orientation: g.Orientation().String(),
		Matrix:      g.ToMatrix().Rows(),
		Codes:       g.Configuration().Codes(),
	}
	for _, s := range fpl.RenderSegments(g) {
		out.Segments = append(out.Segments, [4]int{s.From.X, s.From.Y, s.To.X, s.To.Y})
	}
	for _, p := range fpl.BoundaryPoints(g) {
		out.Boundary = append(out.Boundary, jsonPoint{Label: p.Label, Side: p.Side.String(), Index: p.Index})
	}
	for _, p := range lp.Pairs() {
		out.LinkPattern = append(out.LinkPattern, [2]int{p.A, p.B})
	}
	if r.text {
		out.Text = strings.Split(fpl.RenderText(g), "\n")
	}

	return json.MarshalIndent(out, "", "  ")
}
