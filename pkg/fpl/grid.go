package fpl

import (
	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/sixvertex"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// Orientation selects which checkerboard color the top-left vertex gets.
// The two orientations give the two fully packed loops of a configuration,
// one the complement of the other.
type Orientation uint8

const (
	// TopLeftEven makes vertex (0,0) even. This is the standard convention.
	TopLeftEven Orientation = iota
	// TopLeftOdd makes vertex (0,0) odd.
	TopLeftOdd
)

func (o Orientation) String() string {
	if o == TopLeftOdd {
		return "odd"
	}
	return "even"
}

// ParseOrientation accepts "even" or "odd".
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "even", "":
		return TopLeftEven, nil
	case "odd":
		return TopLeftOdd, nil
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown orientation %q (want even or odd)", s)
}

// Option configures a [Grid].
type Option func(*Grid)

// WithOrientation sets the global orientation convention.
func WithOrientation(o Orientation) Option {
	return func(g *Grid) { g.orientation = o }
}

// Grid is a D×D array of vertex codes ready for rendering. It is immutable
// and safe for concurrent use.
type Grid struct {
	n           int
	codes       []vertex.Code // row-major
	orientation Orientation
	config      *sixvertex.Configuration
}

// New builds a grid from a generator, which must be an alternating sign
// matrix (*asm.Matrix or asm.Matrix) or a six-vertex configuration
// (*sixvertex.Configuration or sixvertex.Configuration). Any other value
// fails with [errors.ErrCodeInvalidGenerator].
func New(generator any, opts ...Option) (*Grid, error) {
	var cfg *sixvertex.Configuration
	switch gen := generator.(type) {
	case *asm.Matrix:
		if gen != nil {
			cfg = sixvertex.FromMatrix(gen)
		}
	case asm.Matrix:
		if gen.Size() > 0 {
			cfg = sixvertex.FromMatrix(&gen)
		}
	case *sixvertex.Configuration:
		cfg = gen
	case sixvertex.Configuration:
		if gen.Size() > 0 {
			cfg = &gen
		}
	}
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeInvalidGenerator,
			"the generator for a fully packed loop must either be an alternating sign matrix or a six-vertex configuration")
	}
	return FromConfiguration(cfg, opts...), nil
}

// FromMatrix builds the grid of an alternating sign matrix.
func FromMatrix(m *asm.Matrix, opts ...Option) *Grid {
	return FromConfiguration(sixvertex.FromMatrix(m), opts...)
}

// FromConfiguration builds the grid of a six-vertex configuration.
func FromConfiguration(c *sixvertex.Configuration, opts ...Option) *Grid {
	n := c.Size()
	g := &Grid{n: n, codes: make([]vertex.Code, 0, n*n), config: c}
	for _, row := range c.Codes() {
		g.codes = append(g.codes, row...)
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Size returns the side length D.
func (g *Grid) Size() int { return g.n }

// Orientation returns the orientation convention of the grid.
func (g *Grid) Orientation() Orientation { return g.orientation }

// Code returns the vertex code at row r, column c.
func (g *Grid) Code(r, c int) vertex.Code { return g.codes[r*g.n+c] }

// Parity returns the checkerboard parity of vertex (r, c) under the grid's
// orientation.
func (g *Grid) Parity(r, c int) vertex.Parity {
	return vertex.ParityOf(r, c) ^ vertex.Parity(g.orientation)
}

// Active returns the two directions in which the loop strand leaves vertex
// (r, c).
func (g *Grid) Active(r, c int) vertex.Direction {
	return vertex.Active(g.Code(r, c), g.Parity(r, c))
}

// Configuration returns the underlying six-vertex configuration.
func (g *Grid) Configuration() *sixvertex.Configuration { return g.config }

// ToMatrix returns the alternating sign matrix the grid corresponds to.
func (g *Grid) ToMatrix() *asm.Matrix { return g.config.ToMatrix() }

// String returns the text diagram, see [RenderText].
func (g *Grid) String() string { return RenderText(g) }

// Side identifies one of the four sides of the grid.
type Side uint8

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{Top: "top", Right: "right", Bottom: "bottom", Left: "left"}

func (s Side) String() string {
	if int(s) < len(sideNames) {
		return sideNames[s]
	}
	return "unknown"
}

// Direction returns the direction pointing out of the grid across side s.
func (s Side) Direction() vertex.Direction {
	switch s {
	case Top:
		return vertex.Up
	case Right:
		return vertex.Right
	case Bottom:
		return vertex.Down
	case Left:
		return vertex.Left
	}
	return vertex.None
}

// cell returns the grid vertex at position k along side s.
func (g *Grid) cell(s Side, k int) (r, c int) {
	switch s {
	case Top:
		return 0, k
	case Right:
		return k, g.n - 1
	case Bottom:
		return g.n - 1, k
	default:
		return k, 0
	}
}

// Occupied reports whether a loop strand crosses side s at position k, where
// k is the column for Top and Bottom and the row for Left and Right. Even
// vertices on the top and bottom and odd vertices on the left and right are
// occupied; the result is false for positions off the grid.
func (g *Grid) Occupied(s Side, k int) bool {
	if k < 0 || k >= g.n || s > Left {
		return false
	}
	p := g.Parity(g.cell(s, k))
	if s == Top || s == Bottom {
		return p == vertex.Even
	}
	return p == vertex.Odd
}
