package sixvertex

import (
	"strings"

	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// Configuration is an immutable six-vertex configuration on a square grid.
// Row 0 is the top row. It is safe for concurrent use.
type Configuration struct {
	n     int
	codes []vertex.Code // row-major
}

// New validates codes and returns the configuration they describe.
//
// It fails with [errors.ErrCodeInvalidConfiguration] when the grid is empty or
// not square, holds an unknown code, breaks the ice rule on an interior edge,
// or breaks the ice boundary.
func New(codes [][]vertex.Code) (*Configuration, error) {
	n := len(codes)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "configuration must have at least one row")
	}
	c := &Configuration{n: n, codes: make([]vertex.Code, n*n)}
	for i, row := range codes {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidConfiguration, "configuration must be square: row %d has %d vertices, want %d", i, len(row), n)
		}
		for j, code := range row {
			if !code.Valid() {
				return nil, errors.New(errors.ErrCodeInvalidConfiguration, "vertex (%d,%d) has unknown code %d", i, j, uint8(code))
			}
			c.codes[i*n+j] = code
		}
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is like [New] but panics on invalid input.
func MustNew(codes [][]vertex.Code) *Configuration {
	c, err := New(codes)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Configuration) validate() error {
	n := c.n
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			outs := c.Outgoing(i, j)
			if j+1 < n && outs.Has(vertex.Right) == c.Outgoing(i, j+1).Has(vertex.Left) {
				return errors.New(errors.ErrCodeInvalidConfiguration, "ice rule broken on the edge between (%d,%d) and (%d,%d)", i, j, i, j+1)
			}
			if i+1 < n && outs.Has(vertex.Down) == c.Outgoing(i+1, j).Has(vertex.Up) {
				return errors.New(errors.ErrCodeInvalidConfiguration, "ice rule broken on the edge between (%d,%d) and (%d,%d)", i, j, i+1, j)
			}
		}
	}

	for k := 0; k < n; k++ {
		switch {
		case c.Outgoing(k, 0).Has(vertex.Left):
			return boundaryError("left", k)
		case c.Outgoing(k, n-1).Has(vertex.Right):
			return boundaryError("right", k)
		case !c.Outgoing(0, k).Has(vertex.Up):
			return boundaryError("top", k)
		case !c.Outgoing(n-1, k).Has(vertex.Down):
			return boundaryError("bottom", k)
		}
	}
	return nil
}

func boundaryError(side string, k int) error {
	return errors.New(errors.ErrCodeInvalidConfiguration, "ice boundary broken on the %s side at position %d", side, k)
}

// Size returns the side length D of the grid.
func (c *Configuration) Size() int { return c.n }

// Code returns the vertex code at row r, column col.
func (c *Configuration) Code(r, col int) vertex.Code { return c.codes[r*c.n+col] }

// Outgoing returns the directions whose arrows leave vertex (r, col).
func (c *Configuration) Outgoing(r, col int) vertex.Direction {
	return c.Code(r, col).Directions()
}

// Codes returns a fresh copy of the codes as nested slices.
func (c *Configuration) Codes() [][]vertex.Code {
	rows := make([][]vertex.Code, c.n)
	for i := range rows {
		rows[i] = append([]vertex.Code(nil), c.codes[i*c.n:(i+1)*c.n]...)
	}
	return rows
}

// Equal reports whether two configurations have the same codes.
func (c *Configuration) Equal(o *Configuration) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.n != o.n {
		return false
	}
	for i, code := range c.codes {
		if o.codes[i] != code {
			return false
		}
	}
	return true
}

// String draws the configuration with arrows on every edge, one text row per
// vertex row plus two rows per layer of vertical edges:
//
//	    ^    ^    ^
//	    |    |    |
//	--> # -> # -> # <--
//	    ^    ^    |
//	    |    |    V
//	--> # -> # <- # <--
//	    ^    |    |
//	    |    V    V
//	--> # <- # <- # <--
//	    |    |    |
//	    V    V    V
func (c *Configuration) String() string {
	var b strings.Builder
	n := c.n
	for i := 0; i < n; i++ {
		up := make([]bool, n)
		for j := range up {
			up[j] = c.Outgoing(i, j).Has(vertex.Up)
		}
		writeVertical(&b, up)

		if c.Outgoing(i, 0).Has(vertex.Left) {
			b.WriteString("<-- ")
		} else {
			b.WriteString("--> ")
		}
		for j := 0; j < n; j++ {
			b.WriteByte('#')
			if j+1 < n {
				if c.Outgoing(i, j).Has(vertex.Right) {
					b.WriteString(" -> ")
				} else {
					b.WriteString(" <- ")
				}
			}
		}
		if c.Outgoing(i, n-1).Has(vertex.Right) {
			b.WriteString(" -->\n")
		} else {
			b.WriteString(" <--\n")
		}
	}

	up := make([]bool, n)
	for j := range up {
		up[j] = !c.Outgoing(n-1, j).Has(vertex.Down)
	}
	writeVertical(&b, up)
	return strings.TrimSuffix(b.String(), "\n")
}

// writeVertical writes the two text rows for one layer of vertical edges.
func writeVertical(b *strings.Builder, up []bool) {
	head := make([]string, len(up))
	tail := make([]string, len(up))
	for j, u := range up {
		if u {
			head[j], tail[j] = "^", "|"
		} else {
			head[j], tail[j] = "|", "V"
		}
	}
	b.WriteString("    " + strings.Join(head, "    ") + "\n")
	b.WriteString("    " + strings.Join(tail, "    ") + "\n")
}
