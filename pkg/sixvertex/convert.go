package sixvertex

import (
	"encoding/json"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// FromMatrix returns the six-vertex configuration corresponding to m.
//
// Arrow directions follow from partial sums: the horizontal edge left of
// vertex (i,j) points out of it when the row sum before column j is 1, the
// edge right of it when the row sum through column j is 0, and likewise for
// the vertical edges with column sums above and through row i.
func FromMatrix(m *asm.Matrix) *Configuration {
	n := m.Size()
	c := &Configuration{n: n, codes: make([]vertex.Code, n*n)}
	colSums := make([]int, n)
	for i := 0; i < n; i++ {
		rowSum := 0
		for j := 0; j < n; j++ {
			v := m.At(i, j)
			var outs vertex.Direction
			if rowSum == 1 {
				outs |= vertex.Left
			}
			if rowSum+v == 0 {
				outs |= vertex.Right
			}
			if colSums[j] == 0 {
				outs |= vertex.Up
			}
			if colSums[j]+v == 1 {
				outs |= vertex.Down
			}
			code, ok := vertex.CodeFor(outs)
			if !ok {
				// Unreachable for a validated matrix.
				panic("sixvertex: matrix produced an invalid vertex at " + outs.String())
			}
			c.codes[i*n+j] = code
			rowSum += v
			colSums[j] += v
		}
	}
	return c
}

// ToMatrix returns the alternating sign matrix corresponding to c: a vertex
// whose vertical arrows both point out is a 1, one whose horizontal arrows
// both point out is a -1, and every other vertex is a 0.
func (c *Configuration) ToMatrix() *asm.Matrix {
	rows := make([][]int, c.n)
	for i := range rows {
		rows[i] = make([]int, c.n)
		for j := range rows[i] {
			switch c.Code(i, j) {
			case vertex.UD:
				rows[i][j] = 1
			case vertex.LR:
				rows[i][j] = -1
			}
		}
	}
	return asm.MustNew(rows)
}

// MarshalJSON encodes the configuration as nested arrays of code names.
func (c *Configuration) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Codes())
}

// UnmarshalJSON decodes nested arrays of code names and validates them like
// [New].
func (c *Configuration) UnmarshalJSON(data []byte) error {
	var codes [][]vertex.Code
	if err := json.Unmarshal(data, &codes); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, err, "decode configuration")
	}
	parsed, err := New(codes)
	if err != nil {
		return err
	}
	*c = *parsed
	return nil
}
