package fpl

import (
	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// ExtractLinkPattern follows every loop strand from the boundary and returns
// the induced matching of boundary labels (see [BoundaryPoints]).
//
// Strands are traced from the smallest unmatched label. At each vertex the
// strand leaves through the active direction it did not enter by, until it
// crosses the boundary again. A strand that enters a vertex through an
// inactive edge, leaves through an unoccupied boundary position, or runs
// longer than 2·D² steps makes the grid malformed; the function then fails
// with [errors.ErrCodeInvariant] and returns no partial result.
func ExtractLinkPattern(g *Grid) (*LinkPattern, error) {
	points := BoundaryPoints(g)

	byExit := make(map[exitKey]int, len(points))
	pending := redblacktree.NewWithIntComparator()
	for _, p := range points {
		byExit[exitKey{p.Row, p.Col, p.Side.Direction()}] = p.Label
		pending.Put(p.Label, p)
	}

	pairs := make([]Pair, 0, len(points)/2)
	for !pending.Empty() {
		origin := pending.Left().Value.(BoundaryPoint)
		end, err := g.trace(origin, byExit)
		if err != nil {
			return nil, err
		}
		if _, ok := pending.Get(end); !ok {
			return nil, errors.New(errors.ErrCodeInvariant,
				"strand from boundary point %d ends at point %d, which is already matched", origin.Label, end)
		}
		pending.Remove(origin.Label)
		pending.Remove(end)
		pairs = append(pairs, Pair{A: origin.Label, B: end})
	}

	return NewLinkPattern(len(points), pairs...)
}

type exitKey struct {
	row, col int
	dir      vertex.Direction
}

// trace walks the strand starting at p and returns the label where it leaves
// the grid.
func (g *Grid) trace(p BoundaryPoint, byExit map[exitKey]int) (int, error) {
	r, c := p.Row, p.Col
	entry := p.Side.Direction()
	limit := 2 * g.n * g.n

	for step := 0; step <= limit; step++ {
		active := g.Active(r, c)
		if active.Count() != 2 || !active.Has(entry) {
			return 0, errors.New(errors.ErrCodeInvariant,
				"strand from boundary point %d enters vertex (%d,%d) through %s, but its active edges are %s",
				p.Label, r, c, entry, active)
		}
		exit := active.Without(entry)

		dr, dc := exit.Delta()
		nr, nc := r+dr, c+dc
		if nr < 0 || nr >= g.n || nc < 0 || nc >= g.n {
			label, ok := byExit[exitKey{r, c, exit}]
			if !ok {
				return 0, errors.New(errors.ErrCodeInvariant,
					"strand from boundary point %d leaves vertex (%d,%d) through %s, which is not an occupied boundary position",
					p.Label, r, c, exit)
			}
			if label == p.Label {
				return 0, errors.New(errors.ErrCodeInvariant,
					"strand from boundary point %d returns to its own origin", p.Label)
			}
			return label, nil
		}
		r, c, entry = nr, nc, exit.Opposite()
	}
	return 0, errors.New(errors.ErrCodeInvariant,
		"strand from boundary point %d exceeds %d steps", p.Label, limit)
}
