package fpl

import "fmt"

// BoundaryPoint is a place where a loop strand leaves the grid.
type BoundaryPoint struct {
	// Label is the 1-based position in clockwise order from the top-left
	// corner.
	Label int
	Side  Side
	// Index is the column on the top and bottom sides and the row on the
	// left and right sides.
	Index int
	// Row and Col locate the vertex the strand leaves from.
	Row, Col int
}

func (p BoundaryPoint) String() string {
	return fmt.Sprintf("%d (%s %d)", p.Label, p.Side, p.Index)
}

// BoundaryPoints returns the occupied boundary positions of g in clockwise
// order: the top side left to right, the right side top to bottom, the bottom
// side right to left and the left side bottom to top. An ice grid of side D
// has exactly 2D of them.
func BoundaryPoints(g *Grid) []BoundaryPoint {
	n := g.n
	points := make([]BoundaryPoint, 0, 2*n)
	add := func(s Side, k int) {
		if !g.Occupied(s, k) {
			return
		}
		r, c := g.cell(s, k)
		points = append(points, BoundaryPoint{Label: len(points) + 1, Side: s, Index: k, Row: r, Col: c})
	}
	for k := 0; k < n; k++ {
		add(Top, k)
	}
	for k := 0; k < n; k++ {
		add(Right, k)
	}
	for k := n - 1; k >= 0; k-- {
		add(Bottom, k)
	}
	for k := n - 1; k >= 0; k-- {
		add(Left, k)
	}
	return points
}
