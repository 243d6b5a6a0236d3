package fpl

import (
	"github.com/matzehuels/fpl/pkg/geom"
	"github.com/matzehuels/fpl/pkg/vertex"
)

// stroke is one edge a vertex draws: the neighbour it reaches (Up or Right)
// and whether the segment starts at the neighbour instead of the vertex.
type stroke struct {
	dir     vertex.Direction
	inbound bool
}

// strokes lists, per parity and code, the active Up and Right edges each
// vertex draws. Left and Down edges are drawn by the neighbour on that side
// or by a boundary stub.
var strokes = [2][vertex.NumCodes][]stroke{
	vertex.Even: {
		vertex.LR: {{vertex.Right, false}},
		vertex.LU: {{vertex.Up, false}},
		vertex.LD: nil,
		vertex.UD: {{vertex.Up, false}},
		vertex.UR: {{vertex.Up, false}, {vertex.Right, false}},
		vertex.RD: {{vertex.Right, false}},
	},
	vertex.Odd: {
		vertex.LR: {{vertex.Up, false}},
		vertex.LU: {{vertex.Right, true}},
		vertex.LD: {{vertex.Up, true}, {vertex.Right, true}},
		vertex.UD: {{vertex.Right, true}},
		vertex.UR: nil,
		vertex.RD: {{vertex.Up, true}},
	},
}

// RenderSegments draws the grid as unit line segments on the integer lattice.
// Vertex (r, c) sits at (c, D-1-r). Boundary strands become unit stubs
// leaving the square. Rows are emitted bottom to top and left to right within
// a row; stubs on the top and right sides may repeat a segment drawn by the
// adjacent vertex.
func RenderSegments(g *Grid) []geom.Segment {
	var canvas geom.Canvas
	Draw(&canvas, g)
	return canvas.Segments()
}

// Draw adds the segments of [RenderSegments] to canvas.
func Draw(canvas *geom.Canvas, g *Grid) {
	n := g.n
	for r := n - 1; r >= 0; r-- {
		y := n - 1 - r
		for x := 0; x < n; x++ {
			at := geom.Point{X: x, Y: y}
			if x == 0 && g.Occupied(Left, r) {
				canvas.Add(geom.Seg(x-1, y, x, y))
			}
			if x == n-1 && g.Occupied(Right, r) {
				canvas.Add(geom.Seg(x+1, y, x, y))
			}
			if r == n-1 && g.Occupied(Bottom, x) {
				canvas.Add(geom.Seg(x, y, x, y-1))
			}
			if r == 0 && g.Occupied(Top, x) {
				canvas.Add(geom.Seg(x, y, x, y+1))
			}

			for _, s := range strokes[g.Parity(r, x)][g.Code(r, x)] {
				to := geom.Point{X: x + 1, Y: y}
				if s.dir == vertex.Up {
					to = geom.Point{X: x, Y: y + 1}
				}
				if s.inbound {
					canvas.Add(geom.Segment{From: to, To: at})
				} else {
					canvas.Add(geom.Segment{From: at, To: to})
				}
			}
		}
	}
}
