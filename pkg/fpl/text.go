package fpl

import (
	"strings"

	"github.com/matzehuels/fpl/pkg/vertex"
)

// tile is the text picture of one vertex: the fragment above it, the
// half-edges either side of the '#', and the fragment below it.
type tile struct {
	up, right, down, left string
}

const (
	vertical   = "  |  "
	blankEdge  = "     "
	rightStub  = " -"
	leftStub   = "- "
	blankStub  = "  "
	vertexMark = "#"
)

// tiles holds the text pictures per parity and code. The odd row draws the
// complementary pair of the even row.
var tiles = [2][vertex.NumCodes]tile{
	vertex.Even: {
		vertex.LR: {blankEdge, rightStub, blankEdge, leftStub},
		vertex.LU: {vertical, blankStub, blankEdge, leftStub},
		vertex.LD: {blankEdge, blankStub, vertical, leftStub},
		vertex.UD: {vertical, blankStub, vertical, blankStub},
		vertex.UR: {vertical, rightStub, blankEdge, blankStub},
		vertex.RD: {blankEdge, rightStub, vertical, blankStub},
	},
	vertex.Odd: {
		vertex.LR: {vertical, blankStub, vertical, blankStub},
		vertex.LU: {blankEdge, rightStub, vertical, blankStub},
		vertex.LD: {vertical, rightStub, blankEdge, blankStub},
		vertex.UD: {blankEdge, rightStub, blankEdge, leftStub},
		vertex.UR: {blankEdge, blankStub, vertical, leftStub},
		vertex.RD: {vertical, blankStub, blankEdge, leftStub},
	},
}

// RenderText draws the grid as ASCII art. Each vertex is a '#' joined to its
// neighbours by "--" and "|"; boundary strands stick out one step. Rows are
// joined by newlines without a trailing one, and lines keep their trailing
// spaces so every vertex column stays aligned. For the anti-diagonal matrix
// of order 3:
//
//	    |         |
//	    |         |
//	    # -- #    #
//	         |    |
//	         |    |
//	 -- #    #    # --
//	    |    |
//	    |    |
//	    #    # -- #
//	    |         |
//	    |         |
func RenderText(g *Grid) string {
	n := g.n
	var b strings.Builder

	b.WriteString("  ")
	for c := 0; c < n; c++ {
		b.WriteString(boundaryEdge(g.Occupied(Top, c)))
	}

	for r := 0; r < n; r++ {
		b.WriteString("\n  ")
		for c := 0; c < n; c++ {
			b.WriteString(g.tile(r, c).up)
		}

		b.WriteString("\n")
		if g.Occupied(Left, r) {
			b.WriteString(rightStub)
		} else {
			b.WriteString(blankStub)
		}
		for c := 0; c < n; c++ {
			t := g.tile(r, c)
			b.WriteString(t.left + vertexMark + t.right)
		}
		if g.Occupied(Right, r) {
			b.WriteString(leftStub)
		} else {
			b.WriteString(blankStub)
		}

		b.WriteString("\n  ")
		for c := 0; c < n; c++ {
			b.WriteString(g.tile(r, c).down)
		}
	}

	b.WriteString("\n  ")
	for c := 0; c < n; c++ {
		b.WriteString(boundaryEdge(g.Occupied(Bottom, c)))
	}
	return b.String()
}

func (g *Grid) tile(r, c int) tile {
	return tiles[g.Parity(r, c)][g.Code(r, c)]
}

func boundaryEdge(occupied bool) string {
	if occupied {
		return vertical
	}
	return blankEdge
}
