package vertex

// Parity is the checkerboard color of a grid cell.
type Parity uint8

const (
	Even Parity = 0
	Odd  Parity = 1
)

// ParityOf returns the raw checkerboard parity (row+col) mod 2.
// Callers that need a global orientation convention add their own offset.
func ParityOf(row, col int) Parity {
	return Parity((row + col) & 1)
}

// Flip returns the other parity.
func (p Parity) Flip() Parity { return p ^ 1 }

func (p Parity) String() string {
	if p&1 == Even {
		return "even"
	}
	return "odd"
}

// activeTable holds the loop-strand directions per parity. The odd row is the
// complement of the even row: the arrow orientation alternates across the
// checkerboard, so a vertex reading "out Left and Up" on the even sublattice
// carries its strand Right and Down on the odd one.
var activeTable = [2][NumCodes]Direction{
	Even: {
		LR: Left | Right,
		LU: Left | Up,
		LD: Left | Down,
		UD: Up | Down,
		UR: Up | Right,
		RD: Right | Down,
	},
	Odd: {
		LR: Up | Down,
		LU: Right | Down,
		LD: Up | Right,
		UD: Left | Right,
		UR: Left | Down,
		RD: Left | Up,
	},
}

// Active returns the directions carrying a loop strand at a vertex with code c
// on a cell of parity p. The result always has exactly two directions for a
// valid code.
func Active(c Code, p Parity) Direction {
	if !c.Valid() {
		return None
	}
	return activeTable[p&1][c]
}

// Mirror returns the code that draws the given active pair on a cell of
// parity p. It is the inverse of [Active]; ok is false when active is not one
// of the six pairs.
func Mirror(active Direction, p Parity) (c Code, ok bool) {
	for i, d := range activeTable[p&1] {
		if d == active {
			return Code(i), true
		}
	}
	return 0, false
}
