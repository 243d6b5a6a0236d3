package vertex

import (
	"math/bits"
	"strings"
)

// Direction is a set of compass directions around a vertex.
// Single directions are one-bit sets; a vertex's active edges form a two-bit set.
type Direction uint8

const (
	Left Direction = 1 << iota
	Right
	Up
	Down

	None Direction = 0
	All            = Left | Right | Up | Down
)

// Compass lists the four single directions in a fixed order.
var Compass = [4]Direction{Left, Right, Up, Down}

var directionNames = map[Direction]string{
	Left:  "Left",
	Right: "Right",
	Up:    "Up",
	Down:  "Down",
}

// Has reports whether every direction in o is also in d.
func (d Direction) Has(o Direction) bool { return d&o == o }

// Count returns the number of directions in the set.
func (d Direction) Count() int { return bits.OnesCount8(uint8(d & All)) }

// Complement returns the directions not in d.
func (d Direction) Complement() Direction { return All &^ d }

// Without returns d with the directions in o removed.
func (d Direction) Without(o Direction) Direction { return d &^ o }

// Opposite reflects every direction in the set through the vertex:
// Left and Right swap, Up and Down swap.
func (d Direction) Opposite() Direction {
	var out Direction
	if d&Left != 0 {
		out |= Right
	}
	if d&Right != 0 {
		out |= Left
	}
	if d&Up != 0 {
		out |= Down
	}
	if d&Down != 0 {
		out |= Up
	}
	return out
}

// Delta returns the (row, col) step taken when moving in a single direction.
// Rows grow downward. Sets with other than one direction return (0, 0).
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	}
	return 0, 0
}

// Split returns the single directions contained in d, in [Compass] order.
func (d Direction) Split() []Direction {
	out := make([]Direction, 0, 4)
	for _, c := range Compass {
		if d&c != 0 {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set as names joined with "|", or "None".
func (d Direction) String() string {
	if d&All == None {
		return "None"
	}
	parts := make([]string, 0, 4)
	for _, c := range d.Split() {
		parts = append(parts, directionNames[c])
	}
	return strings.Join(parts, "|")
}
