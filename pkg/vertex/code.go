package vertex

import (
	"fmt"
	"strings"

	"github.com/matzehuels/fpl/pkg/errors"
)

// Code is one of the six ice-rule-admissible vertex states. Its value is the
// index used by the six-vertex model (0 = LR ... 5 = RD).
type Code uint8

const (
	LR Code = iota // arrows out Left and Right
	LU             // arrows out Left and Up
	LD             // arrows out Left and Down
	UD             // arrows out Up and Down
	UR             // arrows out Up and Right
	RD             // arrows out Right and Down
)

// NumCodes is the size of the closed code set.
const NumCodes = 6

var codeDirections = [NumCodes]Direction{
	LR: Left | Right,
	LU: Left | Up,
	LD: Left | Down,
	UD: Up | Down,
	UR: Up | Right,
	RD: Right | Down,
}

var codeNames = [NumCodes]string{"LR", "LU", "LD", "UD", "UR", "RD"}

// Codes returns all six codes in index order.
func Codes() []Code {
	return []Code{LR, LU, LD, UD, UR, RD}
}

// Valid reports whether c is one of the six codes.
func (c Code) Valid() bool { return c < NumCodes }

// Directions returns the two directions whose arrows leave the vertex.
func (c Code) Directions() Direction {
	if !c.Valid() {
		return None
	}
	return codeDirections[c]
}

func (c Code) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
	return codeNames[c]
}

// MarshalText encodes the code by name.
func (c Code) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid vertex code %d", uint8(c))
	}
	return []byte(codeNames[c]), nil
}

// UnmarshalText decodes a code name as accepted by [ParseCode].
func (c *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCode parses a code name. Letters may come in either order and case
// ("ul" parses as LU); a bare index "0".."5" is accepted as well.
func ParseCode(s string) (Code, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) == 1 && s[0] >= '0' && s[0] < '0'+NumCodes {
		return Code(s[0] - '0'), nil
	}
	if len(s) != 2 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid vertex code %q", s)
	}
	var d Direction
	for _, r := range s {
		switch r {
		case 'L':
			d |= Left
		case 'R':
			d |= Right
		case 'U':
			d |= Up
		case 'D':
			d |= Down
		default:
			return 0, errors.New(errors.ErrCodeInvalidInput, "invalid vertex code %q", s)
		}
	}
	c, ok := CodeFor(d)
	if !ok {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid vertex code %q", s)
	}
	return c, nil
}

// CodeFor returns the code whose outgoing directions are exactly d.
func CodeFor(d Direction) (Code, bool) {
	for i, cd := range codeDirections {
		if cd == d {
			return Code(i), true
		}
	}
	return 0, false
}

// Complement returns the code with the complementary pair of directions
// (LR and UD, LU and RD, LD and UR). A cell drawn with c on one parity looks
// the same as a cell drawn with c.Complement() on the other.
func (c Code) Complement() Code {
	cc, _ := CodeFor(c.Directions().Complement())
	return cc
}
