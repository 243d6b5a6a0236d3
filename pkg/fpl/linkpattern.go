package fpl

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/fpl/pkg/errors"
)

// Pair is an unordered pair of boundary labels, stored with A < B.
type Pair struct {
	A, B int
}

func (p Pair) String() string { return fmt.Sprintf("(%d, %d)", p.A, p.B) }

// LinkPattern is a perfect matching on the boundary labels 1..N of a fully
// packed loop.
type LinkPattern struct {
	partner []int // partner[label], index 0 unused
	pairs   []Pair
}

// NewLinkPattern builds a matching on labels 1..points from pairs. Every
// label must appear in exactly one pair; otherwise it fails with
// [errors.ErrCodeInvalidInput].
func NewLinkPattern(points int, pairs ...Pair) (*LinkPattern, error) {
	if points < 0 || points%2 != 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "a link pattern needs an even number of points, got %d", points)
	}
	if len(pairs)*2 != points {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%d pairs cannot match %d points", len(pairs), points)
	}

	lp := &LinkPattern{partner: make([]int, points+1), pairs: make([]Pair, 0, len(pairs))}
	for _, p := range pairs {
		a, b := min(p.A, p.B), max(p.A, p.B)
		if a < 1 || b > points || a == b {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pair %s is not a pair of distinct labels in 1..%d", p, points)
		}
		if lp.partner[a] != 0 || lp.partner[b] != 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "pair %s reuses a matched label", p)
		}
		lp.partner[a], lp.partner[b] = b, a
		lp.pairs = append(lp.pairs, Pair{A: a, B: b})
	}
	slices.SortFunc(lp.pairs, func(x, y Pair) int { return x.A - y.A })
	return lp, nil
}

// Pairs returns the pairs sorted by their smaller label.
func (lp *LinkPattern) Pairs() []Pair { return slices.Clone(lp.pairs) }

// Len returns the number of pairs.
func (lp *LinkPattern) Len() int { return len(lp.pairs) }

// Points returns the number of matched labels.
func (lp *LinkPattern) Points() int { return len(lp.partner) - 1 }

// Partner returns the label matched with label.
func (lp *LinkPattern) Partner(label int) (int, bool) {
	if label < 1 || label >= len(lp.partner) {
		return 0, false
	}
	return lp.partner[label], true
}

// Validate checks that the pattern is a perfect matching.
func (lp *LinkPattern) Validate() error {
	for label := 1; label < len(lp.partner); label++ {
		other := lp.partner[label]
		if other < 1 || other >= len(lp.partner) || other == label || lp.partner[other] != label {
			return errors.New(errors.ErrCodeInvariant, "label %d is not perfectly matched", label)
		}
	}
	return nil
}

// IsNonCrossing reports whether no two pairs interleave, that is, the chords
// can be drawn inside a disc without intersecting.
func (lp *LinkPattern) IsNonCrossing() bool {
	var open []int
	for label := 1; label < len(lp.partner); label++ {
		other := lp.partner[label]
		if other > label {
			open = append(open, label)
			continue
		}
		if len(open) == 0 || open[len(open)-1] != other {
			return false
		}
		open = open[:len(open)-1]
	}
	return len(open) == 0
}

// Equal reports whether two patterns match the same labels.
func (lp *LinkPattern) Equal(o *LinkPattern) bool {
	if lp == nil || o == nil {
		return lp == o
	}
	return slices.Equal(lp.partner, o.partner)
}

// String formats the pattern as "[(1, 2), (3, 6), (4, 5)]".
func (lp *LinkPattern) String() string {
	parts := make([]string, len(lp.pairs))
	for i, p := range lp.pairs {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// MarshalJSON encodes the pattern as a list of two-element arrays.
func (lp *LinkPattern) MarshalJSON() ([]byte, error) {
	out := make([][2]int, len(lp.pairs))
	for i, p := range lp.pairs {
		out[i] = [2]int{p.A, p.B}
	}
	return json.Marshal(out)
}
