// Package geom provides the integer lattice primitives used by the vector
// renderer: points, line segments, and a canvas that collects segments.
package geom

import (
	"fmt"
	"slices"
	"strings"
)

// Point is a lattice point. Y grows upward.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d, %d)", p.X, p.Y) }

// Segment is a straight line between two lattice points. The endpoint order
// is kept as produced; use [Segment.Normalize] to compare undirected lines.
type Segment struct {
	From, To Point
}

// Seg is shorthand for a segment from (x1, y1) to (x2, y2).
func Seg(x1, y1, x2, y2 int) Segment {
	return Segment{From: Point{x1, y1}, To: Point{x2, y2}}
}

// Normalize returns the segment with its endpoints in ascending order.
func (s Segment) Normalize() Segment {
	if comparePoints(s.To, s.From) < 0 {
		return Segment{From: s.To, To: s.From}
	}
	return s
}

// Length returns the Manhattan length of the segment.
func (s Segment) Length() int { return abs(s.To.X-s.From.X) + abs(s.To.Y-s.From.Y) }

func (s Segment) String() string {
	return fmt.Sprintf("Line defined by 2 points: [%s, %s]", s.From, s.To)
}

// Compare orders segments by their first endpoint, then their second.
func Compare(a, b Segment) int {
	if c := comparePoints(a.From, b.From); c != 0 {
		return c
	}
	return comparePoints(a.To, b.To)
}

func comparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Width returns the horizontal span of the box.
func (r Rect) Width() int { return r.MaxX - r.MinX }

// Height returns the vertical span of the box.
func (r Rect) Height() int { return r.MaxY - r.MinY }

// Canvas collects segments in insertion order. The zero value is ready to use.
// A Canvas is not safe for concurrent mutation.
type Canvas struct {
	segments []Segment
}

// Add appends segments to the canvas.
func (c *Canvas) Add(segs ...Segment) { c.segments = append(c.segments, segs...) }

// Segments returns a copy of the collected segments.
func (c *Canvas) Segments() []Segment { return slices.Clone(c.segments) }

// Len returns the number of segments, duplicates included.
func (c *Canvas) Len() int { return len(c.segments) }

// Bounds returns the smallest box containing every endpoint. It returns the
// zero Rect for an empty canvas.
func (c *Canvas) Bounds() Rect {
	if len(c.segments) == 0 {
		return Rect{}
	}
	r := Rect{MinX: c.segments[0].From.X, MinY: c.segments[0].From.Y, MaxX: c.segments[0].From.X, MaxY: c.segments[0].From.Y}
	for _, s := range c.segments {
		for _, p := range [2]Point{s.From, s.To} {
			r.MinX, r.MaxX = min(r.MinX, p.X), max(r.MaxX, p.X)
			r.MinY, r.MaxY = min(r.MinY, p.Y), max(r.MaxY, p.Y)
		}
	}
	return r
}

// Description lists one line per segment, sorted, in the form
// "Line defined by 2 points: [(0, 0), (1, 0)]".
func (c *Canvas) Description() string {
	lines := make([]string, len(c.segments))
	for i, s := range c.segments {
		lines[i] = s.String()
	}
	slices.Sort(lines)
	return strings.Join(lines, "\n")
}
