package geom

import (
	"slices"
	"testing"
)

func TestSegmentNormalize(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want Segment
	}{
		{"already ordered", Seg(0, 0, 1, 0), Seg(0, 0, 1, 0)},
		{"reversed horizontal", Seg(1, 0, 0, 0), Seg(0, 0, 1, 0)},
		{"reversed vertical", Seg(2, 3, 2, 2), Seg(2, 2, 2, 3)},
		{"negative coordinates", Seg(0, 0, -1, 0), Seg(-1, 0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seg.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSegmentLength(t *testing.T) {
	if got := Seg(0, 0, 0, -1).Length(); got != 1 {
		t.Errorf("Length() = %d, want 1", got)
	}
	if got := Seg(1, 1, 3, 2).Length(); got != 3 {
		t.Errorf("Length() = %d, want 3", got)
	}
}

func TestSegmentString(t *testing.T) {
	want := "Line defined by 2 points: [(-1, 1), (0, 1)]"
	if got := Seg(-1, 1, 0, 1).String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCompare(t *testing.T) {
	segs := []Segment{Seg(1, 0, 1, 1), Seg(0, 1, 0, 2), Seg(0, 1, 0, 0), Seg(-1, 2, 0, 2)}
	slices.SortFunc(segs, Compare)
	want := []Segment{Seg(-1, 2, 0, 2), Seg(0, 1, 0, 0), Seg(0, 1, 0, 2), Seg(1, 0, 1, 1)}
	if !slices.Equal(segs, want) {
		t.Errorf("sorted = %v, want %v", segs, want)
	}
}

func TestCanvas(t *testing.T) {
	var c Canvas
	if c.Len() != 0 || c.Bounds() != (Rect{}) || c.Description() != "" {
		t.Fatal("zero canvas should be empty")
	}

	c.Add(Seg(0, 0, 1, 0), Seg(2, 0, 2, 3))
	c.Add(Seg(-1, 1, 0, 1))
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}

	want := Rect{MinX: -1, MinY: 0, MaxX: 2, MaxY: 3}
	if got := c.Bounds(); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if got := c.Bounds(); got.Width() != 3 || got.Height() != 3 {
		t.Errorf("Bounds() size = %dx%d, want 3x3", got.Width(), got.Height())
	}

	segs := c.Segments()
	segs[0] = Seg(9, 9, 9, 9)
	if c.Segments()[0] != Seg(0, 0, 1, 0) {
		t.Error("Segments() should return a copy")
	}

	wantDesc := "Line defined by 2 points: [(-1, 1), (0, 1)]\n" +
		"Line defined by 2 points: [(0, 0), (1, 0)]\n" +
		"Line defined by 2 points: [(2, 0), (2, 3)]"
	if got := c.Description(); got != wantDesc {
		t.Errorf("Description() =\n%s\nwant\n%s", got, wantDesc)
	}
}
