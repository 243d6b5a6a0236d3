package asm

import (
	"testing"

	"github.com/matzehuels/fpl/pkg/errors"
)

func TestParse(t *testing.T) {
	want := MustNew([][]int{{0, 1, 0}, {1, -1, 1}, {0, 1, 0}})

	tests := []struct {
		name  string
		input string
	}{
		{"bracketed", "[[0,1,0],[1,-1,1],[0,1,0]]"},
		{"bracketed with spaces", " [ [0, 1, 0], [1, -1, 1], [0, 1, 0] ] "},
		{"semicolons", "0 1 0; 1 -1 1; 0 1 0"},
		{"semicolons with commas", "0,1,0;1,-1,1;0,1,0"},
		{"trailing semicolon", "0 1 0; 1 -1 1; 0 1 0;"},
		{"newlines", "0 1 0\n1 -1 1\n0 1 0\n"},
		{"explicit plus", "0 +1 0; +1 -1 +1; 0 +1 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.input, err)
			}
			if !got.Equal(want) {
				t.Errorf("Parse(%q) = \n%s\nwant\n%s", tt.input, got, want)
			}
		})
	}
}

func TestParseSingleEntry(t *testing.T) {
	for _, input := range []string{"1", "[[1]]"} {
		m, err := Parse(input)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", input, err)
		}
		if m.Size() != 1 || m.At(0, 0) != 1 {
			t.Errorf("Parse(%q) = %s", input, m)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"letters", "a b; c d"},
		{"unclosed", "[[0,1],[1,0]"},
		{"mixed forms", "[[0,1]]; 1 0"},
		{"not square", "[[0,1],[1]]"},
		{"not alternating", "1 1; 0 0"},
		{"out of range", "[[2]]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) should fail", tt.input)
			}
			if !errors.Is(err, errors.ErrCodeInvalidMatrix) {
				t.Errorf("Parse(%q) code = %v, want %v", tt.input, errors.GetCode(err), errors.ErrCodeInvalidMatrix)
			}
		})
	}
}
