package sixvertex

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fpl/pkg/asm"
	"github.com/matzehuels/fpl/pkg/errors"
	"github.com/matzehuels/fpl/pkg/vertex"
)

const (
	LR = vertex.LR
	LU = vertex.LU
	LD = vertex.LD
	UD = vertex.UD
	UR = vertex.UR
	RD = vertex.RD
)

func TestFromMatrix(t *testing.T) {
	tests := []struct {
		name string
		m    [][]int
		want [][]vertex.Code
	}{
		{
			name: "1x1",
			m:    [][]int{{1}},
			want: [][]vertex.Code{{UD}},
		},
		{
			name: "anti-identity",
			m:    [][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}},
			want: [][]vertex.Code{{UR, UR, UD}, {UR, UD, LD}, {UD, LD, LD}},
		},
		{
			name: "identity",
			m:    [][]int{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: [][]vertex.Code{{UD, LU, LU}, {RD, UD, LU}, {RD, RD, UD}},
		},
		{
			name: "with -1",
			m:    [][]int{{0, 1, 0}, {1, -1, 1}, {0, 1, 0}},
			want: [][]vertex.Code{{UR, UD, LU}, {UD, LR, UD}, {RD, UD, LD}},
		},
		{
			name: "4x4",
			m:    [][]int{{0, 1, 0, 0}, {0, 0, 1, 0}, {1, -1, 0, 1}, {0, 1, 0, 0}},
			want: [][]vertex.Code{{UR, UD, LU, LU}, {UR, RD, UD, LU}, {UD, LR, RD, UD}, {RD, UD, LD, LD}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromMatrix(asm.MustNew(tt.m))
			assert.Equal(t, tt.want, c.Codes())

			// The hand-written codes must pass validation on their own.
			direct, err := New(tt.want)
			require.NoError(t, err)
			assert.True(t, direct.Equal(c))

			assert.Equal(t, tt.m, c.ToMatrix().Rows())
		})
	}
}

func TestRoundTripAllMatrices(t *testing.T) {
	for n := 1; n <= 5; n++ {
		for _, m := range asm.All(n) {
			c := FromMatrix(m)
			_, err := New(c.Codes())
			require.NoError(t, err, "matrix\n%s", m)
			require.True(t, c.ToMatrix().Equal(m), "round trip of\n%s", m)
		}
	}
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name    string
		codes   [][]vertex.Code
		message string
	}{
		{"empty", nil, "at least one row"},
		{"not square", [][]vertex.Code{{UD, LU}, {RD}}, "square"},
		{"unknown code", [][]vertex.Code{{vertex.Code(9)}}, "unknown code"},
		{"ice rule horizontal", [][]vertex.Code{{UD, UR}, {RD, UD}}, "ice rule"},
		{"ice rule vertical", [][]vertex.Code{{UD, LU}, {UD, UD}}, "ice rule"},
		{"left boundary", [][]vertex.Code{{LU}}, "left side"},
		{"right boundary", [][]vertex.Code{{UR}}, "right side"},
		{"top boundary", [][]vertex.Code{{RD, UD}, {RD, RD}}, "top side"},
		{"bottom boundary", [][]vertex.Code{{UR, UD}, {UR, RD}}, "bottom side"},
		{"all arrows reversed", [][]vertex.Code{{LR, RD}, {LU, LR}}, "left side"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.codes)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBoundarySides(t *testing.T) {
	// Every 1x1 code other than UD breaks some boundary; UD is the only
	// configuration of order 1.
	for _, code := range vertex.Codes() {
		_, err := New([][]vertex.Code{{code}})
		if code == UD {
			assert.NoError(t, err)
		} else {
			assert.Error(t, err, "code %s", code)
		}
	}
}

func TestCodesIsCopy(t *testing.T) {
	c := FromMatrix(asm.Identity(2))
	codes := c.Codes()
	codes[0][0] = LR
	assert.Equal(t, UD, c.Code(0, 0))
}

func TestString(t *testing.T) {
	c := FromMatrix(asm.MustNew([][]int{{0, 0, 1}, {0, 1, 0}, {1, 0, 0}}))
	want := strings.Join([]string{
		"    ^    ^    ^",
		"    |    |    |",
		"--> # -> # -> # <--",
		"    ^    ^    |",
		"    |    |    V",
		"--> # -> # <- # <--",
		"    ^    |    |",
		"    |    V    V",
		"--> # <- # <- # <--",
		"    |    |    |",
		"    V    V    V",
	}, "\n")
	assert.Equal(t, want, c.String())
}

func TestJSON(t *testing.T) {
	c := FromMatrix(asm.MustNew([][]int{{0, 1, 0}, {1, -1, 1}, {0, 1, 0}}))
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `[["UR","UD","LU"],["UD","LR","UD"],["RD","UD","LD"]]`, string(data))

	var back Configuration
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, back.Equal(c))

	err = json.Unmarshal([]byte(`[["LU"]]`), &back)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))

	err = json.Unmarshal([]byte(`[["XX"]]`), &back)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidConfiguration))
}
