package fpl

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/fpl/pkg/errors"
)

func TestNewLinkPattern(t *testing.T) {
	lp, err := NewLinkPattern(6, Pair{6, 3}, Pair{1, 2}, Pair{4, 5})
	require.NoError(t, err)

	assert.Equal(t, []Pair{{1, 2}, {3, 6}, {4, 5}}, lp.Pairs())
	assert.Equal(t, 3, lp.Len())
	assert.Equal(t, 6, lp.Points())
	assert.Equal(t, "[(1, 2), (3, 6), (4, 5)]", lp.String())
	assert.NoError(t, lp.Validate())
	assert.True(t, lp.IsNonCrossing())

	p, ok := lp.Partner(6)
	assert.True(t, ok)
	assert.Equal(t, 3, p)
	_, ok = lp.Partner(7)
	assert.False(t, ok)
	_, ok = lp.Partner(0)
	assert.False(t, ok)

	empty, err := NewLinkPattern(0)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty.String())
	assert.True(t, empty.IsNonCrossing())
}

func TestNewLinkPatternErrors(t *testing.T) {
	tests := []struct {
		name   string
		points int
		pairs  []Pair
	}{
		{"odd points", 3, []Pair{{1, 2}}},
		{"negative points", -2, nil},
		{"too few pairs", 4, []Pair{{1, 2}}},
		{"label out of range", 2, []Pair{{1, 3}}},
		{"zero label", 2, []Pair{{0, 1}}},
		{"self pair", 2, []Pair{{1, 1}}},
		{"reused label", 4, []Pair{{1, 2}, {2, 3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinkPattern(tt.points, tt.pairs...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
		})
	}
}

func TestIsNonCrossing(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
		want  bool
	}{
		{"nested", []Pair{{1, 4}, {2, 3}}, true},
		{"adjacent", []Pair{{1, 2}, {3, 4}}, true},
		{"crossing", []Pair{{1, 3}, {2, 4}}, false},
		{"crossing inside nest", []Pair{{1, 6}, {2, 4}, {3, 5}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lp, err := NewLinkPattern(2*len(tt.pairs), tt.pairs...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lp.IsNonCrossing())
		})
	}
}

func TestLinkPatternEqual(t *testing.T) {
	a, _ := NewLinkPattern(4, Pair{1, 2}, Pair{3, 4})
	b, _ := NewLinkPattern(4, Pair{4, 3}, Pair{2, 1})
	c, _ := NewLinkPattern(4, Pair{1, 4}, Pair{2, 3})

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestLinkPatternValidateBroken(t *testing.T) {
	lp := &LinkPattern{partner: []int{0, 2, 2}}
	assert.True(t, errors.Is(lp.Validate(), errors.ErrCodeInvariant))
}

func TestLinkPatternJSON(t *testing.T) {
	lp, _ := NewLinkPattern(6, Pair{1, 2}, Pair{3, 6}, Pair{4, 5})
	data, err := json.Marshal(lp)
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[3,6],[4,5]]`, string(data))
}
