package asm

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/matzehuels/fpl/pkg/errors"
)

// Matrix is an immutable alternating sign matrix of order n.
type Matrix struct {
	n       int
	entries []int8 // row-major
}

// New validates rows and returns the matrix they describe.
// The input is copied; later changes to rows do not affect the result.
func New(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "matrix must have at least one row")
	}

	m := &Matrix{n: n, entries: make([]int8, n*n)}
	for i, row := range rows {
		if len(row) != n {
			return nil, errors.New(errors.ErrCodeInvalidMatrix, "matrix must be square: row %d has %d entries, want %d", i, len(row), n)
		}
		for j, v := range row {
			if v < -1 || v > 1 {
				return nil, errors.New(errors.ErrCodeInvalidMatrix, "entry (%d,%d) = %d is not in {-1, 0, 1}", i, j, v)
			}
			m.entries[i*n+j] = int8(v)
		}
	}

	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// MustNew is like [New] but panics on invalid input.
// Intended for literals in tests and examples.
func MustNew(rows [][]int) *Matrix {
	m, err := New(rows)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns the identity matrix of order n.
func Identity(n int) *Matrix {
	m := &Matrix{n: n, entries: make([]int8, n*n)}
	for i := 0; i < n; i++ {
		m.entries[i*n+i] = 1
	}
	return m
}

func (m *Matrix) validate() error {
	n := m.n
	for i := 0; i < n; i++ {
		if err := checkLine(n, func(k int) int8 { return m.entries[i*n+k] }); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMatrix, err, "row %d", i)
		}
	}
	for j := 0; j < n; j++ {
		if err := checkLine(n, func(k int) int8 { return m.entries[k*n+j] }); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidMatrix, err, "column %d", j)
		}
	}
	return nil
}

// checkLine verifies that all partial sums of a row or column are 0 or 1 and
// the total is 1, which is exactly the alternating-sign condition.
func checkLine(n int, at func(int) int8) error {
	sum := 0
	for k := 0; k < n; k++ {
		sum += int(at(k))
		if sum < 0 || sum > 1 {
			return fmt.Errorf("non-zero entries do not alternate in sign at position %d", k)
		}
	}
	if sum != 1 {
		return fmt.Errorf("sums to %d, want 1", sum)
	}
	return nil
}

// Size returns the order of the matrix.
func (m *Matrix) Size() int { return m.n }

// At returns the entry at row r, column c.
func (m *Matrix) At(r, c int) int { return int(m.entries[r*m.n+c]) }

// Rows returns a fresh copy of the entries as nested slices.
func (m *Matrix) Rows() [][]int {
	rows := make([][]int, m.n)
	for i := range rows {
		rows[i] = make([]int, m.n)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

// Equal reports whether two matrices have the same order and entries.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n {
		return false
	}
	for i, v := range m.entries {
		if o.entries[i] != v {
			return false
		}
	}
	return true
}

// ReverseRows returns the matrix with its rows in reverse order.
// Reflecting an ASM top-to-bottom yields another ASM.
func (m *Matrix) ReverseRows() *Matrix {
	out := &Matrix{n: m.n, entries: make([]int8, len(m.entries))}
	for i := 0; i < m.n; i++ {
		copy(out.entries[i*m.n:(i+1)*m.n], m.entries[(m.n-1-i)*m.n:(m.n-i)*m.n])
	}
	return out
}

// CountNegative returns the number of -1 entries.
func (m *Matrix) CountNegative() int {
	count := 0
	for _, v := range m.entries {
		if v < 0 {
			count++
		}
	}
	return count
}

// String prints one bracketed row per line with right-aligned entries:
//
//	[ 0  1  0]
//	[ 1 -1  1]
//	[ 0  1  0]
func (m *Matrix) String() string {
	width := 1
	if m.CountNegative() > 0 {
		width = 2
	}
	var b strings.Builder
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, strconv.Itoa(m.At(i, j)))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Literal renders the matrix in the bracketed form accepted by [Parse].
func (m *Matrix) Literal() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < m.n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(m.At(i, j)))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// MarshalJSON encodes the matrix as nested arrays.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}

// UnmarshalJSON decodes nested arrays and validates them like [New].
func (m *Matrix) UnmarshalJSON(data []byte) error {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidMatrix, err, "decode matrix")
	}
	parsed, err := New(rows)
	if err != nil {
		return err
	}
	*m = *parsed
	return nil
}
