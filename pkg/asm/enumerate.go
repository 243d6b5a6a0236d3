package asm

// All returns every alternating sign matrix of order n, in lexicographic
// order of the row-major entries (with -1 < 0 < 1). It returns nil for n < 1.
//
// Rows are built top to bottom while tracking the partial column sums: a +1
// may only go where the column sum is 0 and the row sum so far is 0, a -1 only
// where both are 1. After n rows every column sum is forced to 1.
func All(n int) []*Matrix {
	if n < 1 {
		return nil
	}
	e := enumerator{
		n:       n,
		colSums: make([]int8, n),
		entries: make([]int8, n*n),
	}
	e.fill(0, 0, 0)
	return e.out
}

type enumerator struct {
	n       int
	colSums []int8
	entries []int8
	out     []*Matrix
}

func (e *enumerator) fill(row, col int, rowSum int8) {
	if col == e.n {
		if rowSum != 1 {
			return
		}
		if row == e.n-1 {
			m := &Matrix{n: e.n, entries: make([]int8, len(e.entries))}
			copy(m.entries, e.entries)
			e.out = append(e.out, m)
			return
		}
		e.fill(row+1, 0, 0)
		return
	}

	idx := row*e.n + col
	cs := e.colSums[col]

	if rowSum == 1 && cs == 1 {
		e.place(idx, col, -1)
		e.fill(row, col+1, 0)
		e.unplace(idx, col, -1)
	}

	e.entries[idx] = 0
	e.fill(row, col+1, rowSum)

	if rowSum == 0 && cs == 0 {
		e.place(idx, col, 1)
		e.fill(row, col+1, 1)
		e.unplace(idx, col, 1)
	}
}

func (e *enumerator) place(idx, col int, v int8) {
	e.entries[idx] = v
	e.colSums[col] += v
}

func (e *enumerator) unplace(idx, col int, v int8) {
	e.entries[idx] = 0
	e.colSums[col] -= v
}
