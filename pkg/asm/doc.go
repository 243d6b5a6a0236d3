// Package asm implements alternating sign matrices.
//
// # Overview
//
// An alternating sign matrix (ASM) is a square matrix with entries in
// {-1, 0, 1} where every row and column sums to 1 and the non-zero entries of
// each row and column alternate in sign, starting and ending with +1.
// Equivalently, every partial row sum and every partial column sum is 0 or 1
// and each full sum is 1. Permutation matrices are the ASMs without -1.
//
// # Construction
//
// [New] validates a [][]int and returns an immutable [Matrix]:
//
//	m, err := asm.New([][]int{{0, 1, 0}, {1, -1, 1}, {0, 1, 0}})
//
// [Parse] accepts the same matrix as a literal in either of two forms:
//
//	[[0,1,0],[1,-1,1],[0,1,0]]
//	0 1 0; 1 -1 1; 0 1 0
//
// Rows of the second form may also be separated by newlines.
//
// # Enumeration
//
// [All] lists every ASM of a given order in lexicographic order of the
// flattened entries. The counts grow quickly: 1, 2, 7, 42, 429, 7436, 218348.
package asm
