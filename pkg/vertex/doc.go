// Package vertex defines the local model of a fully packed loop vertex.
//
// # Overview
//
// A six-vertex configuration assigns each lattice vertex one of six
// ice-rule-admissible states. Each state is named by the two compass
// directions whose arrows point out of the vertex:
//
//	LR  LU  LD  UD  UR  RD
//
// The fully packed loop drawn from the same configuration does not use the
// arrows directly. On the even sublattice of the checkerboard the loop strand
// occupies the code's own pair of directions; on the odd sublattice it
// occupies the complementary pair. [Active] implements that rule and
// [Mirror] inverts it.
//
// # Types
//
//   - [Direction]: bitset over {Left, Right, Up, Down}
//   - [Code]: one of the six vertex states
//   - [Parity]: checkerboard color of a cell, Even or Odd
//
// Every code has exactly two directions and every (code, parity) pair yields
// exactly two active directions. The domain is closed, so nothing in this
// package returns an error except [ParseCode].
package vertex
