// Package sixvertex models square six-vertex configurations with the ice
// boundary condition.
//
// Every vertex of a D×D grid carries one of the six [vertex.Code] values,
// naming the two incident edges whose arrows point out of the vertex. A
// [Configuration] is only constructed when it is internally consistent:
//
//   - each interior edge points out of exactly one of its two endpoints
//     (the ice rule), and
//   - along the boundary, horizontal arrows point into the grid and vertical
//     arrows point out of it (the domain-wall or "ice" boundary).
//
// Configurations of order D are in bijection with alternating sign matrices of
// order D; [FromMatrix] and [Configuration.ToMatrix] implement both directions.
package sixvertex
