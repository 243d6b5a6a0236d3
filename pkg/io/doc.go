// Package io reads and writes the inputs of a fully packed loop: alternating
// sign matrices and six-vertex configurations.
//
// # Overview
//
// Inputs come in two shapes:
//
//   - a text literal accepted by [asm.Parse], such as
//     "0 1 0; 1 -1 1; 0 1 0" or "[[0,1,0],[1,-1,1],[0,1,0]]"
//   - a JSON document holding either a matrix or a configuration
//
// [Load] accepts either a path to a file in one of those shapes or an inline
// literal, which is what the command line passes through.
//
// # JSON Format
//
// A document has exactly one of "matrix" or "configuration":
//
//	{
//	  "matrix": [[0, 1, 0], [1, -1, 1], [0, 1, 0]],
//	  "orientation": "even"
//	}
//
//	{
//	  "configuration": [["UR", "UD", "LU"], ["UD", "LR", "UD"], ["RD", "UD", "LD"]]
//	}
//
// Vertex codes name the two directions whose arrows point out of the vertex
// (L, R, U, D in any order). The optional "orientation" field is "even"
// (default) or "odd" and selects which checkerboard color the top-left vertex
// gets.
//
// Validation happens while decoding: a document that decodes is always a
// valid generator for [fpl.New].
//
// [asm.Parse]: github.com/matzehuels/fpl/pkg/asm#Parse
// [fpl.New]: github.com/matzehuels/fpl/pkg/fpl#New
package io
