package asm

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/matzehuels/fpl/pkg/errors"
)

// literal is the grammar root: either a bracketed list of bracketed rows or a
// semicolon-separated list of bare rows.
type literal struct {
	Nested []*bracketRow `  "[" @@ ( "," @@ )* "]"`
	Flat   []*bareRow    `| @@ ( ";" @@ )*`
}

type bracketRow struct {
	Entries []int `"[" @Int ( "," @Int )* "]"`
}

type bareRow struct {
	Entries []int `@Int ( ","? @Int )*`
}

var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[-+]?\d+`},
	{Name: "Punct", Pattern: `[\[\],;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var literalParser = participle.MustBuild[literal](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// Parse reads an alternating sign matrix from a literal such as
// "[[0,1,0],[1,-1,1],[0,1,0]]" or "0 1 0; 1 -1 1; 0 1 0".
// Bare rows may also be separated by newlines.
func Parse(s string) (*Matrix, error) {
	src := strings.TrimSpace(s)
	if src == "" {
		return nil, errors.New(errors.ErrCodeInvalidMatrix, "empty matrix literal")
	}
	if !strings.ContainsAny(src, "[;") {
		src = strings.Join(strings.Fields(strings.ReplaceAll(src, "\n", " ; ")), " ")
	}
	src = strings.TrimSuffix(strings.TrimSpace(src), ";")

	lit, err := literalParser.ParseString("", src)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidMatrix, err, "parse matrix literal")
	}
	return New(lit.rows())
}

// MustParse is like [Parse] but panics on invalid input.
func MustParse(s string) *Matrix {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (l *literal) rows() [][]int {
	var rows [][]int
	for _, r := range l.Nested {
		rows = append(rows, r.Entries)
	}
	for _, r := range l.Flat {
		rows = append(rows, r.Entries)
	}
	return rows
}
