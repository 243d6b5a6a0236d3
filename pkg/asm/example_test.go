package asm_test

import (
	"fmt"

	"github.com/matzehuels/fpl/pkg/asm"
)

func ExampleParse() {
	m, err := asm.Parse("0 1 0; 1 -1 1; 0 1 0")
	if err != nil {
		panic(err)
	}
	fmt.Println(m)
	// Output:
	// [ 0  1  0]
	// [ 1 -1  1]
	// [ 0  1  0]
}

func ExampleAll() {
	for _, m := range asm.All(2) {
		fmt.Println(m.Literal())
	}
	// Output:
	// [[0,1],[1,0]]
	// [[1,0],[0,1]]
}
