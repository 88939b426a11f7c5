package search_test

import (
	"fmt"

	"github.com/katalvlaran/gridseek/grid"
	"github.com/katalvlaran/gridseek/search"
)

// ExampleSearch locates a value and accumulates cost across two calls.
//
// Grid:
//
//	 0  2
//	 1  3
func ExampleSearch() {
	g, _ := grid.NewGrid([][]float64{{0, 2}, {1, 3}})
	var counter search.Counter

	res := search.Search(g, 3, search.WithCounter(&counter))
	fmt.Println(res.Found, res.Coord, res.Scanned)

	res = search.Search(g, 12, search.WithCounter(&counter))
	fmt.Println(res.Found, counter.Total())
	// Output:
	// true (1,1) 2
	// false 2
}
