package matrix_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/apsp/matrix"
)

// ExampleSum shows saturation at both ends of int64.
func ExampleSum() {
	fmt.Println(matrix.Sum(3, 4))
	fmt.Println(matrix.Sum(math.MaxInt64, 5) == math.MaxInt64)
	fmt.Println(matrix.Sum(math.MinInt64, -5) == math.MinInt64)
	// Output:
	// 7
	// true
	// true
}

// ExampleCopyOf builds a distance matrix and copies it before mutation.
func ExampleCopyOf() {
	d0, _ := matrix.FromRows([][]int64{
		{0, 1},
		{matrix.NoEdge, 0},
	})
	d, _ := matrix.CopyOf(d0)
	_ = d.Set(1, 0, 7)

	fmt.Print(d0)
	fmt.Print(d)
	// Output:
	// [0, 1]
	// [inf, 0]
	// [0, 1]
	// [7, 0]
}
