package grb_test

import (
	"fmt"

	"github.com/katalvlaran/lvlath-grb/grb"
)

// ExampleVxM runs one masked, accumulated step over the (+, ×) semiring.
func ExampleVxM() {
	a, _ := grb.BuildMatrix(3, 3,
		[]int{0, 0, 1, 2},
		[]int{1, 2, 2, 0},
		[]float64{2, 3, 4, 5}, nil)
	u, _ := grb.BuildSparseVector(3, []int{0, 1}, []float64{1, 10}, nil)
	w, _ := grb.BuildSparseVector(3, []int{0, 2}, []float64{7, 100}, nil)
	m, _ := grb.BuildDenseVector(3, []int{1, 2}, []bool{true, true}, nil)

	// w<m, +> := u +.* A, MERGE keeps w[0] (outside the mask).
	_ = grb.VxMSparse(w, grb.StructureMask(m), grb.Accum(grb.Plus[float64]), grb.PlusTimes[float64](), u, a, grb.Merge)
	fmt.Println(w)
	// Output:
	// [0:7 1:2 2:143]/3
}

// ExampleMxV computes A·u with a transposed operand for comparison.
func ExampleMxV() {
	a, _ := grb.BuildMatrix(2, 3, []int{0, 1, 1}, []int{0, 1, 2}, []int{1, 2, 3}, nil)
	u, _ := grb.NewDenseVectorFromSlice([]int{1, 1, 1})
	w, _ := grb.NewDenseVector[int](2)
	_ = grb.MxVDense(w, grb.NoMask(), grb.NoAccumulate[int](), grb.PlusTimes[int](), a, u, grb.Replace)
	fmt.Println(w)

	v, _ := grb.NewDenseVectorFromSlice([]int{1, 1})
	z, _ := grb.NewDenseVector[int](3)
	_ = grb.VxMDense(z, grb.NoMask(), grb.NoAccumulate[int](), grb.PlusTimes[int](), v, a, grb.Replace)
	fmt.Println(z)
	// Output:
	// [0:1 1:5]/2
	// [0:1 1:2 2:3]/3
}

// ExampleMatrix_AdjacencyList walks the stored entries row by row.
func ExampleMatrix_AdjacencyList() {
	a, _ := grb.BuildMatrix(4, 4, []int{1, 2, 2}, []int{2, 0, 3}, []int{5, 1, 2}, nil)
	for idx, v := range a.AdjacencyList().All() {
		fmt.Printf("(%d,%d)=%d\n", idx.Row, idx.Col, *v)
	}
	// Output:
	// (1,2)=5
	// (2,0)=1
	// (2,3)=2
}
