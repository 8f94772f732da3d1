package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-grb/grb"
)

// SSSPOptions configures SSSP.
type SSSPOptions struct {
	// Ctx allows cancellation between rounds; if nil, context.Background() is used.
	Ctx context.Context

	// Kernel is forwarded to every grb call.
	Kernel []grb.Option
}

// SSSP computes single-source shortest path distances with Bellman–Ford
// relaxation over the (min, +) semiring:
//
//	d<accum=min> := d min.+ A
//
// repeated until d stops changing. The returned dense vector stores the
// distance of every reachable vertex; unreachable vertices are not stored.
// Negative edge weights are allowed; a negative cycle reachable from source
// yields ErrNegativeCycle.
//
// Time complexity: O(n · (n + E)) in the worst case, O(depth · (n + E)) typically.
// Memory usage:    O(n).
func SSSP[T grb.Number](a *grb.Matrix[T], source int, opts *SSSPOptions) (*grb.DenseVector[T], error) {
	if a == nil {
		return nil, grb.ErrNilMatrix
	}
	n := a.Rows()
	if n != a.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, n, a.Cols())
	}
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}
	ctx := context.Background()
	var kernel []grb.Option
	if opts != nil {
		if opts.Ctx != nil {
			ctx = opts.Ctx
		}
		kernel = opts.Kernel
	}

	dist, err := grb.NewDenseVector[T](n)
	if err != nil {
		return nil, err
	}
	_ = dist.SetElement(source, 0)

	// A shortest path has at most n-1 edges, so round n must be quiet.
	for round := 1; round <= n; round++ {
		if err = ctx.Err(); err != nil {
			return dist, err
		}
		prev := dist.Clone()
		err = grb.VxMDense(dist, grb.NoMask(), grb.Accum(grb.Min[T]), grb.MinPlus[T](), dist, a, grb.Merge, kernel...)
		if err != nil {
			return dist, fmt.Errorf("SSSP: %w", err)
		}
		if sameEntries(prev, dist) {
			return dist, nil
		}
	}

	return dist, ErrNegativeCycle
}

// sameEntries reports whether a and b store the same (index, value) pairs.
func sameEntries[T grb.Scalar](a, b *grb.DenseVector[T]) bool {
	if a.NVals() != b.NVals() {
		return false
	}
	for i, x := range a.All() {
		if y, ok := b.ExtractElement(i); !ok || x != y {
			return false
		}
	}
	return true
}
