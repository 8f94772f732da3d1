// Package algorithms implements graph algorithms as sequences of grb
// products over an adjacency matrix.
//
// # BFS: Breadth-First Search
//
// Breadth-First Search explores the graph level by level, starting from a
// given vertex. Each level is one masked product:
//
//	frontier<¬visited, struct, replace> := frontier ⊕.⊗ A
//
// Steps:
//  1. Initialize:
//     - frontier = {source}, visited = {}.
//  2. Loop until the frontier is empty:
//     2.1 Record every frontier vertex (ascending index) at the current
//     depth and add it to visited.
//     - Invoke OnLevel; if it returns an error, abort.
//     2.2 Advance the frontier with one VxM; the structural complement of
//     visited keeps already reached vertices out.
//  3. Check context cancellation before each level.
//
// BFSLevels runs over the boolean (||, &&) semiring. BFSParents carries
// vertex ids through the (min, first) semiring, so each newly reached
// vertex learns the smallest-id frontier vertex with an edge to it.
//
// Time complexity: O(depth · n + E) with sparse frontiers.
// Memory usage:    O(n + E) for the structural copy of A.
package algorithms

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvlath-grb/grb"
)

// BFSOptions configures traversal behavior.
type BFSOptions struct {
	// Ctx allows cancellation; if nil, context.Background() is used.
	Ctx context.Context

	// OnLevel(depth, vertices) is called once per level with the vertices
	// first reached at that depth, in ascending order.
	// If it returns an error, traversal aborts (the level is already recorded).
	OnLevel func(depth int, vertices []int) error

	// Kernel is forwarded to every grb call (logger, worker bounds).
	Kernel []grb.Option
}

// BFSResult holds the outcome of a BFS traversal.
type BFSResult struct {
	// Order is the sequence of reached vertices, level by level.
	Order []int
	// Depth[v] is the number of edges from the source, or -1 if unreached.
	Depth []int
	// Parent[v] is v's predecessor in the BFS tree; -1 for the source and for
	// unreached vertices. Only BFSParents fills it.
	Parent []int
}

// Reached reports whether v was visited.
func (r *BFSResult) Reached(v int) bool {
	return v >= 0 && v < len(r.Depth) && r.Depth[v] >= 0
}

// BFSLevels computes BFS depths from source over the structure of a.
// Edge values are ignored; an explicit zero still counts as an edge.
func BFSLevels[T grb.Scalar](a *grb.Matrix[T], source int, opts *BFSOptions) (*BFSResult, error) {
	w, err := newWalker(a, source, opts, false)
	if err != nil {
		return nil, err
	}
	pattern, err := structure(a, true)
	if err != nil {
		return nil, err
	}
	frontier, err := grb.NewSparseVector[bool](a.Rows())
	if err != nil {
		return nil, err
	}
	_ = frontier.SetElement(source, true)

	for depth := 0; frontier.NVals() > 0; depth++ {
		idx, _ := frontier.ExtractTuples()
		if err = w.level(depth, idx, nil); err != nil {
			return w.res, err
		}
		err = grb.VxM[bool](frontier, grb.StructuralComplementMask(w.visited), grb.NoAccumulate[bool](),
			grb.LogicalSemiring(), frontier, pattern, grb.Replace, w.kernel...)
		if err != nil {
			return w.res, fmt.Errorf("BFSLevels: %w", err)
		}
	}

	return w.res, nil
}

// BFSParents computes BFS depths and a BFS tree from source. Among several
// candidate parents on the previous level the smallest id wins.
func BFSParents[T grb.Scalar](a *grb.Matrix[T], source int, opts *BFSOptions) (*BFSResult, error) {
	w, err := newWalker(a, source, opts, true)
	if err != nil {
		return nil, err
	}
	pattern, err := structure(a, 1)
	if err != nil {
		return nil, err
	}
	// frontier[v] holds v's parent after each product and v itself before it.
	frontier, err := grb.NewSparseVector[int](a.Rows())
	if err != nil {
		return nil, err
	}
	_ = frontier.SetElement(source, -1)

	for depth := 0; frontier.NVals() > 0; depth++ {
		idx, parents := frontier.ExtractTuples()
		if err = w.level(depth, idx, parents); err != nil {
			return w.res, err
		}
		for _, v := range idx {
			_ = frontier.SetElement(v, v)
		}
		err = grb.VxM[int](frontier, grb.StructuralComplementMask(w.visited), grb.NoAccumulate[int](),
			grb.MinFirst[int](), frontier, pattern, grb.Replace, w.kernel...)
		if err != nil {
			return w.res, fmt.Errorf("BFSParents: %w", err)
		}
	}

	return w.res, nil
}

// walker holds the mutable state for one BFS execution.
type walker struct {
	ctx     context.Context
	opts    *BFSOptions
	kernel  []grb.Option
	res     *BFSResult
	visited *grb.SparseVector[bool]
}

// newWalker validates the inputs and allocates the result.
func newWalker[T grb.Scalar](a *grb.Matrix[T], source int, opts *BFSOptions, parents bool) (*walker, error) {
	if a == nil {
		return nil, grb.ErrNilMatrix
	}
	if a.Rows() != a.Cols() {
		return nil, fmt.Errorf("%w: %dx%d", ErrNotSquare, a.Rows(), a.Cols())
	}
	n := a.Rows()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{ctx: context.Background(), opts: opts}
	if opts != nil {
		if opts.Ctx != nil {
			w.ctx = opts.Ctx
		}
		w.kernel = opts.Kernel
	}
	w.res = &BFSResult{Order: make([]int, 0, n), Depth: fill(n, -1)}
	if parents {
		w.res.Parent = fill(n, -1)
	}
	w.visited, _ = grb.NewSparseVector[bool](n) // n validated by the matrix

	return w, nil
}

// level records the ascending frontier idx at depth. parents, when non-nil,
// is aligned with idx.
func (w *walker) level(depth int, idx []int, parents []int) error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
	}

	w.res.Order = append(w.res.Order, idx...)
	for k, v := range idx {
		w.res.Depth[v] = depth
		if parents != nil {
			w.res.Parent[v] = parents[k]
		}
		_ = w.visited.SetElement(v, true)
	}
	if w.opts != nil && w.opts.OnLevel != nil {
		if err := w.opts.OnLevel(depth, idx); err != nil {
			return fmt.Errorf("OnLevel error at depth %d: %w", depth, err)
		}
	}

	return nil
}

// structure copies the sparsity pattern of a into a matrix holding one at
// every stored position, walking a through its adjacency view.
func structure[T, S grb.Scalar](a *grb.Matrix[T], one S) (*grb.Matrix[S], error) {
	rows := make([]int, 0, a.NVals())
	cols := make([]int, 0, a.NVals())
	for idx := range a.AdjacencyList().All() {
		rows = append(rows, idx.Row)
		cols = append(cols, idx.Col)
	}
	vals := make([]S, len(rows))
	for k := range vals {
		vals[k] = one
	}

	return grb.BuildMatrix(a.Rows(), a.Cols(), rows, cols, vals, nil)
}

func fill(n, v int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = v
	}
	return s
}
