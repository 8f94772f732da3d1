// SPDX-License-Identifier: MIT
// Package grb_test contains shared fixtures and a naive reference model.
//
// Purpose:
//   - Build vectors/matrices tersely (Must* helpers fail the test on error).
//   - Provide refProduct, a map-based model of masked/accumulated products
//     that both kernels are checked against.
//   - Keep every value integer-valued so float sums are exact in any order.

package grb_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlath-grb/grb"
)

// triplet is one stored matrix entry of a fixture.
type triplet struct {
	i, j int
	v    float64
}

// MustMatrix builds an r×c matrix from triplets or fails the test.
func MustMatrix(t *testing.T, r, c int, ts []triplet) *grb.Matrix[float64] {
	t.Helper()
	rows := make([]int, len(ts))
	cols := make([]int, len(ts))
	vals := make([]float64, len(ts))
	for k, e := range ts {
		rows[k], cols[k], vals[k] = e.i, e.j, e.v
	}
	m, err := grb.BuildMatrix(r, c, rows, cols, vals, nil)
	require.NoError(t, err)

	return m
}

// MustSparse builds a sparse vector from an index→value map.
func MustSparse(t *testing.T, n int, entries map[int]float64) *grb.SparseVector[float64] {
	t.Helper()
	v, err := grb.NewSparseVector[float64](n)
	require.NoError(t, err)
	for i, x := range entries {
		require.NoError(t, v.SetElement(i, x))
	}

	return v
}

// MustDenseVec builds a dense vector from an index→value map.
func MustDenseVec(t *testing.T, n int, entries map[int]float64) *grb.DenseVector[float64] {
	t.Helper()
	v, err := grb.NewDenseVector[float64](n)
	require.NoError(t, err)
	for i, x := range entries {
		require.NoError(t, v.SetElement(i, x))
	}

	return v
}

// contents snapshots the stored entries of any vector.
func contents(v grb.Vector[float64]) map[int]float64 {
	out := make(map[int]float64, v.NVals())
	for i, x := range v.All() {
		out[i] = x
	}

	return out
}

// randomTriplets draws nnz distinct positions in an r×c matrix with small
// integer weights in [1, 5].
func randomTriplets(rng *rand.Rand, r, c, nnz int) []triplet {
	seen := make(map[[2]int]bool, nnz)
	ts := make([]triplet, 0, nnz)
	for len(ts) < nnz && len(seen) < r*c {
		i, j := rng.Intn(r), rng.Intn(c)
		if seen[[2]int{i, j}] {
			continue
		}
		seen[[2]int{i, j}] = true
		ts = append(ts, triplet{i, j, float64(1 + rng.Intn(5))})
	}

	return ts
}

// randomEntries draws up to nnz entries of a size-n vector; zero values are
// allowed with probability zeroPct/100 so value masks see falsy entries.
func randomEntries(rng *rand.Rand, n, nnz, zeroPct int) map[int]float64 {
	out := make(map[int]float64, nnz)
	for k := 0; k < nnz; k++ {
		x := float64(1 + rng.Intn(4))
		if rng.Intn(100) < zeroPct {
			x = 0
		}
		out[rng.Intn(n)] = x
	}

	return out
}

// refMask is the reference mask predicate; present=false means "no mask".
type refMask struct {
	entries           map[int]float64
	structural, compl bool
	present           bool
}

func (m refMask) passes(j int) bool {
	if !m.present {
		return true
	}
	x, ok := m.entries[j]
	truthy := ok && (m.structural || x != 0)
	return m.compl != truthy
}

// grbMask turns a refMask into a grb.Mask over the given source.
func (m refMask) grbMask(src grb.MaskSource) grb.Mask {
	switch {
	case !m.present:
		return grb.NoMask()
	case m.structural && m.compl:
		return grb.StructuralComplementMask(src)
	case m.structural:
		return grb.StructureMask(src)
	case m.compl:
		return grb.ComplementMask(src)
	default:
		return grb.ValueMask(src)
	}
}

// refProduct models w<mask,accum> := u·A (rows of A indexed by u) over
// (+, ×) on maps. accum == nil means no accumulator.
func refProduct(w map[int]float64, size int, mask refMask, accum func(a, b float64) float64,
	u map[int]float64, a []triplet, transposed bool, outp grb.OutputControl) map[int]float64 {
	// Stage 1: temporary, rows of u folded in ascending order.
	byRow := make(map[int][]triplet)
	for _, e := range a {
		if transposed {
			e.i, e.j = e.j, e.i
		}
		byRow[e.i] = append(byRow[e.i], e)
	}
	us := make([]int, 0, len(u))
	for i := range u {
		us = append(us, i)
	}
	sort.Ints(us)
	t := make(map[int]float64)
	for _, i := range us {
		for _, e := range byRow[i] {
			if !mask.passes(e.j) {
				continue
			}
			t[e.j] += u[i] * e.v
		}
	}

	// Stage 2: pre-clear.
	out := make(map[int]float64, len(w))
	for j, x := range w {
		out[j] = x
	}
	switch {
	case accum == nil && !mask.present:
		out = map[int]float64{}
	case mask.present && outp == grb.Replace:
		for j := range out {
			if !mask.passes(j) {
				delete(out, j)
			}
		}
	}

	// Stage 3: merge.
	replaces := accum == nil && (!mask.present || outp == grb.Replace)
	for j := 0; j < size; j++ {
		if !mask.passes(j) {
			continue
		}
		tv, ok := t[j]
		switch {
		case !ok && replaces:
			delete(out, j)
		case !ok:
		case accum != nil:
			if old, had := out[j]; had {
				out[j] = accum(old, tv)
			} else {
				out[j] = tv
			}
		default:
			out[j] = tv
		}
	}

	return out
}
