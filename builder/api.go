// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the BuildMatrix orchestrator and the edge sink handed to
// constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath-grb/grb"
)

// Constructor emits edges of one topology over vertices [0, n) into s.
// Constructors validate their parameters first and never panic.
type Constructor func(s *Sink, cfg builderConfig) error

// Sink collects emitted edges as triplets.
type Sink struct {
	n          int
	directed   bool
	rows, cols []int
	vals       []float64
}

// N returns the vertex count.
func (s *Sink) N() int { return s.n }

// Edge emits u→v with weight w, plus v→u for undirected builds.
func (s *Sink) Edge(u, v int, w float64) error {
	if u < 0 || u >= s.n || v < 0 || v >= s.n {
		return builderErrorf("Edge", "(%d,%d) outside [0,%d): %w", u, v, s.n, ErrConstructFailed)
	}
	s.rows, s.cols, s.vals = append(s.rows, u), append(s.cols, v), append(s.vals, w)
	if !s.directed && u != v {
		s.rows, s.cols, s.vals = append(s.rows, v), append(s.cols, u), append(s.vals, w)
	}

	return nil
}

// BuildMatrix applies the constructors in order and builds the n×n adjacency
// matrix. An edge emitted twice keeps its last weight.
func BuildMatrix(n int, opts []BuilderOption, cons ...Constructor) (*grb.Matrix[float64], error) {
	if n < 1 {
		return nil, fmt.Errorf("BuildMatrix: n=%d: %w", n, ErrTooFewVertices)
	}
	cfg := newBuilderConfig(opts...)
	s := &Sink{n: n, directed: cfg.directed}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMatrix: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildMatrix: %w", err)
		}
	}

	return grb.BuildMatrix(n, n, s.rows, s.cols, s.vals, grb.Second[float64])
}
