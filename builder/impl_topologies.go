// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_topologies.go - deterministic topology constructors.
//
// Contract (all constructors):
//   • Vertex ids are matrix indices; a constructor never emits outside [0, n).
//   • Edges are emitted in a stable order, so weights drawn from a seeded
//     RNG are reproducible.
//   • Weight per edge: cfg.weightFn(cfg.rng).

package builder

const (
	methodPath         = "Path"
	methodCycle        = "Cycle"
	methodStar         = "Star"
	methodComplete     = "Complete"
	methodGrid         = "Grid"
	methodRandomSparse = "RandomSparse"

	minCycleNodes = 3
)

// Path links vertices 0-1-…-(k-1).
func Path(k int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if k < 2 || k > s.N() {
			return builderErrorf(methodPath, "k=%d not in [2,%d]: %w", k, s.N(), ErrTooFewVertices)
		}
		for i := 0; i+1 < k; i++ {
			if err := s.Edge(i, i+1, cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodPath, "%w", err)
			}
		}
		return nil
	}
}

// Cycle links vertices 0..k-1 in a ring, closing (k-1)→0.
func Cycle(k int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if k < minCycleNodes || k > s.N() {
			return builderErrorf(methodCycle, "k=%d not in [%d,%d]: %w", k, minCycleNodes, s.N(), ErrTooFewVertices)
		}
		for i := 0; i < k; i++ {
			if err := s.Edge(i, (i+1)%k, cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodCycle, "%w", err)
			}
		}
		return nil
	}
}

// Star links hub to every other vertex.
func Star(hub int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if s.N() < 2 {
			return builderErrorf(methodStar, "n=%d: %w", s.N(), ErrTooFewVertices)
		}
		for v := 0; v < s.N(); v++ {
			if v == hub {
				continue
			}
			if err := s.Edge(hub, v, cfg.weightFn(cfg.rng)); err != nil {
				return builderErrorf(methodStar, "%w", err)
			}
		}
		return nil
	}
}

// Complete links every ordered (directed) or unordered pair, without loops.
func Complete() Constructor {
	return func(s *Sink, cfg builderConfig) error {
		n := s.N()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if err := s.Edge(i, j, cfg.weightFn(cfg.rng)); err != nil {
					return builderErrorf(methodComplete, "%w", err)
				}
			}
		}
		return nil
	}
}

// Grid lays out a rows×cols lattice with vertex r*cols+c and 4-neighbour
// edges (right and down).
func Grid(rows, cols int) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if rows < 1 || cols < 1 || rows*cols > s.N() {
			return builderErrorf(methodGrid, "%dx%d does not fit n=%d: %w", rows, cols, s.N(), ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					if err := s.Edge(v, v+1, cfg.weightFn(cfg.rng)); err != nil {
						return builderErrorf(methodGrid, "%w", err)
					}
				}
				if r+1 < rows {
					if err := s.Edge(v, v+cols, cfg.weightFn(cfg.rng)); err != nil {
						return builderErrorf(methodGrid, "%w", err)
					}
				}
			}
		}
		return nil
	}
}

// RandomSparse includes each admissible pair independently with probability
// p (Erdős–Rényi). Undirected builds try pairs i<j; directed builds try every
// ordered pair i≠j. An RNG is required when 0 < p < 1.
func RandomSparse(p float64) Constructor {
	return func(s *Sink, cfg builderConfig) error {
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return builderErrorf(methodRandomSparse, "%w", ErrNeedRandSource)
		}
		n := s.N()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if p < 1 && (p == 0 || cfg.rng.Float64() >= p) {
					continue
				}
				if err := s.Edge(i, j, cfg.weightFn(cfg.rng)); err != nil {
					return builderErrorf(methodRandomSparse, "%w", err)
				}
			}
		}
		return nil
	}
}
