// Package lvlathgrb is a sparse linear-algebra toolkit for graphs: masked,
// accumulated semiring products of a vector with an adjacency matrix, and
// graph algorithms written on top of them.
//
// 🚀 What is lvlath-grb?
//
//	A small, concurrency-aware library that brings together:
//		• Semirings: (+,×), (min,+), (max,+), (||,&&), (min,first) and your own
//		• Masks: value, structure, complement and structural complement
//		• Kernels: u·A and u·Aᵗ (VxM), A·u and Aᵗ·u (MxV)
//		• Containers: dense and sparse vectors, sorted-row sparse matrices
//		• A lazy adjacency-list view over any matrix
//		• Algorithms: BFS levels, BFS parents, Bellman–Ford SSSP
//
// ✨ Why choose lvlath-grb?
//
//   - One result, two strategies – dense outputs run a parallel kernel,
//     sparse outputs a single-threaded one, and both agree entry for entry
//   - Errors, not panics – every rejected call leaves its output untouched
//   - Traceable – plug a log/slog logger into any call with WithLogger
//
// Under the hood, everything is organized under three subpackages:
//
//	grb/        containers, algebra, masks, the VxM / MxV kernels, adjacency view
//	algorithms/ BFSLevels, BFSParents, SSSP as sequences of grb products
//	builder/    deterministic adjacency-matrix fixtures (path, grid, random, …)
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    2───3
//
//	is the 4×4 matrix with A[0][1], A[0][2], A[1][3], A[2][3] and their mirrors;
//	one VxM over (||,&&) from {0} yields the frontier {1, 2}.
//
//	go get github.com/katalvlaran/lvlath-grb/grb
package lvlathgrb
