// Package algorithms implements classic graph algorithms in the language of
// linear algebra: every step is a grb product over the adjacency matrix.
//
// It provides free-function implementations of:
//
//   - Traversals
//     – BFSLevels (depth of every reachable vertex, boolean semiring)
//     – BFSParents (BFS tree, min.first semiring)
//
//   - Shortest paths
//     – SSSP (Bellman–Ford, min.+ semiring with a min accumulator)
//
// All functions accept *grb.Matrix, where A[i][j] is the edge i→j, and
// return plain Go values or grb vectors. Hookable options (BFSOptions,
// SSSPOptions) carry a context and kernel options such as a tracing logger.
package algorithms
