package algorithms

import "errors"

var (
	// ErrNotSquare is returned when the adjacency matrix is not n×n.
	ErrNotSquare = errors.New("algorithms: adjacency matrix must be square")

	// ErrSourceOutOfRange is returned when the source vertex is not a row of A.
	ErrSourceOutOfRange = errors.New("algorithms: source vertex out of range")

	// ErrNegativeCycle is returned by SSSP when distances still improve after
	// n relaxation rounds.
	ErrNegativeCycle = errors.New("algorithms: negative cycle reachable from source")
)
