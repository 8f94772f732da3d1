// SPDX-License-Identifier: MIT

// Package builder generates deterministic adjacency-matrix fixtures for grb
// kernels and the algorithms package.
//
// One orchestrator, BuildMatrix(n, opts, cons...), collects the edges emitted
// by each Constructor into a single triplet list and builds an n×n
// grb.Matrix[float64] from it. Constructors cover the usual topologies:
// Path, Cycle, Star, Complete, Grid and RandomSparse.
//
// Determinism: the same n, options, seed and constructor order always yield
// the same matrix. Undirected graphs (the default) store both arcs of every
// edge; WithDirected(true) stores only i→j.
package builder
