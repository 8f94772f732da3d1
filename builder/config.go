// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - functional options resolved into an immutable builderConfig.

package builder

import "math/rand"

// WeightFn draws one edge weight. rng may be nil for deterministic functions.
type WeightFn func(rng *rand.Rand) float64

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	directed bool
}

const defaultConstWeight = 1.0

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{weightFn: ConstantWeightFn(defaultConstWeight)}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// WithSeed installs a deterministic RNG.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand installs the given RNG (nil removes it).
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) { c.rng = r }
}

// WithWeightFn sets the edge weight generator; nil keeps the current one.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithDirected stores only the i→j arc of every emitted edge.
func WithDirected(directed bool) BuilderOption {
	return func(c *builderConfig) { c.directed = directed }
}

// ConstantWeightFn returns value for every edge.
func ConstantWeightFn(value float64) WeightFn {
	return func(*rand.Rand) float64 { return value }
}

// UniformIntWeightFn draws integer weights uniformly from [lo, hi]. Integer
// weights keep (+, ×) and (min, +) sums exact in any evaluation order.
func UniformIntWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		lo, hi = hi, lo
	}
	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}
		return float64(lo + rng.Intn(hi-lo+1))
	}
}
