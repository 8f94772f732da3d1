package algorithms

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/lvlath-grb/builder"
	"github.com/katalvlaran/lvlath-grb/grb"
)

func TestSSSP_WeightedTriangle(t *testing.T) {
	a := edges(t, 4, true, [3]float64{0, 1, 1}, [3]float64{1, 2, 2}, [3]float64{0, 2, 5})
	dist, err := SSSP(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]float64{0: 0, 1: 1, 2: 3}
	if dist.NVals() != len(want) {
		t.Fatalf("NVals = %d; want %d (%v)", dist.NVals(), len(want), dist)
	}
	for v, d := range want {
		if got, ok := dist.ExtractElement(v); !ok || got != d {
			t.Errorf("dist[%d] = %v (stored=%v); want %v", v, got, ok, d)
		}
	}
	if dist.HasElement(3) {
		t.Errorf("vertex 3 is unreachable but has a distance")
	}
}

func TestSSSP_NegativeEdges(t *testing.T) {
	a := edges(t, 3, false, [3]float64{0, 1, 4}, [3]float64{0, 2, 5}, [3]float64{2, 1, -3})
	dist, err := SSSP(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := dist.ExtractElement(1); d != 2 {
		t.Errorf("dist[1] = %v; want 2", d)
	}
}

func TestSSSP_NegativeCycle(t *testing.T) {
	a := edges(t, 3, false, [3]float64{0, 1, 1}, [3]float64{1, 2, -2}, [3]float64{2, 1, 1})
	if _, err := SSSP(a, 0, nil); !errors.Is(err, ErrNegativeCycle) {
		t.Fatalf("expected ErrNegativeCycle, got %v", err)
	}
	self := edges(t, 1, false, [3]float64{0, 0, -1})
	if _, err := SSSP(self, 0, nil); !errors.Is(err, ErrNegativeCycle) {
		t.Fatalf("expected ErrNegativeCycle on negative self-loop, got %v", err)
	}
}

// TestSSSP_MatchesDijkstra compares against a plain O(n²) Dijkstra on a
// random graph with positive integer weights.
func TestSSSP_MatchesDijkstra(t *testing.T) {
	const n = 60
	a, err := builder.BuildMatrix(n, []builder.BuilderOption{
		builder.WithSeed(42), builder.WithDirected(true), builder.WithWeightFn(builder.UniformIntWeightFn(1, 9)),
	}, builder.RandomSparse(0.1))
	if err != nil {
		t.Fatal(err)
	}
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
		for j := range w[i] {
			w[i][j] = math.Inf(1)
		}
	}
	for idx, x := range a.AdjacencyList().All() {
		w[idx.Row][idx.Col] = *x
	}

	dist, err := SSSP(a, 0, &SSSPOptions{Kernel: []grb.Option{grb.WithParallelThreshold(0), grb.WithMaxWorkers(4)}})
	if err != nil {
		t.Fatal(err)
	}

	ref := make([]float64, n)
	done := make([]bool, n)
	for i := range ref {
		ref[i] = math.Inf(1)
	}
	ref[0] = 0
	for {
		u := -1
		for v := 0; v < n; v++ {
			if !done[v] && !math.IsInf(ref[v], 1) && (u < 0 || ref[v] < ref[u]) {
				u = v
			}
		}
		if u < 0 {
			break
		}
		done[u] = true
		for v := 0; v < n; v++ {
			if ref[u]+w[u][v] < ref[v] {
				ref[v] = ref[u] + w[u][v]
			}
		}
	}

	for v := 0; v < n; v++ {
		got, ok := dist.ExtractElement(v)
		switch {
		case math.IsInf(ref[v], 1) && ok:
			t.Errorf("vertex %d unreachable, got %v", v, got)
		case !math.IsInf(ref[v], 1) && (!ok || got != ref[v]):
			t.Errorf("dist[%d] = %v (stored=%v); want %v", v, got, ok, ref[v])
		}
	}
}

func TestSSSP_IntegerWeights(t *testing.T) {
	a, err := grb.BuildMatrix(3, 3, []int{0, 1}, []int{1, 2}, []int{7, 8}, nil)
	if err != nil {
		t.Fatal(err)
	}
	dist, err := SSSP(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d, _ := dist.ExtractElement(2); d != 15 {
		t.Errorf("dist[2] = %d; want 15", d)
	}
}

func TestSSSP_InvalidInput(t *testing.T) {
	a := edges(t, 2, false)
	if _, err := SSSP(a, -1, nil); !errors.Is(err, ErrSourceOutOfRange) {
		t.Errorf("expected ErrSourceOutOfRange, got %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := SSSP(a, 0, &SSSPOptions{Ctx: ctx}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
