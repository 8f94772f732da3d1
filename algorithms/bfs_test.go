package algorithms

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/katalvlaran/lvlath-grb/builder"
	"github.com/katalvlaran/lvlath-grb/grb"
)

// edges builds an n×n float64 adjacency matrix; undirected adds both arcs.
func edges(t *testing.T, n int, undirected bool, es ...[3]float64) *grb.Matrix[float64] {
	t.Helper()
	var rows, cols []int
	var vals []float64
	for _, e := range es {
		rows, cols, vals = append(rows, int(e[0])), append(cols, int(e[1])), append(vals, e[2])
		if undirected && e[0] != e[1] {
			rows, cols, vals = append(rows, int(e[1])), append(cols, int(e[0])), append(vals, e[2])
		}
	}
	a, err := grb.BuildMatrix(n, n, rows, cols, vals, nil)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}

	return a
}

func TestBFS_SingleNode(t *testing.T) {
	a := edges(t, 1, false)
	res, err := BFSParents(a, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(res.Order, []int{0}) {
		t.Errorf("Order = %v; want [0]", res.Order)
	}
	if res.Depth[0] != 0 || res.Parent[0] != -1 {
		t.Errorf("Depth[0]=%d Parent[0]=%d; want 0, -1", res.Depth[0], res.Parent[0])
	}
}

func TestBFS_LinearGraph(t *testing.T) {
	a := edges(t, 3, true, [3]float64{0, 1, 1}, [3]float64{1, 2, 1})
	res, err := BFSParents(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if res.Depth[2] != 2 {
		t.Errorf("Depth[2] = %d; want 2", res.Depth[2])
	}
	if res.Parent[2] != 1 {
		t.Errorf("Parent[2] = %d; want 1", res.Parent[2])
	}
}

func TestBFS_DiamondSmallestParent(t *testing.T) {
	//   0
	//  / \
	// 1   2
	//  \ /
	//   3───4
	a := edges(t, 6, true,
		[3]float64{0, 1, 1}, [3]float64{0, 2, 1},
		[3]float64{1, 3, 1}, [3]float64{2, 3, 1}, [3]float64{3, 4, 1})

	res, err := BFSParents(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, 2, 3, 4}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if want := []int{0, 1, 1, 2, 3, -1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
	if want := []int{-1, 0, 0, 1, 3, -1}; !reflect.DeepEqual(res.Parent, want) {
		t.Errorf("Parent = %v; want %v", res.Parent, want)
	}
	if res.Reached(5) {
		t.Errorf("vertex 5 is isolated but reported reached")
	}

	levels, err := BFSLevels(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(levels.Depth, res.Depth) {
		t.Errorf("BFSLevels depth %v differs from BFSParents %v", levels.Depth, res.Depth)
	}
	if levels.Parent != nil {
		t.Errorf("BFSLevels must not fill Parent")
	}
}

func TestBFS_DirectedAndZeroWeights(t *testing.T) {
	// 2→0 is never followed from 0; the explicit zero on 0→1 is an edge.
	a := edges(t, 3, false, [3]float64{0, 1, 0}, [3]float64{2, 0, 1})
	res, err := BFSLevels(a, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{0, 1, -1}; !reflect.DeepEqual(res.Depth, want) {
		t.Errorf("Depth = %v; want %v", res.Depth, want)
	}
}

func TestBFS_EarlyStop(t *testing.T) {
	a := edges(t, 3, true, [3]float64{0, 1, 1}, [3]float64{1, 2, 1})
	opts := &BFSOptions{
		OnLevel: func(depth int, vs []int) error {
			if depth == 1 {
				return errors.New("stop at 1")
			}
			return nil
		},
	}
	res, err := BFSLevels(a, 0, opts)
	if err == nil || err.Error() != "OnLevel error at depth 1: stop at 1" {
		t.Fatalf("expected stop error at depth 1, got %v", err)
	}
	if !reflect.DeepEqual(res.Order, []int{0, 1}) {
		t.Errorf("Order = %v; want [0 1]", res.Order)
	}
}

func TestBFS_Cancellation(t *testing.T) {
	a := edges(t, 100, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BFSParents(a, 0, &BFSOptions{Ctx: ctx})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBFS_InvalidInput(t *testing.T) {
	rect, err := grb.NewMatrix[int](2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = BFSLevels(rect, 0, nil); !errors.Is(err, ErrNotSquare) {
		t.Errorf("expected ErrNotSquare, got %v", err)
	}
	sq := edges(t, 2, false)
	if _, err = BFSParents(sq, 2, nil); !errors.Is(err, ErrSourceOutOfRange) {
		t.Errorf("expected ErrSourceOutOfRange, got %v", err)
	}
	if _, err = BFSLevels[int](nil, 0, nil); !errors.Is(err, grb.ErrNilMatrix) {
		t.Errorf("expected ErrNilMatrix, got %v", err)
	}
}

func TestBFS_KernelOptionsForwarded(t *testing.T) {
	var buf bytes.Buffer
	a := edges(t, 2, false, [3]float64{0, 1, 1})
	opts := &BFSOptions{Kernel: []grb.Option{grb.WithLogger(grb.NewTextLogger(&buf, slog.LevelDebug))}}
	if _, err := BFSLevels(a, 0, opts); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "kernel=sparse-axpy") {
		t.Errorf("expected kernel trace, got %q", buf.String())
	}

	opts.Kernel = []grb.Option{grb.WithMaxWorkers(-1)}
	if _, err := BFSLevels(a, 0, opts); !errors.Is(err, grb.ErrOptionViolation) {
		t.Errorf("expected ErrOptionViolation, got %v", err)
	}
}

func TestBFS_GridManhattan(t *testing.T) {
	const rows, cols = 7, 9
	a, err := builder.BuildMatrix(rows*cols, nil, builder.Grid(rows, cols))
	if err != nil {
		t.Fatal(err)
	}
	res, err := BFSParents(a, 0, &BFSOptions{Kernel: []grb.Option{grb.WithParallelThreshold(0)}})
	if err != nil {
		t.Fatal(err)
	}
	for v := 0; v < rows*cols; v++ {
		r, c := v/cols, v%cols
		if res.Depth[v] != r+c {
			t.Errorf("Depth[%d] = %d; want %d", v, res.Depth[v], r+c)
		}
		if v == 0 {
			continue
		}
		// Smallest-id parent: the upper neighbour when there is one.
		want := v - 1
		if r > 0 {
			want = v - cols
		}
		if res.Parent[v] != want {
			t.Errorf("Parent[%d] = %d; want %d", v, res.Parent[v], want)
		}
	}
}
