package dot

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/ajroetker/quadlane/hwy"
	"github.com/ajroetker/quadlane/hwy/contrib/workerpool"
)

func naiveDot(a, b []float32) float32 {
	var sum float32
	for i := range min(len(a), len(b)) {
		sum += a[i] * b[i]
	}
	return sum
}

func TestDot(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "simple case",
			a:    []float32{1, 2, 3},
			b:    []float32{4, 5, 6},
			want: 32, // 1*4 + 2*5 + 3*6 = 32
		},
		{
			name: "exact lane width",
			a:    []float32{1, 2, 3, 4},
			b:    []float32{4, 3, 2, 1},
			want: 20,
		},
		{
			name: "lane width plus tail",
			a:    []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			b:    []float32{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
			want: 220, // 10+18+24+28+30+30+28+24+18+10 = 220
		},
		{
			name: "empty slices",
			a:    []float32{},
			b:    []float32{},
			want: 0,
		},
		{
			name: "different lengths",
			a:    []float32{1, 2, 3, 4, 5},
			b:    []float32{1, 2, 3},
			want: 14, // 1+4+9 = 14
		},
		{
			name: "negative values",
			a:    []float32{-1, -2, -3},
			b:    []float32{4, 5, 6},
			want: -32,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dot(tt.a, tt.b)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("Dot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDotMatchesNaive(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, kernels := range []hwy.Kernels{hwy.HardwareKernels(), hwy.EmulatedKernels()} {
		restore := hwy.SetKernels(kernels)
		for _, n := range []int{0, 3, 4, 5, 16, 17, 1000} {
			a := make([]float32, n)
			b := make([]float32, n)
			var magnitude float64
			for i := range a {
				a[i] = rng.Float32()*2 - 1
				b[i] = rng.Float32()*2 - 1
				magnitude += math.Abs(float64(a[i]) * float64(b[i]))
			}

			got, want := Dot(a, b), naiveDot(a, b)
			// Both sums round differently; bound the gap by the summed magnitudes.
			tol := float64(n+1) * 1.2e-7 * magnitude
			if diff := math.Abs(float64(got - want)); diff > tol {
				t.Errorf("%s n=%d: Dot = %v, naive = %v (diff %g > %g)", kernels.Name, n, got, want, diff, tol)
			}
		}
		restore()
	}
}

func TestDotIntegersExact(t *testing.T) {
	for _, n := range []int{0, 3, 4, 5, 16, 17} {
		a := make([]float32, n)
		b := make([]float32, n)
		for i := range a {
			a[i] = float32(i + 1)
			b[i] = float32(n - i)
		}
		if got, want := Dot(a, b), naiveDot(a, b); got != want {
			t.Errorf("n=%d: Dot = %v, want %v", n, got, want)
		}
	}
}

func TestDotReproducible(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	a := make([]float32, 257)
	b := make([]float32, 257)
	for i := range a {
		a[i] = rng.Float32() * 100
		b[i] = rng.Float32() * 100
	}
	first := Dot(a, b)
	for range 10 {
		if got := Dot(a, b); math.Float32bits(got) != math.Float32bits(first) {
			t.Fatalf("Dot is not reproducible: %v then %v", first, got)
		}
	}
}

func TestDotBatch(t *testing.T) {
	tests := []struct {
		name    string
		queries [][]float32
		keys    [][]float32
		want    []float32
	}{
		{
			name: "simple batch",
			queries: [][]float32{
				{1, 2, 3},
				{4, 5, 6},
			},
			keys: [][]float32{
				{7, 8, 9},
				{1, 2, 3},
			},
			want: []float32{50, 32}, // [1*7+2*8+3*9, 4*1+5*2+6*3]
		},
		{
			name: "different lengths",
			queries: [][]float32{
				{1, 2},
				{3, 4},
				{5, 6},
			},
			keys: [][]float32{
				{1, 1},
				{1, 1},
			},
			want: []float32{3, 7}, // Uses min length
		},
		{
			name:    "empty batch",
			queries: [][]float32{},
			keys:    [][]float32{},
			want:    []float32{},
		},
	}

	pool := workerpool.New(4)
	defer pool.Close()

	for _, tt := range tests {
		for _, parallel := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/parallel=%v", tt.name, parallel), func(t *testing.T) {
				var got []float32
				if parallel {
					got = DotBatchParallel(pool, tt.queries, tt.keys)
				} else {
					got = DotBatch(tt.queries, tt.keys)
				}
				if len(got) != len(tt.want) {
					t.Fatalf("length = %v, want %v", len(got), len(tt.want))
				}
				for i := range got {
					if math.Abs(float64(got[i]-tt.want[i])) > 1e-5 {
						t.Errorf("[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			})
		}
	}
}

func TestDotBatchParallelMatchesSerial(t *testing.T) {
	queries, keys := randomBatch(100, 37)
	pool := workerpool.New(3)
	defer pool.Close()

	serial := DotBatch(queries, keys)
	parallel := DotBatchParallel(pool, queries, keys)
	nilPool := DotBatchParallel(nil, queries, keys)
	for i := range serial {
		if serial[i] != parallel[i] || serial[i] != nilPool[i] {
			t.Fatalf("row %d: serial %v, parallel %v, nil pool %v", i, serial[i], parallel[i], nilPool[i])
		}
	}
}

func randomBatch(rows, cols int) (queries, keys [][]float32) {
	rng := rand.New(rand.NewPCG(5, 6))
	queries = make([][]float32, rows)
	keys = make([][]float32, rows)
	for i := range queries {
		queries[i] = make([]float32, cols)
		keys[i] = make([]float32, cols)
		for j := range cols {
			queries[i][j] = rng.Float32()
			keys[i][j] = rng.Float32()
		}
	}
	return queries, keys
}

// Benchmarks

func BenchmarkDot(b *testing.B) {
	for _, size := range []int{16, 64, 256, 1024, 4096} {
		a := make([]float32, size)
		c := make([]float32, size)
		for i := range a {
			a[i] = float32(i)
			c[i] = float32(i + 1)
		}

		b.Run(fmt.Sprint(size), func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = Dot(a, c)
			}
		})
	}
}

func BenchmarkDotBatch(b *testing.B) {
	queries, keys := randomBatch(256, 256)
	pool := workerpool.New(0)
	defer pool.Close()

	b.Run("serial", func(b *testing.B) {
		for b.Loop() {
			_ = DotBatch(queries, keys)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for b.Loop() {
			_ = DotBatchParallel(pool, queries, keys)
		}
	})
}
