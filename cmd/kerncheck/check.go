// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"text/tabwriter"

	"github.com/cwbudde/algo-vecmath"
	approx "github.com/meko-christian/algo-approx"

	"github.com/ajroetker/quadlane/hwy"
	"github.com/ajroetker/quadlane/hwy/contrib/algo"
	"github.com/ajroetker/quadlane/hwy/contrib/buffer"
	"github.com/ajroetker/quadlane/hwy/contrib/dot"
	"github.com/ajroetker/quadlane/hwy/contrib/workerpool"
	"github.com/ajroetker/quadlane/internal/logging"
)

const (
	// expLo and expHi keep e^x a normal float32 so relative error is
	// meaningful.
	expLo = -80
	expHi = 80

	sqrtLo = 1e-6
	sqrtHi = 1e6

	// dotLen is the length of each vector in the dot product check.
	dotLen = 1024
	// dotRows is the number of dot products evaluated per run.
	dotRows = 64
)

var errAllocation = errors.New("sample buffer allocation failed")

type config struct {
	samples int
	seed    uint64
}

// result is one row of the report.
type result struct {
	kernel string
	// maxRelErr is measured against the float64 reference.
	maxRelErr float64
	bound     float64
	// thirdParty is the same measurement for a third-party approximation,
	// NaN when there is none.
	thirdParty float64
}

func (r result) ok() bool {
	return r.maxRelErr <= r.bound
}

func run(w io.Writer, cfg config) (bool, error) {
	rng := rand.New(rand.NewPCG(cfg.seed, cfg.seed^0x9e3779b97f4a7c15))
	logging.L().Debug("kerncheck start", "samples", cfg.samples, "seed", cfg.seed)

	fmt.Fprintf(w, "dispatch: %s (%d bytes), fma: %v, kernels: %s\n\n",
		hwy.CurrentName(), hwy.CurrentWidth(), hwy.HasFMA(), hwy.ActiveKernels().Name)

	var results []result
	for _, check := range []func(*rand.Rand, int) (result, error){checkExp, checkSqrt, checkDot} {
		r, err := check(rng, cfg.samples)
		if err != nil {
			return false, err
		}
		results = append(results, r)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "kernel\tmax rel err\tbound\tthird-party\tstatus")
	ok := true
	for _, r := range results {
		status := "ok"
		if !r.ok() {
			status = "FAIL"
			ok = false
		}
		third := "-"
		if !math.IsNaN(r.thirdParty) {
			third = fmt.Sprintf("%.3g", r.thirdParty)
		}
		fmt.Fprintf(tw, "%s\t%.3g\t%.3g\t%s\t%s\n", r.kernel, r.maxRelErr, r.bound, third, status)
	}
	return ok, tw.Flush()
}

// sampleBuffer returns n aligned floats drawn uniformly from [lo, hi), with
// the length rounded up to whole vectors. Padding lanes repeat the last
// sample.
func sampleBuffer(rng *rand.Rand, n int, lo, hi float64) (*buffer.Buffer, error) {
	size := hwy.AlignedSize(n)
	buf := buffer.New(size)
	if err := buf.SetLen(size); err != nil {
		return nil, fmt.Errorf("%w: %w", errAllocation, err)
	}
	data := buf.Data()
	for i := range n {
		data[i] = float32(lo + (hi-lo)*rng.Float64())
	}
	algo.Fill(data[n:], data[n-1])
	return buf, nil
}

func relErr(got, want float64) float64 {
	if got == want {
		return 0
	}
	return math.Abs(got-want) / math.Abs(want)
}

func checkExp(rng *rand.Rand, n int) (result, error) {
	buf, err := sampleBuffer(rng, n, expLo, expHi)
	if err != nil {
		return result{}, err
	}
	defer buf.Release()

	r := result{kernel: "ExpApprox", bound: hwy.ExpMaxRelError}
	data := buf.Data()
	for i := 0; i < len(data); i += hwy.MaxLanes {
		got := hwy.ExpApprox(hwy.LoadAligned(data[i:]))
		for lane := range min(hwy.MaxLanes, n-i) {
			x := float64(data[i+lane])
			want := math.Exp(x)
			r.maxRelErr = max(r.maxRelErr, relErr(float64(got.Lane(lane)), want))
			r.thirdParty = max(r.thirdParty, relErr(approx.FastExp(x), want))
		}
	}
	return r, nil
}

func checkSqrt(rng *rand.Rand, n int) (result, error) {
	buf, err := sampleBuffer(rng, n, sqrtLo, sqrtHi)
	if err != nil {
		return result{}, err
	}
	defer buf.Release()

	r := result{kernel: "SqrtApprox", bound: hwy.SqrtMaxRelError}
	data := buf.Data()
	for i := 0; i < len(data); i += hwy.MaxLanes {
		got := hwy.SqrtApprox(hwy.LoadAligned(data[i:]))
		for lane := range min(hwy.MaxLanes, n-i) {
			x := float64(data[i+lane])
			want := math.Sqrt(x)
			r.maxRelErr = max(r.maxRelErr, relErr(float64(got.Lane(lane)), want))
			r.thirdParty = max(r.thirdParty, relErr(approx.FastSqrt(x), want))
		}
	}
	return r, nil
}

// checkDot compares dot.Dot with a float64 reference. The error is taken
// relative to the sum of |a[i]*b[i]|, and the bound is the worst-case
// rounding of a float32 sum of dotLen terms. The serial and parallel batch
// paths must agree bit for bit.
func checkDot(rng *rand.Rand, n int) (result, error) {
	rows := min(dotRows, max(1, n/dotLen))
	queries := make([][]float32, rows)
	keys := make([][]float32, rows)
	for i := range rows {
		queries[i] = make([]float32, dotLen)
		keys[i] = make([]float32, dotLen)
		for j := range dotLen {
			queries[i][j] = float32(rng.Float64()*2 - 1)
			keys[i][j] = float32(rng.Float64()*2 - 1)
		}
	}

	pool := workerpool.New(0)
	defer pool.Close()
	serial := dot.DotBatch(queries, keys)
	parallel := dot.DotBatchParallel(pool, queries, keys)
	if !algo.Compare(serial, parallel, 0) {
		return result{}, errors.New("parallel dot products differ from serial ones")
	}

	r := result{
		kernel:     "Dot",
		bound:      2 * dotLen * 0x1p-24,
		thirdParty: math.NaN(),
	}
	a := make([]float64, dotLen)
	b := make([]float64, dotLen)
	products := make([]float64, dotLen)
	for i := range rows {
		for j := range dotLen {
			a[j] = float64(queries[i][j])
			b[j] = float64(keys[i][j])
		}
		vecmath.MulBlock(products, a, b)
		var want, magnitude float64
		for _, p := range products {
			want += p
			magnitude += math.Abs(p)
		}
		r.maxRelErr = max(r.maxRelErr, math.Abs(float64(serial[i])-want)/magnitude)
	}
	return r, nil
}
