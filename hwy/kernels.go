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

package hwy

import (
	"math"
	"strings"

	"github.com/ajroetker/quadlane/internal/logging"
)

// Kernels is a named implementation set for the operations whose best form
// depends on the execution target. Exactly one set is active at a time; it
// is chosen at init from the detected CPU features and can be overridden
// with HWY_KERNELS=hardware|emulated.
//
// Active path per target:
//
//	amd64 with AVX and FMA   hardware
//	amd64 without them       emulated
//	arm64                    hardware
//	other / HWY_NO_SIMD      hardware (Go float division is exact IEEE)
type Kernels struct {
	// Name is "hardware" or "emulated".
	Name string

	// MulAdd computes a*b + c.
	MulAdd func(a, b, c Vec4) Vec4

	// Div computes a / b.
	Div func(a, b Vec4) Vec4

	// ReduceSum, ReduceMin and ReduceMax collapse all lanes into a scalar in
	// the fixed order (l0 op l2) op (l1 op l3).
	ReduceSum func(v Vec4) float32
	ReduceMin func(v Vec4) float32
	ReduceMax func(v Vec4) float32
}

const (
	hardwareName = "hardware"
	emulatedName = "emulated"
)

var hardwareKernels = Kernels{
	Name:      hardwareName,
	MulAdd:    mulAddFused,
	Div:       divExact,
	ReduceSum: reduceSumDirect,
	ReduceMin: reduceMinDirect,
	ReduceMax: reduceMaxDirect,
}

var emulatedKernels = Kernels{
	Name:      emulatedName,
	MulAdd:    mulAddSeparate,
	Div:       divRefined,
	ReduceSum: reduceSumHalving,
	ReduceMin: reduceMinHalving,
	ReduceMax: reduceMaxHalving,
}

// active is written only during init and by SetKernels.
var active = hardwareKernels

// HardwareKernels returns the set used on targets with fused multiply-add,
// exact division and direct horizontal reductions.
func HardwareKernels() Kernels {
	return hardwareKernels
}

// EmulatedKernels returns the set used on narrow targets: separate multiply
// and add roundings, reciprocal-estimate division refined by two
// Newton-Raphson steps, and pairwise-halving reductions.
func EmulatedKernels() Kernels {
	return emulatedKernels
}

// ActiveKernels returns the kernel set currently in use.
func ActiveKernels() Kernels {
	return active
}

// ParseKernels returns the kernel set named s ("hardware" or "emulated",
// case-insensitive).
func ParseKernels(s string) (Kernels, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case hardwareName:
		return hardwareKernels, true
	case emulatedName:
		return emulatedKernels, true
	default:
		return Kernels{}, false
	}
}

// SetKernels makes k the active set and returns a function restoring the
// previous one. It is meant for tests and benchmarks and must not be called
// concurrently with kernel execution. Nil function fields fall back to the
// hardware implementation.
func SetKernels(k Kernels) (restore func()) {
	prev := active
	active = fillKernels(k)
	logging.L().Debug("hwy kernels replaced", "from", prev.Name, "to", active.Name)
	return func() { active = prev }
}

func fillKernels(k Kernels) Kernels {
	if k.Name == "" {
		k.Name = "custom"
	}
	if k.MulAdd == nil {
		k.MulAdd = hardwareKernels.MulAdd
	}
	if k.Div == nil {
		k.Div = hardwareKernels.Div
	}
	if k.ReduceSum == nil {
		k.ReduceSum = hardwareKernels.ReduceSum
	}
	if k.ReduceMin == nil {
		k.ReduceMin = hardwareKernels.ReduceMin
	}
	if k.ReduceMax == nil {
		k.ReduceMax = hardwareKernels.ReduceMax
	}
	return k
}

// mulAddFused rounds once at float64 precision before narrowing to float32.
// The float64 product of two float32 values is exact, so the only
// difference from a native float32 FMA is a rare double rounding in the
// final narrowing.
func mulAddFused(a, b, c Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = float32(math.FMA(float64(a.lanes[i]), float64(b.lanes[i]), float64(c.lanes[i])))
	}
	return r
}

// mulAddSeparate rounds the product before adding. The explicit conversion
// keeps the compiler from fusing the two operations.
func mulAddSeparate(a, b, c Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		p := float32(a.lanes[i] * b.lanes[i])
		r.lanes[i] = p + c.lanes[i]
	}
	return r
}

func divExact(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = a.lanes[i] / b.lanes[i]
	}
	return r
}

// divRefinementSteps is fixed. Changing it requires re-deriving the
// accuracy bound of the emulated division.
const divRefinementSteps = 2

// divRefined computes a * (1/b) from RcpEstimate(b) and Newton-Raphson
// steps r' = r * (2 - b*r).
func divRefined(a, b Vec4) Vec4 {
	two := Set(2)
	r := RcpEstimate(b)
	for range divRefinementSteps {
		r = Mul(r, Sub(two, Mul(b, r)))
	}
	return Mul(a, r)
}
