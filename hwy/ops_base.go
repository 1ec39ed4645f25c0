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

import "math"

// This file provides the lane-wise kernels. They are written as plain Go
// loops over four lanes, which the compiler keeps in registers; MulAdd and
// Div go through the active Kernels set.

var (
	zeroVec = Vec4{}
	oneVec  = Vec4{lanes: [MaxLanes]float32{1, 1, 1, 1}}
)

// Zero returns the all-zeros vector.
func Zero() Vec4 {
	return zeroVec
}

// One returns the all-ones (1.0) vector.
func One() Vec4 {
	return oneVec
}

// Set creates a vector with all lanes set to the same value (broadcast).
func Set(value float32) Vec4 {
	return Vec4{lanes: [MaxLanes]float32{value, value, value, value}}
}

// Load creates a vector from the first min(len(src), 4) elements of src.
// Missing lanes are zero. src has no alignment requirement.
func Load(src []float32) Vec4 {
	var v Vec4
	copy(v.lanes[:], src)
	return v
}

// Store writes min(len(dst), 4) lanes of v to dst.
func Store(v Vec4, dst []float32) {
	copy(dst, v.lanes[:])
}

// Add performs element-wise addition.
func Add(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = a.lanes[i] + b.lanes[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = a.lanes[i] - b.lanes[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = a.lanes[i] * b.lanes[i]
	}
	return r
}

// MulAdd computes a*b + c per lane. With the hardware kernel set this is a
// fused operation (one rounding); with the emulated set the product is
// rounded before the addition. See ActiveKernels.
func MulAdd(a, b, c Vec4) Vec4 {
	return active.MulAdd(a, b, c)
}

// FMA is an alias for MulAdd.
func FMA(a, b, c Vec4) Vec4 {
	return active.MulAdd(a, b, c)
}

// Div performs element-wise division. The hardware kernel set divides
// exactly; the emulated set multiplies a by a refined reciprocal estimate
// of b (two Newton-Raphson steps).
func Div(a, b Vec4) Vec4 {
	return active.Div(a, b)
}

// Neg negates all lanes.
func Neg(v Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = -v.lanes[i]
	}
	return r
}

// Abs clears the sign bit of every lane.
func Abs(v Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = math.Float32frombits(math.Float32bits(v.lanes[i]) &^ (1 << 31))
	}
	return r
}

// Min returns element-wise minimum. Like the SSE/NEON instruction it returns
// the second operand when the lanes are unordered (either is NaN).
func Min(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = minLane(a.lanes[i], b.lanes[i])
	}
	return r
}

// Max returns element-wise maximum, returning the second operand for
// unordered lanes.
func Max(a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = maxLane(a.lanes[i], b.lanes[i])
	}
	return r
}

// Clamp limits every lane to [lo, hi]: Min(Max(v, lo), hi).
func Clamp(v, lo, hi Vec4) Vec4 {
	return Min(Max(v, lo), hi)
}

// GreaterThan performs element-wise a > b comparison.
func GreaterThan(a, b Vec4) Mask4 {
	var m Mask4
	for i := range MaxLanes {
		m.bits[i] = maskLane(a.lanes[i] > b.lanes[i])
	}
	return m
}

// LessEqual performs element-wise a <= b comparison. Lanes holding NaN
// compare false.
func LessEqual(a, b Vec4) Mask4 {
	var m Mask4
	for i := range MaxLanes {
		m.bits[i] = maskLane(a.lanes[i] <= b.lanes[i])
	}
	return m
}

// IfThenElse returns, per lane, a where mask is true and b otherwise.
// The blend is bitwise: (a & mask) | (b &^ mask).
//
// This is the way to express branchless conditionals over vector data:
//
//	relu := hwy.IfThenElse(hwy.GreaterThan(x, hwy.Zero()), x, hwy.Zero())
func IfThenElse(mask Mask4, a, b Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		ab := math.Float32bits(a.lanes[i])
		bb := math.Float32bits(b.lanes[i])
		r.lanes[i] = math.Float32frombits(ab&mask.bits[i] | bb&^mask.bits[i])
	}
	return r
}

// Relu returns max(v, 0) per lane, computed with IfThenElse.
func Relu(v Vec4) Vec4 {
	return IfThenElse(GreaterThan(v, zeroVec), v, zeroVec)
}

func minLane(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxLane(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
