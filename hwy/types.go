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

// Package hwy provides 4-lane float32 SIMD kernels with runtime CPU dispatch.
//
// A Vec4 is an immutable value holding four float32 lanes. Kernels are pure
// functions from vectors to vectors (or scalars) with no error path: any bit
// pattern is accepted and produces a value per the documented, possibly
// approximate, formula.
//
// Basic usage:
//
//	import "github.com/ajroetker/quadlane/hwy"
//
//	a := hwy.Load(data1)
//	b := hwy.Load(data2)
//	sum := hwy.ReduceSum(hwy.MulAdd(a, b, hwy.One()))
//
// The operations whose best form depends on the CPU (MulAdd, Div and the
// horizontal reductions) are routed through one of two named kernel sets,
// chosen once at init. See Kernels.
package hwy

import "math"

// MaxLanes is the number of float32 lanes in a Vec4.
const MaxLanes = 4

// VecBytes is the size of a Vec4 in bytes, and the alignment required by
// LoadAligned and StoreAligned.
const VecBytes = MaxLanes * 4

// Vec4 is a 4-lane float32 vector value.
//
// The zero value is a vector of zeros. Vec4 values are never mutated by the
// kernels; every operation returns a new value.
type Vec4 struct {
	lanes [MaxLanes]float32
}

// NumLanes returns the number of lanes (always 4).
func (v Vec4) NumLanes() int {
	return MaxLanes
}

// Data returns a copy of the lanes.
func (v Vec4) Data() [MaxLanes]float32 {
	return v.lanes
}

// Lane returns lane i. It panics if i is out of range.
func (v Vec4) Lane(i int) float32 {
	return v.lanes[i]
}

// Store writes the vector to dst. This is the method form of Store.
func (v Vec4) Store(dst []float32) {
	Store(v, dst)
}

// laneTrue is the all-ones lane pattern of an active mask lane.
const laneTrue = math.MaxUint32

// Mask4 is the result of a lane-wise comparison. Each lane is either all
// ones (true) or all zeros (false), so masks can be blended bitwise with
// vector data by IfThenElse.
type Mask4 struct {
	bits [MaxLanes]uint32
}

// Bits returns the raw per-lane words (0xFFFFFFFF or 0).
func (m Mask4) Bits() [MaxLanes]uint32 {
	return m.bits
}

// AllTrue returns true if all lanes in the mask are active.
func (m Mask4) AllTrue() bool {
	return m.bits[0]&m.bits[1]&m.bits[2]&m.bits[3] == laneTrue
}

// AnyTrue returns true if at least one lane in the mask is active.
func (m Mask4) AnyTrue() bool {
	return m.bits[0]|m.bits[1]|m.bits[2]|m.bits[3] != 0
}

// CountTrue returns the number of active lanes in the mask.
func (m Mask4) CountTrue() int {
	count := 0
	for _, bit := range m.bits {
		if bit != 0 {
			count++
		}
	}
	return count
}

// GetBit returns whether lane i is active.
func (m Mask4) GetBit(i int) bool {
	if i < 0 || i >= MaxLanes {
		return false
	}
	return m.bits[i] != 0
}

func maskLane(b bool) uint32 {
	if b {
		return laneTrue
	}
	return 0
}
