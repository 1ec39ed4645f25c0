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

// Horizontal reductions. Both strategies combine lanes in the same fixed
// order, (l0 op l2) op (l1 op l3), so they agree bit for bit on finite,
// non-NaN input:
//
//   - direct: the whole reduction written as one expression, as a target
//     with a native horizontal instruction would evaluate it;
//   - halving: fold the upper half of the lanes onto the lower half until
//     one lane is left.

// ReduceSum sums all lanes.
func ReduceSum(v Vec4) float32 {
	return active.ReduceSum(v)
}

// ReduceMin returns the minimum value across all lanes.
func ReduceMin(v Vec4) float32 {
	return active.ReduceMin(v)
}

// ReduceMax returns the maximum value across all lanes.
func ReduceMax(v Vec4) float32 {
	return active.ReduceMax(v)
}

// Dot4 returns the sum of the lane-wise products of a and b.
func Dot4(a, b Vec4) float32 {
	return active.ReduceSum(Mul(a, b))
}

func reduceSumDirect(v Vec4) float32 {
	l := &v.lanes
	return (l[0] + l[2]) + (l[1] + l[3])
}

func reduceMinDirect(v Vec4) float32 {
	l := &v.lanes
	return minLane(minLane(l[0], l[2]), minLane(l[1], l[3]))
}

func reduceMaxDirect(v Vec4) float32 {
	l := &v.lanes
	return maxLane(maxLane(l[0], l[2]), maxLane(l[1], l[3]))
}

func reduceSumHalving(v Vec4) float32 {
	return reduceHalving(v, func(a, b float32) float32 { return a + b })
}

func reduceMinHalving(v Vec4) float32 {
	return reduceHalving(v, minLane)
}

func reduceMaxHalving(v Vec4) float32 {
	return reduceHalving(v, maxLane)
}

func reduceHalving(v Vec4, op func(a, b float32) float32) float32 {
	l := v.lanes
	for width := MaxLanes / 2; width > 0; width /= 2 {
		for i := range width {
			l[i] = op(l[i], l[i+width])
		}
	}
	return l[0]
}
