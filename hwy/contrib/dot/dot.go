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


// Package dot computes dot products over float32 slices of any length.
package dot

import "github.com/ajroetker/quadlane/hwy"

// Dot returns the sum of a[i]*b[i] for i below min(len(a), len(b)), or 0
// when either slice is empty.
//
// Full 4-element chunks are reduced with hwy.Dot4 and added to a running
// scalar sum from left to right; the remaining tail products are then
// added in index order. The order is fixed, so the same input under the
// same kernel set always gives the same bits.
//
// Example:
//
//	a := []float32{1, 2, 3}
//	b := []float32{4, 5, 6}
//	result := dot.Dot(a, b) // 1*4 + 2*5 + 3*6 = 32
func Dot(a, b []float32) float32 {
	n := min(len(a), len(b))
	var sum float32
	i := 0
	for ; i+hwy.MaxLanes <= n; i += hwy.MaxLanes {
		sum += hwy.Dot4(hwy.Load(a[i:]), hwy.Load(b[i:]))
	}
	for ; i < n; i++ {
		sum += a[i] * b[i]
	}
	return sum
}
