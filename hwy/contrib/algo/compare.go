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


package algo

import "github.com/ajroetker/quadlane/hwy"

// Compare reports whether |a[i] - b[i]| <= tolerance for every i below
// min(len(a), len(b)). Any NaN difference fails the comparison, as does a
// negative or NaN tolerance unless there is nothing to compare. Alignment
// has no effect on the result.
func Compare(a, b []float32, tolerance float32) bool {
	n := min(len(a), len(b))
	if n == 0 {
		return true
	}
	if !(tolerance >= 0) {
		return false
	}

	tol := hwy.Set(tolerance)
	i := 0
	for ; i+hwy.MaxLanes <= n; i += hwy.MaxLanes {
		diff := hwy.Abs(hwy.Sub(hwy.Load(a[i:]), hwy.Load(b[i:])))
		if !hwy.LessEqual(diff, tol).AllTrue() {
			return false
		}
	}
	if remaining := n - i; remaining > 0 {
		// Inactive lanes load as zero on both sides and always pass.
		mask := hwy.FirstN(remaining)
		diff := hwy.Abs(hwy.Sub(hwy.MaskLoad(mask, a[i:]), hwy.MaskLoad(mask, b[i:])))
		if !hwy.LessEqual(diff, tol).AllTrue() {
			return false
		}
	}
	return true
}
