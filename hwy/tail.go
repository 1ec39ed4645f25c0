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

// FirstN returns a mask with the first count lanes active.
// This is useful for handling the tail (remainder) of an array
// when the size is not a multiple of the vector width.
//
// Example:
//
//	remaining := len(data) % hwy.MaxLanes
//	if remaining > 0 {
//	    mask := hwy.FirstN(remaining)
//	    v := hwy.MaskLoad(mask, data[len(data)-remaining:])
//	    // ... process tail
//	}
func FirstN(count int) Mask4 {
	count = max(0, min(count, MaxLanes))
	var m Mask4
	for i := range count {
		m.bits[i] = laneTrue
	}
	return m
}

// ProcessWithTail is a helper for processing arrays with SIMD that handles
// both full vectors and the tail (remainder) automatically.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of 4
//
// Full vectors are visited in increasing offset order before the tail, so
// accumulations through the callbacks have a fixed order.
func ProcessWithTail(size int, fullFn func(offset int), tailFn func(offset, count int)) {
	fullVectors := size / MaxLanes
	for i := range fullVectors {
		fullFn(i * MaxLanes)
	}

	remaining := size % MaxLanes
	if remaining > 0 {
		tailFn(fullVectors*MaxLanes, remaining)
	}
}

// AlignedSize rounds up size to the next multiple of the vector width.
// This is useful for allocating buffers that will be processed with SIMD.
func AlignedSize(size int) int {
	return ((size + MaxLanes - 1) / MaxLanes) * MaxLanes
}

// IsLaneMultiple returns true if size is a multiple of the vector width.
func IsLaneMultiple(size int) bool {
	return size%MaxLanes == 0
}
