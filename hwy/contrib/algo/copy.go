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

import (
	"unsafe"

	"github.com/ajroetker/quadlane/hwy"
	"github.com/ajroetker/quadlane/hwy/contrib/alloc"
)

// blockLanes is the number of elements moved per unrolled block.
const blockLanes = 4 * hwy.MaxLanes

// Copy copies min(len(dst), len(src)) elements from src to dst and returns
// the count. When both slices are 16-byte aligned the copy uses aligned
// vector loads and stores; otherwise it copies the bytes one at a time.
// Overlapping slices are not supported.
func Copy(dst, src []float32) int {
	n := min(len(dst), len(src))
	if n == 0 {
		return 0
	}
	if !alloc.IsAlignedFloats(dst) || !alloc.IsAlignedFloats(src) {
		copyBytes(dst[:n], src[:n])
		return n
	}

	i := 0
	for ; i+blockLanes <= n; i += blockLanes {
		v0 := hwy.LoadAligned(src[i:])
		v1 := hwy.LoadAligned(src[i+4:])
		v2 := hwy.LoadAligned(src[i+8:])
		v3 := hwy.LoadAligned(src[i+12:])
		hwy.StoreAligned(v0, dst[i:])
		hwy.StoreAligned(v1, dst[i+4:])
		hwy.StoreAligned(v2, dst[i+8:])
		hwy.StoreAligned(v3, dst[i+12:])
	}
	for ; i+hwy.MaxLanes <= n; i += hwy.MaxLanes {
		hwy.StoreAligned(hwy.LoadAligned(src[i:]), dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = src[i]
	}
	return n
}

// Fill sets every element of dst to value. The value is broadcast once and
// reused by every aligned store; a misaligned dst is filled element-wise.
func Fill(dst []float32, value float32) {
	n := len(dst)
	if n == 0 {
		return
	}
	if !alloc.IsAlignedFloats(dst) {
		for i := range dst {
			dst[i] = value
		}
		return
	}

	v := hwy.Set(value)
	i := 0
	for ; i+blockLanes <= n; i += blockLanes {
		hwy.StoreAligned(v, dst[i:])
		hwy.StoreAligned(v, dst[i+4:])
		hwy.StoreAligned(v, dst[i+8:])
		hwy.StoreAligned(v, dst[i+12:])
	}
	for ; i+hwy.MaxLanes <= n; i += hwy.MaxLanes {
		hwy.StoreAligned(v, dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = value
	}
}

// copyBytes copies len(src)*4 bytes through byte views of both slices.
func copyBytes(dst, src []float32) {
	size := len(src) * int(unsafe.Sizeof(float32(0)))
	d := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(dst))), size) //nolint:gosec // same backing array
	s := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(src))), size) //nolint:gosec // same backing array
	for i := range s {
		d[i] = s[i]
	}
}
