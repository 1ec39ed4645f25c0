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
	"fmt"
	"unsafe"

	"github.com/ajroetker/quadlane/hwy/contrib/alloc"
)

// LoadAligned loads 4 lanes from src.
//
// Precondition: src has at least 4 elements and &src[0] is a multiple of 16
// bytes. The alignment is only verified when checks are enabled (see
// SetAlignmentChecks and HWY_CHECK_ALIGN); a violation then panics with an
// error wrapping alloc.ErrMisaligned.
func LoadAligned(src []float32) Vec4 {
	if checkAlignment {
		mustBeAligned("LoadAligned", src)
	}
	return Vec4{lanes: [MaxLanes]float32(src[:MaxLanes])}
}

// StoreAligned writes all 4 lanes to dst under the same precondition as
// LoadAligned.
func StoreAligned(v Vec4, dst []float32) {
	if checkAlignment {
		mustBeAligned("StoreAligned", dst)
	}
	*(*[MaxLanes]float32)(dst[:MaxLanes]) = v.lanes
}

// LoadBroadcast reads src[0] and replicates it into all lanes. src has no
// alignment requirement.
func LoadBroadcast(src []float32) Vec4 {
	return Set(src[0])
}

// MaskLoad loads src[i] for the lanes where mask is true and zero elsewhere.
// Inactive lanes are not read, so src may be shorter than 4.
func MaskLoad(mask Mask4, src []float32) Vec4 {
	var v Vec4
	for i := 0; i < MaxLanes && i < len(src); i++ {
		if mask.bits[i] != 0 {
			v.lanes[i] = src[i]
		}
	}
	return v
}

// MaskStore writes the lanes where mask is true; other elements of dst are
// left unchanged.
func MaskStore(mask Mask4, v Vec4, dst []float32) {
	for i := 0; i < MaxLanes && i < len(dst); i++ {
		if mask.bits[i] != 0 {
			dst[i] = v.lanes[i]
		}
	}
}

func mustBeAligned(op string, s []float32) {
	p := unsafe.Pointer(unsafe.SliceData(s)) //nolint:gosec // address inspection only
	if !alloc.IsAligned(p, VecBytes) {
		panic(fmt.Errorf("hwy: %s: address %#x is not %d-byte aligned: %w", op, uintptr(p), VecBytes, alloc.ErrMisaligned))
	}
}
