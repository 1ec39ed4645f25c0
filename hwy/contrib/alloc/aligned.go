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

package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/ajroetker/quadlane/internal/logging"
)

// DefaultAlignment is the lane-vector width in bytes (4 x float32).
const DefaultAlignment = 16

// floatSize is the size of one float32 lane in bytes.
const floatSize = 4

// Allocate returns size bytes aligned to alignment from DefaultAllocator.
// It returns nil if alignment is not a non-zero power of two, if size is not
// positive, or if the allocator cannot satisfy the request.
func Allocate(size, alignment int) []byte {
	b, err := DefaultAllocator.Allocate(size, alignment)
	if err != nil {
		logging.L().Warn("aligned allocation failed",
			"size", size,
			"alignment", alignment,
			"error", err,
		)
		return nil
	}
	return b
}

// Release returns b to DefaultAllocator. Release(nil) is a no-op.
// b must have come from Allocate and must not be used afterwards.
func Release(b []byte) {
	DefaultAllocator.Free(b)
}

// AllocateFloats returns count float32 elements aligned to DefaultAlignment,
// or nil on failure.
func AllocateFloats(count int) []float32 {
	f, err := AllocateFloatsWith(DefaultAllocator, count)
	if err != nil {
		logging.L().Warn("aligned float allocation failed",
			"count", count,
			"alignment", DefaultAlignment,
			"error", err,
		)
		return nil
	}
	return f
}

// ReleaseFloats returns f to DefaultAllocator. ReleaseFloats(nil) is a no-op.
func ReleaseFloats(f []float32) {
	FreeFloatsWith(DefaultAllocator, f)
}

// AllocateFloatsWith allocates count 16-byte aligned float32 elements from a.
// A zero count yields (nil, nil).
func AllocateFloatsWith(a Allocator, count int) ([]float32, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: allocator", ErrNullArgument)
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidSize, count)
	}
	if count > math.MaxInt/floatSize {
		return nil, fmt.Errorf("%w: %d elements", ErrOutOfMemory, count)
	}
	b, err := a.Allocate(count*floatSize, DefaultAlignment)
	if err != nil || b == nil {
		return nil, err
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(unsafe.SliceData(b))), count), nil //nolint:gosec // unsafe is required for memory alignment
}

// FreeFloatsWith returns f, obtained from AllocateFloatsWith(a, ...), to a.
func FreeFloatsWith(a Allocator, f []float32) {
	if a == nil || f == nil {
		return
	}
	a.Free(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(f))), cap(f)*floatSize)) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether p is a multiple of alignment, which must be a
// power of two.
func IsAligned(p unsafe.Pointer, alignment uintptr) bool {
	return uintptr(p)&(alignment-1) == 0
}

// IsAlignedFloats reports whether the first element of s sits on a
// DefaultAlignment boundary. An empty slice with no backing array is aligned.
func IsAlignedFloats(s []float32) bool {
	return IsAligned(unsafe.Pointer(unsafe.SliceData(s)), DefaultAlignment) //nolint:gosec // unsafe is required for memory alignment
}
