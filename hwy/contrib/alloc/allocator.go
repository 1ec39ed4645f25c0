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
	"sync/atomic"
	"unsafe"
)

// Allocator hands out aligned byte slices.
//
// Implementations must never return a non-nil slice together with an error,
// and must be safe for use from multiple goroutines.
type Allocator interface {
	// Allocate returns size bytes whose first byte sits at a multiple of
	// alignment. alignment must be a non-zero power of two.
	Allocate(size, alignment int) ([]byte, error)

	// Free returns b to the allocator. Free(nil) is a no-op.
	Free(b []byte)
}

// DefaultAllocator is used by Allocate, AllocateFloats and hwy/contrib/buffer
// when no allocator is given. It is a GoAllocator without a byte limit.
var DefaultAllocator Allocator = NewGoAllocator()

// GoAllocator allocates from the Go heap by over-allocating and slicing at
// the first aligned offset. The backing array stays reachable through the
// returned slice.
type GoAllocator struct {
	limit     int64
	allocated atomic.Int64
}

// GoAllocatorOption configures a GoAllocator.
type GoAllocatorOption func(*GoAllocator)

// WithLimit caps the number of live bytes the allocator will hand out.
// Requests that would exceed it fail with ErrOutOfMemory. A limit <= 0 means
// unlimited.
func WithLimit(bytes int64) GoAllocatorOption {
	return func(a *GoAllocator) {
		a.limit = bytes
	}
}

// NewGoAllocator creates a GoAllocator.
func NewGoAllocator(opts ...GoAllocatorOption) *GoAllocator {
	a := &GoAllocator{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Allocate implements Allocator. A zero size yields (nil, nil).
func (a *GoAllocator) Allocate(size, alignment int) ([]byte, error) {
	if !IsPowerOfTwo(alignment) {
		return nil, fmt.Errorf("%w: alignment %d is not a power of two", ErrInvalidParameter, alignment)
	}
	if size < 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrInvalidSize, size)
	}
	if size == 0 {
		return nil, nil
	}
	if size > math.MaxInt-alignment {
		return nil, fmt.Errorf("%w: %d bytes exceeds address space", ErrOutOfMemory, size)
	}
	if !a.reserve(int64(size)) {
		return nil, fmt.Errorf("%w: %d bytes requested, %d of %d in use", ErrOutOfMemory, size, a.allocated.Load(), a.limit)
	}

	raw, err := makeBytes(size + alignment - 1)
	if err != nil {
		a.allocated.Add(-int64(size))
		return nil, err
	}

	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw))) //nolint:gosec // unsafe is required for memory alignment
	mask := uintptr(alignment - 1)
	offset := int((uintptr(alignment) - addr&mask) & mask)
	return raw[offset : offset+size : offset+size], nil
}

// Free implements Allocator.
func (a *GoAllocator) Free(b []byte) {
	if b == nil {
		return
	}
	a.allocated.Add(-int64(cap(b)))
}

// Allocated reports the number of live bytes handed out and not yet freed.
func (a *GoAllocator) Allocated() int64 {
	return a.allocated.Load()
}

// Limit reports the configured byte limit (0 means unlimited).
func (a *GoAllocator) Limit() int64 {
	return a.limit
}

func (a *GoAllocator) reserve(n int64) bool {
	for {
		cur := a.allocated.Load()
		if a.limit > 0 && cur+n > a.limit {
			return false
		}
		if a.allocated.CompareAndSwap(cur, cur+n) {
			return true
		}
	}
}

// makeBytes turns the runtime's makeslice panic for impossible sizes into
// ErrOutOfMemory. Genuine heap exhaustion is fatal in Go and cannot be caught.
func makeBytes(n int) (b []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			b = nil
			err = fmt.Errorf("%w: %v", ErrOutOfMemory, r)
		}
	}()
	return make([]byte, n), nil
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
