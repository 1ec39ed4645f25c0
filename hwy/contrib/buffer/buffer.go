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

// Package buffer provides a growable, 16-byte aligned float32 container.
//
// A Buffer owns its allocation exclusively and is not safe for concurrent
// use. Construction never fails loudly: check Cap after New.
//
//	b := buffer.New(256)
//	if b.Cap() == 0 {
//	    // allocation failed
//	}
//	defer b.Release()
package buffer

import (
	"fmt"

	"github.com/ajroetker/quadlane/hwy/contrib/alloc"
	"github.com/ajroetker/quadlane/internal/logging"
)

// Buffer is an aligned run of float32 values with a logical length (Len)
// no larger than its allocated capacity (Cap). Whenever the buffer holds an
// allocation, its first element sits on a 16-byte boundary.
type Buffer struct {
	// data spans the whole capacity; nil when no allocation is held.
	data  []float32
	size  int
	alloc alloc.Allocator
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithAllocator makes the buffer allocate from a instead of
// alloc.DefaultAllocator.
func WithAllocator(a alloc.Allocator) Option {
	return func(b *Buffer) {
		if a != nil {
			b.alloc = a
		}
	}
}

// New creates a buffer able to hold capacity elements with length 0.
// If the allocation fails (or capacity <= 0) the buffer has capacity 0 and
// no data.
func New(capacity int, opts ...Option) *Buffer {
	b := &Buffer{alloc: alloc.DefaultAllocator}
	for _, opt := range opts {
		opt(b)
	}
	if capacity <= 0 {
		return b
	}

	data, err := alloc.AllocateFloatsWith(b.alloc, capacity)
	if err != nil {
		logging.L().Warn("buffer allocation failed",
			"capacity", capacity,
			"error", err,
		)
		return b
	}
	b.data = data
	return b
}

// Len returns the number of logically valid elements.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.size
}

// Cap returns the number of elements the current allocation can hold.
func (b *Buffer) Cap() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Data returns the valid elements, b[0:Len()]. The slice aliases the buffer
// and is invalidated by Resize and Release.
func (b *Buffer) Data() []float32 {
	if b == nil || b.data == nil {
		return nil
	}
	return b.data[:b.size]
}

// Raw returns the whole allocation, b[0:Cap()].
func (b *Buffer) Raw() []float32 {
	if b == nil {
		return nil
	}
	return b.data
}

// SetLen sets the logical length. n must be within [0, Cap()].
func (b *Buffer) SetLen(n int) error {
	if b == nil {
		return fmt.Errorf("buffer: set length: %w", alloc.ErrNullArgument)
	}
	if n < 0 || n > len(b.data) {
		return fmt.Errorf("buffer: set length %d with capacity %d: %w", n, len(b.data), alloc.ErrInvalidSize)
	}
	b.size = n
	return nil
}

// Resize grows the capacity to newCapacity, preserving the first Len()
// elements. It never shrinks: newCapacity <= Cap() is a successful no-op.
// On allocation failure the buffer is left untouched and the returned error
// wraps alloc.ErrOutOfMemory (or the allocator's own error).
func (b *Buffer) Resize(newCapacity int) error {
	if b == nil {
		return fmt.Errorf("buffer: resize: %w", alloc.ErrNullArgument)
	}
	if newCapacity <= len(b.data) {
		return nil
	}

	data, err := alloc.AllocateFloatsWith(b.allocator(), newCapacity)
	if err != nil {
		logging.L().Warn("buffer resize failed",
			"capacity", len(b.data),
			"requested", newCapacity,
			"error", err,
		)
		return fmt.Errorf("buffer: resize %d -> %d: %w", len(b.data), newCapacity, err)
	}

	copy(data, b.data[:b.size])
	alloc.FreeFloatsWith(b.allocator(), b.data)
	b.data = data
	return nil
}

// Clear zeroes the entire capacity, not just the valid elements, and resets
// the length to 0. Clear on a nil buffer or an empty allocation is a no-op.
func (b *Buffer) Clear() {
	if b == nil || b.data == nil {
		return
	}
	clear(b.data)
	b.size = 0
}

// Append adds vals after the last valid element, doubling the capacity as
// needed.
func (b *Buffer) Append(vals ...float32) error {
	if b == nil {
		return fmt.Errorf("buffer: append: %w", alloc.ErrNullArgument)
	}
	need := b.size + len(vals)
	if need > len(b.data) {
		if err := b.Resize(max(need, 2*len(b.data), 4)); err != nil {
			return err
		}
	}
	copy(b.data[b.size:need], vals)
	b.size = need
	return nil
}

// Release frees the allocation and resets length and capacity to 0. The
// buffer can be reused with Resize afterwards. Releasing a nil or already
// released buffer is a no-op.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	if b.data != nil {
		alloc.FreeFloatsWith(b.allocator(), b.data)
	}
	b.data = nil
	b.size = 0
}

func (b *Buffer) allocator() alloc.Allocator {
	if b.alloc == nil {
		return alloc.DefaultAllocator
	}
	return b.alloc
}
