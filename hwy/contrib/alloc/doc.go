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

// Package alloc provides aligned memory allocation for SIMD kernels.
//
// Every lane-vector load in hwy assumes 16-byte alignment when the aligned
// variants are used, so buffers handed to the bulk operators in
// hwy/contrib/algo should come from this package:
//
//	buf := alloc.AllocateFloats(1024) // 16-byte aligned, nil on failure
//	defer alloc.ReleaseFloats(buf)
//
// Allocation failures are reported as an absent (nil) result by the
// convenience functions and as an error by the Allocator interface. The error
// taxonomy (ErrNullArgument, ErrInvalidSize, ErrMisaligned, ErrOutOfMemory,
// ErrInvalidParameter) is shared by all fallible operations in the module;
// StatusOf maps any of them, wrapped or not, back to a Status code.
//
// Memory is owned by the Go garbage collector. Release does not return
// memory to the OS; it settles the allocator's accounting so that byte limits
// (see WithLimit) behave like a real budget.
package alloc
