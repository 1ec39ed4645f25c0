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

import "errors"

// Status is the error code reported by fallible operations.
type Status uint8

const (
	// StatusOK indicates success.
	StatusOK Status = iota

	// StatusNullArgument indicates a required argument (buffer, pointer) was absent.
	StatusNullArgument

	// StatusInvalidSize indicates a negative or out-of-range element count.
	StatusInvalidSize

	// StatusMisaligned indicates a pointer violated its alignment precondition.
	StatusMisaligned

	// StatusOutOfMemory indicates the allocator could not satisfy a request.
	StatusOutOfMemory

	// StatusInvalidParameter indicates any other rejected argument, such as a
	// non power-of-two alignment.
	StatusInvalidParameter
)

var (
	// ErrNullArgument is returned when a required argument is nil.
	ErrNullArgument = errors.New("null argument")

	// ErrInvalidSize is returned for negative or out-of-range sizes.
	ErrInvalidSize = errors.New("invalid size")

	// ErrMisaligned is returned (or panicked with, when alignment checks are
	// enabled in hwy) for pointers that are not suitably aligned.
	ErrMisaligned = errors.New("misaligned argument")

	// ErrOutOfMemory is returned when an allocation cannot be satisfied.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrInvalidParameter is returned for other invalid arguments.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNullArgument:
		return "null-argument"
	case StatusInvalidSize:
		return "invalid-size"
	case StatusMisaligned:
		return "misaligned-argument"
	case StatusOutOfMemory:
		return "out-of-memory"
	case StatusInvalidParameter:
		return "invalid-parameter"
	default:
		return "unknown"
	}
}

// Err returns the sentinel error for s, or nil for StatusOK.
func (s Status) Err() error {
	switch s {
	case StatusOK:
		return nil
	case StatusNullArgument:
		return ErrNullArgument
	case StatusInvalidSize:
		return ErrInvalidSize
	case StatusMisaligned:
		return ErrMisaligned
	case StatusOutOfMemory:
		return ErrOutOfMemory
	default:
		return ErrInvalidParameter
	}
}

// StatusOf maps err to its Status. A nil error is StatusOK; errors outside
// the taxonomy map to StatusInvalidParameter.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrNullArgument):
		return StatusNullArgument
	case errors.Is(err, ErrInvalidSize):
		return StatusInvalidSize
	case errors.Is(err, ErrMisaligned):
		return StatusMisaligned
	case errors.Is(err, ErrOutOfMemory):
		return StatusOutOfMemory
	default:
		return StatusInvalidParameter
	}
}
