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


// Package algo provides bulk operators over float32 slices built from the
// 4-lane kernels in package hwy.
//
// Each operator picks its path at runtime: when every slice involved starts
// on a 16-byte boundary it runs the aligned vector loop (16-element blocks,
// then 4-element blocks, then a scalar tail); otherwise it falls back to a
// slower element-wise path that produces the same result. Misalignment is
// never reported as an error.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/quadlane/hwy/contrib/algo"
//	    "github.com/ajroetker/quadlane/hwy/contrib/alloc"
//	)
//
//	src := alloc.AllocateFloats(1024)
//	dst := alloc.AllocateFloats(1024)
//	algo.Fill(src, 0.5)
//	algo.Copy(dst, src)
//	ok := algo.Compare(dst, src, 0)
package algo
