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

//go:build amd64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check if SIMD is disabled via environment variable
	if NoSimdEnv() {
		setScalarMode()
		finishInit(true)
		return
	}

	detectCPUFeatures()

	// The wide class (AVX with FMA) gets fused multiply-add, exact division
	// and direct reductions; SSE-only CPUs use the emulated set.
	finishInit(cpu.X86.HasAVX && hasFMA)
}

func detectCPUFeatures() {
	// SSE2 is part of the x86-64 baseline.
	currentLevel = DispatchSSE2
	currentWidth = 16
	currentName = "sse2"

	if cpu.X86.HasAVX2 {
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	}
	if cpu.X86.HasAVX512F {
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	}

	hasFMA = cpu.X86.HasFMA
}
