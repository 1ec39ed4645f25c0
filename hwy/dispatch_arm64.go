//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		finishInit(true)
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture, including fmla and fdiv.
	// We still check the cpu package for consistency.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
		currentName = "neon"
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
	hasFMA = true

	finishInit(true)
}
