package hwy

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/ajroetker/quadlane/internal/logging"
)

// DispatchLevel represents the instruction set class detected at init.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Environment variables read once at init.
const (
	// EnvNoSimd forces the scalar dispatch level when set to a true value.
	EnvNoSimd = "HWY_NO_SIMD"

	// EnvKernels overrides the kernel set ("hardware" or "emulated").
	// Unknown values are ignored.
	EnvKernels = "HWY_KERNELS"

	// EnvCheckAlign enables the alignment precondition checks of
	// LoadAligned and StoreAligned.
	EnvCheckAlign = "HWY_CHECK_ALIGN"
)

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// currentName is the human-readable name of the current SIMD level.
// Set by init() in dispatch_*.go files.
var currentName string

// hasFMA records whether the CPU has a fused multiply-add instruction.
var hasFMA bool

var checkAlignment bool

// CurrentLevel returns the SIMD instruction set class detected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
// Vec4 is always 16 bytes; the width only classifies the target.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentName
}

// HasFMA reports whether the CPU provides fused multiply-add.
func HasFMA() bool {
	return hasFMA
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, the scalar level is used regardless of CPU capabilities.
func NoSimdEnv() bool {
	return envBool(EnvNoSimd)
}

// SetAlignmentChecks turns the LoadAligned/StoreAligned precondition checks
// on or off and returns a function restoring the previous setting.
func SetAlignmentChecks(on bool) (restore func()) {
	prev := checkAlignment
	checkAlignment = on
	return func() { checkAlignment = prev }
}

// SetLogger installs the logger used by every quadlane package and logs the
// dispatch decision to it at debug level. A nil logger discards output.
func SetLogger(l *slog.Logger) {
	logging.Set(l)
	logDispatch()
}

func envBool(name string) bool {
	val := os.Getenv(name)
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}

// finishInit picks the kernel set once the level is known. preferHardware
// reflects the detected capabilities; HWY_KERNELS overrides it.
func finishInit(preferHardware bool) {
	checkAlignment = envBool(EnvCheckAlign)

	active = emulatedKernels
	if preferHardware {
		active = hardwareKernels
	}
	if override := os.Getenv(EnvKernels); override != "" {
		if k, ok := ParseKernels(override); ok {
			active = k
		}
	}
}

func logDispatch() {
	logging.L().Debug("hwy dispatch",
		"level", currentName,
		"width", currentWidth,
		"fma", hasFMA,
		"kernels", active.Name,
		"check_align", checkAlignment,
	)
}
