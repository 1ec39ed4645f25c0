//go:build !amd64 && !arm64

package hwy

func init() {
	// Non-amd64/arm64 architectures run the scalar kernels. Go's float
	// division is exact IEEE everywhere, so the hardware set still applies.
	setScalarMode()
	finishInit(true)
}
