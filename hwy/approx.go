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

package hwy

import "math"

// Approximations of exp and sqrt. These are bounded-domain, reduced
// precision kernels for numeric inner loops; they are not substitutes for
// the math package.

const (
	// ExpClampLo and ExpClampHi bound the ExpApprox domain. Inputs are
	// clamped before evaluation so the result never overflows.
	ExpClampLo = -88
	ExpClampHi = 88

	// ExpMaxRelError is the documented relative error bound of ExpApprox
	// over [ExpClampLo, ExpClampHi].
	ExpMaxRelError = 1e-3

	// SqrtMaxRelError bounds the relative error of SqrtApprox and RSqrt for
	// positive normal inputs.
	SqrtMaxRelError = 1e-6

	// EstimateBits is the number of significant mantissa bits produced by
	// RcpEstimate and RSqrtEstimate, matching the x86 rcpps/rsqrtps
	// guarantee.
	EstimateBits = 12

	log2e float32 = 1.44269504088896341
	ln2Hi float32 = 0.693359375
	ln2Lo float32 = -2.12194440e-4

	// rsqrtRefinementSteps is fixed, as for division.
	rsqrtRefinementSteps = 2
)

// estimateMask clears the mantissa bits an estimate does not provide.
const estimateMask = ^uint32(1<<(23-(EstimateBits-1)) - 1)

// ExpApprox computes e^x per lane.
//
// The input is clamped to [-88, 88], split as x = n*ln2 + r with |r| <= ln2/2,
// and e^r is evaluated as the polynomial 1 + r + r²/2 + r³/6 + r⁴/24 with
// MulAdd (Horner form). The result is p(r) * 2^n. Relative error is below
// ExpMaxRelError (about 6e-5 in practice). NaN lanes clamp to -88.
func ExpApprox(v Vec4) Vec4 {
	x := Clamp(v, Set(ExpClampLo), Set(ExpClampHi))

	var nf, scale Vec4
	for i := range MaxLanes {
		n := float32(math.Floor(float64(x.lanes[i]*log2e) + 0.5))
		nf.lanes[i] = n
		scale.lanes[i] = pow2(int32(n))
	}

	// r = x - n*ln2, in two steps to keep the low bits of ln2.
	r := MulAdd(nf, Set(-ln2Hi), x)
	r = MulAdd(nf, Set(-ln2Lo), r)

	p := MulAdd(Set(1.0/24), r, Set(1.0/6))
	p = MulAdd(p, r, Set(0.5))
	p = MulAdd(p, r, oneVec)
	p = MulAdd(p, r, oneVec)
	return Mul(p, scale)
}

// pow2 returns 2^n for n in [-127, 127]. The power is built from two halves
// so that 2^-127 (subnormal) is still representable.
func pow2(n int32) float32 {
	h := n / 2
	return math.Float32frombits(uint32(h+127)<<23) * math.Float32frombits(uint32(n-h+127)<<23)
}

// RcpEstimate returns an approximation of 1/x per lane with EstimateBits
// significant bits, the precision a hardware reciprocal estimate provides.
func RcpEstimate(v Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = truncateEstimate(1 / v.lanes[i])
	}
	return r
}

// RSqrtEstimate returns an approximation of 1/sqrt(x) per lane with
// EstimateBits significant bits.
func RSqrtEstimate(v Vec4) Vec4 {
	var r Vec4
	for i := range MaxLanes {
		r.lanes[i] = truncateEstimate(float32(1 / math.Sqrt(float64(v.lanes[i]))))
	}
	return r
}

// RSqrt computes 1/sqrt(x) from RSqrtEstimate refined by exactly two
// Newton-Raphson steps y' = y * (1.5 - 0.5*x*y*y).
//
// Zero and negative inputs are outside the domain; the result for them is
// undefined (this implementation yields NaN).
func RSqrt(v Vec4) Vec4 {
	halfX := Mul(v, Set(0.5))
	threeHalves := Set(1.5)
	y := RSqrtEstimate(v)
	for range rsqrtRefinementSteps {
		// (halfX*y)*y keeps the intermediate in range for large and tiny x.
		y = Mul(y, Sub(threeHalves, Mul(Mul(halfX, y), y)))
	}
	return y
}

// SqrtApprox computes sqrt(x) as x * RSqrt(x).
//
// Behavior for zero and negative lanes is undefined and platform-dependent;
// it is not special-cased (this implementation yields NaN for both).
func SqrtApprox(v Vec4) Vec4 {
	return Mul(v, RSqrt(v))
}

func truncateEstimate(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) & estimateMask)
}
