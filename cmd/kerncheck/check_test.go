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


package main

import (
	"bytes"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/quadlane/hwy"
)

func TestRunReportsEveryKernel(t *testing.T) {
	for _, kernels := range []hwy.Kernels{hwy.HardwareKernels(), hwy.EmulatedKernels()} {
		t.Run(kernels.Name, func(t *testing.T) {
			defer hwy.SetKernels(kernels)()

			var out bytes.Buffer
			ok, err := run(&out, config{samples: 5000, seed: 42})
			require.NoError(t, err)
			assert.True(t, ok, out.String())

			report := out.String()
			assert.Contains(t, report, "kernels: "+kernels.Name)
			for _, kernel := range []string{"ExpApprox", "SqrtApprox", "Dot"} {
				assert.Contains(t, report, kernel)
			}
			assert.NotContains(t, report, "FAIL")
		})
	}
}

func TestChecksWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, check := range []func(*rand.Rand, int) (result, error){checkExp, checkSqrt, checkDot} {
		r, err := check(rng, 3001)
		require.NoError(t, err)
		assert.True(t, r.ok(), "%s: %g > %g", r.kernel, r.maxRelErr, r.bound)
	}
}

func TestSampleBufferPadding(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	buf, err := sampleBuffer(rng, 5, 1, 2)
	require.NoError(t, err)
	defer buf.Release()

	data := buf.Data()
	require.Len(t, data, 8)
	for _, x := range data {
		assert.GreaterOrEqual(t, x, float32(1))
		assert.Less(t, x, float32(2))
	}
	assert.Equal(t, data[4], data[7])
}

func TestFailingResult(t *testing.T) {
	r := result{kernel: "x", maxRelErr: 2, bound: 1, thirdParty: math.NaN()}
	assert.False(t, r.ok())
	assert.Equal(t, 0.0, relErr(3, 3))
	assert.InDelta(t, 0.5, relErr(3, 2), 1e-12)
}
