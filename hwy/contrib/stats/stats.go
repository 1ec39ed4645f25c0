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


// Package stats computes summary statistics over float32 slices using the
// 4-lane kernels in package hwy.
//
// Sums are accumulated the same way as dot.Dot: each full 4-element chunk is
// reduced with the active kernel set and added to a running scalar from left
// to right, then the tail elements are added in index order.
package stats

import (
	"math"

	"github.com/ajroetker/quadlane/hwy"
)

// Sum returns the sum of data in the fixed chunk-then-tail order.
func Sum(data []float32) float32 {
	var sum float32
	i := 0
	for ; i+hwy.MaxLanes <= len(data); i += hwy.MaxLanes {
		sum += hwy.ReduceSum(hwy.Load(data[i:]))
	}
	for ; i < len(data); i++ {
		sum += data[i]
	}
	return sum
}

// Mean returns the arithmetic mean of data. It is only defined for
// non-empty input; an empty slice yields NaN.
func Mean(data []float32) float32 {
	return Sum(data) / float32(len(data))
}

// Variance returns the population variance of data around the caller's
// mean, the average of (x - mean)^2. The mean is not recomputed, so it must
// be consistent with data. An empty slice yields NaN.
func Variance(data []float32, mean float32) float32 {
	m := hwy.Set(mean)
	var sum float32
	i := 0
	for ; i+hwy.MaxLanes <= len(data); i += hwy.MaxLanes {
		d := hwy.Sub(hwy.Load(data[i:]), m)
		sum += hwy.ReduceSum(hwy.Mul(d, d))
	}
	for ; i < len(data); i++ {
		d := data[i] - mean
		sum += d * d
	}
	return sum / float32(len(data))
}

// MeanVariance returns the mean of data and the population variance around
// it.
func MeanVariance(data []float32) (mean, variance float32) {
	mean = Mean(data)
	return mean, Variance(data, mean)
}

// StdDev returns the population standard deviation of data around mean.
func StdDev(data []float32, mean float32) float32 {
	return float32(math.Sqrt(float64(Variance(data, mean))))
}
