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


// Command kerncheck measures the accuracy of the approximate kernels on the
// current machine and exits non-zero if any of them exceeds its documented
// error bound.
//
// Usage:
//
//	kerncheck -n 100000 -seed 1
//	HWY_KERNELS=emulated kerncheck -v
//
// For every kernel it prints the largest relative error seen against the
// float64 math package and, where one exists, against a third-party fast
// approximation for comparison.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ajroetker/quadlane/hwy"
	"github.com/ajroetker/quadlane/internal/logging"
)

var (
	samples = flag.Int("n", 100000, "Number of random samples per kernel")
	seed    = flag.Uint64("seed", 1, "Random seed")
	verbose = flag.Bool("v", false, "Log dispatch and allocation details to stderr")
	logJSON = flag.Bool("log-json", false, "Log as JSON instead of text (implies -v)")
)

func main() {
	flag.Parse()

	if *samples <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -n must be positive\n\n")
		flag.Usage()
		os.Exit(2)
	}

	switch {
	case *logJSON:
		hwy.SetLogger(logging.NewJSON(slog.LevelDebug))
	case *verbose:
		hwy.SetLogger(logging.NewText(slog.LevelDebug))
	}

	ok, err := run(os.Stdout, config{samples: *samples, seed: *seed})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if !ok {
		os.Exit(1)
	}
}
