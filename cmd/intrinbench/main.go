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


// Command intrinbench validates and micro-benchmarks the soft intrinsics.
//
// Usage:
//
//	intrinbench                          # dump results of every operation
//	intrinbench -f _mm256_div            # only operations whose name contains the filter
//	intrinbench -b                       # time each operation for at least 150ms
//	intrinbench -list -f hadd            # list matching catalog entries
//	intrinbench -golden ref -capture     # store the outputs as references
//	intrinbench -golden ref -verify      # compare the outputs with stored references
//
// Dumps print the operands and outputs of each of the 14 operand windows in
// the same layout as a native x86 run of the reference harness, so the two
// outputs can be diffed. Defaults for -f, -golden and -j may be set with
// SOFTINTRIN_FILTER, SOFTINTRIN_GOLDEN and SOFTINTRIN_WORKERS.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xyproto/env/v2"
)

var (
	filter    = flag.String("f", env.Str("SOFTINTRIN_FILTER"), "Only run operations whose name contains this string")
	benchLow  = flag.Bool("b", false, "Benchmark each operation for at least 150ms")
	benchHigh = flag.Bool("B", false, "Benchmark each operation for at least 500ms (more precise)")
	list      = flag.Bool("list", false, "List matching catalog entries and exit")
	output    = flag.String("o", "", "Write results to this file instead of stdout")
	goldenDir = flag.String("golden", env.Str("SOFTINTRIN_GOLDEN"), "Reference store directory")
	capture   = flag.Bool("capture", false, "Store the outputs in -golden as references")
	verify    = flag.Bool("verify", false, "Compare the outputs with the references in -golden")
	workers   = flag.Int("j", env.Int("SOFTINTRIN_WORKERS", 0), "Worker goroutines for validation runs (0 = GOMAXPROCS)")
)

func main() {
	flag.Parse()

	cmd := &Command{
		Filter:    *filter,
		List:      *list,
		GoldenDir: *goldenDir,
		Capture:   *capture,
		Verify:    *verify,
		Workers:   *workers,
		Out:       os.Stdout,
		Log:       os.Stderr,
	}
	switch {
	case *benchHigh:
		cmd.BenchMin = 500 * time.Millisecond
	case *benchLow:
		cmd.BenchMin = 150 * time.Millisecond
	}

	run := cmd.Run
	if *output != "" {
		run = func(ctx context.Context) error { return cmd.RunToFile(ctx, *output) }
	}
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
