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


package harness

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ajroetker/softintrin/hwy/contrib/workerpool"
	"github.com/ajroetker/softintrin/hwy/sse"
)

// ErrUnknownOp is returned when a key or filter matches no catalog entry.
var ErrUnknownOp = errors.New("unknown operation")

// Result is the outcome of running one operation over every window.
type Result struct {
	Op  *sse.Op
	Out [Windows]sse.Reg

	// Set by Bench only.
	Evals   int64
	Elapsed time.Duration
}

// PicosPerOp returns the average time of one evaluation in picoseconds, or
// 0 for a result that was not benchmarked.
func (r *Result) PicosPerOp() float64 {
	if r.Evals == 0 {
		return 0
	}
	return float64(r.Elapsed.Nanoseconds()) * 1000 / float64(r.Evals)
}

// Options control RunAll.
type Options struct {
	// Filter keeps operations whose name contains it. Empty keeps all.
	Filter string

	// MinDuration > 0 benchmarks each operation for at least that long.
	// Benchmarks run one at a time so they do not compete for cores.
	MinDuration time.Duration
}

// Find returns the catalog entry for key, as accepted by sse.Lookup.
func Find(key string) (*sse.Op, error) {
	op, ok := sse.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOp, key)
	}
	return op, nil
}

// Select returns the catalog entries whose name contains filter, in catalog
// order.
func Select(filter string) []*sse.Op {
	cat := sse.Catalog()
	var ops []*sse.Op
	for i := range cat {
		if strings.Contains(cat[i].Name, filter) {
			ops = append(ops, &cat[i])
		}
	}
	return ops
}

// Run evaluates op once per window.
func Run(op *sse.Op, in *[NumInputs]sse.Reg) Result {
	r := Result{Op: op}
	for i := range Windows {
		r.Out[i] = op.Eval(in[i], in[i+1], in[i+2])
	}
	return r
}

// Bench repeats Run until at least minDur has elapsed. The outputs are those of
// the last pass.
func Bench(op *sse.Op, in *[NumInputs]sse.Reg, minDur time.Duration) Result {
	r := Result{Op: op}
	start := time.Now()
	for {
		for i := range Windows {
			r.Out[i] = op.Eval(in[i], in[i+1], in[i+2])
		}
		r.Evals += Windows
		if r.Elapsed = time.Since(start); r.Elapsed >= minDur {
			return r
		}
	}
}

// RunAll runs every operation selected by opts.Filter and returns the
// results in catalog order. Validation runs are spread across pool; a nil
// pool runs them on the caller.
func RunAll(ctx context.Context, pool *workerpool.Pool, opts Options) ([]Result, error) {
	ops := Select(opts.Filter)
	if len(ops) == 0 {
		return nil, fmt.Errorf("%w: nothing matches %q", ErrUnknownOp, opts.Filter)
	}
	in := Inputs()
	results := make([]Result, len(ops))

	if opts.MinDuration > 0 || pool == nil {
		for i, op := range ops {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if opts.MinDuration > 0 {
				results[i] = Bench(op, &in, opts.MinDuration)
			} else {
				results[i] = Run(op, &in)
			}
		}
		return results, nil
	}

	err := pool.Each(ctx, len(ops), func(i int) error {
		results[i] = Run(ops[i], &in)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
