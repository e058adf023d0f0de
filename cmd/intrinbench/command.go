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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ajroetker/softintrin/hwy"
	"github.com/ajroetker/softintrin/hwy/contrib/workerpool"
	"github.com/ajroetker/softintrin/internal/golden"
	"github.com/ajroetker/softintrin/internal/harness"
)

// maxReported caps the mismatches printed per verification.
const maxReported = 50

// Command is one invocation of intrinbench.
type Command struct {
	Filter    string
	BenchMin  time.Duration
	List      bool
	GoldenDir string
	Capture   bool
	Verify    bool
	Workers   int

	Out io.Writer // results
	Log io.Writer // progress and summaries
}

func (c *Command) validate() error {
	if c.Capture && c.Verify {
		return errors.New("-capture and -verify are mutually exclusive")
	}
	if (c.Capture || c.Verify) && c.GoldenDir == "" {
		return errors.New("-capture and -verify need a -golden directory")
	}
	if (c.Capture || c.Verify) && c.BenchMin > 0 {
		return errors.New("-capture and -verify cannot be combined with -b or -B")
	}
	return nil
}

// Run executes the command.
func (c *Command) Run(ctx context.Context) error {
	if err := c.validate(); err != nil {
		return err
	}
	if c.List {
		return c.list()
	}

	fmt.Fprintf(c.Log, "host: %s, %d-byte registers\n", hwy.CurrentName(), hwy.CurrentWidth())

	pool := workerpool.New(c.Workers)
	defer pool.Close()

	results, err := harness.RunAll(ctx, pool, harness.Options{Filter: c.Filter, MinDuration: c.BenchMin})
	if err != nil {
		return err
	}

	switch {
	case c.Capture:
		return c.capture(results)
	case c.Verify:
		return c.verify(results)
	}
	return c.dump(results)
}

// RunToFile executes the command with its output written to path. The
// file is closed before returning and a failed close is reported.
func (c *Command) RunToFile(ctx context.Context, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	c.Out = f
	return c.Run(ctx)
}

func (c *Command) list() error {
	ops := harness.Select(c.Filter)
	if len(ops) == 0 {
		return fmt.Errorf("%w: nothing matches %q", harness.ErrUnknownOp, c.Filter)
	}
	for _, op := range ops {
		if _, err := fmt.Fprintf(c.Out, "%-40s %3d-bit  arity %d  %s\n", op.Key(), op.Width, op.Arity, op.Result); err != nil {
			return err
		}
	}
	return nil
}

func (c *Command) dump(results []harness.Result) error {
	in := harness.Inputs()
	for i := range results {
		var err error
		if c.BenchMin > 0 {
			err = harness.DumpBench(c.Out, &results[i])
		} else {
			err = harness.Dump(c.Out, &in, &results[i])
		}
		if err != nil {
			return fmt.Errorf("writing results: %w", err)
		}
	}
	return nil
}

func (c *Command) capture(results []harness.Result) error {
	store, err := golden.Open(c.GoldenDir)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Capture(results); err != nil {
		return err
	}
	fmt.Fprintf(c.Log, "captured %d references in %s\n", len(results), c.GoldenDir)
	return nil
}

func (c *Command) verify(results []harness.Result) error {
	store, err := golden.Open(c.GoldenDir)
	if err != nil {
		return err
	}
	defer store.Close()

	rep, err := store.Verify(results)
	if err != nil {
		return err
	}
	for i, m := range rep.Mismatches {
		if i == maxReported {
			fmt.Fprintf(c.Out, "... %d more\n", len(rep.Mismatches)-maxReported)
			break
		}
		fmt.Fprintln(c.Out, m)
	}
	for _, key := range rep.Missing {
		fmt.Fprintf(c.Out, "%s: no reference\n", key)
	}
	fmt.Fprintf(c.Log, "verified %d operations: %d mismatching words, %d without reference\n",
		rep.Checked, len(rep.Mismatches), len(rep.Missing))
	if !rep.OK() {
		return fmt.Errorf("verification failed against %s", c.GoldenDir)
	}
	return nil
}
