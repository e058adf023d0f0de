package harness

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ajroetker/softintrin/hwy/contrib/workerpool"
	"github.com/ajroetker/softintrin/hwy/sse"
)

func TestInputs(t *testing.T) {
	in := Inputs()

	// Input 1: int32 group, halves in place.
	lo := sse.M128i(in[1][0])
	for i, w := range []uint32{1, 0, 0x379BDF15, 0xFFFFFFFF} {
		if got := lo.U32(i); got != w {
			t.Errorf("input 1: lane %d: got %#x, want %#x", i, got, w)
		}
	}
	// Input 2 swaps its halves: the i-based lanes sit in the upper half.
	if got := sse.M128i(in[2][1]).U32(0); got != 2 {
		t.Errorf("input 2: upper lane 0: got %v, want 2", got)
	}
	if got := sse.M128i(in[2][0]).U32(0); got != 0xFFFFFFFF/3 {
		t.Errorf("input 2: lower lane 0: got %#x, want %#x", got, uint32(0xFFFFFFFF/3))
	}
	// Input 9: float32 group.
	f, nine := sse.M128(in[9][0]), float32(9)
	for i, w := range []float32{9, 0, nine * -1.4142136, -9} {
		if got := f.F32(i); got != w {
			t.Errorf("input 9: lane %d: got %v, want %v", i, got, w)
		}
	}
	// Input 12: float64 group.
	twelve := 12.0
	if got := sse.M128d(in[12][1]).F64(1); got != twelve*3.14159 {
		t.Errorf("input 12: upper lane 1: got %v, want %v", got, twelve*3.14159)
	}
	if in != Inputs() {
		t.Error("Inputs is not deterministic")
	}
}

func TestRunWindows(t *testing.T) {
	op, err := Find("_mm_add_epi32")
	if err != nil {
		t.Fatal(err)
	}
	in := Inputs()
	r := Run(op, &in)
	for i := range Windows {
		a, b := sse.M128i(in[i][0]), sse.M128i(in[i+1][0])
		got := sse.M128i(r.Out[i][0])
		for l := range 4 {
			if want := a.U32(l) + b.U32(l); got.U32(l) != want {
				t.Errorf("window %d: lane %d: got %#x, want %#x", i, l, got.U32(l), want)
			}
		}
		if r.Out[i][1] != [16]byte{} {
			t.Errorf("window %d: upper half of a 128-bit result is not zero", i)
		}
	}
}

func TestFindUnknown(t *testing.T) {
	_, err := Find("_mm_frobnicate_ps")
	if !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Find: err = %v, want ErrUnknownOp", err)
	}
}

func TestRunAllMatchesRun(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	results, err := RunAll(context.Background(), pool, Options{Filter: "_mm256_"})
	if err != nil {
		t.Fatal(err)
	}
	ops := Select("_mm256_")
	if len(results) != len(ops) {
		t.Fatalf("RunAll: got %d results, want %d", len(results), len(ops))
	}
	in := Inputs()
	for i, r := range results {
		if r.Op != ops[i] {
			t.Fatalf("result %d: got op %s, want %s", i, r.Op.Key(), ops[i].Key())
		}
		if want := Run(ops[i], &in); r.Out != want.Out {
			t.Errorf("%s: parallel run differs from sequential run", r.Op.Key())
		}
	}

	if _, err := RunAll(context.Background(), pool, Options{Filter: "no_such_op"}); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("RunAll with empty selection: err = %v, want ErrUnknownOp", err)
	}
}

func TestRunAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := RunAll(ctx, nil, Options{Filter: "_mm_add"}); !errors.Is(err, context.Canceled) {
		t.Errorf("RunAll: err = %v, want context.Canceled", err)
	}
}

func TestBench(t *testing.T) {
	op, err := Find("_mm_div_ps")
	if err != nil {
		t.Fatal(err)
	}
	in := Inputs()
	r := Bench(op, &in, 2*time.Millisecond)
	if r.Elapsed < 2*time.Millisecond || r.Evals == 0 || r.Evals%Windows != 0 {
		t.Errorf("Bench: elapsed %v evals %d", r.Elapsed, r.Evals)
	}
	if r.PicosPerOp() <= 0 {
		t.Errorf("PicosPerOp: got %v, want > 0", r.PicosPerOp())
	}
	if r.Out != Run(op, &in).Out {
		t.Error("Bench outputs differ from Run outputs")
	}

	var buf bytes.Buffer
	if err := DumpBench(&buf, &r); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "_mm_div_ps ") || !strings.HasSuffix(buf.String(), " ps/op\n") {
		t.Errorf("DumpBench: got %q", buf.String())
	}
}

func TestDump(t *testing.T) {
	op, err := Find("_mm256_set1_ps")
	if err != nil {
		t.Fatal(err)
	}
	in := Inputs()
	binary.LittleEndian.PutUint32(in[0][0][:], math.Float32bits(1))
	r := Run(op, &in)

	var buf bytes.Buffer
	if err := Dump(&buf, &in, &r); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if lines[0] != "Results of _mm256_set1_ps" {
		t.Errorf("Dump header: got %q", lines[0])
	}
	if want := 1 + 5*Windows; len(lines) != want {
		t.Fatalf("Dump: got %d lines, want %d", len(lines), want)
	}
	if !strings.HasPrefix(lines[4], "O   0.8s:") {
		t.Errorf("Dump f32 row: got %q", lines[4])
	}
	if got := strings.Fields(lines[4]); len(got) != 10 || got[2] != "1" || got[9] != "1" {
		t.Errorf("Dump f32 row of set1(1): got %q", lines[4])
	}
	if got := strings.Fields(lines[5]); got[2] != "3F800000" {
		t.Errorf("Dump u32 row of set1(1): got %q", lines[5])
	}
}
