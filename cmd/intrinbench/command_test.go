package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ajroetker/softintrin/internal/harness"
)

func newCommand(out *bytes.Buffer) *Command {
	return &Command{Workers: 2, Out: out, Log: io.Discard}
}

func TestList(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.List = true
	cmd.Filter = "_mm_shuffle_epi32"
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Errorf("list: got %d lines, want 6 immediates:\n%s", len(lines), out.String())
	}
	if !strings.HasPrefix(lines[1], "_mm_shuffle_epi32(0x36)") {
		t.Errorf("list: line 1 = %q", lines[1])
	}
}

func TestListUnknown(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.List = true
	cmd.Filter = "_mm_nothing_here"
	if err := cmd.Run(context.Background()); !errors.Is(err, harness.ErrUnknownOp) {
		t.Errorf("list: err = %v, want ErrUnknownOp", err)
	}
}

func TestDumpOutput(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.Filter = "_mm_div_ss"
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out.String(), "Results of _mm_div_ss\n") {
		t.Errorf("dump: got %q", out.String()[:min(60, out.Len())])
	}
}

func TestBenchOutput(t *testing.T) {
	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.Filter = "_mm_add_ps"
	cmd.BenchMin = time.Millisecond
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), " ps/op") {
		t.Errorf("bench: got %q", out.String())
	}
}

func TestCaptureThenVerify(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "ref")

	var out bytes.Buffer
	cmd := newCommand(&out)
	cmd.Filter = "_mm256_hadd"
	cmd.GoldenDir = dir
	cmd.Capture = true
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("capture: %v", err)
	}

	cmd.Capture, cmd.Verify = false, true
	if err := cmd.Run(context.Background()); err != nil {
		t.Fatalf("verify: %v\n%s", err, out.String())
	}

	// Operations captured under another filter have no reference.
	out.Reset()
	cmd.Filter = "_mm256_hsub"
	if err := cmd.Run(context.Background()); err == nil {
		t.Error("verify without references: got nil error")
	}
	if !strings.Contains(out.String(), "no reference") {
		t.Errorf("verify: got %q, want missing references listed", out.String())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
	}{
		{"capture and verify", Command{Capture: true, Verify: true, GoldenDir: "x"}},
		{"capture without dir", Command{Capture: true}},
		{"verify with bench", Command{Verify: true, GoldenDir: "x", BenchMin: time.Second}},
	}
	for _, tt := range tests {
		if err := tt.cmd.validate(); err == nil {
			t.Errorf("%s: got nil error", tt.name)
		}
	}
}

func TestRunToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "div.txt")
	cmd := newCommand(nil)
	cmd.Filter = "_mm_div_ss"
	if err := cmd.RunToFile(context.Background(), path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "Results of _mm_div_ss\n") {
		t.Errorf("RunToFile: got %q", data[:min(60, len(data))])
	}

	bad := newCommand(nil)
	bad.Filter = "_mm_nothing_here"
	err = bad.RunToFile(context.Background(), filepath.Join(t.TempDir(), "none.txt"))
	if !errors.Is(err, harness.ErrUnknownOp) {
		t.Errorf("RunToFile unknown filter: err = %v, want ErrUnknownOp", err)
	}
	if err := cmd.RunToFile(context.Background(), filepath.Join(t.TempDir(), "missing", "x.txt")); err == nil {
		t.Error("RunToFile into a missing directory: got nil error")
	}
}
