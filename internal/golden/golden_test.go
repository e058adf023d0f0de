package golden

import (
	"errors"
	"slices"
	"testing"

	"github.com/ajroetker/softintrin/internal/harness"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("OpenInMemory: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func runOps(t *testing.T, keys ...string) []harness.Result {
	t.Helper()
	in := harness.Inputs()
	var results []harness.Result
	for _, k := range keys {
		op, err := harness.Find(k)
		if err != nil {
			t.Fatal(err)
		}
		results = append(results, harness.Run(op, &in))
	}
	return results
}

func TestCaptureVerify(t *testing.T) {
	s := openTest(t)
	results := runOps(t, "_mm_div_ps", "_mm256_min_pd", "_mm_shuffle_epi32(0x36)")

	if err := s.Capture(results); err != nil {
		t.Fatalf("Capture: %v", err)
	}
	rep, err := s.Verify(results)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !rep.OK() || rep.Checked != 3 {
		t.Errorf("Verify: got checked %d missing %v mismatches %v, want 3 clean", rep.Checked, rep.Missing, rep.Mismatches)
	}

	keys, err := s.Keys()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"_mm256_min_pd", "_mm_div_ps", "_mm_shuffle_epi32(0x36)"}
	if !slices.Equal(keys, want) {
		t.Errorf("Keys: got %v, want %v", keys, want)
	}

	rec, err := s.Reference("_mm_div_ps")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Outputs) != harness.Windows*32 || rec.Host == "" {
		t.Errorf("Reference: got %d output bytes host %q", len(rec.Outputs), rec.Host)
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	s := openTest(t)
	results := runOps(t, "_mm_add_epi32")
	if err := s.Capture(results); err != nil {
		t.Fatal(err)
	}

	results[0].Out[3][0][4] ^= 0x01
	results[0].Out[5][1][15] ^= 0x80
	rep, err := s.Verify(results)
	if err != nil {
		t.Fatal(err)
	}
	if len(rep.Mismatches) != 2 {
		t.Fatalf("Verify: got %d mismatches, want 2: %v", len(rep.Mismatches), rep.Mismatches)
	}
	m := rep.Mismatches[0]
	if m.Window != 3 || m.Word != 1 || m.Got^m.Want != 0x01 {
		t.Errorf("first mismatch: got %v", m)
	}
	m = rep.Mismatches[1]
	if m.Window != 5 || m.Word != 7 || m.Got^m.Want != 0x80000000 {
		t.Errorf("second mismatch: got %v", m)
	}
}

func TestMissingReference(t *testing.T) {
	s := openTest(t)

	if _, err := s.Reference("_mm_add_ps"); !errors.Is(err, ErrNoReference) {
		t.Errorf("Reference: err = %v, want ErrNoReference", err)
	}
	rep, err := s.Verify(runOps(t, "_mm_add_ps"))
	if err != nil {
		t.Fatal(err)
	}
	if rep.OK() || !slices.Equal(rep.Missing, []string{"_mm_add_ps"}) {
		t.Errorf("Verify: got missing %v, want [_mm_add_ps]", rep.Missing)
	}
}

func TestOpenDir(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Capture(runOps(t, "_mm_sqrt_ps")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = Open(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	if _, err := s.Reference("_mm_sqrt_ps"); err != nil {
		t.Errorf("Reference after reopen: %v", err)
	}
}
