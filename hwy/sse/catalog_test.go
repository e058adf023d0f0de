package sse

import (
	"slices"
	"testing"
)

func TestLookup(t *testing.T) {
	op, ok := Lookup("_mm_add_ps")
	if !ok {
		t.Fatal("Lookup(_mm_add_ps): not found")
	}
	if op.Arity != 2 || op.Width != 128 || op.Result != KindFloat32 || op.Imm != NoImm {
		t.Errorf("_mm_add_ps: got arity %d width %d result %v imm %d", op.Arity, op.Width, op.Result, op.Imm)
	}

	r := op.Eval(ret(MmSetrPs(1, 2, 3, 4)), ret(MmSetrPs(10, 20, 30, 40)), Reg{})
	sum := arg[M128](r)
	for i, w := range []float32{11, 22, 33, 44} {
		if got := sum.F32(i); got != w {
			t.Errorf("_mm_add_ps: lane %d: got %v, want %v", i, got, w)
		}
	}

	imm, ok := Lookup("_mm_shuffle_epi32(0x36)")
	if !ok || imm.Imm != 0x36 {
		t.Fatalf("Lookup(_mm_shuffle_epi32(0x36)): got %+v, %v", imm, ok)
	}
	if first, ok := Lookup("_mm_shuffle_epi32"); !ok || first.Imm != 0x00 {
		t.Errorf("Lookup(_mm_shuffle_epi32): got imm %d, want first registered 0x00", first.Imm)
	}
	if _, ok := Lookup("_mm_nonexistent_ps"); ok {
		t.Error("Lookup(_mm_nonexistent_ps): found, want missing")
	}

	wide, ok := Lookup("_mm256_min_pd")
	if !ok || wide.Width != 256 || wide.Result != KindFloat64 {
		t.Errorf("_mm256_min_pd: got %+v, %v", wide, ok)
	}
}

func TestCatalogKeys(t *testing.T) {
	ops := Catalog()
	if len(ops) < 500 {
		t.Errorf("Catalog: got %d entries, want at least 500", len(ops))
	}
	for i := range ops {
		o := &ops[i]
		if got, ok := Lookup(o.Key()); !ok || got != o {
			t.Errorf("Lookup(%s): does not return its own entry", o.Key())
		}
		if o.Arity < 0 || o.Arity > 3 {
			t.Errorf("%s: arity %d out of range", o.Key(), o.Arity)
		}
	}

	names := Names()
	if !slices.IsSorted(names) {
		t.Error("Names: not sorted")
	}
	if len(slices.Compact(slices.Clone(names))) != len(names) {
		t.Error("Names: duplicate names")
	}
}

func TestCatalogNarrowResults(t *testing.T) {
	a := Reg{pattern128(1), pattern128(2)}
	b := Reg{pattern128(3), pattern128(4)}
	c := Reg{pattern128(5), pattern128(6)}
	for _, o := range Catalog() {
		r := o.Eval(a, b, c)
		if o.Width == 128 && r[1] != [16]byte{} {
			t.Errorf("%s: 128-bit entry wrote the upper half: %x", o.Key(), r[1])
		}
	}
}

func TestCatalogLoadStore(t *testing.T) {
	load, _ := Lookup("_mm256_loadu_ps")
	store, _ := Lookup("_mm256_storeu_ps")
	in := ret(Mm256SetrPs(1, 2, 3, 4, 5, 6, 7, 8))
	if got := store.Eval(load.Eval(in, Reg{}, Reg{}), Reg{}, Reg{}); got != in {
		t.Errorf("loadu/storeu: got %x, want %x", got, in)
	}

	ss, _ := Lookup("_mm_load_ss")
	got := arg[M128](ss.Eval(in, Reg{}, Reg{}))
	for i, w := range []float32{1, 0, 0, 0} {
		if got.F32(i) != w {
			t.Errorf("_mm_load_ss: lane %d: got %v, want %v", i, got.F32(i), w)
		}
	}
}

func TestLaneKindString(t *testing.T) {
	for k, want := range map[LaneKind]string{KindInt: "int", KindFloat32: "f32", KindFloat64: "f64"} {
		if got := k.String(); got != want {
			t.Errorf("LaneKind(%d).String(): got %q, want %q", int(k), got, want)
		}
	}
}
