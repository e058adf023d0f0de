package neon

import (
	"math"
	"testing"
)

func f32s(xs ...float32) (v V128) {
	for i, x := range xs {
		v.SetF32(i, x)
	}
	return v
}

func f64s(xs ...float64) (v V128) {
	for i, x := range xs {
		v.SetF64(i, x)
	}
	return v
}

func u32s(xs ...uint32) (v V128) {
	for i, x := range xs {
		v.SetU32(i, x)
	}
	return v
}

func u16s(xs ...uint16) (v V128) {
	for i, x := range xs {
		v.SetU16(i, x)
	}
	return v
}

func TestFdivDefaultNaN(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	r := Fdiv32(f32s(0, 0, float32(math.Inf(1)), 1), f32s(0, negZero, float32(math.Inf(-1)), 2))
	want := []uint32{DefaultNaN32, DefaultNaN32, DefaultNaN32, math.Float32bits(0.5)}
	for i, w := range want {
		if got := r.U32(i); got != w {
			t.Errorf("Fdiv32: lane %d: got %#08x, want %#08x", i, got, w)
		}
	}

	r = Fdiv64(f64s(0, 1), f64s(math.Copysign(0, -1), math.Copysign(0, -1)))
	if got := r.U64(0); got != DefaultNaN64 {
		t.Errorf("Fdiv64: lane 0: got %#x, want %#x", got, DefaultNaN64)
	}
	if got := r.F64(1); !math.IsInf(got, -1) {
		t.Errorf("Fdiv64: lane 1: got %v, want -Inf", got)
	}
}

func TestNaNPropagation(t *testing.T) {
	const (
		qnan = 0x7FC00001
		snan = 0xFF800002
	)
	tests := []struct {
		name string
		a, b uint32
		want uint32
	}{
		{"first quiet NaN", qnan, 0xFFC00005, qnan},
		{"second quiet NaN", math.Float32bits(1), qnan, qnan},
		{"signalling wins", qnan, snan, snan | quiet32},
		{"signalling first", snan, qnan, snan | quiet32},
	}
	for _, tt := range tests {
		r := Fadd32(u32s(tt.a), u32s(tt.b))
		if got := r.U32(0); got != tt.want {
			t.Errorf("Fadd32 %s: got %#08x, want %#08x", tt.name, got, tt.want)
		}
	}
}

func TestFminFmax(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	nan := math.Float32frombits(0x7FC00000)
	a := f32s(1, 0, nan, 5)
	b := f32s(2, negZero, 3, 5)

	mn := Fmin32(a, b)
	mx := Fmax32(a, b)
	wantMin := []uint32{math.Float32bits(1), math.Float32bits(negZero), 0x7FC00000, math.Float32bits(5)}
	wantMax := []uint32{math.Float32bits(2), 0, 0x7FC00000, math.Float32bits(5)}
	for i := range 4 {
		if got := mn.U32(i); got != wantMin[i] {
			t.Errorf("Fmin32: lane %d: got %#08x, want %#08x", i, got, wantMin[i])
		}
		if got := mx.U32(i); got != wantMax[i] {
			t.Errorf("Fmax32: lane %d: got %#08x, want %#08x", i, got, wantMax[i])
		}
	}
}

func TestFsqrt(t *testing.T) {
	negZero := float32(math.Copysign(0, -1))
	r := Fsqrt32(f32s(4, -4, negZero, float32(math.Inf(1))))
	want := []uint32{math.Float32bits(2), DefaultNaN32, math.Float32bits(negZero), 0x7F800000}
	for i, w := range want {
		if got := r.U32(i); got != w {
			t.Errorf("Fsqrt32: lane %d: got %#08x, want %#08x", i, got, w)
		}
	}
}

func TestFcvtzsSaturates(t *testing.T) {
	r := Fcvtzs32(f32s(3e9, -3e9, math.Float32frombits(0x7FC00000), -2.7))
	want := []int32{math.MaxInt32, math.MinInt32, 0, -2}
	for i, w := range want {
		if got := int32(r.U32(i)); got != w {
			t.Errorf("Fcvtzs32: lane %d: got %d, want %d", i, got, w)
		}
	}
	r = Fcvtns32(f32s(2.5, 3.5, -2.5, 0.4))
	want = []int32{2, 4, -2, 0}
	for i, w := range want {
		if got := int32(r.U32(i)); got != w {
			t.Errorf("Fcvtns32: lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestFcvtNaNPayload(t *testing.T) {
	r := Fcvtl(u32s(0xFF800001, math.Float32bits(1.5)))
	if got, want := r.U64(0), uint64(0xFFF8000020000000); got != want {
		t.Errorf("Fcvtl: lane 0: got %#x, want %#x", got, want)
	}
	if got := r.F64(1); got != 1.5 {
		t.Errorf("Fcvtl: lane 1: got %v, want 1.5", got)
	}
	n := Fcvtn(r)
	if got, want := n.U32(0), uint32(0xFFC00001); got != want {
		t.Errorf("Fcvtn: lane 0: got %#08x, want %#08x", got, want)
	}
	if n.U64(1) != 0 {
		t.Errorf("Fcvtn: upper half not cleared: %#x", n.U64(1))
	}
}

func TestSaturatingNarrow(t *testing.T) {
	a := u32s(70000, uint32(0xFFFF0000), 5, uint32(0xFFFFFFFF))
	s := Sqxtn32(a)
	wantS := []int16{32767, -32768, 5, -1}
	u := Sqxtun32(a)
	wantU := []uint16{65535, 0, 5, 0}
	for i := range 4 {
		if got := int16(s.U16(i)); got != wantS[i] {
			t.Errorf("Sqxtn32: lane %d: got %d, want %d", i, got, wantS[i])
		}
		if got := u.U16(i); got != wantU[i] {
			t.Errorf("Sqxtun32: lane %d: got %d, want %d", i, got, wantU[i])
		}
	}
	hi := Sqxtn32High(s, a)
	if hi.U64(0) != s.U64(0) {
		t.Errorf("Sqxtn32High: lower half changed")
	}
	if got := int16(hi.U16(4)); got != 32767 {
		t.Errorf("Sqxtn32High: lane 4: got %d, want 32767", got)
	}
}

func TestVectorShift(t *testing.T) {
	a := u32s(0x80000001, 0x80000001, 0x80000001, 0x80000001)
	counts := u32s(1, uint32(0xFF), 40, uint32(0xE0))
	u := Ushl32(a, counts)
	wantU := []uint32{0x00000002, 0x40000000, 0, 0}
	s := Sshl32(a, counts)
	wantS := []uint32{0x00000002, 0xC0000000, 0, 0xFFFFFFFF}
	for i := range 4 {
		if got := u.U32(i); got != wantU[i] {
			t.Errorf("Ushl32: lane %d: got %#08x, want %#08x", i, got, wantU[i])
		}
		if got := s.U32(i); got != wantS[i] {
			t.Errorf("Sshl32: lane %d: got %#08x, want %#08x", i, got, wantS[i])
		}
	}
}

func TestExtTbl(t *testing.T) {
	var a, b V128
	for i := range 16 {
		a[i] = byte(i)
		b[i] = byte(16 + i)
	}
	e := Ext(a, b, 3)
	for i := range 16 {
		if want := byte(3 + i); e[i] != want {
			t.Errorf("Ext: lane %d: got %d, want %d", i, e[i], want)
		}
	}
	idx := V128{15, 0, 16, 0x80, 1}
	r := Tbl(b, idx)
	want := V128{31, 16, 0, 0, 17}
	for i := 5; i < 16; i++ {
		want[i] = 16
	}
	if r != want {
		t.Errorf("Tbl: got %v, want %v", r, want)
	}
}

func TestPairwiseAndPermutes(t *testing.T) {
	a := u16s(1, 2, 3, 4, 5, 6, 7, 8)
	b := u16s(10, 20, 30, 40, 50, 60, 70, 80)
	r := Addp16(a, b)
	want := []uint16{3, 7, 11, 15, 30, 70, 110, 150}
	for i, w := range want {
		if got := r.U16(i); got != w {
			t.Errorf("Addp16: lane %d: got %d, want %d", i, got, w)
		}
	}
	z := ZipLo16(a, b)
	wantZ := []uint16{1, 10, 2, 20, 3, 30, 4, 40}
	for i, w := range wantZ {
		if got := z.U16(i); got != w {
			t.Errorf("ZipLo16: lane %d: got %d, want %d", i, got, w)
		}
	}
	o := UzpOdd16(a, b)
	wantO := []uint16{2, 4, 6, 8, 20, 40, 60, 80}
	for i, w := range wantO {
		if got := o.U16(i); got != w {
			t.Errorf("UzpOdd16: lane %d: got %d, want %d", i, got, w)
		}
	}
}

func TestBsl(t *testing.T) {
	m := u32s(0xFFFFFFFF, 0, 0x0000FFFF, 0)
	a := u32s(1, 2, 0x12345678, 4)
	b := u32s(5, 6, 0x9ABCDEF0, 8)
	r := Bsl(m, a, b)
	want := []uint32{1, 6, 0x9ABC5678, 8}
	for i, w := range want {
		if got := r.U32(i); got != w {
			t.Errorf("Bsl: lane %d: got %#x, want %#x", i, got, w)
		}
	}
}

func BenchmarkFdiv32(b *testing.B) {
	x := f32s(1, 2, 3, 4)
	y := f32s(5, 6, 7, 8)
	for b.Loop() {
		x = Fdiv32(x, y)
	}
}
