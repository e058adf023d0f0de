package sse

import "testing"

func checkF32s(t *testing.T, name string, v M256, want []float32) {
	t.Helper()
	for i, w := range want {
		if got := v.F32(i); got != w {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got, w)
		}
	}
}

func checkF64s(t *testing.T, name string, v M256d, want []float64) {
	t.Helper()
	for i, w := range want {
		if got := v.F64(i); got != w {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got, w)
		}
	}
}

func checkI32s(t *testing.T, name string, v M128i, want []int32) {
	t.Helper()
	for i, w := range want {
		if got := v.I32(i); got != w {
			t.Errorf("%s: lane %d: got %v, want %v", name, i, got, w)
		}
	}
}

func TestPermuteInLane(t *testing.T) {
	ps := Mm256SetrPs(1, 2, 3, 4, 5, 6, 7, 8)
	checkF32s(t, "Mm256PermutePs(0x1B)", Mm256PermutePs(ps, 0x1B), []float32{4, 3, 2, 1, 8, 7, 6, 5})
	checkF32s(t, "Mm256PermutePs(0x00)", Mm256PermutePs(ps, 0x00), []float32{1, 1, 1, 1, 5, 5, 5, 5})

	pd := Mm256SetrPd(1, 2, 3, 4)
	checkF64s(t, "Mm256PermutePd(0b0110)", Mm256PermutePd(pd, 0b0110), []float64{1, 2, 4, 3})
	checkF64s(t, "Mm256PermutePd(0b1001)", Mm256PermutePd(pd, 0b1001), []float64{2, 1, 3, 4})
	checkF64s(t, "Mm256PermutePd(0b1111)", Mm256PermutePd(pd, 0b1111), []float64{2, 2, 4, 4})

	idx := M256i{MmSetrEpi32(3, 2, 1, 0), MmSetrEpi32(4, 5, 6, 7)}
	checkF32s(t, "Mm256PermutevarPs", Mm256PermutevarPs(ps, idx), []float32{4, 3, 2, 1, 5, 6, 7, 8})
}

func TestPermuteAcrossHalves(t *testing.T) {
	pd := Mm256SetrPd(10, 20, 30, 40)
	checkF64s(t, "Mm256Permute4x64Pd(0x1B)", Mm256Permute4x64Pd(pd, 0x1B), []float64{40, 30, 20, 10})
	checkF64s(t, "Mm256Permute4x64Pd(0x4E)", Mm256Permute4x64Pd(pd, 0x4E), []float64{30, 40, 10, 20})
	checkF64s(t, "Mm256Permute4x64Pd(0xFF)", Mm256Permute4x64Pd(pd, 0xFF), []float64{40, 40, 40, 40})

	q := M256i{MmSetEpi64x(-2, 1), MmSetEpi64x(-4, 3)}
	r := Mm256Permute4x64Epi64(q, 0xD8)
	for i, w := range []int64{1, 3, -2, -4} {
		if got := M128i(r[i>>1]).I64(i & 1); got != w {
			t.Errorf("Mm256Permute4x64Epi64(0xD8): lane %d: got %v, want %v", i, got, w)
		}
	}

	a := Mm256SetrEpi32(0, 10, 20, 30, 40, 50, 60, 70)
	// Only the low three bits of each index count.
	idx := Mm256SetrEpi32(7, 6, 5, 4, 3, 2, 1, 8)
	v := Mm256Permutevar8x32Epi32(a, idx)
	for i, w := range []int32{70, 60, 50, 40, 30, 20, 10, 0} {
		if got := v.I32(i); got != w {
			t.Errorf("Mm256Permutevar8x32Epi32: lane %d: got %v, want %v", i, got, w)
		}
	}
	ps := Mm256SetrPs(1, 2, 3, 4, 5, 6, 7, 8)
	checkF32s(t, "Mm256Permutevar8x32Ps", Mm256Permutevar8x32Ps(ps, Mm256SetrEpi32(4, 0, 5, 1, 6, 2, 7, 3)),
		[]float32{5, 1, 6, 2, 7, 3, 8, 4})
}

func TestBroadcasts(t *testing.T) {
	src := MmSetrEpi32(0x04030201, 5, 6, 7)
	b := Mm256BroadcastbEpi8(src)
	for i := range 32 {
		if got := b.U8(i); got != 0x01 {
			t.Errorf("Mm256BroadcastbEpi8: lane %d: got %#02x, want 0x01", i, got)
		}
	}
	w := Mm256BroadcastwEpi16(src)
	for i := range 16 {
		if got := w.U16(i); got != 0x0201 {
			t.Errorf("Mm256BroadcastwEpi16: lane %d: got %#04x, want 0x0201", i, got)
		}
	}
	d := Mm256BroadcastdEpi32(src)
	for i := range 8 {
		if got := d.U32(i); got != 0x04030201 {
			t.Errorf("Mm256BroadcastdEpi32: lane %d: got %#08x, want 0x04030201", i, got)
		}
	}
	q := Mm256BroadcastqEpi64(src)
	for i := range 4 {
		if got := q.U64(i); got != 0x0000000504030201 {
			t.Errorf("Mm256BroadcastqEpi64: lane %d: got %#016x, want 0x0000000504030201", i, got)
		}
	}
	if got := Mm256Broadcastsi128Si256(src); got != (M256i{src, src}) {
		t.Errorf("Mm256Broadcastsi128Si256: got %x, want both halves %x", got, src)
	}

	checkF32s(t, "Mm256BroadcastssPs", Mm256BroadcastssPs(MmSetrPs(1.5, 2, 3, 4)),
		[]float32{1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5, 1.5})
	checkF64s(t, "Mm256BroadcastsdPd", Mm256BroadcastsdPd(MmSetrPd(-2.5, 9)), []float64{-2.5, -2.5, -2.5, -2.5})
}

func TestExtractInsert128(t *testing.T) {
	ps := Mm256SetrPs(1, 2, 3, 4, 5, 6, 7, 8)
	for _, tt := range []struct {
		imm  int
		want M128
	}{
		{0, MmSetrPs(1, 2, 3, 4)},
		{1, MmSetrPs(5, 6, 7, 8)},
		{3, MmSetrPs(5, 6, 7, 8)},
	} {
		if got := Mm256Extractf128Ps(ps, tt.imm); got != tt.want {
			t.Errorf("Mm256Extractf128Ps(%d): got %x, want %x", tt.imm, got, tt.want)
		}
	}

	checkF32s(t, "Mm256Insertf128Ps(0)", Mm256Insertf128Ps(ps, MmSetrPs(9, 10, 11, 12), 0),
		[]float32{9, 10, 11, 12, 5, 6, 7, 8})
	checkF32s(t, "Mm256Insertf128Ps(1)", Mm256Insertf128Ps(ps, MmSetrPs(9, 10, 11, 12), 1),
		[]float32{1, 2, 3, 4, 9, 10, 11, 12})
	checkF32s(t, "Mm256Insertf128Ps unchanged source", ps, []float32{1, 2, 3, 4, 5, 6, 7, 8})

	pd := Mm256SetrPd(1, 2, 3, 4)
	if got, want := Mm256Extractf128Pd(pd, 1), MmSetrPd(3, 4); got != want {
		t.Errorf("Mm256Extractf128Pd(1): got %x, want %x", got, want)
	}
	checkF64s(t, "Mm256Insertf128Pd(1)", Mm256Insertf128Pd(pd, MmSetrPd(7, 8), 1), []float64{1, 2, 7, 8})

	si := Mm256SetrEpi32(1, 2, 3, 4, 5, 6, 7, 8)
	checkI32s(t, "Mm256Extracti128Si256(1)", Mm256Extracti128Si256(si, 1), []int32{5, 6, 7, 8})
	ins := Mm256Inserti128Si256(si, MmSetrEpi32(-1, -2, -3, -4), 0)
	for i, w := range []int32{-1, -2, -3, -4, 5, 6, 7, 8} {
		if got := ins.I32(i); got != w {
			t.Errorf("Mm256Inserti128Si256(0): lane %d: got %v, want %v", i, got, w)
		}
	}
}

func TestWidthChangingConversions(t *testing.T) {
	checkF64s(t, "Mm256Cvtepi32Pd", Mm256Cvtepi32Pd(MmSetrEpi32(-1, 2, -3, 1<<30)),
		[]float64{-1, 2, -3, 1 << 30})

	f := MmSetrPs(1.5, -0.25, 3, 1024)
	wide := Mm256CvtpsPd(f)
	checkF64s(t, "Mm256CvtpsPd", wide, []float64{1.5, -0.25, 3, 1024})
	if got := Mm256CvtpdPs(wide); got != f {
		t.Errorf("Mm256CvtpdPs(Mm256CvtpsPd(x)): got %x, want %x", got, f)
	}

	d := Mm256SetrPd(1.5, -2.5, 3.7, -0.2)
	checkI32s(t, "Mm256CvtpdEpi32", Mm256CvtpdEpi32(d), []int32{2, -2, 4, 0})
	checkI32s(t, "Mm256CvttpdEpi32", Mm256CvttpdEpi32(d), []int32{1, -2, 3, 0})
	checkI32s(t, "Mm256CvttpdEpi32 out of range", Mm256CvttpdEpi32(Mm256SetrPd(3e9, -3e9, nan64, 1)),
		[]int32{-1 << 31, -1 << 31, -1 << 31, 1})
}
