package sse

import (
	"math"
	"testing"

	"github.com/ajroetker/softintrin/hwy/neon"
)

var (
	nan32   = float32(math.NaN())
	nan64   = math.NaN()
	negZero = math.Copysign(0, -1)
	inf32   = float32(math.Inf(1))
)

func pattern128(seed byte) (v [16]byte) {
	for i := range v {
		v[i] = seed + byte(i)*37
	}
	return v
}

func TestCastRoundTrip(t *testing.T) {
	for seed := range byte(8) {
		bits := pattern128(seed * 29)
		ps, pd, si := M128(bits), M128d(bits), M128i(bits)

		if got := MmCastsi128Ps(MmCastpsSi128(ps)); got != ps {
			t.Errorf("castps_si128 round trip: got %x, want %x", got, ps)
		}
		if got := MmCastpsPd(MmCastpdPs(pd)); got != pd {
			t.Errorf("castpd_ps round trip: got %x, want %x", got, pd)
		}
		if got := MmCastsi128Pd(MmCastpdSi128(pd)); got != pd {
			t.Errorf("castpd_si128 round trip: got %x, want %x", got, pd)
		}
		if got := MmCastpsSi128(MmCastsi128Ps(si)); got != si {
			t.Errorf("castsi128_ps round trip: got %x, want %x", got, si)
		}

		wide := Mm256Castps128Ps256(ps)
		if wide.Hi() != (M128{}) {
			t.Errorf("castps128_ps256: upper half got %x, want zero", wide.Hi())
		}
		if got := Mm256Castps256Ps128(wide); got != ps {
			t.Errorf("castps256_ps128 round trip: got %x, want %x", got, ps)
		}

		w := M256{bits, pattern128(seed + 100)}
		if got := Mm256Castsi256Ps(Mm256CastpsSi256(w)); got != w {
			t.Errorf("castps_si256 round trip: got %x, want %x", got, w)
		}
	}
}

func TestPostprocessOrderedInputs(t *testing.T) {
	a := neon.V128(MmSetrPs(1, 4, 9, 2.5))
	b := neon.V128(MmSetrPs(3, -2, 0.5, 7))
	ad := neon.V128(MmSetrPd(16, 0.25))
	bd := neon.V128(MmSetrPd(-3, 8))

	tests := []struct {
		name string
		raw  neon.V128
		a, b neon.V128
		fix  Fixup
	}{
		{"sqrt_ps", neon.Fsqrt32(a), a, a, FixSqrtF32},
		{"sqrt_pd", neon.Fsqrt64(ad), ad, ad, FixSqrtF64},
		{"div_ps", neon.Fdiv32(a, b), a, b, FixDivF32},
		{"div_pd", neon.Fdiv64(ad, bd), ad, bd, FixDivF64},
		{"min_ps", neon.Fmin32(a, b), a, b, FixMinMaxF32},
		{"max_ps", neon.Fmax32(a, b), a, b, FixMinMaxF32},
		{"min_pd", neon.Fmin64(ad, bd), ad, bd, FixMinMaxF64},
		{"max_pd", neon.Fmax64(ad, bd), ad, bd, FixMinMaxF64},
	}
	for _, tt := range tests {
		if got := postprocess(tt.raw, tt.a, tt.b, tt.fix); got != tt.raw {
			t.Errorf("%s: corrected %x, want raw %x", tt.name, got, tt.raw)
		}
	}
}

func TestSqrtNegativeKeepsSign(t *testing.T) {
	r := MmSqrtPs(MmSetrPs(-4, 4, float32(negZero), float32(math.Inf(-1))))
	want := []uint32{0xFFC00000, math.Float32bits(2), 0x80000000, 0xFFC00000}
	for i, w := range want {
		if got := r.U32(i); got != w {
			t.Errorf("MmSqrtPs: lane %d: got %#08x, want %#08x", i, got, w)
		}
	}

	rd := MmSqrtPd(MmSetrPd(-4, 9))
	if got := rd.U64(0); got != 0xFFF8000000000000 {
		t.Errorf("MmSqrtPd: lane 0: got %#016x, want 0xfff8000000000000", got)
	}
	if got := rd.F64(1); got != 3 {
		t.Errorf("MmSqrtPd: lane 1: got %v, want 3", got)
	}

	rs := MmSqrtSs(MmSetrPs(-4, 5, 6, 7))
	if got := rs.U32(0); got != 0xFFC00000 {
		t.Errorf("MmSqrtSs: lane 0: got %#08x, want 0xffc00000", got)
	}
	for i := 1; i < 4; i++ {
		if got, want := rs.F32(i), float32(4+i); got != want {
			t.Errorf("MmSqrtSs: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestMinMaxSelectsSecondOperand(t *testing.T) {
	a := MmSetrPs(nan32, 1, float32(negZero), 5)
	b := MmSetrPs(2, nan32, 0, 3)

	mn := MmMinPs(a, b)
	mx := MmMaxPs(a, b)
	if got := mn.F32(0); got != 2 {
		t.Errorf("MmMinPs: lane 0: got %v, want 2", got)
	}
	if got := mx.F32(0); got != 2 {
		t.Errorf("MmMaxPs: lane 0: got %v, want 2", got)
	}
	if !math.IsNaN(float64(mn.F32(1))) || !math.IsNaN(float64(mx.F32(1))) {
		t.Errorf("NaN second operand: got min %v max %v, want NaN", mn.F32(1), mx.F32(1))
	}
	// -0 and +0 compare equal, so both return the +0 of b.
	if got := mn.U32(2); got != 0 {
		t.Errorf("MmMinPs: lane 2: got %#08x, want +0", got)
	}
	if got := mx.U32(2); got != 0 {
		t.Errorf("MmMaxPs: lane 2: got %#08x, want +0", got)
	}
	if mn.F32(3) != 3 || mx.F32(3) != 5 {
		t.Errorf("ordered lane: got min %v max %v, want 3 and 5", mn.F32(3), mx.F32(3))
	}

	d := MmMinPd(MmSetrPd(nan64, 0), MmSetrPd(2, negZero))
	if d.F64(0) != 2 {
		t.Errorf("MmMinPd: lane 0: got %v, want 2", d.F64(0))
	}
	if got := d.U64(1); got != 1<<63 {
		t.Errorf("MmMinPd: lane 1: got %#016x, want -0", got)
	}

	w := Mm256MaxPs(Mm256SetrPs(nan32, 1, 2, 3, 4, 5, 6, nan32), Mm256Set1Ps(2))
	if w.F32(0) != 2 || w.F32(7) != 2 {
		t.Errorf("Mm256MaxPs: got lanes 0 and 7 = %v, %v, want 2", w.F32(0), w.F32(7))
	}
}

func TestScalarOpsKeepUpperLanes(t *testing.T) {
	r := MmAddSs(MmSetrPs(1, 2, 3, 4), MmSetrPs(10, 20, 30, 40))
	want := []float32{11, 2, 3, 4}
	for i, w := range want {
		if got := r.F32(i); got != w {
			t.Errorf("MmAddSs: lane %d: got %v, want %v", i, got, w)
		}
	}

	rd := MmMulSd(MmSetrPd(3, 7), MmSetrPd(5, 11))
	if rd.F64(0) != 15 || rd.F64(1) != 7 {
		t.Errorf("MmMulSd: got (%v, %v), want (15, 7)", rd.F64(0), rd.F64(1))
	}

	rmin := MmMinSs(MmSetrPs(nan32, 2, 3, 4), MmSetrPs(1, 20, 30, 40))
	if rmin.F32(0) != 1 || rmin.F32(1) != 2 {
		t.Errorf("MmMinSs: got (%v, %v), want (1, 2)", rmin.F32(0), rmin.F32(1))
	}
}

func checkSplit1[W ~[2][16]byte, N ~[16]byte](t *testing.T, name string, wide func(W) W, narrow func(N) N, a W) {
	t.Helper()
	r := wide(a)
	for h := range 2 {
		if got, want := N(r[h]), narrow(N(a[h])); got != want {
			t.Errorf("%s: half %d: got %x, want %x", name, h, got, want)
		}
	}
}

func checkSplit2[W ~[2][16]byte, N ~[16]byte](t *testing.T, name string, wide func(W, W) W, narrow func(N, N) N, a, b W) {
	t.Helper()
	r := wide(a, b)
	for h := range 2 {
		if got, want := N(r[h]), narrow(N(a[h]), N(b[h])); got != want {
			t.Errorf("%s: half %d: got %x, want %x", name, h, got, want)
		}
	}
}

func TestWideMatchesHalves(t *testing.T) {
	ps1 := Mm256SetrPs(1, float32(negZero), nan32, 4, -2, 0, inf32, 3)
	ps2 := Mm256SetrPs(0, 0, 2, -4, 5, float32(negZero), -inf32, nan32)
	pd1 := M256d{MmSetrPd(0, nan64), MmSetrPd(-9, 2)}
	pd2 := M256d{MmSetrPd(negZero, 1), MmSetrPd(3, math.Inf(1))}
	si1 := M256i{pattern128(3), pattern128(200)}
	si2 := M256i{pattern128(77), pattern128(141)}

	checkSplit2(t, "add_ps", Mm256AddPs, MmAddPs, ps1, ps2)
	checkSplit2(t, "div_ps", Mm256DivPs, MmDivPs, ps1, ps2)
	checkSplit2(t, "min_ps", Mm256MinPs, MmMinPs, ps1, ps2)
	checkSplit2(t, "max_ps", Mm256MaxPs, MmMaxPs, ps1, ps2)
	checkSplit2(t, "and_ps", Mm256AndPs, MmAndPs, ps1, ps2)
	checkSplit1(t, "sqrt_ps", Mm256SqrtPs, MmSqrtPs, ps1)
	checkSplit2(t, "div_pd", Mm256DivPd, MmDivPd, pd1, pd2)
	checkSplit2(t, "min_pd", Mm256MinPd, MmMinPd, pd1, pd2)
	checkSplit1(t, "sqrt_pd", Mm256SqrtPd, MmSqrtPd, pd1)
	checkSplit2(t, "add_epi8", Mm256AddEpi8, MmAddEpi8, si1, si2)
	checkSplit2(t, "adds_epi16", Mm256AddsEpi16, MmAddsEpi16, si1, si2)
	checkSplit2(t, "subs_epu8", Mm256SubsEpu8, MmSubsEpu8, si1, si2)
	checkSplit2(t, "mullo_epi32", Mm256MulloEpi32, MmMulloEpi32, si1, si2)
	checkSplit2(t, "mulhi_epi16", Mm256MulhiEpi16, MmMulhiEpi16, si1, si2)
	checkSplit2(t, "hadd_epi16", Mm256HaddEpi16, MmHaddEpi16, si1, si2)
	checkSplit2(t, "cmpgt_epi32", Mm256CmpgtEpi32, MmCmpgtEpi32, si1, si2)
	checkSplit2(t, "packs_epi32", Mm256PacksEpi32, MmPacksEpi32, si1, si2)
	checkSplit2(t, "shuffle_epi8", Mm256ShuffleEpi8, MmShuffleEpi8, si1, si2)
	checkSplit2(t, "unpacklo_epi16", Mm256UnpackloEpi16, MmUnpackloEpi16, si1, si2)
	checkSplit1(t, "abs_epi8", Mm256AbsEpi8, MmAbsEpi8, si1)
}

func TestHaddEpi16Order(t *testing.T) {
	r := MmHaddEpi16(MmSetrEpi16(1, 2, 3, 4, 5, 6, 7, 8), MmSetrEpi16(10, 20, 30, 40, 50, 60, 70, 80))
	want := []int16{3, 7, 11, 15, 30, 70, 110, 150}
	for i, w := range want {
		if got := r.I16(i); got != w {
			t.Errorf("MmHaddEpi16: lane %d: got %v, want %v", i, got, w)
		}
	}

	hs := MmHaddsEpi16(MmSetrEpi16(math.MaxInt16, 1, 0, 0, 0, 0, 0, 0), MmSetzeroSi128())
	if got := hs.I16(0); got != math.MaxInt16 {
		t.Errorf("MmHaddsEpi16: lane 0: got %v, want %v", got, math.MaxInt16)
	}
	ps := MmHaddPs(MmSetrPs(1, 2, 3, 4), MmSetrPs(10, 20, 30, 40))
	for i, w := range []float32{3, 7, 30, 70} {
		if got := ps.F32(i); got != w {
			t.Errorf("MmHaddPs: lane %d: got %v, want %v", i, got, w)
		}
	}
	as := MmAddsubPs(MmSetrPs(1, 2, 3, 4), MmSetrPs(10, 20, 30, 40))
	for i, w := range []float32{-9, 22, -27, 44} {
		if got := as.F32(i); got != w {
			t.Errorf("MmAddsubPs: lane %d: got %v, want %v", i, got, w)
		}
	}
}

func TestDivZeroByNegZero(t *testing.T) {
	const (
		indefinite32 = 0xFFC00000
		indefinite64 = 0xFFF8000000000000
	)
	nz32 := float32(negZero)

	ps := MmDivPs(MmSetzeroPs(), MmSet1Ps(nz32))
	for i := range 4 {
		if got := ps.U32(i); got != indefinite32 {
			t.Errorf("MmDivPs: lane %d: got %#08x, want %#08x", i, got, uint32(indefinite32))
		}
	}
	pd := MmDivPd(MmSetzeroPd(), MmSet1Pd(negZero))
	for i := range 2 {
		if got := pd.U64(i); got != indefinite64 {
			t.Errorf("MmDivPd: lane %d: got %#016x, want %#016x", i, got, uint64(indefinite64))
		}
	}
	wps := Mm256DivPs(Mm256SetzeroPs(), Mm256Set1Ps(nz32))
	for i := range 8 {
		if got := wps.U32(i); got != indefinite32 {
			t.Errorf("Mm256DivPs: lane %d: got %#08x, want %#08x", i, got, uint32(indefinite32))
		}
	}
	wpd := Mm256DivPd(Mm256SetzeroPd(), Mm256Set1Pd(negZero))
	for i := range 4 {
		if got := wpd.U64(i); got != indefinite64 {
			t.Errorf("Mm256DivPd: lane %d: got %#016x, want %#016x", i, got, uint64(indefinite64))
		}
	}

	ss := MmDivSs(MmSetrPs(0, 1, 2, 3), MmSetrPs(nz32, 1, 1, 1))
	if got := ss.U32(0); got != indefinite32 {
		t.Errorf("MmDivSs: lane 0: got %#08x, want %#08x", got, uint32(indefinite32))
	}
	if ss.F32(3) != 3 {
		t.Errorf("MmDivSs: lane 3: got %v, want 3", ss.F32(3))
	}

	// Ordinary quotients keep their sign.
	q := MmDivPs(MmSetrPs(1, -1, 6, 1), MmSetrPs(2, 4, -3, float32(negZero)))
	for i, w := range []float32{0.5, -0.25, -2, float32(math.Inf(-1))} {
		if got := q.F32(i); got != w {
			t.Errorf("MmDivPs: lane %d: got %v, want %v", i, got, w)
		}
	}
}

func TestDivNaNOperandsPassThrough(t *testing.T) {
	qnan := math.Float32frombits(0x7FC00001)
	negQNaN := math.Float32frombits(0xFFC00005)
	r := MmDivPs(MmSetrPs(qnan, 1, 0, 6), MmSetrPs(1, negQNaN, 0, 3))
	for i, w := range []uint32{0x7FC00001, 0xFFC00005, 0xFFC00000, math.Float32bits(2)} {
		if got := r.U32(i); got != w {
			t.Errorf("MmDivPs: lane %d: got %#08x, want %#08x", i, got, w)
		}
	}

	pd := MmDivPd(MmSetrPd(1, 0), MmSetrPd(math.Float64frombits(0x7FF8000000000001), 0))
	for i, w := range []uint64{0x7FF8000000000001, 0xFFF8000000000000} {
		if got := pd.U64(i); got != w {
			t.Errorf("MmDivPd: lane %d: got %#016x, want %#016x", i, got, w)
		}
	}

	ss := MmDivSs(MmSetrPs(1, 1, 1, 1), MmSetrPs(math.Float32frombits(0x7FC00000), 1, 1, 1))
	if got := ss.U32(0); got != 0x7FC00000 {
		t.Errorf("MmDivSs: lane 0: got %#08x, want %#08x", got, 0x7FC00000)
	}
}

func TestMovemaskBitOrder(t *testing.T) {
	v := MmSetrEpi32(-1, 1, math.MinInt32, 0)
	if got := MmMovemaskPs(MmCastsi128Ps(v)); got != 0b0101 {
		t.Errorf("MmMovemaskPs: got %#b, want 0b0101", got)
	}
	if got := MmMovemaskPd(MmSetrPd(-1, 2)); got != 0b01 {
		t.Errorf("MmMovemaskPd: got %#b, want 0b01", got)
	}
	// Only the top byte of lane 2 carries a sign bit.
	if got := MmMovemaskEpi8(v); got != 0x080F {
		t.Errorf("MmMovemaskEpi8: got %#x, want 0x080f", got)
	}
	w := Mm256Castsi256Ps(M256i{v, MmSetrEpi32(0, 0, 0, -1)})
	if got := Mm256MovemaskPs(w); got != 0x85 {
		t.Errorf("Mm256MovemaskPs: got %#x, want 0x85", got)
	}
}

func TestConvertIndefinite(t *testing.T) {
	a := MmSetrPs(1.9, nan32, 3e9, -2.5)
	trunc := MmCvttpsEpi32(a)
	for i, w := range []int32{1, math.MinInt32, math.MinInt32, -2} {
		if got := trunc.I32(i); got != w {
			t.Errorf("MmCvttpsEpi32: lane %d: got %v, want %v", i, got, w)
		}
	}
	near := MmCvtpsEpi32(MmSetrPs(2.5, -(1 << 31), 2147483520, float32(math.Inf(-1))))
	for i, w := range []int32{2, math.MinInt32, 2147483520, math.MinInt32} {
		if got := near.I32(i); got != w {
			t.Errorf("MmCvtpsEpi32: lane %d: got %v, want %v", i, got, w)
		}
	}
	if got := MmCvttssSi32(MmSetrPs(-7.9, 0, 0, 0)); got != -7 {
		t.Errorf("MmCvttssSi32: got %v, want -7", got)
	}
}

func TestShiftCountsClamp(t *testing.T) {
	a := MmSetrEpi16(1, -2, 3, -4, 0x100, -0x100, 0x7FFF, -0x8000)
	shl3 := MmSllEpi16(a, MmSetEpi64x(0, 3))
	for i := range 8 {
		if got, want := shl3.I16(i), a.I16(i)<<3; got != want {
			t.Errorf("MmSllEpi16(3): lane %d: got %v, want %v", i, got, want)
		}
	}
	if got := MmSllEpi16(a, MmSetEpi64x(0, 16)); got != (M128i{}) {
		t.Errorf("MmSllEpi16(16): got %x, want zero", got)
	}
	// A count with any upper bit set is still out of range.
	if got := MmSrlEpi16(a, MmSetEpi64x(0, 1<<40)); got != (M128i{}) {
		t.Errorf("MmSrlEpi16(2^40): got %x, want zero", got)
	}
	sra := MmSraEpi16(a, MmSetEpi64x(0, 40))
	for i := range 8 {
		want := int16(0)
		if a.I16(i) < 0 {
			want = -1
		}
		if got := sra.I16(i); got != want {
			t.Errorf("MmSraEpi16(40): lane %d: got %v, want %v", i, got, want)
		}
	}

	v := MmSllvEpi32(MmSet1Epi32(1), MmSetrEpi32(0, 31, 32, -1))
	for i, w := range []int32{1, math.MinInt32, 0, 0} {
		if got := v.I32(i); got != w {
			t.Errorf("MmSllvEpi32: lane %d: got %v, want %v", i, got, w)
		}
	}
	if got := MmSraiEpi16(a, 200); got.I16(7) != -1 || got.I16(6) != 0 {
		t.Errorf("MmSraiEpi16(200): got lanes 6,7 = %v, %v, want 0, -1", got.I16(6), got.I16(7))
	}
}

func TestShuffleImmediates(t *testing.T) {
	a := MmSetrEpi32(1, 2, 3, 4)
	r := MmShuffleEpi32(a, 0x1B)
	for i, w := range []int32{4, 3, 2, 1} {
		if got := r.I32(i); got != w {
			t.Errorf("MmShuffleEpi32(0x1B): lane %d: got %v, want %v", i, got, w)
		}
	}

	ps := MmShufflePs(MmSetrPs(1, 2, 3, 4), MmSetrPs(10, 20, 30, 40), 0x4E)
	for i, w := range []float32{3, 4, 10, 20} {
		if got := ps.F32(i); got != w {
			t.Errorf("MmShufflePs(0x4E): lane %d: got %v, want %v", i, got, w)
		}
	}

	bl := MmBlendPs(MmSetrPs(1, 2, 3, 4), MmSetrPs(10, 20, 30, 40), 0x5)
	for i, w := range []float32{10, 2, 30, 4} {
		if got := bl.F32(i); got != w {
			t.Errorf("MmBlendPs(0x5): lane %d: got %v, want %v", i, got, w)
		}
	}

	al := MmAlignrEpi8(MmSet1Epi8(1), MmSet1Epi8(2), 4)
	for i := range 16 {
		want := int8(2)
		if i >= 12 {
			want = 1
		}
		if got := al.I8(i); got != want {
			t.Errorf("MmAlignrEpi8(4): lane %d: got %v, want %v", i, got, want)
		}
	}

	if got := MmExtractEpi16(MmSetrEpi16(0, 1, 2, 3, 4, 5, -6, 7), 6); got != 0xFFFA {
		t.Errorf("MmExtractEpi16(6): got %#x, want 0xfffa", got)
	}
}

func TestPermute2f128(t *testing.T) {
	a := M256d{MmSetrPd(1, 2), MmSetrPd(3, 4)}
	b := M256d{MmSetrPd(5, 6), MmSetrPd(7, 8)}

	tests := []struct {
		imm  int
		want [4]float64
	}{
		{0x20, [4]float64{1, 2, 5, 6}},
		{0x21, [4]float64{3, 4, 5, 6}},
		{0x31, [4]float64{3, 4, 7, 8}},
		{0x28, [4]float64{0, 0, 5, 6}},
		{0x83, [4]float64{7, 8, 0, 0}},
	}
	for _, tt := range tests {
		r := Mm256Permute2f128Pd(a, b, tt.imm)
		for i, w := range tt.want {
			if got := r.F64(i); got != w {
				t.Errorf("Mm256Permute2f128Pd(%#x): lane %d: got %v, want %v", tt.imm, i, got, w)
			}
		}
	}
}

func TestIntegerArithmetic(t *testing.T) {
	m := MmMulhrsEpi16(MmSetrEpi16(0x4000, -0x8000, 3, -3, 0, 0, 0, 0), MmSetrEpi16(0x4000, -0x8000, 0x4000, 0x4000, 0, 0, 0, 0))
	for i, w := range []int16{0x2000, -0x8000, 2, -1} {
		if got := m.I16(i); got != w {
			t.Errorf("MmMulhrsEpi16: lane %d: got %v, want %v", i, got, w)
		}
	}

	var seq M128i
	for i := range seq {
		seq[i] = byte(i)
	}
	sad := MmSadEpu8(MmSet1Epi8(5), seq)
	if sad.U64(0) != 18 || sad.U64(1) != 52 {
		t.Errorf("MmSadEpu8: got (%v, %v), want (18, 52)", sad.U64(0), sad.U64(1))
	}

	p := MmPacksEpi32(MmSetrEpi32(70000, -70000, 5, -5), MmSetrEpi32(math.MaxInt32, 0, 1, 2))
	for i, w := range []int16{math.MaxInt16, math.MinInt16, 5, -5, math.MaxInt16, 0, 1, 2} {
		if got := p.I16(i); got != w {
			t.Errorf("MmPacksEpi32: lane %d: got %v, want %v", i, got, w)
		}
	}

	dp := MmDpPs(MmSetrPs(1, 2, 3, 4), MmSet1Ps(1), 0xF1)
	for i, w := range []float32{10, 0, 0, 0} {
		if got := dp.F32(i); got != w {
			t.Errorf("MmDpPs(0xF1): lane %d: got %v, want %v", i, got, w)
		}
	}
}

func TestTestz(t *testing.T) {
	a := MmSetrEpi32(1, 0, 0, 0)
	b := MmSetrEpi32(2, 0, 0, 0)
	if got := MmTestzSi128(a, b); got != 1 {
		t.Errorf("MmTestzSi128: got %v, want 1", got)
	}
	if got := MmTestzSi128(a, a); got != 0 {
		t.Errorf("MmTestzSi128(a, a): got %v, want 0", got)
	}
	if got := MmTestcSi128(MmSet1Epi32(-1), a); got != 1 {
		t.Errorf("MmTestcSi128: got %v, want 1", got)
	}
}

func BenchmarkMmDivPs(b *testing.B) {
	x := MmSetrPs(1, 0, -3, 7)
	y := MmSetrPs(3, float32(negZero), 0.5, 2)
	for b.Loop() {
		x = MmDivPs(x, y)
	}
}

func BenchmarkMm256MinPs(b *testing.B) {
	x := Mm256SetrPs(1, nan32, 3, 4, 5, 6, 7, 8)
	y := Mm256Set1Ps(2)
	for b.Loop() {
		x = Mm256MinPs(x, y)
	}
}
