package sse

import (
	"math"
	"testing"
)

func TestAndnotSwapsOperands(t *testing.T) {
	lo, hi := MmSet1Epi8(0x0F), MmSet1Epi8(-1)
	tests := []struct {
		name string
		got  M128i
		want uint8
	}{
		{"MmAndnotSi128(0x0F, 0xFF)", MmAndnotSi128(lo, hi), 0xF0},
		{"MmAndnotSi128(0xFF, 0x0F)", MmAndnotSi128(hi, lo), 0x00},
		{"MmAndnotPs(0x0F, 0xFF)", MmCastpsSi128(MmAndnotPs(MmCastsi128Ps(lo), MmCastsi128Ps(hi))), 0xF0},
		{"MmAndnotPd(0x0F, 0xFF)", MmCastpdSi128(MmAndnotPd(MmCastsi128Pd(lo), MmCastsi128Pd(hi))), 0xF0},
	}
	for _, tt := range tests {
		for i := range 16 {
			if got := tt.got.U8(i); got != tt.want {
				t.Errorf("%s: lane %d: got %#02x, want %#02x", tt.name, i, got, tt.want)
			}
		}
	}

	wide := Mm256AndnotSi256(M256i{lo, hi}, M256i{hi, hi})
	for i := range 32 {
		want := uint8(0xF0)
		if i >= 16 {
			want = 0
		}
		if got := wide.U8(i); got != want {
			t.Errorf("Mm256AndnotSi256: lane %d: got %#02x, want %#02x", i, got, want)
		}
	}

	// ~signbit & x is the absolute value idiom.
	abs := Mm256AndnotPs(Mm256Set1Ps(float32(negZero)), Mm256SetrPs(-1, 2, -3, 4, -5, 6, -7, 8))
	for i := range 8 {
		if got, want := abs.F32(i), float32(i+1); got != want {
			t.Errorf("Mm256AndnotPs: lane %d: got %v, want %v", i, got, want)
		}
	}
	absd := Mm256AndnotPd(Mm256Set1Pd(negZero), Mm256SetrPd(-1, 2, -3, 4))
	for i := range 4 {
		if got, want := absd.F64(i), float64(i+1); got != want {
			t.Errorf("Mm256AndnotPd: lane %d: got %v, want %v", i, got, want)
		}
	}
}

func TestCmpPredicates(t *testing.T) {
	// want is the result for (1, 2), (2, 2) and (NaN, 1).
	tests := []struct {
		pred int
		want [3]bool
	}{
		{CmpEqOQ, [3]bool{false, true, false}},
		{CmpLtOS, [3]bool{true, false, false}},
		{CmpLeOS, [3]bool{true, true, false}},
		{CmpUnordQ, [3]bool{false, false, true}},
		{CmpNeqUQ, [3]bool{true, false, true}},
		{CmpNltUS, [3]bool{false, true, true}},
		{CmpNleUS, [3]bool{false, false, true}},
		{CmpOrdQ, [3]bool{true, true, false}},
		{CmpEqUQ, [3]bool{false, true, true}},
		{CmpNgeUS, [3]bool{true, false, true}},
		{CmpNgtUS, [3]bool{true, true, true}},
		{CmpFalseOQ, [3]bool{false, false, false}},
		{CmpNeqOQ, [3]bool{true, false, false}},
		{CmpGeOS, [3]bool{false, true, false}},
		{CmpGtOS, [3]bool{false, false, false}},
		{CmpTrueUQ, [3]bool{true, true, true}},
	}
	a := MmSetrPs(1, 2, nan32, 0)
	b := MmSetrPs(2, 2, 1, 0)
	ad := [2]M128d{MmSetrPd(1, 2), MmSetrPd(nan64, 0)}
	bd := [2]M128d{MmSetrPd(2, 2), MmSetrPd(1, 0)}
	for _, tt := range tests {
		// Bit 4 only changes signalling, never the result.
		for _, pred := range []int{tt.pred, tt.pred | 0x10} {
			ps := MmCmpPs(a, b, pred)
			for i, w := range tt.want {
				want := uint32(0)
				if w {
					want = math.MaxUint32
				}
				if got := ps.U32(i); got != want {
					t.Errorf("MmCmpPs(%#x): lane %d: got %#08x, want %#08x", pred, i, got, want)
				}
			}
			for i, w := range tt.want {
				pd := MmCmpPd(ad[i/2], bd[i/2], pred)
				want := uint64(0)
				if w {
					want = math.MaxUint64
				}
				if got := pd.U64(i % 2); got != want {
					t.Errorf("MmCmpPd(%#x): row %d: got %#016x, want %#016x", pred, i, got, want)
				}
			}
		}
	}

	wide := Mm256CmpPs(Mm256SetrPs(1, 2, nan32, 0, 5, nan32, 7, 8), Mm256Set1Ps(2), CmpNltUS)
	for i, w := range []uint32{0, math.MaxUint32, math.MaxUint32, 0, math.MaxUint32, math.MaxUint32, math.MaxUint32, math.MaxUint32} {
		if got := wide.U32(i); got != w {
			t.Errorf("Mm256CmpPs(NLT_US): lane %d: got %#08x, want %#08x", i, got, w)
		}
	}

	if got := MmCmpneqPs(MmSet1Ps(nan32), MmSet1Ps(1)).U32(0); got != math.MaxUint32 {
		t.Errorf("MmCmpneqPs(NaN, 1): lane 0: got %#08x, want %#08x", got, uint32(math.MaxUint32))
	}
	if got := MmCmpeqPd(MmSet1Pd(nan64), MmSet1Pd(nan64)).U64(0); got != 0 {
		t.Errorf("MmCmpeqPd(NaN, NaN): lane 0: got %#016x, want 0", got)
	}
}
