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

package sse

import "github.com/ajroetker/softintrin/hwy/neon"

// ===== Packed arithmetic =====

// MmAddPs is _mm_add_ps.
func MmAddPs(a, b M128) M128 { return op2[M128](a, b, neon.Fadd32, 0) }

// MmAddPd is _mm_add_pd.
func MmAddPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fadd64, 0) }

// MmSubPs is _mm_sub_ps.
func MmSubPs(a, b M128) M128 { return op2[M128](a, b, neon.Fsub32, 0) }

// MmSubPd is _mm_sub_pd.
func MmSubPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fsub64, 0) }

// MmMulPs is _mm_mul_ps.
func MmMulPs(a, b M128) M128 { return op2[M128](a, b, neon.Fmul32, 0) }

// MmMulPd is _mm_mul_pd.
func MmMulPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fmul64, 0) }

// MmDivPs is _mm_div_ps. 0/0 and Inf/Inf give the indefinite NaN 0xFFC00000.
func MmDivPs(a, b M128) M128 { return op2[M128](a, b, neon.Fdiv32, FixDivF32) }

// MmDivPd is _mm_div_pd.
func MmDivPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fdiv64, FixDivF64) }

// MmMinPs is _mm_min_ps: a < b ? a : b, so a NaN in either operand and the
// pair (-0, +0) both return b.
func MmMinPs(a, b M128) M128 { return op2[M128](a, b, neon.Fmin32, FixMinMaxF32) }

// MmMinPd is _mm_min_pd.
func MmMinPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fmin64, FixMinMaxF64) }

// MmMaxPs is _mm_max_ps: a > b ? a : b.
func MmMaxPs(a, b M128) M128 { return op2[M128](a, b, neon.Fmax32, FixMinMaxF32) }

// MmMaxPd is _mm_max_pd.
func MmMaxPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fmax64, FixMinMaxF64) }

// MmSqrtPs is _mm_sqrt_ps. The root of a negative number is the indefinite
// NaN and -0 stays -0.
func MmSqrtPs(a M128) M128 { return op1[M128](a, neon.Fsqrt32, FixSqrtF32) }

// MmSqrtPd is _mm_sqrt_pd.
func MmSqrtPd(a M128d) M128d { return op1[M128d](a, neon.Fsqrt64, FixSqrtF64) }

// ===== Scalar forms: lane 0 computed, upper lanes from a =====

// MmAddSs is _mm_add_ss.
func MmAddSs(a, b M128) M128 { return op2[M128](a, b, neon.Fadd32, FixScalarF32) }

// MmAddSd is _mm_add_sd.
func MmAddSd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fadd64, FixScalarF64) }

// MmSubSs is _mm_sub_ss.
func MmSubSs(a, b M128) M128 { return op2[M128](a, b, neon.Fsub32, FixScalarF32) }

// MmSubSd is _mm_sub_sd.
func MmSubSd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fsub64, FixScalarF64) }

// MmMulSs is _mm_mul_ss.
func MmMulSs(a, b M128) M128 { return op2[M128](a, b, neon.Fmul32, FixScalarF32) }

// MmMulSd is _mm_mul_sd.
func MmMulSd(a, b M128d) M128d { return op2[M128d](a, b, neon.Fmul64, FixScalarF64) }

// MmDivSs is _mm_div_ss.
func MmDivSs(a, b M128) M128 {
	return op2[M128](a, b, neon.Fdiv32, FixDivF32|FixScalarF32)
}

// MmDivSd is _mm_div_sd.
func MmDivSd(a, b M128d) M128d {
	return op2[M128d](a, b, neon.Fdiv64, FixDivF64|FixScalarF64)
}

// MmMinSs is _mm_min_ss.
func MmMinSs(a, b M128) M128 {
	return op2[M128](a, b, neon.Fmin32, FixMinMaxF32|FixScalarF32)
}

// MmMinSd is _mm_min_sd.
func MmMinSd(a, b M128d) M128d {
	return op2[M128d](a, b, neon.Fmin64, FixMinMaxF64|FixScalarF64)
}

// MmMaxSs is _mm_max_ss.
func MmMaxSs(a, b M128) M128 {
	return op2[M128](a, b, neon.Fmax32, FixMinMaxF32|FixScalarF32)
}

// MmMaxSd is _mm_max_sd.
func MmMaxSd(a, b M128d) M128d {
	return op2[M128d](a, b, neon.Fmax64, FixMinMaxF64|FixScalarF64)
}

// MmSqrtSs is _mm_sqrt_ss.
func MmSqrtSs(a M128) M128 { return op1[M128](a, neon.Fsqrt32, FixSqrtF32|FixScalarF32) }

// MmSqrtSd is _mm_sqrt_sd: sqrt of b's lower lane, upper lane from a.
func MmSqrtSd(a, b M128d) M128d {
	r := op1[M128d](b, neon.Fsqrt64, FixSqrtF64)
	return op2[M128d](a, r, func(_, y neon.V128) neon.V128 { return y }, FixScalarF64)
}

// ===== Rounding =====

// Rounding-control bits of the round immediate.
const (
	MmFroundToNearestInt = 0x00
	MmFroundToNegInf     = 0x01
	MmFroundToPosInf     = 0x02
	MmFroundToZero       = 0x03
	MmFroundCurDirection = 0x04
	MmFroundNoExc        = 0x08
)

// roundingOf maps the immediate to a FRINT mode. MXCSR is never changed by
// this package, so the current direction is round to nearest.
func roundingOf(imm int) neon.Rounding {
	if imm&MmFroundCurDirection != 0 {
		return neon.RoundNearest
	}
	return [...]neon.Rounding{
		neon.RoundNearest, neon.RoundFloor, neon.RoundCeil, neon.RoundZero,
	}[imm&3]
}

// MmRoundPs is _mm_round_ps.
func MmRoundPs(a M128, imm int) M128 {
	m := roundingOf(imm)
	return op1[M128](a, func(x neon.V128) neon.V128 { return neon.Frint32(x, m) }, 0)
}

// MmRoundPd is _mm_round_pd.
func MmRoundPd(a M128d, imm int) M128d {
	m := roundingOf(imm)
	return op1[M128d](a, func(x neon.V128) neon.V128 { return neon.Frint64(x, m) }, 0)
}

// MmFloorPs is _mm_floor_ps.
func MmFloorPs(a M128) M128 { return MmRoundPs(a, MmFroundToNegInf) }

// MmFloorPd is _mm_floor_pd.
func MmFloorPd(a M128d) M128d { return MmRoundPd(a, MmFroundToNegInf) }

// MmCeilPs is _mm_ceil_ps.
func MmCeilPs(a M128) M128 { return MmRoundPs(a, MmFroundToPosInf) }

// MmCeilPd is _mm_ceil_pd.
func MmCeilPd(a M128d) M128d { return MmRoundPd(a, MmFroundToPosInf) }

// ===== Horizontal and alternating =====

func hsubF32(a, b neon.V128) neon.V128 {
	return neon.Fsub32(neon.UzpEven32(a, b), neon.UzpOdd32(a, b))
}

func hsubF64(a, b neon.V128) neon.V128 {
	return neon.Fsub64(neon.ZipLo64(a, b), neon.ZipHi64(a, b))
}

var (
	oddLanes32 = neon.V128{4: 0xFF, 5: 0xFF, 6: 0xFF, 7: 0xFF, 12: 0xFF, 13: 0xFF, 14: 0xFF, 15: 0xFF}
	oddLanes64 = neon.V128{8: 0xFF, 9: 0xFF, 10: 0xFF, 11: 0xFF, 12: 0xFF, 13: 0xFF, 14: 0xFF, 15: 0xFF}
)

func addsubF32(a, b neon.V128) neon.V128 {
	return neon.Bsl(oddLanes32, neon.Fadd32(a, b), neon.Fsub32(a, b))
}

func addsubF64(a, b neon.V128) neon.V128 {
	return neon.Bsl(oddLanes64, neon.Fadd64(a, b), neon.Fsub64(a, b))
}

// MmHaddPs is _mm_hadd_ps: (a0+a1, a2+a3, b0+b1, b2+b3).
func MmHaddPs(a, b M128) M128 { return op2[M128](a, b, neon.Faddp32, 0) }

// MmHaddPd is _mm_hadd_pd.
func MmHaddPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Faddp64, 0) }

// MmHsubPs is _mm_hsub_ps: (a0-a1, a2-a3, b0-b1, b2-b3).
func MmHsubPs(a, b M128) M128 { return op2[M128](a, b, hsubF32, 0) }

// MmHsubPd is _mm_hsub_pd.
func MmHsubPd(a, b M128d) M128d { return op2[M128d](a, b, hsubF64, 0) }

// MmAddsubPs is _mm_addsub_ps: even lanes subtract, odd lanes add.
func MmAddsubPs(a, b M128) M128 { return op2[M128](a, b, addsubF32, 0) }

// MmAddsubPd is _mm_addsub_pd.
func MmAddsubPd(a, b M128d) M128d { return op2[M128d](a, b, addsubF64, 0) }

// ===== Dot product =====

func dpF32(imm int) native2 {
	var in, out neon.V128
	for i := range 4 {
		if imm&(0x10<<i) != 0 {
			in.SetU32(i, ^uint32(0))
		}
		if imm&(1<<i) != 0 {
			out.SetU32(i, ^uint32(0))
		}
	}
	return func(a, b neon.V128) neon.V128 {
		p := neon.And(neon.Fmul32(a, b), in)
		s := neon.Faddp32(p, p)
		s = neon.Faddp32(s, s)
		return neon.And(s, out)
	}
}

func dpF64(imm int) native2 {
	var in, out neon.V128
	for i := range 2 {
		if imm&(0x10<<i) != 0 {
			in.SetU64(i, ^uint64(0))
		}
		if imm&(1<<i) != 0 {
			out.SetU64(i, ^uint64(0))
		}
	}
	return func(a, b neon.V128) neon.V128 {
		p := neon.And(neon.Fmul64(a, b), in)
		return neon.And(neon.Faddp64(p, p), out)
	}
}

// MmDpPs is _mm_dp_ps. The upper four immediate bits select the products
// to sum, the lower four select the lanes receiving the sum; the others are
// zero. The sum is ((p0+p1)+(p2+p3)).
func MmDpPs(a, b M128, imm int) M128 { return op2[M128](a, b, dpF32(imm&0xFF), 0) }

// MmDpPd is _mm_dp_pd.
func MmDpPd(a, b M128d, imm int) M128d { return op2[M128d](a, b, dpF64(imm&0x33), 0) }
