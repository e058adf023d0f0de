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

// ===== Wrapping add/sub =====

// MmAddEpi8 is _mm_add_epi8.
func MmAddEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Add8, 0) }

// MmAddEpi16 is _mm_add_epi16.
func MmAddEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Add16, 0) }

// MmAddEpi32 is _mm_add_epi32.
func MmAddEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Add32, 0) }

// MmAddEpi64 is _mm_add_epi64.
func MmAddEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.Add64, 0) }

// MmSubEpi8 is _mm_sub_epi8.
func MmSubEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Sub8, 0) }

// MmSubEpi16 is _mm_sub_epi16.
func MmSubEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Sub16, 0) }

// MmSubEpi32 is _mm_sub_epi32.
func MmSubEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Sub32, 0) }

// MmSubEpi64 is _mm_sub_epi64.
func MmSubEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.Sub64, 0) }

// ===== Saturating add/sub =====

// MmAddsEpi8 is _mm_adds_epi8.
func MmAddsEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Sqadd8, 0) }

// MmAddsEpi16 is _mm_adds_epi16.
func MmAddsEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Sqadd16, 0) }

// MmAddsEpu8 is _mm_adds_epu8.
func MmAddsEpu8(a, b M128i) M128i { return op2[M128i](a, b, neon.Uqadd8, 0) }

// MmAddsEpu16 is _mm_adds_epu16.
func MmAddsEpu16(a, b M128i) M128i { return op2[M128i](a, b, neon.Uqadd16, 0) }

// MmSubsEpi8 is _mm_subs_epi8.
func MmSubsEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Sqsub8, 0) }

// MmSubsEpi16 is _mm_subs_epi16.
func MmSubsEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Sqsub16, 0) }

// MmSubsEpu8 is _mm_subs_epu8.
func MmSubsEpu8(a, b M128i) M128i { return op2[M128i](a, b, neon.Uqsub8, 0) }

// MmSubsEpu16 is _mm_subs_epu16.
func MmSubsEpu16(a, b M128i) M128i { return op2[M128i](a, b, neon.Uqsub16, 0) }

// MmAvgEpu8 is _mm_avg_epu8: the rounded-up unsigned mean.
func MmAvgEpu8(a, b M128i) M128i { return op2[M128i](a, b, neon.Urhadd8, 0) }

// MmAvgEpu16 is _mm_avg_epu16.
func MmAvgEpu16(a, b M128i) M128i { return op2[M128i](a, b, neon.Urhadd16, 0) }

// MmAbsEpi8 is _mm_abs_epi8. -128 stays -128 (0x80).
func MmAbsEpi8(a M128i) M128i { return op1[M128i](a, neon.Abs8, 0) }

// MmAbsEpi16 is _mm_abs_epi16.
func MmAbsEpi16(a M128i) M128i { return op1[M128i](a, neon.Abs16, 0) }

// MmAbsEpi32 is _mm_abs_epi32.
func MmAbsEpi32(a M128i) M128i { return op1[M128i](a, neon.Abs32, 0) }

// ===== Multiplies =====

// MmMulloEpi16 is _mm_mullo_epi16.
func MmMulloEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Mul16, 0) }

// MmMulloEpi32 is _mm_mullo_epi32.
func MmMulloEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Mul32, 0) }

func mulhi16(a, b neon.V128) neon.V128 {
	return neon.UzpOdd16(neon.Smull16(a, b), neon.Smull16High(a, b))
}

func mulhu16(a, b neon.V128) neon.V128 {
	return neon.UzpOdd16(neon.Umull16(a, b), neon.Umull16High(a, b))
}

// MmMulhiEpi16 is _mm_mulhi_epi16: the upper 16 bits of each signed product.
func MmMulhiEpi16(a, b M128i) M128i { return op2[M128i](a, b, mulhi16, 0) }

// MmMulhiEpu16 is _mm_mulhi_epu16.
func MmMulhiEpu16(a, b M128i) M128i { return op2[M128i](a, b, mulhu16, 0) }

var mulhrsRound = neon.Dup32(0x4000)

func mulhrs16(a, b neon.V128) neon.V128 {
	lo := neon.Sshr32(neon.Add32(neon.Smull16(a, b), mulhrsRound), 15)
	hi := neon.Sshr32(neon.Add32(neon.Smull16High(a, b), mulhrsRound), 15)
	return neon.UzpEven16(lo, hi)
}

// MmMulhrsEpi16 is _mm_mulhrs_epi16: (a*b + 0x4000) >> 15, truncated to 16
// bits. Unlike SQRDMULH, -32768 * -32768 wraps to -32768.
func MmMulhrsEpi16(a, b M128i) M128i { return op2[M128i](a, b, mulhrs16, 0) }

func madd16(a, b neon.V128) neon.V128 {
	return neon.Addp32(neon.Smull16(a, b), neon.Smull16High(a, b))
}

// MmMaddEpi16 is _mm_madd_epi16: adjacent signed products summed into int32
// lanes.
func MmMaddEpi16(a, b M128i) M128i { return op2[M128i](a, b, madd16, 0) }

func mulEven32(a, b neon.V128) neon.V128 {
	return neon.Smull32(neon.UzpEven32(a, a), neon.UzpEven32(b, b))
}

func mulEvenU32(a, b neon.V128) neon.V128 {
	return neon.Umull32(neon.UzpEven32(a, a), neon.UzpEven32(b, b))
}

// MmMulEpi32 is _mm_mul_epi32: signed 64-bit products of lanes 0 and 2.
func MmMulEpi32(a, b M128i) M128i { return op2[M128i](a, b, mulEven32, 0) }

// MmMulEpu32 is _mm_mul_epu32.
func MmMulEpu32(a, b M128i) M128i { return op2[M128i](a, b, mulEvenU32, 0) }

func sad8(a, b neon.V128) neon.V128 {
	return neon.Uaddlp32(neon.Uaddlp16(neon.Uaddlp8(neon.Uabd8(a, b))))
}

// MmSadEpu8 is _mm_sad_epu8: each 64-bit lane holds the sum of the absolute
// differences of its eight bytes.
func MmSadEpu8(a, b M128i) M128i { return op2[M128i](a, b, sad8, 0) }

func sign8(a, b neon.V128) neon.V128 {
	z := neon.Zero()
	r := neon.Bsl(neon.Cmgt8(z, b), neon.Neg8(a), a)
	return neon.Bic(r, neon.Cmeq8(b, z))
}

func sign16(a, b neon.V128) neon.V128 {
	z := neon.Zero()
	r := neon.Bsl(neon.Cmgt16(z, b), neon.Neg16(a), a)
	return neon.Bic(r, neon.Cmeq16(b, z))
}

func sign32(a, b neon.V128) neon.V128 {
	z := neon.Zero()
	r := neon.Bsl(neon.Cmgt32(z, b), neon.Neg32(a), a)
	return neon.Bic(r, neon.Cmeq32(b, z))
}

// MmSignEpi8 is _mm_sign_epi8: a negated where b < 0, zeroed where b == 0.
func MmSignEpi8(a, b M128i) M128i { return op2[M128i](a, b, sign8, 0) }

// MmSignEpi16 is _mm_sign_epi16.
func MmSignEpi16(a, b M128i) M128i { return op2[M128i](a, b, sign16, 0) }

// MmSignEpi32 is _mm_sign_epi32.
func MmSignEpi32(a, b M128i) M128i { return op2[M128i](a, b, sign32, 0) }

// ===== Integer min/max =====

// MmMinEpi8 is _mm_min_epi8.
func MmMinEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Smin8, 0) }

// MmMinEpi16 is _mm_min_epi16.
func MmMinEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Smin16, 0) }

// MmMinEpi32 is _mm_min_epi32.
func MmMinEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Smin32, 0) }

// MmMinEpu8 is _mm_min_epu8.
func MmMinEpu8(a, b M128i) M128i { return op2[M128i](a, b, neon.Umin8, 0) }

// MmMinEpu16 is _mm_min_epu16.
func MmMinEpu16(a, b M128i) M128i { return op2[M128i](a, b, neon.Umin16, 0) }

// MmMinEpu32 is _mm_min_epu32.
func MmMinEpu32(a, b M128i) M128i { return op2[M128i](a, b, neon.Umin32, 0) }

// MmMaxEpi8 is _mm_max_epi8.
func MmMaxEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Smax8, 0) }

// MmMaxEpi16 is _mm_max_epi16.
func MmMaxEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Smax16, 0) }

// MmMaxEpi32 is _mm_max_epi32.
func MmMaxEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Smax32, 0) }

// MmMaxEpu8 is _mm_max_epu8.
func MmMaxEpu8(a, b M128i) M128i { return op2[M128i](a, b, neon.Umax8, 0) }

// MmMaxEpu16 is _mm_max_epu16.
func MmMaxEpu16(a, b M128i) M128i { return op2[M128i](a, b, neon.Umax16, 0) }

// MmMaxEpu32 is _mm_max_epu32.
func MmMaxEpu32(a, b M128i) M128i { return op2[M128i](a, b, neon.Umax32, 0) }

// ===== Horizontal =====
//
// Results hold the pairs of a in the lower lanes and the pairs of b in the
// upper lanes.

func hadds16(a, b neon.V128) neon.V128 {
	return neon.Sqadd16(neon.UzpEven16(a, b), neon.UzpOdd16(a, b))
}

func hsub16(a, b neon.V128) neon.V128 {
	return neon.Sub16(neon.UzpEven16(a, b), neon.UzpOdd16(a, b))
}

func hsubs16(a, b neon.V128) neon.V128 {
	return neon.Sqsub16(neon.UzpEven16(a, b), neon.UzpOdd16(a, b))
}

func hsub32(a, b neon.V128) neon.V128 {
	return neon.Sub32(neon.UzpEven32(a, b), neon.UzpOdd32(a, b))
}

// MmHaddEpi16 is _mm_hadd_epi16.
func MmHaddEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Addp16, 0) }

// MmHaddEpi32 is _mm_hadd_epi32.
func MmHaddEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Addp32, 0) }

// MmHaddsEpi16 is _mm_hadds_epi16.
func MmHaddsEpi16(a, b M128i) M128i { return op2[M128i](a, b, hadds16, 0) }

// MmHsubEpi16 is _mm_hsub_epi16: even lane minus odd lane of each pair.
func MmHsubEpi16(a, b M128i) M128i { return op2[M128i](a, b, hsub16, 0) }

// MmHsubEpi32 is _mm_hsub_epi32.
func MmHsubEpi32(a, b M128i) M128i { return op2[M128i](a, b, hsub32, 0) }

// MmHsubsEpi16 is _mm_hsubs_epi16.
func MmHsubsEpi16(a, b M128i) M128i { return op2[M128i](a, b, hsubs16, 0) }

// ===== Integer compares =====

// MmCmpeqEpi8 is _mm_cmpeq_epi8.
func MmCmpeqEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmeq8, 0) }

// MmCmpeqEpi16 is _mm_cmpeq_epi16.
func MmCmpeqEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmeq16, 0) }

// MmCmpeqEpi32 is _mm_cmpeq_epi32.
func MmCmpeqEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmeq32, 0) }

// MmCmpeqEpi64 is _mm_cmpeq_epi64.
func MmCmpeqEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmeq64, 0) }

// MmCmpgtEpi8 is _mm_cmpgt_epi8.
func MmCmpgtEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmgt8, 0) }

// MmCmpgtEpi16 is _mm_cmpgt_epi16.
func MmCmpgtEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmgt16, 0) }

// MmCmpgtEpi32 is _mm_cmpgt_epi32.
func MmCmpgtEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmgt32, 0) }

// MmCmpgtEpi64 is _mm_cmpgt_epi64.
func MmCmpgtEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.Cmgt64, 0) }

// MmCmpltEpi8 is _mm_cmplt_epi8.
func MmCmpltEpi8(a, b M128i) M128i { return MmCmpgtEpi8(b, a) }

// MmCmpltEpi16 is _mm_cmplt_epi16.
func MmCmpltEpi16(a, b M128i) M128i { return MmCmpgtEpi16(b, a) }

// MmCmpltEpi32 is _mm_cmplt_epi32.
func MmCmpltEpi32(a, b M128i) M128i { return MmCmpgtEpi32(b, a) }
