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

// ===== Immediate forms applied per half =====

// Mm256RoundPs is _mm256_round_ps.
func Mm256RoundPs(a M256, imm int) M256 {
	return split1[M256](a, func(x M128) M128 { return MmRoundPs(x, imm) })
}

// Mm256RoundPd is _mm256_round_pd.
func Mm256RoundPd(a M256d, imm int) M256d {
	return split1[M256d](a, func(x M128d) M128d { return MmRoundPd(x, imm) })
}

// Mm256CmpPs is _mm256_cmp_ps.
func Mm256CmpPs(a, b M256, imm int) M256 {
	return split2[M256](a, b, func(x, y M128) M128 { return MmCmpPs(x, y, imm) })
}

// Mm256CmpPd is _mm256_cmp_pd.
func Mm256CmpPd(a, b M256d, imm int) M256d {
	return split2[M256d](a, b, func(x, y M128d) M128d { return MmCmpPd(x, y, imm) })
}

// Mm256DpPs is _mm256_dp_ps: _mm_dp_ps on each half with the same imm.
func Mm256DpPs(a, b M256, imm int) M256 {
	return split2[M256](a, b, func(x, y M128) M128 { return MmDpPs(x, y, imm) })
}

func immShift(imm int, f func(M128i, int) M128i) func(M128i) M128i {
	return func(x M128i) M128i { return f(x, imm) }
}

// Mm256SlliEpi16 is _mm256_slli_epi16.
func Mm256SlliEpi16(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSlliEpi16)) }

// Mm256SlliEpi32 is _mm256_slli_epi32.
func Mm256SlliEpi32(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSlliEpi32)) }

// Mm256SlliEpi64 is _mm256_slli_epi64.
func Mm256SlliEpi64(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSlliEpi64)) }

// Mm256SrliEpi16 is _mm256_srli_epi16.
func Mm256SrliEpi16(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSrliEpi16)) }

// Mm256SrliEpi32 is _mm256_srli_epi32.
func Mm256SrliEpi32(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSrliEpi32)) }

// Mm256SrliEpi64 is _mm256_srli_epi64.
func Mm256SrliEpi64(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSrliEpi64)) }

// Mm256SraiEpi16 is _mm256_srai_epi16.
func Mm256SraiEpi16(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSraiEpi16)) }

// Mm256SraiEpi32 is _mm256_srai_epi32.
func Mm256SraiEpi32(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSraiEpi32)) }

// Mm256BslliEpi128 is _mm256_bslli_epi128: a byte shift within each half.
func Mm256BslliEpi128(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSlliSi128)) }

// Mm256BsrliEpi128 is _mm256_bsrli_epi128.
func Mm256BsrliEpi128(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmSrliSi128)) }

// Mm256ShuffleEpi32 is _mm256_shuffle_epi32.
func Mm256ShuffleEpi32(a M256i, imm int) M256i { return split1[M256i](a, immShift(imm, MmShuffleEpi32)) }

// Mm256ShuffleloEpi16 is _mm256_shufflelo_epi16.
func Mm256ShuffleloEpi16(a M256i, imm int) M256i {
	return split1[M256i](a, immShift(imm, MmShuffleloEpi16))
}

// Mm256ShufflehiEpi16 is _mm256_shufflehi_epi16.
func Mm256ShufflehiEpi16(a M256i, imm int) M256i {
	return split1[M256i](a, immShift(imm, MmShufflehiEpi16))
}

// Mm256AlignrEpi8 is _mm256_alignr_epi8: _mm_alignr_epi8 within each half.
func Mm256AlignrEpi8(a, b M256i, imm int) M256i {
	return split2[M256i](a, b, func(x, y M128i) M128i { return MmAlignrEpi8(x, y, imm) })
}

// Mm256BlendEpi16 is _mm256_blend_epi16. Both halves use the same eight
// immediate bits.
func Mm256BlendEpi16(a, b M256i, imm int) M256i {
	return split2[M256i](a, b, func(x, y M128i) M128i { return MmBlendEpi16(x, y, imm) })
}

// Count-vector shifts use the same count for both halves.

// Mm256SllEpi16 is _mm256_sll_epi16.
func Mm256SllEpi16(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSllEpi16(x, count) })
}

// Mm256SllEpi32 is _mm256_sll_epi32.
func Mm256SllEpi32(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSllEpi32(x, count) })
}

// Mm256SllEpi64 is _mm256_sll_epi64.
func Mm256SllEpi64(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSllEpi64(x, count) })
}

// Mm256SrlEpi16 is _mm256_srl_epi16.
func Mm256SrlEpi16(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSrlEpi16(x, count) })
}

// Mm256SrlEpi32 is _mm256_srl_epi32.
func Mm256SrlEpi32(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSrlEpi32(x, count) })
}

// Mm256SrlEpi64 is _mm256_srl_epi64.
func Mm256SrlEpi64(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSrlEpi64(x, count) })
}

// Mm256SraEpi16 is _mm256_sra_epi16.
func Mm256SraEpi16(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSraEpi16(x, count) })
}

// Mm256SraEpi32 is _mm256_sra_epi32.
func Mm256SraEpi32(a M256i, count M128i) M256i {
	return split1[M256i](a, func(x M128i) M128i { return MmSraEpi32(x, count) })
}

// ===== Immediates with a field per half =====

// Mm256ShufflePs is _mm256_shuffle_ps: the same four 2-bit selectors are
// used in both halves.
func Mm256ShufflePs(a, b M256, imm int) M256 {
	return split2[M256](a, b, func(x, y M128) M128 { return MmShufflePs(x, y, imm) })
}

// Mm256ShufflePd is _mm256_shuffle_pd: bits 0-1 control the lower half and
// bits 2-3 the upper half.
func Mm256ShufflePd(a, b M256d, imm int) M256d {
	return M256d{
		MmShufflePd(a.Lo(), b.Lo(), imm&3),
		MmShufflePd(a.Hi(), b.Hi(), imm>>2&3),
	}
}

// Mm256BlendPs is _mm256_blend_ps: bit i selects lane i from b.
func Mm256BlendPs(a, b M256, imm int) M256 {
	return M256{
		MmBlendPs(a.Lo(), b.Lo(), imm&0xF),
		MmBlendPs(a.Hi(), b.Hi(), imm>>4&0xF),
	}
}

// Mm256BlendPd is _mm256_blend_pd.
func Mm256BlendPd(a, b M256d, imm int) M256d {
	return M256d{
		MmBlendPd(a.Lo(), b.Lo(), imm&3),
		MmBlendPd(a.Hi(), b.Hi(), imm>>2&3),
	}
}

// Mm256BlendEpi32 is _mm256_blend_epi32.
func Mm256BlendEpi32(a, b M256i, imm int) M256i {
	return M256i{
		MmBlendEpi32(a.Lo(), b.Lo(), imm&0xF),
		MmBlendEpi32(a.Hi(), b.Hi(), imm>>4&0xF),
	}
}

// Mm256BlendvEpi8 is _mm256_blendv_epi8.
func Mm256BlendvEpi8(a, b, mask M256i) M256i { return split3[M256i](a, b, mask, MmBlendvEpi8) }

// Mm256BlendvPs is _mm256_blendv_ps.
func Mm256BlendvPs(a, b, mask M256) M256 { return split3[M256](a, b, mask, MmBlendvPs) }

// Mm256BlendvPd is _mm256_blendv_pd.
func Mm256BlendvPd(a, b, mask M256d) M256d { return split3[M256d](a, b, mask, MmBlendvPd) }

// Mm256PermutePs is _mm256_permute_ps: the same selectors in both halves.
func Mm256PermutePs(a M256, imm int) M256 {
	return split1[M256](a, func(x M128) M128 { return MmPermutePs(x, imm) })
}

// Mm256PermutePd is _mm256_permute_pd: bits 0-1 for the lower half, bits
// 2-3 for the upper.
func Mm256PermutePd(a M256d, imm int) M256d {
	return M256d{MmPermutePd(a.Lo(), imm&3), MmPermutePd(a.Hi(), imm>>2&3)}
}

// Mm256PermutevarPs is _mm256_permutevar_ps.
func Mm256PermutevarPs(a M256, b M256i) M256 {
	return M256{MmPermutevarPs(a.Lo(), b.Lo()), MmPermutevarPs(a.Hi(), b.Hi())}
}

// ===== Cross-half operations =====

// select128 picks a 128-bit half for permute2f128: 0 and 1 are the halves of
// a, 2 and 3 the halves of b. Bit 3 zeroes the half and takes precedence.
func select128(a, b [2][16]byte, ctrl int) [16]byte {
	if ctrl&8 != 0 {
		return [16]byte{}
	}
	if ctrl&2 == 0 {
		return a[ctrl&1]
	}
	return b[ctrl&1]
}

func permute2x128[W wide](a, b W, imm int) W {
	return W{select128(a, b, imm&0xF), select128(a, b, imm>>4&0xF)}
}

// Mm256Permute2f128Ps is _mm256_permute2f128_ps.
func Mm256Permute2f128Ps(a, b M256, imm int) M256 { return permute2x128(a, b, imm) }

// Mm256Permute2f128Pd is _mm256_permute2f128_pd.
func Mm256Permute2f128Pd(a, b M256d, imm int) M256d { return permute2x128(a, b, imm) }

// Mm256Permute2f128Si256 is _mm256_permute2f128_si256.
func Mm256Permute2f128Si256(a, b M256i, imm int) M256i { return permute2x128(a, b, imm) }

// Mm256Permute2x128Si256 is _mm256_permute2x128_si256.
func Mm256Permute2x128Si256(a, b M256i, imm int) M256i { return permute2x128(a, b, imm) }

// permute4x64 moves 64-bit lane (imm >> 2i) & 3 of the whole register into
// lane i.
func permute4x64[W wide](a W, imm int) W {
	var r W
	for i := range 4 {
		s := imm >> (2 * i) & 3
		h := neon.V128(a[s>>1])
		d := neon.InsLane64(neon.V128(r[i>>1]), i&1, h, s&1)
		r[i>>1] = d
	}
	return r
}

// Mm256Permute4x64Epi64 is _mm256_permute4x64_epi64.
func Mm256Permute4x64Epi64(a M256i, imm int) M256i { return permute4x64(a, imm&0xFF) }

// Mm256Permute4x64Pd is _mm256_permute4x64_pd.
func Mm256Permute4x64Pd(a M256d, imm int) M256d { return permute4x64(a, imm&0xFF) }

// permutevar8x32 moves 32-bit lane idx[i] & 7 of the whole register into lane
// i.
func permutevar8x32[W wide](a W, idx M256i) W {
	var r W
	for i := range 8 {
		s := int(idx.U32(i) & 7)
		d := neon.InsLane32(neon.V128(r[i>>2]), i&3, neon.V128(a[s>>2]), s&3)
		r[i>>2] = d
	}
	return r
}

// Mm256Permutevar8x32Epi32 is _mm256_permutevar8x32_epi32.
func Mm256Permutevar8x32Epi32(a, idx M256i) M256i { return permutevar8x32(a, idx) }

// Mm256Permutevar8x32Ps is _mm256_permutevar8x32_ps.
func Mm256Permutevar8x32Ps(a M256, idx M256i) M256 { return permutevar8x32(a, idx) }

// ===== Broadcasts =====

// Mm256BroadcastbEpi8 is _mm256_broadcastb_epi8: byte 0 to all 32 lanes.
func Mm256BroadcastbEpi8(a M128i) M256i {
	v := M128i(neon.DupLane8(native(a), 0))
	return M256i{v, v}
}

// Mm256BroadcastwEpi16 is _mm256_broadcastw_epi16.
func Mm256BroadcastwEpi16(a M128i) M256i {
	v := M128i(neon.DupLane16(native(a), 0))
	return M256i{v, v}
}

// Mm256BroadcastdEpi32 is _mm256_broadcastd_epi32.
func Mm256BroadcastdEpi32(a M128i) M256i {
	v := M128i(neon.DupLane32(native(a), 0))
	return M256i{v, v}
}

// Mm256BroadcastqEpi64 is _mm256_broadcastq_epi64.
func Mm256BroadcastqEpi64(a M128i) M256i {
	v := M128i(neon.DupLane64(native(a), 0))
	return M256i{v, v}
}

// Mm256BroadcastssPs is _mm256_broadcastss_ps.
func Mm256BroadcastssPs(a M128) M256 {
	v := M128(neon.DupLane32(native(a), 0))
	return M256{v, v}
}

// Mm256BroadcastsdPd is _mm256_broadcastsd_pd.
func Mm256BroadcastsdPd(a M128d) M256d {
	v := M128d(neon.DupLane64(native(a), 0))
	return M256d{v, v}
}

// Mm256Broadcastsi128Si256 is _mm256_broadcastsi128_si256.
func Mm256Broadcastsi128Si256(a M128i) M256i { return M256i{a, a} }

// ===== Extract / insert 128 =====

// Mm256Extractf128Ps is _mm256_extractf128_ps: bit 0 of imm picks the half.
func Mm256Extractf128Ps(a M256, imm int) M128 { return M128(a[imm&1]) }

// Mm256Extractf128Pd is _mm256_extractf128_pd.
func Mm256Extractf128Pd(a M256d, imm int) M128d { return M128d(a[imm&1]) }

// Mm256Extractf128Si256 is _mm256_extractf128_si256.
func Mm256Extractf128Si256(a M256i, imm int) M128i { return M128i(a[imm&1]) }

// Mm256Extracti128Si256 is _mm256_extracti128_si256.
func Mm256Extracti128Si256(a M256i, imm int) M128i { return M128i(a[imm&1]) }

// Mm256Insertf128Ps is _mm256_insertf128_ps.
func Mm256Insertf128Ps(a M256, b M128, imm int) M256 {
	a[imm&1] = b
	return a
}

// Mm256Insertf128Pd is _mm256_insertf128_pd.
func Mm256Insertf128Pd(a M256d, b M128d, imm int) M256d {
	a[imm&1] = b
	return a
}

// Mm256Insertf128Si256 is _mm256_insertf128_si256.
func Mm256Insertf128Si256(a M256i, b M128i, imm int) M256i {
	a[imm&1] = b
	return a
}

// Mm256Inserti128Si256 is _mm256_inserti128_si256.
func Mm256Inserti128Si256(a M256i, b M128i, imm int) M256i {
	a[imm&1] = b
	return a
}

// ===== Width-changing conversions =====

// Mm256Cvtepi32Pd is _mm256_cvtepi32_pd: four int32 lanes to four doubles.
func Mm256Cvtepi32Pd(a M128i) M256d {
	return M256d{MmCvtepi32Pd(a), MmCvtepi32Pd(MmSrliSi128(a, 8))}
}

// Mm256CvtpsPd is _mm256_cvtps_pd.
func Mm256CvtpsPd(a M128) M256d {
	hi := op1[M128d](a, neon.FcvtlHigh, 0)
	return M256d{MmCvtpsPd(a), hi}
}

// Mm256CvtpdPs is _mm256_cvtpd_ps: four doubles narrowed into one M128.
func Mm256CvtpdPs(a M256d) M128 {
	lo, hi := native(a.Lo()), native(a.Hi())
	return M128(neon.FcvtnHigh(neon.Fcvtn(lo), hi))
}

func joinLow64(lo, hi M128i) M128i { return MmUnpackloEpi64(lo, hi) }

// Mm256CvtpdEpi32 is _mm256_cvtpd_epi32.
func Mm256CvtpdEpi32(a M256d) M128i {
	return joinLow64(MmCvtpdEpi32(a.Lo()), MmCvtpdEpi32(a.Hi()))
}

// Mm256CvttpdEpi32 is _mm256_cvttpd_epi32.
func Mm256CvttpdEpi32(a M256d) M128i {
	return joinLow64(MmCvttpdEpi32(a.Lo()), MmCvttpdEpi32(a.Hi()))
}

func widen(a neon.V128, lo, hi native1) M256i {
	return M256i{lo(a), hi(a)}
}

// Mm256Cvtepi8Epi16 is _mm256_cvtepi8_epi16.
func Mm256Cvtepi8Epi16(a M128i) M256i { return widen(native(a), neon.Sxtl8, neon.Sxtl8High) }

// Mm256Cvtepu8Epi16 is _mm256_cvtepu8_epi16.
func Mm256Cvtepu8Epi16(a M128i) M256i { return widen(native(a), neon.Uxtl8, neon.Uxtl8High) }

// Mm256Cvtepi16Epi32 is _mm256_cvtepi16_epi32.
func Mm256Cvtepi16Epi32(a M128i) M256i { return widen(native(a), neon.Sxtl16, neon.Sxtl16High) }

// Mm256Cvtepu16Epi32 is _mm256_cvtepu16_epi32.
func Mm256Cvtepu16Epi32(a M128i) M256i { return widen(native(a), neon.Uxtl16, neon.Uxtl16High) }

// Mm256Cvtepi32Epi64 is _mm256_cvtepi32_epi64.
func Mm256Cvtepi32Epi64(a M128i) M256i { return widen(native(a), neon.Sxtl32, neon.Sxtl32High) }

// Mm256Cvtepu32Epi64 is _mm256_cvtepu32_epi64.
func Mm256Cvtepu32Epi64(a M128i) M256i { return widen(native(a), neon.Uxtl32, neon.Uxtl32High) }

// ===== Scalars, masks and tests =====

// Mm256CvtssF32 is _mm256_cvtss_f32.
func Mm256CvtssF32(a M256) float32 { return a.F32(0) }

// Mm256CvtsdF64 is _mm256_cvtsd_f64.
func Mm256CvtsdF64(a M256d) float64 { return a.F64(0) }

// Mm256Cvtsi256Si32 is _mm256_cvtsi256_si32.
func Mm256Cvtsi256Si32(a M256i) int32 { return a.I32(0) }

// Mm256MovemaskEpi8 is _mm256_movemask_epi8.
func Mm256MovemaskEpi8(a M256i) int32 {
	return MmMovemaskEpi8(a.Lo()) | MmMovemaskEpi8(a.Hi())<<16
}

// Mm256MovemaskPs is _mm256_movemask_ps.
func Mm256MovemaskPs(a M256) int32 {
	return MmMovemaskPs(a.Lo()) | MmMovemaskPs(a.Hi())<<4
}

// Mm256MovemaskPd is _mm256_movemask_pd.
func Mm256MovemaskPd(a M256d) int32 {
	return MmMovemaskPd(a.Lo()) | MmMovemaskPd(a.Hi())<<2
}

// Mm256TestzSi256 is _mm256_testz_si256.
func Mm256TestzSi256(a, b M256i) int {
	return b2i(MmTestzSi128(a.Lo(), b.Lo())&MmTestzSi128(a.Hi(), b.Hi()) == 1)
}

// Mm256TestcSi256 is _mm256_testc_si256.
func Mm256TestcSi256(a, b M256i) int {
	return b2i(MmTestcSi128(a.Lo(), b.Lo())&MmTestcSi128(a.Hi(), b.Hi()) == 1)
}

// Mm256TestnzcSi256 is _mm256_testnzc_si256.
func Mm256TestnzcSi256(a, b M256i) int {
	return b2i(Mm256TestzSi256(a, b) == 0 && Mm256TestcSi256(a, b) == 0)
}

// Mm256Zeroall is _mm256_zeroall. Registers are values here, so there is
// nothing to clear.
func Mm256Zeroall() {}

// Mm256Zeroupper is _mm256_zeroupper.
func Mm256Zeroupper() {}
