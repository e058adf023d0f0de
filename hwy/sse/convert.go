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

import (
	"math"

	"github.com/ajroetker/softintrin/hwy/neon"
)

// ===== Pack with saturation =====

func packs16(a, b neon.V128) neon.V128  { return neon.Sqxtn16High(neon.Sqxtn16(a), b) }
func packs32(a, b neon.V128) neon.V128  { return neon.Sqxtn32High(neon.Sqxtn32(a), b) }
func packus16(a, b neon.V128) neon.V128 { return neon.Sqxtun16High(neon.Sqxtun16(a), b) }
func packus32(a, b neon.V128) neon.V128 { return neon.Sqxtun32High(neon.Sqxtun32(a), b) }

// MmPacksEpi16 is _mm_packs_epi16: int16 lanes of a then b, saturated to int8.
func MmPacksEpi16(a, b M128i) M128i { return op2[M128i](a, b, packs16, 0) }

// MmPacksEpi32 is _mm_packs_epi32.
func MmPacksEpi32(a, b M128i) M128i { return op2[M128i](a, b, packs32, 0) }

// MmPackusEpi16 is _mm_packus_epi16: signed int16 saturated to uint8.
func MmPackusEpi16(a, b M128i) M128i { return op2[M128i](a, b, packus16, 0) }

// MmPackusEpi32 is _mm_packus_epi32.
func MmPackusEpi32(a, b M128i) M128i { return op2[M128i](a, b, packus32, 0) }

// ===== Integer widening =====

// MmCvtepi8Epi16 is _mm_cvtepi8_epi16.
func MmCvtepi8Epi16(a M128i) M128i { return op1[M128i](a, neon.Sxtl8, 0) }

// MmCvtepu8Epi16 is _mm_cvtepu8_epi16.
func MmCvtepu8Epi16(a M128i) M128i { return op1[M128i](a, neon.Uxtl8, 0) }

// MmCvtepi16Epi32 is _mm_cvtepi16_epi32.
func MmCvtepi16Epi32(a M128i) M128i { return op1[M128i](a, neon.Sxtl16, 0) }

// MmCvtepu16Epi32 is _mm_cvtepu16_epi32.
func MmCvtepu16Epi32(a M128i) M128i { return op1[M128i](a, neon.Uxtl16, 0) }

// MmCvtepi32Epi64 is _mm_cvtepi32_epi64.
func MmCvtepi32Epi64(a M128i) M128i { return op1[M128i](a, neon.Sxtl32, 0) }

// MmCvtepu32Epi64 is _mm_cvtepu32_epi64.
func MmCvtepu32Epi64(a M128i) M128i { return op1[M128i](a, neon.Uxtl32, 0) }

// ===== Float <-> integer =====

// MmCvtepi32Ps is _mm_cvtepi32_ps.
func MmCvtepi32Ps(a M128i) M128 { return op1[M128](a, neon.Scvtf32, 0) }

func cvtI32F64(a neon.V128) neon.V128 { return neon.Scvtf64(neon.Sxtl32(a)) }

// MmCvtepi32Pd is _mm_cvtepi32_pd: int32 lanes 0 and 1, sign-extended.
func MmCvtepi32Pd(a M128i) M128d { return op1[M128d](a, cvtI32F64, 0) }

// MmCvtpsEpi32 is _mm_cvtps_epi32: round to nearest even, NaN and overflow
// give 0x80000000.
func MmCvtpsEpi32(a M128) M128i { return op1[M128i](a, neon.Fcvtns32, FixIndefiniteI32) }

// MmCvttpsEpi32 is _mm_cvttps_epi32: truncating.
func MmCvttpsEpi32(a M128) M128i { return op1[M128i](a, neon.Fcvtzs32, FixIndefiniteI32) }

var (
	i32Max64     = neon.Dup64(math.MaxInt32)
	i32Min64     = neon.Dup64(1<<64 + math.MinInt32)
	indefinite64 = neon.Dup64(0xFFFFFFFF80000000)
)

// cvtF64I32 converts both double lanes to int64, marks the lanes whose value
// is NaN or outside int32 with the indefinite and narrows to int32 lanes 0
// and 1. The upper half of the result is zero.
func cvtF64I32(f native1) native1 {
	return func(a neon.V128) neon.V128 {
		i := f(a)
		ok := neon.Bic(neon.Fcmeq64(a, a), neon.Orr(neon.Cmgt64(i, i32Max64), neon.Cmgt64(i32Min64, i)))
		return neon.Xtn64(neon.Bsl(ok, i, indefinite64))
	}
}

// MmCvtpdEpi32 is _mm_cvtpd_epi32.
func MmCvtpdEpi32(a M128d) M128i { return op1[M128i](a, cvtF64I32(neon.Fcvtns64), 0) }

// MmCvttpdEpi32 is _mm_cvttpd_epi32.
func MmCvttpdEpi32(a M128d) M128i { return op1[M128i](a, cvtF64I32(neon.Fcvtzs64), 0) }

// ===== Float <-> float =====

// MmCvtpsPd is _mm_cvtps_pd: float lanes 0 and 1 widened.
func MmCvtpsPd(a M128) M128d { return op1[M128d](a, neon.Fcvtl, 0) }

// MmCvtpdPs is _mm_cvtpd_ps: both lanes narrowed into lanes 0 and 1, lanes 2
// and 3 zero.
func MmCvtpdPs(a M128d) M128 { return op1[M128](a, neon.Fcvtn, 0) }

// MmCvtssSd is _mm_cvtss_sd: lane 0 is b0 widened, lane 1 is a1.
func MmCvtssSd(a M128d, b M128) M128d {
	return op2[M128d](a, M128d(b), func(_, y neon.V128) neon.V128 { return neon.Fcvtl(y) }, FixScalarF64)
}

// MmCvtsdSs is _mm_cvtsd_ss: lane 0 is b0 narrowed, lanes 1..3 from a.
func MmCvtsdSs(a M128, b M128d) M128 {
	return op2[M128](a, M128(b), func(_, y neon.V128) neon.V128 { return neon.Fcvtn(y) }, FixScalarF32)
}

// ===== Scalar conversions =====

// MmCvtsi32Ss is _mm_cvtsi32_ss: lane 0 is float32(x), lanes 1..3 from a.
func MmCvtsi32Ss(a M128, x int32) M128 {
	return op2[M128](a, a, func(_, _ neon.V128) neon.V128 {
		return neon.Scvtf32(neon.Dup32(uint32(x)))
	}, FixScalarF32)
}

// MmCvtsi32Sd is _mm_cvtsi32_sd.
func MmCvtsi32Sd(a M128d, x int32) M128d { return MmCvtsi64Sd(a, int64(x)) }

// MmCvtsi64Sd is _mm_cvtsi64_sd.
func MmCvtsi64Sd(a M128d, x int64) M128d {
	return op2[M128d](a, a, func(_, _ neon.V128) neon.V128 {
		return neon.Scvtf64(neon.Dup64(uint64(x)))
	}, FixScalarF64)
}

// MmCvtsi64Ss is _mm_cvtsi64_ss. The int64 is rounded to float32 once.
func MmCvtsi64Ss(a M128, x int64) M128 {
	return M128(neon.Ins32(native(a), 0, math.Float32bits(float32(x))))
}

// MmCvtssSi32 is _mm_cvtss_si32.
func MmCvtssSi32(a M128) int32 { return MmCvtpsEpi32(a).I32(0) }

// MmCvttssSi32 is _mm_cvttss_si32.
func MmCvttssSi32(a M128) int32 { return MmCvttpsEpi32(a).I32(0) }

// cvtF32I64 converts float lane 0 to int64 with the 64-bit indefinite
// 0x8000000000000000 for NaN and overflow.
func cvtF32I64(a M128, m neon.Rounding) int64 {
	f := float64(a.F32(0))
	if math.IsNaN(f) || f >= 1<<63 || f < -(1<<63) {
		return math.MinInt64
	}
	d := neon.Fcvtl(native(a))
	if m == neon.RoundZero {
		return int64(neon.Fcvtzs64(d).U64(0))
	}
	return int64(neon.Fcvtns64(d).U64(0))
}

// MmCvtssSi64 is _mm_cvtss_si64.
func MmCvtssSi64(a M128) int64 { return cvtF32I64(a, neon.RoundNearest) }

// MmCvttssSi64 is _mm_cvttss_si64.
func MmCvttssSi64(a M128) int64 { return cvtF32I64(a, neon.RoundZero) }

// MmCvtsdSi32 is _mm_cvtsd_si32.
func MmCvtsdSi32(a M128d) int32 { return MmCvtpdEpi32(a).I32(0) }

// MmCvttsdSi32 is _mm_cvttsd_si32.
func MmCvttsdSi32(a M128d) int32 { return MmCvttpdEpi32(a).I32(0) }

// MmCvtssF32 is _mm_cvtss_f32.
func MmCvtssF32(a M128) float32 { return a.F32(0) }

// MmCvtsdF64 is _mm_cvtsd_f64.
func MmCvtsdF64(a M128d) float64 { return a.F64(0) }

// MmCvtsi128Si32 is _mm_cvtsi128_si32.
func MmCvtsi128Si32(a M128i) int32 { return a.I32(0) }

// MmCvtsi128Si64 is _mm_cvtsi128_si64.
func MmCvtsi128Si64(a M128i) int64 { return a.I64(0) }

// MmCvtsi32Si128 is _mm_cvtsi32_si128: x in lane 0, the rest zero.
func MmCvtsi32Si128(x int32) M128i { return M128i(neon.Ins32(neon.Zero(), 0, uint32(x))) }

// MmCvtsi64Si128 is _mm_cvtsi64_si128.
func MmCvtsi64Si128(x int64) M128i { return M128i(neon.Ins64(neon.Zero(), 0, uint64(x))) }
