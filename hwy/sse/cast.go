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

// Register reinterpretation. Every cast keeps the bits and changes only the
// lane view, so each pair of casts round-trips exactly.

func native[T narrow](a T) neon.V128 { return neon.V128(a) }

func fromNative[T narrow](v neon.V128) T { return T(v) }

func halves[W wide, N narrow](a W) (lo, hi N) { return N(a[0]), N(a[1]) }

func join[W wide, N narrow](lo, hi N) W { return W{[16]byte(lo), [16]byte(hi)} }

// MmCastpsSi128 is _mm_castps_si128.
func MmCastpsSi128(a M128) M128i { return M128i(a) }

// MmCastsi128Ps is _mm_castsi128_ps.
func MmCastsi128Ps(a M128i) M128 { return M128(a) }

// MmCastpdPs is _mm_castpd_ps.
func MmCastpdPs(a M128d) M128 { return M128(a) }

// MmCastpsPd is _mm_castps_pd.
func MmCastpsPd(a M128) M128d { return M128d(a) }

// MmCastpdSi128 is _mm_castpd_si128.
func MmCastpdSi128(a M128d) M128i { return M128i(a) }

// MmCastsi128Pd is _mm_castsi128_pd.
func MmCastsi128Pd(a M128i) M128d { return M128d(a) }

// Mm256CastpsSi256 is _mm256_castps_si256.
func Mm256CastpsSi256(a M256) M256i { return M256i(a) }

// Mm256Castsi256Ps is _mm256_castsi256_ps.
func Mm256Castsi256Ps(a M256i) M256 { return M256(a) }

// Mm256CastpdSi256 is _mm256_castpd_si256.
func Mm256CastpdSi256(a M256d) M256i { return M256i(a) }

// Mm256Castsi256Pd is _mm256_castsi256_pd.
func Mm256Castsi256Pd(a M256i) M256d { return M256d(a) }

// Mm256CastpsPd is _mm256_castps_pd.
func Mm256CastpsPd(a M256) M256d { return M256d(a) }

// Mm256CastpdPs is _mm256_castpd_ps.
func Mm256CastpdPs(a M256d) M256 { return M256(a) }

// Width casts. The 128 to 256 direction leaves the upper half undefined on
// x86; here it is always zero, which makes it identical to the zext forms.

// Mm256Castps256Ps128 is _mm256_castps256_ps128.
func Mm256Castps256Ps128(a M256) M128 { return M128(a[0]) }

// Mm256Castpd256Pd128 is _mm256_castpd256_pd128.
func Mm256Castpd256Pd128(a M256d) M128d { return M128d(a[0]) }

// Mm256Castsi256Si128 is _mm256_castsi256_si128.
func Mm256Castsi256Si128(a M256i) M128i { return M128i(a[0]) }

// Mm256Castps128Ps256 is _mm256_castps128_ps256.
func Mm256Castps128Ps256(a M128) M256 { return M256{a} }

// Mm256Castpd128Pd256 is _mm256_castpd128_pd256.
func Mm256Castpd128Pd256(a M128d) M256d { return M256d{a} }

// Mm256Castsi128Si256 is _mm256_castsi128_si256.
func Mm256Castsi128Si256(a M128i) M256i { return M256i{a} }

// Mm256Zextps128Ps256 is _mm256_zextps128_ps256.
func Mm256Zextps128Ps256(a M128) M256 { return M256{a} }

// Mm256Zextpd128Pd256 is _mm256_zextpd128_pd256.
func Mm256Zextpd128Pd256(a M128d) M256d { return M256d{a} }

// Mm256Zextsi128Si256 is _mm256_zextsi128_si256.
func Mm256Zextsi128Si256(a M128i) M256i { return M256i{a} }
