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

// andNot is x86 ANDN: ~a & b, which is BIC with the operands swapped.
func andNot(a, b neon.V128) neon.V128 { return neon.Bic(b, a) }

// MmAndSi128 is _mm_and_si128.
func MmAndSi128(a, b M128i) M128i { return op2[M128i](a, b, neon.And, 0) }

// MmAndnotSi128 is _mm_andnot_si128: ~a & b.
func MmAndnotSi128(a, b M128i) M128i { return op2[M128i](a, b, andNot, 0) }

// MmOrSi128 is _mm_or_si128.
func MmOrSi128(a, b M128i) M128i { return op2[M128i](a, b, neon.Orr, 0) }

// MmXorSi128 is _mm_xor_si128.
func MmXorSi128(a, b M128i) M128i { return op2[M128i](a, b, neon.Eor, 0) }

// MmAndPs is _mm_and_ps.
func MmAndPs(a, b M128) M128 { return op2[M128](a, b, neon.And, 0) }

// MmAndnotPs is _mm_andnot_ps.
func MmAndnotPs(a, b M128) M128 { return op2[M128](a, b, andNot, 0) }

// MmOrPs is _mm_or_ps.
func MmOrPs(a, b M128) M128 { return op2[M128](a, b, neon.Orr, 0) }

// MmXorPs is _mm_xor_ps.
func MmXorPs(a, b M128) M128 { return op2[M128](a, b, neon.Eor, 0) }

// MmAndPd is _mm_and_pd.
func MmAndPd(a, b M128d) M128d { return op2[M128d](a, b, neon.And, 0) }

// MmAndnotPd is _mm_andnot_pd.
func MmAndnotPd(a, b M128d) M128d { return op2[M128d](a, b, andNot, 0) }

// MmOrPd is _mm_or_pd.
func MmOrPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Orr, 0) }

// MmXorPd is _mm_xor_pd.
func MmXorPd(a, b M128d) M128d { return op2[M128d](a, b, neon.Eor, 0) }

func isZero(v neon.V128) bool { return v.U64(0)|v.U64(1) == 0 }

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// MmTestzSi128 is _mm_testz_si128: 1 when a & b is all zero (ZF).
func MmTestzSi128(a, b M128i) int {
	return b2i(isZero(neon.And(native(a), native(b))))
}

// MmTestcSi128 is _mm_testc_si128: 1 when ~a & b is all zero (CF).
func MmTestcSi128(a, b M128i) int {
	return b2i(isZero(andNot(native(a), native(b))))
}

// MmTestnzcSi128 is _mm_testnzc_si128: 1 when both ZF and CF are clear.
func MmTestnzcSi128(a, b M128i) int {
	return b2i(MmTestzSi128(a, b) == 0 && MmTestcSi128(a, b) == 0)
}
