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

// Immediate counts are taken from the low 8 bits. A count at or above the
// lane width clears the lane for logical shifts and fills it with the sign
// for arithmetic shifts.

func shiftImm(n uint, f func(neon.V128, uint) neon.V128) native1 {
	return func(a neon.V128) neon.V128 { return f(a, n) }
}

// MmSlliEpi16 is _mm_slli_epi16.
func MmSlliEpi16(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Shl16), 0)
}

// MmSlliEpi32 is _mm_slli_epi32.
func MmSlliEpi32(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Shl32), 0)
}

// MmSlliEpi64 is _mm_slli_epi64.
func MmSlliEpi64(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Shl64), 0)
}

// MmSrliEpi16 is _mm_srli_epi16.
func MmSrliEpi16(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Ushr16), 0)
}

// MmSrliEpi32 is _mm_srli_epi32.
func MmSrliEpi32(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Ushr32), 0)
}

// MmSrliEpi64 is _mm_srli_epi64.
func MmSrliEpi64(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Ushr64), 0)
}

// MmSraiEpi16 is _mm_srai_epi16.
func MmSraiEpi16(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Sshr16), 0)
}

// MmSraiEpi32 is _mm_srai_epi32.
func MmSraiEpi32(a M128i, imm int) M128i {
	return op1[M128i](a, shiftImm(uint(imm&0xFF), neon.Sshr32), 0)
}

// Count-vector shifts take the unsigned 64-bit count from the low lane of
// count. It is clamped to 64 and broadcast as the signed byte count USHL and
// SSHL expect; the negated form shifts right.

func shiftCount(count M128i, right bool) int8 {
	c := int8(min(count.U64(0), 64))
	if right {
		return -c
	}
	return c
}

func shiftBy(count M128i, right bool, f native2, dup func(int8) neon.V128) native1 {
	n := dup(shiftCount(count, right))
	return func(a neon.V128) neon.V128 { return f(a, n) }
}

func dup16(c int8) neon.V128 { return neon.Dup16(uint16(c)) }
func dup32(c int8) neon.V128 { return neon.Dup32(uint32(c)) }
func dup64(c int8) neon.V128 { return neon.Dup64(uint64(c)) }

// MmSllEpi16 is _mm_sll_epi16.
func MmSllEpi16(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, false, neon.Ushl16, dup16), 0)
}

// MmSllEpi32 is _mm_sll_epi32.
func MmSllEpi32(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, false, neon.Ushl32, dup32), 0)
}

// MmSllEpi64 is _mm_sll_epi64.
func MmSllEpi64(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, false, neon.Ushl64, dup64), 0)
}

// MmSrlEpi16 is _mm_srl_epi16.
func MmSrlEpi16(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, true, neon.Ushl16, dup16), 0)
}

// MmSrlEpi32 is _mm_srl_epi32.
func MmSrlEpi32(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, true, neon.Ushl32, dup32), 0)
}

// MmSrlEpi64 is _mm_srl_epi64.
func MmSrlEpi64(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, true, neon.Ushl64, dup64), 0)
}

// MmSraEpi16 is _mm_sra_epi16.
func MmSraEpi16(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, true, neon.Sshl16, dup16), 0)
}

// MmSraEpi32 is _mm_sra_epi32.
func MmSraEpi32(a, count M128i) M128i {
	return op1[M128i](a, shiftBy(count, true, neon.Sshl32, dup32), 0)
}

// Per-lane variable shifts (AVX2). Counts are unsigned; they are clamped to
// the lane width with UMIN before USHL so that large counts cannot wrap into
// the signed byte the native shift reads.

var (
	clamp32 = neon.Dup32(32)
	clamp64 = neon.Dup64(64)
)

func sllv32(a, b neon.V128) neon.V128 { return neon.Ushl32(a, neon.Umin32(b, clamp32)) }

func srlv32(a, b neon.V128) neon.V128 {
	return neon.Ushl32(a, neon.Neg32(neon.Umin32(b, clamp32)))
}

func srav32(a, b neon.V128) neon.V128 {
	return neon.Sshl32(a, neon.Neg32(neon.Umin32(b, clamp32)))
}

// clampU64 has no UMIN at 64 bits; it selects with CMHI instead.
func clampU64(b neon.V128) neon.V128 {
	return neon.Bsl(neon.Cmhi64(b, clamp64), clamp64, b)
}

func sllv64(a, b neon.V128) neon.V128 { return neon.Ushl64(a, clampU64(b)) }

func srlv64(a, b neon.V128) neon.V128 {
	return neon.Ushl64(a, neon.Sub64(neon.Zero(), clampU64(b)))
}

// MmSllvEpi32 is _mm_sllv_epi32.
func MmSllvEpi32(a, count M128i) M128i { return op2[M128i](a, count, sllv32, 0) }

// MmSrlvEpi32 is _mm_srlv_epi32.
func MmSrlvEpi32(a, count M128i) M128i { return op2[M128i](a, count, srlv32, 0) }

// MmSravEpi32 is _mm_srav_epi32.
func MmSravEpi32(a, count M128i) M128i { return op2[M128i](a, count, srav32, 0) }

// MmSllvEpi64 is _mm_sllv_epi64.
func MmSllvEpi64(a, count M128i) M128i { return op2[M128i](a, count, sllv64, 0) }

// MmSrlvEpi64 is _mm_srlv_epi64.
func MmSrlvEpi64(a, count M128i) M128i { return op2[M128i](a, count, srlv64, 0) }

// ===== Byte shifts =====

// MmSlliSi128 is _mm_slli_si128: shifts the whole register left by imm
// bytes. Counts above 15 give zero.
func MmSlliSi128(a M128i, imm int) M128i {
	n := imm & 0xFF
	switch {
	case n == 0:
		return a
	case n > 15:
		return M128i{}
	}
	return op1[M128i](a, func(x neon.V128) neon.V128 { return neon.Ext(neon.Zero(), x, 16-n) }, 0)
}

// MmSrliSi128 is _mm_srli_si128.
func MmSrliSi128(a M128i, imm int) M128i {
	n := imm & 0xFF
	if n > 15 {
		return M128i{}
	}
	return op1[M128i](a, func(x neon.V128) neon.V128 { return neon.Ext(x, neon.Zero(), n) }, 0)
}

// MmBslliSi128 is _mm_bslli_si128, an alias of MmSlliSi128.
func MmBslliSi128(a M128i, imm int) M128i { return MmSlliSi128(a, imm) }

// MmBsrliSi128 is _mm_bsrli_si128.
func MmBsrliSi128(a M128i, imm int) M128i { return MmSrliSi128(a, imm) }

// MmAlignrEpi8 is _mm_alignr_epi8: the 32-byte concatenation a:b shifted
// right by imm bytes, low 16 bytes kept.
func MmAlignrEpi8(a, b M128i, imm int) M128i {
	n := imm & 0xFF
	var f native2
	switch {
	case n < 16:
		f = func(x, y neon.V128) neon.V128 { return neon.Ext(y, x, n) }
	case n < 32:
		f = func(x, _ neon.V128) neon.V128 { return neon.Ext(x, neon.Zero(), n-16) }
	default:
		return M128i{}
	}
	return op2[M128i](a, b, f, 0)
}
