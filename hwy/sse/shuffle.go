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

// tblIndex32 builds the TBL byte indices that move 32-bit lane sel[i] into
// lane i.
func tblIndex32(sel [4]int) (idx neon.V128) {
	for i, s := range sel {
		for k := range 4 {
			idx[4*i+k] = byte(4*s + k)
		}
	}
	return idx
}

func tblIndex16(sel [8]int) (idx neon.V128) {
	for i, s := range sel {
		idx[2*i] = byte(2 * s)
		idx[2*i+1] = byte(2*s + 1)
	}
	return idx
}

func selector4(imm int) [4]int {
	return [4]int{imm & 3, imm >> 2 & 3, imm >> 4 & 3, imm >> 6 & 3}
}

func tblWith(idx neon.V128) native1 {
	return func(a neon.V128) neon.V128 { return neon.Tbl(a, idx) }
}

// MmShuffleEpi32 is _mm_shuffle_epi32: lane i takes lane (imm >> 2i) & 3.
func MmShuffleEpi32(a M128i, imm int) M128i {
	return op1[M128i](a, tblWith(tblIndex32(selector4(imm))), 0)
}

// MmShuffleloEpi16 is _mm_shufflelo_epi16: shuffles halfword lanes 0..3 and
// copies lanes 4..7.
func MmShuffleloEpi16(a M128i, imm int) M128i {
	s := selector4(imm)
	return op1[M128i](a, tblWith(tblIndex16([8]int{s[0], s[1], s[2], s[3], 4, 5, 6, 7})), 0)
}

// MmShufflehiEpi16 is _mm_shufflehi_epi16.
func MmShufflehiEpi16(a M128i, imm int) M128i {
	s := selector4(imm)
	return op1[M128i](a, tblWith(tblIndex16([8]int{0, 1, 2, 3, 4 + s[0], 4 + s[1], 4 + s[2], 4 + s[3]})), 0)
}

// MmShufflePs is _mm_shuffle_ps: lanes 0 and 1 from a, lanes 2 and 3 from
// b, each selected by a 2-bit field of imm.
func MmShufflePs(a, b M128, imm int) M128 {
	s := selector4(imm)
	return op2[M128](a, b, func(x, y neon.V128) neon.V128 {
		r := neon.DupLane32(x, s[0])
		r = neon.InsLane32(r, 1, x, s[1])
		r = neon.InsLane32(r, 2, y, s[2])
		return neon.InsLane32(r, 3, y, s[3])
	}, 0)
}

// MmShufflePd is _mm_shuffle_pd.
func MmShufflePd(a, b M128d, imm int) M128d {
	return op2[M128d](a, b, func(x, y neon.V128) neon.V128 {
		return neon.InsLane64(neon.DupLane64(x, imm&1), 1, y, imm>>1&1)
	}, 0)
}

var shuffleEpi8Mask = neon.Dup8(0x8F)

// shuffleBytes keeps bit 7 of each index, which pushes it out of TBL range
// and so zeroes the lane, and the low four bits.
func shuffleBytes(a, b neon.V128) neon.V128 {
	return neon.Tbl(a, neon.And(b, shuffleEpi8Mask))
}

// MmShuffleEpi8 is _mm_shuffle_epi8 (PSHUFB).
func MmShuffleEpi8(a, b M128i) M128i { return op2[M128i](a, b, shuffleBytes, 0) }

// MmPermutePs is _mm_permute_ps (VPERMILPS with an immediate).
func MmPermutePs(a M128, imm int) M128 {
	return op1[M128](a, tblWith(tblIndex32(selector4(imm))), 0)
}

// MmPermutePd is _mm_permute_pd: bit 0 selects lane 0, bit 1 lane 1.
func MmPermutePd(a M128d, imm int) M128d {
	return MmShufflePd(a, a, imm)
}

// MmPermutevarPs is _mm_permutevar_ps: lane i takes lane b[i] & 3.
func MmPermutevarPs(a M128, b M128i) M128 {
	var sel [4]int
	for i := range sel {
		sel[i] = int(b.U32(i) & 3)
	}
	return MmPermutePs(a, sel[0]|sel[1]<<2|sel[2]<<4|sel[3]<<6)
}

// ===== Unpack =====

// MmUnpackloEpi8 is _mm_unpacklo_epi8.
func MmUnpackloEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipLo8, 0) }

// MmUnpackhiEpi8 is _mm_unpackhi_epi8.
func MmUnpackhiEpi8(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipHi8, 0) }

// MmUnpackloEpi16 is _mm_unpacklo_epi16.
func MmUnpackloEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipLo16, 0) }

// MmUnpackhiEpi16 is _mm_unpackhi_epi16.
func MmUnpackhiEpi16(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipHi16, 0) }

// MmUnpackloEpi32 is _mm_unpacklo_epi32.
func MmUnpackloEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipLo32, 0) }

// MmUnpackhiEpi32 is _mm_unpackhi_epi32.
func MmUnpackhiEpi32(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipHi32, 0) }

// MmUnpackloEpi64 is _mm_unpacklo_epi64.
func MmUnpackloEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipLo64, 0) }

// MmUnpackhiEpi64 is _mm_unpackhi_epi64.
func MmUnpackhiEpi64(a, b M128i) M128i { return op2[M128i](a, b, neon.ZipHi64, 0) }

// MmUnpackloPs is _mm_unpacklo_ps.
func MmUnpackloPs(a, b M128) M128 { return op2[M128](a, b, neon.ZipLo32, 0) }

// MmUnpackhiPs is _mm_unpackhi_ps.
func MmUnpackhiPs(a, b M128) M128 { return op2[M128](a, b, neon.ZipHi32, 0) }

// MmUnpackloPd is _mm_unpacklo_pd.
func MmUnpackloPd(a, b M128d) M128d { return op2[M128d](a, b, neon.ZipLo64, 0) }

// MmUnpackhiPd is _mm_unpackhi_pd.
func MmUnpackhiPd(a, b M128d) M128d { return op2[M128d](a, b, neon.ZipHi64, 0) }

// MmMovehlPs is _mm_movehl_ps: (b2, b3, a2, a3).
func MmMovehlPs(a, b M128) M128 {
	return op2[M128](a, b, func(x, y neon.V128) neon.V128 { return neon.ZipHi64(y, x) }, 0)
}

// MmMovelhPs is _mm_movelh_ps: (a0, a1, b0, b1).
func MmMovelhPs(a, b M128) M128 { return op2[M128](a, b, neon.ZipLo64, 0) }

func dupEven32(a neon.V128) neon.V128 { return neon.TrnEven32(a, a) }
func dupOdd32(a neon.V128) neon.V128  { return neon.TrnOdd32(a, a) }
func dupLow64(a neon.V128) neon.V128  { return neon.DupLane64(a, 0) }

// MmMoveldupPs is _mm_moveldup_ps: (a0, a0, a2, a2).
func MmMoveldupPs(a M128) M128 { return op1[M128](a, dupEven32, 0) }

// MmMovehdupPs is _mm_movehdup_ps: (a1, a1, a3, a3).
func MmMovehdupPs(a M128) M128 { return op1[M128](a, dupOdd32, 0) }

// MmMovedupPd is _mm_movedup_pd: (a0, a0).
func MmMovedupPd(a M128d) M128d { return op1[M128d](a, dupLow64, 0) }

// ===== Blends =====

func laneMask32(bits int) (m neon.V128) {
	for i := range 4 {
		if bits&(1<<i) != 0 {
			m.SetU32(i, ^uint32(0))
		}
	}
	return m
}

func laneMask64(bits int) (m neon.V128) {
	for i := range 2 {
		if bits&(1<<i) != 0 {
			m.SetU64(i, ^uint64(0))
		}
	}
	return m
}

func laneMask16(bits int) (m neon.V128) {
	for i := range 8 {
		if bits&(1<<i) != 0 {
			m.SetU16(i, ^uint16(0))
		}
	}
	return m
}

// blendWith selects b where mask is set and a elsewhere.
func blendWith(mask neon.V128) native2 {
	return func(a, b neon.V128) neon.V128 { return neon.Bsl(mask, b, a) }
}

// MmBlendPs is _mm_blend_ps: bit i of imm selects lane i from b.
func MmBlendPs(a, b M128, imm int) M128 {
	return op2[M128](a, b, blendWith(laneMask32(imm)), 0)
}

// MmBlendPd is _mm_blend_pd.
func MmBlendPd(a, b M128d, imm int) M128d {
	return op2[M128d](a, b, blendWith(laneMask64(imm)), 0)
}

// MmBlendEpi16 is _mm_blend_epi16.
func MmBlendEpi16(a, b M128i, imm int) M128i {
	return op2[M128i](a, b, blendWith(laneMask16(imm)), 0)
}

// MmBlendEpi32 is _mm_blend_epi32.
func MmBlendEpi32(a, b M128i, imm int) M128i {
	return op2[M128i](a, b, blendWith(laneMask32(imm)), 0)
}

func blendv8(a, b, m neon.V128) neon.V128 {
	return neon.Bsl(neon.Cmgt8(neon.Zero(), m), b, a)
}

func blendv32(a, b, m neon.V128) neon.V128 { return neon.Bsl(neon.Sshr32(m, 31), b, a) }
func blendv64(a, b, m neon.V128) neon.V128 { return neon.Bsl(neon.Sshr64(m, 63), b, a) }

// MmBlendvEpi8 is _mm_blendv_epi8: the top bit of each mask byte selects b.
func MmBlendvEpi8(a, b, mask M128i) M128i { return op3[M128i](a, b, mask, blendv8, 0) }

// MmBlendvPs is _mm_blendv_ps.
func MmBlendvPs(a, b, mask M128) M128 { return op3[M128](a, b, mask, blendv32, 0) }

// MmBlendvPd is _mm_blendv_pd.
func MmBlendvPd(a, b, mask M128d) M128d { return op3[M128d](a, b, mask, blendv64, 0) }

// ===== Extract / insert =====

// MmExtractEpi8 is _mm_extract_epi8, zero-extended.
func MmExtractEpi8(a M128i, imm int) int32 { return int32(a.U8(imm & 15)) }

// MmExtractEpi16 is _mm_extract_epi16, zero-extended.
func MmExtractEpi16(a M128i, imm int) int32 { return int32(a.U16(imm & 7)) }

// MmExtractEpi32 is _mm_extract_epi32.
func MmExtractEpi32(a M128i, imm int) int32 { return a.I32(imm & 3) }

// MmExtractEpi64 is _mm_extract_epi64.
func MmExtractEpi64(a M128i, imm int) int64 { return a.I64(imm & 1) }

// MmExtractPs is _mm_extract_ps: the bits of float lane imm as an int.
func MmExtractPs(a M128, imm int) int32 { return int32(a.U32(imm & 3)) }

// MmInsertEpi8 is _mm_insert_epi8.
func MmInsertEpi8(a M128i, x int32, imm int) M128i {
	return M128i(neon.Ins8(native(a), imm, uint8(x)))
}

// MmInsertEpi16 is _mm_insert_epi16.
func MmInsertEpi16(a M128i, x int32, imm int) M128i {
	return M128i(neon.Ins16(native(a), imm, uint16(x)))
}

// MmInsertEpi32 is _mm_insert_epi32.
func MmInsertEpi32(a M128i, x int32, imm int) M128i {
	return M128i(neon.Ins32(native(a), imm, uint32(x)))
}

// MmInsertEpi64 is _mm_insert_epi64.
func MmInsertEpi64(a M128i, x int64, imm int) M128i {
	return M128i(neon.Ins64(native(a), imm, uint64(x)))
}

// ===== Movemask =====

// MmMovemaskEpi8 is _mm_movemask_epi8: bit i of the result is the top bit of
// byte lane i.
func MmMovemaskEpi8(a M128i) int32 {
	var m int32
	for i := range 16 {
		m |= int32(a[i]>>7) << i
	}
	return m
}

// MmMovemaskPs is _mm_movemask_ps.
func MmMovemaskPs(a M128) int32 {
	var m int32
	for i := range 4 {
		m |= int32(a.U32(i)>>31) << i
	}
	return m
}

// MmMovemaskPd is _mm_movemask_pd.
func MmMovemaskPd(a M128d) int32 {
	return int32(a.U64(0)>>63) | int32(a.U64(1)>>63)<<1
}
