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

// Package sse provides the x86 SSE..SSE4.1 and AVX/AVX2 vector intrinsics as
// pure functions over emulated register types. Every operation is built from
// the AArch64 Advanced SIMD primitives of package neon and then passed through
// a correction step that restores the x86 result bit for bit where the two
// architectures disagree: the sign of the indefinite NaN, min/max with NaN or
// signed zero operands, and integer conversion overflow.
//
// Function names follow the Intel intrinsic names: _mm_add_ps is MmAddPs and
// _mm256_add_ps is Mm256AddPs. Immediate operands are plain int parameters
// and are masked to their encodable width rather than rejected.
//
// 256-bit operations are evaluated as two independent 128-bit halves, except
// for the few that are defined to move data across the halves (broadcasts,
// permute2f128, permute4x64, permutevar8x32 and the width-changing
// conversions).
package sse

import (
	"encoding/binary"
	"math"
)

// M128 is __m128: four float32 lanes.
type M128 [16]byte

// M128d is __m128d: two float64 lanes.
type M128d [16]byte

// M128i is __m128i: 128 bits of integer lanes of any width.
type M128i [16]byte

// M256 is __m256: eight float32 lanes. Index 0 holds the lower 128 bits.
type M256 [2][16]byte

// M256d is __m256d: four float64 lanes.
type M256d [2][16]byte

// M256i is __m256i.
type M256i [2][16]byte

// narrow is the set of 128-bit register types.
type narrow interface {
	~[16]byte
}

// wide is the set of 256-bit register types.
type wide interface {
	~[2][16]byte
}

func le32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
func le64(b []byte) uint64 { return binary.LittleEndian.Uint64(b) }

// F32 returns float lane i (0..3).
func (v M128) F32(i int) float32 { return math.Float32frombits(le32(v[4*i:])) }

// U32 returns the bits of float lane i.
func (v M128) U32(i int) uint32 { return le32(v[4*i:]) }

// F64 returns double lane i (0..1).
func (v M128d) F64(i int) float64 { return math.Float64frombits(le64(v[8*i:])) }

// U64 returns the bits of double lane i.
func (v M128d) U64(i int) uint64 { return le64(v[8*i:]) }

// I8 returns signed byte lane i (0..15).
func (v M128i) I8(i int) int8 { return int8(v[i]) }

// U8 returns byte lane i.
func (v M128i) U8(i int) uint8 { return v[i] }

// I16 returns signed halfword lane i (0..7).
func (v M128i) I16(i int) int16 { return int16(v.U16(i)) }

// U16 returns halfword lane i.
func (v M128i) U16(i int) uint16 { return binary.LittleEndian.Uint16(v[2*i:]) }

// I32 returns signed word lane i (0..3).
func (v M128i) I32(i int) int32 { return int32(v.U32(i)) }

// U32 returns word lane i.
func (v M128i) U32(i int) uint32 { return le32(v[4*i:]) }

// I64 returns signed doubleword lane i (0..1).
func (v M128i) I64(i int) int64 { return int64(v.U64(i)) }

// U64 returns doubleword lane i.
func (v M128i) U64(i int) uint64 { return le64(v[8*i:]) }

// Lo returns the lower 128 bits.
func (v M256) Lo() M128 { return M128(v[0]) }

// Hi returns the upper 128 bits.
func (v M256) Hi() M128 { return M128(v[1]) }

// F32 returns float lane i (0..7).
func (v M256) F32(i int) float32 { return M128(v[i>>2]).F32(i & 3) }

// U32 returns the bits of float lane i.
func (v M256) U32(i int) uint32 { return M128(v[i>>2]).U32(i & 3) }

func (v M256d) Lo() M128d { return M128d(v[0]) }
func (v M256d) Hi() M128d { return M128d(v[1]) }

// F64 returns double lane i (0..3).
func (v M256d) F64(i int) float64 { return M128d(v[i>>1]).F64(i & 1) }

// U64 returns the bits of double lane i.
func (v M256d) U64(i int) uint64 { return M128d(v[i>>1]).U64(i & 1) }

func (v M256i) Lo() M128i { return M128i(v[0]) }
func (v M256i) Hi() M128i { return M128i(v[1]) }

// I8 returns signed byte lane i (0..31).
func (v M256i) I8(i int) int8 { return M128i(v[i>>4]).I8(i & 15) }

// U8 returns byte lane i.
func (v M256i) U8(i int) uint8 { return v[i>>4][i&15] }

// I16 returns signed halfword lane i (0..15).
func (v M256i) I16(i int) int16 { return M128i(v[i>>3]).I16(i & 7) }

// U16 returns halfword lane i.
func (v M256i) U16(i int) uint16 { return M128i(v[i>>3]).U16(i & 7) }

// I32 returns signed word lane i (0..7).
func (v M256i) I32(i int) int32 { return M128i(v[i>>2]).I32(i & 3) }

// U32 returns word lane i.
func (v M256i) U32(i int) uint32 { return M128i(v[i>>2]).U32(i & 3) }

// I64 returns signed doubleword lane i (0..3).
func (v M256i) I64(i int) int64 { return M128i(v[i>>1]).I64(i & 1) }

// U64 returns doubleword lane i.
func (v M256i) U64(i int) uint64 { return M128i(v[i>>1]).U64(i & 1) }
