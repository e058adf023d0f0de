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

// Package neon models the AArch64 Advanced SIMD (NEON) primitives that the
// x86 soft intrinsics in package sse are assembled from.
//
// Every primitive operates on a V128, the 128-bit Q register, and follows the
// architectural semantics with FPCR.DN=0, round-to-nearest and no
// flush-to-zero. Those semantics are reproduced in pure Go so that results do
// not depend on the host: a NEON divide of 0/0 yields the positive default
// NaN here on amd64 just as it does on arm64.
//
// Names follow the instruction mnemonic plus the lane width in bits, e.g.
// Add32 is ADD Vd.4S, Fdiv64 is FDIV Vd.2D. The "2" (upper half) forms of
// widening and narrowing instructions carry a High suffix.
package neon

import (
	"encoding/binary"
	"math"
)

// V128 is a 128-bit NEON register. It is a bag of bits: each primitive
// chooses the lane view it reads and writes. Lane 0 occupies the lowest
// addressed bytes.
type V128 [16]byte

// U8 returns byte lane i.
func (v V128) U8(i int) uint8 {
	return v[i]
}

// U16 returns halfword lane i.
func (v V128) U16(i int) uint16 {
	return binary.LittleEndian.Uint16(v[2*i:])
}

// U32 returns word lane i.
func (v V128) U32(i int) uint32 {
	return binary.LittleEndian.Uint32(v[4*i:])
}

// U64 returns doubleword lane i.
func (v V128) U64(i int) uint64 {
	return binary.LittleEndian.Uint64(v[8*i:])
}

// F32 returns single-precision lane i.
func (v V128) F32(i int) float32 {
	return math.Float32frombits(v.U32(i))
}

// F64 returns double-precision lane i.
func (v V128) F64(i int) float64 {
	return math.Float64frombits(v.U64(i))
}

// SetU8 sets byte lane i.
func (v *V128) SetU8(i int, x uint8) {
	v[i] = x
}

// SetU16 sets halfword lane i.
func (v *V128) SetU16(i int, x uint16) {
	binary.LittleEndian.PutUint16(v[2*i:], x)
}

// SetU32 sets word lane i.
func (v *V128) SetU32(i int, x uint32) {
	binary.LittleEndian.PutUint32(v[4*i:], x)
}

// SetU64 sets doubleword lane i.
func (v *V128) SetU64(i int, x uint64) {
	binary.LittleEndian.PutUint64(v[8*i:], x)
}

// SetF32 sets single-precision lane i.
func (v *V128) SetF32(i int, x float32) {
	v.SetU32(i, math.Float32bits(x))
}

// SetF64 sets double-precision lane i.
func (v *V128) SetF64(i int, x float64) {
	v.SetU64(i, math.Float64bits(x))
}

// ===== Lane mapping helpers =====

func map8(a, b V128, f func(x, y uint8) uint8) (r V128) {
	for i := range 16 {
		r[i] = f(a[i], b[i])
	}
	return r
}

func map16(a, b V128, f func(x, y uint16) uint16) (r V128) {
	for i := range 8 {
		r.SetU16(i, f(a.U16(i), b.U16(i)))
	}
	return r
}

func map32(a, b V128, f func(x, y uint32) uint32) (r V128) {
	for i := range 4 {
		r.SetU32(i, f(a.U32(i), b.U32(i)))
	}
	return r
}

func map64(a, b V128, f func(x, y uint64) uint64) (r V128) {
	for i := range 2 {
		r.SetU64(i, f(a.U64(i), b.U64(i)))
	}
	return r
}

func mask8(b bool) uint8 {
	if b {
		return 0xff
	}
	return 0
}

func mask16(b bool) uint16 {
	if b {
		return 0xffff
	}
	return 0
}

func mask32(b bool) uint32 {
	if b {
		return 0xffffffff
	}
	return 0
}

func mask64(b bool) uint64 {
	if b {
		return 0xffffffffffffffff
	}
	return 0
}

// ===== Constructors and lane moves =====

// Zero returns an all-zero register (MOVI Vd.2D, #0).
func Zero() V128 {
	return V128{}
}

// Ones returns an all-ones register (MVNI Vd.4S, #0).
func Ones() V128 {
	return Dup64(0xffffffffffffffff)
}

// Dup8 replicates x into every byte lane (DUP Vd.16B, Wn).
func Dup8(x uint8) (r V128) {
	for i := range 16 {
		r[i] = x
	}
	return r
}

// Dup16 replicates x into every halfword lane (DUP Vd.8H, Wn).
func Dup16(x uint16) (r V128) {
	for i := range 8 {
		r.SetU16(i, x)
	}
	return r
}

// Dup32 replicates x into every word lane (DUP Vd.4S, Wn).
func Dup32(x uint32) (r V128) {
	for i := range 4 {
		r.SetU32(i, x)
	}
	return r
}

// Dup64 replicates x into both doubleword lanes (DUP Vd.2D, Xn).
func Dup64(x uint64) (r V128) {
	r.SetU64(0, x)
	r.SetU64(1, x)
	return r
}

// DupLane8 replicates byte lane i of a (DUP Vd.16B, Vn.B[i]).
func DupLane8(a V128, i int) V128 {
	return Dup8(a.U8(i & 15))
}

// DupLane16 replicates halfword lane i of a (DUP Vd.8H, Vn.H[i]).
func DupLane16(a V128, i int) V128 {
	return Dup16(a.U16(i & 7))
}

// DupLane32 replicates word lane i of a (DUP Vd.4S, Vn.S[i]).
func DupLane32(a V128, i int) V128 {
	return Dup32(a.U32(i & 3))
}

// DupLane64 replicates doubleword lane i of a (DUP Vd.2D, Vn.D[i]).
func DupLane64(a V128, i int) V128 {
	return Dup64(a.U64(i & 1))
}

// Ins8 writes x into byte lane i of d (INS Vd.B[i], Wn).
func Ins8(d V128, i int, x uint8) V128 {
	d.SetU8(i&15, x)
	return d
}

// Ins16 writes x into halfword lane i of d (INS Vd.H[i], Wn).
func Ins16(d V128, i int, x uint16) V128 {
	d.SetU16(i&7, x)
	return d
}

// Ins32 writes x into word lane i of d (INS Vd.S[i], Wn).
func Ins32(d V128, i int, x uint32) V128 {
	d.SetU32(i&3, x)
	return d
}

// Ins64 writes x into doubleword lane i of d (INS Vd.D[i], Xn).
func Ins64(d V128, i int, x uint64) V128 {
	d.SetU64(i&1, x)
	return d
}

// InsLane32 copies word lane j of n into word lane i of d (INS Vd.S[i], Vn.S[j]).
func InsLane32(d V128, i int, n V128, j int) V128 {
	return Ins32(d, i, n.U32(j&3))
}

// InsLane64 copies doubleword lane j of n into lane i of d (INS Vd.D[i], Vn.D[j]).
func InsLane64(d V128, i int, n V128, j int) V128 {
	return Ins64(d, i, n.U64(j&1))
}
