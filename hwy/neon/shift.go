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

package neon

// An immediate count at or above the lane width yields zero for the logical
// shifts and the sign fill for SSHR.

// Shl16 is SHL Vd.8H, #n.
func Shl16(a V128, n uint) V128 {
	return map16(a, a, func(x, _ uint16) uint16 { return shl(x, n) })
}

// Shl32 is SHL Vd.4S, #n.
func Shl32(a V128, n uint) V128 {
	return map32(a, a, func(x, _ uint32) uint32 { return shl(x, n) })
}

// Shl64 is SHL Vd.2D, #n.
func Shl64(a V128, n uint) V128 {
	return map64(a, a, func(x, _ uint64) uint64 { return shl(x, n) })
}

// Ushr16 is USHR Vd.8H, #n.
func Ushr16(a V128, n uint) V128 {
	return map16(a, a, func(x, _ uint16) uint16 { return shr(x, n) })
}

// Ushr32 is USHR Vd.4S, #n.
func Ushr32(a V128, n uint) V128 {
	return map32(a, a, func(x, _ uint32) uint32 { return shr(x, n) })
}

// Ushr64 is USHR Vd.2D, #n.
func Ushr64(a V128, n uint) V128 {
	return map64(a, a, func(x, _ uint64) uint64 { return shr(x, n) })
}

// Sshr16 is SSHR Vd.8H, #n.
func Sshr16(a V128, n uint) V128 {
	n = min(n, 15)
	return map16(a, a, func(x, _ uint16) uint16 { return uint16(int16(x) >> n) })
}

// Sshr32 is SSHR Vd.4S, #n.
func Sshr32(a V128, n uint) V128 {
	n = min(n, 31)
	return map32(a, a, func(x, _ uint32) uint32 { return uint32(int32(x) >> n) })
}

// Sshr64 is SSHR Vd.2D, #n.
func Sshr64(a V128, n uint) V128 {
	n = min(n, 63)
	return map64(a, a, func(x, _ uint64) uint64 { return uint64(int64(x) >> n) })
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Go defines over-wide shifts of unsigned values as zero.
func shl[T unsigned](x T, n uint) T { return x << n }
func shr[T unsigned](x T, n uint) T { return x >> n }

// Vector shifts read the count from the signed low byte of each lane of b.
// A positive count shifts left, a negative count shifts right.

func ushl[T unsigned](x T, c int8) T {
	if c >= 0 {
		return x << uint(c)
	}
	return x >> uint(-int(c))
}

// Ushl16 is USHL Vd.8H.
func Ushl16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return ushl(x, int8(y)) })
}

// Ushl32 is USHL Vd.4S.
func Ushl32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 { return ushl(x, int8(y)) })
}

// Ushl64 is USHL Vd.2D.
func Ushl64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 { return ushl(x, int8(y)) })
}

// Sshl16 is SSHL Vd.8H. Right shifts are arithmetic.
func Sshl16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 {
		if c := int8(y); c < 0 {
			return uint16(int16(x) >> min(uint(-int(c)), 15))
		}
		return ushl(x, int8(y))
	})
}

// Sshl32 is SSHL Vd.4S.
func Sshl32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 {
		if c := int8(y); c < 0 {
			return uint32(int32(x) >> min(uint(-int(c)), 31))
		}
		return ushl(x, int8(y))
	})
}

// Sshl64 is SSHL Vd.2D.
func Sshl64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 {
		if c := int8(y); c < 0 {
			return uint64(int64(x) >> min(uint(-int(c)), 63))
		}
		return ushl(x, int8(y))
	})
}

// Ext is EXT Vd.16B, Vn.16B, Vm.16B, #n: bytes n..15 of a followed by bytes
// 0..n-1 of b. n is taken modulo 16.
func Ext(a, b V128, n int) (r V128) {
	n &= 15
	copy(r[:], a[n:])
	copy(r[16-n:], b[:n])
	return r
}

// Tbl is TBL Vd.16B, {Vn.16B}, Vm.16B: byte lookup in t; indices of 16 or
// more yield zero.
func Tbl(t, idx V128) (r V128) {
	for i, j := range idx {
		if j < 16 {
			r[i] = t[j]
		}
	}
	return r
}
