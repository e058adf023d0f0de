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

// ZipLo8 is ZIP1 Vd.16B: interleaves the low halves of a and b.
func ZipLo8(a, b V128) (r V128) {
	for i := range 8 {
		r[2*i], r[2*i+1] = a[i], b[i]
	}
	return r
}

// ZipHi8 is ZIP2 Vd.16B.
func ZipHi8(a, b V128) (r V128) {
	for i := range 8 {
		r[2*i], r[2*i+1] = a[i+8], b[i+8]
	}
	return r
}

// ZipLo16 is ZIP1 Vd.8H.
func ZipLo16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU16(2*i, a.U16(i))
		r.SetU16(2*i+1, b.U16(i))
	}
	return r
}

// ZipHi16 is ZIP2 Vd.8H.
func ZipHi16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU16(2*i, a.U16(i+4))
		r.SetU16(2*i+1, b.U16(i+4))
	}
	return r
}

// ZipLo32 is ZIP1 Vd.4S.
func ZipLo32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(2*i, a.U32(i))
		r.SetU32(2*i+1, b.U32(i))
	}
	return r
}

// ZipHi32 is ZIP2 Vd.4S.
func ZipHi32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(2*i, a.U32(i+2))
		r.SetU32(2*i+1, b.U32(i+2))
	}
	return r
}

// ZipLo64 is ZIP1 Vd.2D.
func ZipLo64(a, b V128) (r V128) {
	r.SetU64(0, a.U64(0))
	r.SetU64(1, b.U64(0))
	return r
}

// ZipHi64 is ZIP2 Vd.2D.
func ZipHi64(a, b V128) (r V128) {
	r.SetU64(0, a.U64(1))
	r.SetU64(1, b.U64(1))
	return r
}

// UzpEven16 is UZP1 Vd.8H: the even lanes of a, then the even lanes of b.
func UzpEven16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU16(i, a.U16(2*i))
		r.SetU16(i+4, b.U16(2*i))
	}
	return r
}

// UzpOdd16 is UZP2 Vd.8H.
func UzpOdd16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU16(i, a.U16(2*i+1))
		r.SetU16(i+4, b.U16(2*i+1))
	}
	return r
}

// UzpEven32 is UZP1 Vd.4S.
func UzpEven32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(i, a.U32(2*i))
		r.SetU32(i+2, b.U32(2*i))
	}
	return r
}

// UzpOdd32 is UZP2 Vd.4S.
func UzpOdd32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(i, a.U32(2*i+1))
		r.SetU32(i+2, b.U32(2*i+1))
	}
	return r
}

// TrnEven32 is TRN1 Vd.4S: even lanes of a interleaved with even lanes of b.
func TrnEven32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(2*i, a.U32(2*i))
		r.SetU32(2*i+1, b.U32(2*i))
	}
	return r
}

// TrnOdd32 is TRN2 Vd.4S.
func TrnOdd32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(2*i, a.U32(2*i+1))
		r.SetU32(2*i+1, b.U32(2*i+1))
	}
	return r
}

// TrnEven64 is TRN1 Vd.2D, identical to ZIP1 at this width.
func TrnEven64(a, b V128) V128 { return ZipLo64(a, b) }

// TrnOdd64 is TRN2 Vd.2D.
func TrnOdd64(a, b V128) V128 { return ZipHi64(a, b) }
