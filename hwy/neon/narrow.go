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

// Narrowing primitives write the lower 64 bits of the result and clear the
// upper half. Their High forms keep the lower half of d and write the upper.

func narrow16(d V128, off int, a V128, f func(uint16) uint8) V128 {
	for i := range 8 {
		d[off+i] = f(a.U16(i))
	}
	return d
}

func narrow32(d V128, off int, a V128, f func(uint32) uint16) V128 {
	for i := range 4 {
		d.SetU16(off+i, f(a.U32(i)))
	}
	return d
}

func truncXtn16(x uint16) uint8  { return uint8(x) }
func truncXtn32(x uint32) uint16 { return uint16(x) }
func satXtn16(x uint16) uint8    { return sat8(int(int16(x))) }
func satXtn32(x uint32) uint16   { return sat16(int(int32(x))) }
func usatXtn16(x uint16) uint8   { return usat8(int(int16(x))) }
func usatXtn32(x uint32) uint16  { return usat16(int(int32(x))) }

// Xtn16 is XTN Vd.8B, Vn.8H.
func Xtn16(a V128) V128 { return narrow16(V128{}, 0, a, truncXtn16) }

// Xtn32 is XTN Vd.4H, Vn.4S.
func Xtn32(a V128) V128 { return narrow32(V128{}, 0, a, truncXtn32) }

// Xtn64 is XTN Vd.2S, Vn.2D.
func Xtn64(a V128) (r V128) {
	r.SetU32(0, uint32(a.U64(0)))
	r.SetU32(1, uint32(a.U64(1)))
	return r
}

// Sqxtn16 is SQXTN Vd.8B, Vn.8H: signed saturation to int8.
func Sqxtn16(a V128) V128 { return narrow16(V128{}, 0, a, satXtn16) }

// Sqxtn16High is SQXTN2 Vd.16B, Vn.8H.
func Sqxtn16High(d, a V128) V128 { return narrow16(d, 8, a, satXtn16) }

// Sqxtn32 is SQXTN Vd.4H, Vn.4S.
func Sqxtn32(a V128) V128 { return narrow32(V128{}, 0, a, satXtn32) }

// Sqxtn32High is SQXTN2 Vd.8H, Vn.4S.
func Sqxtn32High(d, a V128) V128 { return narrow32(d, 4, a, satXtn32) }

// Sqxtun16 is SQXTUN Vd.8B, Vn.8H: signed input saturated to uint8.
func Sqxtun16(a V128) V128 { return narrow16(V128{}, 0, a, usatXtn16) }

// Sqxtun16High is SQXTUN2 Vd.16B, Vn.8H.
func Sqxtun16High(d, a V128) V128 { return narrow16(d, 8, a, usatXtn16) }

// Sqxtun32 is SQXTUN Vd.4H, Vn.4S.
func Sqxtun32(a V128) V128 { return narrow32(V128{}, 0, a, usatXtn32) }

// Sqxtun32High is SQXTUN2 Vd.8H, Vn.4S.
func Sqxtun32High(d, a V128) V128 { return narrow32(d, 4, a, usatXtn32) }

// Sxtl8 is SXTL Vd.8H, Vn.8B.
func Sxtl8(a V128) (r V128) {
	for i := range 8 {
		r.SetU16(i, uint16(int8(a[i])))
	}
	return r
}

// Sxtl8High is SXTL2 Vd.8H, Vn.16B.
func Sxtl8High(a V128) V128 { return Sxtl8(Ext(a, a, 8)) }

// Uxtl8 is UXTL Vd.8H, Vn.8B.
func Uxtl8(a V128) (r V128) {
	for i := range 8 {
		r.SetU16(i, uint16(a[i]))
	}
	return r
}

// Uxtl8High is UXTL2 Vd.8H, Vn.16B.
func Uxtl8High(a V128) V128 { return Uxtl8(Ext(a, a, 8)) }

// Sxtl16 is SXTL Vd.4S, Vn.4H.
func Sxtl16(a V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(int16(a.U16(i))))
	}
	return r
}

// Sxtl16High is SXTL2 Vd.4S, Vn.8H.
func Sxtl16High(a V128) V128 { return Sxtl16(Ext(a, a, 8)) }

// Uxtl16 is UXTL Vd.4S, Vn.4H.
func Uxtl16(a V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(a.U16(i)))
	}
	return r
}

// Uxtl16High is UXTL2 Vd.4S, Vn.8H.
func Uxtl16High(a V128) V128 { return Uxtl16(Ext(a, a, 8)) }

// Sxtl32 is SXTL Vd.2D, Vn.2S.
func Sxtl32(a V128) (r V128) {
	r.SetU64(0, uint64(int32(a.U32(0))))
	r.SetU64(1, uint64(int32(a.U32(1))))
	return r
}

// Sxtl32High is SXTL2 Vd.2D, Vn.4S.
func Sxtl32High(a V128) V128 { return Sxtl32(Ext(a, a, 8)) }

// Uxtl32 is UXTL Vd.2D, Vn.2S.
func Uxtl32(a V128) (r V128) {
	r.SetU64(0, uint64(a.U32(0)))
	r.SetU64(1, uint64(a.U32(1)))
	return r
}

// Uxtl32High is UXTL2 Vd.2D, Vn.4S.
func Uxtl32High(a V128) V128 { return Uxtl32(Ext(a, a, 8)) }
