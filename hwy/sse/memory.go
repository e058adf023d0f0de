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
	"encoding/binary"
	"math"
	"unsafe"

	"github.com/ajroetker/softintrin/hwy"
)

// Memory is a caller-owned slice. Aligned and unaligned forms are the same
// operation, and a slice too short for the access panics with an index out
// of range error.

func putF32s(dst []byte, p []float32) {
	_ = p[len(dst)/4-1]
	for i := range len(dst) / 4 {
		binary.LittleEndian.PutUint32(dst[4*i:], math.Float32bits(p[i]))
	}
}

func getF32s(p []float32, src []byte) {
	_ = p[len(src)/4-1]
	for i := range len(src) / 4 {
		p[i] = math.Float32frombits(le32(src[4*i:]))
	}
}

func putF64s(dst []byte, p []float64) {
	_ = p[len(dst)/8-1]
	for i := range len(dst) / 8 {
		binary.LittleEndian.PutUint64(dst[8*i:], math.Float64bits(p[i]))
	}
}

func getF64s(p []float64, src []byte) {
	_ = p[len(src)/8-1]
	for i := range len(src) / 8 {
		p[i] = math.Float64frombits(le64(src[8*i:]))
	}
}

func sizeOf[T hwy.Integers]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// putInts stores the elements of p that fit in dst as little-endian lanes.
func putInts[T hwy.Integers](dst []byte, p []T) {
	size := sizeOf[T]()
	n := len(dst) / size
	_ = p[n-1]
	for i := range n {
		x := uint64(p[i])
		switch size {
		case 1:
			dst[i] = byte(x)
		case 2:
			binary.LittleEndian.PutUint16(dst[2*i:], uint16(x))
		case 4:
			binary.LittleEndian.PutUint32(dst[4*i:], uint32(x))
		default:
			binary.LittleEndian.PutUint64(dst[8*i:], x)
		}
	}
}

func getInts[T hwy.Integers](p []T, src []byte) {
	size := sizeOf[T]()
	n := len(src) / size
	_ = p[n-1]
	for i := range n {
		switch size {
		case 1:
			p[i] = T(src[i])
		case 2:
			p[i] = T(binary.LittleEndian.Uint16(src[2*i:]))
		case 4:
			p[i] = T(le32(src[4*i:]))
		default:
			p[i] = T(le64(src[8*i:]))
		}
	}
}

// ===== 128-bit set =====

// MmSetrPs is _mm_setr_ps: e0 lands in lane 0.
func MmSetrPs(e0, e1, e2, e3 float32) (r M128) {
	putF32s(r[:], []float32{e0, e1, e2, e3})
	return r
}

// MmSetPs is _mm_set_ps: arguments run from the highest lane to lane 0.
func MmSetPs(e3, e2, e1, e0 float32) M128 { return MmSetrPs(e0, e1, e2, e3) }

// MmSet1Ps is _mm_set1_ps.
func MmSet1Ps(x float32) M128 { return MmSetrPs(x, x, x, x) }

// MmSetSs is _mm_set_ss: x in lane 0, zero elsewhere.
func MmSetSs(x float32) M128 { return MmSetrPs(x, 0, 0, 0) }

// MmSetzeroPs is _mm_setzero_ps.
func MmSetzeroPs() M128 { return MmSet1Ps(0) }

// MmUndefinedPs is _mm_undefined_ps. It is always zero here.
func MmUndefinedPs() M128 { return MmSetzeroPs() }

// MmSetrPd is _mm_setr_pd.
func MmSetrPd(e0, e1 float64) (r M128d) {
	putF64s(r[:], []float64{e0, e1})
	return r
}

// MmSetPd is _mm_set_pd.
func MmSetPd(e1, e0 float64) M128d { return MmSetrPd(e0, e1) }

// MmSet1Pd is _mm_set1_pd.
func MmSet1Pd(x float64) M128d { return MmSetrPd(x, x) }

// MmSetSd is _mm_set_sd.
func MmSetSd(x float64) M128d { return MmSetrPd(x, 0) }

// MmSetzeroPd is _mm_setzero_pd.
func MmSetzeroPd() M128d { return MmSet1Pd(0) }

// MmUndefinedPd is _mm_undefined_pd.
func MmUndefinedPd() M128d { return MmSetzeroPd() }

// MmSetrEpi8 is _mm_setr_epi8.
func MmSetrEpi8(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15 int8) (r M128i) {
	putInts(r[:], []int8{e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15})
	return r
}

// MmSetEpi8 is _mm_set_epi8.
func MmSetEpi8(e15, e14, e13, e12, e11, e10, e9, e8, e7, e6, e5, e4, e3, e2, e1, e0 int8) M128i {
	return MmSetrEpi8(e0, e1, e2, e3, e4, e5, e6, e7, e8, e9, e10, e11, e12, e13, e14, e15)
}

// MmSetrEpi16 is _mm_setr_epi16.
func MmSetrEpi16(e0, e1, e2, e3, e4, e5, e6, e7 int16) (r M128i) {
	putInts(r[:], []int16{e0, e1, e2, e3, e4, e5, e6, e7})
	return r
}

// MmSetEpi16 is _mm_set_epi16.
func MmSetEpi16(e7, e6, e5, e4, e3, e2, e1, e0 int16) M128i {
	return MmSetrEpi16(e0, e1, e2, e3, e4, e5, e6, e7)
}

// MmSetrEpi32 is _mm_setr_epi32.
func MmSetrEpi32(e0, e1, e2, e3 int32) (r M128i) {
	putInts(r[:], []int32{e0, e1, e2, e3})
	return r
}

// MmSetEpi32 is _mm_set_epi32.
func MmSetEpi32(e3, e2, e1, e0 int32) M128i { return MmSetrEpi32(e0, e1, e2, e3) }

// MmSetEpi64x is _mm_set_epi64x.
func MmSetEpi64x(e1, e0 int64) (r M128i) {
	putInts(r[:], []int64{e0, e1})
	return r
}

// MmSet1Epi8 is _mm_set1_epi8.
func MmSet1Epi8(x int8) (r M128i) {
	for i := range r {
		r[i] = byte(x)
	}
	return r
}

// MmSet1Epi16 is _mm_set1_epi16.
func MmSet1Epi16(x int16) M128i { return MmSetrEpi16(x, x, x, x, x, x, x, x) }

// MmSet1Epi32 is _mm_set1_epi32.
func MmSet1Epi32(x int32) M128i { return MmSetrEpi32(x, x, x, x) }

// MmSet1Epi64x is _mm_set1_epi64x.
func MmSet1Epi64x(x int64) M128i { return MmSetEpi64x(x, x) }

// MmSetzeroSi128 is _mm_setzero_si128.
func MmSetzeroSi128() M128i { return MmSet1Epi32(0) }

// MmUndefinedSi128 is _mm_undefined_si128.
func MmUndefinedSi128() M128i { return MmSetzeroSi128() }

// ===== 128-bit load/store =====

// MmLoadPs is _mm_load_ps.
func MmLoadPs(p []float32) (r M128) {
	putF32s(r[:], p)
	return r
}

// MmLoaduPs is _mm_loadu_ps.
func MmLoaduPs(p []float32) M128 { return MmLoadPs(p) }

// MmLoadSs is _mm_load_ss: p[0] in lane 0, zero elsewhere.
func MmLoadSs(p []float32) M128 { return MmSetSs(p[0]) }

// MmLoad1Ps is _mm_load1_ps.
func MmLoad1Ps(p []float32) M128 { return MmSet1Ps(p[0]) }

// MmLoadPd is _mm_load_pd.
func MmLoadPd(p []float64) (r M128d) {
	putF64s(r[:], p)
	return r
}

// MmLoaduPd is _mm_loadu_pd.
func MmLoaduPd(p []float64) M128d { return MmLoadPd(p) }

// MmLoadSd is _mm_load_sd.
func MmLoadSd(p []float64) M128d { return MmSetSd(p[0]) }

// MmLoad1Pd is _mm_load1_pd.
func MmLoad1Pd(p []float64) M128d { return MmSet1Pd(p[0]) }

// MmLoaddupPd is _mm_loaddup_pd.
func MmLoaddupPd(p []float64) M128d { return MmLoad1Pd(p) }

// MmLoadSi128 is _mm_load_si128 over any integer element type.
func MmLoadSi128[T hwy.Integers](p []T) (r M128i) {
	putInts(r[:], p)
	return r
}

// MmLoaduSi128 is _mm_loadu_si128.
func MmLoaduSi128[T hwy.Integers](p []T) M128i { return MmLoadSi128(p) }

// MmLoadlEpi64 is _mm_loadl_epi64: the low 8 bytes, upper half zero.
func MmLoadlEpi64[T hwy.Integers](p []T) (r M128i) {
	putInts(r[:8], p)
	return r
}

// MmStorePs is _mm_store_ps.
func MmStorePs(p []float32, a M128) { getF32s(p, a[:]) }

// MmStoreuPs is _mm_storeu_ps.
func MmStoreuPs(p []float32, a M128) { MmStorePs(p, a) }

// MmStoreSs is _mm_store_ss.
func MmStoreSs(p []float32, a M128) { p[0] = a.F32(0) }

// MmStore1Ps is _mm_store1_ps: lane 0 to four elements.
func MmStore1Ps(p []float32, a M128) { MmStorePs(p, MmSet1Ps(a.F32(0))) }

// MmStorePd is _mm_store_pd.
func MmStorePd(p []float64, a M128d) { getF64s(p, a[:]) }

// MmStoreuPd is _mm_storeu_pd.
func MmStoreuPd(p []float64, a M128d) { MmStorePd(p, a) }

// MmStoreSd is _mm_store_sd.
func MmStoreSd(p []float64, a M128d) { p[0] = a.F64(0) }

// MmStoreSi128 is _mm_store_si128.
func MmStoreSi128[T hwy.Integers](p []T, a M128i) { getInts(p, a[:]) }

// MmStoreuSi128 is _mm_storeu_si128.
func MmStoreuSi128[T hwy.Integers](p []T, a M128i) { MmStoreSi128(p, a) }

// MmStorelEpi64 is _mm_storel_epi64.
func MmStorelEpi64[T hwy.Integers](p []T, a M128i) { getInts(p, a[:8]) }

// ===== 256-bit set =====

// Mm256SetrPs is _mm256_setr_ps.
func Mm256SetrPs(e0, e1, e2, e3, e4, e5, e6, e7 float32) M256 {
	return M256{MmSetrPs(e0, e1, e2, e3), MmSetrPs(e4, e5, e6, e7)}
}

// Mm256SetPs is _mm256_set_ps.
func Mm256SetPs(e7, e6, e5, e4, e3, e2, e1, e0 float32) M256 {
	return Mm256SetrPs(e0, e1, e2, e3, e4, e5, e6, e7)
}

// Mm256Set1Ps is _mm256_set1_ps.
func Mm256Set1Ps(x float32) M256 { return M256{MmSet1Ps(x), MmSet1Ps(x)} }

// Mm256SetzeroPs is _mm256_setzero_ps.
func Mm256SetzeroPs() M256 { return Mm256Set1Ps(0) }

// Mm256SetrPd is _mm256_setr_pd.
func Mm256SetrPd(e0, e1, e2, e3 float64) M256d {
	return M256d{MmSetrPd(e0, e1), MmSetrPd(e2, e3)}
}

// Mm256SetPd is _mm256_set_pd.
func Mm256SetPd(e3, e2, e1, e0 float64) M256d { return Mm256SetrPd(e0, e1, e2, e3) }

// Mm256Set1Pd is _mm256_set1_pd.
func Mm256Set1Pd(x float64) M256d { return M256d{MmSet1Pd(x), MmSet1Pd(x)} }

// Mm256SetzeroPd is _mm256_setzero_pd.
func Mm256SetzeroPd() M256d { return Mm256Set1Pd(0) }

// Mm256SetrEpi32 is _mm256_setr_epi32.
func Mm256SetrEpi32(e0, e1, e2, e3, e4, e5, e6, e7 int32) M256i {
	return M256i{MmSetrEpi32(e0, e1, e2, e3), MmSetrEpi32(e4, e5, e6, e7)}
}

// Mm256SetEpi32 is _mm256_set_epi32.
func Mm256SetEpi32(e7, e6, e5, e4, e3, e2, e1, e0 int32) M256i {
	return Mm256SetrEpi32(e0, e1, e2, e3, e4, e5, e6, e7)
}

// Mm256SetEpi64x is _mm256_set_epi64x.
func Mm256SetEpi64x(e3, e2, e1, e0 int64) M256i {
	return M256i{MmSetEpi64x(e1, e0), MmSetEpi64x(e3, e2)}
}

// Mm256Set1Epi8 is _mm256_set1_epi8.
func Mm256Set1Epi8(x int8) M256i { return M256i{MmSet1Epi8(x), MmSet1Epi8(x)} }

// Mm256Set1Epi16 is _mm256_set1_epi16.
func Mm256Set1Epi16(x int16) M256i { return M256i{MmSet1Epi16(x), MmSet1Epi16(x)} }

// Mm256Set1Epi32 is _mm256_set1_epi32.
func Mm256Set1Epi32(x int32) M256i { return M256i{MmSet1Epi32(x), MmSet1Epi32(x)} }

// Mm256Set1Epi64x is _mm256_set1_epi64x.
func Mm256Set1Epi64x(x int64) M256i { return M256i{MmSet1Epi64x(x), MmSet1Epi64x(x)} }

// Mm256SetzeroSi256 is _mm256_setzero_si256.
func Mm256SetzeroSi256() M256i { return Mm256Set1Epi32(0) }

// Mm256SetM128 is _mm256_set_m128: hi becomes the upper half.
func Mm256SetM128(hi, lo M128) M256 { return M256{lo, hi} }

// Mm256SetrM128 is _mm256_setr_m128.
func Mm256SetrM128(lo, hi M128) M256 { return M256{lo, hi} }

// Mm256SetM128d is _mm256_set_m128d.
func Mm256SetM128d(hi, lo M128d) M256d { return M256d{lo, hi} }

// Mm256SetrM128d is _mm256_setr_m128d.
func Mm256SetrM128d(lo, hi M128d) M256d { return M256d{lo, hi} }

// Mm256SetM128i is _mm256_set_m128i.
func Mm256SetM128i(hi, lo M128i) M256i { return M256i{lo, hi} }

// Mm256SetrM128i is _mm256_setr_m128i.
func Mm256SetrM128i(lo, hi M128i) M256i { return M256i{lo, hi} }

// ===== 256-bit load/store =====

// Mm256LoadPs is _mm256_load_ps.
func Mm256LoadPs(p []float32) M256 {
	_ = p[7]
	return M256{MmLoadPs(p[:4]), MmLoadPs(p[4:8])}
}

// Mm256LoaduPs is _mm256_loadu_ps.
func Mm256LoaduPs(p []float32) M256 { return Mm256LoadPs(p) }

// Mm256LoadPd is _mm256_load_pd.
func Mm256LoadPd(p []float64) M256d {
	_ = p[3]
	return M256d{MmLoadPd(p[:2]), MmLoadPd(p[2:4])}
}

// Mm256LoaduPd is _mm256_loadu_pd.
func Mm256LoaduPd(p []float64) M256d { return Mm256LoadPd(p) }

// Mm256LoadSi256 is _mm256_load_si256.
func Mm256LoadSi256[T hwy.Integers](p []T) M256i {
	n := 16 / sizeOf[T]()
	_ = p[2*n-1]
	return M256i{MmLoadSi128(p[:n]), MmLoadSi128(p[n:])}
}

// Mm256LoaduSi256 is _mm256_loadu_si256.
func Mm256LoaduSi256[T hwy.Integers](p []T) M256i { return Mm256LoadSi256(p) }

// Mm256StorePs is _mm256_store_ps.
func Mm256StorePs(p []float32, a M256) {
	_ = p[7]
	MmStorePs(p[:4], a.Lo())
	MmStorePs(p[4:], a.Hi())
}

// Mm256StoreuPs is _mm256_storeu_ps.
func Mm256StoreuPs(p []float32, a M256) { Mm256StorePs(p, a) }

// Mm256StorePd is _mm256_store_pd.
func Mm256StorePd(p []float64, a M256d) {
	_ = p[3]
	MmStorePd(p[:2], a.Lo())
	MmStorePd(p[2:], a.Hi())
}

// Mm256StoreuPd is _mm256_storeu_pd.
func Mm256StoreuPd(p []float64, a M256d) { Mm256StorePd(p, a) }

// Mm256StoreSi256 is _mm256_store_si256.
func Mm256StoreSi256[T hwy.Integers](p []T, a M256i) {
	n := 16 / sizeOf[T]()
	_ = p[2*n-1]
	MmStoreSi128(p[:n], a.Lo())
	MmStoreSi128(p[n:], a.Hi())
}

// Mm256StoreuSi256 is _mm256_storeu_si256.
func Mm256StoreuSi256[T hwy.Integers](p []T, a M256i) { Mm256StoreSi256(p, a) }

// Mm256BroadcastSs is _mm256_broadcast_ss: p[0] in all eight lanes.
func Mm256BroadcastSs(p []float32) M256 { return Mm256Set1Ps(p[0]) }

// Mm256BroadcastSd is _mm256_broadcast_sd.
func Mm256BroadcastSd(p []float64) M256d { return Mm256Set1Pd(p[0]) }

// Mm256BroadcastPs is _mm256_broadcast_ps: four floats into both halves.
func Mm256BroadcastPs(p []float32) M256 {
	v := MmLoadPs(p)
	return M256{v, v}
}

// Mm256BroadcastPd is _mm256_broadcast_pd.
func Mm256BroadcastPd(p []float64) M256d {
	v := MmLoadPd(p)
	return M256d{v, v}
}
