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


package dvec

import "github.com/ajroetker/softintrin/hwy/sse"

// I32vec4 holds four int32 lanes in an __m128i. Arithmetic wraps.
type I32vec4 struct{ v sse.M128i }

func LoadI32vec4(p []int32) I32vec4 { return I32vec4{sse.MmLoaduSi128(p)} }
func SplatI32vec4(x int32) I32vec4  { return I32vec4{sse.MmSet1Epi32(x)} }

func I32vec4Of(e0, e1, e2, e3 int32) I32vec4 { return I32vec4{sse.MmSetrEpi32(e0, e1, e2, e3)} }

func (a I32vec4) M128i() sse.M128i         { return a.v }
func (a I32vec4) Store(p []int32)          { sse.MmStoreuSi128(p, a.v) }
func (a I32vec4) Lane(i int) int32         { return a.v.I32(i) }
func (a I32vec4) Add(b I32vec4) I32vec4    { return I32vec4{sse.MmAddEpi32(a.v, b.v)} }
func (a I32vec4) Sub(b I32vec4) I32vec4    { return I32vec4{sse.MmSubEpi32(a.v, b.v)} }
func (a I32vec4) Mul(b I32vec4) I32vec4    { return I32vec4{sse.MmMulloEpi32(a.v, b.v)} }
func (a I32vec4) Min(b I32vec4) I32vec4    { return I32vec4{sse.MmMinEpi32(a.v, b.v)} }
func (a I32vec4) Max(b I32vec4) I32vec4    { return I32vec4{sse.MmMaxEpi32(a.v, b.v)} }
func (a I32vec4) And(b I32vec4) I32vec4    { return I32vec4{sse.MmAndSi128(a.v, b.v)} }
func (a I32vec4) Or(b I32vec4) I32vec4     { return I32vec4{sse.MmOrSi128(a.v, b.v)} }
func (a I32vec4) Xor(b I32vec4) I32vec4    { return I32vec4{sse.MmXorSi128(a.v, b.v)} }
func (a I32vec4) AndNot(b I32vec4) I32vec4 { return I32vec4{sse.MmAndnotSi128(b.v, a.v)} }
func (a I32vec4) Abs() I32vec4             { return I32vec4{sse.MmAbsEpi32(a.v)} }
func (a I32vec4) CmpEq(b I32vec4) I32vec4  { return I32vec4{sse.MmCmpeqEpi32(a.v, b.v)} }
func (a I32vec4) CmpGt(b I32vec4) I32vec4  { return I32vec4{sse.MmCmpgtEpi32(a.v, b.v)} }

// Shl shifts every lane left by n bits; n >= 32 clears the lanes.
func (a I32vec4) Shl(n int) I32vec4 { return I32vec4{sse.MmSlliEpi32(a.v, n)} }

// Sar shifts every lane right by n bits, filling with the sign.
func (a I32vec4) Sar(n int) I32vec4 { return I32vec4{sse.MmSraiEpi32(a.v, n)} }

// Sum adds the lanes with wraparound.
func (a I32vec4) Sum() int32 {
	s := sse.MmHaddEpi32(a.v, a.v)
	return sse.MmCvtsi128Si32(sse.MmHaddEpi32(s, s))
}

// ToF32 converts every lane to float32.
func (a I32vec4) ToF32() F32vec4 { return F32vec4{sse.MmCvtepi32Ps(a.v)} }

// TruncI32 converts every lane toward zero. Lanes that are NaN or out of
// int32 range become math.MinInt32.
func (a F32vec4) TruncI32() I32vec4 { return I32vec4{sse.MmCvttpsEpi32(a.v)} }

// I32vec8 holds eight int32 lanes in an __m256i.
type I32vec8 struct{ v sse.M256i }

func LoadI32vec8(p []int32) I32vec8 { return I32vec8{sse.Mm256LoaduSi256(p)} }
func SplatI32vec8(x int32) I32vec8  { return I32vec8{sse.Mm256Set1Epi32(x)} }

func (a I32vec8) M256i() sse.M256i         { return a.v }
func (a I32vec8) Store(p []int32)          { sse.Mm256StoreuSi256(p, a.v) }
func (a I32vec8) Lane(i int) int32         { return a.v.I32(i) }
func (a I32vec8) Add(b I32vec8) I32vec8    { return I32vec8{sse.Mm256AddEpi32(a.v, b.v)} }
func (a I32vec8) Sub(b I32vec8) I32vec8    { return I32vec8{sse.Mm256SubEpi32(a.v, b.v)} }
func (a I32vec8) Mul(b I32vec8) I32vec8    { return I32vec8{sse.Mm256MulloEpi32(a.v, b.v)} }
func (a I32vec8) Min(b I32vec8) I32vec8    { return I32vec8{sse.Mm256MinEpi32(a.v, b.v)} }
func (a I32vec8) Max(b I32vec8) I32vec8    { return I32vec8{sse.Mm256MaxEpi32(a.v, b.v)} }
func (a I32vec8) And(b I32vec8) I32vec8    { return I32vec8{sse.Mm256AndSi256(a.v, b.v)} }
func (a I32vec8) Or(b I32vec8) I32vec8     { return I32vec8{sse.Mm256OrSi256(a.v, b.v)} }
func (a I32vec8) Xor(b I32vec8) I32vec8    { return I32vec8{sse.Mm256XorSi256(a.v, b.v)} }
func (a I32vec8) AndNot(b I32vec8) I32vec8 { return I32vec8{sse.Mm256AndnotSi256(b.v, a.v)} }
func (a I32vec8) Abs() I32vec8             { return I32vec8{sse.Mm256AbsEpi32(a.v)} }
func (a I32vec8) CmpEq(b I32vec8) I32vec8  { return I32vec8{sse.Mm256CmpeqEpi32(a.v, b.v)} }
func (a I32vec8) CmpGt(b I32vec8) I32vec8  { return I32vec8{sse.Mm256CmpgtEpi32(a.v, b.v)} }
func (a I32vec8) Shl(n int) I32vec8        { return I32vec8{sse.Mm256SlliEpi32(a.v, n)} }
func (a I32vec8) Sar(n int) I32vec8        { return I32vec8{sse.Mm256SraiEpi32(a.v, n)} }

// Halves splits the vector into its lower and upper four lanes.
func (a I32vec8) Halves() (lo, hi I32vec4) {
	return I32vec4{sse.Mm256Castsi256Si128(a.v)}, I32vec4{sse.Mm256Extracti128Si256(a.v, 1)}
}

// Sum adds the lanes with wraparound.
func (a I32vec8) Sum() int32 {
	lo, hi := a.Halves()
	return lo.Add(hi).Sum()
}

func (a I32vec8) ToF32() F32vec8    { return F32vec8{sse.Mm256Cvtepi32Ps(a.v)} }
func (a F32vec8) TruncI32() I32vec8 { return I32vec8{sse.Mm256CvttpsEpi32(a.v)} }
