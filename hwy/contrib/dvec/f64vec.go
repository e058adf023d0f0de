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

// F64vec2 holds two float64 lanes in an __m128d.
type F64vec2 struct{ v sse.M128d }

func LoadF64vec2(p []float64) F64vec2   { return F64vec2{sse.MmLoaduPd(p)} }
func SplatF64vec2(x float64) F64vec2    { return F64vec2{sse.MmSet1Pd(x)} }
func F64vec2Of(e0, e1 float64) F64vec2  { return F64vec2{sse.MmSetrPd(e0, e1)} }
func (a F64vec2) M128d() sse.M128d      { return a.v }
func (a F64vec2) Store(p []float64)     { sse.MmStoreuPd(p, a.v) }
func (a F64vec2) Lane(i int) float64    { return a.v.F64(i) }
func (a F64vec2) Add(b F64vec2) F64vec2 { return F64vec2{sse.MmAddPd(a.v, b.v)} }
func (a F64vec2) Sub(b F64vec2) F64vec2 { return F64vec2{sse.MmSubPd(a.v, b.v)} }
func (a F64vec2) Mul(b F64vec2) F64vec2 { return F64vec2{sse.MmMulPd(a.v, b.v)} }
func (a F64vec2) Div(b F64vec2) F64vec2 { return F64vec2{sse.MmDivPd(a.v, b.v)} }
func (a F64vec2) Min(b F64vec2) F64vec2 { return F64vec2{sse.MmMinPd(a.v, b.v)} }
func (a F64vec2) Max(b F64vec2) F64vec2 { return F64vec2{sse.MmMaxPd(a.v, b.v)} }
func (a F64vec2) And(b F64vec2) F64vec2 { return F64vec2{sse.MmAndPd(a.v, b.v)} }
func (a F64vec2) Or(b F64vec2) F64vec2  { return F64vec2{sse.MmOrPd(a.v, b.v)} }
func (a F64vec2) Xor(b F64vec2) F64vec2 { return F64vec2{sse.MmXorPd(a.v, b.v)} }
func (a F64vec2) Sqrt() F64vec2         { return F64vec2{sse.MmSqrtPd(a.v)} }

func (a F64vec2) Cmp(b F64vec2, pred int) F64vec2 { return F64vec2{sse.MmCmpPd(a.v, b.v, pred)} }

func (mask F64vec2) Select(a, b F64vec2) F64vec2 {
	return F64vec2{sse.MmBlendvPd(b.v, a.v, mask.v)}
}

func (a F64vec2) Mask() int { return int(sse.MmMovemaskPd(a.v)) }

// Sum returns a0+a1.
func (a F64vec2) Sum() float64 { return sse.MmCvtsdF64(sse.MmHaddPd(a.v, a.v)) }

// F64vec4 holds four float64 lanes in an __m256d.
type F64vec4 struct{ v sse.M256d }

func LoadF64vec4(p []float64) F64vec4 { return F64vec4{sse.Mm256LoaduPd(p)} }
func SplatF64vec4(x float64) F64vec4  { return F64vec4{sse.Mm256Set1Pd(x)} }
func (a F64vec4) M256d() sse.M256d    { return a.v }
func (a F64vec4) Store(p []float64)   { sse.Mm256StoreuPd(p, a.v) }
func (a F64vec4) Lane(i int) float64  { return a.v.F64(i) }

// Halves splits the vector into its lower and upper two lanes.
func (a F64vec4) Halves() (lo, hi F64vec2) {
	return F64vec2{sse.Mm256Castpd256Pd128(a.v)}, F64vec2{sse.Mm256Extractf128Pd(a.v, 1)}
}

func (a F64vec4) Add(b F64vec4) F64vec4 { return F64vec4{sse.Mm256AddPd(a.v, b.v)} }
func (a F64vec4) Sub(b F64vec4) F64vec4 { return F64vec4{sse.Mm256SubPd(a.v, b.v)} }
func (a F64vec4) Mul(b F64vec4) F64vec4 { return F64vec4{sse.Mm256MulPd(a.v, b.v)} }
func (a F64vec4) Div(b F64vec4) F64vec4 { return F64vec4{sse.Mm256DivPd(a.v, b.v)} }
func (a F64vec4) Min(b F64vec4) F64vec4 { return F64vec4{sse.Mm256MinPd(a.v, b.v)} }
func (a F64vec4) Max(b F64vec4) F64vec4 { return F64vec4{sse.Mm256MaxPd(a.v, b.v)} }
func (a F64vec4) And(b F64vec4) F64vec4 { return F64vec4{sse.Mm256AndPd(a.v, b.v)} }
func (a F64vec4) Or(b F64vec4) F64vec4  { return F64vec4{sse.Mm256OrPd(a.v, b.v)} }
func (a F64vec4) Xor(b F64vec4) F64vec4 { return F64vec4{sse.Mm256XorPd(a.v, b.v)} }
func (a F64vec4) Sqrt() F64vec4         { return F64vec4{sse.Mm256SqrtPd(a.v)} }

func (a F64vec4) Cmp(b F64vec4, pred int) F64vec4 { return F64vec4{sse.Mm256CmpPd(a.v, b.v, pred)} }

func (mask F64vec4) Select(a, b F64vec4) F64vec4 {
	return F64vec4{sse.Mm256BlendvPd(b.v, a.v, mask.v)}
}

func (a F64vec4) Mask() int { return int(sse.Mm256MovemaskPd(a.v)) }

// Sum returns (a0+a2)+(a1+a3).
func (a F64vec4) Sum() float64 {
	lo, hi := a.Halves()
	return lo.Add(hi).Sum()
}
