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


// Package dvec wraps the emulated x86 registers of package sse in small
// vector classes with methods, the way dvec.h wraps the intrinsics in C++.
// Every method is one or two sse operations, so results keep x86 semantics:
// Div(0, -0) is the negative indefinite NaN, Min and Max return the second
// operand when either is NaN, and so on.
//
// The slice kernels in kernels.go run those classes over whole slices and
// spread the work across a workerpool.Pool.
package dvec

import "github.com/ajroetker/softintrin/hwy/sse"

// F32vec4 holds four float32 lanes in an __m128.
type F32vec4 struct{ v sse.M128 }

// LoadF32vec4 loads p[0:4].
func LoadF32vec4(p []float32) F32vec4 { return F32vec4{sse.MmLoaduPs(p)} }

// SplatF32vec4 broadcasts x to every lane.
func SplatF32vec4(x float32) F32vec4 { return F32vec4{sse.MmSet1Ps(x)} }

// F32vec4Of builds a vector from its lanes, lane 0 first.
func F32vec4Of(e0, e1, e2, e3 float32) F32vec4 { return F32vec4{sse.MmSetrPs(e0, e1, e2, e3)} }

// M128 returns the underlying register.
func (a F32vec4) M128() sse.M128 { return a.v }

// Store writes the lanes to p[0:4].
func (a F32vec4) Store(p []float32) { sse.MmStoreuPs(p, a.v) }

// Lane returns lane i.
func (a F32vec4) Lane(i int) float32 { return a.v.F32(i) }

func (a F32vec4) Add(b F32vec4) F32vec4    { return F32vec4{sse.MmAddPs(a.v, b.v)} }
func (a F32vec4) Sub(b F32vec4) F32vec4    { return F32vec4{sse.MmSubPs(a.v, b.v)} }
func (a F32vec4) Mul(b F32vec4) F32vec4    { return F32vec4{sse.MmMulPs(a.v, b.v)} }
func (a F32vec4) Div(b F32vec4) F32vec4    { return F32vec4{sse.MmDivPs(a.v, b.v)} }
func (a F32vec4) Min(b F32vec4) F32vec4    { return F32vec4{sse.MmMinPs(a.v, b.v)} }
func (a F32vec4) Max(b F32vec4) F32vec4    { return F32vec4{sse.MmMaxPs(a.v, b.v)} }
func (a F32vec4) And(b F32vec4) F32vec4    { return F32vec4{sse.MmAndPs(a.v, b.v)} }
func (a F32vec4) Or(b F32vec4) F32vec4     { return F32vec4{sse.MmOrPs(a.v, b.v)} }
func (a F32vec4) Xor(b F32vec4) F32vec4    { return F32vec4{sse.MmXorPs(a.v, b.v)} }
func (a F32vec4) AndNot(b F32vec4) F32vec4 { return F32vec4{sse.MmAndnotPs(b.v, a.v)} }
func (a F32vec4) Sqrt() F32vec4            { return F32vec4{sse.MmSqrtPs(a.v)} }
func (a F32vec4) Floor() F32vec4           { return F32vec4{sse.MmFloorPs(a.v)} }

// Cmp compares lane by lane with an sse.Cmp* predicate and returns all-ones
// lanes where it holds.
func (a F32vec4) Cmp(b F32vec4, pred int) F32vec4 { return F32vec4{sse.MmCmpPs(a.v, b.v, pred)} }

// Select returns a where the mask lane's sign bit is set and b elsewhere.
func (mask F32vec4) Select(a, b F32vec4) F32vec4 {
	return F32vec4{sse.MmBlendvPs(b.v, a.v, mask.v)}
}

// Mask returns the sign bits of the lanes, lane 0 in bit 0.
func (a F32vec4) Mask() int { return int(sse.MmMovemaskPs(a.v)) }

// Sum adds the lanes as ((a0+a1)+(a2+a3)).
func (a F32vec4) Sum() float32 {
	s := sse.MmHaddPs(a.v, a.v)
	return sse.MmCvtssF32(sse.MmHaddPs(s, s))
}

// F32vec8 holds eight float32 lanes in an __m256.
type F32vec8 struct{ v sse.M256 }

// LoadF32vec8 loads p[0:8].
func LoadF32vec8(p []float32) F32vec8 { return F32vec8{sse.Mm256LoaduPs(p)} }

// SplatF32vec8 broadcasts x to every lane.
func SplatF32vec8(x float32) F32vec8 { return F32vec8{sse.Mm256Set1Ps(x)} }

// M256 returns the underlying register.
func (a F32vec8) M256() sse.M256 { return a.v }

// Store writes the lanes to p[0:8].
func (a F32vec8) Store(p []float32) { sse.Mm256StoreuPs(p, a.v) }

// Lane returns lane i.
func (a F32vec8) Lane(i int) float32 { return a.v.F32(i) }

// Halves splits the vector into its lower and upper four lanes.
func (a F32vec8) Halves() (lo, hi F32vec4) {
	return F32vec4{sse.Mm256Castps256Ps128(a.v)}, F32vec4{sse.Mm256Extractf128Ps(a.v, 1)}
}

func (a F32vec8) Add(b F32vec8) F32vec8    { return F32vec8{sse.Mm256AddPs(a.v, b.v)} }
func (a F32vec8) Sub(b F32vec8) F32vec8    { return F32vec8{sse.Mm256SubPs(a.v, b.v)} }
func (a F32vec8) Mul(b F32vec8) F32vec8    { return F32vec8{sse.Mm256MulPs(a.v, b.v)} }
func (a F32vec8) Div(b F32vec8) F32vec8    { return F32vec8{sse.Mm256DivPs(a.v, b.v)} }
func (a F32vec8) Min(b F32vec8) F32vec8    { return F32vec8{sse.Mm256MinPs(a.v, b.v)} }
func (a F32vec8) Max(b F32vec8) F32vec8    { return F32vec8{sse.Mm256MaxPs(a.v, b.v)} }
func (a F32vec8) And(b F32vec8) F32vec8    { return F32vec8{sse.Mm256AndPs(a.v, b.v)} }
func (a F32vec8) Or(b F32vec8) F32vec8     { return F32vec8{sse.Mm256OrPs(a.v, b.v)} }
func (a F32vec8) Xor(b F32vec8) F32vec8    { return F32vec8{sse.Mm256XorPs(a.v, b.v)} }
func (a F32vec8) AndNot(b F32vec8) F32vec8 { return F32vec8{sse.Mm256AndnotPs(b.v, a.v)} }
func (a F32vec8) Sqrt() F32vec8            { return F32vec8{sse.Mm256SqrtPs(a.v)} }
func (a F32vec8) Floor() F32vec8           { return F32vec8{sse.Mm256FloorPs(a.v)} }

func (a F32vec8) Cmp(b F32vec8, pred int) F32vec8 { return F32vec8{sse.Mm256CmpPs(a.v, b.v, pred)} }

func (mask F32vec8) Select(a, b F32vec8) F32vec8 {
	return F32vec8{sse.Mm256BlendvPs(b.v, a.v, mask.v)}
}

func (a F32vec8) Mask() int { return int(sse.Mm256MovemaskPs(a.v)) }

// Sum folds the upper half onto the lower one and adds the four results
// pairwise.
func (a F32vec8) Sum() float32 {
	lo, hi := a.Halves()
	return lo.Add(hi).Sum()
}
