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
	"math"

	"github.com/ajroetker/softintrin/hwy/neon"
)

// Fixup selects the corrections applied to a raw native result before it is
// returned as an x86 result. The set is fixed when an operation is defined.
type Fixup uint16

const (
	// FixSqrtF32 copies the sign of each source float lane onto the result,
	// so sqrt of a negative number yields the negative indefinite NaN.
	FixSqrtF32 Fixup = 1 << iota
	// FixSqrtF64 is FixSqrtF32 for double lanes.
	FixSqrtF64
	// FixDivF32 sets the sign bit of every lane where the divide itself
	// produced the positive default NaN, turning it into the x86 indefinite
	// 0xFFC00000. NaN operands pass through unchanged.
	FixDivF32
	// FixDivF64 is FixDivF32 for double lanes (0xFFF8000000000000).
	FixDivF64
	// FixMinMaxF32 selects the second operand whenever neither a > b nor
	// b > a: for any NaN operand and for equal values such as -0 and +0.
	FixMinMaxF32
	// FixMinMaxF64 is FixMinMaxF32 for double lanes.
	FixMinMaxF64
	// FixIndefiniteI32 writes 0x80000000 into every int32 lane whose float
	// source lane was NaN or outside the int32 range.
	FixIndefiniteI32
	// FixScalarF32 keeps only float lane 0 of the result and takes lanes 1..3
	// from the first operand.
	FixScalarF32
	// FixScalarF64 keeps double lane 0 and takes lane 1 from the first
	// operand.
	FixScalarF64
	// FixDup128 marks operations whose 256-bit form repeats the 128-bit
	// result. It needs no correction.
	FixDup128
)

var (
	signMask32 = neon.Dup32(1 << 31)
	signMask64 = neon.Dup64(1 << 63)
	divBias32  = neon.Dup32(0x00400000)
	divBias64  = neon.Dup64(0x0008000000000000)

	// Bounds of the float32 values that convert to int32 without overflow:
	// -2^31 <= x < 2^31.
	i32Lo = neon.Dup32(math.Float32bits(-(1 << 31)))
	i32Hi = neon.Dup32(math.Float32bits(1 << 31))
)

// postprocess applies the corrections selected by f to raw, the native result
// computed from operands a and b. Lane-value fixes run first and the scalar
// insertion runs last.
func postprocess(raw, a, b neon.V128, f Fixup) neon.V128 {
	r := raw
	if f&FixSqrtF32 != 0 {
		r = neon.Bsl(signMask32, a, r)
	}
	if f&FixSqrtF64 != 0 {
		r = neon.Bsl(signMask64, a, r)
	}
	if f&FixDivF32 != 0 {
		created := neon.And(neon.Fcmeq32(a, a), neon.Fcmeq32(b, b))
		r = neon.Orr(r, neon.And(neon.Add32(r, divBias32), neon.And(signMask32, created)))
	}
	if f&FixDivF64 != 0 {
		created := neon.And(neon.Fcmeq64(a, a), neon.Fcmeq64(b, b))
		r = neon.Orr(r, neon.And(neon.Add64(r, divBias64), neon.And(signMask64, created)))
	}
	if f&FixMinMaxF32 != 0 {
		ordered := neon.Orr(neon.Fcmgt32(a, b), neon.Fcmgt32(b, a))
		r = neon.Bsl(ordered, r, b)
	}
	if f&FixMinMaxF64 != 0 {
		ordered := neon.Orr(neon.Fcmgt64(a, b), neon.Fcmgt64(b, a))
		r = neon.Bsl(ordered, r, b)
	}
	if f&FixIndefiniteI32 != 0 {
		inRange := neon.And(neon.Fcmge32(a, i32Lo), neon.Fcmgt32(i32Hi, a))
		r = neon.Bsl(inRange, r, signMask32)
	}
	if f&FixScalarF32 != 0 {
		r = neon.InsLane32(a, 0, r, 0)
	}
	if f&FixScalarF64 != 0 {
		r = neon.InsLane64(a, 0, r, 0)
	}
	return r
}
