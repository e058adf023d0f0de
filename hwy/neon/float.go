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

import "math"

// Default NaNs produced by invalid operations. Unlike x86 the sign is clear.
const (
	DefaultNaN32 uint32 = 0x7FC00000
	DefaultNaN64 uint64 = 0x7FF8000000000000
)

const (
	quiet32 uint32 = 0x00400000
	quiet64 uint64 = 0x0008000000000000
)

// IsNaN32 reports whether bits encode a float32 NaN.
func IsNaN32(bits uint32) bool { return bits&0x7FFFFFFF > 0x7F800000 }

// IsNaN64 reports whether bits encode a float64 NaN.
func IsNaN64(bits uint64) bool { return bits&0x7FFFFFFFFFFFFFFF > 0x7FF0000000000000 }

func isSNaN32(bits uint32) bool { return IsNaN32(bits) && bits&quiet32 == 0 }
func isSNaN64(bits uint64) bool { return IsNaN64(bits) && bits&quiet64 == 0 }

// pickNaN32 applies the operand NaN rules: a signalling NaN wins and is
// quietened, otherwise the first quiet NaN is returned unchanged.
func pickNaN32(x, y uint32) (uint32, bool) {
	switch {
	case isSNaN32(x):
		return x | quiet32, true
	case isSNaN32(y):
		return y | quiet32, true
	case IsNaN32(x):
		return x, true
	case IsNaN32(y):
		return y, true
	}
	return 0, false
}

func pickNaN64(x, y uint64) (uint64, bool) {
	switch {
	case isSNaN64(x):
		return x | quiet64, true
	case isSNaN64(y):
		return y | quiet64, true
	case IsNaN64(x):
		return x, true
	case IsNaN64(y):
		return y, true
	}
	return 0, false
}

// farith32 evaluates f lane by lane with NaN operands propagated and any NaN
// created by f replaced with the default NaN.
func farith32(a, b V128, f func(x, y float32) float32) V128 {
	return map32(a, b, func(x, y uint32) uint32 {
		if n, ok := pickNaN32(x, y); ok {
			return n
		}
		r := math.Float32bits(f(math.Float32frombits(x), math.Float32frombits(y)))
		if IsNaN32(r) {
			return DefaultNaN32
		}
		return r
	})
}

func farith64(a, b V128, f func(x, y float64) float64) V128 {
	return map64(a, b, func(x, y uint64) uint64 {
		if n, ok := pickNaN64(x, y); ok {
			return n
		}
		r := math.Float64bits(f(math.Float64frombits(x), math.Float64frombits(y)))
		if IsNaN64(r) {
			return DefaultNaN64
		}
		return r
	})
}

// Fadd32 is FADD Vd.4S.
func Fadd32(a, b V128) V128 { return farith32(a, b, func(x, y float32) float32 { return x + y }) }

// Fadd64 is FADD Vd.2D.
func Fadd64(a, b V128) V128 { return farith64(a, b, func(x, y float64) float64 { return x + y }) }

// Fsub32 is FSUB Vd.4S.
func Fsub32(a, b V128) V128 { return farith32(a, b, func(x, y float32) float32 { return x - y }) }

// Fsub64 is FSUB Vd.2D.
func Fsub64(a, b V128) V128 { return farith64(a, b, func(x, y float64) float64 { return x - y }) }

// Fmul32 is FMUL Vd.4S.
func Fmul32(a, b V128) V128 { return farith32(a, b, func(x, y float32) float32 { return x * y }) }

// Fmul64 is FMUL Vd.2D.
func Fmul64(a, b V128) V128 { return farith64(a, b, func(x, y float64) float64 { return x * y }) }

// Fdiv32 is FDIV Vd.4S. 0/0 and Inf/Inf give the positive default NaN.
func Fdiv32(a, b V128) V128 { return farith32(a, b, func(x, y float32) float32 { return x / y }) }

// Fdiv64 is FDIV Vd.2D.
func Fdiv64(a, b V128) V128 { return farith64(a, b, func(x, y float64) float64 { return x / y }) }

// Fmin32 is FMIN Vd.4S. A NaN in either operand is propagated; -0 is less
// than +0.
func Fmin32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 {
		if n, ok := pickNaN32(x, y); ok {
			return n
		}
		fx, fy := math.Float32frombits(x), math.Float32frombits(y)
		switch {
		case fx < fy:
			return x
		case fy < fx:
			return y
		}
		return x | y
	})
}

// Fmax32 is FMAX Vd.4S.
func Fmax32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 {
		if n, ok := pickNaN32(x, y); ok {
			return n
		}
		fx, fy := math.Float32frombits(x), math.Float32frombits(y)
		switch {
		case fx > fy:
			return x
		case fy > fx:
			return y
		}
		return x & y
	})
}

// Fmin64 is FMIN Vd.2D.
func Fmin64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 {
		if n, ok := pickNaN64(x, y); ok {
			return n
		}
		fx, fy := math.Float64frombits(x), math.Float64frombits(y)
		switch {
		case fx < fy:
			return x
		case fy < fx:
			return y
		}
		return x | y
	})
}

// Fmax64 is FMAX Vd.2D.
func Fmax64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 {
		if n, ok := pickNaN64(x, y); ok {
			return n
		}
		fx, fy := math.Float64frombits(x), math.Float64frombits(y)
		switch {
		case fx > fy:
			return x
		case fy > fx:
			return y
		}
		return x & y
	})
}

// Fsqrt32 is FSQRT Vd.4S. The square root of a value below zero is the
// default NaN; -0 stays -0.
func Fsqrt32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 {
		if n, ok := pickNaN32(x, x); ok {
			return n
		}
		f := math.Float32frombits(x)
		if f < 0 {
			return DefaultNaN32
		}
		return math.Float32bits(float32(math.Sqrt(float64(f))))
	})
}

// Fsqrt64 is FSQRT Vd.2D.
func Fsqrt64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 {
		if n, ok := pickNaN64(x, x); ok {
			return n
		}
		f := math.Float64frombits(x)
		if f < 0 {
			return DefaultNaN64
		}
		return math.Float64bits(math.Sqrt(f))
	})
}

// Fabs32 is FABS Vd.4S.
func Fabs32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 { return x &^ (1 << 31) })
}

// Fabs64 is FABS Vd.2D.
func Fabs64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 { return x &^ (1 << 63) })
}

// Fneg32 is FNEG Vd.4S.
func Fneg32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 { return x ^ (1 << 31) })
}

// Fneg64 is FNEG Vd.2D.
func Fneg64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 { return x ^ (1 << 63) })
}

// Faddp32 is FADDP Vd.4S: pairwise sums of a, then of b.
func Faddp32(a, b V128) V128 {
	return Fadd32(UzpEven32(a, b), UzpOdd32(a, b))
}

// Faddp64 is FADDP Vd.2D.
func Faddp64(a, b V128) V128 {
	return Fadd64(ZipLo64(a, b), ZipHi64(a, b))
}

func fcmp32(a, b V128, f func(x, y float32) bool) V128 {
	return map32(a, b, func(x, y uint32) uint32 {
		return mask32(f(math.Float32frombits(x), math.Float32frombits(y)))
	})
}

func fcmp64(a, b V128, f func(x, y float64) bool) V128 {
	return map64(a, b, func(x, y uint64) uint64 {
		return mask64(f(math.Float64frombits(x), math.Float64frombits(y)))
	})
}

// Fcmeq32 is FCMEQ Vd.4S. Comparisons involving NaN are false.
func Fcmeq32(a, b V128) V128 { return fcmp32(a, b, func(x, y float32) bool { return x == y }) }

// Fcmgt32 is FCMGT Vd.4S.
func Fcmgt32(a, b V128) V128 { return fcmp32(a, b, func(x, y float32) bool { return x > y }) }

// Fcmge32 is FCMGE Vd.4S.
func Fcmge32(a, b V128) V128 { return fcmp32(a, b, func(x, y float32) bool { return x >= y }) }

// Fcmeq64 is FCMEQ Vd.2D.
func Fcmeq64(a, b V128) V128 { return fcmp64(a, b, func(x, y float64) bool { return x == y }) }

// Fcmgt64 is FCMGT Vd.2D.
func Fcmgt64(a, b V128) V128 { return fcmp64(a, b, func(x, y float64) bool { return x > y }) }

// Fcmge64 is FCMGE Vd.2D.
func Fcmge64(a, b V128) V128 { return fcmp64(a, b, func(x, y float64) bool { return x >= y }) }

// Rounding modes of the FRINT family.
type Rounding int

const (
	RoundNearest Rounding = iota // FRINTN, ties to even
	RoundFloor                   // FRINTM
	RoundCeil                    // FRINTP
	RoundZero                    // FRINTZ
)

func (m Rounding) apply(f float64) float64 {
	switch m {
	case RoundFloor:
		return math.Floor(f)
	case RoundCeil:
		return math.Ceil(f)
	case RoundZero:
		return math.Trunc(f)
	}
	return math.RoundToEven(f)
}

// Frint32 is FRINT{N,M,P,Z} Vd.4S.
func Frint32(a V128, m Rounding) V128 {
	return map32(a, a, func(x, _ uint32) uint32 {
		if n, ok := pickNaN32(x, x); ok {
			return n
		}
		return math.Float32bits(float32(m.apply(float64(math.Float32frombits(x)))))
	})
}

// Frint64 is FRINT{N,M,P,Z} Vd.2D.
func Frint64(a V128, m Rounding) V128 {
	return map64(a, a, func(x, _ uint64) uint64 {
		if n, ok := pickNaN64(x, x); ok {
			return n
		}
		return math.Float64bits(m.apply(math.Float64frombits(x)))
	})
}

// widenNaN and narrowNaN move a NaN payload between formats, quietening it.
func widenNaN(x uint32) uint64 {
	return uint64(x>>31)<<63 | 0x7FF<<52 | quiet64 | uint64(x&0x003FFFFF)<<29
}

func narrowNaN(x uint64) uint32 {
	return uint32(x>>63)<<31 | 0x7F800000 | quiet32 | uint32(x>>29)&0x003FFFFF
}

func cvtl(x uint32) uint64 {
	if IsNaN32(x) {
		return widenNaN(x)
	}
	return math.Float64bits(float64(math.Float32frombits(x)))
}

func cvtn(x uint64) uint32 {
	if IsNaN64(x) {
		return narrowNaN(x)
	}
	return math.Float32bits(float32(math.Float64frombits(x)))
}

// Fcvtl is FCVTL Vd.2D, Vn.2S: widens float lanes 0 and 1.
func Fcvtl(a V128) (r V128) {
	r.SetU64(0, cvtl(a.U32(0)))
	r.SetU64(1, cvtl(a.U32(1)))
	return r
}

// FcvtlHigh is FCVTL2 Vd.2D, Vn.4S: widens float lanes 2 and 3.
func FcvtlHigh(a V128) (r V128) {
	r.SetU64(0, cvtl(a.U32(2)))
	r.SetU64(1, cvtl(a.U32(3)))
	return r
}

// Fcvtn is FCVTN Vd.2S, Vn.2D: narrows both double lanes into float lanes 0
// and 1 and clears the upper half.
func Fcvtn(a V128) (r V128) {
	r.SetU32(0, cvtn(a.U64(0)))
	r.SetU32(1, cvtn(a.U64(1)))
	return r
}

// FcvtnHigh is FCVTN2 Vd.4S, Vn.2D: keeps the lower half of d and writes the
// narrowed lanes of a into float lanes 2 and 3.
func FcvtnHigh(d, a V128) V128 {
	d.SetU32(2, cvtn(a.U64(0)))
	d.SetU32(3, cvtn(a.U64(1)))
	return d
}

func cvtToI32(f float64, m Rounding) uint32 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<31:
		return math.MaxInt32
	case f < -(1 << 31):
		return 1 << 31
	}
	return uint32(int32(m.apply(f)))
}

func cvtToI64(f float64, m Rounding) uint64 {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= 1<<63:
		return math.MaxInt64
	case f < -(1 << 63):
		return 1 << 63
	}
	return uint64(int64(m.apply(f)))
}

// Fcvtzs32 is FCVTZS Vd.4S: truncating, saturating float to int32. NaN
// converts to 0.
func Fcvtzs32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 {
		return cvtToI32(float64(math.Float32frombits(x)), RoundZero)
	})
}

// Fcvtns32 is FCVTNS Vd.4S, rounding to nearest with ties to even.
func Fcvtns32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 {
		return cvtToI32(float64(math.Float32frombits(x)), RoundNearest)
	})
}

// Fcvtzs64 is FCVTZS Vd.2D.
func Fcvtzs64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 {
		return cvtToI64(math.Float64frombits(x), RoundZero)
	})
}

// Fcvtns64 is FCVTNS Vd.2D.
func Fcvtns64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 {
		return cvtToI64(math.Float64frombits(x), RoundNearest)
	})
}

// Scvtf32 is SCVTF Vd.4S.
func Scvtf32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 { return math.Float32bits(float32(int32(x))) })
}

// Scvtf64 is SCVTF Vd.2D.
func Scvtf64(a V128) V128 {
	return map64(a, a, func(x, _ uint64) uint64 { return math.Float64bits(float64(int64(x))) })
}
