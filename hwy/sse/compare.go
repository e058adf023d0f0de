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

import "github.com/ajroetker/softintrin/hwy/neon"

// Comparison predicates of _mm_cmp_ps / _mm_cmp_pd. Bit 4 only selects
// whether a quiet NaN raises an exception, which does not change the result.
const (
	CmpEqOQ    = 0x00
	CmpLtOS    = 0x01
	CmpLeOS    = 0x02
	CmpUnordQ  = 0x03
	CmpNeqUQ   = 0x04
	CmpNltUS   = 0x05
	CmpNleUS   = 0x06
	CmpOrdQ    = 0x07
	CmpEqUQ    = 0x08
	CmpNgeUS   = 0x09
	CmpNgtUS   = 0x0A
	CmpFalseOQ = 0x0B
	CmpNeqOQ   = 0x0C
	CmpGeOS    = 0x0D
	CmpGtOS    = 0x0E
	CmpTrueUQ  = 0x0F
)

// fcmp holds the native compares of one float width.
type fcmp struct {
	eq, gt, ge native2
}

var (
	fcmp32 = fcmp{neon.Fcmeq32, neon.Fcmgt32, neon.Fcmge32}
	fcmp64 = fcmp{neon.Fcmeq64, neon.Fcmgt64, neon.Fcmge64}
)

func (c fcmp) unord(a, b neon.V128) neon.V128 {
	return neon.Mvn(neon.And(c.eq(a, a), c.eq(b, b)))
}

// pred returns the native evaluation of predicate p (masked to 5 bits).
func (c fcmp) pred(p int) native2 {
	not := func(f native2) native2 {
		return func(a, b neon.V128) neon.V128 { return neon.Mvn(f(a, b)) }
	}
	swap := func(f native2) native2 {
		return func(a, b neon.V128) neon.V128 { return f(b, a) }
	}
	switch p & 0x0F {
	case CmpEqOQ:
		return c.eq
	case CmpLtOS:
		return swap(c.gt)
	case CmpLeOS:
		return swap(c.ge)
	case CmpUnordQ:
		return c.unord
	case CmpNeqUQ:
		return not(c.eq)
	case CmpNltUS:
		return not(swap(c.gt))
	case CmpNleUS:
		return not(swap(c.ge))
	case CmpOrdQ:
		return not(c.unord)
	case CmpEqUQ:
		return func(a, b neon.V128) neon.V128 { return neon.Orr(c.eq(a, b), c.unord(a, b)) }
	case CmpNgeUS:
		return not(c.ge)
	case CmpNgtUS:
		return not(c.gt)
	case CmpFalseOQ:
		return func(a, b neon.V128) neon.V128 { return neon.Zero() }
	case CmpNeqOQ:
		return func(a, b neon.V128) neon.V128 { return neon.Orr(c.gt(a, b), c.gt(b, a)) }
	case CmpGeOS:
		return c.ge
	case CmpGtOS:
		return c.gt
	}
	return func(a, b neon.V128) neon.V128 { return neon.Ones() }
}

// MmCmpPs is _mm_cmp_ps with a 5-bit predicate.
func MmCmpPs(a, b M128, imm int) M128 { return op2[M128](a, b, fcmp32.pred(imm), 0) }

// MmCmpPd is _mm_cmp_pd.
func MmCmpPd(a, b M128d, imm int) M128d { return op2[M128d](a, b, fcmp64.pred(imm), 0) }

// MmCmpeqPs is _mm_cmpeq_ps.
func MmCmpeqPs(a, b M128) M128 { return MmCmpPs(a, b, CmpEqOQ) }

// MmCmpltPs is _mm_cmplt_ps.
func MmCmpltPs(a, b M128) M128 { return MmCmpPs(a, b, CmpLtOS) }

// MmCmplePs is _mm_cmple_ps.
func MmCmplePs(a, b M128) M128 { return MmCmpPs(a, b, CmpLeOS) }

// MmCmpgtPs is _mm_cmpgt_ps.
func MmCmpgtPs(a, b M128) M128 { return MmCmpPs(a, b, CmpGtOS) }

// MmCmpgePs is _mm_cmpge_ps.
func MmCmpgePs(a, b M128) M128 { return MmCmpPs(a, b, CmpGeOS) }

// MmCmpneqPs is _mm_cmpneq_ps. True for unordered operands.
func MmCmpneqPs(a, b M128) M128 { return MmCmpPs(a, b, CmpNeqUQ) }

// MmCmpnltPs is _mm_cmpnlt_ps.
func MmCmpnltPs(a, b M128) M128 { return MmCmpPs(a, b, CmpNltUS) }

// MmCmpnlePs is _mm_cmpnle_ps.
func MmCmpnlePs(a, b M128) M128 { return MmCmpPs(a, b, CmpNleUS) }

// MmCmpngtPs is _mm_cmpngt_ps.
func MmCmpngtPs(a, b M128) M128 { return MmCmpPs(a, b, CmpNgtUS) }

// MmCmpngePs is _mm_cmpnge_ps.
func MmCmpngePs(a, b M128) M128 { return MmCmpPs(a, b, CmpNgeUS) }

// MmCmpordPs is _mm_cmpord_ps.
func MmCmpordPs(a, b M128) M128 { return MmCmpPs(a, b, CmpOrdQ) }

// MmCmpunordPs is _mm_cmpunord_ps.
func MmCmpunordPs(a, b M128) M128 { return MmCmpPs(a, b, CmpUnordQ) }

// MmCmpeqPd is _mm_cmpeq_pd.
func MmCmpeqPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpEqOQ) }

// MmCmpltPd is _mm_cmplt_pd.
func MmCmpltPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpLtOS) }

// MmCmplePd is _mm_cmple_pd.
func MmCmplePd(a, b M128d) M128d { return MmCmpPd(a, b, CmpLeOS) }

// MmCmpgtPd is _mm_cmpgt_pd.
func MmCmpgtPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpGtOS) }

// MmCmpgePd is _mm_cmpge_pd.
func MmCmpgePd(a, b M128d) M128d { return MmCmpPd(a, b, CmpGeOS) }

// MmCmpneqPd is _mm_cmpneq_pd.
func MmCmpneqPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpNeqUQ) }

// MmCmpnltPd is _mm_cmpnlt_pd.
func MmCmpnltPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpNltUS) }

// MmCmpnlePd is _mm_cmpnle_pd.
func MmCmpnlePd(a, b M128d) M128d { return MmCmpPd(a, b, CmpNleUS) }

// MmCmpngtPd is _mm_cmpngt_pd.
func MmCmpngtPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpNgtUS) }

// MmCmpngePd is _mm_cmpnge_pd.
func MmCmpngePd(a, b M128d) M128d { return MmCmpPd(a, b, CmpNgeUS) }

// MmCmpordPd is _mm_cmpord_pd.
func MmCmpordPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpOrdQ) }

// MmCmpunordPd is _mm_cmpunord_pd.
func MmCmpunordPd(a, b M128d) M128d { return MmCmpPd(a, b, CmpUnordQ) }
