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

// Integer lane arithmetic. Wrapping forms truncate to the lane width, the
// saturating forms (SQ*/UQ*) clamp to the lane range.

// Add8 is ADD Vd.16B.
func Add8(a, b V128) V128 { return map8(a, b, func(x, y uint8) uint8 { return x + y }) }

// Add16 is ADD Vd.8H.
func Add16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return x + y }) }

// Add32 is ADD Vd.4S.
func Add32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return x + y }) }

// Add64 is ADD Vd.2D.
func Add64(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x + y }) }

// Sub8 is SUB Vd.16B.
func Sub8(a, b V128) V128 { return map8(a, b, func(x, y uint8) uint8 { return x - y }) }

// Sub16 is SUB Vd.8H.
func Sub16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return x - y }) }

// Sub32 is SUB Vd.4S.
func Sub32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return x - y }) }

// Sub64 is SUB Vd.2D.
func Sub64(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x - y }) }

// Mul16 is MUL Vd.8H, keeping the low 16 bits of each product.
func Mul16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return x * y }) }

// Mul32 is MUL Vd.4S, keeping the low 32 bits of each product.
func Mul32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return x * y }) }

// Neg8 is NEG Vd.16B.
func Neg8(a V128) V128 { return map8(a, a, func(x, _ uint8) uint8 { return -x }) }

// Neg16 is NEG Vd.8H.
func Neg16(a V128) V128 { return map16(a, a, func(x, _ uint16) uint16 { return -x }) }

// Neg32 is NEG Vd.4S.
func Neg32(a V128) V128 { return map32(a, a, func(x, _ uint32) uint32 { return -x }) }

// Abs8 is ABS Vd.16B. The most negative value maps to itself.
func Abs8(a V128) V128 {
	return map8(a, a, func(x, _ uint8) uint8 {
		if int8(x) < 0 {
			return -x
		}
		return x
	})
}

// Abs16 is ABS Vd.8H.
func Abs16(a V128) V128 {
	return map16(a, a, func(x, _ uint16) uint16 {
		if int16(x) < 0 {
			return -x
		}
		return x
	})
}

// Abs32 is ABS Vd.4S.
func Abs32(a V128) V128 {
	return map32(a, a, func(x, _ uint32) uint32 {
		if int32(x) < 0 {
			return -x
		}
		return x
	})
}

func sat8(v int) uint8 {
	return uint8(int8(max(-128, min(127, v))))
}

func sat16(v int) uint16 {
	return uint16(int16(max(-32768, min(32767, v))))
}

func usat8(v int) uint8 {
	return uint8(max(0, min(255, v)))
}

func usat16(v int) uint16 {
	return uint16(max(0, min(65535, v)))
}

// Sqadd8 is SQADD Vd.16B.
func Sqadd8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return sat8(int(int8(x)) + int(int8(y))) })
}

// Sqadd16 is SQADD Vd.8H.
func Sqadd16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return sat16(int(int16(x)) + int(int16(y))) })
}

// Uqadd8 is UQADD Vd.16B.
func Uqadd8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return usat8(int(x) + int(y)) })
}

// Uqadd16 is UQADD Vd.8H.
func Uqadd16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return usat16(int(x) + int(y)) })
}

// Sqsub8 is SQSUB Vd.16B.
func Sqsub8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return sat8(int(int8(x)) - int(int8(y))) })
}

// Sqsub16 is SQSUB Vd.8H.
func Sqsub16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return sat16(int(int16(x)) - int(int16(y))) })
}

// Uqsub8 is UQSUB Vd.16B.
func Uqsub8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return usat8(int(x) - int(y)) })
}

// Uqsub16 is UQSUB Vd.8H.
func Uqsub16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return usat16(int(x) - int(y)) })
}

// Urhadd8 is URHADD Vd.16B: (x + y + 1) >> 1 without overflow.
func Urhadd8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return uint8((uint(x) + uint(y) + 1) >> 1) })
}

// Urhadd16 is URHADD Vd.8H.
func Urhadd16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return uint16((uint(x) + uint(y) + 1) >> 1) })
}

// Smin8 is SMIN Vd.16B.
func Smin8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return uint8(min(int8(x), int8(y))) })
}

// Smin16 is SMIN Vd.8H.
func Smin16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return uint16(min(int16(x), int16(y))) })
}

// Smin32 is SMIN Vd.4S.
func Smin32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 { return uint32(min(int32(x), int32(y))) })
}

// Smax8 is SMAX Vd.16B.
func Smax8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return uint8(max(int8(x), int8(y))) })
}

// Smax16 is SMAX Vd.8H.
func Smax16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return uint16(max(int16(x), int16(y))) })
}

// Smax32 is SMAX Vd.4S.
func Smax32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 { return uint32(max(int32(x), int32(y))) })
}

// Umin8 is UMIN Vd.16B.
func Umin8(a, b V128) V128 { return map8(a, b, func(x, y uint8) uint8 { return min(x, y) }) }

// Umin16 is UMIN Vd.8H.
func Umin16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return min(x, y) }) }

// Umin32 is UMIN Vd.4S.
func Umin32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return min(x, y) }) }

// Umax8 is UMAX Vd.16B.
func Umax8(a, b V128) V128 { return map8(a, b, func(x, y uint8) uint8 { return max(x, y) }) }

// Umax16 is UMAX Vd.8H.
func Umax16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return max(x, y) }) }

// Umax32 is UMAX Vd.4S.
func Umax32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return max(x, y) }) }

// Addp16 is ADDP Vd.8H: sums of adjacent pairs of a, then of b.
func Addp16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU16(i, a.U16(2*i)+a.U16(2*i+1))
		r.SetU16(i+4, b.U16(2*i)+b.U16(2*i+1))
	}
	return r
}

// Addp32 is ADDP Vd.4S.
func Addp32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU32(i, a.U32(2*i)+a.U32(2*i+1))
		r.SetU32(i+2, b.U32(2*i)+b.U32(2*i+1))
	}
	return r
}

// Smull16 is SMULL Vd.4S, Vn.4H, Vm.4H: signed widening multiply of the low
// four halfword lanes.
func Smull16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(int32(int16(a.U16(i)))*int32(int16(b.U16(i)))))
	}
	return r
}

// Smull16High is SMULL2 Vd.4S, Vn.8H, Vm.8H on the upper four halfword lanes.
func Smull16High(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(int32(int16(a.U16(i+4)))*int32(int16(b.U16(i+4)))))
	}
	return r
}

// Umull16 is UMULL Vd.4S, Vn.4H, Vm.4H.
func Umull16(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(a.U16(i))*uint32(b.U16(i)))
	}
	return r
}

// Umull16High is UMULL2 Vd.4S, Vn.8H, Vm.8H.
func Umull16High(a, b V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(a.U16(i+4))*uint32(b.U16(i+4)))
	}
	return r
}

// Smull32 is SMULL Vd.2D, Vn.2S, Vm.2S.
func Smull32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU64(i, uint64(int64(int32(a.U32(i)))*int64(int32(b.U32(i)))))
	}
	return r
}

// Umull32 is UMULL Vd.2D, Vn.2S, Vm.2S.
func Umull32(a, b V128) (r V128) {
	for i := range 2 {
		r.SetU64(i, uint64(a.U32(i))*uint64(b.U32(i)))
	}
	return r
}

// Uabd8 is UABD Vd.16B: absolute difference of unsigned bytes.
func Uabd8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return max(x, y) - min(x, y) })
}

// Uaddlp8 is UADDLP Vd.8H, Vn.16B: adjacent byte pairs summed into halfwords.
func Uaddlp8(a V128) (r V128) {
	for i := range 8 {
		r.SetU16(i, uint16(a.U8(2*i))+uint16(a.U8(2*i+1)))
	}
	return r
}

// Uaddlp16 is UADDLP Vd.4S, Vn.8H.
func Uaddlp16(a V128) (r V128) {
	for i := range 4 {
		r.SetU32(i, uint32(a.U16(2*i))+uint32(a.U16(2*i+1)))
	}
	return r
}

// Uaddlp32 is UADDLP Vd.2D, Vn.4S.
func Uaddlp32(a V128) (r V128) {
	for i := range 2 {
		r.SetU64(i, uint64(a.U32(2*i))+uint64(a.U32(2*i+1)))
	}
	return r
}

// ===== Integer compares (all-ones lanes where true) =====

// Cmeq8 is CMEQ Vd.16B.
func Cmeq8(a, b V128) V128 { return map8(a, b, func(x, y uint8) uint8 { return mask8(x == y) }) }

// Cmeq16 is CMEQ Vd.8H.
func Cmeq16(a, b V128) V128 { return map16(a, b, func(x, y uint16) uint16 { return mask16(x == y) }) }

// Cmeq32 is CMEQ Vd.4S.
func Cmeq32(a, b V128) V128 { return map32(a, b, func(x, y uint32) uint32 { return mask32(x == y) }) }

// Cmeq64 is CMEQ Vd.2D.
func Cmeq64(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return mask64(x == y) }) }

// Cmgt8 is CMGT Vd.16B (signed greater than).
func Cmgt8(a, b V128) V128 {
	return map8(a, b, func(x, y uint8) uint8 { return mask8(int8(x) > int8(y)) })
}

// Cmgt16 is CMGT Vd.8H.
func Cmgt16(a, b V128) V128 {
	return map16(a, b, func(x, y uint16) uint16 { return mask16(int16(x) > int16(y)) })
}

// Cmgt32 is CMGT Vd.4S.
func Cmgt32(a, b V128) V128 {
	return map32(a, b, func(x, y uint32) uint32 { return mask32(int32(x) > int32(y)) })
}

// Cmgt64 is CMGT Vd.2D.
func Cmgt64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 { return mask64(int64(x) > int64(y)) })
}

// Cmhi64 is CMHI Vd.2D (unsigned greater than).
func Cmhi64(a, b V128) V128 {
	return map64(a, b, func(x, y uint64) uint64 { return mask64(x > y) })
}
