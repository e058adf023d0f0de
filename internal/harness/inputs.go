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


// Package harness drives catalog operations over a fixed set of input
// registers to validate them against reference output and to time them.
//
// Every operation runs on the same 16 inputs. Window i passes inputs i, i+1
// and i+2 as the first three operands and produces output i, so a run yields
// 14 output registers whatever the arity of the operation.
package harness

import (
	"encoding/binary"
	"math"

	"github.com/ajroetker/softintrin/hwy/sse"
)

const (
	// NumInputs is the number of input registers.
	NumInputs = 16

	// Windows is the number of operand windows, and of outputs, per run.
	Windows = NumInputs - 2
)

// Inputs returns the input registers. Each group of four focuses on one lane
// type (int32, int64, float32, float64) and every other pair of registers
// has its halves swapped, so 256-bit operations see distinct halves.
func Inputs() [NumInputs]sse.Reg {
	var in [NumInputs]sse.Reg
	for i := range in {
		lo, hi := &in[i][0], &in[i][1]
		if (i>>1)&1 != 0 {
			lo, hi = hi, lo
		}
		u := uint32(i)
		switch (i >> 2) & 3 {
		case 0:
			putU32(lo, u, 0, u*0x379BDF15, 0xFFFFFFFF)
			putU32(hi, 0xFFFFFFFF/(u+1), u*0xFFFFFFFF, u*0x88888888, u*0x01020305)
		case 1:
			putU64(lo, uint64(i), uint64(i)*0x8888888888888888)
			putU64(hi, 0xFFFFFFFFFFFFFFFF, uint64(i)*0x0102030507090B0D)
		case 2:
			f := float32(i)
			putF32(lo, f, 0, f*-1.4142136, -f)
			putF32(hi, 8, f*-999.999, -1, f*3.14159)
		case 3:
			d := float64(i)
			putF64(lo, d, d*-1.4142136)
			putF64(hi, -d, d*3.14159)
		}
	}
	return in
}

func putU32(b *[16]byte, lanes ...uint32) {
	for i, x := range lanes {
		binary.LittleEndian.PutUint32(b[4*i:], x)
	}
}

func putU64(b *[16]byte, lanes ...uint64) {
	for i, x := range lanes {
		binary.LittleEndian.PutUint64(b[8*i:], x)
	}
}

func putF32(b *[16]byte, lanes ...float32) {
	for i, x := range lanes {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(x))
	}
}

func putF64(b *[16]byte, lanes ...float64) {
	for i, x := range lanes {
		binary.LittleEndian.PutUint64(b[8*i:], math.Float64bits(x))
	}
}
