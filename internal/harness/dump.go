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


package harness

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/ajroetker/softintrin/hwy/sse"
)

// Rows print lanes from the highest down to lane 0, the way x86 registers
// are usually written.

func u32Row(r *sse.Reg) string {
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		fmt.Fprintf(&b, " %14X", binary.LittleEndian.Uint32(r[i/4][4*(i%4):]))
	}
	return b.String()
}

func f32Row(r *sse.Reg) string {
	var b strings.Builder
	for i := 7; i >= 0; i-- {
		fmt.Fprintf(&b, " %14g", math.Float32frombits(binary.LittleEndian.Uint32(r[i/4][4*(i%4):])))
	}
	return b.String()
}

func f64Row(r *sse.Reg) string {
	var b strings.Builder
	for i := 3; i >= 0; i-- {
		fmt.Fprintf(&b, " %29g", math.Float64frombits(binary.LittleEndian.Uint64(r[i/2][8*(i%2):])))
	}
	return b.String()
}

// Dump writes the operands and outputs of every window of r, each output as
// four doubles, eight floats and eight hex words.
func Dump(w io.Writer, in *[NumInputs]sse.Reg, r *Result) error {
	if _, err := fmt.Fprintf(w, "Results of %s\n", r.Op.Key()); err != nil {
		return err
	}
	for i := range Windows {
		rows := []struct {
			tag, label, data string
		}{
			{"I", "8u:", u32Row(&in[i])},
			{"I", "8u:", u32Row(&in[i+1])},
			{"O", "4d:", f64Row(&r.Out[i])},
			{"O", "8s:", f32Row(&r.Out[i])},
			{"O", "8u:", u32Row(&r.Out[i])},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%s%4d.%-8s%s\n", row.tag, i, row.label, row.data); err != nil {
				return err
			}
		}
	}
	return nil
}

// DumpBench writes one timing line for r.
func DumpBench(w io.Writer, r *Result) error {
	_, err := fmt.Fprintf(w, "%-25s  %9.0f ps/op\n", r.Op.Key(), r.PicosPerOp())
	return err
}
