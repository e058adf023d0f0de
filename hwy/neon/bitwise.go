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

// And is AND Vd.16B.
func And(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x & y }) }

// Orr is ORR Vd.16B.
func Orr(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x | y }) }

// Eor is EOR Vd.16B.
func Eor(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x ^ y }) }

// Bic is BIC Vd.16B: a AND NOT b.
func Bic(a, b V128) V128 { return map64(a, b, func(x, y uint64) uint64 { return x &^ y }) }

// Mvn is MVN Vd.16B.
func Mvn(a V128) V128 { return map64(a, a, func(x, _ uint64) uint64 { return ^x }) }

// Bsl is BSL: each result bit comes from a where mask is set, else from b.
func Bsl(mask, a, b V128) (r V128) {
	for i := range 2 {
		m := mask.U64(i)
		r.SetU64(i, a.U64(i)&m|b.U64(i)&^m)
	}
	return r
}

// Bit is BIT Vd, Vn, Vm: inserts bits of n into d where m is set.
func Bit(d, n, m V128) V128 { return Bsl(m, n, d) }
