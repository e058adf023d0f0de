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
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"unsafe"
)

// Reg is the uniform operand and result of a catalog entry: a 256-bit
// register. 128-bit operations read and write Reg[0] and leave Reg[1] zero.
// Scalar operands and results live in the low bytes of Reg[0].
type Reg = [2][16]byte

// LaneKind tells a driver how to read a result register.
type LaneKind int

const (
	KindInt LaneKind = iota
	KindFloat32
	KindFloat64
)

func (k LaneKind) String() string {
	switch k {
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	default:
		return "int"
	}
}

// NoImm is the Imm of operations without an immediate operand.
const NoImm = -1

// Op is one entry of the binding table: an intrinsic bound to its Go
// function under its x86 name. An intrinsic that takes an immediate appears
// once per immediate value worth exercising.
type Op struct {
	Name   string   // x86 intrinsic name, e.g. "_mm256_add_ps"
	Imm    int      // immediate operand, or NoImm
	Width  int      // widest register operand or result, in bits
	Arity  int      // number of register or scalar operands
	Result LaneKind // lane view of the result
	eval   func(a, b, c Reg) Reg
}

// Key identifies the entry: the name, plus the immediate when there is one.
func (o *Op) Key() string {
	if o.Imm == NoImm {
		return o.Name
	}
	return fmt.Sprintf("%s(0x%02X)", o.Name, o.Imm)
}

// Eval applies the operation. Operands beyond Arity are ignored.
func (o *Op) Eval(a, b, c Reg) Reg { return o.eval(a, b, c) }

type vec interface {
	~[16]byte | ~[2][16]byte
}

type scalar interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// arg views the leading bytes of r as a register type. Every register type
// is a byte array no larger than Reg, so the view is independent of host
// byte order.
func arg[T vec](r Reg) T { return *(*T)(unsafe.Pointer(&r)) }

func ret[T vec](x T) (r Reg) {
	*(*T)(unsafe.Pointer(&r)) = x
	return r
}

func scalarArg[S scalar](r Reg) S {
	var zero S
	switch any(zero).(type) {
	case float32:
		return S(math.Float32frombits(le32(r[0][:])))
	case float64:
		return S(math.Float64frombits(le64(r[0][:])))
	}
	return S(int64(le64(r[0][:])))
}

func scalarRet[S scalar](x S) (r Reg) {
	switch v := any(x).(type) {
	case float32:
		binary.LittleEndian.PutUint32(r[0][:], math.Float32bits(v))
	case float64:
		binary.LittleEndian.PutUint64(r[0][:], math.Float64bits(v))
	case int32:
		binary.LittleEndian.PutUint32(r[0][:], uint32(v))
	default:
		binary.LittleEndian.PutUint64(r[0][:], uint64(int64(x)))
	}
	return r
}

func kindOf[T any]() LaneKind {
	var zero T
	switch any(zero).(type) {
	case M128, M256, float32:
		return KindFloat32
	case M128d, M256d, float64:
		return KindFloat64
	}
	return KindInt
}

func bitsOf[T any]() int {
	var zero T
	if n := int(unsafe.Sizeof(zero)) * 8; n > 128 {
		return n
	}
	return 128
}

func entry[R any](name string, arity, width int, eval func(a, b, c Reg) Reg) Op {
	return Op{
		Name:   name,
		Imm:    NoImm,
		Width:  max(width, bitsOf[R]()),
		Arity:  arity,
		Result: kindOf[R](),
		eval:   eval,
	}
}

func fn0[R vec](name string, f func() R) Op {
	return entry[R](name, 0, 128, func(_, _, _ Reg) Reg { return ret(f()) })
}

func fn1[R, A vec](name string, f func(A) R) Op {
	return entry[R](name, 1, bitsOf[A](), func(a, _, _ Reg) Reg { return ret(f(arg[A](a))) })
}

func fn2[R, A vec](name string, f func(A, A) R) Op {
	return entry[R](name, 2, bitsOf[A](), func(a, b, _ Reg) Reg {
		return ret(f(arg[A](a), arg[A](b)))
	})
}

func fn2x[R, A, B vec](name string, f func(A, B) R) Op {
	return entry[R](name, 2, max(bitsOf[A](), bitsOf[B]()), func(a, b, _ Reg) Reg {
		return ret(f(arg[A](a), arg[B](b)))
	})
}

func fn3[R, A vec](name string, f func(A, A, A) R) Op {
	return entry[R](name, 3, bitsOf[A](), func(a, b, c Reg) Reg {
		return ret(f(arg[A](a), arg[A](b), arg[A](c)))
	})
}

// toScalar binds an operation with a scalar result.
func toScalar[S scalar, A vec](name string, f func(A) S) Op {
	return entry[S](name, 1, bitsOf[A](), func(a, _, _ Reg) Reg { return scalarRet(f(arg[A](a))) })
}

func toScalar2[S scalar, A vec](name string, f func(A, A) S) Op {
	return entry[S](name, 2, bitsOf[A](), func(a, b, _ Reg) Reg {
		return scalarRet(f(arg[A](a), arg[A](b)))
	})
}

// fromScalar binds an operation whose only operand is a scalar.
func fromScalar[R vec, S scalar](name string, f func(S) R) Op {
	return entry[R](name, 1, 128, func(a, _, _ Reg) Reg { return ret(f(scalarArg[S](a))) })
}

// withScalar binds an operation taking a register and a scalar.
func withScalar[R, A vec, S scalar](name string, f func(A, S) R) Op {
	return entry[R](name, 2, bitsOf[A](), func(a, b, _ Reg) Reg {
		return ret(f(arg[A](a), scalarArg[S](b)))
	})
}

func withImm(o Op, imm int, eval func(a, b, c Reg) Reg) Op {
	o.Imm = imm
	o.eval = eval
	return o
}

func imm1[R, A vec](name string, f func(A, int) R, imms ...int) []Op {
	ops := make([]Op, len(imms))
	for i, imm := range imms {
		ops[i] = withImm(entry[R](name, 1, bitsOf[A](), nil), imm, func(a, _, _ Reg) Reg {
			return ret(f(arg[A](a), imm))
		})
	}
	return ops
}

func imm2[R, A vec](name string, f func(A, A, int) R, imms ...int) []Op {
	ops := make([]Op, len(imms))
	for i, imm := range imms {
		ops[i] = withImm(entry[R](name, 2, bitsOf[A](), nil), imm, func(a, b, _ Reg) Reg {
			return ret(f(arg[A](a), arg[A](b), imm))
		})
	}
	return ops
}

func imm2x[R, A, B vec](name string, f func(A, B, int) R, imms ...int) []Op {
	ops := make([]Op, len(imms))
	for i, imm := range imms {
		ops[i] = withImm(entry[R](name, 2, bitsOf[A](), nil), imm, func(a, b, _ Reg) Reg {
			return ret(f(arg[A](a), arg[B](b), imm))
		})
	}
	return ops
}

func immScalar[S scalar, A vec](name string, f func(A, int) S, imms ...int) []Op {
	ops := make([]Op, len(imms))
	for i, imm := range imms {
		ops[i] = withImm(entry[S](name, 1, bitsOf[A](), nil), imm, func(a, _, _ Reg) Reg {
			return scalarRet(f(arg[A](a), imm))
		})
	}
	return ops
}

func immInsert[R, A vec, S scalar](name string, f func(A, S, int) R, imms ...int) []Op {
	ops := make([]Op, len(imms))
	for i, imm := range imms {
		ops[i] = withImm(entry[R](name, 2, bitsOf[A](), nil), imm, func(a, b, _ Reg) Reg {
			return ret(f(arg[A](a), scalarArg[S](b), imm))
		})
	}
	return ops
}

// Memory operations are bound over the bytes of the first operand: loads
// read it as an element slice, stores write their result into a zeroed one.

func elems[T float32 | float64 | int32](r Reg) []T {
	var zero T
	n := 32 / int(unsafe.Sizeof(zero))
	p := make([]T, n)
	for i := range p {
		switch q := any(&p[i]).(type) {
		case *float32:
			*q = math.Float32frombits(le32(r[i/4][4*(i%4):]))
		case *float64:
			*q = math.Float64frombits(le64(r[i/2][8*(i%2):]))
		case *int32:
			*q = int32(le32(r[i/4][4*(i%4):]))
		}
	}
	return p
}

func fromElems[T float32 | float64 | int32](p []T) (r Reg) {
	for i, x := range p {
		switch v := any(x).(type) {
		case float32:
			binary.LittleEndian.PutUint32(r[i/4][4*(i%4):], math.Float32bits(v))
		case float64:
			binary.LittleEndian.PutUint64(r[i/2][8*(i%2):], math.Float64bits(v))
		case int32:
			binary.LittleEndian.PutUint32(r[i/4][4*(i%4):], uint32(v))
		}
	}
	return r
}

func load[R vec, T float32 | float64 | int32](name string, f func([]T) R) Op {
	return entry[R](name, 1, 128, func(a, _, _ Reg) Reg { return ret(f(elems[T](a))) })
}

func store[A vec, T float32 | float64 | int32](name string, f func([]T, A)) Op {
	return entry[A](name, 1, 128, func(a, _, _ Reg) Reg {
		var zero T
		p := make([]T, 32/int(unsafe.Sizeof(zero)))
		f(p, arg[A](a))
		return fromElems(p)
	})
}

var (
	catalog []Op
	byKey   map[string]*Op
)

func register(ops ...Op) { catalog = append(catalog, ops...) }

func registerAll(ops ...[]Op) {
	for _, o := range ops {
		register(o...)
	}
}

func init() {
	registerCatalog()
	byKey = make(map[string]*Op, len(catalog))
	for i := range catalog {
		o := &catalog[i]
		if _, dup := byKey[o.Key()]; dup {
			panic("sse: duplicate catalog entry " + o.Key())
		}
		byKey[o.Key()] = o
	}
}

// Catalog returns every bound operation in registration order. The slice is
// shared and must not be modified.
func Catalog() []Op { return catalog }

// Lookup finds an operation by Key, e.g. "_mm_add_ps" or
// "_mm_shuffle_epi32(0x36)". A bare name of an immediate operation returns
// its first registered immediate.
func Lookup(key string) (*Op, bool) {
	if o, ok := byKey[key]; ok {
		return o, true
	}
	for i := range catalog {
		if catalog[i].Name == key {
			return &catalog[i], true
		}
	}
	return nil, false
}

// Names returns the distinct intrinsic names in the catalog, sorted.
func Names() []string {
	seen := make(map[string]bool, len(catalog))
	var names []string
	for _, o := range catalog {
		if !seen[o.Name] {
			seen[o.Name] = true
			names = append(names, o.Name)
		}
	}
	slices.Sort(names)
	return names
}
