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

import (
	"fmt"

	"github.com/ajroetker/softintrin/hwy/contrib/workerpool"
)

// Slice kernels apply a vector class lane by lane over whole slices. The
// input is cut into ranges of whole registers and the ranges run on pool; a
// nil pool runs everything on the caller. A trailing partial register is
// padded with zeros, evaluated as a full register and copied back, so tail
// elements get the same x86 semantics as the rest.

// vector is the part of a vector class the kernels need.
type vector[V any, T any] interface {
	Store(p []T)
	Add(V) V
}

type kernel[V vector[V, T], T any] struct {
	lanes int
	load  func([]T) V
}

var (
	f32k = kernel[F32vec8, float32]{8, LoadF32vec8}
	f64k = kernel[F64vec4, float64]{4, LoadF64vec4}
	i32k = kernel[I32vec8, int32]{8, LoadI32vec8}
)

func checkLen(op string, dst int, src ...int) error {
	for _, n := range src {
		if n != dst {
			return fmt.Errorf("dvec: %s: length mismatch: dst %d, src %d", op, dst, n)
		}
	}
	return nil
}

func chunks(pool *workerpool.Pool, n, align int, fn func(lo, hi int)) {
	if pool == nil {
		fn(0, n)
		return
	}
	pool.Chunks(n, align, fn)
}

// span runs f on [lo, hi) one register at a time.
func (k kernel[V, T]) span(lo, hi int, f func(i int, tmp []T)) {
	var pad [8]T
	i := lo
	for ; i+k.lanes <= hi; i += k.lanes {
		f(i, nil)
	}
	if i < hi {
		clear(pad[:])
		f(i, pad[:k.lanes])
	}
}

func (k kernel[V, T]) binary(pool *workerpool.Pool, dst, a, b []T, op func(V, V) V) {
	chunks(pool, len(dst), k.lanes, func(lo, hi int) {
		k.span(lo, hi, func(i int, tmp []T) {
			if tmp == nil {
				op(k.load(a[i:]), k.load(b[i:])).Store(dst[i:])
				return
			}
			var tb [8]T
			n := copy(tmp, a[i:hi])
			copy(tb[:], b[i:hi])
			op(k.load(tmp), k.load(tb[:k.lanes])).Store(tmp)
			copy(dst[i:], tmp[:n])
		})
	})
}

func (k kernel[V, T]) unary(pool *workerpool.Pool, dst, a []T, op func(V) V) {
	chunks(pool, len(dst), k.lanes, func(lo, hi int) {
		k.span(lo, hi, func(i int, tmp []T) {
			if tmp == nil {
				op(k.load(a[i:])).Store(dst[i:])
				return
			}
			n := copy(tmp, a[i:hi])
			op(k.load(tmp)).Store(tmp)
			copy(dst[i:], tmp[:n])
		})
	})
}

// partials accumulates each range into one register and returns the
// per-range registers in range order.
func (k kernel[V, T]) partials(pool *workerpool.Pool, a []T, zero V) []V {
	workers := 1
	if pool != nil {
		workers = pool.Workers()
	}
	per := max((len(a)+workers-1)/workers, 1)
	per = (per + k.lanes - 1) / k.lanes * k.lanes
	out := make([]V, (len(a)+per-1)/per)
	chunks(pool, len(a), per, func(lo, hi int) {
		for ; lo < hi; lo += per {
			end := min(lo+per, hi)
			acc := zero
			k.span(lo, end, func(i int, tmp []T) {
				if tmp == nil {
					acc = acc.Add(k.load(a[i:]))
					return
				}
				copy(tmp, a[i:end])
				acc = acc.Add(k.load(tmp))
			})
			out[lo/per] = acc
		}
	})
	return out
}

// AddF32 sets dst[i] = a[i] + b[i].
func AddF32(pool *workerpool.Pool, dst, a, b []float32) error {
	if err := checkLen("AddF32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f32k.binary(pool, dst, a, b, F32vec8.Add)
	return nil
}

// MulF32 sets dst[i] = a[i] * b[i].
func MulF32(pool *workerpool.Pool, dst, a, b []float32) error {
	if err := checkLen("MulF32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f32k.binary(pool, dst, a, b, F32vec8.Mul)
	return nil
}

// DivF32 sets dst[i] = a[i] / b[i] with x86 results: 0/0 and Inf/Inf give
// the negative indefinite NaN.
func DivF32(pool *workerpool.Pool, dst, a, b []float32) error {
	if err := checkLen("DivF32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f32k.binary(pool, dst, a, b, F32vec8.Div)
	return nil
}

// MinF32 sets dst[i] = min(a[i], b[i]), taking b[i] when either is NaN.
func MinF32(pool *workerpool.Pool, dst, a, b []float32) error {
	if err := checkLen("MinF32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f32k.binary(pool, dst, a, b, F32vec8.Min)
	return nil
}

// MaxF32 sets dst[i] = max(a[i], b[i]), taking b[i] when either is NaN.
func MaxF32(pool *workerpool.Pool, dst, a, b []float32) error {
	if err := checkLen("MaxF32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f32k.binary(pool, dst, a, b, F32vec8.Max)
	return nil
}

// SqrtF32 sets dst[i] = sqrt(a[i]). Negative inputs give a NaN with the
// sign bit set.
func SqrtF32(pool *workerpool.Pool, dst, a []float32) error {
	if err := checkLen("SqrtF32", len(dst), len(a)); err != nil {
		return err
	}
	f32k.unary(pool, dst, a, F32vec8.Sqrt)
	return nil
}

// ScaleF32 sets dst[i] = a[i] * s.
func ScaleF32(pool *workerpool.Pool, dst, a []float32, s float32) error {
	if err := checkLen("ScaleF32", len(dst), len(a)); err != nil {
		return err
	}
	sv := SplatF32vec8(s)
	f32k.unary(pool, dst, a, func(v F32vec8) F32vec8 { return v.Mul(sv) })
	return nil
}

// SumF32 returns the sum of a. Each worker range is summed in registers and
// the range sums are added in order, so the result depends on the pool size.
func SumF32(pool *workerpool.Pool, a []float32) float32 {
	var s float32
	for _, v := range f32k.partials(pool, a, F32vec8{}) {
		s += v.Sum()
	}
	return s
}

// AddF64 sets dst[i] = a[i] + b[i].
func AddF64(pool *workerpool.Pool, dst, a, b []float64) error {
	if err := checkLen("AddF64", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f64k.binary(pool, dst, a, b, F64vec4.Add)
	return nil
}

// DivF64 sets dst[i] = a[i] / b[i] with x86 results.
func DivF64(pool *workerpool.Pool, dst, a, b []float64) error {
	if err := checkLen("DivF64", len(dst), len(a), len(b)); err != nil {
		return err
	}
	f64k.binary(pool, dst, a, b, F64vec4.Div)
	return nil
}

// SqrtF64 sets dst[i] = sqrt(a[i]).
func SqrtF64(pool *workerpool.Pool, dst, a []float64) error {
	if err := checkLen("SqrtF64", len(dst), len(a)); err != nil {
		return err
	}
	f64k.unary(pool, dst, a, F64vec4.Sqrt)
	return nil
}

// SumF64 returns the sum of a, like SumF32.
func SumF64(pool *workerpool.Pool, a []float64) float64 {
	var s float64
	for _, v := range f64k.partials(pool, a, F64vec4{}) {
		s += v.Sum()
	}
	return s
}

// AddI32 sets dst[i] = a[i] + b[i] with wraparound.
func AddI32(pool *workerpool.Pool, dst, a, b []int32) error {
	if err := checkLen("AddI32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	i32k.binary(pool, dst, a, b, I32vec8.Add)
	return nil
}

// MulI32 sets dst[i] to the low 32 bits of a[i] * b[i].
func MulI32(pool *workerpool.Pool, dst, a, b []int32) error {
	if err := checkLen("MulI32", len(dst), len(a), len(b)); err != nil {
		return err
	}
	i32k.binary(pool, dst, a, b, I32vec8.Mul)
	return nil
}

// AbsI32 sets dst[i] = |a[i]|; math.MinInt32 stays math.MinInt32.
func AbsI32(pool *workerpool.Pool, dst, a []int32) error {
	if err := checkLen("AbsI32", len(dst), len(a)); err != nil {
		return err
	}
	i32k.unary(pool, dst, a, I32vec8.Abs)
	return nil
}

// SumI32 returns the wrapping sum of a.
func SumI32(pool *workerpool.Pool, a []int32) int32 {
	var s int32
	for _, v := range i32k.partials(pool, a, I32vec8{}) {
		s += v.Sum()
	}
	return s
}
