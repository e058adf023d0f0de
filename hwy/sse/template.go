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

// Operation templates. A 128-bit intrinsic names its native primitive and
// its fixups; the template does the reinterpretation and the correction.
// R is the result view and is always given explicitly, the operand view is
// inferred.

type (
	native1 = func(a neon.V128) neon.V128
	native2 = func(a, b neon.V128) neon.V128
	native3 = func(a, b, c neon.V128) neon.V128
)

func op1[R, A narrow](a A, f native1, fix Fixup) R {
	na := native(a)
	return fromNative[R](postprocess(f(na), na, na, fix))
}

func op2[R, A narrow](a, b A, f native2, fix Fixup) R {
	na, nb := native(a), native(b)
	return fromNative[R](postprocess(f(na, nb), na, nb, fix))
}

func op3[R, A narrow](a, b, c A, f native3, fix Fixup) R {
	na, nb := native(a), native(b)
	return fromNative[R](postprocess(f(na, nb, native(c)), na, nb, fix))
}

// 256-bit templates: split each operand into halves, apply the 128-bit
// operation to each half and join the results in (lower, upper) order. The
// 128-bit operation brings its own fixups, so both widths correct alike.

func split1[R, W wide, NR, N narrow](a W, f func(N) NR) R {
	alo, ahi := halves[W, N](a)
	return join[R](f(alo), f(ahi))
}

func split2[R, W wide, NR, N narrow](a, b W, f func(N, N) NR) R {
	alo, ahi := halves[W, N](a)
	blo, bhi := halves[W, N](b)
	return join[R](f(alo, blo), f(ahi, bhi))
}

func split3[R, W wide, NR, N narrow](a, b, c W, f func(N, N, N) NR) R {
	alo, ahi := halves[W, N](a)
	blo, bhi := halves[W, N](b)
	clo, chi := halves[W, N](c)
	return join[R](f(alo, blo, clo), f(ahi, bhi, chi))
}
