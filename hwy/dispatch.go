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


package hwy

import (
	"unsafe"

	"github.com/xyproto/env/v2"
)

// DispatchLevel is the SIMD instruction set the host offers natively.
type DispatchLevel int

const (
	// DispatchScalar means no usable SIMD, or HWY_NO_SIMD is set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 is the x86-64 baseline.
	DispatchSSE2

	// DispatchAVX2 is x86-64 with AVX2: the instruction set package sse
	// emulates, available natively.
	DispatchAVX2

	// DispatchNEON is AArch64 Advanced SIMD, the ISA package neon models.
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Set by init() in dispatch_*.go files.
var (
	currentLevel DispatchLevel
	currentWidth int
)

// CurrentLevel returns the host's native SIMD level.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the native SIMD register width in bytes: 16 for
// SSE2 and NEON, 32 for AVX2.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of CurrentLevel, e.g. "avx2" or "neon".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv reports whether HWY_NO_SIMD is set to a true value. It forces
// DispatchScalar regardless of the CPU, which keeps host-dependent output
// stable in tests.
func NoSimdEnv() bool {
	return env.Bool("HWY_NO_SIMD")
}

// MaxLanes returns how many lanes of T fit in a register of the current
// width. With AVX2 that is 8 for float32 and 4 for float64.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return currentWidth / elementSize
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16
}
