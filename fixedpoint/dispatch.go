// Copyright 2026 gemmlowp Authors
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

package fixedpoint

import (
	"os"
	"strconv"
)

// Level identifies an integer SIMD instruction set of the host CPU.
//
// Detection is purely diagnostic. The primitives in this package never
// branch on it: which realization of an operation runs is fixed at
// compile time by the raw type the caller instantiates. NativeLevel only
// tells callers and tools what a natively vectorized build of the
// four-lane backend would map to on this host.
type Level int

const (
	// LevelScalar indicates no integer SIMD, one lane per operation.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// nativeLevel is the detected integer SIMD level for this host.
// Set by init() in dispatch_*.go files.
var nativeLevel Level

// nativeWidth is the register width in bytes for the detected level.
// Set by init() in dispatch_*.go files.
var nativeWidth int

// NativeLevel returns the widest integer SIMD level the host offers.
func NativeLevel() Level {
	return nativeLevel
}

// NativeWidth returns the register width in bytes for the detected
// level: 4 for scalar, 16 for SSE2/NEON, 32 for AVX2.
func NativeWidth() int {
	return nativeWidth
}

// NativeName returns a human-readable name for the detected level.
func NativeName() string {
	return nativeLevel.String()
}

// NoSimdEnv checks whether the GEMMLOWP_NO_SIMD environment variable is
// set, which makes detection report scalar regardless of CPU
// capabilities. Useful when comparing diagnostics across hosts.
func NoSimdEnv() bool {
	val := os.Getenv("GEMMLOWP_NO_SIMD")
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarLevel() {
	nativeLevel = LevelScalar
	nativeWidth = 4
}
