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

import "math"

// Int32x1 is the one-lane scalar realization of the Raw contract and the
// reference every wider realization must match lane for lane. Its mask
// lanes are the plain int32 values -1 (all-ones) and 0.
type Int32x1 int32

// NumLanes returns 1.
func (Int32x1) NumLanes() int { return 1 }

// Get returns the single lane. The index is ignored.
func (v Int32x1) Get(int) int32 { return int32(v) }

// Broadcast returns x as an Int32x1. For one lane this is the identity.
func (Int32x1) Broadcast(x int32) Int32x1 { return Int32x1(x) }

// And performs bitwise AND.
func (v Int32x1) And(other Int32x1) Int32x1 { return v & other }

// Or performs bitwise OR.
func (v Int32x1) Or(other Int32x1) Int32x1 { return v | other }

// Xor performs bitwise XOR.
func (v Int32x1) Xor(other Int32x1) Int32x1 { return v ^ other }

// Not performs bitwise NOT.
func (v Int32x1) Not() Int32x1 { return ^v }

// Add performs modular addition.
func (v Int32x1) Add(other Int32x1) Int32x1 { return v + other }

// Sub performs modular subtraction.
func (v Int32x1) Sub(other Int32x1) Int32x1 { return v - other }

// Neg performs modular negation.
func (v Int32x1) Neg() Int32x1 { return -v }

// ShiftAllLeft shifts left by count bits.
func (v Int32x1) ShiftAllLeft(count int) Int32x1 { return v << count }

// ShiftAllRight shifts right by count bits, arithmetically.
func (v Int32x1) ShiftAllRight(count int) Int32x1 { return v >> count }

// scalarMask converts a comparison outcome to the all-ones/all-zeros lane
// encoding.
func scalarMask(b bool) Int32x1 {
	if b {
		return -1
	}
	return 0
}

// Equal returns the mask for v == other.
func (v Int32x1) Equal(other Int32x1) Int32x1 { return scalarMask(v == other) }

// Greater returns the mask for v > other.
func (v Int32x1) Greater(other Int32x1) Int32x1 { return scalarMask(v > other) }

// GreaterEqual returns the mask for v >= other.
func (v Int32x1) GreaterEqual(other Int32x1) Int32x1 { return scalarMask(v >= other) }

// Less returns the mask for v < other.
func (v Int32x1) Less(other Int32x1) Int32x1 { return scalarMask(v < other) }

// LessEqual returns the mask for v <= other.
func (v Int32x1) LessEqual(other Int32x1) Int32x1 { return scalarMask(v <= other) }

// RoundingHalfSum returns (v+other)/2 rounded to nearest, ties away from
// zero.
func (v Int32x1) RoundingHalfSum(other Int32x1) Int32x1 {
	return Int32x1(roundingHalfSumInt32(int32(v), int32(other)))
}

// SaturatingRoundingDoublingHighMul returns the fixed-point product of v
// and other.
func (v Int32x1) SaturatingRoundingDoublingHighMul(other Int32x1) Int32x1 {
	return Int32x1(saturatingRoundingDoublingHighMulInt32(int32(v), int32(other)))
}

// roundingHalfSumInt32 is the per-lane kernel shared by every
// realization: the sum is taken at 64 bits, then nudged by the sign
// before halving so that ties round away from zero.
func roundingHalfSumInt32(a, b int32) int32 {
	sum := int64(a) + int64(b)
	sign := int64(1)
	if sum < 0 {
		sign = -1
	}
	return int32((sum + sign) / 2)
}

// saturatingRoundingDoublingHighMulInt32 is the per-lane kernel shared by
// every realization. The 64-bit product is nudged by half of the final
// divisor before the truncating divide by 1<<31, which rounds the doubled
// high half to nearest with ties toward positive infinity. The only
// unrepresentable case, MinInt32 squared, saturates to MaxInt32.
func saturatingRoundingDoublingHighMulInt32(a, b int32) int32 {
	overflow := a == b && a == math.MinInt32
	ab := int64(a) * int64(b)
	nudge := int64(1 << 30)
	if ab < 0 {
		nudge = 1 - (1 << 30)
	}
	result := int32((ab + nudge) / (1 << 31))
	if overflow {
		return math.MaxInt32
	}
	return result
}
