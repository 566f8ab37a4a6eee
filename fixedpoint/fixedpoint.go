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

// Raw is the capability contract every backend raw value type realizes.
// A raw value packs NumLanes independent 32-bit lanes into one value; the
// generic operations below are instantiated per raw type with no runtime
// dispatch. The contract doubles as the type registry: instantiating an
// operation with a type that is missing a method is a compile-time error,
// so there is no runtime lookup to miss.
//
// Comparison methods return masks: raw values whose lanes are all-ones
// (true) or all-zeros (false). Masks are produced only by comparisons and
// zero tests and consumed only by bitwise and select operations; handing
// an arbitrary bit pattern to a mask consumer is undefined.
type Raw[R any] interface {
	// NumLanes returns the number of independent 32-bit lanes.
	NumLanes() int
	// Get returns lane i as a scalar.
	Get(i int) int32
	// Broadcast returns a raw value with every lane set to x.
	// The receiver's lanes are ignored; only its type matters.
	Broadcast(x int32) R

	And(R) R
	Or(R) R
	Xor(R) R
	Not() R

	Add(R) R
	Sub(R) R
	Neg() R
	ShiftAllLeft(count int) R
	ShiftAllRight(count int) R

	Equal(R) R
	Greater(R) R
	GreaterEqual(R) R
	Less(R) R
	LessEqual(R) R

	RoundingHalfSum(R) R
	SaturatingRoundingDoublingHighMul(R) R
}

// NumLanes returns the lane count of the raw type R: how many scalar
// fixed-point numbers one primitive call processes.
func NumLanes[R Raw[R]]() int {
	var zero R
	return zero.NumLanes()
}

// Dup returns a raw value with every lane equal to x. For the scalar
// backend this is the identity.
func Dup[R Raw[R]](x int32) R {
	var zero R
	return zero.Broadcast(x)
}

// BitAnd returns the lane-wise AND of a and b.
func BitAnd[R Raw[R]](a, b R) R { return a.And(b) }

// BitOr returns the lane-wise OR of a and b.
func BitOr[R Raw[R]](a, b R) R { return a.Or(b) }

// BitXor returns the lane-wise XOR of a and b.
func BitXor[R Raw[R]](a, b R) R { return a.Xor(b) }

// BitNot returns the lane-wise complement of a.
func BitNot[R Raw[R]](a R) R { return a.Not() }

// SelectUsingMask returns thenVal in every lane where mask is all-ones
// and elseVal in every lane where mask is all-zeros. It is composed from
// bit operations, never a branch, so that every lane of a vector takes
// the same path; piecewise fixed-point functions are built on this.
// The result is unspecified for lanes that are not proper mask lanes.
func SelectUsingMask[R Raw[R]](mask, thenVal, elseVal R) R {
	return BitXor(BitAnd(mask, thenVal), BitAnd(BitNot(mask), elseVal))
}

// MaskIfEqual returns a mask that is all-ones in each lane where a == b.
func MaskIfEqual[R Raw[R]](a, b R) R { return a.Equal(b) }

// MaskIfNotEqual returns a mask that is all-ones in each lane where a != b.
func MaskIfNotEqual[R Raw[R]](a, b R) R { return BitNot(a.Equal(b)) }

// MaskIfZero returns a mask that is all-ones in each lane where a == 0.
func MaskIfZero[R Raw[R]](a R) R { return MaskIfEqual(a, Dup[R](0)) }

// MaskIfNonZero returns a mask that is all-ones in each lane where a != 0.
func MaskIfNonZero[R Raw[R]](a R) R { return BitNot(MaskIfZero(a)) }

// MaskIfGreaterThan returns a mask that is all-ones in each lane where a > b.
func MaskIfGreaterThan[R Raw[R]](a, b R) R { return a.Greater(b) }

// MaskIfGreaterThanOrEqual returns a mask that is all-ones in each lane
// where a >= b.
func MaskIfGreaterThanOrEqual[R Raw[R]](a, b R) R { return a.GreaterEqual(b) }

// MaskIfLessThan returns a mask that is all-ones in each lane where a < b.
func MaskIfLessThan[R Raw[R]](a, b R) R { return a.Less(b) }

// MaskIfLessThanOrEqual returns a mask that is all-ones in each lane
// where a <= b.
func MaskIfLessThanOrEqual[R Raw[R]](a, b R) R { return a.LessEqual(b) }

// All reports whether every lane of mask is non-zero. It materializes the
// lanes and combines them scalarly; there is no single-instruction
// horizontal reduction at this width. All and Any are the only
// operations in the layer that produce a plain bool.
func All[R Raw[R]](mask R) bool {
	for i := 0; i < mask.NumLanes(); i++ {
		if mask.Get(i) == 0 {
			return false
		}
	}
	return true
}

// Any reports whether at least one lane of mask is non-zero.
func Any[R Raw[R]](mask R) bool {
	for i := 0; i < mask.NumLanes(); i++ {
		if mask.Get(i) != 0 {
			return true
		}
	}
	return false
}

// Add returns the lane-wise sum of a and b. Overflow wraps; saturation is
// the caller's concern.
func Add[R Raw[R]](a, b R) R { return a.Add(b) }

// Sub returns the lane-wise difference of a and b. Overflow wraps.
func Sub[R Raw[R]](a, b R) R { return a.Sub(b) }

// Neg returns the lane-wise negation of a. Negating the most negative
// value wraps.
func Neg[R Raw[R]](a R) R { return a.Neg() }

// ShiftLeft shifts every lane left by count bits. count must be in [0, 31].
func ShiftLeft[R Raw[R]](a R, count int) R { return a.ShiftAllLeft(count) }

// ShiftRight shifts every lane right by count bits, arithmetically
// (sign-filling). count must be in [0, 31].
func ShiftRight[R Raw[R]](a R, count int) R { return a.ShiftAllRight(count) }

// RoundingHalfSum returns (a+b)/2 per lane, rounded to nearest with ties
// away from zero, never truncated. The intermediate sum is computed at
// double width, so it cannot overflow.
func RoundingHalfSum[R Raw[R]](a, b R) R { return a.RoundingHalfSum(b) }

// SaturatingRoundingDoublingHighMul returns the fixed-point product of a
// and b per lane: the high half of the doubled 64-bit product, rounded to
// nearest with ties toward positive infinity. The one corner that cannot
// be represented, MinInt32 * MinInt32, saturates to MaxInt32 instead of
// overflowing. Every realization returns identical bits lane for lane.
func SaturatingRoundingDoublingHighMul[R Raw[R]](a, b R) R {
	return a.SaturatingRoundingDoublingHighMul(b)
}

// ScaleUp multiplies x by 2^amount with saturation: lanes whose scaled
// value would overflow clamp to MinInt32 or MaxInt32 instead of wrapping.
// amount must be in [0, 31]; amount 0 leaves x unchanged. Callers that
// know the sign of their exponent call ScaleUp for positive exponents and
// ScaleDown for negative ones; the two paths are not symmetric under
// saturation and rounding.
func ScaleUp[R Raw[R]](x R, amount int) R {
	threshold := int32((int64(1) << (31 - amount)) - 1)
	positive := MaskIfGreaterThan(x, Dup[R](threshold))
	negative := MaskIfLessThan(x, Dup[R](-threshold))
	shifted := ShiftLeft(x, amount)
	result := SelectUsingMask(positive, Dup[R](math.MaxInt32), shifted)
	return SelectUsingMask(negative, Dup[R](math.MinInt32), result)
}

// ScaleDown divides x by 2^amount, rounding to nearest with ties away
// from zero, never truncating toward negative infinity. amount must be in
// [0, 31]; amount 0 leaves x unchanged (the remainder mask is empty).
// The rounding bias is derived from the discarded remainder with the
// layer's own mask primitives, so every realization rounds identically.
func ScaleDown[R Raw[R]](x R, amount int) R {
	mask := Dup[R](int32((int64(1) << amount) - 1))
	zero := Dup[R](0)
	one := Dup[R](1)
	remainder := BitAnd(x, mask)
	threshold := Add(ShiftRight(mask, 1), BitAnd(MaskIfLessThan(x, zero), one))
	return Add(ShiftRight(x, amount), BitAnd(MaskIfGreaterThan(remainder, threshold), one))
}
