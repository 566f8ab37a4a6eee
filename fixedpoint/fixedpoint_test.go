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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testInt32Values covers sign, magnitude and saturation corners.
var testInt32Values = []int32{
	0, 1, -1, 2, -2, 3, -3, 5, -5,
	123, -123, 123456789, -123456789,
	1 << 15, -(1 << 15), 1 << 16, 1 << 30, -(1 << 30),
	math.MaxInt32, math.MaxInt32 - 1, math.MinInt32, math.MinInt32 + 1,
}

// requireLanes asserts that every lane of got equals want.
func requireLanes[R Raw[R]](t *testing.T, want int32, got R) {
	t.Helper()
	for i := 0; i < got.NumLanes(); i++ {
		require.Equal(t, want, got.Get(i), "lane %d", i)
	}
}

// Generic test bodies, instantiated below for both realizations.

func testNumLanes[R Raw[R]](t *testing.T, want int) {
	require.Equal(t, want, NumLanes[R]())
}

func testDupUniform[R Raw[R]](t *testing.T) {
	for _, v := range testInt32Values {
		d := Dup[R](v)
		requireLanes(t, v, d)
		require.True(t, All(MaskIfEqual(d, Dup[R](v))))
	}
}

func testBitwise[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		for _, b := range testInt32Values {
			da, db := Dup[R](a), Dup[R](b)
			requireLanes(t, a&b, BitAnd(da, db))
			requireLanes(t, a|b, BitOr(da, db))
			requireLanes(t, a^b, BitXor(da, db))
		}
		requireLanes(t, ^a, BitNot(Dup[R](a)))
	}
}

func testModularArithmetic[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		for _, b := range testInt32Values {
			da, db := Dup[R](a), Dup[R](b)
			requireLanes(t, a+b, Add(da, db))
			requireLanes(t, a-b, Sub(da, db))
		}
		requireLanes(t, -a, Neg(Dup[R](a)))
	}

	// Wraparound is the caller's concern, not this layer's.
	requireLanes(t, math.MinInt32, Add(Dup[R](math.MaxInt32), Dup[R](1)))
	requireLanes(t, math.MaxInt32, Sub(Dup[R](math.MinInt32), Dup[R](1)))
	requireLanes(t, math.MinInt32, Neg(Dup[R](math.MinInt32)))
}

func testShifts[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		for _, count := range []int{0, 1, 4, 15, 31} {
			requireLanes(t, a<<count, ShiftLeft(Dup[R](a), count))
			requireLanes(t, a>>count, ShiftRight(Dup[R](a), count))
		}
	}
}

func testSelectRoundTrip[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		for _, b := range testInt32Values {
			da, db := Dup[R](a), Dup[R](b)
			requireLanes(t, a, SelectUsingMask(MaskIfEqual(da, da), da, db))
			requireLanes(t, b, SelectUsingMask(MaskIfNotEqual(da, da), da, db))
		}
	}
}

func testMaskSelfComparisons[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		da := Dup[R](a)
		require.False(t, Any(MaskIfNotEqual(da, da)), "a=%d", a)
		requireLanes(t, 0, MaskIfNotEqual(da, da))
		require.True(t, All(MaskIfEqual(da, da)), "a=%d", a)
		require.True(t, All(MaskIfGreaterThanOrEqual(da, da)), "a=%d", a)
		require.True(t, All(MaskIfLessThanOrEqual(da, da)), "a=%d", a)
		require.False(t, Any(MaskIfGreaterThan(da, da)), "a=%d", a)
		require.False(t, Any(MaskIfLessThan(da, da)), "a=%d", a)
	}
}

func testOrderingMasks[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		for _, b := range testInt32Values {
			da, db := Dup[R](a), Dup[R](b)
			assert.Equal(t, a > b, All(MaskIfGreaterThan(da, db)), "%d > %d", a, b)
			assert.Equal(t, a >= b, All(MaskIfGreaterThanOrEqual(da, db)), "%d >= %d", a, b)
			assert.Equal(t, a < b, All(MaskIfLessThan(da, db)), "%d < %d", a, b)
			assert.Equal(t, a <= b, All(MaskIfLessThanOrEqual(da, db)), "%d <= %d", a, b)
			assert.Equal(t, a == b, All(MaskIfEqual(da, db)), "%d == %d", a, b)
		}
	}
}

func testZeroMasks[R Raw[R]](t *testing.T) {
	for _, a := range testInt32Values {
		da := Dup[R](a)
		assert.Equal(t, a == 0, All(MaskIfZero(da)), "a=%d", a)
		assert.Equal(t, a != 0, All(MaskIfNonZero(da)), "a=%d", a)
	}
}

func testRoundingHalfSum[R Raw[R]](t *testing.T) {
	// Ties round away from zero: the documented rule for this layer.
	cases := []struct{ a, b, want int32 }{
		{1, 2, 2},    // 1.5 -> 2
		{-1, -2, -2}, // -1.5 -> -2
		{3, 0, 2},
		{-3, 0, -2},
		{2, 4, 3}, // exact
		{-2, -4, -3},
		{0, 0, 0},
		{math.MaxInt32, math.MaxInt32, math.MaxInt32},
		{math.MinInt32, math.MinInt32, math.MinInt32},
		{math.MaxInt32, math.MinInt32, -1}, // sum -1, half -0.5, away from zero
	}

	for _, c := range cases {
		requireLanes(t, c.want, RoundingHalfSum(Dup[R](c.a), Dup[R](c.b)))
	}

	for _, a := range testInt32Values {
		requireLanes(t, a, RoundingHalfSum(Dup[R](a), Dup[R](a)))
	}
}

func testSaturatingRoundingDoublingHighMul[R Raw[R]](t *testing.T) {
	cases := []struct{ a, b, want int32 }{
		// The one saturation corner: most-negative squared clamps to max.
		{math.MinInt32, math.MinInt32, math.MaxInt32},
		{math.MaxInt32, math.MaxInt32, math.MaxInt32 - 1},
		{math.MaxInt32, math.MinInt32, math.MinInt32 + 1},
		// 0.5 * 0.5 = 0.25 in Q31.
		{1 << 30, 1 << 30, 1 << 29},
		{-(1 << 30), 1 << 30, -(1 << 29)},
		// Doubled high product exactly 0.5: ties go toward +inf.
		{1 << 15, 1 << 15, 1},
		{-(1 << 15), 1 << 15, 0},
		{1 << 16, 1 << 16, 2},
		// Tiny products round to zero.
		{1, 1, 0},
		{-1, 1, 0},
		{0, math.MaxInt32, 0},
		{0, math.MinInt32, 0},
	}
	for _, c := range cases {
		requireLanes(t, c.want, SaturatingRoundingDoublingHighMul(Dup[R](c.a), Dup[R](c.b)))
	}
}

func testScaleUp[R Raw[R]](t *testing.T) {
	// Zero amount is the identity for every representable value.
	for _, a := range testInt32Values {
		requireLanes(t, a, ScaleUp(Dup[R](a), 0))
	}

	cases := []struct {
		x      int32
		amount int
		want   int32
	}{
		{123, 4, 1968},
		{-123, 4, -1968},
		{1, 30, 1 << 30},
		// Overflow saturates to the bounds instead of wrapping.
		{1 << 30, 2, math.MaxInt32},
		{-(1 << 30), 2, math.MinInt32},
		{math.MaxInt32, 1, math.MaxInt32},
		{math.MinInt32, 1, math.MinInt32},
		{1, 31, math.MaxInt32},
		{-1, 31, math.MinInt32},
		{0, 31, 0},
		// Largest value that still shifts exactly.
		{(1 << 29) - 1, 2, (1 << 31) - 4},
	}
	for _, c := range cases {
		requireLanes(t, c.want, ScaleUp(Dup[R](c.x), c.amount))
	}
}

func testScaleDown[R Raw[R]](t *testing.T) {
	// Zero amount is the identity for every representable value.
	for _, a := range testInt32Values {
		requireLanes(t, a, ScaleDown(Dup[R](a), 0))
	}

	cases := []struct {
		x      int32
		amount int
		want   int32
	}{
		// Round to nearest, not truncation: 3/2 is 2, not 1.
		{3, 1, 2},
		{-3, 1, -2},
		{5, 1, 3},
		{-5, 1, -3},
		{4, 1, 2},
		{-4, 1, -2},
		{5, 2, 1},  // 1.25 -> 1
		{7, 2, 2},  // 1.75 -> 2
		{6, 2, 2},  // 1.5 -> 2, tie away from zero
		{-6, 2, -2},
		{math.MaxInt32, 31, 1},
		{math.MinInt32, 31, -1},
		{math.MinInt32 + 1, 31, -1},
		{1, 31, 0},
	}
	for _, c := range cases {
		requireLanes(t, c.want, ScaleDown(Dup[R](c.x), c.amount))
	}
}

func TestNumLanesPerBackend(t *testing.T) {
	t.Run("Int32x1", func(t *testing.T) { testNumLanes[Int32x1](t, 1) })
	t.Run("Int32x4", func(t *testing.T) { testNumLanes[Int32x4](t, 4) })
}

func TestDupUniform(t *testing.T) {
	t.Run("Int32x1", testDupUniform[Int32x1])
	t.Run("Int32x4", testDupUniform[Int32x4])
}

func TestBitwise(t *testing.T) {
	t.Run("Int32x1", testBitwise[Int32x1])
	t.Run("Int32x4", testBitwise[Int32x4])
}

func TestModularArithmetic(t *testing.T) {
	t.Run("Int32x1", testModularArithmetic[Int32x1])
	t.Run("Int32x4", testModularArithmetic[Int32x4])
}

func TestShifts(t *testing.T) {
	t.Run("Int32x1", testShifts[Int32x1])
	t.Run("Int32x4", testShifts[Int32x4])
}

func TestSelectRoundTrip(t *testing.T) {
	t.Run("Int32x1", testSelectRoundTrip[Int32x1])
	t.Run("Int32x4", testSelectRoundTrip[Int32x4])
}

func TestMaskSelfComparisons(t *testing.T) {
	t.Run("Int32x1", testMaskSelfComparisons[Int32x1])
	t.Run("Int32x4", testMaskSelfComparisons[Int32x4])
}

func TestOrderingMasks(t *testing.T) {
	t.Run("Int32x1", testOrderingMasks[Int32x1])
	t.Run("Int32x4", testOrderingMasks[Int32x4])
}

func TestZeroMasks(t *testing.T) {
	t.Run("Int32x1", testZeroMasks[Int32x1])
	t.Run("Int32x4", testZeroMasks[Int32x4])
}

func TestRoundingHalfSum(t *testing.T) {
	t.Run("Int32x1", testRoundingHalfSum[Int32x1])
	t.Run("Int32x4", testRoundingHalfSum[Int32x4])
}

func TestSaturatingRoundingDoublingHighMul(t *testing.T) {
	t.Run("Int32x1", testSaturatingRoundingDoublingHighMul[Int32x1])
	t.Run("Int32x4", testSaturatingRoundingDoublingHighMul[Int32x4])
}

func TestScaleUp(t *testing.T) {
	t.Run("Int32x1", testScaleUp[Int32x1])
	t.Run("Int32x4", testScaleUp[Int32x4])
}

func TestScaleDown(t *testing.T) {
	t.Run("Int32x1", testScaleDown[Int32x1])
	t.Run("Int32x4", testScaleDown[Int32x4])
}
