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

// Int32x4 is the four-lane realization of the Raw contract: a portable
// rendition of a 128-bit integer vector register holding 4 int32 lanes.
// Every method touches each lane independently, with no cross-lane
// interaction.
type Int32x4 [4]int32

// Uint32x4 holds the native result of a lane-wise comparison: 0xFFFFFFFF
// in each true lane, 0 in each false lane. It only exists to be
// reinterpreted back into the signed representation via AsInt32x4.
type Uint32x4 [4]uint32

// ===== Int32x4 constructors and accessors =====

// BroadcastInt32x4 creates a vector with all lanes set to the given value.
func BroadcastInt32x4(x int32) Int32x4 {
	return Int32x4{x, x, x, x}
}

// LoadInt32x4 loads 4 int32 values from a slice. The slice must hold at
// least 4 elements.
func LoadInt32x4(s []int32) Int32x4 {
	_ = s[3]
	return Int32x4{s[0], s[1], s[2], s[3]}
}

// StoreSlice stores the vector to a slice. The slice must hold at least
// 4 elements.
func (v Int32x4) StoreSlice(s []int32) {
	_ = s[3]
	copy(s, v[:])
}

// NumLanes returns 4.
func (Int32x4) NumLanes() int { return 4 }

// Get returns the lane at the given index.
func (v Int32x4) Get(i int) int32 { return v[i] }

// Set sets the lane at the given index.
func (v *Int32x4) Set(i int, x int32) { v[i] = x }

// Broadcast returns a vector with every lane set to x. The receiver's
// lanes are ignored.
func (Int32x4) Broadcast(x int32) Int32x4 { return BroadcastInt32x4(x) }

// ===== Bitwise operations =====

// And performs lane-wise bitwise AND.
func (v Int32x4) And(other Int32x4) Int32x4 {
	return Int32x4{v[0] & other[0], v[1] & other[1], v[2] & other[2], v[3] & other[3]}
}

// Or performs lane-wise bitwise OR.
func (v Int32x4) Or(other Int32x4) Int32x4 {
	return Int32x4{v[0] | other[0], v[1] | other[1], v[2] | other[2], v[3] | other[3]}
}

// Xor performs lane-wise bitwise XOR.
func (v Int32x4) Xor(other Int32x4) Int32x4 {
	return Int32x4{v[0] ^ other[0], v[1] ^ other[1], v[2] ^ other[2], v[3] ^ other[3]}
}

// Not performs lane-wise bitwise NOT, as XOR against an all-ones vector.
func (v Int32x4) Not() Int32x4 {
	return v.Xor(BroadcastInt32x4(-1))
}

// ===== Modular arithmetic =====

// Add performs lane-wise modular addition.
func (v Int32x4) Add(other Int32x4) Int32x4 {
	return Int32x4{v[0] + other[0], v[1] + other[1], v[2] + other[2], v[3] + other[3]}
}

// Sub performs lane-wise modular subtraction.
func (v Int32x4) Sub(other Int32x4) Int32x4 {
	return Int32x4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Neg performs lane-wise modular negation.
func (v Int32x4) Neg() Int32x4 {
	return Int32x4{-v[0], -v[1], -v[2], -v[3]}
}

// ShiftAllLeft shifts all lanes left by the given count.
func (v Int32x4) ShiftAllLeft(count int) Int32x4 {
	return Int32x4{v[0] << count, v[1] << count, v[2] << count, v[3] << count}
}

// ShiftAllRight shifts all lanes right by the given count, arithmetically.
func (v Int32x4) ShiftAllRight(count int) Int32x4 {
	return Int32x4{v[0] >> count, v[1] >> count, v[2] >> count, v[3] >> count}
}

// ===== Comparisons =====

// laneMask converts one comparison outcome to the native unsigned lane
// encoding.
func laneMask(b bool) uint32 {
	if b {
		return 0xFFFFFFFF
	}
	return 0
}

// AsInt32x4 reinterprets the unsigned comparison result as a signed raw
// value. Each lane conversion preserves the bit pattern: a true lane is
// 0xFFFFFFFF before and -1 (same bits) after.
func (u Uint32x4) AsInt32x4() Int32x4 {
	return Int32x4{int32(u[0]), int32(u[1]), int32(u[2]), int32(u[3])}
}

// AsUint32x4 reinterprets the vector's lanes as unsigned, preserving bits.
func (v Int32x4) AsUint32x4() Uint32x4 {
	return Uint32x4{uint32(v[0]), uint32(v[1]), uint32(v[2]), uint32(v[3])}
}

// Get returns the lane at the given index.
func (u Uint32x4) Get(i int) uint32 { return u[i] }

// Equal returns the mask for v == other.
func (v Int32x4) Equal(other Int32x4) Int32x4 {
	return Uint32x4{
		laneMask(v[0] == other[0]),
		laneMask(v[1] == other[1]),
		laneMask(v[2] == other[2]),
		laneMask(v[3] == other[3]),
	}.AsInt32x4()
}

// Greater returns the mask for v > other.
func (v Int32x4) Greater(other Int32x4) Int32x4 {
	return Uint32x4{
		laneMask(v[0] > other[0]),
		laneMask(v[1] > other[1]),
		laneMask(v[2] > other[2]),
		laneMask(v[3] > other[3]),
	}.AsInt32x4()
}

// GreaterEqual returns the mask for v >= other.
func (v Int32x4) GreaterEqual(other Int32x4) Int32x4 {
	return Uint32x4{
		laneMask(v[0] >= other[0]),
		laneMask(v[1] >= other[1]),
		laneMask(v[2] >= other[2]),
		laneMask(v[3] >= other[3]),
	}.AsInt32x4()
}

// Less returns the mask for v < other.
func (v Int32x4) Less(other Int32x4) Int32x4 {
	return Uint32x4{
		laneMask(v[0] < other[0]),
		laneMask(v[1] < other[1]),
		laneMask(v[2] < other[2]),
		laneMask(v[3] < other[3]),
	}.AsInt32x4()
}

// LessEqual returns the mask for v <= other.
func (v Int32x4) LessEqual(other Int32x4) Int32x4 {
	return Uint32x4{
		laneMask(v[0] <= other[0]),
		laneMask(v[1] <= other[1]),
		laneMask(v[2] <= other[2]),
		laneMask(v[3] <= other[3]),
	}.AsInt32x4()
}

// ===== Fixed-point arithmetic =====

// RoundingHalfSum returns (v+other)/2 per lane, rounded to nearest with
// ties away from zero. Each lane runs the same kernel as the scalar
// realization.
func (v Int32x4) RoundingHalfSum(other Int32x4) Int32x4 {
	var result Int32x4
	for i := 0; i < 4; i++ {
		result[i] = roundingHalfSumInt32(v[i], other[i])
	}
	return result
}

// SaturatingRoundingDoublingHighMul returns the fixed-point product per
// lane. Each lane runs the same kernel as the scalar realization, so the
// rounding and the MinInt32 saturation corner match bit for bit.
func (v Int32x4) SaturatingRoundingDoublingHighMul(other Int32x4) Int32x4 {
	var result Int32x4
	for i := 0; i < 4; i++ {
		result[i] = saturatingRoundingDoublingHighMulInt32(v[i], other[i])
	}
	return result
}
