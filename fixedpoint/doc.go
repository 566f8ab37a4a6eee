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

// Package fixedpoint provides 32-bit fixed-point arithmetic primitives
// defined once, generically, and realized over interchangeable raw value
// types: the one-lane scalar Int32x1 and the four-lane vector Int32x4.
//
// A fixed-point number is an integer reinterpreted as a real value in a
// fixed interval (such as [-1, 1]) via an implicit binary point. What
// distinguishes fixed-point arithmetic from plain integer arithmetic is
// the multiplication: instead of the full, overflowing product, only the
// most significant half of the double-width product is kept, doubled and
// rounded (SaturatingRoundingDoublingHighMul).
//
// Every primitive behaves bit-identically across realizations, lane for
// lane. An algorithm written against the generic operations, such as the
// iterated multiply-high steps used to evaluate tanh or sigmoid on
// quantized data, produces the same bits whether instantiated with
// Int32x1 or Int32x4. Which realization runs is decided where the
// algorithm is instantiated, at compile time; nothing in this package
// branches on the host CPU.
//
// Conditionals are expressed with masks rather than branches: comparisons
// produce raw values whose lanes are all-ones or all-zeros, and
// SelectUsingMask combines them with bit operations so that every lane of
// a vector takes the same path.
//
// Basic usage:
//
//	a := fixedpoint.BroadcastInt32x4(3)
//	halved := fixedpoint.ScaleDown(a, 1) // 2 in every lane: 3/2 rounds to nearest
//
//	// The same call, checked against the scalar reference:
//	s := fixedpoint.ScaleDown(fixedpoint.Int32x1(3), 1) // 2
package fixedpoint
