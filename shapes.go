/*
 * Copyright Flow Foundation
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package fixed

// This file declares a handful of ready-to-use Q shapes covering the
// three backing widths. Shapes are zero-size marker types: declaring one
// is boilerplate, so the library ships the common ones rather than make
// every caller repeat it.

type shape1x7 struct{}

func (shape1x7) Bits() (int, int) { return 1, 7 }

// Q1_7 holds values in [-1, 0.9921875].
type Q1_7 = Q[int8, shape1x7]

type shape2x6 struct{}

func (shape2x6) Bits() (int, int) { return 2, 6 }

// Q2_6 holds values in [-2, 1.984375].
type Q2_6 = Q[int8, shape2x6]

type shape8x0 struct{}

func (shape8x0) Bits() (int, int) { return 8, 0 }

// Q8_0 is a plain 8-bit signed integer wearing a Q(I,F) coat.
type Q8_0 = Q[int8, shape8x0]

type shape8x8 struct{}

func (shape8x8) Bits() (int, int) { return 8, 8 }

// Q8_8 is the half-precision companion of Q16_16 (used by SqrtFast).
type Q8_8 = Q[int32, shape8x8]

type shape16x16 struct{}

func (shape16x16) Bits() (int, int) { return 16, 16 }

// Q16_16 is a general-purpose 32-bit shape: 16 integer bits, 16 fractional.
type Q16_16 = Q[int32, shape16x16]

type shape4x12 struct{}

func (shape4x12) Bits() (int, int) { return 4, 12 }

// Q4_12 is the half-precision companion of Q8_24 (used by SqrtFast).
type Q4_12 = Q[int32, shape4x12]

type shape8x24 struct{}

func (shape8x24) Bits() (int, int) { return 8, 24 }

// Q8_24 favors fractional precision over integer range.
type Q8_24 = Q[int32, shape8x24]

type shape16x48 struct{}

func (shape16x48) Bits() (int, int) { return 16, 48 }

// Q16_48 is the Q(2I,2F) promotion target of Q8_24, used by Sqrt.
type Q16_48 = Q[int64, shape16x48]

type shape32x32 struct{}

func (shape32x32) Bits() (int, int) { return 32, 32 }

// Q32_32 is a general-purpose 64-bit shape, and the promotion target of
// Q16_16 (used by Sqrt). Its own square root goes through SqrtWide64,
// since doubling it further would need 128 bits.
type Q32_32 = Q[int64, shape32x32]

var (
	_ = MustValidate[int8, shape1x7]()
	_ = MustValidate[int8, shape2x6]()
	_ = MustValidate[int8, shape8x0]()
	_ = MustValidate[int32, shape8x8]()
	_ = MustValidate[int32, shape16x16]()
	_ = MustValidate[int32, shape4x12]()
	_ = MustValidate[int32, shape8x24]()
	_ = MustValidate[int64, shape16x48]()
	_ = MustValidate[int64, shape32x32]()
)
