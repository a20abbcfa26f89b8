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

// Package fixed implements Q(I,F) fixed-point numbers: signed values with I
// bits of integer part and F bits of fractional part, stored in the
// narrowest of int8, int32 and int64 that holds I+F bits (16-bit storage
// is skipped, so shapes of 9 to 32 bits use int32).
//
// A shape is declared once as a zero-size marker type implementing Shape,
// and a concrete value type is named by instantiating Q with a backing
// integer type and that marker:
//
//	type shape16x16 struct{}
//	func (shape16x16) Bits() (i, f int) { return 16, 16 }
//	type Q16_16 = fixed.Q[int32, shape16x16]
//
// Construction, conversion, Add/Sub, reciprocal and square root are
// checked and return an error (OverflowError or DomainError) instead of
// wrapping; Abs and Neg return no error (see their docs). There is no runtime
// precision switch: the pairing of backing type and shape is fixed at
// compile time, and mismatched pairings are caught by Validate.
package fixed
