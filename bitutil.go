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

// This file contains the integer utilities that the rest of the package is
// built on: leading-zero counts, overflow-checked add/sub, fit-in-n-bits
// checks, and the two division-free primitives (MulHU and ScaledAdd) at
// each of the three backing widths. The layout is one small, direct
// analogue of each operation per width, with a thin generic dispatcher on
// top so callers working with Q[T, S] don't need to type-switch
// themselves.
//
// The basic operations are:
// - Leading-zero count / bit length
// - Overflow-checked addition and subtraction
// - Fits-in-n-bits check
// - MulHU: high-half unsigned multiply at an arbitrary shift
// - ScaledAdd: (a+b)>>shift without intermediate overflow

import "math/bits"

// clzAt returns the number of leading zero bits of x, treating x as an
// unsigned value of the given width. x must have no bits set above w.
func clzAt(x uint64, w Width) int {
	switch w {
	case Width8:
		return bits.LeadingZeros8(uint8(x))
	case Width16:
		return bits.LeadingZeros16(uint16(x))
	case Width32:
		return bits.LeadingZeros32(uint32(x))
	default:
		return bits.LeadingZeros64(x)
	}
}

// log2CeilAt returns the bit length of x at width w: w - clz(x). Undefined
// for x == 0, like clzAt; callers guard.
func log2CeilAt(x uint64, w Width) int {
	return int(w) - clzAt(x, w)
}

// fitIn reports whether the signed value x fits in n bits, i.e.
// x ∈ [-2^(n-1), 2^(n-1)-1]. Works for n up to 64 (the whole-width case).
func fitIn(x int64, n int) bool {
	if n >= 64 {
		return true
	}
	if n <= 0 {
		return x == 0
	}
	lo := -(int64(1) << uint(n-1))
	hi := (int64(1) << uint(n-1)) - 1
	return x >= lo && x <= hi
}

// absAt returns the absolute value of a signed quantity of width w, as an
// unsigned magnitude. On the most-negative value of that width, the result
// is the same bit pattern reinterpreted unsigned (i.e. 2^(w-1)); callers
// that can't tolerate that are responsible for not feeding it.
func absAt(x int64, w Width) uint64 {
	if x >= 0 {
		return uint64(x) & widthMask(w)
	}
	return uint64(-x) & widthMask(w)
}

func widthMask(w Width) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(w)) - 1
}

// addOverflowAt computes a+b at width w and reports whether the signed sum
// overflowed. For sub-64-bit widths, the addition is carried out in a
// 64-bit container (which has ample headroom) and simply range-checked;
// only the true register width (64) needs the classic sign-bit XOR trick
// because no wider native type backs it.
func addOverflowAt(a, b int64, w Width) (int64, bool) {
	sum := a + b
	switch w {
	case Width8, Width32:
		return sum, !fitIn(sum, int(w))
	default:
		return sum, ((a^sum)&(b^sum) < 0)
	}
}

// subOverflowAt computes a-b at width w and reports whether the signed
// difference overflowed, with the same width handling as addOverflowAt.
func subOverflowAt(a, b int64, w Width) (int64, bool) {
	diff := a - b
	switch w {
	case Width8, Width32:
		return diff, !fitIn(diff, int(w))
	default:
		return diff, ((b^a)&(b^diff) < 0)
	}
}

// mulHUAt computes (a*b) >> shift, treating a and b as unsigned magnitudes
// of width w and returning the low 64 bits of that (necessarily-fitting)
// result. For width8/width32 the product always fits comfortably in a
// uint64, so the computation is direct. At width64 no wider native type
// exists; math/bits.Mul64 returns the exact (hi, lo) halves of the full
// 128-bit product without materializing a 128-bit value, and the pair is
// then shifted right by an arbitrary amount. The four-partial-product
// recurrence this is equivalent to (ahi*bhi, ahi*blo, alo*bhi, alo*blo
// recombined through ScaledAdd) is not hand-rolled here because Mul64
// already is that double-width primitive, exposed as an intrinsic.
func mulHUAt(a, b uint64, shift uint, w Width) uint64 {
	switch w {
	case Width64:
		hi, lo := bits.Mul64(a, b)
		return shiftRight128(hi, lo, shift)
	default:
		return (a * b) >> shift
	}
}

// shiftRight128 returns the low 64 bits of (hi:lo) >> shift, where (hi:lo)
// is a 128-bit unsigned value with hi the high 64 bits.
func shiftRight128(hi, lo uint64, shift uint) uint64 {
	switch {
	case shift == 0:
		return lo
	case shift < 64:
		return (hi << (64 - shift)) | (lo >> shift)
	case shift == 64:
		return hi
	case shift < 128:
		return hi >> (shift - 64)
	default:
		return 0
	}
}

// scaledAddAt computes (a+b) >> shift exactly, with a and b treated as
// unsigned magnitudes of width w, even when a+b overflows w bits. At
// width64, math/bits.Add64's carry-out is exactly the 65th bit of the
// sum; combining (carry:sum) and shifting is then exact with no
// intermediate overflow, with no need for the halving identity
// (a + (b-a)/2) >> (s-1) that environments without a carry-out add
// fall back on.
func scaledAddAt(a, b uint64, shift uint, w Width) uint64 {
	switch w {
	case Width64:
		sum, carry := bits.Add64(a, b, 0)
		if shift >= 64 {
			if shift-64 >= 64 {
				return 0
			}
			return carry >> (shift - 64)
		}
		return (sum >> shift) | (carry << (64 - shift))
	default:
		return (a + b) >> shift
	}
}

// --- Generic dispatch used by Q[T, S] and exported for library authors
// building their own kernels on top of the same primitives. ---

// Clz returns the number of leading zero bits of x's bit pattern, at T's
// native width. Undefined for x == 0.
func Clz[T Backing](x T) int {
	return clzAt(uint64(x)&widthMask(backingWidth[T]()), backingWidth[T]())
}

// Log2Ceil returns the bit length of |x| at T's native width.
func Log2Ceil[T Backing](x T) int {
	return log2CeilAt(absAt(int64(x), backingWidth[T]()), backingWidth[T]())
}

// AddOverflow reports whether the signed sum a+b overflows T's width.
func AddOverflow[T Backing](a, b T) bool {
	_, ov := addOverflowAt(int64(a), int64(b), backingWidth[T]())
	return ov
}

// SubOverflow reports whether the signed difference a-b overflows T's
// width.
func SubOverflow[T Backing](a, b T) bool {
	_, ov := subOverflowAt(int64(a), int64(b), backingWidth[T]())
	return ov
}

// FitIn reports whether the signed value x fits in n bits.
func FitIn[T Backing](x T, n int) bool {
	return fitIn(int64(x), n)
}

// AbsMag returns the absolute value of x as an unsigned magnitude at T's
// native width. See absAt for the INT_MIN special case.
func AbsMag[T Backing](x T) uint64 {
	return absAt(int64(x), backingWidth[T]())
}

// MulHU computes (a*b) >> shift, treating a and b as unsigned magnitudes
// of width w. shift must be at least w for the result to fit the width.
func MulHU(a, b uint64, shift uint, w Width) uint64 {
	return mulHUAt(a, b, shift, w)
}

// ScaledAdd computes (a+b) >> shift exactly at width w, even when the sum
// itself overflows w bits.
func ScaledAdd(a, b uint64, shift uint, w Width) uint64 {
	return scaledAddAt(a, b, shift, w)
}
