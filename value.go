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

import (
	"math"
	"math/bits"
)

// Q is a fixed-point value with I bits of signed integer part (including
// the sign bit) and F bits of fractional part, where (I, F) is declared by
// S and T is the narrowest of int8, int32 and int64 holding I+F bits. A Q
// value is a thin wrapper around its backing integer: copying a Q copies
// that integer and nothing else, there is no sharing and no lifetime to
// manage.
type Q[T Backing, S Shape] struct {
	x T
}

// Raw returns the backing integer, interpreting it as x / 2^F.
func (q Q[T, S]) Raw() T { return q.x }

// FromRaw builds a Q directly from an already-scaled backing integer,
// without any range checking. Callers that didn't derive x from a
// checked operation are responsible for the Q(I,F) invariant themselves.
func FromRaw[T Backing, S Shape](x T) Q[T, S] { return Q[T, S]{x: x} }

// Zero returns the Q(I,F) value 0.
func Zero[T Backing, S Shape]() Q[T, S] { return Q[T, S]{} }

func shapeBits[S Shape]() (i, f int) {
	var s S
	return s.Bits()
}

// FromInt constructs Q(I,F) from a signed integer, storing i<<F. It fails
// with OverflowError unless i fits in I bits.
func FromInt[T Backing, S Shape](i int64) (Q[T, S], error) {
	iBits, f := shapeBits[S]()
	if !fitIn(i, iBits) {
		return Q[T, S]{}, overflowErr("FromInt", signOfInt64(i))
	}
	return Q[T, S]{x: T(i << uint(f))}, nil
}

// FromFloat constructs Q(I,F) from a float64, storing
// round_toward_zero(f * 2^F). It fails with OverflowError if the integer
// part of the stored value differs from floor(f): whenever |f| is too
// large to represent, and, under the deliberate round-toward-zero rule,
// whenever f is negative, non-integral, and F is too small to carry the
// fractional remainder that would otherwise make the two agree.
func FromFloat[T Backing, S Shape](f float64) (Q[T, S], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Q[T, S]{}, overflowErr("FromFloat", signOfFloat(f))
	}

	iBits, fBits := shapeBits[S]()
	scale := float64(int64(1) << uint(fBits))
	scaled := f * scale

	if scaled >= 9.223372036854776e18 || scaled < -9.223372036854776e18 {
		return Q[T, S]{}, overflowErr("FromFloat", signOfFloat(f))
	}

	raw := int64(scaled) // Go truncates toward zero, matching C cast semantics.
	intPart := raw >> uint(fBits)

	if float64(intPart) != math.Floor(f) {
		return Q[T, S]{}, overflowErr("FromFloat", signOfFloat(f))
	}
	if !fitIn(intPart, iBits) {
		return Q[T, S]{}, overflowErr("FromFloat", signOfInt64(intPart))
	}

	return Q[T, S]{x: T(raw)}, nil
}

// FromQ converts a Q of a possibly different shape and backing type into
// Q(I,F), aligning the fractional point (fxAlign) and failing with
// OverflowError if the result's integer part doesn't fit in I bits.
func FromQ[T Backing, S Shape, T2 Backing, S2 Shape](src Q[T2, S2]) (Q[T, S], error) {
	_, f2 := shapeBits[S2]()
	iBits, f := shapeBits[S]()

	// The integer part survives alignment unchanged (narrowing only
	// truncates fractional bits), so checking it against the target I
	// before shifting also keeps a widening fxAlign from wrapping int64.
	intPart := int64(src.x) >> uint(f2)
	if !fitIn(intPart, iBits) {
		return Q[T, S]{}, overflowErr("FromQ", signOfInt64(intPart))
	}

	return Q[T, S]{x: T(fxAlign(int64(src.x), f2, f))}, nil
}

// fxAlign shifts a backing integer from fFrom fractional bits to fTo
// fractional bits: right (toward -infinity, since Go's >> on a signed
// integer is arithmetic) when narrowing, left when widening.
func fxAlign(x int64, fFrom, fTo int) int64 {
	if fFrom > fTo {
		return x >> uint(fFrom-fTo)
	}
	return x << uint(fTo-fFrom)
}

// Add returns a+b, or OverflowError on signed wrap of the backing register
// or when the sum's integer part doesn't fit in I bits (a backing integer
// can be wider than I+F, e.g. Q(8,8) in an int32).
func (a Q[T, S]) Add(b Q[T, S]) (Q[T, S], error) {
	w := backingWidth[T]()
	iBits, f := shapeBits[S]()
	sum, ov := addOverflowAt(int64(a.x), int64(b.x), w)
	if !ov {
		ov = !fitIn(sum>>uint(f), iBits)
	}
	if ov {
		// A signed add only overflows when both operands share a sign, so
		// either operand names the direction; the wrapped sum does not.
		return Q[T, S]{}, overflowErr("Add", signOfInt64(int64(a.x)))
	}
	return Q[T, S]{x: T(sum)}, nil
}

// AddShape adds b (a possibly different shape) to a, converting b to a's
// shape first.
func AddShape[T Backing, S Shape, T2 Backing, S2 Shape](a Q[T, S], b Q[T2, S2]) (Q[T, S], error) {
	bConv, err := FromQ[T, S](b)
	if err != nil {
		return Q[T, S]{}, err
	}
	return a.Add(bConv)
}

// Sub returns a-b, or OverflowError on signed wrap or when the
// difference's integer part doesn't fit in I bits.
func (a Q[T, S]) Sub(b Q[T, S]) (Q[T, S], error) {
	w := backingWidth[T]()
	iBits, f := shapeBits[S]()
	diff, ov := subOverflowAt(int64(a.x), int64(b.x), w)
	if !ov {
		ov = !fitIn(diff>>uint(f), iBits)
	}
	if ov {
		// A signed subtract only overflows when the operands' signs differ;
		// the result would have carried a's sign.
		return Q[T, S]{}, overflowErr("Sub", signOfInt64(int64(a.x)))
	}
	return Q[T, S]{x: T(diff)}, nil
}

// SubShape subtracts b (a possibly different shape) from a, converting b
// to a's shape first.
func SubShape[T Backing, S Shape, T2 Backing, S2 Shape](a Q[T, S], b Q[T2, S2]) (Q[T, S], error) {
	bConv, err := FromQ[T, S](b)
	if err != nil {
		return Q[T, S]{}, err
	}
	return a.Sub(bConv)
}

// Abs returns the absolute value of a. On the most-negative representable
// value it returns the same bit pattern unchanged: the mathematically
// correct magnitude doesn't fit the shape, and the operation is defined
// to preserve the representation rather than fail (see DESIGN.md).
func (a Q[T, S]) Abs() Q[T, S] {
	i, f := shapeBits[S]()
	if int64(a.x) == -(int64(1) << uint(i-1+f)) {
		return a
	}
	if int64(a.x) < 0 {
		return Q[T, S]{x: T(-int64(a.x))}
	}
	return a
}

// Neg returns -a. It is not overflow-checked: negating the shape's
// most-negative value gives a result outside the shape's range.
func (a Q[T, S]) Neg() Q[T, S] { return Q[T, S]{x: T(-int64(a.x))} }

// Lt reports whether a < b.
func (a Q[T, S]) Lt(b Q[T, S]) bool { return a.x < b.x }

// Eq reports whether a == b.
func (a Q[T, S]) Eq(b Q[T, S]) bool { return a.x == b.x }

// Gt reports whether a > b.
func (a Q[T, S]) Gt(b Q[T, S]) bool { return b.Lt(a) }

// Lte reports whether a <= b.
func (a Q[T, S]) Lte(b Q[T, S]) bool { return !a.Gt(b) }

// Gte reports whether a >= b.
func (a Q[T, S]) Gte(b Q[T, S]) bool { return !a.Lt(b) }

// IsZero reports whether a is zero.
func (a Q[T, S]) IsZero() bool { return a.x == 0 }

// IsNeg reports whether a is negative.
func (a Q[T, S]) IsNeg() bool { return a.x < 0 }

// Floor returns the arithmetic floor of a, i.e. x >> F. The result is
// always widened to int64: Go's generics can't compute a return type
// sized to the constant I, and int64 always has headroom since I <= 64.
// Callers who want the narrow integer use SmallestWidth to pick the type
// they truncate into.
func (a Q[T, S]) Floor() int64 {
	_, f := shapeBits[S]()
	return int64(a.x) >> uint(f)
}

// Ceil returns the arithmetic ceiling of a: (x + (2^F - 1)) >> F.
func (a Q[T, S]) Ceil() int64 {
	_, f := shapeBits[S]()
	if f == 0 {
		return int64(a.x)
	}
	bias := (int64(1) << uint(f)) - 1
	return (int64(a.x) + bias) >> uint(f)
}

// Float64 returns x / 2^F as a float64.
func (a Q[T, S]) Float64() float64 {
	_, f := shapeBits[S]()
	return float64(a.x) / float64(int64(1)<<uint(f))
}

// Float32 returns x / 2^F as a float32.
func (a Q[T, S]) Float32() float32 {
	return float32(a.Float64())
}

// ErrorBits returns the bit length of |a.x - b.x|: the number of low bits
// by which two same-shape values' backing integers differ. Used by tests
// to bound loss-of-precision.
func ErrorBits[T Backing, S Shape](a, b Q[T, S]) int {
	diff := int64(a.x) - int64(b.x)
	if diff < 0 {
		diff = -diff
	}
	if diff == 0 {
		return 0
	}
	return bits.Len64(uint64(diff))
}

func signOfInt64(x int64) Sign {
	if x < 0 {
		return Negative
	}
	return Positive
}

func signOfFloat(f float64) Sign {
	if f < 0 {
		return Negative
	}
	return Positive
}
