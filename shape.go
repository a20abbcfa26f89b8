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

import "fmt"

// Shape reports the compile-time (I, F) pair of a Q value: I bits of signed
// integer part (including the sign bit) and F bits of fractional part.
// Shapes are zero-size marker types; Bits is called on the zero value, so
// implementations should not carry any state.
type Shape interface {
	Bits() (i, f int)
}

// Backing is the set of native signed integer types usable as storage for
// a Q value. Per the width-selection table, 16-bit is deliberately skipped
// here: it is slower than 32-bit on common CPUs for this workload, so it
// only appears in the "smallest" table (see Width and SmallestWidth).
type Backing interface {
	~int8 | ~int32 | ~int64
}

// Width is the bit width of a backing integer or of a logical (I+F) shape
// total. Only the three "fastest" widths are valid backing widths; Width16
// exists solely for the "smallest" table (see SmallestWidth), which callers
// use to pick a narrow type for the int64 that Floor/Ceil return.
type Width int

const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// FastestWidth selects a backing width for n total bits. The 16-bit slot
// is deliberately skipped (it is slower than 32-bit on common CPUs), so
// shapes with 9 to 32 total bits all back onto int32. ok is false when n
// exceeds the 64-bit capability.
func FastestWidth(n int) (Width, bool) {
	switch {
	case n <= 8:
		return Width8, true
	case n <= 32:
		return Width32, true
	case n <= 64:
		return Width64, true
	default:
		return 0, false
	}
}

// SmallestWidth selects the narrowest width holding n bits, keeping the
// 16-bit slot. Floor and Ceil always return int64 (see their docs);
// callers who want the narrow integer a shape's I bits justify use this
// selector to pick the type they truncate into.
func SmallestWidth(n int) Width {
	switch {
	case n <= 8:
		return Width8
	case n <= 16:
		return Width16
	case n <= 32:
		return Width32
	default:
		return Width64
	}
}

func backingWidth[T Backing]() Width {
	switch any(T(0)).(type) {
	case int8:
		return Width8
	case int32:
		return Width32
	case int64:
		return Width64
	default:
		panic("fixed: unsupported backing type")
	}
}

// Validate reports an error if the backing type T does not have exactly
// the width that shape S's (I, F) demands. Go has no way to reject a
// mismatched (T, S) pairing at compile time (there are no value/const
// generics), so libraries built on Q are expected to call Validate once,
// e.g. from a package-level var initializer, for every shape they declare.
func Validate[T Backing, S Shape]() error {
	i, f := shapeBits[S]()
	if i < 1 {
		return fmt.Errorf("fixed: shape requires I >= 1, got I=%d", i)
	}
	if f < 0 {
		return fmt.Errorf("fixed: shape requires F >= 0, got F=%d", f)
	}
	want, ok := FastestWidth(i + f)
	if !ok {
		return fmt.Errorf("fixed: shape (I=%d, F=%d) needs %d bits, which exceeds the 64-bit capability", i, f, i+f)
	}
	got := backingWidth[T]()
	if got != want {
		return fmt.Errorf("fixed: shape (I=%d, F=%d) needs a %d-bit backing type, got %d-bit", i, f, want, got)
	}
	return nil
}

// MustValidate is Validate, panicking on error. Intended for use in a
// package-level var so a mismatched (T, S) pairing fails at program
// startup rather than silently corrupting values at the first operation.
func MustValidate[T Backing, S Shape]() struct{} {
	if err := Validate[T, S](); err != nil {
		panic(err)
	}
	return struct{}{}
}
