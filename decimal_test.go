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

import "testing"

func TestToDecimalPlainInteger(t *testing.T) {
	t.Parallel()

	v, err := FromInt[int32, shape16x16](123)
	if err != nil {
		t.Fatalf("FromInt: %v", err)
	}
	if got := v.ToDecimal(-1, false); got != "123.0" {
		t.Errorf("ToDecimal(123) = %q, want %q", got, "123.0")
	}
}

func TestFromDecimalTrailingDotPrintsAsDotZero(t *testing.T) {
	t.Parallel()

	v, err := FromDecimal[int32, shape16x16]("-123.")
	if err != nil {
		t.Fatalf("FromDecimal: %v", err)
	}
	if got := v.ToDecimal(-1, false); got != "-123.0" {
		t.Errorf("ToDecimal(-123.) = %q, want %q", got, "-123.0")
	}
}

func TestFromDecimalLeadingWhitespace(t *testing.T) {
	t.Parallel()

	v, err := FromDecimal[int32, shape16x16]("   42.5")
	if err != nil {
		t.Fatalf("FromDecimal: %v", err)
	}
	want, _ := FromFloat[int32, shape16x16](42.5)
	if !v.Eq(want) {
		t.Errorf("FromDecimal(\"   42.5\") = %v, want %v", v, want)
	}
}

func TestFromDecimalRejectsGarbage(t *testing.T) {
	t.Parallel()

	cases := []string{"12x3", "1.2.3", "--1", "", "."}
	for _, s := range cases {
		if _, err := FromDecimal[int32, shape16x16](s); err == nil {
			t.Errorf("FromDecimal(%q) should fail to parse", s)
		}
	}
}

func TestFromDecimalOverflow(t *testing.T) {
	t.Parallel()

	if _, err := FromDecimal[int8, shape8x0]("200"); err == nil {
		t.Error("FromDecimal(\"200\") into Q(8,0) should overflow")
	}
}

// TestDecimalRoundTripQ32_32 parses 999.000009999 into Q(32,32), prints
// it back, and reparses; the cycle loses no more than 2 low bits.
func TestDecimalRoundTripQ32_32(t *testing.T) {
	t.Parallel()

	v, err := FromDecimal[int64, shape32x32]("999.000009999")
	if err != nil {
		t.Fatalf("FromDecimal: %v", err)
	}

	printed := v.ToDecimal(-1, false)
	reparsed, err := FromDecimal[int64, shape32x32](printed)
	if err != nil {
		t.Fatalf("FromDecimal(reprint): %v", err)
	}

	if got := ErrorBits(v, reparsed); got > 2 {
		t.Errorf("round trip of 999.000009999 through %q lost %d bits, want <= 2", printed, got)
	}
}

func TestToDecimalZeropad(t *testing.T) {
	t.Parallel()

	v, err := FromFloat[int32, shape16x16](3.5)
	if err != nil {
		t.Fatalf("FromFloat: %v", err)
	}
	padded := v.ToDecimal(4, true)
	if padded != "3.5000" {
		t.Errorf("ToDecimal(3.5, prec=4, zeropad) = %q, want %q", padded, "3.5000")
	}
	stripped := v.ToDecimal(4, false)
	if stripped != "3.5" {
		t.Errorf("ToDecimal(3.5, prec=4, no zeropad) = %q, want %q", stripped, "3.5")
	}
}

func TestToDecimalNegative(t *testing.T) {
	t.Parallel()

	v, err := FromFloat[int32, shape16x16](-7.25)
	if err != nil {
		t.Fatalf("FromFloat: %v", err)
	}
	if got := v.ToDecimal(2, false); got != "-7.25" {
		t.Errorf("ToDecimal(-7.25) = %q, want %q", got, "-7.25")
	}
}
