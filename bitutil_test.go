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

func TestMulHU(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		a, b  uint64
		shift uint
		w     Width
		want  uint64
	}{
		{"u8", 245, 38, 8, Width8, 36},
		{"u32", 3894967294, 2222222222, 32, Width32, 2015261648},
		{"u64_shift64", 11111111111111111111, 2222222222222222222, 64, Width64, 1338521200599388189},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := MulHU(c.a, c.b, c.shift, c.w)
			if got != c.want {
				t.Errorf("MulHU(%d, %d, %d, %v) = %d, want %d", c.a, c.b, c.shift, c.w, got, c.want)
			}
		})
	}
}

func TestScaledAdd(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		a, b  uint64
		shift uint
		want  uint64
	}{
		{"shift1", 11111111111111111111, 11111111111111111111, 1, 11111111111111111111},
		{"shift2", 1999999999999999992, 1999999999999999992, 2, 999999999999999996},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			got := ScaledAdd(c.a, c.b, c.shift, Width64)
			if got != c.want {
				t.Errorf("ScaledAdd(%d, %d, %d) = %d, want %d", c.a, c.b, c.shift, got, c.want)
			}
		})
	}
}

func TestFitIn(t *testing.T) {
	t.Parallel()

	if !FitIn[int8](127, 8) {
		t.Error("127 should fit in 8 bits")
	}
	if !fitIn(0, 0) {
		t.Error("0 should fit in 0 bits")
	}
	if fitIn(128, 8) {
		t.Error("128 should not fit in 8 bits")
	}
	if fitIn(-129, 8) {
		t.Error("-129 should not fit in 8 bits")
	}
	if !fitIn(-128, 8) {
		t.Error("-128 should fit in 8 bits")
	}
}

func TestAddSubOverflow(t *testing.T) {
	t.Parallel()

	if !AddOverflow[int8](100, 100) {
		t.Error("100+100 should overflow int8")
	}
	if AddOverflow[int8](10, 10) {
		t.Error("10+10 should not overflow int8")
	}
	if !SubOverflow[int8](-100, 100) {
		t.Error("-100-100 should overflow int8")
	}
}

func TestClzLog2Ceil(t *testing.T) {
	t.Parallel()

	if Clz[int8](1) != 7 {
		t.Errorf("Clz(1) at width 8 (signed container) = %d, want 7", Clz[int8](1))
	}
	if Log2Ceil[int8](1) != 1 {
		t.Errorf("Log2Ceil(1) = %d, want 1", Log2Ceil[int8](1))
	}
	if Log2Ceil[int8](127) != 7 {
		t.Errorf("Log2Ceil(127) = %d, want 7", Log2Ceil[int8](127))
	}
}

func TestAbsMag(t *testing.T) {
	t.Parallel()

	if AbsMag[int8](-5) != 5 {
		t.Errorf("AbsMag(-5) = %d, want 5", AbsMag[int8](-5))
	}
	if AbsMag[int8](5) != 5 {
		t.Errorf("AbsMag(5) = %d, want 5", AbsMag[int8](5))
	}
}

func TestShiftRight128(t *testing.T) {
	t.Parallel()

	hi, lo := uint64(1), uint64(0)
	if got := shiftRight128(hi, lo, 64); got != 1 {
		t.Errorf("shiftRight128(1, 0, 64) = %d, want 1", got)
	}
	if got := shiftRight128(hi, lo, 65); got != 0 {
		t.Errorf("shiftRight128(1, 0, 65) = %d, want 0", got)
	}
	if got := shiftRight128(0, ^uint64(0), 0); got != ^uint64(0) {
		t.Errorf("shiftRight128(0, max, 0) = %d, want max", got)
	}
}
