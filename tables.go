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

import "math/big"

// invEntry is a scaled reciprocal of 10^k: Mantissa has its top bit set
// (within the owning table's working width), and the reciprocal of 10^k is
// Mantissa >> (workingWidth + ExtraShift).
type invEntry struct {
	Mantissa   uint64
	ExtraShift int
}

// decimalTable holds the precomputed constants divPow10 needs for one
// "working width": tables are keyed on backing-integer width, with
// maxLog10 9 (32-bit) or 18 (64-bit), the largest k such that 10^k fits
// the width.
type decimalTable struct {
	working Width
	maxLog10 int
	pow10    []uint64   // pow10[k] = 10^k, k in [0, maxLog10]
	log10    []int      // log10[k] = floor(log10(2^k)), k in [0, working]
	inv      []invEntry // inv[k], k in [0, maxLog10]
}

var table32 = buildDecimalTable(Width32, 9)
var table64 = buildDecimalTable(Width64, 18)

// workingTable picks the 32-bit table for any backing width at or below
// 32 bits (including the 8-bit shapes, whose decimal precision is modest
// enough that the 32-bit reciprocal table has ample headroom) and the
// 64-bit table otherwise.
func workingTable(w Width) *decimalTable {
	if w == Width64 {
		return &table64
	}
	return &table32
}

func buildDecimalTable(w Width, maxLog10 int) decimalTable {
	pow10 := make([]uint64, maxLog10+1)
	p := uint64(1)
	for k := 0; k <= maxLog10; k++ {
		pow10[k] = p
		p *= 10
	}

	log10 := make([]int, int(w)+1)
	ten := big.NewInt(10)
	two := big.NewInt(2)
	for k := 0; k <= int(w); k++ {
		pow2 := new(big.Int).Exp(two, big.NewInt(int64(k)), nil)
		j := 0
		acc := big.NewInt(1)
		for {
			next := new(big.Int).Mul(acc, ten)
			if next.Cmp(pow2) > 0 {
				break
			}
			acc = next
			j++
		}
		log10[k] = j
	}

	inv := make([]invEntry, maxLog10+1)
	for k := 0; k <= maxLog10; k++ {
		inv[k] = computeInvEntry(k, int(w))
	}

	return decimalTable{working: w, maxLog10: maxLog10, pow10: pow10, log10: log10, inv: inv}
}

// computeInvEntry finds the extra_shift e such that
// floor(2^(w+e) / 10^k) has exactly w significant bits (top bit set),
// i.e. a normalized fixed-point reciprocal of 10^k at width w.
func computeInvEntry(k, w int) invEntry {
	divisor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(k)), nil)

	for e := -w; e <= 4*w; e++ {
		shiftAmt := w + e
		if shiftAmt < 0 {
			continue
		}
		numerator := new(big.Int).Lsh(big.NewInt(1), uint(shiftAmt))
		mantissa := new(big.Int).Div(numerator, divisor)
		if mantissa.BitLen() == w {
			return invEntry{Mantissa: mantissa.Uint64(), ExtraShift: e}
		}
	}
	panic("fixed: computeInvEntry found no normalized mantissa")
}
