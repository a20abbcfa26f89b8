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

const hexDigits = "0123456789abcdef"

// ToHex renders a's raw backing integer as "0x" followed by exactly W/4
// lowercase hex digits, zero-padded, where W is the backing type's width.
func (a Q[T, S]) ToHex() string {
	w := int(backingWidth[T]())
	digits := w / 4

	buf := make([]byte, 2+digits)
	buf[0] = '0'
	buf[1] = 'x'

	u := uint64(a.x) & widthMask(backingWidth[T]())
	for k := 0; k < digits; k++ {
		shift := uint((digits - 1 - k) * 4)
		buf[2+k] = hexDigits[(u>>shift)&0xf]
	}
	return string(buf)
}
