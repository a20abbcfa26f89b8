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

// Sign discriminates the two ways an OverflowError can occur: the true
// mathematical result was too large in magnitude to fit, in either the
// positive or the negative direction.
type Sign int

const (
	// Positive marks an overflow where the true result exceeds the shape's
	// maximum representable value.
	Positive Sign = 1
	// Negative marks an overflow where the true result is below the
	// shape's minimum representable value.
	Negative Sign = -1
)

// OverflowError indicates that a result's integer part does not fit in the
// declared I bits, including construction from an out-of-range integer or
// float, any +/- that wraps, and any shape conversion that overflows. Op
// names the operation that produced the error, for diagnostics.
type OverflowError struct {
	Op   string
	Sign Sign
}

func (e OverflowError) Error() string {
	if e.Sign == Negative {
		return e.Op + ": negative overflow"
	}
	return e.Op + ": overflow"
}

// Is reports whether target is one of the package sentinels ErrOverflow or
// ErrNegOverflow, matching on Sign but ignoring Op, so callers can write
// errors.Is(err, fixed.ErrOverflow) regardless of which operation failed.
func (e OverflowError) Is(target error) bool {
	o, ok := target.(OverflowError)
	if !ok {
		return false
	}
	return o.Sign == e.Sign
}

// DomainError indicates an input outside the mathematical domain of an
// operation: sqrt of a negative value, reciprocal of zero, or a decimal
// string that fails to parse.
type DomainError struct {
	Op  string
	Msg string
}

func (e DomainError) Error() string {
	if e.Msg == "" {
		return e.Op + ": input out of domain"
	}
	return e.Op + ": " + e.Msg
}

// Is reports whether target is the ErrDomain sentinel, ignoring Op and Msg.
func (e DomainError) Is(target error) bool {
	_, ok := target.(DomainError)
	return ok
}

// Sentinels for use with errors.Is. The library itself never retries,
// never logs, and never recovers from these conditions; it always surfaces
// them to the caller.
var (
	ErrOverflow    error = OverflowError{Op: "fixed", Sign: Positive}
	ErrNegOverflow error = OverflowError{Op: "fixed", Sign: Negative}
	ErrDomain      error = DomainError{Op: "fixed"}
)

func overflowErr(op string, sign Sign) error {
	return OverflowError{Op: op, Sign: sign}
}

func domainErr(op, msg string) error {
	return DomainError{Op: op, Msg: msg}
}
