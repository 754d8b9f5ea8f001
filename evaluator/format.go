/*
Copyright © 2026 Red Hat, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package evaluator

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Literals used for non-finite results
const (
	NotANumber        = "NaN"
	PositiveInfinity  = "Infinity"
	NegativeInfinity  = "-Infinity"
	fractionalDigits  = 4
	integerFormatting = 'f'
)

// FormatResult returns textual representation of evaluated value. Integral
// values are displayed without decimal point, all other values with exactly
// four fractional digits (rounded half away from zero). Negative values that
// round to zero are displayed as "-0.0000".
func FormatResult(value float64) string {
	switch {
	case math.IsNaN(value):
		return NotANumber
	case math.IsInf(value, 1):
		return PositiveInfinity
	case math.IsInf(value, -1):
		return NegativeInfinity
	case value == 0:
		// covers negative zero too
		return "0"
	case value == math.Trunc(value):
		return strconv.FormatFloat(value, integerFormatting, 0, 64)
	default:
		formatted := decimal.NewFromFloat(value).StringFixed(fractionalDigits)
		// sign is kept for negative values rounded to zero
		if value < 0 && !strings.HasPrefix(formatted, "-") {
			formatted = "-" + formatted
		}
		return formatted
	}
}

// FormatOperand returns the shortest textual representation of value that
// can be fed back into Evaluate. Second return value is false for values
// that can not be represented by an expression (NaN, infinities and
// negative numbers).
func FormatOperand(value float64) (string, bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return "", false
	}
	if value == 0 {
		return "0", true
	}
	return strconv.FormatFloat(value, 'f', -1, 64), true
}
