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

import "math"

// Operator characters
const (
	addOperator      = '+'
	subtractOperator = '-'
	multiplyOperator = '*'
	divideOperator   = '/'
	moduloOperator   = '%'
	leftParenthesis  = '('
	rightParenthesis = ')'
)

type binaryOperation func(left, right float64) float64

// operations is the closed set of binary operators understood by evaluator
var operations = map[byte]binaryOperation{
	addOperator: func(left, right float64) float64 {
		return left + right
	},
	subtractOperator: func(left, right float64) float64 {
		return left - right
	},
	multiplyOperator: func(left, right float64) float64 {
		return left * right
	},
	divideOperator: func(left, right float64) float64 {
		if right == 0 {
			return math.NaN()
		}
		return left / right
	},
	// truncated remainder, the result has the sign of left operand
	moduloOperator: math.Mod,
}

func isOperator(c byte) bool {
	_, found := operations[c]
	return found
}

func isParenthesis(c byte) bool {
	return c == leftParenthesis || c == rightParenthesis
}

func isMultiplicative(c byte) bool {
	return c == multiplyOperator || c == divideOperator || c == moduloOperator
}

func isAdditive(c byte) bool {
	return c == addOperator || c == subtractOperator
}

// hasPrecedence returns true when operator on top of the stack needs to be
// applied before the incoming operator is pushed. Operators of the same tier
// are therefore evaluated from left to right.
func hasPrecedence(incoming, top byte) bool {
	if isParenthesis(top) {
		return false
	}
	return !isMultiplicative(incoming) || !isAdditive(top)
}
