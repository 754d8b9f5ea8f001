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

// Package evaluator contains an evaluator of simple infix arithmetic
// expressions. Supported operators are +, -, *, / and % together with
// parentheses. Operators *, / and % bind tighter than + and -, operators
// with the same precedence are evaluated from left to right.
//
// Expression is evaluated in one left-to-right pass with two stacks, one for
// operands and one for operators (shunting-yard style), so no syntax tree is
// built. Division by zero is not reported as an error, NaN is returned
// instead.
package evaluator

import (
	"errors"
	"strconv"
)

// stacks holds the state of one evaluation
type stacks struct {
	operands  []float64
	operators []byte
}

func (s *stacks) pushOperand(value float64) {
	s.operands = append(s.operands, value)
}

func (s *stacks) popOperand() float64 {
	last := len(s.operands) - 1
	value := s.operands[last]
	s.operands = s.operands[:last]
	return value
}

func (s *stacks) pushOperator(operator byte) {
	s.operators = append(s.operators, operator)
}

func (s *stacks) popOperator() byte {
	last := len(s.operators) - 1
	operator := s.operators[last]
	s.operators = s.operators[:last]
	return operator
}

func (s *stacks) topOperator() byte {
	return s.operators[len(s.operators)-1]
}

// reduce pops one operator and two operands and pushes the result back to
// operand stack
func (s *stacks) reduce(position int) error {
	operator := s.popOperator()
	if operator == leftParenthesis {
		return newError(UnbalancedParentheses, position, "unclosed '('")
	}

	operation, found := operations[operator]
	if !found {
		return newError(UnexpectedCharacter, position, "unsupported operator %q", operator)
	}

	if len(s.operands) < 2 {
		return newError(StackUnderflow, position,
			"operator %q needs two operands, %d available", operator, len(s.operands))
	}

	// the operand pushed first is the left one
	right := s.popOperand()
	left := s.popOperand()
	s.pushOperand(operation(left, right))
	return nil
}

// Evaluate function evaluates the given infix expression. Result is either a
// number (NaN for division by zero) or an error of type *Error.
func Evaluate(expression string) (float64, error) {
	var s stacks
	tokens := 0

	i := 0
	for i < len(expression) {
		c := expression[i]

		switch {
		case isNumberCharacter(c):
			start := i
			for i < len(expression) && isNumberCharacter(expression[i]) {
				i++
			}
			value, err := parseNumber(expression[start:i], start)
			if err != nil {
				return 0, err
			}
			s.pushOperand(value)
			tokens++
			continue

		case c == leftParenthesis:
			s.pushOperator(c)

		case c == rightParenthesis:
			for {
				if len(s.operators) == 0 {
					return 0, newError(UnbalancedParentheses, i, "')' without matching '('")
				}
				if s.topOperator() == leftParenthesis {
					s.popOperator()
					break
				}
				if err := s.reduce(i); err != nil {
					return 0, err
				}
			}

		case isOperator(c):
			for len(s.operators) > 0 && hasPrecedence(c, s.topOperator()) {
				if err := s.reduce(i); err != nil {
					return 0, err
				}
			}
			s.pushOperator(c)

		case c == ' ' || c == '\t':
			// separator only
			i++
			continue

		default:
			return 0, newError(UnexpectedCharacter, i, "character %q is not allowed", c)
		}

		tokens++
		i++
	}

	if tokens == 0 {
		return 0, newError(EmptyInput, 0, "expression is empty")
	}

	for len(s.operators) > 0 {
		if err := s.reduce(len(expression)); err != nil {
			return 0, err
		}
	}

	if len(s.operands) != 1 {
		return 0, newError(StackUnderflow, len(expression),
			"expression reduces to %d values instead of one", len(s.operands))
	}

	return s.operands[0], nil
}

func isNumberCharacter(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.'
}

// parseNumber parses one numeric literal. Literals that overflow float64 are
// rejected as well.
func parseNumber(literal string, position int) (float64, error) {
	value, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newError(MalformedNumber, position, "number %q is out of range", literal)
		}
		return 0, newError(MalformedNumber, position, "invalid number %q", literal)
	}
	return value, nil
}
