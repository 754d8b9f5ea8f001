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
	"errors"
	"fmt"
)

// ErrorKind classifies the reason why an expression could not be evaluated
type ErrorKind int

const (
	// EmptyInput means that the expression contains no tokens at all
	EmptyInput ErrorKind = iota
	// MalformedNumber means that a numeric literal can not be parsed, for
	// example "1..2"
	MalformedNumber
	// UnbalancedParentheses means that ")" has no matching "(" or that "("
	// is left unclosed
	UnbalancedParentheses
	// StackUnderflow means that an operator has fewer than two operands or
	// that the expression does not reduce to exactly one value
	StackUnderflow
	// UnexpectedCharacter means that the expression contains a character
	// outside of the supported alphabet
	UnexpectedCharacter
)

// String returns textual representation of error kind. The same value is
// used as a label for evaluation error metrics.
func (kind ErrorKind) String() string {
	switch kind {
	case EmptyInput:
		return "empty_input"
	case MalformedNumber:
		return "malformed_number"
	case UnbalancedParentheses:
		return "unbalanced_parentheses"
	case StackUnderflow:
		return "stack_underflow"
	case UnexpectedCharacter:
		return "unexpected_character"
	default:
		return "unknown"
	}
}

// Error is returned by Evaluate for any expression that can not be
// evaluated. Position is a byte offset into the expression.
type Error struct {
	Kind     ErrorKind
	Position int
	Detail   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d: %s", e.Kind, e.Position, e.Detail)
}

func newError(kind ErrorKind, position int, format string, args ...interface{}) *Error {
	return &Error{
		Kind:     kind,
		Position: position,
		Detail:   fmt.Sprintf(format, args...),
	}
}

// KindOf returns kind of evaluation error, if err is (or wraps) an
// evaluation error
func KindOf(err error) (ErrorKind, bool) {
	var evaluationError *Error
	if errors.As(err, &evaluationError) {
		return evaluationError.Kind, true
	}
	return 0, false
}

// IsEmptyInput checks if err reports an empty expression
func IsEmptyInput(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == EmptyInput
}
