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

package calculator

import (
	"strings"
	"unicode/utf8"
)

// InputBuffer accumulates the text composed by key presses. The buffer is
// plain text, no validation is performed before evaluation.
type InputBuffer struct {
	builder strings.Builder
}

// Append adds given text at the end of buffer
func (buffer *InputBuffer) Append(text string) {
	buffer.builder.WriteString(text)
}

// DeleteLast removes the last character from buffer. Nothing happens when
// the buffer is empty.
func (buffer *InputBuffer) DeleteLast() {
	content := buffer.builder.String()
	if content == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(content)
	buffer.Set(content[:len(content)-size])
}

// Reset empties the buffer
func (buffer *InputBuffer) Reset() {
	buffer.builder.Reset()
}

// Set replaces the whole buffer content
func (buffer *InputBuffer) Set(text string) {
	buffer.builder.Reset()
	buffer.builder.WriteString(text)
}

// String returns the buffer content
func (buffer *InputBuffer) String() string {
	return buffer.builder.String()
}

// Empty returns true when nothing has been composed yet
func (buffer *InputBuffer) Empty() bool {
	return buffer.builder.Len() == 0
}
