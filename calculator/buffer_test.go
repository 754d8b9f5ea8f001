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

package calculator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RedHatInsights/ccx-calculator/calculator"
)

func TestInputBufferAppend(t *testing.T) {
	var buffer calculator.InputBuffer
	assert.True(t, buffer.Empty())

	buffer.Append("1")
	buffer.Append("+")
	buffer.Append("23")

	assert.False(t, buffer.Empty())
	assert.Equal(t, "1+23", buffer.String())
}

func TestInputBufferDeleteLast(t *testing.T) {
	var buffer calculator.InputBuffer
	buffer.Set("12←")

	// multibyte character is removed as a whole
	buffer.DeleteLast()
	assert.Equal(t, "12", buffer.String())

	buffer.DeleteLast()
	buffer.DeleteLast()
	assert.True(t, buffer.Empty())

	// no-op on empty buffer
	buffer.DeleteLast()
	assert.Equal(t, "", buffer.String())
}

func TestInputBufferSetAndReset(t *testing.T) {
	var buffer calculator.InputBuffer
	buffer.Append("1+2")

	buffer.Set("3")
	assert.Equal(t, "3", buffer.String())

	buffer.Reset()
	assert.True(t, buffer.Empty())
}
