/*
Copyright © 2022, 2026 Red Hat, Inc.

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

package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RedHatInsights/ccx-calculator/utils"
)

func TestSetHTTPPrefix(t *testing.T) {
	type testCase struct {
		input    string
		expected string
	}

	testCases := []testCase{
		{"localhost:9091", "http://localhost:9091"},
		{":9091", "http://:9091"},
		{"http://localhost:9091", "http://localhost:9091"},
		{"https://pushgateway.example.com", "https://pushgateway.example.com"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, utils.SetHTTPPrefix(tc.input))
	}
}
