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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RedHatInsights/ccx-calculator/calculator"
	"github.com/RedHatInsights/ccx-calculator/tests/mocks"
	"github.com/RedHatInsights/ccx-calculator/types"
)

// TestPrintOldHistoryForCleanup checks that print operation is delegated to
// storage
func TestPrintOldHistoryForCleanup(t *testing.T) {
	storage := &mocks.Storage{}
	storage.On("PrintOldRecordsForCleanup", "1 day").Return(nil)

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		PrintOldHistoryForCleanup: true,
		MaxAge:                    "1 day",
	})

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

// TestPrintOldHistoryForCleanupOnError checks that storage error is
// propagated
func TestPrintOldHistoryForCleanupOnError(t *testing.T) {
	storage := &mocks.Storage{}
	storage.On("PrintOldRecordsForCleanup", "1 day").Return(errors.New("mocked error"))

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		PrintOldHistoryForCleanup: true,
		MaxAge:                    "1 day",
	})

	assert.EqualError(t, err, "mocked error")
	storage.AssertExpectations(t)
}

// TestPerformHistoryCleanup checks that cleanup operation is delegated to
// storage
func TestPerformHistoryCleanup(t *testing.T) {
	storage := &mocks.Storage{}
	storage.On("CleanupOldRecords", "90 days").Return(10, nil)

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		PerformHistoryCleanup: true,
		MaxAge:                "90 days",
	})

	assert.NoError(t, err)
	storage.AssertExpectations(t)
}

// TestPerformHistoryCleanupOnError checks that storage error is propagated
func TestPerformHistoryCleanupOnError(t *testing.T) {
	storage := &mocks.Storage{}
	storage.On("CleanupOldRecords", "90 days").Return(0, errors.New("mocked error"))

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		PerformHistoryCleanup: true,
		MaxAge:                "90 days",
	})

	assert.EqualError(t, err, "mocked error")
	storage.AssertExpectations(t)
}

// TestPerformCleanupOperationNoMaxAge checks that max age is required
func TestPerformCleanupOperationNoMaxAge(t *testing.T) {
	storage := &mocks.Storage{}

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		PerformHistoryCleanup: true,
	})

	var configurationError *calculator.StatusConfiguration
	assert.ErrorAs(t, err, &configurationError)
	storage.AssertNotCalled(t, "CleanupOldRecords", "")
}

// TestPerformCleanupOperationUnknown checks that operation needs to be
// selected
func TestPerformCleanupOperationUnknown(t *testing.T) {
	storage := &mocks.Storage{}

	err := calculator.PerformCleanupOperation(storage, &types.CliFlags{
		MaxAge: "1 day",
	})

	assert.EqualError(t, err, "Unknown operation selected")
}
