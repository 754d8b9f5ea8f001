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
	"github.com/RedHatInsights/ccx-calculator/types"
)

func historyRecord(expression, result string) types.HistoryRecord {
	return types.HistoryRecord{
		ID:         types.RecordID(expression),
		Expression: expression,
		Result:     result,
	}
}

func TestHistoryLogUnbounded(t *testing.T) {
	history := calculator.NewHistoryLog(0)

	for i := 0; i < 100; i++ {
		history.Append(historyRecord("1+1", "2"))
	}

	assert.Equal(t, 100, history.Len())
	assert.Equal(t, 0, history.Limit())
}

func TestHistoryLogNegativeLimit(t *testing.T) {
	history := calculator.NewHistoryLog(-5)
	assert.Equal(t, 0, history.Limit())
}

func TestHistoryLogDropsOldestRecords(t *testing.T) {
	history := calculator.NewHistoryLog(2)

	history.Append(historyRecord("1+1", "2"))
	history.Append(historyRecord("2+2", "4"))
	history.Append(historyRecord("3+3", "6"))

	assert.Equal(t, 2, history.Len())
	assert.Equal(t, []string{"2+2 = 4", "3+3 = 6"}, history.Lines())
}

func TestHistoryLogRecordsAreCopied(t *testing.T) {
	history := calculator.NewHistoryLog(0)
	history.Append(historyRecord("1+1", "2"))

	records := history.Records()
	records[0].Result = "3"

	assert.Equal(t, []string{"1+1 = 2"}, history.Lines())
}

func TestHistoryLogClear(t *testing.T) {
	history := calculator.NewHistoryLog(10)
	history.Append(historyRecord("1+1", "2"))
	records := history.Records()

	history.Clear()

	assert.Equal(t, 0, history.Len())
	assert.Empty(t, history.Lines())
	assert.Len(t, records, 1)
}
