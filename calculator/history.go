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
	"github.com/RedHatInsights/ccx-calculator/types"
)

// HistoryLog holds records about successfully evaluated expressions. When
// the number of records exceeds the limit, the oldest ones are dropped.
type HistoryLog struct {
	limit   int
	records []types.HistoryRecord
}

// NewHistoryLog constructs new history log. Zero or negative limit means
// that the log is not bounded.
func NewHistoryLog(limit int) *HistoryLog {
	if limit < 0 {
		limit = 0
	}
	return &HistoryLog{
		limit:   limit,
		records: make([]types.HistoryRecord, 0),
	}
}

// Append adds new record at the end of history log
func (history *HistoryLog) Append(record types.HistoryRecord) {
	history.records = append(history.records, record)
	if history.limit > 0 && len(history.records) > history.limit {
		dropped := len(history.records) - history.limit
		history.records = append(history.records[:0:0], history.records[dropped:]...)
	}
}

// Records returns copy of all records, oldest first
func (history *HistoryLog) Records() []types.HistoryRecord {
	records := make([]types.HistoryRecord, len(history.records))
	copy(records, history.records)
	return records
}

// Lines returns all records in the form displayed in history panel
func (history *HistoryLog) Lines() []string {
	lines := make([]string, 0, len(history.records))
	for _, record := range history.records {
		lines = append(lines, record.String())
	}
	return lines
}

// Len returns number of records
func (history *HistoryLog) Len() int {
	return len(history.records)
}

// Limit returns maximum number of records kept in log
func (history *HistoryLog) Limit() int {
	return history.limit
}

// Clear removes all records
func (history *HistoryLog) Clear() {
	history.records = history.records[:0]
}
