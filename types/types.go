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

package types

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/types

import (
	"encoding/json"
	"time"
)

// DBDriver type for db driver enum
type DBDriver int

const (
	// DBDriverSQLite3 shows that db driver is sqlite
	DBDriverSQLite3 DBDriver = iota
	// DBDriverPostgres shows that db driver is postgres
	DBDriverPostgres
	// DBDriverGeneral general sql(used for mock now)
	DBDriverGeneral
)

// RecordID represents ID of one history record (in UUID format).
type RecordID string

// HistoryRecord represents one successfully evaluated expression as
// displayed in history panel and stored in `history` table.
type HistoryRecord struct {
	ID         RecordID  `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

// String returns the record in the form displayed in history panel
func (record HistoryRecord) String() string {
	return record.Expression + " = " + record.Result
}

// ProducerMessage is a message to be sent to Kafka broker
type ProducerMessage []byte

// HistoryRecordToMessage serializes history record into message that can be
// sent by any producer
func HistoryRecordToMessage(record HistoryRecord) (ProducerMessage, error) {
	bytes, err := json.Marshal(record)
	if err != nil {
		return nil, err
	}
	return ProducerMessage(bytes), nil
}

// CliFlags represents structure holding all command line arguments/flags.
type CliFlags struct {
	Expression                string
	PrintHistory              bool
	PrintOldHistoryForCleanup bool
	PerformHistoryCleanup     bool
	ShowVersion               bool
	ShowAuthors               bool
	ShowConfiguration         bool
	Verbose                   bool
	MaxAge                    string
}
