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

// This source file contains the calculator session: the state machine that
// reacts to key presses, feeds the composed text into the evaluator and keeps
// track of display content and history of evaluated expressions.

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/evaluator"
	"github.com/RedHatInsights/ccx-calculator/producer"
	"github.com/RedHatInsights/ccx-calculator/types"
)

// Keys with special meaning, all other keys are appended to input buffer
const (
	KeyEvaluate       = "="
	KeyClear          = "C"
	KeyClearAll       = "AC"
	KeyBackspace      = "←"
	KeyBackspaceAlias = "BS"
)

// ErrorDisplay is displayed when the expression can not be evaluated
const ErrorDisplay = "Error"

// Messages
const (
	expressionAttribute       = "expression"
	resultAttribute           = "result"
	evaluationFailedMessage   = "Expression evaluation failed"
	historyWriteFailedMessage = "Unable to store history record"
	eventNotSentMessage       = "Unable to send history event"
)

// Session represents one calculator session. Session is not safe for
// concurrent use, key presses are expected to be serialized by the front end.
type Session struct {
	input    InputBuffer
	history  *HistoryLog
	display  string
	storage  Storage
	notifier producer.Producer

	now   func() time.Time
	newID func() string
}

// NewSession constructs new calculator session. Storage and notifier are
// optional, nil value means that history records are not persisted or
// published.
func NewSession(history *HistoryLog, storage Storage, notifier producer.Producer) *Session {
	if history == nil {
		history = NewHistoryLog(0)
	}
	return &Session{
		history:  history,
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Press reacts to one key press
func (session *Session) Press(key string) {
	switch key {
	case KeyEvaluate:
		// failures are already reflected by display content
		_, _ = session.Evaluate()
	case KeyClear:
		session.Clear()
	case KeyClearAll:
		session.ClearAll()
	case KeyBackspace, KeyBackspaceAlias:
		session.Backspace()
	default:
		session.input.Append(key)
		session.display = session.input.String()
	}
}

// Evaluate evaluates the composed expression. Empty input is ignored and
// evaluator.EmptyInput error is returned without touching display or
// history. Failed evaluation switches display to ErrorDisplay and discards
// input. Successful evaluation is recorded in history log, storage and
// Kafka, the input buffer is replaced by the result so it can be used in
// next expression.
func (session *Session) Evaluate() (types.HistoryRecord, error) {
	expression := session.input.String()

	value, err := evaluator.Evaluate(expression)
	if evaluator.IsEmptyInput(err) {
		return types.HistoryRecord{}, err
	}

	Evaluations.Inc()

	if err != nil {
		kind, _ := evaluator.KindOf(err)
		EvaluationErrors.WithLabelValues(kind.String()).Inc()
		log.Debug().Err(err).Str(expressionAttribute, expression).Msg(evaluationFailedMessage)

		session.display = ErrorDisplay
		session.input.Reset()
		return types.HistoryRecord{}, err
	}

	result := evaluator.FormatResult(value)
	if result == evaluator.NotANumber {
		NotANumberResults.Inc()
	}

	record := types.HistoryRecord{
		ID:         types.RecordID(session.newID()),
		Expression: expression,
		Result:     result,
		CreatedAt:  session.now().UTC(),
	}

	log.Debug().
		Str(expressionAttribute, expression).
		Str(resultAttribute, result).
		Msg("Expression evaluated")

	session.display = result
	session.history.Append(record)
	session.persist(record)
	session.publish(record)

	if operand, ok := evaluator.FormatOperand(value); ok {
		session.input.Set(operand)
	} else {
		session.input.Reset()
	}

	return record, nil
}

// persist writes history record into storage, if configured
func (session *Session) persist(record types.HistoryRecord) {
	if session.storage == nil {
		return
	}
	if err := session.storage.WriteHistoryRecord(record); err != nil {
		HistoryStorageErrors.Inc()
		log.Error().Err(err).Str(RecordIDMessage, string(record.ID)).Msg(historyWriteFailedMessage)
		return
	}
	HistoryRecordsWritten.Inc()
}

// publish sends history record to Kafka, if configured
func (session *Session) publish(record types.HistoryRecord) {
	if session.notifier == nil {
		return
	}

	message, err := types.HistoryRecordToMessage(record)
	if err != nil {
		HistoryEventsNotSent.Inc()
		log.Error().Err(err).Msg(eventNotSentMessage)
		return
	}

	_, _, err = session.notifier.ProduceMessage(string(record.ID), message)
	if err != nil {
		HistoryEventsNotSent.Inc()
		log.Error().Err(err).Str(RecordIDMessage, string(record.ID)).Msg(eventNotSentMessage)
		return
	}
	HistoryEventsSent.Inc()
}

// Clear resets input buffer and display, history is kept
func (session *Session) Clear() {
	session.input.Reset()
	session.display = ""
}

// ClearAll resets input buffer, display and history log. Persistent history
// is truncated too when storage is configured.
func (session *Session) ClearAll() {
	session.Clear()
	session.history.Clear()

	if session.storage == nil {
		return
	}
	deleted, err := session.storage.ClearHistory()
	if err != nil {
		HistoryStorageErrors.Inc()
		log.Error().Err(err).Msg("Unable to clear history table")
		return
	}
	log.Debug().Int(rowsDeletedMessage, deleted).Msg("History table cleared")
}

// Backspace removes last character from input buffer. Display is left
// untouched when there is nothing to delete.
func (session *Session) Backspace() {
	if session.input.Empty() {
		return
	}
	session.input.DeleteLast()
	session.display = session.input.String()
}

// LoadHistory fills history log by records read from given storage
func (session *Session) LoadHistory(storage Storage) error {
	records, err := storage.ReadHistory(session.history.Limit())
	if err != nil {
		HistoryStorageErrors.Inc()
		log.Error().Err(err).Msg("Unable to read history records")
		return err
	}

	for _, record := range records {
		session.history.Append(record)
	}
	log.Debug().Int("records", len(records)).Msg("History loaded")
	return nil
}

// Display returns the text that should be displayed to user
func (session *Session) Display() string {
	return session.display
}

// Input returns the composed text
func (session *Session) Input() string {
	return session.input.String()
}

// History returns history log of this session
func (session *Session) History() *HistoryLog {
	return session.history
}
