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
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/types"
)

// Messages
const (
	databasePrintOldHistoryForCleanupOperationFailedMessage = "Print records from `history` table prepared for cleanup failed"
	databaseCleanupOldHistoryOperationFailedMessage         = "Cleanup records from `history` table failed"
	rowsDeletedMessage                                      = "Rows deleted"
)

// PerformCleanupOperation function performs selected cleanup operation
func PerformCleanupOperation(storage Storage, cliFlags *types.CliFlags) error {
	if cliFlags.MaxAge == "" {
		err := &StatusConfiguration{Msg: "max age needs to be specified for cleanup operation"}
		log.Error().Err(err).Msg("Cleanup operation")
		return err
	}

	switch {
	case cliFlags.PrintOldHistoryForCleanup:
		return printOldHistoryForCleanup(storage, cliFlags)
	case cliFlags.PerformHistoryCleanup:
		return performOldHistoryCleanup(storage, cliFlags)
	default:
		return errors.New("Unknown operation selected")
	}
}

// cleanupOperationSpecified returns true if any cleanup related operation has
// been selected on command line
func cleanupOperationSpecified(cliFlags *types.CliFlags) bool {
	return cliFlags.PrintOldHistoryForCleanup || cliFlags.PerformHistoryCleanup
}

// printOldHistoryForCleanup function print all records from `history` table
// that are older than specified max age.
func printOldHistoryForCleanup(storage Storage, cliFlags *types.CliFlags) error {
	err := storage.PrintOldRecordsForCleanup(cliFlags.MaxAge)
	if err != nil {
		log.Error().Err(err).Msg(databasePrintOldHistoryForCleanupOperationFailedMessage)
		return err
	}

	return nil
}

// performOldHistoryCleanup function deletes all records from `history` table
// that are older than specified max age.
func performOldHistoryCleanup(storage Storage, cliFlags *types.CliFlags) error {
	affected, err := storage.CleanupOldRecords(cliFlags.MaxAge)
	if err != nil {
		log.Error().Err(err).Msg(databaseCleanupOldHistoryOperationFailedMessage)
		return err
	}
	log.Info().Int(rowsDeletedMessage, affected).Msg("Cleanup `history` finished")

	return nil
}
