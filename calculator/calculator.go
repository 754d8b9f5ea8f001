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

// Package calculator contains the calculator session (input buffer, history
// log and display handling), persistent history storage, metrics and the
// entry point that wires all those parts together.
package calculator

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/calculator

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/conf"
	"github.com/RedHatInsights/ccx-calculator/producer"
	"github.com/RedHatInsights/ccx-calculator/producer/disabled"
	"github.com/RedHatInsights/ccx-calculator/producer/kafka"
	"github.com/RedHatInsights/ccx-calculator/types"
)

// Exit codes
const (
	// ExitStatusOK means that the tool finished with success
	ExitStatusOK = iota
	// ExitStatusConfiguration is an error code related to program configuration
	ExitStatusConfiguration
	// ExitStatusError is a general error code
	ExitStatusError
	// ExitStatusStorageError is returned in case of any storage-related error
	ExitStatusStorageError
	// ExitStatusKafkaBrokerError is for kafka broker connection establishment errors
	ExitStatusKafkaBrokerError
	// ExitStatusCleanerError is raised when clean operation is not successful
	ExitStatusCleanerError
	// ExitStatusMetricsError is raised when prometheus metrics cannot be pushed
	ExitStatusMetricsError
	// ExitStatusEvaluationError is raised when expression given on command
	// line can not be evaluated
	ExitStatusEvaluationError
)

// Messages
const (
	separator                = "------------------------------------------------------------"
	operationFailedMessage   = "Operation failed"
	metricsPushFailedMessage = "Couldn't push prometheus metrics"
)

// Frontend represents interactive user interface that drives the session
// until user quits
type Frontend func(session *Session) error

// stdout is used to print results of non-interactive operations
var stdout io.Writer = os.Stdout

// Run function is entry point to the calculator. Exit code is returned.
func Run(config *conf.ConfigStruct, cliFlags *types.CliFlags, frontend Frontend) int {
	metricsConfig := conf.GetMetricsConfiguration(config)
	if metricsConfig.Namespace != "" {
		AddMetricsWithNamespaceAndSubsystem(metricsConfig.Namespace, metricsConfig.Subsystem)
	}

	// override default value by one read from configuration file
	if cliFlags.MaxAge == "" {
		cliFlags.MaxAge = conf.GetCleanerConfiguration(config).MaxAge
	}

	if cleanupOperationSpecified(cliFlags) || cliFlags.PrintHistory {
		return runStorageOperation(config, cliFlags)
	}

	calculatorConfig := conf.GetCalculatorConfiguration(config)

	var storage Storage
	if calculatorConfig.PersistHistory || calculatorConfig.LoadHistory {
		dbStorage, err := setupStorage(config)
		if err != nil {
			return ExitStatusStorageError
		}
		storage = dbStorage
	}

	notifier, err := setupProducer(config)
	if err != nil {
		closeStorage(storage)
		return ExitStatusKafkaBrokerError
	}

	// history records are read from storage, but not written into it
	writer := storage
	if !calculatorConfig.PersistHistory {
		writer = nil
	}

	session := NewSession(NewHistoryLog(calculatorConfig.HistorySize), writer, notifier)

	if calculatorConfig.LoadHistory && storage != nil {
		if err := session.LoadHistory(storage); err != nil {
			closeCalculator(storage, notifier)
			return ExitStatusStorageError
		}
	}

	exitStatus := ExitStatusOK
	if cliFlags.Expression != "" {
		exitStatus = evaluateExpression(session, cliFlags.Expression)
	} else if frontend != nil {
		log.Info().Msg("Starting interactive front end")
		if err := frontend(session); err != nil {
			log.Error().Err(err).Msg(operationFailedMessage)
			exitStatus = ExitStatusError
		}
	}

	if closeCalculator(storage, notifier) != nil && exitStatus == ExitStatusOK {
		exitStatus = ExitStatusError
	}

	if metricsConfig.GatewayURL != "" {
		log.Info().Msg("Pushing metrics to the configured prometheus gateway")
		if err := PushCollectedMetrics(&metricsConfig); err != nil && exitStatus == ExitStatusOK {
			exitStatus = ExitStatusMetricsError
		}
	}

	return exitStatus
}

// evaluateExpression evaluates expression given on command line and prints
// the result
func evaluateExpression(session *Session, expression string) int {
	session.input.Set(expression)

	record, err := session.Evaluate()
	if err != nil {
		log.Error().Err(err).Str(expressionAttribute, expression).Msg(evaluationFailedMessage)
		fmt.Fprintln(stdout, ErrorDisplay)
		return ExitStatusEvaluationError
	}

	fmt.Fprintln(stdout, record.Result)
	return ExitStatusOK
}

// runStorageOperation performs operations that work with history storage
// only: printing history and cleanup
func runStorageOperation(config *conf.ConfigStruct, cliFlags *types.CliFlags) int {
	storage, err := setupStorage(config)
	if err != nil {
		return ExitStatusStorageError
	}
	defer closeStorage(storage)

	if cliFlags.PrintHistory {
		return printHistory(storage)
	}

	if err := PerformCleanupOperation(storage, cliFlags); err != nil {
		return ExitStatusCleanerError
	}
	return ExitStatusOK
}

// printHistory prints all records stored in history table
func printHistory(storage Storage) int {
	records, err := storage.ReadHistory(0)
	if err != nil {
		HistoryStorageErrors.Inc()
		log.Error().Err(err).Msg(operationFailedMessage)
		return ExitStatusStorageError
	}

	for _, record := range records {
		fmt.Fprintln(stdout, record.String())
	}
	return ExitStatusOK
}

// setupStorage connects to storage and makes sure the history table exists
func setupStorage(config *conf.ConfigStruct) (*DBStorage, error) {
	storageConfiguration := conf.GetStorageConfiguration(config)
	storage, err := NewStorage(&storageConfiguration)
	if err != nil {
		StorageSetupErrors.Inc()
		log.Err(err).Msg(operationFailedMessage)
		return nil, err
	}

	if err := storage.Init(); err != nil {
		StorageSetupErrors.Inc()
		log.Err(err).Msg(operationFailedMessage)
		closeStorage(storage)
		return nil, err
	}

	return storage, nil
}

// setupProducer prepares producer used to publish history events. Disabled
// producer is returned when Kafka is not enabled in configuration.
func setupProducer(config *conf.ConfigStruct) (producer.Producer, error) {
	if !conf.GetKafkaBrokerConfiguration(config).Enabled {
		log.Info().Msg("Broker config for Kafka is disabled")
		return &disabled.Producer{}, nil
	}

	kafkaProducer, err := kafka.New(config)
	if err != nil {
		ProducerSetupErrors.Inc()
		log.Error().Err(err).Msg("Couldn't initialize Kafka producer with the provided config.")
		return nil, &KafkaBrokerError{}
	}
	return kafkaProducer, nil
}

// closeStorage closes storage connection, if any
func closeStorage(storage Storage) {
	if storage == nil {
		return
	}
	if err := storage.Close(); err != nil {
		log.Err(err).Msg(operationFailedMessage)
	}
}

// closeCalculator releases storage and producer
func closeCalculator(storage Storage, notifier producer.Producer) error {
	log.Info().Msg(separator)
	closeStorage(storage)

	if notifier == nil {
		return nil
	}
	err := notifier.Close()
	if err != nil {
		log.Err(err).Msg(operationFailedMessage)
	}
	log.Info().Msg(separator)
	return err
}
