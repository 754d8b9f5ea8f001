/*
Copyright © 2021, 2022, 2026 Red Hat, Inc.

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

// Entry point to the calculator.
//
// The calculator evaluates arithmetic expressions consisting of non-negative
// decimal numbers, operators + - * / % and parentheses. It can be used
// interactively via terminal user interface with display, key legend and
// history panel, or non-interactively by passing the expression on command
// line.
//
// History of evaluated expressions can be stored in SQLite or PostgreSQL
// database and published as events to the configured Kafka topic. Metrics
// about evaluations can be pushed into Prometheus push gateway.
package main

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/

import (
	"io"
	"os"

	"github.com/RedHatInsights/insights-operator-utils/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/calculator"
	"github.com/RedHatInsights/ccx-calculator/conf"
	"github.com/RedHatInsights/ccx-calculator/tui"
)

// Configuration-related constants
const (
	loadConfigurationMessage = "Load configuration"
)

func main() {
	cliFlags := setupCliFlags()
	checkArgs(&cliFlags)

	// config has exactly the same structure as *.toml file
	config, err := conf.LoadConfiguration(conf.ConfigFileEnvVariableName, conf.DefaultConfigFileName)
	if err != nil {
		log.Err(err).Msg(loadConfigurationMessage)
		os.Exit(calculator.ExitStatusConfiguration)
	}

	err = logger.InitZerolog(
		conf.GetLoggingConfiguration(&config),
		conf.GetCloudWatchConfiguration(&config),
		conf.GetSentryLoggingConfiguration(&config),
		conf.GetKafkaZerologConfiguration(&config),
	)
	if err != nil {
		log.Err(err).Msg(loadConfigurationMessage)
		os.Exit(calculator.ExitStatusConfiguration)
	}

	// configuration is loaded, so it would be possible to display it if
	// asked by user
	if cliFlags.ShowConfiguration {
		showConfiguration(&config)
		os.Exit(calculator.ExitStatusOK)
	}

	loggingConfig := conf.GetLoggingConfiguration(&config)
	if loggingConfig.Debug {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// set log level
	logLevel := convertLogLevel(loggingConfig.LogLevel)
	zerolog.SetGlobalLevel(logLevel)
	log.Info().
		Str("configured", loggingConfig.LogLevel).
		Int("internal", int(logLevel)).
		Msg("Log level")

	if cliFlags.Verbose {
		showConfiguration(&config)
	}

	// log lines would corrupt terminal UI
	if interactiveMode(&cliFlags) && !loggingConfig.Debug {
		log.Logger = zerolog.New(io.Discard)
	}

	os.Exit(calculator.Run(&config, &cliFlags, tui.Run))
}
