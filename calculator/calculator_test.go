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
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RedHatInsights/ccx-calculator/conf"
	"github.com/RedHatInsights/ccx-calculator/types"
)

// captureOutput redirects output of non-interactive operations into buffer
func captureOutput(t *testing.T) *bytes.Buffer {
	buffer := new(bytes.Buffer)
	original := stdout
	stdout = buffer
	t.Cleanup(func() {
		stdout = original
	})
	return buffer
}

// noFrontend fails the test when interactive front end is started
func noFrontend(t *testing.T) Frontend {
	return func(session *Session) error {
		t.Error("front end should not be started")
		return nil
	}
}

func TestRunEvaluateExpression(t *testing.T) {
	output := captureOutput(t)

	config := conf.ConfigStruct{}
	exitCode := Run(&config, &types.CliFlags{Expression: "(1+2)*3/4"}, noFrontend(t))

	assert.Equal(t, ExitStatusOK, exitCode)
	assert.Equal(t, "2.2500\n", output.String())
}

func TestRunEvaluateExpressionDivisionByZero(t *testing.T) {
	output := captureOutput(t)

	config := conf.ConfigStruct{}
	exitCode := Run(&config, &types.CliFlags{Expression: "10%0+1"}, noFrontend(t))

	assert.Equal(t, ExitStatusOK, exitCode)
	assert.Equal(t, "NaN\n", output.String())
}

func TestRunEvaluateMalformedExpression(t *testing.T) {
	output := captureOutput(t)

	config := conf.ConfigStruct{}
	exitCode := Run(&config, &types.CliFlags{Expression: "(1+2"}, noFrontend(t))

	assert.Equal(t, ExitStatusEvaluationError, exitCode)
	assert.Equal(t, ErrorDisplay+"\n", output.String())
}

func TestRunFrontend(t *testing.T) {
	var started bool

	config := conf.ConfigStruct{
		Calculator: conf.CalculatorConfiguration{HistorySize: 3},
	}
	exitCode := Run(&config, &types.CliFlags{}, func(session *Session) error {
		started = true
		assert.Equal(t, 3, session.History().Limit())
		session.Press("7")
		session.Press(KeyEvaluate)
		assert.Equal(t, "7", session.Display())
		return nil
	})

	assert.True(t, started)
	assert.Equal(t, ExitStatusOK, exitCode)
}

func TestRunFrontendFailure(t *testing.T) {
	config := conf.ConfigStruct{}
	exitCode := Run(&config, &types.CliFlags{}, func(session *Session) error {
		return errors.New("terminal is not available")
	})

	assert.Equal(t, ExitStatusError, exitCode)
}

func TestRunStorageSetupFailure(t *testing.T) {
	config := conf.ConfigStruct{
		Storage:    conf.StorageConfiguration{Driver: "mysql"},
		Calculator: conf.CalculatorConfiguration{PersistHistory: true},
	}
	exitCode := Run(&config, &types.CliFlags{Expression: "1+1"}, noFrontend(t))

	assert.Equal(t, ExitStatusStorageError, exitCode)
}

func TestRunPrintHistoryStorageFailure(t *testing.T) {
	config := conf.ConfigStruct{
		Storage: conf.StorageConfiguration{Driver: "mysql"},
	}
	exitCode := Run(&config, &types.CliFlags{PrintHistory: true}, noFrontend(t))

	assert.Equal(t, ExitStatusStorageError, exitCode)
}

func TestRunCleanupMaxAgeFromConfiguration(t *testing.T) {
	config := conf.ConfigStruct{
		Storage: conf.StorageConfiguration{Driver: "mysql"},
		Cleaner: conf.CleanerConfiguration{MaxAge: "30 days"},
	}
	cliFlags := types.CliFlags{PerformHistoryCleanup: true}
	exitCode := Run(&config, &cliFlags, noFrontend(t))

	assert.Equal(t, ExitStatusStorageError, exitCode)
	assert.Equal(t, "30 days", cliFlags.MaxAge)
}

func TestRunKafkaBrokerFailure(t *testing.T) {
	config := conf.ConfigStruct{
		Kafka: conf.KafkaConfiguration{
			Enabled:   true,
			Addresses: "",
			Topic:     "ccx.calculator.history",
			Timeout:   time.Second,
		},
	}
	exitCode := Run(&config, &types.CliFlags{Expression: "1+1"}, noFrontend(t))

	assert.Equal(t, ExitStatusKafkaBrokerError, exitCode)
}

func TestRunPushMetrics(t *testing.T) {
	var pushes int

	testServer := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pushes++
			w.WriteHeader(http.StatusOK)
		}),
	)
	defer testServer.Close()

	captureOutput(t)

	config := conf.ConfigStruct{
		Metrics: conf.MetricsConfiguration{
			Job:        "ccx_calculator",
			GatewayURL: testServer.URL,
		},
	}
	exitCode := Run(&config, &types.CliFlags{Expression: "2*2"}, noFrontend(t))

	assert.Equal(t, ExitStatusOK, exitCode)
	assert.Equal(t, 1, pushes)
}

func TestRunPushMetricsFailure(t *testing.T) {
	testServer := httptest.NewServer(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}),
	)
	defer testServer.Close()

	captureOutput(t)

	config := conf.ConfigStruct{
		Metrics: conf.MetricsConfiguration{
			Job:        "ccx_calculator",
			GatewayURL: testServer.URL,
			Retries:    1,
			RetryAfter: time.Millisecond,
		},
	}
	exitCode := Run(&config, &types.CliFlags{Expression: "2*2"}, noFrontend(t))

	assert.Equal(t, ExitStatusMetricsError, exitCode)
}
