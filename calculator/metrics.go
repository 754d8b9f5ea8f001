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

// File metrics contains all metrics that needs to be exposed to Prometheus and
// indirectly to Grafana.

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/calculator

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/conf"
	"github.com/RedHatInsights/ccx-calculator/utils"
)

// Metrics names
const (
	EvaluationsName           = "evaluations"
	EvaluationErrorsName      = "evaluation_errors"
	NotANumberResultsName     = "not_a_number_results"
	HistoryRecordsWrittenName = "history_records_written"
	HistoryStorageErrorsName  = "history_storage_errors"
	HistoryEventsSentName     = "history_events_sent"
	HistoryEventsNotSentName  = "history_events_not_sent"
	StorageSetupErrorsName    = "storage_setup_errors"
	ProducerSetupErrorsName   = "producer_setup_errors"
)

// Metrics helps
const (
	EvaluationsHelp           = "The total number of evaluated expressions"
	EvaluationErrorsHelp      = "The total number of expressions that could not be evaluated"
	NotANumberResultsHelp     = "The total number of evaluations that produced NaN (division by zero)"
	HistoryRecordsWrittenHelp = "The total number of history records written into storage"
	HistoryStorageErrorsHelp  = "The total number of errors when writing or reading history records"
	HistoryEventsSentHelp     = "The total number of history events sent to Kafka"
	HistoryEventsNotSentHelp  = "The total number of history events not sent because of a Kafka producer error"
	StorageSetupErrorsHelp    = "The total number of errors when setting up storage connection"
	ProducerSetupErrorsHelp   = "The total number of errors when setting up Kafka producer"
)

// kindLabel is a label used to distinguish evaluation errors
const kindLabel = "kind"

// PushGatewayClient is a simple wrapper over http.Client so that prometheus
// can do HTTP requests with the given authentication header
type PushGatewayClient struct {
	AuthToken string

	httpClient http.Client
}

// Do is a simple wrapper over http.Client.Do method that includes
// the authentication header configured in the PushGatewayClient instance
func (pgc *PushGatewayClient) Do(request *http.Request) (*http.Response, error) {
	if pgc.AuthToken != "" {
		log.Debug().Msg("Adding authorization header to HTTP request")
		request.Header.Set("Authorization", "Basic "+pgc.AuthToken)
	} else {
		log.Debug().Msg("No authorization token provided. Making HTTP request without credentials.")
	}
	log.Debug().Str("request", request.URL.String()).Str("method", request.Method).Msg("Pushing metrics to Prometheus push gateway")
	resp, err := pgc.httpClient.Do(request)
	if resp != nil {
		log.Debug().Int("code", resp.StatusCode).Msg("Returned status code")
	}
	return resp, err
}

// Evaluations shows number of evaluated expressions
var Evaluations = promauto.NewCounter(prometheus.CounterOpts{
	Name: EvaluationsName,
	Help: EvaluationsHelp,
})

// EvaluationErrors shows number of failed evaluations per error kind
var EvaluationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: EvaluationErrorsName,
	Help: EvaluationErrorsHelp,
}, []string{kindLabel})

// NotANumberResults shows number of evaluations that produced NaN
var NotANumberResults = promauto.NewCounter(prometheus.CounterOpts{
	Name: NotANumberResultsName,
	Help: NotANumberResultsHelp,
})

// HistoryRecordsWritten shows number of history records written into storage
var HistoryRecordsWritten = promauto.NewCounter(prometheus.CounterOpts{
	Name: HistoryRecordsWrittenName,
	Help: HistoryRecordsWrittenHelp,
})

// HistoryStorageErrors shows number of storage errors
var HistoryStorageErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: HistoryStorageErrorsName,
	Help: HistoryStorageErrorsHelp,
})

// HistoryEventsSent shows number of history events sent to Kafka
var HistoryEventsSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: HistoryEventsSentName,
	Help: HistoryEventsSentHelp,
})

// HistoryEventsNotSent shows number of history events not sent because of a
// Kafka producer error
var HistoryEventsNotSent = promauto.NewCounter(prometheus.CounterOpts{
	Name: HistoryEventsNotSentName,
	Help: HistoryEventsNotSentHelp,
})

// StorageSetupErrors shows number of errors when setting up storage
var StorageSetupErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: StorageSetupErrorsName,
	Help: StorageSetupErrorsHelp,
})

// ProducerSetupErrors shows number of errors when setting up Kafka producer
var ProducerSetupErrors = promauto.NewCounter(prometheus.CounterOpts{
	Name: ProducerSetupErrorsName,
	Help: ProducerSetupErrorsHelp,
})

// AddMetricsWithNamespaceAndSubsystem register the desired metrics using a
// given namespace and subsystem
func AddMetricsWithNamespaceAndSubsystem(namespace, subsystem string) {
	// Unregister all metrics and registrer them again
	prometheus.Unregister(Evaluations)
	prometheus.Unregister(EvaluationErrors)
	prometheus.Unregister(NotANumberResults)
	prometheus.Unregister(HistoryRecordsWritten)
	prometheus.Unregister(HistoryStorageErrors)
	prometheus.Unregister(HistoryEventsSent)
	prometheus.Unregister(HistoryEventsNotSent)
	prometheus.Unregister(StorageSetupErrors)
	prometheus.Unregister(ProducerSetupErrors)

	Evaluations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      EvaluationsName,
		Help:      EvaluationsHelp,
	})

	EvaluationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      EvaluationErrorsName,
		Help:      EvaluationErrorsHelp,
	}, []string{kindLabel})

	NotANumberResults = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      NotANumberResultsName,
		Help:      NotANumberResultsHelp,
	})

	HistoryRecordsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      HistoryRecordsWrittenName,
		Help:      HistoryRecordsWrittenHelp,
	})

	HistoryStorageErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      HistoryStorageErrorsName,
		Help:      HistoryStorageErrorsHelp,
	})

	HistoryEventsSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      HistoryEventsSentName,
		Help:      HistoryEventsSentHelp,
	})

	HistoryEventsNotSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      HistoryEventsNotSentName,
		Help:      HistoryEventsNotSentHelp,
	})

	StorageSetupErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      StorageSetupErrorsName,
		Help:      StorageSetupErrorsHelp,
	})

	ProducerSetupErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      ProducerSetupErrorsName,
		Help:      ProducerSetupErrorsHelp,
	})
}

// PushMetrics function pushes the metrics to the configured prometheus push
// gateway
func PushMetrics(metricsConf *conf.MetricsConfiguration) error {
	client := PushGatewayClient{metricsConf.GatewayAuthToken, http.Client{}}

	// Creates a pusher to the gateway "$PUSHGW_URL/metrics/job/$(job_name)
	return push.New(utils.SetHTTPPrefix(metricsConf.GatewayURL), metricsConf.Job).
		Collector(Evaluations).
		Collector(EvaluationErrors).
		Collector(NotANumberResults).
		Collector(HistoryRecordsWritten).
		Collector(HistoryStorageErrors).
		Collector(HistoryEventsSent).
		Collector(HistoryEventsNotSent).
		Collector(StorageSetupErrors).
		Collector(ProducerSetupErrors).
		Client(&client).
		Push()
}

// PushCollectedMetrics function pushes the metrics to the configured push
// gateway. The operation is repeated up to the configured number of retries.
func PushCollectedMetrics(metricsConf *conf.MetricsConfiguration) error {
	attempts := metricsConf.Retries + 1

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = PushMetrics(metricsConf)
		if err == nil {
			log.Info().Int("attempt", attempt).Msg("Metrics pushed successfully")
			return nil
		}
		log.Error().Err(err).Int("attempt", attempt).Msg(metricsPushFailedMessage)
		if attempt < attempts {
			time.Sleep(metricsConf.RetryAfter)
		}
	}

	return &StatusMetricsError{}
}
