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

// KafkaBrokerError represent an error related to Kafka initialization
type KafkaBrokerError struct{}

func (e *KafkaBrokerError) Error() string {
	return "KafkaBrokerError"
}

// StorageError represents an error related to history storage
// initialization
type StorageError struct {
	Msg string
}

func (e *StorageError) Error() string {
	return e.Msg
}

// StatusMetricsError is related to push gateway errors
type StatusMetricsError struct{}

func (e *StatusMetricsError) Error() string {
	return "StatusMetricsError"
}

// StatusConfiguration is related to invalid configuration
type StatusConfiguration struct {
	Msg string
}

func (e *StatusConfiguration) Error() string {
	return e.Msg
}
