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

// Package producer contains functions that can be used to produce (that is
// send) history events to properly configured Kafka broker.
package producer

import (
	"github.com/RedHatInsights/ccx-calculator/types"
)

// Producer represents any producer
type Producer interface {
	ProduceMessage(key string, msg types.ProducerMessage) (int32, int64, error)
	Close() error
}
