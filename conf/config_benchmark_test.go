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

package conf_test

// Benchmark for config module

import (
	"os"
	"testing"

	conf "github.com/RedHatInsights/ccx-calculator/conf"
)

// Configuration-related constants
const (
	configFileEnvName = "CCX_CALCULATOR_CONFIG_FILE"
	configFileName    = "../tests/config2"
)

// loadConfiguration function loads configuration prepared to be used by
// benchmarks
func loadConfiguration() (conf.ConfigStruct, error) {
	os.Clearenv()

	err := os.Setenv(configFileEnvName, configFileName)
	if err != nil {
		return conf.ConfigStruct{}, err
	}

	config, err := conf.LoadConfiguration(configFileEnvName, configFileName)
	if err != nil {
		return conf.ConfigStruct{}, err
	}

	return config, nil
}

func mustLoadBenchmarkConfiguration(b *testing.B) conf.ConfigStruct {
	configuration, err := loadConfiguration()
	if err != nil {
		b.Fatal(err)
	}
	return configuration
}

// BenchmarkLoadConfiguration measures the speed of LoadConfiguration
// function from the conf module.
func BenchmarkLoadConfiguration(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = mustLoadBenchmarkConfiguration(b)
	}
}

// BenchmarkGetCalculatorConfiguration measures the speed of
// GetCalculatorConfiguration function from the conf module.
func BenchmarkGetCalculatorConfiguration(b *testing.B) {
	configuration := mustLoadBenchmarkConfiguration(b)

	for i := 0; i < b.N; i++ {
		// call benchmarked function
		c := conf.GetCalculatorConfiguration(&configuration)

		b.StopTimer()
		if !c.PersistHistory {
			b.Fatal("Wrong configuration: persist_history is set to false")
		}
		b.StartTimer()
	}
}

// BenchmarkGetStorageConfiguration measures the speed of
// GetStorageConfiguration function from the conf module.
func BenchmarkGetStorageConfiguration(b *testing.B) {
	configuration := mustLoadBenchmarkConfiguration(b)

	for i := 0; i < b.N; i++ {
		// call benchmarked function
		s := conf.GetStorageConfiguration(&configuration)

		b.StopTimer()
		if s.Driver != "postgres" {
			b.Fatal("Wrong configuration: db_driver is not set to postgres")
		}
		b.StartTimer()
	}
}
