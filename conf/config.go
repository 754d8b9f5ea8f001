/*
Copyright © 2021, 2026 Red Hat, Inc.

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

package conf

// This source file contains definition of data type named ConfigStruct that
// represents configuration of the calculator. This source file also contains
// function named LoadConfiguration that can be used to load configuration
// from provided configuration file and/or from environment variables.
// Additionally several specific functions named GetStorageConfiguration,
// GetLoggingConfiguration, GetKafkaBrokerConfiguration,
// GetCalculatorConfiguration and GetMetricsConfiguration are to be used to
// return specific configuration options.

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/conf

// Default name of configuration file is config.toml
// It can be changed via environment variable CCX_CALCULATOR_CONFIG_FILE

// An example of configuration file that can be used in devel environment:
//
// [storage]
// db_driver = "sqlite3"
// sqlite_datasource = "history.db"
// log_sql_queries = true
//
// [calculator]
// history_size = 100
// persist_history = true
// load_history = true
//
// [logging]
// debug = true
// log_level = ""
//
// Environment variables that can be used to override configuration file settings:
// CCX_CALCULATOR__STORAGE__DB_DRIVER
// CCX_CALCULATOR__KAFKA_BROKER__ADDRESSES
// etc.

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/RedHatInsights/insights-operator-utils/logger"
	clowder "github.com/redhatinsights/app-common-go/pkg/api/v1"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Configuration-related constants
const (
	ConfigFileEnvVariableName = "CCX_CALCULATOR_CONFIG_FILE"
	DefaultConfigFileName     = "config"
	envPrefix                 = "CCX_CALCULATOR_"
)

// ConfigStruct is a structure holding the whole calculator configuration
type ConfigStruct struct {
	Logging      logger.LoggingConfiguration       `mapstructure:"logging" toml:"logging"`
	CloudWatch   logger.CloudWatchConfiguration    `mapstructure:"cloudwatch" toml:"cloudwatch"`
	Sentry       logger.SentryLoggingConfiguration `mapstructure:"sentry" toml:"sentry"`
	KafkaZerolog logger.KafkaZerologConfiguration  `mapstructure:"kafka_zerolog" toml:"kafka_zerolog"`
	Storage      StorageConfiguration              `mapstructure:"storage" toml:"storage"`
	Kafka        KafkaConfiguration                `mapstructure:"kafka_broker" toml:"kafka_broker"`
	Calculator   CalculatorConfiguration           `mapstructure:"calculator" toml:"calculator"`
	Metrics      MetricsConfiguration              `mapstructure:"metrics" toml:"metrics"`
	Cleaner      CleanerConfiguration              `mapstructure:"cleaner" toml:"cleaner"`
}

// StorageConfiguration represents configuration of history storage
type StorageConfiguration struct {
	Driver           string `mapstructure:"db_driver"         toml:"db_driver"`
	SQLiteDataSource string `mapstructure:"sqlite_datasource" toml:"sqlite_datasource"`
	PGUsername       string `mapstructure:"pg_username"       toml:"pg_username"`
	PGPassword       string `mapstructure:"pg_password"       toml:"pg_password"`
	PGHost           string `mapstructure:"pg_host"           toml:"pg_host"`
	PGPort           int    `mapstructure:"pg_port"           toml:"pg_port"`
	PGDBName         string `mapstructure:"pg_db_name"        toml:"pg_db_name"`
	PGParams         string `mapstructure:"pg_params"         toml:"pg_params"`
	LogSQLQueries    bool   `mapstructure:"log_sql_queries"   toml:"log_sql_queries"`
}

// KafkaConfiguration represents configuration of Kafka brokers and topics
// used to publish history events
type KafkaConfiguration struct {
	Enabled          bool          `mapstructure:"enabled"           toml:"enabled"`
	Addresses        string        `mapstructure:"addresses"         toml:"addresses"`
	SecurityProtocol string        `mapstructure:"security_protocol" toml:"security_protocol"`
	CertPath         string        `mapstructure:"cert_path"         toml:"cert_path"`
	SaslMechanism    string        `mapstructure:"sasl_mechanism"    toml:"sasl_mechanism"`
	SaslUsername     string        `mapstructure:"sasl_username"     toml:"sasl_username"`
	SaslPassword     string        `mapstructure:"sasl_password"     toml:"sasl_password"`
	Topic            string        `mapstructure:"topic"             toml:"topic"`
	Timeout          time.Duration `mapstructure:"timeout"           toml:"timeout"`
}

// CalculatorConfiguration represents configuration of calculator session
type CalculatorConfiguration struct {
	// HistorySize is the maximum number of records kept in history
	// panel, zero means no limit
	HistorySize int `mapstructure:"history_size" toml:"history_size"`

	// PersistHistory enables writing history records into storage
	PersistHistory bool `mapstructure:"persist_history" toml:"persist_history"`

	// LoadHistory enables reading history records from storage when
	// the session starts
	LoadHistory bool `mapstructure:"load_history" toml:"load_history"`
}

// MetricsConfiguration holds metrics related configuration
type MetricsConfiguration struct {
	Job              string        `mapstructure:"job_name"           toml:"job_name"`
	Namespace        string        `mapstructure:"namespace"          toml:"namespace"`
	Subsystem        string        `mapstructure:"subsystem"          toml:"subsystem"`
	GatewayURL       string        `mapstructure:"gateway_url"        toml:"gateway_url"`
	GatewayAuthToken string        `mapstructure:"gateway_auth_token" toml:"gateway_auth_token"`
	Retries          int           `mapstructure:"retries"            toml:"retries"`
	RetryAfter       time.Duration `mapstructure:"retry_after"        toml:"retry_after"`
}

// CleanerConfiguration represents configuration for the history cleaner
type CleanerConfiguration struct {
	// MaxAge is specification of max age for records to be cleaned
	MaxAge string `mapstructure:"max_age" toml:"max_age"`
}

// LoadConfiguration loads configuration from defaultConfigFile, file set in
// configFileEnvVariableName or from env
func LoadConfiguration(configFileEnvVariableName, defaultConfigFile string) (ConfigStruct, error) {
	var config ConfigStruct

	// viper keeps global state, configuration files from previous calls
	// need to be forgotten
	viper.Reset()

	// env. variable holding name of configuration file
	configFile, specified := os.LookupEnv(configFileEnvVariableName)
	if specified {
		// we need to separate the directory name and filename without
		// extension
		directory, basename := filepath.Split(configFile)
		file := strings.TrimSuffix(basename, filepath.Ext(basename))
		// parse the configuration
		viper.SetConfigName(file)
		viper.AddConfigPath(directory)
	} else {
		log.Info().Str("filename", defaultConfigFile).Msg("Parsing configuration file")
		// parse the configuration
		viper.SetConfigName(defaultConfigFile)
		viper.AddConfigPath(".")
	}

	// try to read the whole configuration
	err := viper.ReadInConfig()
	if _, isNotFoundError := err.(viper.ConfigFileNotFoundError); !specified && isNotFoundError {
		// If config file is not present (which might be correct in
		// some environment) we need to read configuration from
		// environment variables The problem is that Viper is not smart
		// enough to understand the structure of config by itself, so
		// we need to read fake config file
		fakeTomlConfigWriter := new(bytes.Buffer)

		err := toml.NewEncoder(fakeTomlConfigWriter).Encode(config)
		if err != nil {
			return config, err
		}

		fakeTomlConfig := fakeTomlConfigWriter.String()

		viper.SetConfigType("toml")

		err = viper.ReadConfig(strings.NewReader(fakeTomlConfig))
		if err != nil {
			return config, err
		}
	} else if err != nil {
		// error is processed on caller side
		return config, fmt.Errorf("fatal error config file: %s", err)
	}

	// override config from env if there's variable in env
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "__"))

	err = viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	if clowder.IsClowderEnabled() {
		// can not use Zerolog at this moment!
		fmt.Println("Clowder is enabled")
		updateConfigFromClowder(&config)
	}

	// everything's should be ok
	return config, nil
}

// updateConfigFromClowder replaces broker and database coordinates by the
// ones provided by Clowder
func updateConfigFromClowder(config *ConfigStruct) {
	loadedConfig := clowder.LoadedConfig
	if loadedConfig == nil {
		fmt.Println("Clowder configuration is not loaded")
		return
	}

	if loadedConfig.Kafka != nil && len(loadedConfig.Kafka.Brokers) > 0 {
		broker := loadedConfig.Kafka.Brokers[0]
		if broker.Port != nil {
			config.Kafka.Addresses = fmt.Sprintf("%s:%d", broker.Hostname, *broker.Port)
		} else {
			config.Kafka.Addresses = broker.Hostname
		}
	} else {
		fmt.Println("No Kafka brokers available in Clowder configuration")
	}

	if loadedConfig.Database != nil {
		config.Storage.PGDBName = loadedConfig.Database.Name
		config.Storage.PGHost = loadedConfig.Database.Hostname
		config.Storage.PGPort = loadedConfig.Database.Port
		config.Storage.PGUsername = loadedConfig.Database.Username
		config.Storage.PGPassword = loadedConfig.Database.Password
	}
}

// GetStorageConfiguration returns storage configuration
func GetStorageConfiguration(config *ConfigStruct) StorageConfiguration {
	return config.Storage
}

// GetLoggingConfiguration returns logging configuration
func GetLoggingConfiguration(config *ConfigStruct) logger.LoggingConfiguration {
	return config.Logging
}

// GetCloudWatchConfiguration returns cloudwatch configuration
func GetCloudWatchConfiguration(config *ConfigStruct) logger.CloudWatchConfiguration {
	return config.CloudWatch
}

// GetSentryLoggingConfiguration returns the sentry log configuration
func GetSentryLoggingConfiguration(config *ConfigStruct) logger.SentryLoggingConfiguration {
	return config.Sentry
}

// GetKafkaZerologConfiguration returns the kafkazero log configuration
func GetKafkaZerologConfiguration(config *ConfigStruct) logger.KafkaZerologConfiguration {
	return config.KafkaZerolog
}

// GetKafkaBrokerConfiguration returns kafka broker configuration
func GetKafkaBrokerConfiguration(config *ConfigStruct) KafkaConfiguration {
	return config.Kafka
}

// GetCalculatorConfiguration returns configuration of calculator session
func GetCalculatorConfiguration(config *ConfigStruct) CalculatorConfiguration {
	return config.Calculator
}

// GetMetricsConfiguration returns metrics configuration
func GetMetricsConfiguration(config *ConfigStruct) MetricsConfiguration {
	return config.Metrics
}

// GetCleanerConfiguration returns cleaner configuration
func GetCleanerConfiguration(config *ConfigStruct) CleanerConfiguration {
	return config.Cleaner
}
