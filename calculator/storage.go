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

// Generated documentation is available at:
// https://pkg.go.dev/github.com/RedHatInsights/ccx-calculator/calculator

// This source file contains an implementation of interface between Go code and
// (almost any) SQL database like PostgreSQL or SQLite that is used to store
// history of evaluated expressions.
//
// It is possible to configure connection to selected database by using
// StorageConfiguration structure:
//
// Driver - a SQL driver, "sqlite3" or "postgres"
// SQLiteDataSource - name of SQLite database file (or ":memory:")
// PG* - coordinates of PostgreSQL database

import (
	"database/sql"
	"fmt"
	"math"
	"strings"
	"time"

	_ "github.com/lib/pq"           // PostgreSQL database driver
	_ "github.com/mattn/go-sqlite3" // SQLite database driver

	"github.com/rs/zerolog/log"

	"github.com/RedHatInsights/ccx-calculator/conf"
	"github.com/RedHatInsights/ccx-calculator/types"
)

// Storage represents an interface to almost any database or storage system
type Storage interface {
	Init() error
	Close() error
	WriteHistoryRecord(record types.HistoryRecord) error
	ReadHistory(limit int) ([]types.HistoryRecord, error)
	ClearHistory() (int, error)
	PrintOldRecordsForCleanup(maxAge string) error
	CleanupOldRecords(maxAge string) (int, error)
}

// DBStorage is an implementation of Storage interface that use selected SQL
// like database like SQLite or PostgreSQL. That implementation is based on
// the standard sql package.
type DBStorage struct {
	connection    *sql.DB
	dbDriverType  types.DBDriver
	logSQLQueries bool
}

// error messages
const (
	unableToCloseDBRowsHandle = "Unable to close DB rows handle"
)

// other messages
const (
	RecordIDMessage   = "Record ID"
	ExpressionMessage = "Expression"
	ResultMessage     = "Result"
	CreatedAtMessage  = "Created at"
	AgeMessage        = "Age"
	MaxAgeAttribute   = "max age"
	DeleteStatement   = "delete statement"
	SQLStatement      = "SQL statement"
)

// SQL statements
const (
	// Create history table if it does not exist yet
	createHistoryTable = `
		CREATE TABLE IF NOT EXISTS history (
		    id          VARCHAR(36) NOT NULL PRIMARY KEY,
		    expression  VARCHAR NOT NULL,
		    result      VARCHAR NOT NULL,
		    created_at  TIMESTAMP NOT NULL
		)
`

	// Insert one record into history table
	insertHistoryRecord = `
		INSERT INTO history (id, expression, result, created_at)
		VALUES ($1, $2, $3, $4)
`

	// Read all records from history table, oldest first
	readAllHistoryRecords = `
		SELECT id, expression, result, created_at
		  FROM history
		 ORDER BY created_at
`

	// Read latest records from history table, oldest first
	readLatestHistoryRecords = `
		SELECT id, expression, result, created_at
		  FROM (SELECT id, expression, result, created_at
		          FROM history
		         ORDER BY created_at DESC
		         LIMIT $1) AS latest
		 ORDER BY created_at
`

	// Delete all records from history table
	deleteAllHistoryRecords = `
		DELETE FROM history
`

	// Display older records from history table (PostgreSQL variant)
	displayOldRecordsFromHistoryTablePostgres = `
		SELECT id, expression, result, created_at
		  FROM history
		 WHERE created_at < NOW() - $1::INTERVAL
		 ORDER BY created_at
`

	// Delete older records from history table (PostgreSQL variant)
	deleteOldRecordsFromHistoryTablePostgres = `
		DELETE
		  FROM history
		 WHERE created_at < NOW() - $1::INTERVAL
`

	// Display older records from history table (SQLite variant)
	displayOldRecordsFromHistoryTableSQLite = `
		SELECT id, expression, result, created_at
		  FROM history
		 WHERE created_at < datetime('now', '-' || $1)
		 ORDER BY created_at
`

	// Delete older records from history table (SQLite variant)
	deleteOldRecordsFromHistoryTableSQLite = `
		DELETE
		  FROM history
		 WHERE created_at < datetime('now', '-' || $1)
`
)

// NewStorage function creates and initializes a new instance of Storage interface
func NewStorage(configuration *conf.StorageConfiguration) (*DBStorage, error) {
	driverType, driverName, dataSource, err := initAndGetDriver(configuration)
	if err != nil {
		return nil, err
	}

	log.Info().Msgf(
		"Making connection to data storage, driver=%s",
		driverName,
	)

	connection, err := sql.Open(driverName, dataSource)
	if err != nil {
		log.Error().Err(err).Msg("Can not connect to data storage")
		return nil, err
	}

	storage := NewFromConnection(connection, driverType)
	storage.logSQLQueries = configuration.LogSQLQueries
	return storage, nil
}

// NewFromConnection function creates and initializes a new instance of Storage interface from prepared connection
func NewFromConnection(connection *sql.DB, dbDriverType types.DBDriver) *DBStorage {
	return &DBStorage{
		connection:   connection,
		dbDriverType: dbDriverType,
	}
}

// initAndGetDriver checks if selected driver is supported and returns driver
// type, driver name, data source and error
func initAndGetDriver(configuration *conf.StorageConfiguration) (driverType types.DBDriver, driverName, dataSource string, err error) {
	driverName = configuration.Driver

	switch driverName {
	case "sqlite3":
		driverType = types.DBDriverSQLite3
		dataSource = configuration.SQLiteDataSource
	case "postgres":
		driverType = types.DBDriverPostgres
		dataSource = fmt.Sprintf(
			"postgresql://%v:%v@%v:%v/%v?%v",
			configuration.PGUsername,
			configuration.PGPassword,
			configuration.PGHost,
			configuration.PGPort,
			configuration.PGDBName,
			configuration.PGParams,
		)
	default:
		err = &StorageError{Msg: fmt.Sprintf("driver %v is not supported", driverName)}
		return
	}

	return
}

// logQuery prints SQL statement when query logging is enabled
func (storage DBStorage) logQuery(statement string) {
	if storage.logSQLQueries {
		log.Debug().Str(SQLStatement, getPrintableStatement(statement)).Msg("Performing SQL statement")
	}
}

// getPrintableStatement squeezes SQL statement into one line
func getPrintableStatement(sqlStatement string) string {
	s := strings.ReplaceAll(sqlStatement, "\n", " ")
	s = strings.ReplaceAll(s, "\t", "")
	return strings.Trim(s, " ")
}

// Init method creates history table when it does not exist
func (storage DBStorage) Init() error {
	storage.logQuery(createHistoryTable)
	_, err := storage.connection.Exec(createHistoryTable)
	if err != nil {
		log.Error().Err(err).Msg("Unable to create history table")
		return err
	}
	return nil
}

// Close method closes the connection to database. Needs to be called at the end of application lifecycle.
func (storage DBStorage) Close() error {
	log.Info().Msg("Closing connection to data storage")
	if storage.connection != nil {
		err := storage.connection.Close()
		if err != nil {
			log.Error().Err(err).Msg("Can not close connection to data storage")
			return err
		}
	}
	return nil
}

// WriteHistoryRecord method writes one history record into database
func (storage DBStorage) WriteHistoryRecord(record types.HistoryRecord) error {
	storage.logQuery(insertHistoryRecord)
	_, err := storage.connection.Exec(
		insertHistoryRecord,
		string(record.ID),
		record.Expression,
		record.Result,
		record.CreatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str(RecordIDMessage, string(record.ID)).Msg("Unable to write history record")
		return err
	}
	return nil
}

// ReadHistory method reads the latest history records from database, oldest
// first. Zero or negative limit means that all records are returned.
func (storage DBStorage) ReadHistory(limit int) ([]types.HistoryRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)

	records := make([]types.HistoryRecord, 0)

	if limit > 0 {
		storage.logQuery(readLatestHistoryRecords)
		rows, err = storage.connection.Query(readLatestHistoryRecords, limit)
	} else {
		storage.logQuery(readAllHistoryRecords)
		rows, err = storage.connection.Query(readAllHistoryRecords)
	}
	if err != nil {
		return records, err
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			log.Error().Err(err).Msg(unableToCloseDBRowsHandle)
		}
	}()

	for rows.Next() {
		var (
			record types.HistoryRecord
			id     string
		)

		if err := rows.Scan(&id, &record.Expression, &record.Result, &record.CreatedAt); err != nil {
			return records, err
		}
		record.ID = types.RecordID(id)
		records = append(records, record)
	}

	return records, rows.Err()
}

// ClearHistory method deletes all history records. Number of deleted records
// is returned.
func (storage DBStorage) ClearHistory() (int, error) {
	storage.logQuery(deleteAllHistoryRecords)
	result, err := storage.connection.Exec(deleteAllHistoryRecords)
	if err != nil {
		return 0, err
	}

	// read number of affected (deleted) rows
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// printOldRecords method prints all history records older than specified
// relative time
func (storage DBStorage) printOldRecords(maxAge, query string) error {
	log.Info().
		Str(MaxAgeAttribute, maxAge).
		Str("select statement", getPrintableStatement(query)).
		Msg("PrintOldRecordsForCleanup operation")

	rows, err := storage.connection.Query(query, maxAge)
	if err != nil {
		return err
	}

	defer func() {
		err := rows.Close()
		if err != nil {
			log.Error().Err(err).Msg(unableToCloseDBRowsHandle)
		}
	}()

	// used to compute a real record age
	now := time.Now()

	// iterate over all old records
	for rows.Next() {
		var (
			id         string
			expression string
			result     string
			createdAt  time.Time
		)

		// read one old record from the history table
		if err := rows.Scan(&id, &expression, &result, &createdAt); err != nil {
			return err
		}

		// compute the real record age
		age := int(math.Ceil(now.Sub(createdAt).Hours() / 24)) // in days

		// just print the record
		log.Info().
			Str(RecordIDMessage, id).
			Str(ExpressionMessage, expression).
			Str(ResultMessage, result).
			Str(CreatedAtMessage, createdAt.Format(time.RFC3339)).
			Int(AgeMessage, age).
			Msg("Old record from `history` table")
	}
	return rows.Err()
}

// PrintOldRecordsForCleanup method prints all records from `history` table
// older than specified relative time
func (storage DBStorage) PrintOldRecordsForCleanup(maxAge string) error {
	if storage.dbDriverType == types.DBDriverSQLite3 {
		return storage.printOldRecords(maxAge, displayOldRecordsFromHistoryTableSQLite)
	}
	return storage.printOldRecords(maxAge, displayOldRecordsFromHistoryTablePostgres)
}

// cleanup method deletes all records older than specified relative time
func (storage DBStorage) cleanup(maxAge, statement string) (int, error) {
	log.Info().
		Str(MaxAgeAttribute, maxAge).
		Str(DeleteStatement, getPrintableStatement(statement)).
		Msg("Cleanup operation for history table")

	// perform the SQL statement
	result, err := storage.connection.Exec(statement, maxAge)
	if err != nil {
		return 0, err
	}

	// read number of affected (deleted) rows
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(affected), nil
}

// CleanupOldRecords method deletes all records from `history` table older
// than specified relative time
func (storage DBStorage) CleanupOldRecords(maxAge string) (int, error) {
	if storage.dbDriverType == types.DBDriverSQLite3 {
		return storage.cleanup(maxAge, deleteOldRecordsFromHistoryTableSQLite)
	}
	return storage.cleanup(maxAge, deleteOldRecordsFromHistoryTablePostgres)
}
