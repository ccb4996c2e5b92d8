package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"apismoke/internal/domain"
)

const createRunsTable = `CREATE TABLE IF NOT EXISTS smoke_runs (
	run_id VARCHAR(36) NOT NULL PRIMARY KEY,
	base_url VARCHAR(512) NOT NULL,
	client_name VARCHAR(128) NOT NULL,
	tests_run INT NOT NULL,
	tests_passed INT NOT NULL,
	duration_seconds DOUBLE NOT NULL,
	created_at VARCHAR(64) NOT NULL
)`

const createResultsTable = `CREATE TABLE IF NOT EXISTS smoke_results (
	run_id VARCHAR(36) NOT NULL,
	position INT NOT NULL,
	name VARCHAR(128) NOT NULL,
	method VARCHAR(8) NOT NULL,
	url VARCHAR(1024) NOT NULL,
	expected_status INT NOT NULL,
	status_code INT NOT NULL,
	success BOOLEAN NOT NULL,
	body TEXT,
	error TEXT,
	duration_ns BIGINT NOT NULL,
	PRIMARY KEY (run_id, position)
)`

// MySQLStorage keeps the history of every run in MySQL
type MySQLStorage struct {
	db *sql.DB
}

// OpenMySQLStorage connects with a go-sql-driver DSN and creates the tables
func OpenMySQLStorage(dsn string) (*MySQLStorage, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database server: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database server: %w", err)
	}

	s := NewMySQLStorage(db)
	if err := s.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewMySQLStorage wraps an open connection pool
func NewMySQLStorage(db *sql.DB) *MySQLStorage {
	return &MySQLStorage{db: db}
}

// Migrate creates the run tables when missing
func (s *MySQLStorage) Migrate() error {
	for _, stmt := range []string{createRunsTable, createResultsTable} {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("create tables: %w", err)
		}
	}
	return nil
}

// Save inserts the run and its results in one transaction
func (s *MySQLStorage) Save(report *domain.RunReport) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	m := report.Meta
	if _, err := tx.Exec(
		"INSERT INTO smoke_runs (run_id, base_url, client_name, tests_run, tests_passed, duration_seconds, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		m.RunID, m.BaseURL, m.ClientName, m.TestsRun, m.TestsPassed, m.DurationSeconds, m.Timestamp,
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for i, r := range report.Details {
		if _, err := tx.Exec(
			"INSERT INTO smoke_results (run_id, position, name, method, url, expected_status, status_code, success, body, error, duration_ns) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
			m.RunID, i, r.Name, r.Method, r.URL, r.ExpectedStatus, r.StatusCode, r.Success, r.Body, r.Error, int64(r.Duration),
		); err != nil {
			return fmt.Errorf("insert result %q: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Load returns the most recent run
func (s *MySQLStorage) Load() (*domain.RunReport, error) {
	var report domain.RunReport
	m := &report.Meta
	err := s.db.QueryRow(
		"SELECT run_id, base_url, client_name, tests_run, tests_passed, duration_seconds, created_at FROM smoke_runs ORDER BY created_at DESC LIMIT 1",
	).Scan(&m.RunID, &m.BaseURL, &m.ClientName, &m.TestsRun, &m.TestsPassed, &m.DurationSeconds, &m.Timestamp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoRuns
	}
	if err != nil {
		return nil, fmt.Errorf("query run: %w", err)
	}
	m.Duration = time.Duration(m.DurationSeconds * float64(time.Second)).String()

	rows, err := s.db.Query(
		"SELECT name, method, url, expected_status, status_code, success, body, error, duration_ns FROM smoke_results WHERE run_id = ? ORDER BY position",
		m.RunID,
	)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var r domain.TestResult
		var body, errMsg sql.NullString
		var durationNS int64
		if err := rows.Scan(&r.Name, &r.Method, &r.URL, &r.ExpectedStatus, &r.StatusCode, &r.Success, &body, &errMsg, &durationNS); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Body = body.String
		r.Error = errMsg.String
		r.Duration = time.Duration(durationNS)
		report.Details = append(report.Details, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return &report, nil
}

// Close releases the connection pool
func (s *MySQLStorage) Close() error {
	return s.db.Close()
}
