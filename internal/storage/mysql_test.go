package storage

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMySQLStorage_Migrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS smoke_runs").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS smoke_results").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, NewMySQLStorage(db).Migrate())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStorage_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	report := sampleReport()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO smoke_runs").
		WithArgs(report.Meta.RunID, report.Meta.BaseURL, report.Meta.ClientName, 3, 2, 1.5, report.Meta.Timestamp).
		WillReturnResult(sqlmock.NewResult(1, 1))
	for i := range report.Details {
		mock.ExpectExec("INSERT INTO smoke_results").
			WithArgs(report.Meta.RunID, i, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
				sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(1, 1))
	}
	mock.ExpectCommit()

	require.NoError(t, NewMySQLStorage(db).Save(report))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStorage_SaveRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO smoke_runs").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err = NewMySQLStorage(db).Save(sampleReport())
	assert.ErrorContains(t, err, "insert run")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLStorage_Load(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM smoke_runs").
		WillReturnRows(sqlmock.NewRows([]string{"run_id", "base_url", "client_name", "tests_run", "tests_passed", "duration_seconds", "created_at"}).
			AddRow("run-1", "http://localhost:8001", "test_client_101500", 3, 2, 1.5, "2026-10-18T10:15:00Z"))
	mock.ExpectQuery("SELECT (.+) FROM smoke_results").
		WithArgs("run-1").
		WillReturnRows(sqlmock.NewRows([]string{"name", "method", "url", "expected_status", "status_code", "success", "body", "error", "duration_ns"}).
			AddRow("Root API Endpoint", "GET", "http://localhost:8001/api/", 200, 200, true, "", "", int64(time.Millisecond)).
			AddRow("Create Status Check", "POST", "http://localhost:8001/api/status", 200, 0, false, nil, "connection refused", int64(2*time.Millisecond)))

	report, err := NewMySQLStorage(db).Load()
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, "run-1", report.Meta.RunID)
	assert.Equal(t, "1.5s", report.Meta.Duration)
	require.Len(t, report.Details, 2)
	assert.True(t, report.Details[0].Success)
	assert.Equal(t, "connection refused", report.Details[1].Error)
	assert.Equal(t, 2*time.Millisecond, report.Details[1].Duration)
	assert.Len(t, report.Failures(), 1)
}

func TestMySQLStorage_LoadEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM smoke_runs").
		WillReturnRows(sqlmock.NewRows([]string{"run_id"}))

	_, err = NewMySQLStorage(db).Load()
	assert.ErrorIs(t, err, ErrNoRuns)
}
