package testutil

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewGormMock returns a postgres flavoured *gorm.DB backed by sqlmock.
func NewGormMock(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	return openGorm(t, sqlDB), mock
}

// NewGormMockRecording is NewGormMock that also keeps every statement
// sqlmock matched, in execution order. Expectations still match by regexp.
func NewGormMockRecording(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, *[]string) {
	t.Helper()

	var statements []string
	matcher := sqlmock.QueryMatcherFunc(func(expectedSQL, actualSQL string) error {
		if err := sqlmock.QueryMatcherRegexp.Match(expectedSQL, actualSQL); err != nil {
			return err
		}
		statements = append(statements, actualSQL)
		return nil
	})

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(matcher))
	require.NoError(t, err)
	return openGorm(t, sqlDB), mock, &statements
}

func openGorm(t *testing.T, sqlDB *sql.DB) *gorm.DB {
	t.Helper()
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

// ExpectTx registers a transaction that ends in commit or rollback.
func ExpectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}
