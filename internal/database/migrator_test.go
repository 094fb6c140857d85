package database_test

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"photo-market-backend/internal/database"
)

func testFiles() fstest.MapFS {
	return fstest.MapFS{
		"migrations/002_second.sql": {Data: []byte("ALTER TABLE a ADD COLUMN b TEXT;")},
		"migrations/001_first.sql":  {Data: []byte("CREATE TABLE a (id INT);")},
	}
}

func TestMigrator_AppliesPendingInOrder(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schema_migrations")).
		WithArgs("001_first.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schema_migrations")).
		WithArgs("002_second.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE a ADD COLUMN b TEXT;")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_migrations")).
		WithArgs("002_second.sql").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	migrator := database.NewMigrator(db, zerolog.New(io.Discard)).WithFiles(testFiles())
	require.NoError(t, migrator.Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_RollsBackFailedMigration(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schema_migrations")).
		WithArgs("001_first.sql").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE a (id INT);")).
		WillReturnError(errors.New("syntax error"))
	mock.ExpectRollback()

	migrator := database.NewMigrator(db, zerolog.New(io.Discard)).WithFiles(testFiles())
	err = migrator.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "001_first.sql")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrator_EmbeddedMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_migrations")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	for _, name := range []string{"001_initial_schema.sql", "002_purchase_payment_reference_unique.sql"} {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM schema_migrations")).
			WithArgs(name).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	}

	require.NoError(t, database.NewMigrator(db, zerolog.New(io.Discard)).Run(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
