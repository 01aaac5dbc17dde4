package postgres_test

import (
	"context"
	"errors"
	"testing"
	"tourdesk/infras/otel/mocks"
	"tourdesk/infras/postgres"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransactor(t *testing.T) (postgres.Transactor, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return postgres.NewTransactor(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), mock
}

func TestWithTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		tr, mock := newTransactor(t)

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE tour_instances").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := tr.WithTx(context.Background(), func(tx *sqlx.Tx) error {
			_, err := tx.Exec("UPDATE tour_instances SET booked_count = booked_count + 1")

			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on error", func(t *testing.T) {
		tr, mock := newTransactor(t)
		errFull := errors.New("tour instance is full")

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := tr.WithTx(context.Background(), func(_ *sqlx.Tx) error {
			return errFull
		})
		assert.ErrorIs(t, err, errFull)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back and re-panics", func(t *testing.T) {
		tr, mock := newTransactor(t)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = tr.WithTx(context.Background(), func(_ *sqlx.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin failure", func(t *testing.T) {
		tr, mock := newTransactor(t)

		mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

		err := tr.WithTx(context.Background(), func(_ *sqlx.Tx) error { return nil })
		assert.Error(t, err)
	})
}
