package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"tourdesk/infras/otel/mocks"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/tour/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourInstance_AdjustBookedCountTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "postgres")
	repo := repository.NewTourInstance(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel())

	query := regexp.QuoteMeta("SET booked_count = GREATEST(booked_count + $1, 0)")

	mock.ExpectBegin()
	mock.ExpectExec(query).
		WithArgs(-3, sqlmock.AnyArg(), "ti-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).
		WithArgs(2, sqlmock.AnyArg(), "ti-2").
		WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	tx, err := sqlxDB.Beginx()
	require.NoError(t, err)

	require.NoError(t, repo.AdjustBookedCountTx(context.Background(), tx, "ti-1", -3))
	assert.Error(t, repo.AdjustBookedCountTx(context.Background(), tx, "ti-2", 2))
	require.NoError(t, tx.Rollback())

	assert.NoError(t, mock.ExpectationsWereMet())
}
