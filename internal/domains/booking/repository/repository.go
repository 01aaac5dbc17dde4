package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	gRepo "tourdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	crud.Repository[model.Booking]
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type Passenger interface {
	crud.Repository[model.Passenger]
	GetAllTx(ctx context.Context, tx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Passenger, error)
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Passenger) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type Payment interface {
	crud.Repository[model.Payment]
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAllTx(ctx context.Context, tx *sqlx.Tx, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Payment) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type bookingImpl struct {
	gRepo.Repository[model.Booking]
}

type passengerImpl struct {
	gRepo.Repository[model.Passenger]
}

type paymentImpl struct {
	gRepo.Repository[model.Payment]
}

func NewBooking(db *postgres.Connection, otel otel.Otel) Booking {
	return &bookingImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityBooking, model.TableBooking, model.FieldID, db, otel),
	}
}

func NewPassenger(db *postgres.Connection, otel otel.Otel) Passenger {
	return &passengerImpl{
		Repository: gRepo.NewRepository[model.Passenger](model.EntityPassenger, model.TablePassenger, model.FieldID, db, otel),
	}
}

func NewPayment(db *postgres.Connection, otel otel.Otel) Payment {
	return &paymentImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityPayment, model.TablePayment, model.FieldID, db, otel),
	}
}
