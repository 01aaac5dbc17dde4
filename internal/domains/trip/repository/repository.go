package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	gRepo "tourdesk/shared/repository"

	"github.com/jmoiron/sqlx"
)

type TripAssignment interface {
	crud.Repository[model.TripAssignment]
}

type TripCheckIn interface {
	crud.Repository[model.TripCheckIn]
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.TripCheckIn) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type CheckInDetail interface {
	crud.Repository[model.CheckInDetail]
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.CheckInDetail) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup) error
}

type tripAssignmentImpl struct {
	gRepo.Repository[model.TripAssignment]
}

type tripCheckInImpl struct {
	gRepo.Repository[model.TripCheckIn]
}

type checkInDetailImpl struct {
	gRepo.Repository[model.CheckInDetail]
}

func NewTripAssignment(db *postgres.Connection, otel otel.Otel) TripAssignment {
	return &tripAssignmentImpl{
		Repository: gRepo.NewRepository[model.TripAssignment](model.EntityTripAssignment, model.TableTripAssignment, model.FieldID, db, otel),
	}
}

func NewTripCheckIn(db *postgres.Connection, otel otel.Otel) TripCheckIn {
	return &tripCheckInImpl{
		Repository: gRepo.NewRepository[model.TripCheckIn](model.EntityTripCheckIn, model.TableTripCheckIn, model.FieldID, db, otel),
	}
}

func NewCheckInDetail(db *postgres.Connection, otel otel.Otel) CheckInDetail {
	return &checkInDetailImpl{
		Repository: gRepo.NewRepository[model.CheckInDetail](model.EntityCheckInDetail, model.TableCheckInDetail, model.FieldID, db, otel),
	}
}
