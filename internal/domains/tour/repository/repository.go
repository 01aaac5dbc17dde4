package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/tour/model"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/logger"
	gRepo "tourdesk/shared/repository"
	"tourdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
)

type TourTemplate interface {
	crud.Repository[model.TourTemplate]
}

type TourInstance interface {
	crud.Repository[model.TourInstance]
	GetTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.TourInstance, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, filter gDto.FilterGroup, columns ...string) (model.TourInstance, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, fields map[string]any, filter gDto.FilterGroup) error
	AdjustBookedCountTx(ctx context.Context, tx *sqlx.Tx, id string, delta int) error
}

type tourTemplateImpl struct {
	gRepo.Repository[model.TourTemplate]
}

type tourInstanceImpl struct {
	gRepo.Repository[model.TourInstance]
	otel otel.Otel
}

func NewTourTemplate(db *postgres.Connection, otel otel.Otel) TourTemplate {
	return &tourTemplateImpl{
		Repository: gRepo.NewRepository[model.TourTemplate](model.EntityTourTemplate, model.TableTourTemplate, model.FieldID, db, otel),
	}
}

func NewTourInstance(db *postgres.Connection, otel otel.Otel) TourInstance {
	return &tourInstanceImpl{
		Repository: gRepo.NewRepository[model.TourInstance](model.EntityTourInstance, model.TableTourInstance, model.FieldID, db, otel),
		otel:       otel,
	}
}

// AdjustBookedCountTx shifts booked_count by delta without letting it drop below zero.
func (r *tourInstanceImpl) AdjustBookedCountTx(ctx context.Context, tx *sqlx.Tx, id string, delta int) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tour_instance.AdjustBookedCountTx")
	defer scope.End()

	query := `UPDATE tour_instances
		SET booked_count = GREATEST(booked_count + $1, 0), modified_at = $2
		WHERE id = $3 AND deleted_at IS NULL`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err := tx.ExecContext(ctx, query, delta, timezone.Now(), id); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to adjust booked count: %w", err)
	}

	return nil
}
