package service

import (
	"context"
	"tourdesk/shared"
	"tourdesk/shared/crud"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const fieldID = "id"

// requireExisting fails with 400 when no live row of table has the id.
func requireExisting[M any](ctx context.Context, repo crud.Repository[M], table, entity, id string) error {
	exist, err := repo.Exist(ctx, shared.FilterByID(id, fieldID, table))
	if err != nil {
		log.Error().Err(err).Str("entity", entity).Msg("failed to check existence")

		return err
	}

	if !exist {
		return failure.BadRequestFromString(entity + " does not exist")
	}

	return nil
}

// referenced reports whether any live row of repo points at id through field.
func referenced[M any](ctx context.Context, repo crud.Repository[M], table, field, id string) (bool, error) {
	exist, err := repo.Exist(ctx, shared.FilterByField(field, id, table))
	if err != nil {
		log.Error().Err(err).Str("table", table).Msg("failed to check references")

		return false, err
	}

	return exist, nil
}
