package repository

import (
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/user/model"
	"tourdesk/shared/crud"
	gRepo "tourdesk/shared/repository"
)

type User interface {
	crud.Repository[model.User]
}

type UserDetail interface {
	crud.Repository[model.UserDetail]
}

type userImpl struct {
	gRepo.Repository[model.User]
}

type userDetailImpl struct {
	gRepo.Repository[model.UserDetail]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &userImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityUser, model.TableUser, model.FieldID, db, otel),
	}
}

func NewDetail(db *postgres.Connection, otel otel.Otel) UserDetail {
	return &userDetailImpl{
		Repository: gRepo.NewRepository[model.UserDetail](model.EntityUserDetail, model.TableUserDetail, model.FieldID, db, otel),
	}
}
