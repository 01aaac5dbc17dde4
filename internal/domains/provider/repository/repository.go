package repository

import (
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/provider/model"
	"tourdesk/shared/crud"
	gRepo "tourdesk/shared/repository"
)

type Provider interface {
	crud.Repository[model.Provider]
}

type ServiceType interface {
	crud.Repository[model.ServiceType]
}

type Service interface {
	crud.Repository[model.Service]
}

type ServiceAttribute interface {
	crud.Repository[model.ServiceAttribute]
}

type providerImpl struct {
	gRepo.Repository[model.Provider]
}

type serviceTypeImpl struct {
	gRepo.Repository[model.ServiceType]
}

type serviceImpl struct {
	gRepo.Repository[model.Service]
}

type serviceAttributeImpl struct {
	gRepo.Repository[model.ServiceAttribute]
}

func NewProvider(db *postgres.Connection, otel otel.Otel) Provider {
	return &providerImpl{
		Repository: gRepo.NewRepository[model.Provider](model.EntityProvider, model.TableProvider, model.FieldID, db, otel),
	}
}

func NewServiceType(db *postgres.Connection, otel otel.Otel) ServiceType {
	return &serviceTypeImpl{
		Repository: gRepo.NewRepository[model.ServiceType](model.EntityServiceType, model.TableServiceType, model.FieldID, db, otel),
	}
}

func NewService(db *postgres.Connection, otel otel.Otel) Service {
	return &serviceImpl{
		Repository: gRepo.NewRepository[model.Service](model.EntityService, model.TableService, model.FieldID, db, otel),
	}
}

func NewServiceAttribute(db *postgres.Connection, otel otel.Otel) ServiceAttribute {
	return &serviceAttributeImpl{
		Repository: gRepo.NewRepository[model.ServiceAttribute](model.EntityServiceAttribute, model.TableServiceAttribute, model.FieldID, db, otel),
	}
}
