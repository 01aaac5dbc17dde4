package repository

import (
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/geo/model"
	"tourdesk/shared/crud"
	gRepo "tourdesk/shared/repository"
)

type Country interface {
	crud.Repository[model.Country]
}

type Province interface {
	crud.Repository[model.Province]
}

type Destination interface {
	crud.Repository[model.Destination]
}

type countryImpl struct {
	gRepo.Repository[model.Country]
}

type provinceImpl struct {
	gRepo.Repository[model.Province]
}

type destinationImpl struct {
	gRepo.Repository[model.Destination]
}

func NewCountry(db *postgres.Connection, otel otel.Otel) Country {
	return &countryImpl{
		Repository: gRepo.NewRepository[model.Country](model.EntityCountry, model.TableCountry, model.FieldID, db, otel),
	}
}

func NewProvince(db *postgres.Connection, otel otel.Otel) Province {
	return &provinceImpl{
		Repository: gRepo.NewRepository[model.Province](model.EntityProvince, model.TableProvince, model.FieldID, db, otel),
	}
}

func NewDestination(db *postgres.Connection, otel otel.Otel) Destination {
	return &destinationImpl{
		Repository: gRepo.NewRepository[model.Destination](model.EntityDestination, model.TableDestination, model.FieldID, db, otel),
	}
}
