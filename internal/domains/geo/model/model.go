package model

import "tourdesk/shared/model"

const (
	TableCountry     = "countries"
	TableProvince    = "provinces"
	TableDestination = "destinations"

	EntityCountry     = "country"
	EntityProvince    = "province"
	EntityDestination = "destination"

	FieldID          = "id"
	FieldName        = "name"
	FieldCode        = "code"
	FieldCountryID   = "country_id"
	FieldProvinceID  = "province_id"
	FieldDescription = "description"
)

type Country struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	Description string `db:"description"`
	model.Metadata
}

type Province struct {
	ID          string `db:"id"`
	CountryID   string `db:"country_id"`
	CountryName string `db:"country_name" table:"countries" column:"name"`
	Name        string `db:"name"`
	Code        string `db:"code"`
	Description string `db:"description"`
	model.Metadata
}

func (Province) GetJoinQuery() string {
	return "LEFT JOIN countries ON countries.id = provinces.country_id"
}

type Destination struct {
	ID           string `db:"id"`
	ProvinceID   string `db:"province_id"`
	ProvinceName string `db:"province_name" table:"provinces" column:"name"`
	Name         string `db:"name"`
	Code         string `db:"code"`
	Description  string `db:"description"`
	model.Metadata
}

func (Destination) GetJoinQuery() string {
	return "LEFT JOIN provinces ON provinces.id = destinations.province_id"
}
