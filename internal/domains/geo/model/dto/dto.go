package dto

import (
	"tourdesk/internal/domains/geo/model"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateCountryRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Code        string `json:"code"        validate:"required,max=16"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateCountryRequest) ToModel(user string) model.Country {
	return model.Country{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateCountryRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Code        string  `db:"code"        json:"code"        validate:"omitempty,max=16"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
}

type CountryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *CountryResponse) FromModel(model model.Country) {
	r.ID = model.ID
	r.Name = model.Name
	r.Code = model.Code
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func NewCountryResponse(model model.Country) (res CountryResponse) {
	res.FromModel(model)

	return res
}

type CreateProvinceRequest struct {
	CountryID   string `json:"country_id"  validate:"required,uuid"`
	Name        string `json:"name"        validate:"required,max=255"`
	Code        string `json:"code"        validate:"omitempty,max=16"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateProvinceRequest) ToModel(user string) model.Province {
	return model.Province{
		ID:          uuid.NewString(),
		CountryID:   c.CountryID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateProvinceRequest struct {
	CountryID   string  `db:"country_id"  json:"country_id"  validate:"omitempty,uuid"`
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Code        *string `db:"code"        json:"code"        validate:"omitempty,max=16"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
}

type ProvinceResponse struct {
	ID          string `json:"id"`
	CountryID   string `json:"country_id"`
	CountryName string `json:"country_name"`
	Name        string `json:"name"`
	Code        string `json:"code"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *ProvinceResponse) FromModel(model model.Province) {
	r.ID = model.ID
	r.CountryID = model.CountryID
	r.CountryName = model.CountryName
	r.Name = model.Name
	r.Code = model.Code
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func NewProvinceResponse(model model.Province) (res ProvinceResponse) {
	res.FromModel(model)

	return res
}

type CreateDestinationRequest struct {
	ProvinceID  string `json:"province_id" validate:"required,uuid"`
	Name        string `json:"name"        validate:"required,max=255"`
	Code        string `json:"code"        validate:"omitempty,max=16"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateDestinationRequest) ToModel(user string) model.Destination {
	return model.Destination{
		ID:          uuid.NewString(),
		ProvinceID:  c.ProvinceID,
		Name:        c.Name,
		Code:        c.Code,
		Description: c.Description,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateDestinationRequest struct {
	ProvinceID  string  `db:"province_id" json:"province_id" validate:"omitempty,uuid"`
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Code        *string `db:"code"        json:"code"        validate:"omitempty,max=16"`
	Description *string `db:"description" json:"description" validate:"omitempty"`
}

type DestinationResponse struct {
	ID           string `json:"id"`
	ProvinceID   string `json:"province_id"`
	ProvinceName string `json:"province_name"`
	Name         string `json:"name"`
	Code         string `json:"code"`
	Description  string `json:"description"`
	gDto.Metadata
}

func (r *DestinationResponse) FromModel(model model.Destination) {
	r.ID = model.ID
	r.ProvinceID = model.ProvinceID
	r.ProvinceName = model.ProvinceName
	r.Name = model.Name
	r.Code = model.Code
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func NewDestinationResponse(model model.Destination) (res DestinationResponse) {
	res.FromModel(model)

	return res
}
