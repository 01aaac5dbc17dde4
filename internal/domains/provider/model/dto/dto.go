package dto

import (
	"mime/multipart"
	"tourdesk/internal/domains/provider/model"
	gDto "tourdesk/shared/dto"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateProviderRequest struct {
	Name        string `json:"name"        validate:"required,max=255"`
	Phone       string `json:"phone"       validate:"omitempty,max=32"`
	Email       string `json:"email"       validate:"omitempty,email"`
	Address     string `json:"address"     validate:"omitempty"`
	Description string `json:"description" validate:"omitempty"`
	IsActive    *bool  `json:"is_active"`
}

func (c *CreateProviderRequest) ToModel(user string) model.Provider {
	active := true
	if c.IsActive != nil {
		active = *c.IsActive
	}

	return model.Provider{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		Description: c.Description,
		IsActive:    active,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateProviderRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=255"`
	Phone       *string `db:"phone"       json:"phone"       validate:"omitempty,max=32"`
	Email       *string `db:"email"       json:"email"       validate:"omitempty,email"`
	Address     *string `db:"address"     json:"address"`
	Description *string `db:"description" json:"description"`
	IsActive    *bool   `db:"is_active"   json:"is_active"`
}

type ProviderResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *ProviderResponse) FromModel(model model.Provider) {
	r.ID = model.ID
	r.Name = model.Name
	r.Phone = model.Phone
	r.Email = model.Email
	r.Address = model.Address
	r.Description = model.Description
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

func NewProviderResponse(model model.Provider) (res ProviderResponse) {
	res.FromModel(model)

	return res
}

type CreateServiceTypeRequest struct {
	Name     string                `json:"name" validate:"required,max=255"`
	Icon     *multipart.FileHeader `json:"-"    swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/svg+xml,maxfilesize=1"`
	IconFile multipart.File        `json:"-"`
}

func (c *CreateServiceTypeRequest) ToModel(user, icon string) model.ServiceType {
	return model.ServiceType{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Icon:     icon,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateServiceTypeRequest struct {
	Name     string                `db:"name" json:"name" validate:"omitempty,max=255"`
	IconURL  string                `db:"icon" json:"-"`
	Icon     *multipart.FileHeader `json:"-"  swaggerignore:"true" validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/svg+xml,maxfilesize=1"`
	IconFile multipart.File        `json:"-"`
}

type ServiceTypeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
	gDto.Metadata
}

func (r *ServiceTypeResponse) FromModel(model model.ServiceType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Icon = model.Icon
	r.Metadata.FromModel(model.Metadata)
}

func NewServiceTypeResponse(model model.ServiceType) (res ServiceTypeResponse) {
	res.FromModel(model)

	return res
}

type CreateServiceRequest struct {
	ProviderID    string  `json:"provider_id"     validate:"required,uuid"`
	ServiceTypeID string  `json:"service_type_id" validate:"required,uuid"`
	Name          string  `json:"name"            validate:"required,max=255"`
	Price         float64 `json:"price"           validate:"gte=0"`
	Unit          string  `json:"unit"            validate:"omitempty,max=64"`
	Description   string  `json:"description"     validate:"omitempty"`
}

func (c *CreateServiceRequest) ToModel(user string) model.Service {
	return model.Service{
		ID:            uuid.NewString(),
		ProviderID:    c.ProviderID,
		ServiceTypeID: c.ServiceTypeID,
		Name:          c.Name,
		Price:         c.Price,
		Unit:          c.Unit,
		Description:   c.Description,
		Metadata:      gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateServiceRequest struct {
	ProviderID    string   `db:"provider_id"     json:"provider_id"     validate:"omitempty,uuid"`
	ServiceTypeID string   `db:"service_type_id" json:"service_type_id" validate:"omitempty,uuid"`
	Name          string   `db:"name"            json:"name"            validate:"omitempty,max=255"`
	Price         *float64 `db:"price"           json:"price"           validate:"omitempty,gte=0"`
	Unit          *string  `db:"unit"            json:"unit"            validate:"omitempty,max=64"`
	Description   *string  `db:"description"     json:"description"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	ProviderID      string  `json:"provider_id"`
	ProviderName    *string `json:"provider_name"`
	ServiceTypeID   string  `json:"service_type_id"`
	ServiceTypeName *string `json:"service_type_name"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	Unit            string  `json:"unit"`
	Description     string  `json:"description"`
	gDto.Metadata
}

func (r *ServiceResponse) FromModel(model model.Service) {
	r.ID = model.ID
	r.ProviderID = model.ProviderID
	r.ProviderName = model.ProviderName
	r.ServiceTypeID = model.ServiceTypeID
	r.ServiceTypeName = model.ServiceTypeName
	r.Name = model.Name
	r.Price = model.Price
	r.Unit = model.Unit
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

func NewServiceResponse(model model.Service) (res ServiceResponse) {
	res.FromModel(model)

	return res
}

type CreateServiceAttributeRequest struct {
	ServiceID string   `json:"service_id" validate:"required,uuid"`
	Name      string   `json:"name"       validate:"required,max=255"`
	Value     string   `json:"value"      validate:"omitempty,max=255"`
	Price     *float64 `json:"price"      validate:"omitempty,gte=0"`
	Unit      string   `json:"unit"       validate:"omitempty,max=64"`
}

func (c *CreateServiceAttributeRequest) ToModel(user string) model.ServiceAttribute {
	return model.ServiceAttribute{
		ID:        uuid.NewString(),
		ServiceID: c.ServiceID,
		Name:      c.Name,
		Value:     c.Value,
		Price:     c.Price,
		Unit:      c.Unit,
		Metadata:  gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateServiceAttributeRequest struct {
	ServiceID string   `db:"service_id" json:"service_id" validate:"omitempty,uuid"`
	Name      string   `db:"name"       json:"name"       validate:"omitempty,max=255"`
	Value     *string  `db:"value"      json:"value"      validate:"omitempty,max=255"`
	Price     *float64 `db:"price"      json:"price"      validate:"omitempty,gte=0"`
	Unit      *string  `db:"unit"       json:"unit"       validate:"omitempty,max=64"`
}

type ServiceAttributeResponse struct {
	ID          string   `json:"id"`
	ServiceID   string   `json:"service_id"`
	ServiceName *string  `json:"service_name"`
	Name        string   `json:"name"`
	Value       string   `json:"value"`
	Price       *float64 `json:"price"`
	Unit        string   `json:"unit"`
	gDto.Metadata
}

func (r *ServiceAttributeResponse) FromModel(model model.ServiceAttribute) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.ServiceName = model.ServiceName
	r.Name = model.Name
	r.Value = model.Value
	r.Price = model.Price
	r.Unit = model.Unit
	r.Metadata.FromModel(model.Metadata)
}

func NewServiceAttributeResponse(model model.ServiceAttribute) (res ServiceAttributeResponse) {
	res.FromModel(model)

	return res
}
