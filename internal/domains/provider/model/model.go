package model

import "tourdesk/shared/model"

const (
	TableProvider         = "providers"
	TableServiceType      = "service_types"
	TableService          = "services"
	TableServiceAttribute = "service_attributes"

	EntityProvider         = "provider"
	EntityServiceType      = "service_type"
	EntityService          = "service"
	EntityServiceAttribute = "service_attribute"

	FieldID            = "id"
	FieldName          = "name"
	FieldIsActive      = "is_active"
	FieldProviderID    = "provider_id"
	FieldServiceTypeID = "service_type_id"
	FieldServiceID     = "service_id"

	IconDirectory = "service_type"
)

type Provider struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Phone       string `db:"phone"`
	Email       string `db:"email"`
	Address     string `db:"address"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

type ServiceType struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Icon string `db:"icon"`
	model.Metadata
}

type Service struct {
	ID              string  `db:"id"`
	ProviderID      string  `db:"provider_id"`
	ProviderName    *string `db:"provider_name"     table:"providers"     column:"name"`
	ServiceTypeID   string  `db:"service_type_id"`
	ServiceTypeName *string `db:"service_type_name" table:"service_types" column:"name"`
	Name            string  `db:"name"`
	Price           float64 `db:"price"`
	Unit            string  `db:"unit"`
	Description     string  `db:"description"`
	model.Metadata
}

func (Service) GetJoinQuery() string {
	return `LEFT JOIN providers ON providers.id = services.provider_id
		LEFT JOIN service_types ON service_types.id = services.service_type_id`
}

type ServiceAttribute struct {
	ID          string   `db:"id"`
	ServiceID   string   `db:"service_id"`
	ServiceName *string  `db:"service_name" table:"services" column:"name"`
	Name        string   `db:"name"`
	Value       string   `db:"value"`
	Price       *float64 `db:"price"`
	Unit        string   `db:"unit"`
	model.Metadata
}

func (ServiceAttribute) GetJoinQuery() string {
	return "LEFT JOIN services ON services.id = service_attributes.service_id"
}
