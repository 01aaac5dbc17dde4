package provider

import (
	"net/http"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/provider/model"
	"tourdesk/internal/domains/provider/model/dto"
	"tourdesk/internal/domains/provider/service"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/form"
	"tourdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const formFieldIcon = "icon"

type Handler struct {
	provider    service.Provider
	serviceType service.ServiceType
	service     service.Service
	attribute   service.ServiceAttribute
	otel        otel.Otel
}

func New(
	provider service.Provider,
	serviceType service.ServiceType,
	service service.Service,
	attribute service.ServiceAttribute,
	otel otel.Otel,
) Handler {
	return Handler{
		provider:    provider,
		serviceType: serviceType,
		service:     service,
		attribute:   attribute,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/providers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProvider)
		routerGroup.Get("/", handler.GetProviders)
		routerGroup.Get("/{id}", handler.GetProviderByID)
		routerGroup.Patch("/{id}", handler.UpdateProvider)
		routerGroup.Delete("/{id}", handler.DeleteProvider)
	})

	router.Route("/service-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceType)
		routerGroup.Get("/", handler.GetServiceTypes)
		routerGroup.Get("/{id}", handler.GetServiceTypeByID)
		routerGroup.Patch("/{id}", handler.UpdateServiceType)
		routerGroup.Delete("/{id}", handler.DeleteServiceType)
	})

	router.Route("/services", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateService)
		routerGroup.Get("/", handler.GetServices)
		routerGroup.Get("/{id}", handler.GetServiceByID)
		routerGroup.Patch("/{id}", handler.UpdateService)
		routerGroup.Delete("/{id}", handler.DeleteService)
	})

	router.Route("/service-attributes", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateServiceAttribute)
		routerGroup.Get("/", handler.GetServiceAttributes)
		routerGroup.Get("/{id}", handler.GetServiceAttributeByID)
		routerGroup.Patch("/{id}", handler.UpdateServiceAttribute)
		routerGroup.Delete("/{id}", handler.DeleteServiceAttribute)
	})
}

// CreateProvider handles the creation of a new provider.
// @Summary Create a new provider
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateProviderRequest true "Create Provider Request"
// @Success 201 {object} response.Message "Provider created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers [post]
// @Security BearerAuth
func (handler *Handler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProvider")
	defer scope.End()

	req := dto.CreateProviderRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.provider.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create provider")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Provider created successfully")
}

// GetProviders retrieves provider records.
// @Summary Get all provider records
// @Tags Provider
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[gDto.Page[dto.ProviderResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/providers [get]
// @Security BearerAuth
func (handler *Handler) GetProviders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableProvider})
	filterGroup.Add(gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToBool(query.Get(model.FieldIsActive)), Table: model.TableProvider})

	items, err := handler.provider.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetProviderByID retrieves a provider by its ID.
// @Summary Get a provider by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Data[dto.ProviderResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProviderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProviderByID")
	defer scope.End()

	item, err := handler.provider.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provider by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateProvider updates a provider.
// @Summary Update a provider by ID
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body dto.UpdateProviderRequest true "Update Provider Request"
// @Success 200 {object} response.Message "Provider updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProvider")
	defer scope.End()

	req := dto.UpdateProviderRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.provider.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update provider")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Provider updated successfully")
}

// DeleteProvider deletes a provider.
// @Summary Delete a provider by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.Message "Provider deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/providers/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProvider")
	defer scope.End()

	if err := handler.provider.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete provider")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Provider deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Provider deleted successfully")
}

// CreateServiceType handles the creation of a new service type.
// @Summary Create a new service type
// @Tags Provider
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Name"
// @Param icon formData file false "Icon (png/jpg/svg, max 1MB)"
// @Success 201 {object} response.Message "Service type created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-types [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceType")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateServiceTypeRequest{Name: values.String(model.FieldName)}

	file, header, err := values.File(formFieldIcon)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Icon, req.IconFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.serviceType.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service type created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service type created successfully")
}

// GetServiceTypes retrieves service type records.
// @Summary Get all service type records
// @Tags Provider
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[gDto.Page[dto.ServiceTypeResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/service-types [get]
// @Security BearerAuth
func (handler *Handler) GetServiceTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableServiceType})

	items, err := handler.serviceType.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service type list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetServiceTypeByID retrieves a service type by its ID.
// @Summary Get a service type by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service type ID"
// @Success 200 {object} response.Data[dto.ServiceTypeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-types/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceTypeByID")
	defer scope.End()

	item, err := handler.serviceType.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateServiceType renames a service type or replaces its icon.
// @Summary Update a service type by ID
// @Tags Provider
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Service type ID"
// @Param name formData string false "Name"
// @Param icon formData file false "Icon (png/jpg/svg, max 1MB)"
// @Success 200 {object} response.Message "Service type updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-types/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateServiceType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceType")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateServiceTypeRequest{Name: values.String(model.FieldName)}

	file, header, err := values.File(formFieldIcon)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Icon, req.IconFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.serviceType.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service type")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service type updated successfully")
}

// DeleteServiceType deletes a service type.
// @Summary Delete a service type by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service type ID"
// @Success 200 {object} response.Message "Service type deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-types/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteServiceType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceType")
	defer scope.End()

	if err := handler.serviceType.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service type")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service type deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service type deleted successfully")
}

// CreateService handles the creation of a new service.
// @Summary Create a new service
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Message "Service created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services [post]
// @Security BearerAuth
func (handler *Handler) CreateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateService")
	defer scope.End()

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service created successfully")
}

// GetServices retrieves service records.
// @Summary Get all service records
// @Tags Provider
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param provider_id query string false "Filter by provider"
// @Param service_type_id query string false "Filter by service type"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[gDto.Page[dto.ServiceResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/services [get]
// @Security BearerAuth
func (handler *Handler) GetServices(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServices")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldProviderID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldProviderID), Table: model.TableService})
	filterGroup.Add(gDto.Filter{Field: model.FieldServiceTypeID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldServiceTypeID), Table: model.TableService})
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableService})

	items, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetServiceByID retrieves a service by its ID.
// @Summary Get a service by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Data[dto.ServiceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceByID")
	defer scope.End()

	item, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateService updates a service.
// @Summary Update a service by ID
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	req := dto.UpdateServiceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService deletes a service.
// @Summary Delete a service by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// CreateServiceAttribute handles the creation of a new service attribute.
// @Summary Create a new service attribute
// @Tags Provider
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceAttributeRequest true "Create Service attribute Request"
// @Success 201 {object} response.Message "Service attribute created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-attributes [post]
// @Security BearerAuth
func (handler *Handler) CreateServiceAttribute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateServiceAttribute")
	defer scope.End()

	req := dto.CreateServiceAttributeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.attribute.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create service attribute")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service attribute created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Service attribute created successfully")
}

// GetServiceAttributes retrieves service attribute records.
// @Summary Get all service attribute records
// @Tags Provider
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param service_id query string false "Filter by service"
// @Success 200 {object} response.Data[gDto.Page[dto.ServiceAttributeResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/service-attributes [get]
// @Security BearerAuth
func (handler *Handler) GetServiceAttributes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceAttributes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldServiceID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldServiceID), Table: model.TableServiceAttribute})

	items, err := handler.attribute.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service attribute list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetServiceAttributeByID retrieves a service attribute by its ID.
// @Summary Get a service attribute by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service attribute ID"
// @Success 200 {object} response.Data[dto.ServiceAttributeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-attributes/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetServiceAttributeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetServiceAttributeByID")
	defer scope.End()

	item, err := handler.attribute.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get service attribute by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateServiceAttribute updates a service attribute.
// @Summary Update a service attribute by ID
// @Tags Provider
// @Accept json
// @Produce json
// @Param id path string true "Service attribute ID"
// @Param request body dto.UpdateServiceAttributeRequest true "Update Service attribute Request"
// @Success 200 {object} response.Message "Service attribute updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-attributes/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateServiceAttribute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateServiceAttribute")
	defer scope.End()

	req := dto.UpdateServiceAttributeRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.attribute.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service attribute")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Service attribute updated successfully")
}

// DeleteServiceAttribute deletes a service attribute.
// @Summary Delete a service attribute by ID
// @Tags Provider
// @Produce json
// @Param id path string true "Service attribute ID"
// @Success 200 {object} response.Message "Service attribute deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/service-attributes/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteServiceAttribute(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteServiceAttribute")
	defer scope.End()

	if err := handler.attribute.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service attribute")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Service attribute deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Service attribute deleted successfully")
}
