package tour

import (
	"net/http"
	"tourdesk/infras/otel"
	documentService "tourdesk/internal/domains/document/service"
	"tourdesk/internal/domains/tour/model"
	"tourdesk/internal/domains/tour/model/dto"
	"tourdesk/internal/domains/tour/service"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/form"
	"tourdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldThumbnail = "thumbnail"

	queryDepartureFrom = "departure_from"
	queryDepartureTo   = "departure_to"
)

type Handler struct {
	template service.TourTemplate
	instance service.TourInstance
	document documentService.Document
	otel     otel.Otel
}

func New(template service.TourTemplate, instance service.TourInstance, document documentService.Document, otel otel.Otel) Handler {
	return Handler{
		template: template,
		instance: instance,
		document: document,
		otel:     otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tour-templates", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTourTemplate)
		routerGroup.Get("/", handler.GetTourTemplates)
		routerGroup.Get("/{id}", handler.GetTourTemplateByID)
		routerGroup.Patch("/{id}", handler.UpdateTourTemplate)
		routerGroup.Delete("/{id}", handler.DeleteTourTemplate)
	})

	router.Route("/tour-instances", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTourInstance)
		routerGroup.Get("/", handler.GetTourInstances)
		routerGroup.Get("/{id}", handler.GetTourInstanceByID)
		routerGroup.Get("/{id}/manifest", handler.GetManifest)
		routerGroup.Patch("/{id}", handler.UpdateTourInstance)
		routerGroup.Delete("/{id}", handler.DeleteTourInstance)
	})
}

// CreateTourTemplate handles the creation of a tour template.
// @Summary Create a new tour template
// @Description Create a reusable tour template. The code is generated when omitted.
// @Tags Tour
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param code formData string false "Code"
// @Param destination_id formData string false "Destination ID"
// @Param description formData string false "Description"
// @Param day formData integer false "Days"
// @Param night formData integer false "Nights"
// @Param price_adult formData number false "Adult price"
// @Param price_children formData number false "Children price"
// @Param is_active formData boolean false "Active"
// @Param thumbnail formData file false "Thumbnail (png/jpg, max 2MB)"
// @Success 201 {object} response.Message "Tour template created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-templates [post]
// @Security BearerAuth
func (handler *Handler) CreateTourTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTourTemplate")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreateTourTemplateRequest{
		DestinationID: values.String(model.FieldDestinationID),
		Code:          values.String(model.FieldCode),
		Title:         values.String(model.FieldTitle),
		Description:   values.String("description"),
		Day:           values.Int("day"),
		Night:         values.Int("night"),
		PriceAdult:    values.FloatPtr("price_adult"),
		PriceChildren: values.FloatPtr("price_children"),
		IsActive:      values.BoolPtr(model.FieldIsActive),
	}

	file, header, err := values.File(formFieldThumbnail)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Thumbnail, req.ThumbnailFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.template.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour template")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour template created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour template created successfully")
}

// GetTourTemplates retrieves tour templates.
// @Summary Get all tour templates
// @Tags Tour
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param title query string false "Filter by title"
// @Param destination_id query string false "Filter by destination"
// @Param is_active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[gDto.Page[dto.TourTemplateResponse]] "List of tour templates"
// @Failure 500 {object} response.Error
// @Router /v1/tour-templates [get]
// @Security BearerAuth
func (handler *Handler) GetTourTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourTemplates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldTitle, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldTitle), Table: model.TableTourTemplate})
	filterGroup.Add(gDto.Filter{Field: model.FieldDestinationID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldDestinationID), Table: model.TableTourTemplate})
	filterGroup.Add(gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToBool(query.Get(model.FieldIsActive)), Table: model.TableTourTemplate})

	templates, err := handler.template.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour templates")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, templates)
}

// GetTourTemplateByID retrieves a tour template by its ID.
// @Summary Get a tour template by ID
// @Tags Tour
// @Produce json
// @Param id path string true "Tour template ID"
// @Success 200 {object} response.Data[dto.TourTemplateResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-templates/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTourTemplateByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourTemplateByID")
	defer scope.End()

	template, err := handler.template.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour template by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, template)
}

// UpdateTourTemplate updates a tour template.
// @Summary Update a tour template by ID
// @Tags Tour
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Tour template ID"
// @Param title formData string false "Title"
// @Param code formData string false "Code"
// @Param destination_id formData string false "Destination ID"
// @Param description formData string false "Description"
// @Param day formData integer false "Days"
// @Param night formData integer false "Nights"
// @Param price_adult formData number false "Adult price"
// @Param price_children formData number false "Children price"
// @Param is_active formData boolean false "Active"
// @Param thumbnail formData file false "Thumbnail (png/jpg, max 2MB)"
// @Success 200 {object} response.Message "Tour template updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-templates/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTourTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTourTemplate")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.UpdateTourTemplateRequest{
		DestinationID: values.String(model.FieldDestinationID),
		Code:          values.String(model.FieldCode),
		Title:         values.String(model.FieldTitle),
		Description:   values.StringPtr("description"),
		Day:           values.IntPtr("day"),
		Night:         values.IntPtr("night"),
		PriceAdult:    values.FloatPtr("price_adult"),
		PriceChildren: values.FloatPtr("price_children"),
		IsActive:      values.BoolPtr(model.FieldIsActive),
	}

	file, header, err := values.File(formFieldThumbnail)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Thumbnail, req.ThumbnailFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.template.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour template")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tour template updated successfully")
}

// DeleteTourTemplate deletes a tour template.
// @Summary Delete a tour template by ID
// @Tags Tour
// @Produce json
// @Param id path string true "Tour template ID"
// @Success 200 {object} response.Message "Tour template deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-templates/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTourTemplate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTourTemplate")
	defer scope.End()

	if err := handler.template.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour template")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour template deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour template deleted successfully")
}

// CreateTourInstance schedules a departure of a tour template.
// @Summary Create a new tour instance
// @Tags Tour
// @Accept json
// @Produce json
// @Param request body dto.CreateTourInstanceRequest true "Create Tour Instance Request"
// @Success 201 {object} response.Message "Tour instance created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances [post]
// @Security BearerAuth
func (handler *Handler) CreateTourInstance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTourInstance")
	defer scope.End()

	req := dto.CreateTourInstanceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.instance.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create tour instance")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour instance created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Tour instance created successfully")
}

// GetTourInstances retrieves tour instances.
// @Summary Get all tour instances
// @Tags Tour
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param tour_template_id query string false "Filter by tour template"
// @Param status query integer false "Filter by status"
// @Param departure_from query string false "Departure on or after (YYYY-MM-DD)"
// @Param departure_to query string false "Departure on or before (YYYY-MM-DD)"
// @Success 200 {object} response.Data[gDto.Page[dto.TourInstanceResponse]] "List of tour instances"
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances [get]
// @Security BearerAuth
func (handler *Handler) GetTourInstances(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourInstances")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldTourTemplateID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldTourTemplateID), Table: model.TableTourInstance})
	filterGroup.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToIntPtr(query.Get(model.FieldStatus)), Table: model.TableTourInstance})
	filterGroup.Add(gDto.Filter{
		ArgName:  queryDepartureFrom,
		Field:    model.FieldDepartureDate,
		Operator: gDto.FilterOperatorGreaterEq,
		Value:    query.Get(queryDepartureFrom),
		Table:    model.TableTourInstance,
	})
	filterGroup.Add(gDto.Filter{
		ArgName:  queryDepartureTo,
		Field:    model.FieldDepartureDate,
		Operator: gDto.FilterOperatorLessEq,
		Value:    query.Get(queryDepartureTo),
		Table:    model.TableTourInstance,
	})

	instances, err := handler.instance.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour instances")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, instances)
}

// GetTourInstanceByID retrieves a tour instance with its derived capacity and prices.
// @Summary Get a tour instance by ID
// @Tags Tour
// @Produce json
// @Param id path string true "Tour instance ID"
// @Success 200 {object} response.Data[dto.TourInstanceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTourInstanceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTourInstanceByID")
	defer scope.End()

	instance, err := handler.instance.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tour instance by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, instance)
}

// GetManifest renders the passenger manifest of a tour instance.
// @Summary Download the passenger manifest
// @Tags Tour
// @Produce application/pdf
// @Param id path string true "Tour instance ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances/{id}/manifest [get]
// @Security BearerAuth
func (handler *Handler) GetManifest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetManifest")
	defer scope.End()

	file, err := handler.document.Manifest(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render manifest")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.ContentType, file.Name, file.Content)
}

// UpdateTourInstance updates a tour instance.
// @Summary Update a tour instance by ID
// @Description The limit may not drop below the seats already booked.
// @Tags Tour
// @Accept json
// @Produce json
// @Param id path string true "Tour instance ID"
// @Param request body dto.UpdateTourInstanceRequest true "Update Tour Instance Request"
// @Success 200 {object} response.Message "Tour instance updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTourInstance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTourInstance")
	defer scope.End()

	req := dto.UpdateTourInstanceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.instance.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update tour instance")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Tour instance updated successfully")
}

// DeleteTourInstance deletes a tour instance.
// @Summary Delete a tour instance by ID
// @Tags Tour
// @Produce json
// @Param id path string true "Tour instance ID"
// @Success 200 {object} response.Message "Tour instance deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tour-instances/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTourInstance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTourInstance")
	defer scope.End()

	if err := handler.instance.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete tour instance")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Tour instance deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Tour instance deleted successfully")
}
