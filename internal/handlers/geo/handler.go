package geo

import (
	"net/http"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/geo/model"
	"tourdesk/internal/domains/geo/model/dto"
	"tourdesk/internal/domains/geo/service"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	country     service.Country
	province    service.Province
	destination service.Destination
	otel        otel.Otel
}

func New(country service.Country, province service.Province, destination service.Destination, otel otel.Otel) Handler {
	return Handler{
		country:     country,
		province:    province,
		destination: destination,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/countries", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCountry)
		routerGroup.Get("/", handler.GetCountries)
		routerGroup.Get("/{id}", handler.GetCountryByID)
		routerGroup.Patch("/{id}", handler.UpdateCountry)
		routerGroup.Delete("/{id}", handler.DeleteCountry)
	})

	router.Route("/provinces", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProvince)
		routerGroup.Get("/", handler.GetProvinces)
		routerGroup.Get("/{id}", handler.GetProvinceByID)
		routerGroup.Patch("/{id}", handler.UpdateProvince)
		routerGroup.Delete("/{id}", handler.DeleteProvince)
	})

	router.Route("/destinations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateDestination)
		routerGroup.Get("/", handler.GetDestinations)
		routerGroup.Get("/{id}", handler.GetDestinationByID)
		routerGroup.Patch("/{id}", handler.UpdateDestination)
		routerGroup.Delete("/{id}", handler.DeleteDestination)
	})
}

// CreateCountry handles the creation of a new country.
// @Summary Create a new country
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.CreateCountryRequest true "Create Country Request"
// @Success 201 {object} response.Message "Country created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/countries [post]
// @Security BearerAuth
func (handler *Handler) CreateCountry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCountry")
	defer scope.End()

	req := dto.CreateCountryRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.country.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create country")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Country created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Country created successfully")
}

// GetCountries retrieves countries.
// @Summary Get all countries
// @Tags Geo
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param code query string false "Filter by code"
// @Success 200 {object} response.Data[gDto.Page[dto.CountryResponse]] "List of countries"
// @Failure 500 {object} response.Error
// @Router /v1/countries [get]
// @Security BearerAuth
func (handler *Handler) GetCountries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCountries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableCountry})
	filterGroup.Add(gDto.Filter{Field: model.FieldCode, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldCode), Table: model.TableCountry})

	countries, err := handler.country.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get countries")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, countries)
}

// GetCountryByID retrieves a country by its ID.
// @Summary Get a country by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} response.Data[dto.CountryResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/countries/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetCountryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCountryByID")
	defer scope.End()

	country, err := handler.country.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get country by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, country)
}

// UpdateCountry updates a country.
// @Summary Update a country by ID
// @Tags Geo
// @Accept json
// @Produce json
// @Param id path string true "Country ID"
// @Param request body dto.UpdateCountryRequest true "Update Country Request"
// @Success 200 {object} response.Message "Country updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/countries/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCountry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCountry")
	defer scope.End()

	req := dto.UpdateCountryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.country.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update country")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Country updated successfully")
}

// DeleteCountry deletes a country.
// @Summary Delete a country by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Country ID"
// @Success 200 {object} response.Message "Country deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/countries/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCountry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCountry")
	defer scope.End()

	if err := handler.country.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete country")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Country deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Country deleted successfully")
}

// CreateProvince handles the creation of a new province.
// @Summary Create a new province
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.CreateProvinceRequest true "Create Province Request"
// @Success 201 {object} response.Message "Province created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/provinces [post]
// @Security BearerAuth
func (handler *Handler) CreateProvince(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProvince")
	defer scope.End()

	req := dto.CreateProvinceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.province.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create province")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Province created successfully")
}

// GetProvinces retrieves provinces.
// @Summary Get all provinces
// @Tags Geo
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param country_id query string false "Filter by country"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[gDto.Page[dto.ProvinceResponse]] "List of provinces"
// @Failure 500 {object} response.Error
// @Router /v1/provinces [get]
// @Security BearerAuth
func (handler *Handler) GetProvinces(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProvinces")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldCountryID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldCountryID), Table: model.TableProvince})
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableProvince})

	provinces, err := handler.province.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get provinces")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, provinces)
}

// GetProvinceByID retrieves a province by its ID.
// @Summary Get a province by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Province ID"
// @Success 200 {object} response.Data[dto.ProvinceResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/provinces/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetProvinceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProvinceByID")
	defer scope.End()

	province, err := handler.province.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get province by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, province)
}

// UpdateProvince updates a province.
// @Summary Update a province by ID
// @Tags Geo
// @Accept json
// @Produce json
// @Param id path string true "Province ID"
// @Param request body dto.UpdateProvinceRequest true "Update Province Request"
// @Success 200 {object} response.Message "Province updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/provinces/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateProvince(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProvince")
	defer scope.End()

	req := dto.UpdateProvinceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.province.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update province")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Province updated successfully")
}

// DeleteProvince deletes a province.
// @Summary Delete a province by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Province ID"
// @Success 200 {object} response.Message "Province deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/provinces/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteProvince(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProvince")
	defer scope.End()

	if err := handler.province.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete province")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Province deleted successfully")
}

// CreateDestination handles the creation of a new destination.
// @Summary Create a new destination
// @Tags Geo
// @Accept json
// @Produce json
// @Param request body dto.CreateDestinationRequest true "Create Destination Request"
// @Success 201 {object} response.Message "Destination created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations [post]
// @Security BearerAuth
func (handler *Handler) CreateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateDestination")
	defer scope.End()

	req := dto.CreateDestinationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.destination.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Destination created successfully")
}

// GetDestinations retrieves destinations.
// @Summary Get all destinations
// @Tags Geo
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param province_id query string false "Filter by province"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[gDto.Page[dto.DestinationResponse]] "List of destinations"
// @Failure 500 {object} response.Error
// @Router /v1/destinations [get]
// @Security BearerAuth
func (handler *Handler) GetDestinations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldProvinceID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldProvinceID), Table: model.TableDestination})
	filterGroup.Add(gDto.Filter{Field: model.FieldName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldName), Table: model.TableDestination})

	destinations, err := handler.destination.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destinations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destinations)
}

// GetDestinationByID retrieves a destination by its ID.
// @Summary Get a destination by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Data[dto.DestinationResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetDestinationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDestinationByID")
	defer scope.End()

	destination, err := handler.destination.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get destination by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, destination)
}

// UpdateDestination updates a destination.
// @Summary Update a destination by ID
// @Tags Geo
// @Accept json
// @Produce json
// @Param id path string true "Destination ID"
// @Param request body dto.UpdateDestinationRequest true "Update Destination Request"
// @Success 200 {object} response.Message "Destination updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateDestination")
	defer scope.End()

	req := dto.UpdateDestinationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.destination.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination updated successfully")
}

// DeleteDestination deletes a destination.
// @Summary Delete a destination by ID
// @Tags Geo
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} response.Message "Destination deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/destinations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteDestination(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteDestination")
	defer scope.End()

	if err := handler.destination.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete destination")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Destination deleted successfully")
}
