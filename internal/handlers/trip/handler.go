package trip

import (
	"net/http"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/internal/domains/trip/model/dto"
	"tourdesk/internal/domains/trip/service"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	assignment service.TripAssignment
	checkIn    service.TripCheckIn
	otel       otel.Otel
}

func New(assignment service.TripAssignment, checkIn service.TripCheckIn, otel otel.Otel) Handler {
	return Handler{
		assignment: assignment,
		checkIn:    checkIn,
		otel:       otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trip-assignments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTripAssignment)
		routerGroup.Get("/", handler.GetTripAssignments)
		routerGroup.Get("/{id}", handler.GetTripAssignmentByID)
		routerGroup.Patch("/{id}", handler.UpdateTripAssignment)
		routerGroup.Delete("/{id}", handler.DeleteTripAssignment)
	})

	router.Route("/trip-check-ins", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTripCheckIn)
		routerGroup.Get("/", handler.GetTripCheckIns)
		routerGroup.Get("/{id}", handler.GetTripCheckInByID)
		routerGroup.Patch("/{id}", handler.UpdateTripCheckIn)
		routerGroup.Delete("/{id}", handler.DeleteTripCheckIn)
		routerGroup.Patch("/{id}/details/{childID}", handler.UpdateCheckInDetail)
	})
}

// CreateTripAssignment handles the creation of a new trip assignment.
// @Summary Create a new trip assignment
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body dto.CreateTripAssignmentRequest true "Create Trip assignment Request"
// @Success 201 {object} response.Message "Trip assignment created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-assignments [post]
// @Security BearerAuth
func (handler *Handler) CreateTripAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTripAssignment")
	defer scope.End()

	req := dto.CreateTripAssignmentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.assignment.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create trip assignment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Trip assignment created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Trip assignment created successfully")
}

// GetTripAssignments retrieves trip assignment records.
// @Summary Get all trip assignment records
// @Tags Trip
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param user_id query string false "Filter by guide"
// @Param tour_instance_id query string false "Filter by tour instance"
// @Param status query integer false "Filter by status"
// @Success 200 {object} response.Data[gDto.Page[dto.TripAssignmentResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/trip-assignments [get]
// @Security BearerAuth
func (handler *Handler) GetTripAssignments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripAssignments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldUserID), Table: model.TableTripAssignment})
	filterGroup.Add(gDto.Filter{Field: model.FieldTourInstanceID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldTourInstanceID), Table: model.TableTripAssignment})
	filterGroup.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToIntPtr(query.Get(model.FieldStatus)), Table: model.TableTripAssignment})

	items, err := handler.assignment.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip assignment list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetTripAssignmentByID retrieves a trip assignment by its ID.
// @Summary Get a trip assignment by ID
// @Tags Trip
// @Produce json
// @Param id path string true "Trip assignment ID"
// @Success 200 {object} response.Data[dto.TripAssignmentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-assignments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTripAssignmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripAssignmentByID")
	defer scope.End()

	item, err := handler.assignment.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip assignment by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateTripAssignment updates a trip assignment.
// @Summary Update a trip assignment by ID
// @Tags Trip
// @Accept json
// @Produce json
// @Param id path string true "Trip assignment ID"
// @Param request body dto.UpdateTripAssignmentRequest true "Update Trip assignment Request"
// @Success 200 {object} response.Message "Trip assignment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-assignments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTripAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTripAssignment")
	defer scope.End()

	req := dto.UpdateTripAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.assignment.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update trip assignment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Trip assignment updated successfully")
}

// DeleteTripAssignment deletes a trip assignment.
// @Summary Delete a trip assignment by ID
// @Tags Trip
// @Produce json
// @Param id path string true "Trip assignment ID"
// @Success 200 {object} response.Message "Trip assignment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-assignments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTripAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTripAssignment")
	defer scope.End()

	if err := handler.assignment.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete trip assignment")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Trip assignment deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Trip assignment deleted successfully")
}

// CreateTripCheckIn records a roll call for an assignment.
// @Summary Create a trip check-in
// @Description Without details every passenger on the live bookings of the instance is listed as absent.
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body dto.CreateTripCheckInRequest true "Create Trip Check-in Request"
// @Success 201 {object} response.Data[dto.TripCheckInResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins [post]
// @Security BearerAuth
func (handler *Handler) CreateTripCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTripCheckIn")
	defer scope.End()

	req := dto.CreateTripCheckInRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	checkIn, err := handler.checkIn.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create trip check-in")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, checkIn)
}

// GetTripCheckIns retrieves trip check-in records.
// @Summary Get all trip check-in records
// @Tags Trip
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param trip_assignment_id query string false "Filter by assignment"
// @Success 200 {object} response.Data[gDto.Page[dto.TripCheckInResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins [get]
// @Security BearerAuth
func (handler *Handler) GetTripCheckIns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripCheckIns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldTripAssignmentID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldTripAssignmentID), Table: model.TableTripCheckIn})

	items, err := handler.checkIn.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip check-in list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, items)
}

// GetTripCheckInByID retrieves a trip check-in by its ID.
// @Summary Get a trip check-in by ID
// @Tags Trip
// @Produce json
// @Param id path string true "Trip check-in ID"
// @Success 200 {object} response.Data[dto.TripCheckInResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTripCheckInByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTripCheckInByID")
	defer scope.End()

	item, err := handler.checkIn.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trip check-in by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, item)
}

// UpdateTripCheckIn updates a trip check-in.
// @Summary Update a trip check-in by ID
// @Tags Trip
// @Accept json
// @Produce json
// @Param id path string true "Trip check-in ID"
// @Param request body dto.UpdateTripCheckInRequest true "Update Trip check-in Request"
// @Success 200 {object} response.Message "Trip check-in updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTripCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTripCheckIn")
	defer scope.End()

	req := dto.UpdateTripCheckInRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.checkIn.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update trip check-in")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Trip check-in updated successfully")
}

// DeleteTripCheckIn deletes a trip check-in.
// @Summary Delete a trip check-in by ID
// @Tags Trip
// @Produce json
// @Param id path string true "Trip check-in ID"
// @Success 200 {object} response.Message "Trip check-in deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTripCheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTripCheckIn")
	defer scope.End()

	if err := handler.checkIn.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete trip check-in")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Trip check-in deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Trip check-in deleted successfully")
}

// UpdateCheckInDetail marks a passenger present or absent.
// @Summary Update a check-in detail
// @Tags Trip
// @Accept json
// @Produce json
// @Param id path string true "Trip check-in ID"
// @Param childID path string true "Check-in detail ID"
// @Param request body dto.UpdateCheckInDetailRequest true "Update Check-in Detail Request"
// @Success 200 {object} response.Message "Check-in detail updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trip-check-ins/{id}/details/{childID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCheckInDetail(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCheckInDetail")
	defer scope.End()

	req := dto.UpdateCheckInDetailRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.checkIn.UpdateDetail(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update check-in detail")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Check-in detail updated successfully")
}
