package booking

import (
	"encoding/json"
	"net/http"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/service"
	documentService "tourdesk/internal/domains/document/service"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/validator"
	"tourdesk/transport/http/form"
	"tourdesk/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	formFieldReceipt = "receipt"
	formFieldMapping = "mapping"
)

type Handler struct {
	booking   service.Booking
	passenger service.Passenger
	payment   service.Payment
	importer  service.Importer
	document  documentService.Document
	otel      otel.Otel
}

func New(
	booking service.Booking,
	passenger service.Passenger,
	payment service.Payment,
	importer service.Importer,
	document documentService.Document,
	otel otel.Otel,
) Handler {
	return Handler{
		booking:   booking,
		passenger: passenger,
		payment:   payment,
		importer:  importer,
		document:  document,
		otel:      otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/{id}", handler.GetBookingByID)
		routerGroup.Patch("/{id}", handler.UpdateBooking)
		routerGroup.Patch("/{id}/status", handler.UpdateBookingStatus)
		routerGroup.Get("/{id}/invoice", handler.GetInvoice)
		routerGroup.Delete("/{id}", handler.DeleteBooking)

		routerGroup.Route("/{id}/passengers", func(passengers chi.Router) {
			passengers.Post("/", handler.CreatePassenger)
			passengers.Get("/", handler.GetPassengers)
			passengers.Get("/{childID}", handler.GetPassengerByID)
			passengers.Patch("/{childID}", handler.UpdatePassenger)
			passengers.Delete("/{childID}", handler.DeletePassenger)
		})

		routerGroup.Route("/{id}/payments", func(payments chi.Router) {
			payments.Post("/", handler.CreatePayment)
			payments.Get("/", handler.GetPayments)
			payments.Get("/{childID}", handler.GetPaymentByID)
			payments.Patch("/{childID}", handler.UpdatePayment)
			payments.Delete("/{childID}", handler.DeletePayment)
		})
	})

	router.Post("/passenger-imports/preview", handler.PreviewImport)
}

// CreateBooking books seats on a tour instance.
// @Summary Create a new booking
// @Description Locks the tour instance, checks capacity, prices the booking and stores its passengers in one transaction.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse]
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error "Tour instance is full or not open"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.booking.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking " + booking.Code + " created by user " + user)

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetBookings retrieves bookings.
// @Summary Get all bookings
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param tour_instance_id query string false "Filter by tour instance"
// @Param status query integer false "Filter by status"
// @Param code query string false "Filter by code"
// @Param client_name query string false "Filter by client name"
// @Success 200 {object} response.Data[gDto.Page[dto.BookingResponse]] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query()

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldTourInstanceID, Operator: gDto.FilterOperatorEq, Value: query.Get(model.FieldTourInstanceID), Table: model.TableBooking})
	filterGroup.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToIntPtr(query.Get(model.FieldStatus)), Table: model.TableBooking})
	filterGroup.Add(gDto.Filter{Field: model.FieldCode, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldCode), Table: model.TableBooking})
	filterGroup.Add(gDto.Filter{Field: model.FieldClientName, Operator: gDto.FilterOperatorLike, Value: query.Get(model.FieldClientName), Table: model.TableBooking})

	bookings, err := handler.booking.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	booking, err := handler.booking.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// UpdateBooking updates contact fields and passenger counts of a booking.
// @Summary Update a booking by ID
// @Description Count changes re-check capacity, reprice the booking and rebalance its passengers.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Update Booking Request"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBooking")
	defer scope.End()

	req := dto.UpdateBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.booking.Update(ctx, req, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Booking updated successfully")
}

// UpdateBookingStatus moves a booking through its lifecycle.
// @Summary Change the status of a booking
// @Description pending -> confirmed|cancelled, confirmed -> completed|cancelled. Cancelling releases the seats.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingStatusRequest true "Update Booking Status Request"
// @Success 200 {object} response.Message "Booking status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBookingStatus")
	defer scope.End()

	req := dto.UpdateBookingStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.booking.UpdateStatus(ctx, *req.Status, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update booking status")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking moved to " + req.Status.String() + " by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking status updated successfully")
}

// GetInvoice renders the invoice of a booking.
// @Summary Download the booking invoice
// @Tags Booking
// @Produce application/pdf
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/invoice [get]
// @Security BearerAuth
func (handler *Handler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInvoice")
	defer scope.End()

	file, err := handler.document.Invoice(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render invoice")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.ContentType, file.Name, file.Content)
}

// DeleteBooking releases the seats of a booking and deletes it.
// @Summary Delete a booking by ID
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteBooking")
	defer scope.End()

	if err := handler.booking.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Booking deleted successfully")
}

// CreatePassenger adds a passenger to a booking whose list has a free slot.
// @Summary Add a passenger to a booking
// @Tags Passenger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.PassengerRequest true "Passenger Request"
// @Success 201 {object} response.Data[dto.PassengerResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/passengers [post]
// @Security BearerAuth
func (handler *Handler) CreatePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePassenger")
	defer scope.End()

	req := dto.PassengerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	passenger, err := handler.passenger.Create(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create passenger")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, passenger)
}

// GetPassengers lists the passengers of a booking in slot order.
// @Summary Get the passengers of a booking
// @Tags Passenger
// @Produce json
// @Param id path string true "Booking ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param fullname query string false "Filter by name"
// @Success 200 {object} response.Data[gDto.Page[dto.PassengerResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/passengers [get]
// @Security BearerAuth
func (handler *Handler) GetPassengers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPassengers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy, queryParams.SortDir = model.FieldPosition, gDto.SortDirAsc
	}

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: chi.URLParam(r, constant.RequestParamID), Table: model.TablePassenger})
	filterGroup.Add(gDto.Filter{Field: model.FieldFullname, Operator: gDto.FilterOperatorLike, Value: r.URL.Query().Get(model.FieldFullname), Table: model.TablePassenger})

	passengers, err := handler.passenger.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get passengers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, passengers)
}

// GetPassengerByID retrieves one passenger of a booking.
// @Summary Get a passenger of a booking
// @Tags Passenger
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Passenger ID"
// @Success 200 {object} response.Data[dto.PassengerResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/passengers/{childID} [get]
// @Security BearerAuth
func (handler *Handler) GetPassengerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPassengerByID")
	defer scope.End()

	passenger, err := handler.passenger.Get(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get passenger")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, passenger)
}

// UpdatePassenger edits a passenger of a booking.
// @Summary Update a passenger of a booking
// @Tags Passenger
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Passenger ID"
// @Param request body dto.UpdatePassengerRequest true "Update Passenger Request"
// @Success 200 {object} response.Message "Passenger updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/passengers/{childID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePassenger")
	defer scope.End()

	req := dto.UpdatePassengerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	err := handler.passenger.Update(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update passenger")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Passenger updated successfully")
}

// DeletePassenger clears a passenger slot of a booking.
// @Summary Delete a passenger of a booking
// @Tags Passenger
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Passenger ID"
// @Success 200 {object} response.Message "Passenger deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/passengers/{childID} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePassenger(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePassenger")
	defer scope.End()

	err := handler.passenger.Delete(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete passenger")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Passenger deleted successfully")
}

// CreatePayment records a payment against a booking.
// @Summary Record a payment
// @Description Recomputes the outstanding balance of the booking in the same transaction.
// @Tags Payment
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Booking ID"
// @Param amount formData number true "Amount"
// @Param method formData integer true "0 cash, 1 bank transfer, 2 card, 3 e-wallet"
// @Param status formData integer true "0 pending, 1 completed, 2 failed, 3 refunded"
// @Param date formData string false "Payment date (YYYY-MM-DD)"
// @Param note formData string false "Note"
// @Param receipt formData file false "Receipt (image or pdf, max 5MB)"
// @Success 201 {object} response.Data[dto.PaymentResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [post]
// @Security BearerAuth
func (handler *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePayment")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.CreatePaymentRequest{
		Method: model.PaymentMethod(values.Int(model.FieldMethod)),
		Status: model.PaymentStatus(values.Int(model.FieldStatus)),
		Date:   values.String("date"),
		Note:   values.String(model.FieldNote),
	}

	if amount := values.FloatPtr(model.FieldAmount); amount != nil {
		req.Amount = *amount
	}

	file, header, err := values.File(formFieldReceipt)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Receipt, req.ReceiptFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	payment, err := handler.payment.Create(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, payment)
}

// GetPayments lists the payments of a booking.
// @Summary Get the payments of a booking
// @Tags Payment
// @Produce json
// @Param id path string true "Booking ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query integer false "Filter by status"
// @Success 200 {object} response.Data[gDto.Page[dto.PaymentResponse]]
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments [get]
// @Security BearerAuth
func (handler *Handler) GetPayments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPayments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	filterGroup.Add(gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: chi.URLParam(r, constant.RequestParamID), Table: model.TablePayment})
	filterGroup.Add(gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: shared.ConvertStringToIntPtr(r.URL.Query().Get(model.FieldStatus)), Table: model.TablePayment})

	payments, err := handler.payment.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payments")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payments)
}

// GetPaymentByID retrieves one payment of a booking.
// @Summary Get a payment of a booking
// @Tags Payment
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Payment ID"
// @Success 200 {object} response.Data[dto.PaymentResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments/{childID} [get]
// @Security BearerAuth
func (handler *Handler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentByID")
	defer scope.End()

	payment, err := handler.payment.Get(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, payment)
}

// UpdatePayment edits a payment of a booking.
// @Summary Update a payment of a booking
// @Tags Payment
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Payment ID"
// @Param amount formData number false "Amount"
// @Param method formData integer false "Method"
// @Param status formData integer false "Status"
// @Param date formData string false "Payment date (YYYY-MM-DD)"
// @Param note formData string false "Note"
// @Param receipt formData file false "Receipt (image or pdf, max 5MB)"
// @Success 200 {object} response.Message "Payment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments/{childID} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePayment")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.UpdatePaymentRequest{
		Amount: values.FloatPtr(model.FieldAmount),
		Date:   values.String("date"),
		Note:   values.StringPtr(model.FieldNote),
	}

	if method := values.IntPtr(model.FieldMethod); method != nil {
		value := model.PaymentMethod(*method)
		req.Method = &value
	}

	if status := values.IntPtr(model.FieldStatus); status != nil {
		value := model.PaymentStatus(*status)
		req.Status = &value
	}

	file, header, err := values.File(formFieldReceipt)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.Receipt, req.ReceiptFile = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	err = handler.payment.Update(ctx, req, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update payment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment updated successfully")
}

// DeletePayment removes a payment and recomputes the balance.
// @Summary Delete a payment of a booking
// @Tags Payment
// @Produce json
// @Param id path string true "Booking ID"
// @Param childID path string true "Payment ID"
// @Success 200 {object} response.Message "Payment deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/payments/{childID} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePayment")
	defer scope.End()

	err := handler.payment.Delete(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete payment")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Payment deleted successfully")
}

// PreviewImport parses a passenger spreadsheet without storing anything.
// @Summary Preview a passenger Excel import
// @Description Detects the column mapping, derives passenger types from ages and counts adults and children.
// @Tags Passenger
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet (.xlsx)"
// @Param mapping formData string false "JSON object of field to column index, overrides detection"
// @Success 200 {object} response.Data[dto.ImportPreviewResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/passenger-imports/preview [post]
// @Security BearerAuth
func (handler *Handler) PreviewImport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PreviewImport")
	defer scope.End()

	values, err := form.Parse(r)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	req := dto.ImportPreviewRequest{}

	if raw := values.String(formFieldMapping); raw != constant.Empty {
		if err := json.Unmarshal([]byte(raw), &req.Mapping); err != nil {
			response.WithError(w, failure.BadRequestFromString("mapping must be a JSON object of column indexes"))

			return
		}
	}

	file, header, err := values.File(constant.FormFile)
	if err != nil {
		response.WithError(w, err)

		return
	}

	if file != nil {
		defer file.Close()

		req.File, req.FileData = header, file
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	preview, err := handler.importer.Preview(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to preview passenger import")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, preview)
}
