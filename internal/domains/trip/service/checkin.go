package service

//go:generate go run go.uber.org/mock/mockgen -source=./checkin.go -destination=./mocks/checkin_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	bookingModel "tourdesk/internal/domains/booking/model"
	bookingRepo "tourdesk/internal/domains/booking/repository"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/internal/domains/trip/model/dto"
	"tourdesk/internal/domains/trip/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type TripCheckIn interface {
	Create(ctx context.Context, req dto.CreateTripCheckInRequest) (dto.TripCheckInResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.TripCheckInResponse], error)
	Get(ctx context.Context, id string) (dto.TripCheckInResponse, error)
	Update(ctx context.Context, req dto.UpdateTripCheckInRequest, id string) error
	Delete(ctx context.Context, id string) error
	UpdateDetail(ctx context.Context, req dto.UpdateCheckInDetailRequest, checkInID, detailID string) error
}

type tripCheckInImpl struct {
	crud.Service[model.TripCheckIn, dto.TripCheckInResponse]
	repo        repository.TripCheckIn
	details     repository.CheckInDetail
	assignments repository.TripAssignment
	passengers  bookingRepo.Passenger
	tx          postgres.Transactor
	otel        otel.Otel
}

func NewTripCheckIn(
	repo repository.TripCheckIn,
	details repository.CheckInDetail,
	assignments repository.TripAssignment,
	passengers bookingRepo.Passenger,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) TripCheckIn {
	def := crud.Definition[model.TripCheckIn, dto.TripCheckInResponse]{
		Entity:     model.EntityTripCheckIn,
		Table:      model.TableTripCheckIn,
		FieldID:    model.FieldID,
		IDOf:       func(c model.TripCheckIn) string { return c.ID },
		ToResponse: dto.NewTripCheckInResponse,
	}

	return &tripCheckInImpl{
		Service:     crud.New(def, repo, cfg, cache, otel),
		repo:        repo,
		details:     details,
		assignments: assignments,
		passengers:  passengers,
		tx:          tx,
		otel:        otel,
	}
}

func (s *tripCheckInImpl) requireAssignment(ctx context.Context, id string) (model.TripAssignment, error) {
	assignment, err := s.assignments.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableTripAssignment))
	if err != nil {
		log.Error().Err(err).Str("trip_assignment_id", id).Msg("failed to get trip assignment")

		return assignment, err
	}

	if assignment.ID == constant.Empty {
		return assignment, ErrAssignmentNotFound
	}

	if assignment.Status == model.AssignmentCancelled {
		return assignment, ErrAssignmentCancelled
	}

	return assignment, nil
}

// travellers lists the passengers on the live bookings of an instance.
func (s *tripCheckInImpl) travellers(ctx context.Context, instanceID string) ([]bookingModel.Passenger, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: bookingModel.FieldTourInstanceID, Operator: gDto.FilterOperatorEq, Value: instanceID, Table: bookingModel.TableBooking},
			gDto.Filter{Field: bookingModel.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: bookingModel.BookingCancelled, Table: bookingModel.TableBooking},
		},
	}

	passengers, err := s.passengers.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", instanceID).Msg("failed to list passengers")

		return nil, err
	}

	return passengers, nil
}

func buildDetails(user, checkInID string, passengers []bookingModel.Passenger, requested []dto.CheckInDetailRequest) ([]model.CheckInDetail, error) {
	metadata := gModel.NewMetadata(user, timezone.Now())

	if len(requested) == 0 {
		details := make([]model.CheckInDetail, len(passengers))
		for i, p := range passengers {
			details[i] = model.CheckInDetail{
				ID:            uuid.NewString(),
				TripCheckInID: checkInID,
				PassengerID:   p.ID,
				Metadata:      metadata,
			}
		}

		return details, nil
	}

	known := make(map[string]bool, len(passengers))
	for _, p := range passengers {
		known[p.ID] = true
	}

	seen := make(map[string]bool, len(requested))
	details := make([]model.CheckInDetail, 0, len(requested))

	for _, r := range requested {
		if !known[r.PassengerID] {
			return nil, ErrUnknownPassenger
		}

		if seen[r.PassengerID] {
			return nil, ErrDuplicatePassenger
		}

		seen[r.PassengerID] = true

		details = append(details, model.CheckInDetail{
			ID:            uuid.NewString(),
			TripCheckInID: checkInID,
			PassengerID:   r.PassengerID,
			IsPresent:     r.IsPresent,
			Note:          r.Note,
			Metadata:      metadata,
		})
	}

	return details, nil
}

func (s *tripCheckInImpl) Create(ctx context.Context, req dto.CreateTripCheckInRequest) (res dto.TripCheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_check_in.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	assignment, err := s.requireAssignment(ctx, req.TripAssignmentID)
	if err != nil {
		return res, err
	}

	passengers, err := s.travellers(ctx, assignment.TourInstanceID)
	if err != nil {
		return res, err
	}

	checkIn := req.ToModel(user)

	details, err := buildDetails(user, checkIn.ID, passengers, req.Details)
	if err != nil {
		return res, err
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, checkIn); err != nil {
			return err
		}

		return s.details.InsertBulkTx(ctx, tx, details)
	})
	if err != nil {
		log.Error().Err(err).Str("trip_assignment_id", req.TripAssignmentID).Msg("failed to create check-in")

		return res, err
	}

	s.Invalidate(ctx)

	res.FromModel(checkIn)
	res.WithDetails(details)

	return res, nil
}

func (s *tripCheckInImpl) listDetails(ctx context.Context, checkInID string) ([]model.CheckInDetail, error) {
	details, err := s.details.GetAll(ctx, gDto.QueryParams{}, shared.FilterByField(model.FieldTripCheckInID, checkInID, model.TableCheckInDetail))
	if err != nil {
		log.Error().Err(err).Str("trip_check_in_id", checkInID).Msg("failed to list check-in details")

		return nil, err
	}

	return details, nil
}

// Get bypasses the cache and carries the details with the attendance summary.
func (s *tripCheckInImpl) Get(ctx context.Context, id string) (res dto.TripCheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_check_in.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	checkIn, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	details, err := s.listDetails(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(checkIn)
	res.WithDetails(details)

	return res, nil
}

func (s *tripCheckInImpl) Update(ctx context.Context, req dto.UpdateTripCheckInRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_check_in.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

func (s *tripCheckInImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_check_in.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.Find(ctx, id); err != nil {
		return err
	}

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.details.DeleteTx(ctx, tx, shared.FilterByField(model.FieldTripCheckInID, id, model.TableCheckInDetail)); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableTripCheckIn))
	})
	if err != nil {
		log.Error().Err(err).Str("trip_check_in_id", id).Msg("failed to delete check-in")

		return err
	}

	s.Invalidate(ctx, id)

	return nil
}

func (s *tripCheckInImpl) UpdateDetail(ctx context.Context, req dto.UpdateCheckInDetailRequest, checkInID, detailID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_check_in.UpdateDetail")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(req, user)
	if len(fields) < crud.MinUpdateFields {
		return crud.ErrNoFieldsToUpdate
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorEq, Value: detailID, Table: model.TableCheckInDetail},
			gDto.Filter{Field: model.FieldTripCheckInID, Operator: gDto.FilterOperatorEq, Value: checkInID, Table: model.TableCheckInDetail},
		},
	}

	exist, err := s.details.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("check_in_detail_id", detailID).Msg("failed to check check-in detail")

		return err
	}

	if !exist {
		return failure.NotFound(model.EntityCheckInDetail + " not found")
	}

	if err = s.details.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Str("check_in_detail_id", detailID).Msg("failed to update check-in detail")

		return err
	}

	return nil
}
