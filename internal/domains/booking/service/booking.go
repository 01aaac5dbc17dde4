package service

//go:generate go run go.uber.org/mock/mockgen -source=./booking.go -destination=./mocks/booking_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/repository"
	tourModel "tourdesk/internal/domains/tour/model"
	tourRepo "tourdesk/internal/domains/tour/repository"
	tourService "tourdesk/internal/domains/tour/service"
	"tourdesk/internal/events"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/code"
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

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.BookingResponse], error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	UpdateStatus(ctx context.Context, status model.BookingStatus, id string) error
	Delete(ctx context.Context, id string) error
}

type bookingImpl struct {
	crud.Service[model.Booking, dto.BookingResponse]
	repo       repository.Booking
	passengers repository.Passenger
	payments   repository.Payment
	instances  tourRepo.TourInstance
	tours      tourService.TourInstance
	tx         postgres.Transactor
	publisher  events.Publisher
	cache      cache.RedisCache
	otel       otel.Otel
}

func NewBooking(
	repo repository.Booking,
	passengers repository.Passenger,
	payments repository.Payment,
	instances tourRepo.TourInstance,
	tours tourService.TourInstance,
	tx postgres.Transactor,
	publisher events.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Booking {
	def := crud.Definition[model.Booking, dto.BookingResponse]{
		Entity:     model.EntityBooking,
		Table:      model.TableBooking,
		FieldID:    model.FieldID,
		IDOf:       func(b model.Booking) string { return b.ID },
		ToResponse: dto.NewBookingResponse,
	}

	return &bookingImpl{
		Service:    crud.New(def, repo, cfg, cache, otel),
		repo:       repo,
		passengers: passengers,
		payments:   payments,
		instances:  instances,
		tours:      tours,
		tx:         tx,
		publisher:  publisher,
		cache:      cache,
		otel:       otel,
	}
}

func quote(instance tourModel.TourInstance, adults, children int, override *float64) (float64, error) {
	if override != nil {
		return *override, nil
	}

	total, ok := instance.Quote(adults, children)
	if !ok {
		return 0, ErrNoPrice
	}

	return total, nil
}

func (s *bookingImpl) lockInstance(ctx context.Context, tx *sqlx.Tx, id string) (tourModel.TourInstance, error) {
	instance, err := s.instances.GetForUpdateTx(ctx, tx, shared.FilterByID(id, tourModel.FieldID, tourModel.TableTourInstance))
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", id).Msg("failed to lock tour instance")

		return instance, err
	}

	if instance.ID == constant.Empty {
		return instance, ErrInstanceNotFound
	}

	return instance, nil
}

// lockBooking reads the booking row under FOR UPDATE.
func lockBooking(ctx context.Context, repo repository.Booking, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := repo.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableBooking))
	if err != nil {
		log.Error().Err(err).Str("booking_id", id).Msg("failed to lock booking")

		return booking, err
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound("booking not found")
	}

	return booking, nil
}

func (s *bookingImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	seats := req.CountAdult + req.CountChildren

	var booking model.Booking

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		instance, err := s.lockInstance(ctx, tx, req.TourInstanceID)
		if err != nil {
			return err
		}

		if instance.Status != tourModel.TourInstanceOpen {
			return ErrInstanceNotOpen
		}

		if !instance.HasCapacity(seats) {
			return ErrInstanceFull
		}

		finalPrice, err := quote(instance, req.CountAdult, req.CountChildren, req.FinalPrice)
		if err != nil {
			return err
		}

		booking = req.ToModel(user, code.Booking(timezone.Now()), finalPrice)

		if err = s.repo.InsertTx(ctx, tx, booking); err != nil {
			return err
		}

		passengers := model.BalancePassengers(req.PassengerModels(user, booking.ID), req.CountAdult, req.CountChildren)
		if err = s.passengers.InsertBulkTx(ctx, tx, stampNew(passengers, user, booking.ID)); err != nil {
			return err
		}

		return s.instances.AdjustBookedCountTx(ctx, tx, instance.ID, seats)
	})
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", req.TourInstanceID).Msg("failed to create booking")

		return res, err
	}

	s.invalidate(ctx, booking.ID, booking.TourInstanceID)
	s.publish(ctx, events.TypeBookingCreated, booking)

	res.FromModel(booking)

	return res, nil
}

func (s *bookingImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(req, user)
	if len(fields) < crud.MinUpdateFields {
		return crud.ErrNoFieldsToUpdate
	}

	var current model.Booking

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err = lockBooking(ctx, s.repo, tx, id)
		if err != nil {
			return err
		}

		adults, children := req.Counts(current)
		countsChanged := adults != current.CountAdult || children != current.CountChildren

		if !countsChanged && req.FinalPrice == nil {
			return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableBooking))
		}

		finalPrice := current.FinalPrice

		if countsChanged {
			if current.Status != model.BookingPending && current.Status != model.BookingConfirmed {
				return ErrBookingClosed
			}

			instance, err := s.lockInstance(ctx, tx, current.TourInstanceID)
			if err != nil {
				return err
			}

			delta := adults + children - current.Seats()
			if delta > 0 && !instance.HasCapacity(delta) {
				return ErrInstanceFull
			}

			if finalPrice, err = quote(instance, adults, children, req.FinalPrice); err != nil {
				return err
			}

			if err = s.rebalance(ctx, tx, user, id, adults, children); err != nil {
				return err
			}

			if delta != 0 {
				if err = s.instances.AdjustBookedCountTx(ctx, tx, instance.ID, delta); err != nil {
					return err
				}
			}
		} else {
			finalPrice = *req.FinalPrice
		}

		payments, err := s.payments.GetAllTx(ctx, tx, gDto.QueryParams{}, shared.FilterByField(model.FieldBookingID, id, model.TablePayment))
		if err != nil {
			return err
		}

		fields[model.FieldFinalPrice] = finalPrice
		fields[model.FieldLeftPayment] = finalPrice - model.PaidTotal(payments, constant.Empty)

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableBooking))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update booking")

		return err
	}

	s.invalidate(ctx, id, current.TourInstanceID)
	s.publish(ctx, events.TypeBookingUpdated, current)

	return nil
}

// rebalance resizes the passenger list of a booking to the new counts.
func (s *bookingImpl) rebalance(ctx context.Context, tx *sqlx.Tx, user, bookingID string, adults, children int) error {
	params := gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}

	before, err := s.passengers.GetAllTx(ctx, tx, params, shared.FilterByField(model.FieldBookingID, bookingID, model.TablePassenger))
	if err != nil {
		return err
	}

	after := model.BalancePassengers(before, adults, children)

	kept := map[string]model.Passenger{}
	for _, p := range after {
		if p.ID != constant.Empty {
			kept[p.ID] = p
		}
	}

	dropped := []string{}

	for _, p := range before {
		next, ok := kept[p.ID]
		if !ok {
			dropped = append(dropped, p.ID)

			continue
		}

		if next.Type == p.Type && next.Position == p.Position {
			continue
		}

		changes := map[string]any{
			model.FieldType:          next.Type,
			model.FieldPosition:      next.Position,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}
		if err = s.passengers.UpdateTx(ctx, tx, changes, shared.FilterByID(p.ID, model.FieldID, model.TablePassenger)); err != nil {
			return err
		}
	}

	if len(dropped) > 0 {
		filter := gDto.FilterGroup{
			Filters: []any{gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorIn, Value: dropped, Table: model.TablePassenger}},
		}
		if err = s.passengers.DeleteTx(ctx, tx, filter); err != nil {
			return err
		}
	}

	added := []model.Passenger{}

	for _, p := range after {
		if p.ID == constant.Empty {
			added = append(added, p)
		}
	}

	return s.passengers.InsertBulkTx(ctx, tx, stampNew(added, user, bookingID))
}

func (s *bookingImpl) UpdateStatus(ctx context.Context, status model.BookingStatus, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.UpdateStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var current model.Booking

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err = lockBooking(ctx, s.repo, tx, id)
		if err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}

		if status == model.BookingCancelled && current.HoldsSeats() {
			if err = s.instances.AdjustBookedCountTx(ctx, tx, current.TourInstanceID, -current.Seats()); err != nil {
				return err
			}
		}

		fields := map[string]any{
			model.FieldStatus:        status,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(id, model.FieldID, model.TableBooking))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to change booking status")

		return err
	}

	current.Status = status

	s.invalidate(ctx, id, current.TourInstanceID)
	s.publish(ctx, events.TypeBookingStatusChanged, current)

	return nil
}

func (s *bookingImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var current model.Booking

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err = lockBooking(ctx, s.repo, tx, id)
		if err != nil {
			return err
		}

		if current.HoldsSeats() {
			if err = s.instances.AdjustBookedCountTx(ctx, tx, current.TourInstanceID, -current.Seats()); err != nil {
				return err
			}
		}

		if err = s.passengers.DeleteTx(ctx, tx, shared.FilterByField(model.FieldBookingID, id, model.TablePassenger)); err != nil {
			return err
		}

		return s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableBooking))
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete booking")

		return err
	}

	s.invalidate(ctx, id, current.TourInstanceID)
	s.publish(ctx, events.TypeBookingDeleted, current)

	return nil
}

func (s *bookingImpl) invalidate(ctx context.Context, bookingID, instanceID string) {
	s.Invalidate(ctx, bookingID)
	s.tours.Invalidate(ctx, instanceID)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(model.EntityPassenger))
	}()
}

func (s *bookingImpl) publish(ctx context.Context, kind string, booking model.Booking) {
	s.publisher.Publish(ctx, events.BookingEvent{
		Type:           kind,
		BookingID:      booking.ID,
		TourInstanceID: booking.TourInstanceID,
		Status:         int(booking.Status),
		Seats:          booking.Seats(),
		OccurredAt:     timezone.Now(),
	})
}

// stampNew gives blank balancing rows an identity under the booking.
func stampNew(rows []model.Passenger, user, bookingID string) []model.Passenger {
	for i := range rows {
		if rows[i].ID != constant.Empty {
			continue
		}

		rows[i].ID = uuid.NewString()
		rows[i].BookingID = bookingID
		rows[i].Metadata = gModel.NewMetadata(user, timezone.Now())
	}

	return rows
}
