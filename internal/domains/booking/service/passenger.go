package service

//go:generate go run go.uber.org/mock/mockgen -source=./passenger.go -destination=./mocks/passenger_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/booking/model"
	"tourdesk/internal/domains/booking/model/dto"
	"tourdesk/internal/domains/booking/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
	"tourdesk/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Passenger interface {
	Create(ctx context.Context, bookingID string, req dto.PassengerRequest) (dto.PassengerResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.PassengerResponse], error)
	Get(ctx context.Context, bookingID, id string) (dto.PassengerResponse, error)
	Update(ctx context.Context, req dto.UpdatePassengerRequest, bookingID, id string) error
	Delete(ctx context.Context, bookingID, id string) error
}

type passengerImpl struct {
	crud.Service[model.Passenger, dto.PassengerResponse]
	repo     repository.Passenger
	bookings repository.Booking
	tx       postgres.Transactor
	otel     otel.Otel
}

func NewPassenger(
	repo repository.Passenger,
	bookings repository.Booking,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Passenger {
	def := crud.Definition[model.Passenger, dto.PassengerResponse]{
		Entity:     model.EntityPassenger,
		Table:      model.TablePassenger,
		FieldID:    model.FieldID,
		IDOf:       func(p model.Passenger) string { return p.ID },
		ToResponse: dto.NewPassengerResponse,
	}

	return &passengerImpl{
		Service:  crud.New(def, repo, cfg, cache, otel),
		repo:     repo,
		bookings: bookings,
		tx:       tx,
		otel:     otel,
	}
}

func (s *passengerImpl) find(ctx context.Context, bookingID, id string) (model.Passenger, error) {
	passenger, err := s.Find(ctx, id)
	if err != nil {
		return passenger, err
	}

	if passenger.BookingID != bookingID {
		return passenger, failure.NotFound(model.EntityPassenger + " not found")
	}

	return passenger, nil
}

// Create fills the first unnamed slot of the same kind. The slot count
// itself only moves through the booking counts.
func (s *passengerImpl) Create(ctx context.Context, bookingID string, req dto.PassengerRequest) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	var slot model.Passenger

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		booking, err := lockBooking(ctx, s.bookings, tx, bookingID)
		if err != nil {
			return err
		}

		if !booking.HoldsSeats() {
			return ErrBookingCancelled
		}

		params := gDto.QueryParams{SortBy: model.FieldPosition, SortDir: gDto.SortDirAsc}

		rows, err := s.repo.GetAllTx(ctx, tx, params, shared.FilterByField(model.FieldBookingID, bookingID, model.TablePassenger))
		if err != nil {
			return err
		}

		found := false

		for _, row := range rows {
			if !row.Named() && row.Type.IsChild() == req.Type.IsChild() {
				slot, found = row, true

				break
			}
		}

		if !found {
			return ErrPassengerSeatsFull
		}

		filled := req.ToModel(user, bookingID)
		filled.ID = slot.ID
		filled.Position = slot.Position
		filled.Metadata.CreatedAt = slot.CreatedAt
		filled.Metadata.CreatedBy = slot.CreatedBy
		slot = filled

		fields := map[string]any{
			model.FieldFullname:      filled.Fullname,
			model.FieldGender:        filled.Gender,
			model.FieldBirth:         filled.Birth,
			model.FieldType:          filled.Type,
			model.FieldIDNumber:      filled.IDNumber,
			model.FieldPhone:         filled.Phone,
			model.FieldNote:          filled.Note,
			constant.FieldModifiedAt: filled.ModifiedAt,
			constant.FieldModifiedBy: user,
		}

		return s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(slot.ID, model.FieldID, model.TablePassenger))
	})
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to add passenger")

		return res, err
	}

	s.Invalidate(ctx, slot.ID)

	res.FromModel(slot)

	return res, nil
}

func (s *passengerImpl) Get(ctx context.Context, bookingID, id string) (res dto.PassengerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res, err = s.Service.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if res.BookingID != bookingID {
		return dto.PassengerResponse{}, failure.NotFound(model.EntityPassenger + " not found")
	}

	return res, nil
}

func (s *passengerImpl) Update(ctx context.Context, req dto.UpdatePassengerRequest, bookingID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.find(ctx, bookingID, id)
	if err != nil {
		return err
	}

	if req.Type != nil && req.Type.IsChild() != current.Type.IsChild() {
		return ErrPassengerKind
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

// Delete blanks the passenger data and keeps the seat.
func (s *passengerImpl) Delete(ctx context.Context, bookingID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".passenger.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if _, err = s.find(ctx, bookingID, id); err != nil {
		return err
	}

	fields := map[string]any{
		model.FieldFullname:      constant.Empty,
		model.FieldBirth:         nil,
		model.FieldIDNumber:      constant.Empty,
		model.FieldPhone:         constant.Empty,
		model.FieldNote:          constant.Empty,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	return s.Service.Update(ctx, id, fields)
}
