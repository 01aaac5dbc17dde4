package service

//go:generate go run go.uber.org/mock/mockgen -source=./instance.go -destination=./mocks/instance_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/internal/domains/tour/model"
	"tourdesk/internal/domains/tour/model/dto"
	"tourdesk/internal/domains/tour/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/code"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

var (
	ErrLimitBelowBooked = failure.Conflict("limit cannot be lower than the booked seats")
	ErrInstanceHasSeats = failure.Conflict("tour instance still has booked seats")
)

type TourInstance interface {
	Create(ctx context.Context, req dto.CreateTourInstanceRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.TourInstanceResponse], error)
	Get(ctx context.Context, id string) (dto.TourInstanceResponse, error)
	Find(ctx context.Context, id string) (model.TourInstance, error)
	Update(ctx context.Context, req dto.UpdateTourInstanceRequest, id string) error
	Delete(ctx context.Context, id string) error
	Invalidate(ctx context.Context, ids ...string)
}

type tourInstanceImpl struct {
	crud.Service[model.TourInstance, dto.TourInstanceResponse]
	repo      repository.TourInstance
	templates repository.TourTemplate
	tx        postgres.Transactor
	cache     cache.RedisCache
	otel      otel.Otel
}

// Cache prefixes of records that embed joined tour fields.
const (
	cacheBooking        = "booking"
	cacheTripAssignment = "trip_assignment"
)

func NewTourInstance(
	repo repository.TourInstance,
	templates repository.TourTemplate,
	tx postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) TourInstance {
	def := crud.Definition[model.TourInstance, dto.TourInstanceResponse]{
		Entity:     model.EntityTourInstance,
		Table:      model.TableTourInstance,
		FieldID:    model.FieldID,
		IDOf:       func(t model.TourInstance) string { return t.ID },
		ToResponse: dto.NewTourInstanceResponse,
	}

	return &tourInstanceImpl{
		Service:   crud.New(def, repo, cfg, cache, otel),
		repo:      repo,
		templates: templates,
		tx:        tx,
		cache:     cache,
		otel:      otel,
	}
}

func (s *tourInstanceImpl) requireTemplate(ctx context.Context, id string) error {
	exist, err := s.templates.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableTourTemplate))
	if err != nil {
		log.Error().Err(err).Msg("failed to check tour template existence")

		return err
	}

	if !exist {
		return failure.BadRequestFromString("tour template does not exist")
	}

	return nil
}

func (s *tourInstanceImpl) Create(ctx context.Context, req dto.CreateTourInstanceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_instance.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	departure, ret, err := dto.ParseDates(req.DepartureDate, req.ReturnDate)
	if err != nil {
		return err
	}

	if err = s.requireTemplate(ctx, req.TourTemplateID); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user, code.TourInstance(departure), departure, ret))
}

func (s *tourInstanceImpl) Update(ctx context.Context, req dto.UpdateTourInstanceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_instance.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := shared.TransformFields(req, user)
	if len(fields) < crud.MinUpdateFields {
		return crud.ErrNoFieldsToUpdate
	}

	if req.TourTemplateID != constant.Empty {
		if err = s.requireTemplate(ctx, req.TourTemplateID); err != nil {
			return err
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableTourInstance)

	err = s.tx.WithTx(ctx, func(tx *sqlx.Tx) error {
		current, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to lock tour instance")

			return err
		}

		if current.ID == constant.Empty {
			return failure.NotFound("tour instance not found")
		}

		departure := current.DepartureDate.Format(constant.DateOnlyFormat)
		if req.DepartureDate != constant.Empty {
			departure = req.DepartureDate
		}

		ret := current.ReturnDate.Format(constant.DateOnlyFormat)
		if req.ReturnDate != constant.Empty {
			ret = req.ReturnDate
		}

		if _, _, err = dto.ParseDates(departure, ret); err != nil {
			return err
		}

		if req.Limit != nil && *req.Limit < current.BookedCount {
			return ErrLimitBelowBooked
		}

		return s.repo.UpdateTx(ctx, tx, fields, filter)
	})
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to update tour instance")

		return err
	}

	s.Invalidate(ctx, id)
	clearJoined(ctx, s.cache, cacheBooking, cacheTripAssignment)

	return nil
}

// clearJoined drops every cached read under prefixes in the background.
func clearJoined(ctx context.Context, redisCache cache.RedisCache, prefixes ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, prefix := range prefixes {
			shared.InvalidateCaches(c, redisCache, shared.BuildCacheKey(prefix))
		}
	}()
}

func (s *tourInstanceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_instance.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if current.BookedCount > 0 {
		return ErrInstanceHasSeats
	}

	return s.Service.Delete(ctx, id)
}
