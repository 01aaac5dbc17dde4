package service

//go:generate go run go.uber.org/mock/mockgen -source=./assignment.go -destination=./mocks/assignment_mock.go -package=mocks

import (
	"cmp"
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	tourModel "tourdesk/internal/domains/tour/model"
	tourRepo "tourdesk/internal/domains/tour/repository"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/internal/domains/trip/model/dto"
	"tourdesk/internal/domains/trip/repository"
	userModel "tourdesk/internal/domains/user/model"
	userRepo "tourdesk/internal/domains/user/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"

	"github.com/rs/zerolog/log"
)

type TripAssignment interface {
	Create(ctx context.Context, req dto.CreateTripAssignmentRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.TripAssignmentResponse], error)
	Get(ctx context.Context, id string) (dto.TripAssignmentResponse, error)
	Update(ctx context.Context, req dto.UpdateTripAssignmentRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type tripAssignmentImpl struct {
	crud.Service[model.TripAssignment, dto.TripAssignmentResponse]
	repo      repository.TripAssignment
	users     userRepo.User
	instances tourRepo.TourInstance
	otel      otel.Otel
}

func NewTripAssignment(
	repo repository.TripAssignment,
	users userRepo.User,
	instances tourRepo.TourInstance,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) TripAssignment {
	def := crud.Definition[model.TripAssignment, dto.TripAssignmentResponse]{
		Entity:     model.EntityTripAssignment,
		Table:      model.TableTripAssignment,
		FieldID:    model.FieldID,
		IDOf:       func(a model.TripAssignment) string { return a.ID },
		ToResponse: dto.NewTripAssignmentResponse,
	}

	return &tripAssignmentImpl{
		Service:   crud.New(def, repo, cfg, cache, otel),
		repo:      repo,
		users:     users,
		instances: instances,
		otel:      otel,
	}
}

func (s *tripAssignmentImpl) requireGuide(ctx context.Context, id string) error {
	user, err := s.users.Get(ctx, shared.FilterByID(id, userModel.FieldID, userModel.TableUser))
	if err != nil {
		log.Error().Err(err).Str("user_id", id).Msg("failed to get user")

		return err
	}

	switch {
	case user.ID == constant.Empty:
		return ErrUserNotFound
	case !user.IsActive:
		return ErrUserInactive
	case !user.IsGuide():
		return ErrUserNotGuide
	}

	return nil
}

func (s *tripAssignmentImpl) requireInstance(ctx context.Context, id string) (tourModel.TourInstance, error) {
	instance, err := s.instances.Get(ctx, shared.FilterByID(id, tourModel.FieldID, tourModel.TableTourInstance))
	if err != nil {
		log.Error().Err(err).Str("tour_instance_id", id).Msg("failed to get tour instance")

		return instance, err
	}

	if instance.ID == constant.Empty {
		return instance, ErrInstanceNotFound
	}

	if instance.Status == tourModel.TourInstanceCancelled {
		return instance, ErrInstanceCancelled
	}

	return instance, nil
}

// checkSchedule enforces one assignment per guide and instance, and no two
// live assignments of a guide on trips with overlapping dates.
func (s *tripAssignmentImpl) checkSchedule(ctx context.Context, userID string, instance tourModel.TourInstance, exceptID string) error {
	filters := []any{
		gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: userID, Table: model.TableTripAssignment},
		gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorNotEq, Value: model.AssignmentCancelled, Table: model.TableTripAssignment},
	}

	if exceptID != constant.Empty {
		filters = append(filters, gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorNotEq, Value: exceptID, Table: model.TableTripAssignment})
	}

	others, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: filters})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("failed to list guide assignments")

		return err
	}

	for _, other := range others {
		if other.TourInstanceID == instance.ID {
			return ErrAlreadyAssigned
		}

		if other.Scheduled() && other.Overlaps(instance.DepartureDate, instance.ReturnDate) {
			return ErrGuideBusy
		}
	}

	return nil
}

func (s *tripAssignmentImpl) Create(ctx context.Context, req dto.CreateTripAssignmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_assignment.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireGuide(ctx, req.UserID); err != nil {
		return err
	}

	instance, err := s.requireInstance(ctx, req.TourInstanceID)
	if err != nil {
		return err
	}

	if err = s.checkSchedule(ctx, req.UserID, instance, constant.Empty); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *tripAssignmentImpl) Update(ctx context.Context, req dto.UpdateTripAssignmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".trip_assignment.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if req.Status != nil && *req.Status != current.Status && !current.Status.CanTransitionTo(*req.Status) {
		return ErrInvalidTransition
	}

	if req.UserID != constant.Empty || req.TourInstanceID != constant.Empty {
		userID := cmp.Or(req.UserID, current.UserID)
		instanceID := cmp.Or(req.TourInstanceID, current.TourInstanceID)

		if req.UserID != constant.Empty {
			if err = s.requireGuide(ctx, userID); err != nil {
				return err
			}
		}

		instance, err := s.requireInstance(ctx, instanceID)
		if err != nil {
			return err
		}

		if err = s.checkSchedule(ctx, userID, instance, id); err != nil {
			return err
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}
