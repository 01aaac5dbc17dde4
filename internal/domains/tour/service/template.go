package service

//go:generate go run go.uber.org/mock/mockgen -source=./template.go -destination=./mocks/template_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/s3"
	geoModel "tourdesk/internal/domains/geo/model"
	geoRepo "tourdesk/internal/domains/geo/repository"
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

	"github.com/rs/zerolog/log"
)

type TourTemplate interface {
	Create(ctx context.Context, req dto.CreateTourTemplateRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.TourTemplateResponse], error)
	Get(ctx context.Context, id string) (dto.TourTemplateResponse, error)
	Update(ctx context.Context, req dto.UpdateTourTemplateRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type tourTemplateImpl struct {
	crud.Service[model.TourTemplate, dto.TourTemplateResponse]
	repo         repository.TourTemplate
	instances    repository.TourInstance
	destinations geoRepo.Destination
	s3           s3.S3
	cache        cache.RedisCache
	otel         otel.Otel
}

func NewTourTemplate(
	repo repository.TourTemplate,
	instances repository.TourInstance,
	destinations geoRepo.Destination,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) TourTemplate {
	def := crud.Definition[model.TourTemplate, dto.TourTemplateResponse]{
		Entity:     model.EntityTourTemplate,
		Table:      model.TableTourTemplate,
		FieldID:    model.FieldID,
		IDOf:       func(t model.TourTemplate) string { return t.ID },
		ToResponse: dto.NewTourTemplateResponse,
	}

	return &tourTemplateImpl{
		Service:      crud.New(def, repo, cfg, cache, otel),
		repo:         repo,
		instances:    instances,
		destinations: destinations,
		s3:           s3,
		cache:        cache,
		otel:         otel,
	}
}

func (s *tourTemplateImpl) requireDestination(ctx context.Context, id string) error {
	exist, err := s.destinations.Exist(ctx, shared.FilterByID(id, geoModel.FieldID, geoModel.TableDestination))
	if err != nil {
		log.Error().Err(err).Msg("failed to check destination existence")

		return err
	}

	if !exist {
		return failure.BadRequestFromString("destination does not exist")
	}

	return nil
}

func (s *tourTemplateImpl) codeTaken(ctx context.Context, value, exceptID string) (bool, error) {
	filter := shared.FilterByField(model.FieldCode, value, model.TableTourTemplate)
	if exceptID != constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableTourTemplate,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check tour template code")

		return false, err
	}

	return exist, nil
}

func (s *tourTemplateImpl) removeThumbnail(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		objectName := s.s3.GetObjectNameFromURL(constant.Empty, url)
		if err := s.s3.DeleteFile(c, constant.Empty, model.ThumbnailDirectory, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete thumbnail")
		}
	}()
}

func (s *tourTemplateImpl) Create(ctx context.Context, req dto.CreateTourTemplateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_template.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.DestinationID != constant.Empty {
		if err = s.requireDestination(ctx, req.DestinationID); err != nil {
			return err
		}
	}

	if req.Code == constant.Empty {
		req.Code = code.TourTemplate()
	}

	taken, err := s.codeTaken(ctx, req.Code, constant.Empty)
	if err != nil {
		return err
	}

	if taken {
		return failure.Conflict("tour template code already exists")
	}

	thumbnail := constant.Empty

	if req.ThumbnailFile != nil && req.Thumbnail != nil {
		thumbnail, err = s.s3.UploadFile(ctx, constant.Empty, model.ThumbnailDirectory, req.ThumbnailFile, req.Thumbnail, shared.UploadFileName(req.Thumbnail.Filename))
		if err != nil {
			log.Error().Err(err).Msg("failed to upload tour template thumbnail")

			return err
		}
	}

	if err = s.Service.Create(ctx, req.ToModel(user, thumbnail)); err != nil {
		s.removeThumbnail(ctx, thumbnail)

		return err
	}

	return nil
}

func (s *tourTemplateImpl) Update(ctx context.Context, req dto.UpdateTourTemplateRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_template.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if req.DestinationID != constant.Empty {
		if err = s.requireDestination(ctx, req.DestinationID); err != nil {
			return err
		}
	}

	if req.Code != constant.Empty {
		taken, err := s.codeTaken(ctx, req.Code, id)
		if err != nil {
			return err
		}

		if taken {
			return failure.Conflict("tour template code already exists")
		}
	}

	if req.ThumbnailFile != nil && req.Thumbnail != nil {
		req.ThumbnailURL, err = s.s3.UploadFile(ctx, constant.Empty, model.ThumbnailDirectory, req.ThumbnailFile, req.Thumbnail, shared.UploadFileName(req.Thumbnail.Filename))
		if err != nil {
			log.Error().Err(err).Msg("failed to upload tour template thumbnail")

			return err
		}
	}

	if err = s.Service.Update(ctx, id, shared.TransformFields(req, user)); err != nil {
		s.removeThumbnail(ctx, req.ThumbnailURL)

		return err
	}

	if req.ThumbnailURL != constant.Empty {
		s.removeThumbnail(ctx, current.Thumbnail)
	}

	clearJoined(ctx, s.cache, model.EntityTourInstance, cacheBooking)

	return nil
}

func (s *tourTemplateImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".tour_template.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scheduled, err := s.instances.Exist(ctx, shared.FilterByField(model.FieldTourTemplateID, id, model.TableTourInstance))
	if err != nil {
		log.Error().Err(err).Msg("failed to check tour instances of template")

		return err
	}

	if scheduled {
		return failure.Conflict("tour template still has tour instances")
	}

	return s.Service.Delete(ctx, id)
}
