package service

//go:generate go run go.uber.org/mock/mockgen -source=./service_type.go -destination=./mocks/service_type_mock.go -package=mocks

import (
	"context"
	"mime/multipart"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/infras/s3"
	"tourdesk/internal/domains/provider/model"
	"tourdesk/internal/domains/provider/model/dto"
	"tourdesk/internal/domains/provider/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

var ErrServiceTypeNameTaken = failure.Conflict("service type name already exists")

type iconUpload struct {
	file   multipart.File
	header *multipart.FileHeader
}

type ServiceType interface {
	Create(ctx context.Context, req dto.CreateServiceTypeRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.ServiceTypeResponse], error)
	Get(ctx context.Context, id string) (dto.ServiceTypeResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceTypeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceTypeImpl struct {
	crud.Service[model.ServiceType, dto.ServiceTypeResponse]
	repo     repository.ServiceType
	services repository.Service
	s3       s3.S3
	otel     otel.Otel
}

func NewServiceType(
	repo repository.ServiceType,
	services repository.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) ServiceType {
	def := crud.Definition[model.ServiceType, dto.ServiceTypeResponse]{
		Entity:     model.EntityServiceType,
		Table:      model.TableServiceType,
		FieldID:    model.FieldID,
		IDOf:       func(t model.ServiceType) string { return t.ID },
		ToResponse: dto.NewServiceTypeResponse,
	}

	return &serviceTypeImpl{
		Service:  crud.New(def, repo, cfg, cache, otel),
		repo:     repo,
		services: services,
		s3:       s3,
		otel:     otel,
	}
}

func (s *serviceTypeImpl) nameTaken(ctx context.Context, name, exceptID string) (bool, error) {
	filter := shared.FilterByField(model.FieldName, name, model.TableServiceType)
	if exceptID != constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableServiceType,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check service type name")

		return false, err
	}

	return exist, nil
}

func (s *serviceTypeImpl) uploadIcon(ctx context.Context, icon iconUpload) (string, error) {
	if icon.file == nil || icon.header == nil {
		return constant.Empty, nil
	}

	url, err := s.s3.UploadFile(ctx, constant.Empty, model.IconDirectory, icon.file, icon.header, shared.UploadFileName(icon.header.Filename))
	if err != nil {
		log.Error().Err(err).Msg("failed to upload service type icon")

		return constant.Empty, err
	}

	return url, nil
}

func (s *serviceTypeImpl) removeIcon(ctx context.Context, url string) {
	if url == constant.Empty {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		objectName := s.s3.GetObjectNameFromURL(constant.Empty, url)
		if err := s.s3.DeleteFile(c, constant.Empty, model.IconDirectory, objectName); err != nil {
			log.Error().Err(err).Str("url", url).Msg("failed to delete service type icon")
		}
	}()
}

func (s *serviceTypeImpl) Create(ctx context.Context, req dto.CreateServiceTypeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_type.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	taken, err := s.nameTaken(ctx, req.Name, constant.Empty)
	if err != nil {
		return err
	}

	if taken {
		return ErrServiceTypeNameTaken
	}

	icon, err := s.uploadIcon(ctx, iconUpload{file: req.IconFile, header: req.Icon})
	if err != nil {
		return err
	}

	if err = s.Service.Create(ctx, req.ToModel(user, icon)); err != nil {
		s.removeIcon(ctx, icon)

		return err
	}

	return nil
}

func (s *serviceTypeImpl) Update(ctx context.Context, req dto.UpdateServiceTypeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_type.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	current, err := s.Find(ctx, id)
	if err != nil {
		return err
	}

	if req.Name != constant.Empty {
		taken, err := s.nameTaken(ctx, req.Name, id)
		if err != nil {
			return err
		}

		if taken {
			return ErrServiceTypeNameTaken
		}
	}

	req.IconURL, err = s.uploadIcon(ctx, iconUpload{file: req.IconFile, header: req.Icon})
	if err != nil {
		return err
	}

	if err = s.Service.Update(ctx, id, shared.TransformFields(req, user)); err != nil {
		s.removeIcon(ctx, req.IconURL)

		return err
	}

	if req.IconURL != constant.Empty {
		s.removeIcon(ctx, current.Icon)
	}

	return nil
}

func (s *serviceTypeImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_type.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	used, err := referenced[model.Service](ctx, s.services, model.TableService, model.FieldServiceTypeID, id)
	if err != nil {
		return err
	}

	if used {
		return failure.Conflict("service type is still used by services")
	}

	return s.Service.Delete(ctx, id)
}
