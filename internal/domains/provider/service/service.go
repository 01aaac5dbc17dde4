package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/provider/model"
	"tourdesk/internal/domains/provider/model/dto"
	"tourdesk/internal/domains/provider/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"
)

type Service interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.ServiceResponse], error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	crud.Service[model.Service, dto.ServiceResponse]
	providers    repository.Provider
	serviceTypes repository.ServiceType
	attributes   repository.ServiceAttribute
	otel         otel.Otel
}

func NewService(
	repo repository.Service,
	providers repository.Provider,
	serviceTypes repository.ServiceType,
	attributes repository.ServiceAttribute,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Service {
	def := crud.Definition[model.Service, dto.ServiceResponse]{
		Entity:     model.EntityService,
		Table:      model.TableService,
		FieldID:    model.FieldID,
		IDOf:       func(s model.Service) string { return s.ID },
		ToResponse: dto.NewServiceResponse,
	}

	return &serviceImpl{
		Service:      crud.New(def, repo, cfg, cache, otel),
		providers:    providers,
		serviceTypes: serviceTypes,
		attributes:   attributes,
		otel:         otel,
	}
}

func (s *serviceImpl) requireParents(ctx context.Context, providerID, serviceTypeID string) error {
	if providerID != constant.Empty {
		if err := requireExisting[model.Provider](ctx, s.providers, model.TableProvider, model.EntityProvider, providerID); err != nil {
			return err
		}
	}

	if serviceTypeID != constant.Empty {
		if err := requireExisting[model.ServiceType](ctx, s.serviceTypes, model.TableServiceType, model.EntityServiceType, serviceTypeID); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireParents(ctx, req.ProviderID, req.ServiceTypeID); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireParents(ctx, req.ProviderID, req.ServiceTypeID); err != nil {
		return err
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	used, err := referenced[model.ServiceAttribute](ctx, s.attributes, model.TableServiceAttribute, model.FieldServiceID, id)
	if err != nil {
		return err
	}

	if used {
		return failure.Conflict("service still has attributes")
	}

	return s.Service.Delete(ctx, id)
}
