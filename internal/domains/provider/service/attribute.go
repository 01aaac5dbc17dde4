package service

//go:generate go run go.uber.org/mock/mockgen -source=./attribute.go -destination=./mocks/attribute_mock.go -package=mocks

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
)

type ServiceAttribute interface {
	Create(ctx context.Context, req dto.CreateServiceAttributeRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.ServiceAttributeResponse], error)
	Get(ctx context.Context, id string) (dto.ServiceAttributeResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceAttributeRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceAttributeImpl struct {
	crud.Service[model.ServiceAttribute, dto.ServiceAttributeResponse]
	services repository.Service
	otel     otel.Otel
}

func NewServiceAttribute(
	repo repository.ServiceAttribute,
	services repository.Service,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) ServiceAttribute {
	def := crud.Definition[model.ServiceAttribute, dto.ServiceAttributeResponse]{
		Entity:     model.EntityServiceAttribute,
		Table:      model.TableServiceAttribute,
		FieldID:    model.FieldID,
		IDOf:       func(a model.ServiceAttribute) string { return a.ID },
		ToResponse: dto.NewServiceAttributeResponse,
	}

	return &serviceAttributeImpl{
		Service:  crud.New(def, repo, cfg, cache, otel),
		services: services,
		otel:     otel,
	}
}

func (s *serviceAttributeImpl) Create(ctx context.Context, req dto.CreateServiceAttributeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_attribute.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = requireExisting[model.Service](ctx, s.services, model.TableService, model.EntityService, req.ServiceID); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *serviceAttributeImpl) Update(ctx context.Context, req dto.UpdateServiceAttributeRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".service_attribute.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.ServiceID != constant.Empty {
		if err = requireExisting[model.Service](ctx, s.services, model.TableService, model.EntityService, req.ServiceID); err != nil {
			return err
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}
