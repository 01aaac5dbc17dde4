package service

//go:generate go run go.uber.org/mock/mockgen -source=./provider.go -destination=./mocks/provider_mock.go -package=mocks

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

type Provider interface {
	Create(ctx context.Context, req dto.CreateProviderRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.ProviderResponse], error)
	Get(ctx context.Context, id string) (dto.ProviderResponse, error)
	Update(ctx context.Context, req dto.UpdateProviderRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type providerImpl struct {
	crud.Service[model.Provider, dto.ProviderResponse]
	services repository.Service
	otel     otel.Otel
}

func NewProvider(repo repository.Provider, services repository.Service, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Provider {
	def := crud.Definition[model.Provider, dto.ProviderResponse]{
		Entity:     model.EntityProvider,
		Table:      model.TableProvider,
		FieldID:    model.FieldID,
		IDOf:       func(p model.Provider) string { return p.ID },
		ToResponse: dto.NewProviderResponse,
	}

	return &providerImpl{
		Service:  crud.New(def, repo, cfg, cache, otel),
		services: services,
		otel:     otel,
	}
}

func (s *providerImpl) Create(ctx context.Context, req dto.CreateProviderRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *providerImpl) Update(ctx context.Context, req dto.UpdateProviderRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

func (s *providerImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	used, err := referenced[model.Service](ctx, s.services, model.TableService, model.FieldProviderID, id)
	if err != nil {
		return err
	}

	if used {
		return failure.Conflict("provider still has services")
	}

	return s.Service.Delete(ctx, id)
}
