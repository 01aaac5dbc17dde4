package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/internal/domains/geo/model"
	"tourdesk/internal/domains/geo/model/dto"
	"tourdesk/internal/domains/geo/repository"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

type Country interface {
	Create(ctx context.Context, req dto.CreateCountryRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.CountryResponse], error)
	Get(ctx context.Context, id string) (dto.CountryResponse, error)
	Update(ctx context.Context, req dto.UpdateCountryRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type Province interface {
	Create(ctx context.Context, req dto.CreateProvinceRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.ProvinceResponse], error)
	Get(ctx context.Context, id string) (dto.ProvinceResponse, error)
	Update(ctx context.Context, req dto.UpdateProvinceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type Destination interface {
	Create(ctx context.Context, req dto.CreateDestinationRequest) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[dto.DestinationResponse], error)
	Get(ctx context.Context, id string) (dto.DestinationResponse, error)
	Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type countryImpl struct {
	crud.Service[model.Country, dto.CountryResponse]
	repo repository.Country
	otel otel.Otel
}

func NewCountry(repo repository.Country, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Country {
	def := crud.Definition[model.Country, dto.CountryResponse]{
		Entity:     model.EntityCountry,
		Table:      model.TableCountry,
		FieldID:    model.FieldID,
		IDOf:       func(c model.Country) string { return c.ID },
		ToResponse: dto.NewCountryResponse,
	}

	return &countryImpl{
		Service: crud.New(def, repo, cfg, cache, otel),
		repo:    repo,
		otel:    otel,
	}
}

func (s *countryImpl) codeTaken(ctx context.Context, code, exceptID string) (bool, error) {
	filter := shared.FilterByField(model.FieldCode, code, model.TableCountry)
	if exceptID != constant.Empty {
		filter.Operator = gDto.FilterGroupOperatorAnd
		filter.Filters = append(filter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    exceptID,
			Table:    model.TableCountry,
		})
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check country code")

		return false, err
	}

	return exist, nil
}

func (s *countryImpl) Create(ctx context.Context, req dto.CreateCountryRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".country.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	taken, err := s.codeTaken(ctx, req.Code, constant.Empty)
	if err != nil {
		return err
	}

	if taken {
		return failure.Conflict("country code already exists")
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *countryImpl) Update(ctx context.Context, req dto.UpdateCountryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".country.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.Code != constant.Empty {
		taken, err := s.codeTaken(ctx, req.Code, id)
		if err != nil {
			return err
		}

		if taken {
			return failure.Conflict("country code already exists")
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

type provinceImpl struct {
	crud.Service[model.Province, dto.ProvinceResponse]
	countries repository.Country
	otel      otel.Otel
}

func NewProvince(repo repository.Province, countries repository.Country, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Province {
	def := crud.Definition[model.Province, dto.ProvinceResponse]{
		Entity:     model.EntityProvince,
		Table:      model.TableProvince,
		FieldID:    model.FieldID,
		IDOf:       func(p model.Province) string { return p.ID },
		ToResponse: dto.NewProvinceResponse,
	}

	return &provinceImpl{
		Service:   crud.New(def, repo, cfg, cache, otel),
		countries: countries,
		otel:      otel,
	}
}

func (s *provinceImpl) requireCountry(ctx context.Context, id string) error {
	exist, err := s.countries.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableCountry))
	if err != nil {
		log.Error().Err(err).Msg("failed to check country existence")

		return err
	}

	if !exist {
		return failure.BadRequestFromString("country does not exist")
	}

	return nil
}

func (s *provinceImpl) Create(ctx context.Context, req dto.CreateProvinceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".province.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireCountry(ctx, req.CountryID); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *provinceImpl) Update(ctx context.Context, req dto.UpdateProvinceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".province.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.CountryID != constant.Empty {
		if err = s.requireCountry(ctx, req.CountryID); err != nil {
			return err
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}

type destinationImpl struct {
	crud.Service[model.Destination, dto.DestinationResponse]
	provinces repository.Province
	otel      otel.Otel
}

func NewDestination(repo repository.Destination, provinces repository.Province, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Destination {
	def := crud.Definition[model.Destination, dto.DestinationResponse]{
		Entity:     model.EntityDestination,
		Table:      model.TableDestination,
		FieldID:    model.FieldID,
		IDOf:       func(d model.Destination) string { return d.ID },
		ToResponse: dto.NewDestinationResponse,
	}

	return &destinationImpl{
		Service:   crud.New(def, repo, cfg, cache, otel),
		provinces: provinces,
		otel:      otel,
	}
}

func (s *destinationImpl) requireProvince(ctx context.Context, id string) error {
	exist, err := s.provinces.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableProvince))
	if err != nil {
		log.Error().Err(err).Msg("failed to check province existence")

		return err
	}

	if !exist {
		return failure.BadRequestFromString("province does not exist")
	}

	return nil
}

func (s *destinationImpl) Create(ctx context.Context, req dto.CreateDestinationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireProvince(ctx, req.ProvinceID); err != nil {
		return err
	}

	return s.Service.Create(ctx, req.ToModel(user))
}

func (s *destinationImpl) Update(ctx context.Context, req dto.UpdateDestinationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".destination.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.ProvinceID != constant.Empty {
		if err = s.requireProvince(ctx, req.ProvinceID); err != nil {
			return err
		}
	}

	return s.Service.Update(ctx, id, shared.TransformFields(req, user))
}
