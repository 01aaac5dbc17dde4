// Package crud provides the cached create/read/update/delete flow shared by
// every resource backed by the generic repository.
package crud

//go:generate go run go.uber.org/mock/mockgen -source=./crud.go -destination=./mocks/crud_mock.go -package=mocks

import (
	"context"
	"fmt"
	"tourdesk/config"
	"tourdesk/infras/otel"
	"tourdesk/shared"
	"tourdesk/shared/cache"
	"tourdesk/shared/constant"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGet    = "get"
	cacheGetAll = "get_all"
	cacheCount  = "count"

	// modified_at and modified_by are always present in an update.
	MinUpdateFields = 3
)

var ErrNoFieldsToUpdate = failure.BadRequestFromString("no fields to update")

type Repository[M any] interface {
	Insert(ctx context.Context, model M) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (M, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]M, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, fields map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

// Definition describes how a model is stored and presented.
type Definition[M any, R any] struct {
	Entity     string
	Table      string
	FieldID    string
	IDOf       func(M) string
	ToResponse func(M) R
}

func (d Definition[M, R]) cacheKey(kind string) string {
	return shared.BuildCacheKey(d.Entity, kind)
}

type Service[M any, R any] interface {
	Create(ctx context.Context, model M) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (gDto.Page[R], error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (R, error)
	Find(ctx context.Context, id string) (M, error)
	Exist(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	Invalidate(ctx context.Context, ids ...string)
}

type serviceImpl[M any, R any] struct {
	def   Definition[M, R]
	repo  Repository[M]
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New[M any, R any](def Definition[M, R], repo Repository[M], cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Service[M, R] {
	return &serviceImpl[M, R]{
		def:   def,
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl[M, R]) spanName(method string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelServiceScopeName, s.def.Entity, method)
}

func (s *serviceImpl[M, R]) Create(ctx context.Context, model M) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Create"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.repo.Insert(ctx, model); err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to create")

		return err
	}

	s.Invalidate(ctx)

	return nil
}

func (s *serviceImpl[M, R]) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res gDto.Page[R], err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("GetAll"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(s.def.cacheKey(cacheGetAll), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to get all")

		return res, err
	}

	res = shared.NewPage(models, total, params.Limit, s.def.ToResponse)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to save list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl[M, R]) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Count"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(s.def.cacheKey(cacheCount), params, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to count")

		return total, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to save count to cache")
		}
	}()

	return total, nil
}

func (s *serviceImpl[M, R]) Get(ctx context.Context, id string) (res R, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Get"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(s.def.cacheKey(cacheGet), id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	model, err := s.Find(ctx, id)
	if err != nil {
		return res, err
	}

	res = s.def.ToResponse(model)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to save to cache")
		}
	}()

	return res, nil
}

// Find reads straight from the repository and fails with NotFound on a miss.
func (s *serviceImpl[M, R]) Find(ctx context.Context, id string) (model M, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Find"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	model, err = s.repo.Get(ctx, shared.FilterByID(id, s.def.FieldID, s.def.Table))
	if err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to get")

		return model, fmt.Errorf("failed to get %s: %w", s.def.Entity, err)
	}

	if s.def.IDOf(model) == constant.Empty {
		return model, failure.NotFound(s.def.Entity + " not found")
	}

	return model, nil
}

func (s *serviceImpl[M, R]) Exist(ctx context.Context, id string) (exist bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Exist"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err = s.repo.Exist(ctx, shared.FilterByID(id, s.def.FieldID, s.def.Table))
	if err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to check existence")

		return false, err
	}

	return exist, nil
}

func (s *serviceImpl[M, R]) Update(ctx context.Context, id string, fields map[string]any) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Update"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if len(fields) < MinUpdateFields {
		return ErrNoFieldsToUpdate
	}

	exist, err := s.Exist(ctx, id)
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound(s.def.Entity + " not found")
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, s.def.FieldID, s.def.Table)); err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to update")

		return err
	}

	s.Invalidate(ctx, id)

	return nil
}

func (s *serviceImpl[M, R]) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, s.spanName("Delete"))
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exist, err := s.Exist(ctx, id)
	if err != nil {
		return err
	}

	if !exist {
		return failure.NotFound(s.def.Entity + " not found")
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, s.def.FieldID, s.def.Table)); err != nil {
		log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to delete")

		return err
	}

	s.Invalidate(ctx, id)

	return nil
}

// Invalidate drops the cached records for ids along with every cached list and count.
func (s *serviceImpl[M, R]) Invalidate(ctx context.Context, ids ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		for _, id := range ids {
			if err := s.cache.Delete(c, shared.BuildCacheKey(s.def.cacheKey(cacheGet), id)); err != nil {
				log.Error().Err(err).Str("entity", s.def.Entity).Msg("failed to delete cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, s.def.cacheKey(cacheGetAll))
		shared.InvalidateCaches(c, s.cache, s.def.cacheKey(cacheCount))
	}()
}
