package crud_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	crudMocks "tourdesk/shared/crud/mocks"
	gDto "tourdesk/shared/dto"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type country struct {
	ID   string
	Name string
}

type countryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var definition = crud.Definition[country, countryResponse]{
	Entity:  "country",
	Table:   "countries",
	FieldID: "id",
	IDOf:    func(c country) string { return c.ID },
	ToResponse: func(c country) countryResponse {
		return countryResponse{ID: c.ID, Name: c.Name}
	},
}

func newService(t *testing.T) (crud.Service[country, countryResponse], *crudMocks.MockRepository[country], *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := crudMocks.NewMockRepository[country](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	return crud.New(definition, repo, cfg, mockCache, mocks.NewOtel()), repo, mockCache
}

func TestService_Create(t *testing.T) {
	svc, repo, mockCache := newService(t)
	cacheMocks.Miss(mockCache)

	repo.EXPECT().Insert(gomock.Any(), country{ID: "vn", Name: "Việt Nam"}).Return(nil)
	require.NoError(t, svc.Create(context.Background(), country{ID: "vn", Name: "Việt Nam"}))

	repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(failure.Conflict("country already exists"))
	err := svc.Create(context.Background(), country{ID: "vn"})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	time.Sleep(10 * time.Millisecond)
}

func TestService_GetAll(t *testing.T) {
	t.Run("cache miss reads repository", func(t *testing.T) {
		svc, repo, mockCache := newService(t)
		cacheMocks.Miss(mockCache)

		params := gDto.QueryParams{Page: 1, Limit: 1}

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
		repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]country{{ID: "vn", Name: "Việt Nam"}}, nil)

		res, err := svc.GetAll(context.Background(), params, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 3, res.TotalData)
		assert.Equal(t, 3, res.TotalPage)
		assert.Equal(t, []countryResponse{{ID: "vn", Name: "Việt Nam"}}, res.Items)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("cache hit skips repository", func(t *testing.T) {
		svc, _, mockCache := newService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, value any) error {
				page, _ := value.(*gDto.Page[countryResponse])
				page.TotalData = 9

				return nil
			})

		res, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		require.NoError(t, err)
		assert.Equal(t, 9, res.TotalData)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo, mockCache := newService(t)
		cacheMocks.Miss(mockCache)

		repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("db down"))

		_, err := svc.GetAll(context.Background(), gDto.QueryParams{}, gDto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestService_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc, repo, mockCache := newService(t)
		cacheMocks.Miss(mockCache)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(country{ID: "vn", Name: "Việt Nam"}, nil)

		res, err := svc.Get(context.Background(), "vn")
		require.NoError(t, err)
		assert.Equal(t, "Việt Nam", res.Name)

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, mockCache := newService(t)
		cacheMocks.Miss(mockCache)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(country{}, nil)

		_, err := svc.Get(context.Background(), "xx")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestService_Update(t *testing.T) {
	fields := map[string]any{
		"name":                   "Vietnam",
		constant.FieldModifiedAt: time.Now(),
		constant.FieldModifiedBy: "admin",
	}

	t.Run("success", func(t *testing.T) {
		svc, repo, mockCache := newService(t)
		cacheMocks.Miss(mockCache)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Update(gomock.Any(), fields, gomock.Any()).Return(nil)

		require.NoError(t, svc.Update(context.Background(), "vn", fields))

		time.Sleep(10 * time.Millisecond)
	})

	t.Run("nothing to update", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), "vn", map[string]any{constant.FieldModifiedBy: "admin", constant.FieldModifiedAt: time.Now()})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(context.Background(), "xx", fields)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success invalidates caches", func(t *testing.T) {
		svc, repo, mockCache := newService(t)

		done := make(chan struct{}, 2)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
		mockCache.EXPECT().Delete(gomock.Any(), "country:get:vn").Return(nil)
		mockCache.EXPECT().Clear(gomock.Any(), "country:get_all*").Return(nil)
		mockCache.EXPECT().
			Clear(gomock.Any(), "country:count*").
			DoAndReturn(func(context.Context, string) error {
				done <- struct{}{}

				return nil
			})

		require.NoError(t, svc.Delete(context.Background(), "vn"))

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("caches were not invalidated")
		}
	})

	t.Run("not found", func(t *testing.T) {
		svc, repo, _ := newService(t)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Delete(context.Background(), "xx")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
