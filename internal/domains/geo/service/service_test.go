package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	"tourdesk/internal/domains/geo/model"
	"tourdesk/internal/domains/geo/model/dto"
	"tourdesk/internal/domains/geo/service"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	crudMocks "tourdesk/shared/crud/mocks"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func TestCountryService_Create(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(repo *crudMocks.MockRepository[model.Country])
		wantCode int
	}{
		{
			name: "created",
			setup: func(repo *crudMocks.MockRepository[model.Country]) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c model.Country) error {
						assert.Equal(t, "VN", c.Code)
						assert.Equal(t, "admin-id", c.CreatedBy)
						assert.NotEmpty(t, c.ID)

						return nil
					})
			},
		},
		{
			name: "duplicate code",
			setup: func(repo *crudMocks.MockRepository[model.Country]) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := crudMocks.NewMockRepository[model.Country](ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			cacheMocks.Miss(mockCache)

			tt.setup(repo)

			svc := service.NewCountry(repo, &config.Config{}, mockCache, mocks.NewOtel())
			err := svc.Create(userContext(), dto.CreateCountryRequest{Name: "Việt Nam", Code: "VN"})

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCountryService_UpdateDuplicateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := crudMocks.NewMockRepository[model.Country](ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	svc := service.NewCountry(repo, &config.Config{}, mockCache, mocks.NewOtel())
	err := svc.Update(userContext(), dto.UpdateCountryRequest{Code: "TH"}, "country-id")

	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestProvinceService_Create(t *testing.T) {
	t.Run("country must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[model.Province](ctrl)
		countries := crudMocks.NewMockRepository[model.Country](ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		countries.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		svc := service.NewProvince(repo, countries, &config.Config{}, mockCache, mocks.NewOtel())
		err := svc.Create(userContext(), dto.CreateProvinceRequest{CountryID: "c1", Name: "Quảng Ninh"})

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[model.Province](ctrl)
		countries := crudMocks.NewMockRepository[model.Country](ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		cacheMocks.Miss(mockCache)

		countries.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

		svc := service.NewProvince(repo, countries, &config.Config{}, mockCache, mocks.NewOtel())
		err := svc.Create(userContext(), dto.CreateProvinceRequest{CountryID: "c1", Name: "Quảng Ninh"})

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})
}

func TestDestinationService_Update(t *testing.T) {
	t.Run("province must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[model.Destination](ctrl)
		provinces := crudMocks.NewMockRepository[model.Province](ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)

		provinces.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		svc := service.NewDestination(repo, provinces, &config.Config{}, mockCache, mocks.NewOtel())
		err := svc.Update(userContext(), dto.UpdateDestinationRequest{ProvinceID: "p1"}, "d1")

		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("updated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[model.Destination](ctrl)
		provinces := crudMocks.NewMockRepository[model.Province](ctrl)
		mockCache := cacheMocks.NewMockRedisCache(ctrl)
		cacheMocks.Miss(mockCache)

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "Vịnh Hạ Long", fields[model.FieldName])
				assert.Equal(t, "admin-id", fields[constant.FieldModifiedBy])

				return nil
			})

		svc := service.NewDestination(repo, provinces, &config.Config{}, mockCache, mocks.NewOtel())
		err := svc.Update(userContext(), dto.UpdateDestinationRequest{Name: "Vịnh Hạ Long"}, "d1")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})
}
