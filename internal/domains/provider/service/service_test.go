package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	s3Mocks "tourdesk/infras/s3/mocks"
	"tourdesk/internal/domains/provider/model"
	"tourdesk/internal/domains/provider/model/dto"
	"tourdesk/internal/domains/provider/service"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	crudMocks "tourdesk/shared/crud/mocks"
	"tourdesk/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type memFile struct {
	*bytes.Reader
}

func (memFile) Close() error { return nil }

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func stringPtr(s string) *string { return &s }

type fixture struct {
	providers    *crudMocks.MockRepository[model.Provider]
	serviceTypes *crudMocks.MockRepository[model.ServiceType]
	services     *crudMocks.MockRepository[model.Service]
	attributes   *crudMocks.MockRepository[model.ServiceAttribute]
	s3           *s3Mocks.MockS3

	provider    service.Provider
	serviceType service.ServiceType
	service     service.Service
	attribute   service.ServiceAttribute
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cacheMocks.Miss(mockCache)

	f := fixture{
		providers:    crudMocks.NewMockRepository[model.Provider](ctrl),
		serviceTypes: crudMocks.NewMockRepository[model.ServiceType](ctrl),
		services:     crudMocks.NewMockRepository[model.Service](ctrl),
		attributes:   crudMocks.NewMockRepository[model.ServiceAttribute](ctrl),
		s3:           s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	otel := mocks.NewOtel()

	f.provider = service.NewProvider(f.providers, f.services, cfg, mockCache, otel)
	f.serviceType = service.NewServiceType(f.serviceTypes, f.services, cfg, mockCache, otel, f.s3)
	f.service = service.NewService(f.services, f.providers, f.serviceTypes, f.attributes, cfg, mockCache, otel)
	f.attribute = service.NewServiceAttribute(f.attributes, f.services, cfg, mockCache, otel)

	return f
}

func TestProviderService_Create(t *testing.T) {
	f := newFixture(t)

	f.providers.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p model.Provider) error {
			assert.Equal(t, "Sapa Bus", p.Name)
			assert.True(t, p.IsActive)
			assert.Equal(t, "admin-id", p.CreatedBy)

			return nil
		})

	err := f.provider.Create(userContext(), dto.CreateProviderRequest{Name: "Sapa Bus"})

	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}

func TestProviderService_Delete(t *testing.T) {
	t.Run("provider with services", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.provider.Delete(userContext(), "prov-1")
		assert.Equal(t, http.StatusConflict, failure.GetCode(err))
	})

	t.Run("deleted", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.providers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.providers.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.provider.Delete(userContext(), "prov-1")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})
}

func TestServiceTypeService_Create(t *testing.T) {
	t.Run("uploads the icon", func(t *testing.T) {
		f := newFixture(t)

		f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.s3.EXPECT().
			UploadFile(gomock.Any(), constant.Empty, model.IconDirectory, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/service_type/bus.png", nil)
		f.serviceTypes.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, st model.ServiceType) error {
				assert.Equal(t, "Transport", st.Name)
				assert.Equal(t, "https://cdn.example.com/service_type/bus.png", st.Icon)

				return nil
			})

		err := f.serviceType.Create(userContext(), dto.CreateServiceTypeRequest{
			Name:     "Transport",
			Icon:     &multipart.FileHeader{Filename: "bus.png"},
			IconFile: memFile{bytes.NewReader([]byte("png"))},
		})

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		f := newFixture(t)

		f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := f.serviceType.Create(userContext(), dto.CreateServiceTypeRequest{Name: "Transport"})
		assert.ErrorIs(t, err, service.ErrServiceTypeNameTaken)
	})

	t.Run("insert failure removes the icon", func(t *testing.T) {
		f := newFixture(t)

		url := "https://cdn.example.com/service_type/bus.png"

		f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(url, nil)
		f.serviceTypes.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(assert.AnError)
		f.s3.EXPECT().GetObjectNameFromURL(constant.Empty, url).Return("bus.png")
		f.s3.EXPECT().DeleteFile(gomock.Any(), constant.Empty, model.IconDirectory, "bus.png").Return(nil)

		err := f.serviceType.Create(userContext(), dto.CreateServiceTypeRequest{
			Name:     "Transport",
			Icon:     &multipart.FileHeader{Filename: "bus.png"},
			IconFile: memFile{bytes.NewReader([]byte("png"))},
		})

		time.Sleep(10 * time.Millisecond)
		assert.Error(t, err)
	})
}

func TestServiceTypeService_Update(t *testing.T) {
	f := newFixture(t)

	oldURL := "https://cdn.example.com/service_type/old.png"
	newURL := "https://cdn.example.com/service_type/new.png"

	f.serviceTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ServiceType{ID: "st-1", Name: "Transport", Icon: oldURL}, nil)
	f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(newURL, nil)
	f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.serviceTypes.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, newURL, fields["icon"])

			return nil
		})
	f.s3.EXPECT().GetObjectNameFromURL(constant.Empty, oldURL).Return("old.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), constant.Empty, model.IconDirectory, "old.png").Return(nil)

	err := f.serviceType.Update(userContext(), dto.UpdateServiceTypeRequest{
		Icon:     &multipart.FileHeader{Filename: "new.png"},
		IconFile: memFile{bytes.NewReader([]byte("png"))},
	}, "st-1")

	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}

func TestServiceService_Create(t *testing.T) {
	req := dto.CreateServiceRequest{ProviderID: "prov-1", ServiceTypeID: "st-1", Name: "Limousine", Price: 350000}

	tests := []struct {
		name     string
		setup    func(f fixture)
		wantCode int
	}{
		{
			name: "created",
			setup: func(f fixture) {
				f.providers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.services.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s model.Service) error {
						assert.Equal(t, "prov-1", s.ProviderID)
						assert.Equal(t, 350000.0, s.Price)

						return nil
					})
			},
		},
		{
			name: "unknown provider",
			setup: func(f fixture) {
				f.providers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown service type",
			setup: func(f fixture) {
				f.providers.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.serviceTypes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.service.Create(userContext(), req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestServiceService_Delete(t *testing.T) {
	f := newFixture(t)

	f.attributes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	err := f.service.Delete(userContext(), "svc-1")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestServiceAttributeService(t *testing.T) {
	t.Run("create requires the service", func(t *testing.T) {
		f := newFixture(t)

		f.services.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.attribute.Create(userContext(), dto.CreateServiceAttributeRequest{ServiceID: "svc-1", Name: "Seats"})
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("update", func(t *testing.T) {
		f := newFixture(t)

		f.attributes.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.attributes.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, stringPtr("16"), fields["value"])

				return nil
			})

		err := f.attribute.Update(userContext(), dto.UpdateServiceAttributeRequest{Value: stringPtr("16")}, "attr-1")

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, err)
	})
}
