package seeder

import (
	"context"
	"errors"
	"testing"
	"tourdesk/config"
	geoModel "tourdesk/internal/domains/geo/model"
	providerModel "tourdesk/internal/domains/provider/model"
	tourModel "tourdesk/internal/domains/tour/model"
	tourMocks "tourdesk/internal/domains/tour/repository/mocks"
	userModel "tourdesk/internal/domains/user/model"
	crudMocks "tourdesk/shared/crud/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEnsure(t *testing.T) {
	id := func(c geoModel.Country) string { return c.ID }

	t.Run("inserts missing row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[geoModel.Country](ctrl)

		row := geoModel.Country{ID: "new-id", Code: "VN", Name: "Việt Nam"}

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Country{}, nil)
		repo.EXPECT().Insert(gomock.Any(), row).Return(nil)

		got, err := ensure[geoModel.Country](context.Background(), repo, geoModel.TableCountry, geoModel.FieldCode, "VN", row, id)
		require.NoError(t, err)
		assert.Equal(t, "new-id", got)
	})

	t.Run("existing row is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[geoModel.Country](ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Country{ID: "stored-id", Code: "VN"}, nil)

		got, err := ensure[geoModel.Country](context.Background(), repo, geoModel.TableCountry, geoModel.FieldCode, "VN", geoModel.Country{ID: "new-id"}, id)
		require.NoError(t, err)
		assert.Equal(t, "stored-id", got)
	})

	t.Run("lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := crudMocks.NewMockRepository[geoModel.Country](ctrl)

		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Country{}, errors.New("connection refused"))

		_, err := ensure[geoModel.Country](context.Background(), repo, geoModel.TableCountry, geoModel.FieldCode, "VN", geoModel.Country{}, id)
		assert.ErrorContains(t, err, "connection refused")
	})
}

type seederMocks struct {
	users        *crudMocks.MockRepository[userModel.User]
	countries    *crudMocks.MockRepository[geoModel.Country]
	provinces    *crudMocks.MockRepository[geoModel.Province]
	destinations *crudMocks.MockRepository[geoModel.Destination]
	serviceTypes *crudMocks.MockRepository[providerModel.ServiceType]
	providers    *crudMocks.MockRepository[providerModel.Provider]
	services     *crudMocks.MockRepository[providerModel.Service]
	templates    *crudMocks.MockRepository[tourModel.TourTemplate]
	instances    *tourMocks.MockTourInstance
}

func newSeeder(t *testing.T) (*Seeder, seederMocks) {
	ctrl := gomock.NewController(t)

	m := seederMocks{
		users:        crudMocks.NewMockRepository[userModel.User](ctrl),
		countries:    crudMocks.NewMockRepository[geoModel.Country](ctrl),
		provinces:    crudMocks.NewMockRepository[geoModel.Province](ctrl),
		destinations: crudMocks.NewMockRepository[geoModel.Destination](ctrl),
		serviceTypes: crudMocks.NewMockRepository[providerModel.ServiceType](ctrl),
		providers:    crudMocks.NewMockRepository[providerModel.Provider](ctrl),
		services:     crudMocks.NewMockRepository[providerModel.Service](ctrl),
		templates:    crudMocks.NewMockRepository[tourModel.TourTemplate](ctrl),
		instances:    tourMocks.NewMockTourInstance(ctrl),
	}

	cfg := &config.Config{}
	cfg.Seed.SuperAdminEmail = "admin@tourdesk.vn"
	cfg.Seed.SuperAdminPassword = "ChangeMe123!"
	cfg.Seed.GuideEmail = "guide@tourdesk.vn"
	cfg.Seed.GuidePassword = "ChangeMe123!"

	s := New(m.users, m.countries, m.provinces, m.destinations, m.serviceTypes, m.providers, m.services, m.templates, m.instances, cfg)

	return s, m
}

func TestSeeder_Run(t *testing.T) {
	t.Run("fresh database links children to seeded parents", func(t *testing.T) {
		s, m := newSeeder(t)

		var users []userModel.User

		m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil).Times(2)
		m.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u userModel.User) error {
				users = append(users, u)

				return nil
			}).Times(2)

		m.countries.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Country{}, nil).Times(len(sampleCountries))
		m.countries.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(sampleCountries))

		var provinces []geoModel.Province

		m.provinces.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Province{}, nil).Times(len(sampleProvinces))
		m.provinces.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, p geoModel.Province) error {
				provinces = append(provinces, p)

				return nil
			}).Times(len(sampleProvinces))

		m.destinations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(geoModel.Destination{}, nil).Times(len(sampleDestinations))
		m.destinations.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(sampleDestinations))

		m.serviceTypes.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.ServiceType{}, nil).Times(len(sampleServiceTypes))
		m.serviceTypes.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(sampleServiceTypes))

		m.providers.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Provider{}, nil).Times(len(sampleProviders))
		m.providers.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil).Times(len(sampleProviders))

		m.services.EXPECT().Get(gomock.Any(), gomock.Any()).Return(providerModel.Service{}, nil).AnyTimes()
		m.services.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, svc providerModel.Service) error {
				assert.NotEmpty(t, svc.ProviderID)
				assert.NotEmpty(t, svc.ServiceTypeID)

				return nil
			}).AnyTimes()

		m.templates.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tourModel.TourTemplate{}, nil).Times(len(sampleTemplates))
		m.templates.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, tpl tourModel.TourTemplate) error {
				require.NotNil(t, tpl.DestinationID)

				return nil
			}).Times(len(sampleTemplates))

		m.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tourModel.TourInstance{}, nil).Times(len(sampleTemplates))
		m.instances.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, instance tourModel.TourInstance) error {
				assert.NotEmpty(t, instance.TourTemplateID)
				assert.False(t, instance.ReturnDate.Before(instance.DepartureDate))
				assert.Equal(t, tourModel.TourInstanceOpen, instance.Status)

				return nil
			}).Times(len(sampleTemplates))

		require.NoError(t, s.Run(context.Background()))

		require.Len(t, users, 2)
		assert.Equal(t, userModel.RoleSuperAdmin, users[0].Role)
		assert.Equal(t, userModel.RoleGuide, users[1].Role)
		assert.NotEqual(t, "ChangeMe123!", users[0].Password)

		for _, p := range provinces {
			assert.NotEmpty(t, p.CountryID, p.Code)
		}
	})

	t.Run("stops at the first failing step", func(t *testing.T) {
		s, m := newSeeder(t)

		m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, errors.New("db down"))

		err := s.Run(context.Background())
		assert.ErrorContains(t, err, "seeding users")
	})
}

func TestSeeder_SeedUsersNormalizesEmail(t *testing.T) {
	s, m := newSeeder(t)
	s.cfg.Seed.SuperAdminEmail = "  Admin@TourDesk.VN "
	s.cfg.Seed.GuideEmail = "GUIDE@tourdesk.vn"

	var emails []string

	m.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil).Times(2)
	m.users.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u userModel.User) error {
			emails = append(emails, u.Email)

			return nil
		}).Times(2)

	require.NoError(t, s.seedUsers(context.Background()))
	assert.Equal(t, []string{"admin@tourdesk.vn", "guide@tourdesk.vn"}, emails)
}
