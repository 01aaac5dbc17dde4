// Package seeder loads sample geography, providers, tours and staff accounts.
// Rows are matched on their natural key so the seeder can run repeatedly.
package seeder

import (
	"context"
	"fmt"
	"strings"
	"tourdesk/config"
	geoModel "tourdesk/internal/domains/geo/model"
	geoRepo "tourdesk/internal/domains/geo/repository"
	providerModel "tourdesk/internal/domains/provider/model"
	providerRepo "tourdesk/internal/domains/provider/repository"
	tourModel "tourdesk/internal/domains/tour/model"
	tourRepo "tourdesk/internal/domains/tour/repository"
	userModel "tourdesk/internal/domains/user/model"
	userRepo "tourdesk/internal/domains/user/repository"
	"tourdesk/shared"
	"tourdesk/shared/constant"
	"tourdesk/shared/crud"
	gModel "tourdesk/shared/model"
	"tourdesk/shared/password"
	"tourdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seedUser = "seeder"

type Seeder struct {
	users        userRepo.User
	countries    geoRepo.Country
	provinces    geoRepo.Province
	destinations geoRepo.Destination
	serviceTypes providerRepo.ServiceType
	providers    providerRepo.Provider
	services     providerRepo.Service
	templates    tourRepo.TourTemplate
	instances    tourRepo.TourInstance
	cfg          *config.Config

	// natural key -> id, filled as rows are seeded
	ids map[string]string
}

func New(
	users userRepo.User,
	countries geoRepo.Country,
	provinces geoRepo.Province,
	destinations geoRepo.Destination,
	serviceTypes providerRepo.ServiceType,
	providers providerRepo.Provider,
	services providerRepo.Service,
	templates tourRepo.TourTemplate,
	instances tourRepo.TourInstance,
	cfg *config.Config,
) *Seeder {
	return &Seeder{
		users:        users,
		countries:    countries,
		provinces:    provinces,
		destinations: destinations,
		serviceTypes: serviceTypes,
		providers:    providers,
		services:     services,
		templates:    templates,
		instances:    instances,
		cfg:          cfg,
		ids:          map[string]string{},
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"users", s.seedUsers},
		{"geography", s.seedGeography},
		{"providers", s.seedProviders},
		{"tours", s.seedTours},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("seeding %s: %w", step.name, err)
		}

		log.Info().Str("step", step.name).Msg("Seed step completed.")
	}

	return nil
}

// ensure inserts row unless one already matches field = value and returns
// the id of whichever row is stored.
func ensure[M any](ctx context.Context, repo crud.Repository[M], table, field string, value any, row M, id func(M) string) (string, error) {
	existing, err := repo.Get(ctx, shared.FilterByField(field, value, table))
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to look up %s: %w", table, err)
	}

	if found := id(existing); found != constant.Empty {
		log.Debug().Str("table", table).Interface(field, value).Msg("Row already seeded, skipping.")

		return found, nil
	}

	if err := repo.Insert(ctx, row); err != nil {
		return constant.Empty, fmt.Errorf("failed to insert %s: %w", table, err)
	}

	log.Info().Str("table", table).Interface(field, value).Msg("Row seeded.")

	return id(row), nil
}

func (s *Seeder) metadata() gModel.Metadata {
	return gModel.NewMetadata(seedUser, timezone.Now())
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	accounts := []struct {
		email, password, name string
		role                  userModel.Role
	}{
		{s.cfg.Seed.SuperAdminEmail, s.cfg.Seed.SuperAdminPassword, "Quản trị hệ thống", userModel.RoleSuperAdmin},
		{s.cfg.Seed.GuideEmail, s.cfg.Seed.GuidePassword, "Nguyễn Văn Hướng", userModel.RoleGuide},
	}

	for _, account := range accounts {
		hashed, err := password.Hash(account.password)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := userModel.User{
			ID:       uuid.NewString(),
			Email:    strings.ToLower(strings.TrimSpace(account.email)),
			Password: hashed,
			Fullname: account.name,
			Role:     account.role,
			IsActive: true,
			Metadata: s.metadata(),
		}

		if _, err := ensure[userModel.User](ctx, s.users, userModel.TableUser, userModel.FieldEmail, user.Email, user,
			func(m userModel.User) string { return m.ID }); err != nil {
			return err
		}
	}

	return nil
}

func (s *Seeder) seedGeography(ctx context.Context) error {
	for _, c := range sampleCountries {
		row := geoModel.Country{ID: uuid.NewString(), Name: c.name, Code: c.code, Metadata: s.metadata()}

		id, err := ensure[geoModel.Country](ctx, s.countries, geoModel.TableCountry, geoModel.FieldCode, c.code, row,
			func(m geoModel.Country) string { return m.ID })
		if err != nil {
			return err
		}

		s.ids["country:"+c.code] = id
	}

	for _, p := range sampleProvinces {
		row := geoModel.Province{
			ID:        uuid.NewString(),
			CountryID: s.ids["country:"+p.parent],
			Name:      p.name,
			Code:      p.code,
			Metadata:  s.metadata(),
		}

		id, err := ensure[geoModel.Province](ctx, s.provinces, geoModel.TableProvince, geoModel.FieldCode, p.code, row,
			func(m geoModel.Province) string { return m.ID })
		if err != nil {
			return err
		}

		s.ids["province:"+p.code] = id
	}

	for _, d := range sampleDestinations {
		row := geoModel.Destination{
			ID:          uuid.NewString(),
			ProvinceID:  s.ids["province:"+d.parent],
			Name:        d.name,
			Code:        d.code,
			Description: d.description,
			Metadata:    s.metadata(),
		}

		id, err := ensure[geoModel.Destination](ctx, s.destinations, geoModel.TableDestination, geoModel.FieldCode, d.code, row,
			func(m geoModel.Destination) string { return m.ID })
		if err != nil {
			return err
		}

		s.ids["destination:"+d.code] = id
	}

	return nil
}

func (s *Seeder) seedProviders(ctx context.Context) error {
	for _, name := range sampleServiceTypes {
		row := providerModel.ServiceType{ID: uuid.NewString(), Name: name, Metadata: s.metadata()}

		id, err := ensure[providerModel.ServiceType](ctx, s.serviceTypes, providerModel.TableServiceType, providerModel.FieldName, name, row,
			func(m providerModel.ServiceType) string { return m.ID })
		if err != nil {
			return err
		}

		s.ids["service_type:"+name] = id
	}

	for _, p := range sampleProviders {
		row := providerModel.Provider{
			ID:       uuid.NewString(),
			Name:     p.name,
			Phone:    p.phone,
			Email:    p.email,
			Address:  p.address,
			IsActive: true,
			Metadata: s.metadata(),
		}

		providerID, err := ensure[providerModel.Provider](ctx, s.providers, providerModel.TableProvider, providerModel.FieldName, p.name, row,
			func(m providerModel.Provider) string { return m.ID })
		if err != nil {
			return err
		}

		for _, svc := range p.services {
			service := providerModel.Service{
				ID:            uuid.NewString(),
				ProviderID:    providerID,
				ServiceTypeID: s.ids["service_type:"+svc.serviceType],
				Name:          svc.name,
				Price:         svc.price,
				Unit:          svc.unit,
				Metadata:      s.metadata(),
			}

			if _, err := ensure[providerModel.Service](ctx, s.services, providerModel.TableService, providerModel.FieldName, svc.name, service,
				func(m providerModel.Service) string { return m.ID }); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *Seeder) seedTours(ctx context.Context) error {
	today := timezone.Today()

	for _, t := range sampleTemplates {
		var destinationID *string
		if id, ok := s.ids["destination:"+t.destination]; ok {
			destinationID = &id
		}

		template := tourModel.TourTemplate{
			ID:            uuid.NewString(),
			DestinationID: destinationID,
			Code:          t.code,
			Title:         t.title,
			Day:           t.day,
			Night:         t.night,
			PriceAdult:    &t.priceAdult,
			PriceChildren: &t.priceChildren,
			IsActive:      true,
			Metadata:      s.metadata(),
		}

		templateID, err := ensure[tourModel.TourTemplate](ctx, s.templates, tourModel.TableTourTemplate, tourModel.FieldCode, t.code, template,
			func(m tourModel.TourTemplate) string { return m.ID })
		if err != nil {
			return err
		}

		departure := today.AddDate(0, 0, t.departsInDays)
		limit := t.slots

		instance := tourModel.TourInstance{
			ID:             uuid.NewString(),
			TourTemplateID: templateID,
			Code:           t.code + "-01",
			DepartureDate:  departure,
			ReturnDate:     departure.AddDate(0, 0, t.day-1),
			Limit:          &limit,
			Status:         tourModel.TourInstanceOpen,
			Metadata:       s.metadata(),
		}

		if _, err := ensure[tourModel.TourInstance](ctx, s.instances, tourModel.TableTourInstance, tourModel.FieldCode, instance.Code, instance,
			func(m tourModel.TourInstance) string { return m.ID }); err != nil {
			return err
		}
	}

	return nil
}
