//go:build wireinject
// +build wireinject

package di

import (
	"tourdesk/config"
	"tourdesk/infras/jwt"
	"tourdesk/infras/kafka"
	"tourdesk/infras/otel"
	"tourdesk/infras/postgres"
	"tourdesk/infras/redis"
	"tourdesk/infras/s3"
	"tourdesk/internal/events"
	"tourdesk/internal/seeder"
	"tourdesk/permissions"
	"tourdesk/shared/cache"
	"tourdesk/transport/http"
	"tourdesk/transport/http/middleware"
	"tourdesk/transport/http/router"

	authService "tourdesk/internal/domains/auth/service"
	bookingRepository "tourdesk/internal/domains/booking/repository"
	bookingService "tourdesk/internal/domains/booking/service"
	documentService "tourdesk/internal/domains/document/service"
	geoRepository "tourdesk/internal/domains/geo/repository"
	geoService "tourdesk/internal/domains/geo/service"
	providerRepository "tourdesk/internal/domains/provider/repository"
	providerService "tourdesk/internal/domains/provider/service"
	tourRepository "tourdesk/internal/domains/tour/repository"
	tourService "tourdesk/internal/domains/tour/service"
	tripRepository "tourdesk/internal/domains/trip/repository"
	tripService "tourdesk/internal/domains/trip/service"
	userRepository "tourdesk/internal/domains/user/repository"
	userService "tourdesk/internal/domains/user/service"

	authHandler "tourdesk/internal/handlers/auth"
	bookingHandler "tourdesk/internal/handlers/booking"
	geoHandler "tourdesk/internal/handlers/geo"
	providerHandler "tourdesk/internal/handlers/provider"
	tourHandler "tourdesk/internal/handlers/tour"
	tripHandler "tourdesk/internal/handlers/trip"
	userHandler "tourdesk/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	postgres.NewTransactor,
	otel.New,
	redis.New,
	jwt.New,
	s3.New,
	kafka.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userRepository.NewDetail,
	userService.New,
	authService.New,
)

var geoDomain = wire.NewSet(
	geoRepository.NewCountry,
	geoRepository.NewProvince,
	geoRepository.NewDestination,
	geoService.NewCountry,
	geoService.NewProvince,
	geoService.NewDestination,
)

var tourDomain = wire.NewSet(
	tourRepository.NewTourTemplate,
	tourRepository.NewTourInstance,
	tourService.NewTourTemplate,
	tourService.NewTourInstance,
)

var bookingDomain = wire.NewSet(
	bookingRepository.NewBooking,
	bookingRepository.NewPassenger,
	bookingRepository.NewPayment,
	bookingService.NewBooking,
	bookingService.NewPassenger,
	bookingService.NewPayment,
	bookingService.NewImporter,
	documentService.New,
)

var providerDomain = wire.NewSet(
	providerRepository.NewProvider,
	providerRepository.NewServiceType,
	providerRepository.NewService,
	providerRepository.NewServiceAttribute,
	providerService.NewProvider,
	providerService.NewServiceType,
	providerService.NewService,
	providerService.NewServiceAttribute,
)

var tripDomain = wire.NewSet(
	tripRepository.NewTripAssignment,
	tripRepository.NewTripCheckIn,
	tripRepository.NewCheckInDetail,
	tripService.NewTripAssignment,
	tripService.NewTripCheckIn,
)

var domains = wire.NewSet(
	userDomain,
	geoDomain,
	tourDomain,
	bookingDomain,
	providerDomain,
	tripDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	geoHandler.New,
	tourHandler.New,
	bookingHandler.New,
	providerHandler.New,
	tripHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}

func InitializeWorker() *events.Worker {
	wire.Build(
		configurations,
		otel.New,
		redis.New,
		kafka.New,
		cache.NewRedisCache,
		events.NewInvalidator,
		events.NewWorker,
	)

	return &events.Worker{}
}

func InitializeSeeder() *seeder.Seeder {
	wire.Build(
		configurations,
		postgres.New,
		otel.New,
		userRepository.New,
		geoRepository.NewCountry,
		geoRepository.NewProvince,
		geoRepository.NewDestination,
		providerRepository.NewServiceType,
		providerRepository.NewProvider,
		providerRepository.NewService,
		tourRepository.NewTourTemplate,
		tourRepository.NewTourInstance,
		seeder.New,
	)

	return &seeder.Seeder{}
}
