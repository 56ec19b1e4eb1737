//go:build wireinject
// +build wireinject

package di

import (
	"socihub/config"
	"socihub/infras/jwt"
	"socihub/infras/kafka"
	"socihub/infras/otel"
	"socihub/infras/postgres"
	"socihub/infras/redis"
	"socihub/internal/events"
	amenityHandler "socihub/internal/handlers/amenity"
	"socihub/permissions"
	"socihub/shared/cache"
	"socihub/transport/http"
	"socihub/transport/http/middleware"
	"socihub/transport/http/router"

	amenityRepository "socihub/internal/domains/amenity/repository"
	amenityService "socihub/internal/domains/amenity/service"

	"github.com/google/wire"

	reservationRepository "socihub/internal/domains/reservation/repository"
	reservationService "socihub/internal/domains/reservation/service"
	reservationHandler "socihub/internal/handlers/reservation"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	events.NewPublisher,
)

var amenityDomain = wire.NewSet(
	amenityRepository.New,
	amenityService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var domains = wire.NewSet(
	amenityDomain,
	reservationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	amenityHandler.New,
	reservationHandler.New,
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
