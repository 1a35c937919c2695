//go:build wireinject
// +build wireinject

package di

import (
	"agenda/config"
	"agenda/infras/jwt"
	"agenda/infras/kafka"
	"agenda/infras/mailer"
	"agenda/infras/otel"
	"agenda/infras/postgres"
	"agenda/infras/redis"
	"agenda/infras/s3"
	"agenda/permissions"
	"agenda/shared/cache"
	"agenda/transport/http"
	"agenda/transport/http/middleware"
	"agenda/transport/http/router"

	"github.com/google/wire"

	appointmentRepository "agenda/internal/domains/appointment/repository"
	appointmentService "agenda/internal/domains/appointment/service"
	authService "agenda/internal/domains/auth/service"
	availabilityRepository "agenda/internal/domains/availability/repository"
	availabilityService "agenda/internal/domains/availability/service"
	documentRepository "agenda/internal/domains/document/repository"
	documentService "agenda/internal/domains/document/service"
	financeRepository "agenda/internal/domains/finance/repository"
	financeService "agenda/internal/domains/finance/service"
	patientRepository "agenda/internal/domains/patient/repository"
	patientService "agenda/internal/domains/patient/service"
	sessionRepository "agenda/internal/domains/session/repository"
	sessionService "agenda/internal/domains/session/service"
	userRepository "agenda/internal/domains/user/repository"
	userService "agenda/internal/domains/user/service"

	appointmentHandler "agenda/internal/handlers/appointment"
	authHandler "agenda/internal/handlers/auth"
	availabilityHandler "agenda/internal/handlers/availability"
	documentHandler "agenda/internal/handlers/document"
	financeHandler "agenda/internal/handlers/finance"
	patientHandler "agenda/internal/handlers/patient"
	sessionHandler "agenda/internal/handlers/session"
	userHandler "agenda/internal/handlers/user"
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
	s3.New,
	mailer.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	userService.New,
	authService.New,
)

var availabilityDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
)

var appointmentDomain = wire.NewSet(
	appointmentRepository.New,
	appointmentService.New,
)

var patientDomain = wire.NewSet(
	patientRepository.New,
	patientService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var documentDomain = wire.NewSet(
	documentRepository.New,
	documentService.New,
)

var financeDomain = wire.NewSet(
	financeRepository.New,
	financeService.New,
)

var domains = wire.NewSet(
	authDomain,
	availabilityDomain,
	appointmentDomain,
	patientDomain,
	sessionDomain,
	documentDomain,
	financeDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	userHandler.New,
	availabilityHandler.New,
	appointmentHandler.New,
	patientHandler.New,
	sessionHandler.New,
	documentHandler.New,
	financeHandler.New,
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
