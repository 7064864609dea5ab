//go:build wireinject
// +build wireinject

package di

import (
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/kafka"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/metrics"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/postgres"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/redis"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/middleware"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/router"

	bvRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/repository"
	bvService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/service"
	bookingRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	bookingService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/service"
	cardRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/repository"
	cardService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/service"
	chainRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	chainService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/service"
	loyaltyService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service"
	agencyRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/repository"
	agencyService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/service"
	pointTypeRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/repository"
	pointTypeService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/service"
	promotionRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/repository"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	portalRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/repository"
	portalService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/service"
	statusRepository "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/repository"
	statusService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/service"

	bvHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/benefitvaluation"
	bookingHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/booking"
	cardHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/creditcard"
	chainHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/hotelchain"
	agencyHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/otaagency"
	pointTypeHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/pointtype"
	promotionHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/promotion"
	portalHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/shoppingportal"
	statusHandler "github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/userstatus"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	gRepo.NewTransactor,
)

var repositories = wire.NewSet(
	pointTypeRepository.New,
	chainRepository.New,
	chainRepository.NewSubBrand,
	chainRepository.NewEliteStatus,
	cardRepository.New,
	portalRepository.New,
	agencyRepository.New,
	statusRepository.New,
	bookingRepository.New,
	bookingRepository.NewCertificate,
	bookingRepository.NewBookingPromotion,
	promotionRepository.New,
	bvRepository.New,
)

var domains = wire.NewSet(
	repositories,
	wire.Struct(new(bookingService.Repositories), "*"),
	promotionService.New,
	loyaltyService.New,
	pointTypeService.New,
	chainService.New,
	cardService.New,
	portalService.New,
	agencyService.New,
	statusService.New,
	bookingService.New,
	bvService.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	pointTypeHandler.New,
	chainHandler.New,
	cardHandler.New,
	portalHandler.New,
	agencyHandler.New,
	statusHandler.New,
	bookingHandler.New,
	promotionHandler.New,
	bvHandler.New,
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
