package router

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/benefitvaluation"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/booking"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/creditcard"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/hotelchain"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/otaagency"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/pointtype"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/promotion"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/shoppingportal"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/userstatus"
	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	PointType        pointtype.Handler
	HotelChain       hotelchain.Handler
	CreditCard       creditcard.Handler
	ShoppingPortal   shoppingportal.Handler
	OtaAgency        otaagency.Handler
	UserStatus       userstatus.Handler
	Booking          booking.Handler
	Promotion        promotion.Handler
	BenefitValuation benefitvaluation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.PointType.Router(routerGroup)
		r.DomainHandlers.HotelChain.Router(routerGroup)
		r.DomainHandlers.CreditCard.Router(routerGroup)
		r.DomainHandlers.ShoppingPortal.Router(routerGroup)
		r.DomainHandlers.OtaAgency.Router(routerGroup)
		r.DomainHandlers.UserStatus.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Promotion.Router(routerGroup)
		r.DomainHandlers.BenefitValuation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
