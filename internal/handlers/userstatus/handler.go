package userstatus

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.UserStatus
	otel    otel.Otel
}

func New(service service.UserStatus, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/user-statuses", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetUserStatuses)
		routerGroup.Put("/{hotelChainID}", handler.SetUserStatus)
	})
}

// GetUserStatuses lists the elite tier held with each hotel chain.
// @Summary List user statuses
// @Tags UserStatus
// @Produce json
// @Success 200 {object} response.Data[dto.GetUserStatusesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/user-statuses [get]
func (handler *Handler) GetUserStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserStatuses")
	defer scope.End()

	result, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user statuses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// SetUserStatus sets or clears the elite tier held with a hotel chain.
// A change recalculates loyalty points of the chain's bookings.
// @Summary Set user status for a hotel chain
// @Tags UserStatus
// @Accept json
// @Produce json
// @Param hotelChainID path string true "Hotel chain ID"
// @Param request body dto.SetUserStatusRequest true "Elite status, null clears it"
// @Success 200 {object} response.Data[dto.SetUserStatusResponse]
// @Success 207 {object} response.Data[dto.SetUserStatusResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/user-statuses/{hotelChainID} [put]
func (handler *Handler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetUserStatus")
	defer scope.End()

	var req dto.SetUserStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Set(ctx, chi.URLParam(r, constant.RequestParamHotelChain), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set user status")

		response.WithError(w, err)

		return
	}

	partial := result.Recalculation != nil && result.Recalculation.Partial()

	response.WithJSON(w, response.StatusFor(http.StatusOK, partial), result)
}
