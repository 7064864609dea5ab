package booking

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GetBookingPromotions lists the promotions associated with a booking.
// @Summary List booking promotions
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[[]dto.BookingPromotionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/promotions [get]
func (handler *Handler) GetBookingPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingPromotions")
	defer scope.End()

	result, err := handler.service.GetPromotions(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking promotions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// AddBookingPromotion asserts a promotion applies with an explicit value.
// @Summary Add a manual promotion to a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddPromotionRequest true "Promotion and value"
// @Success 201 {object} response.Data[dto.BookingPromotionResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Already applied"
// @Router /v1/bookings/{id}/promotions [post]
func (handler *Handler) AddBookingPromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBookingPromotion")
	defer scope.End()

	var req dto.AddPromotionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.service.AddPromotion(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add booking promotion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, result)
}

// VerifyBookingPromotion confirms an auto-applied promotion was actually credited.
// @Summary Verify a booking promotion
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param promotionID path string true "Promotion ID"
// @Success 200 {object} response.Data[dto.BookingPromotionResponse]
// @Failure 400 {object} response.Error "Manual rows cannot be verified"
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/promotions/{promotionID}/verify [patch]
func (handler *Handler) VerifyBookingPromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyBookingPromotion")
	defer scope.End()

	result, err := handler.service.VerifyPromotion(ctx,
		chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamPromotionID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify booking promotion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// RemoveBookingPromotion drops a promotion from a booking.
// @Summary Remove a booking promotion
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Param promotionID path string true "Promotion ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/promotions/{promotionID} [delete]
func (handler *Handler) RemoveBookingPromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveBookingPromotion")
	defer scope.End()

	err := handler.service.RemovePromotion(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamPromotionID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove booking promotion")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Promotion removed from booking")
}
