package promotion

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Promotion
	otel    otel.Otel
}

func New(service service.Promotion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/promotions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePromotion)
		routerGroup.Get("/", handler.GetPromotions)
		routerGroup.Post("/match", handler.MatchPromotions)
		routerGroup.Post("/reevaluate", handler.ReevaluateBookings)
		routerGroup.Get("/{id}", handler.GetPromotionByID)
		routerGroup.Put("/{id}", handler.UpdatePromotion)
		routerGroup.Delete("/{id}", handler.DeletePromotion)
	})
}

// CreatePromotion stores a promotion and matches it against every booking.
// @Summary Create a promotion
// @Tags Promotion
// @Accept json
// @Produce json
// @Param request body dto.PromotionRequest true "Promotion"
// @Success 201 {object} response.Data[dto.SaveResponse]
// @Success 207 {object} response.Data[dto.SaveResponse] "Saved, some bookings failed to re-match"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promotions [post]
func (handler *Handler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePromotion")
	defer scope.End()

	var req dto.PromotionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create promotion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusCreated, result.Reevaluation.Partial()), result)
}

// GetPromotions lists promotions.
// @Summary List promotions
// @Tags Promotion
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param type query string false "Filter by type (credit_card, portal, loyalty)"
// @Param hotel_chain_id query string false "Filter by hotel chain"
// @Param is_active query boolean false "Filter by active flag"
// @Success 200 {object} response.Data[dto.GetPromotionsResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promotions [get]
func (handler *Handler) GetPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromotions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, model.FieldStartDate, model.FieldEndDate, constant.FieldCreatedAt)

	query := r.URL.Query()

	var active any

	if raw := query.Get(model.FieldIsActive); raw != "" {
		isActive, err := strconv.ParseBool(raw)
		if err != nil {
			err = failure.BadRequestf("invalid %s parameter", model.FieldIsActive)
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		active = gDto.Eq(model.TableName, model.FieldIsActive, isActive)
	}

	filter := gDto.And(
		gDto.EqIfSet(model.TableName, model.FieldType, query.Get(model.FieldType)),
		gDto.EqIfSet(model.TableName, model.FieldHotelChainID, query.Get(model.FieldHotelChainID)),
		active,
	)

	result, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promotions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetPromotionByID retrieves a promotion.
// @Summary Get a promotion
// @Tags Promotion
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} response.Data[dto.PromotionResponse]
// @Failure 404 {object} response.Error
// @Router /v1/promotions/{id} [get]
func (handler *Handler) GetPromotionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPromotionByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get promotion by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdatePromotion replaces a promotion and re-matches every booking.
// @Summary Update a promotion
// @Tags Promotion
// @Accept json
// @Produce json
// @Param id path string true "Promotion ID"
// @Param request body dto.PromotionRequest true "Promotion"
// @Success 200 {object} response.Data[dto.SaveResponse]
// @Success 207 {object} response.Data[dto.SaveResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/promotions/{id} [put]
func (handler *Handler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePromotion")
	defer scope.End()

	var req dto.PromotionRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update promotion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusOK, result.Reevaluation.Partial()), result)
}

// DeletePromotion removes a promotion and re-matches the bookings it touched.
// @Summary Delete a promotion
// @Tags Promotion
// @Produce json
// @Param id path string true "Promotion ID"
// @Success 200 {object} response.Data[dto.Report]
// @Success 207 {object} response.Data[dto.Report]
// @Failure 404 {object} response.Error
// @Router /v1/promotions/{id} [delete]
func (handler *Handler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePromotion")
	defer scope.End()

	report, err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete promotion")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusOK, report.Partial()), report)
}

// MatchPromotions runs the matcher for a single booking.
// @Summary Match promotions for a booking
// @Tags Promotion
// @Accept json
// @Produce json
// @Param request body dto.MatchRequest true "Booking"
// @Success 200 {object} response.Data[dto.MatchResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/promotions/match [post]
func (handler *Handler) MatchPromotions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".MatchPromotions")
	defer scope.End()

	var req dto.MatchRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	applied, err := handler.service.MatchPromotionsForBooking(ctx, req.BookingID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to match promotions")

		response.WithError(w, err)

		return
	}

	var result dto.MatchResponse
	result.FromModels(req.BookingID, applied)

	response.WithJSON(w, http.StatusOK, result)
}

// ReevaluateBookings re-matches the given bookings, or all of them when none are named.
// @Summary Re-evaluate bookings
// @Tags Promotion
// @Accept json
// @Produce json
// @Param request body dto.ReevaluateRequest false "Booking ids"
// @Success 200 {object} response.Data[dto.Report]
// @Success 207 {object} response.Data[dto.Report] "Some bookings failed"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/promotions/reevaluate [post]
func (handler *Handler) ReevaluateBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ReevaluateBookings")
	defer scope.End()

	var req dto.ReevaluateRequest
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}
	}

	var (
		report dto.Report
		err    error
	)

	if len(req.BookingIDs) == 0 {
		report, err = handler.service.ReevaluateAll(ctx)
	} else {
		report, err = handler.service.ReevaluateBookings(ctx, req.BookingIDs)
	}

	if err != nil && !errors.Is(err, service.ErrPartialReevaluation) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reevaluate bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusOK, report.Partial()), report)
}
