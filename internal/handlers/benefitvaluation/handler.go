package benefitvaluation

import (
	"net/http"
	"strconv"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.BenefitValuation
	otel    otel.Otel
}

func New(service service.BenefitValuation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/benefit-valuations", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetValuations)
		routerGroup.Put("/", handler.SaveValuations)
		routerGroup.Get("/resolve", handler.ResolveValuation)
	})
}

// GetValuations lists stored benefit valuations, deleted rows included.
// @Summary List benefit valuations
// @Tags BenefitValuation
// @Produce json
// @Success 200 {object} response.Data[dto.GetValuationsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/benefit-valuations [get]
func (handler *Handler) GetValuations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetValuations")
	defer scope.End()

	result, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get benefit valuations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// SaveValuations upserts valuations and re-evaluates every booking.
// @Summary Save benefit valuations
// @Description Rows are keyed by hotel chain and discriminator. A null value deletes the row.
// @Tags BenefitValuation
// @Accept json
// @Produce json
// @Param request body dto.SaveValuationsRequest true "Valuations"
// @Success 200 {object} response.Data[dto.SaveValuationsResponse]
// @Success 207 {object} response.Data[dto.SaveValuationsResponse] "Saved, some bookings failed to re-match"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/benefit-valuations [put]
func (handler *Handler) SaveValuations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SaveValuations")
	defer scope.End()

	var req dto.SaveValuationsRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	result, err := handler.service.SaveAll(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to save benefit valuations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusOK, result.Reevaluation.Partial()), result)
}

// ResolveValuation prices one benefit through chain, global and fallback tiers.
// @Summary Resolve a benefit valuation
// @Tags BenefitValuation
// @Produce json
// @Param hotel_chain_id query string false "Hotel chain"
// @Param is_eqn query boolean false "Price an EQN"
// @Param cert_type query string false "Price a certificate type"
// @Param benefit_type query string false "Price a named benefit"
// @Success 200 {object} response.Data[dto.ResolveResponse]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/benefit-valuations/resolve [get]
func (handler *Handler) ResolveValuation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResolveValuation")
	defer scope.End()

	query := r.URL.Query()

	req := dto.ResolveRequest{
		HotelChainID: query.Get(model.FieldHotelChainID),
		CertType:     query.Get(model.FieldCertType),
		BenefitType:  query.Get(model.FieldBenefitType),
	}

	if raw := query.Get(model.FieldIsEqn); raw != "" {
		isEqn, err := strconv.ParseBool(raw)
		if err != nil {
			err = failure.BadRequestf("invalid %s parameter", model.FieldIsEqn)
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		req.IsEqn = isEqn
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	result, err := handler.service.Resolve(ctx, req.ToQuery())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve benefit valuation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
