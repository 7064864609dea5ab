package hotelchain

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/service"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.HotelChain
	otel    otel.Otel
}

func New(service service.HotelChain, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotel-chains", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotelChain)
		routerGroup.Get("/", handler.GetHotelChains)
		routerGroup.Get("/{id}", handler.GetHotelChainByID)
		routerGroup.Put("/{id}", handler.UpdateHotelChain)
		routerGroup.Delete("/{id}", handler.DeleteHotelChain)

		routerGroup.Route("/{id}/sub-brands", func(sub chi.Router) {
			sub.Get("/", handler.GetSubBrands)
			sub.Post("/", handler.CreateSubBrand)
			sub.Put("/{childID}", handler.UpdateSubBrand)
			sub.Delete("/{childID}", handler.DeleteSubBrand)
		})

		routerGroup.Route("/{id}/elite-statuses", func(sub chi.Router) {
			sub.Get("/", handler.GetEliteStatuses)
			sub.Post("/", handler.CreateEliteStatus)
			sub.Put("/{childID}", handler.UpdateEliteStatus)
			sub.Delete("/{childID}", handler.DeleteEliteStatus)
		})
	})
}

// CreateHotelChain handles the creation of a new hotel chain.
// @Summary Create a hotel chain
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param request body dto.CreateHotelChainRequest true "Hotel chain"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel-chains [post]
func (handler *Handler) CreateHotelChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotelChain")
	defer scope.End()

	var req dto.CreateHotelChainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel chain")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel chain created successfully", map[string]any{"id": id})

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// GetHotelChains lists hotel chains.
// @Summary List hotel chains
// @Tags HotelChain
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetHotelChainsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/hotel-chains [get]
func (handler *Handler) GetHotelChains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelChains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, constant.FieldCreatedAt)

	filter := gDto.And(gDto.LikeIfSet(model.TableName, model.FieldName, r.URL.Query().Get(model.FieldName)))

	result, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chains")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetHotelChainByID returns a hotel chain with its sub-brands and elite statuses.
// @Summary Get a hotel chain
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Data[dto.HotelChainResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel-chains/{id} [get]
func (handler *Handler) GetHotelChainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelChainByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel chain by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdateHotelChain patches a hotel chain. A changed base point rate recalculates
// the chain's bookings and the report is returned.
// @Summary Update a hotel chain
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param request body dto.UpdateHotelChainRequest true "Fields to change"
// @Success 200 {object} response.Data[loyaltyDto.RecalculationReport]
// @Success 207 {object} response.Data[loyaltyDto.RecalculationReport]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotel-chains/{id} [put]
func (handler *Handler) UpdateHotelChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotelChain")
	defer scope.End()

	var req dto.UpdateHotelChainRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Update(ctx, req, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update hotel chain")

		response.WithError(w, err)

		return
	}

	withRecalculation(w, report, "Hotel chain updated successfully")
}

// DeleteHotelChain removes a hotel chain without bookings.
// @Summary Delete a hotel chain
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Chain has bookings"
// @Failure 500 {object} response.Error
// @Router /v1/hotel-chains/{id} [delete]
func (handler *Handler) DeleteHotelChain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteHotelChain")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete hotel chain")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Hotel chain deleted successfully")
}

// withRecalculation answers with the loyalty report when one ran, or a plain message.
func withRecalculation(w http.ResponseWriter, report *loyaltyDto.RecalculationReport, message string) {
	if report == nil {
		response.WithMessage(w, http.StatusOK, message)

		return
	}

	response.WithJSON(w, response.StatusFor(http.StatusOK, report.Partial()), report)
}
