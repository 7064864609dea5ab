package creditcard

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CreditCard
	otel    otel.Otel
}

func New(service service.CreditCard, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/credit-cards", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCreditCard)
		routerGroup.Get("/", handler.GetCreditCards)
		routerGroup.Get("/{id}", handler.GetCreditCardByID)
		routerGroup.Put("/{id}", handler.UpdateCreditCard)
		routerGroup.Delete("/{id}", handler.DeleteCreditCard)
	})
}

// CreateCreditCard handles the creation of a new credit card.
// @Summary Create a credit card
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param request body dto.CreateCreditCardRequest true "Credit card"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/credit-cards [post]
func (handler *Handler) CreateCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCreditCard")
	defer scope.End()

	var req dto.CreateCreditCardRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create credit card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credit card created successfully", map[string]any{"id": id})

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// GetCreditCards lists credit card records.
// @Summary List credit card records
// @Tags CreditCard
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param reward_type query string false "Filter by reward type (cashback, points)"
// @Success 200 {object} response.Data[dto.GetCreditCardsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/credit-cards [get]
func (handler *Handler) GetCreditCards(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditCards")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, constant.FieldCreatedAt)

	filter := gDto.And(
		gDto.LikeIfSet(model.TableName, model.FieldName, r.URL.Query().Get(model.FieldName)),
		gDto.EqIfSet(model.TableName, model.FieldRewardType, r.URL.Query().Get(model.FieldRewardType)),
	)

	result, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit card list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetCreditCardByID retrieves a credit card by its ID.
// @Summary Get a credit card
// @Tags CreditCard
// @Produce json
// @Param id path string true "Credit card ID"
// @Success 200 {object} response.Data[dto.CreditCardResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/credit-cards/{id} [get]
func (handler *Handler) GetCreditCardByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCreditCardByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get credit card by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdateCreditCard patches the provided fields of a credit card.
// @Summary Update a credit card
// @Tags CreditCard
// @Accept json
// @Produce json
// @Param id path string true "Credit card ID"
// @Param request body dto.UpdateCreditCardRequest true "Fields to change"
// @Success 200 {object} response.Message "Credit card updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/credit-cards/{id} [put]
func (handler *Handler) UpdateCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCreditCard")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateCreditCardRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update credit card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credit card updated successfully", map[string]any{"id": id})

	response.WithMessage(w, http.StatusOK, "Credit card updated successfully")
}

// DeleteCreditCard removes a credit card that no booking references.
// @Summary Delete a credit card
// @Tags CreditCard
// @Produce json
// @Param id path string true "Credit card ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Still referenced"
// @Failure 500 {object} response.Error
// @Router /v1/credit-cards/{id} [delete]
func (handler *Handler) DeleteCreditCard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCreditCard")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete credit card")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Credit card deleted successfully", map[string]any{"id": chi.URLParam(r, constant.RequestParamID)})

	response.WithMessage(w, http.StatusOK, "Credit card deleted successfully")
}
