package shoppingportal

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.ShoppingPortal
	otel    otel.Otel
}

func New(service service.ShoppingPortal, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shopping-portals", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateShoppingPortal)
		routerGroup.Get("/", handler.GetShoppingPortals)
		routerGroup.Get("/{id}", handler.GetShoppingPortalByID)
		routerGroup.Put("/{id}", handler.UpdateShoppingPortal)
		routerGroup.Delete("/{id}", handler.DeleteShoppingPortal)
	})
}

// CreateShoppingPortal handles the creation of a new shopping portal.
// @Summary Create a shopping portal
// @Tags ShoppingPortal
// @Accept json
// @Produce json
// @Param request body dto.CreateShoppingPortalRequest true "Shopping portal"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-portals [post]
func (handler *Handler) CreateShoppingPortal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateShoppingPortal")
	defer scope.End()

	var req dto.CreateShoppingPortalRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create shopping portal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping portal created successfully", map[string]any{"id": id})

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// GetShoppingPortals lists shopping portal records.
// @Summary List shopping portal records
// @Tags ShoppingPortal
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param reward_type query string false "Filter by reward type (cashback, points)"
// @Success 200 {object} response.Data[dto.GetShoppingPortalsResponse]
// @Failure 500 {object} response.Error
// @Router /v1/shopping-portals [get]
func (handler *Handler) GetShoppingPortals(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShoppingPortals")
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
		log.Error().Err(err).Msg("failed to get shopping portal list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetShoppingPortalByID retrieves a shopping portal by its ID.
// @Summary Get a shopping portal
// @Tags ShoppingPortal
// @Produce json
// @Param id path string true "Shopping portal ID"
// @Success 200 {object} response.Data[dto.ShoppingPortalResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-portals/{id} [get]
func (handler *Handler) GetShoppingPortalByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShoppingPortalByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shopping portal by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdateShoppingPortal patches the provided fields of a shopping portal.
// @Summary Update a shopping portal
// @Tags ShoppingPortal
// @Accept json
// @Produce json
// @Param id path string true "Shopping portal ID"
// @Param request body dto.UpdateShoppingPortalRequest true "Fields to change"
// @Success 200 {object} response.Message "Shopping portal updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shopping-portals/{id} [put]
func (handler *Handler) UpdateShoppingPortal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShoppingPortal")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateShoppingPortalRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update shopping portal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping portal updated successfully", map[string]any{"id": id})

	response.WithMessage(w, http.StatusOK, "Shopping portal updated successfully")
}

// DeleteShoppingPortal removes a shopping portal that no booking references.
// @Summary Delete a shopping portal
// @Tags ShoppingPortal
// @Produce json
// @Param id path string true "Shopping portal ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Still referenced"
// @Failure 500 {object} response.Error
// @Router /v1/shopping-portals/{id} [delete]
func (handler *Handler) DeleteShoppingPortal(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteShoppingPortal")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete shopping portal")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shopping portal deleted successfully", map[string]any{"id": chi.URLParam(r, constant.RequestParamID)})

	response.WithMessage(w, http.StatusOK, "Shopping portal deleted successfully")
}
