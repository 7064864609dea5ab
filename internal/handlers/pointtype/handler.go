package pointtype

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.PointType
	otel    otel.Otel
}

func New(service service.PointType, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/point-types", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreatePointType)
		routerGroup.Get("/", handler.GetPointTypes)
		routerGroup.Get("/{id}", handler.GetPointTypeByID)
		routerGroup.Put("/{id}", handler.UpdatePointType)
		routerGroup.Delete("/{id}", handler.DeletePointType)
	})
}

// CreatePointType handles the creation of a new point type.
// @Summary Create a point type
// @Tags PointType
// @Accept json
// @Produce json
// @Param request body dto.CreatePointTypeRequest true "Point type"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/point-types [post]
func (handler *Handler) CreatePointType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePointType")
	defer scope.End()

	var req dto.CreatePointTypeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create point type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Point type created successfully", map[string]any{"id": id})

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// GetPointTypes lists point type records.
// @Summary List point type records
// @Tags PointType
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Param category query string false "Filter by category (hotel, airline, transferable)"
// @Success 200 {object} response.Data[dto.GetPointTypesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/point-types [get]
func (handler *Handler) GetPointTypes(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPointTypes")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, constant.FieldCreatedAt)

	filter := gDto.And(
		gDto.LikeIfSet(model.TableName, model.FieldName, r.URL.Query().Get(model.FieldName)),
		gDto.EqIfSet(model.TableName, model.FieldCategory, r.URL.Query().Get(model.FieldCategory)),
	)

	result, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get point type list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetPointTypeByID retrieves a point type by its ID.
// @Summary Get a point type
// @Tags PointType
// @Produce json
// @Param id path string true "Point type ID"
// @Success 200 {object} response.Data[dto.PointTypeResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/point-types/{id} [get]
func (handler *Handler) GetPointTypeByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPointTypeByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get point type by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdatePointType patches the provided fields of a point type.
// @Summary Update a point type
// @Tags PointType
// @Accept json
// @Produce json
// @Param id path string true "Point type ID"
// @Param request body dto.UpdatePointTypeRequest true "Fields to change"
// @Success 200 {object} response.Data[promotionDto.Report] "Bookings re-evaluated against the new value"
// @Success 207 {object} response.Data[promotionDto.Report] "Some bookings failed to re-evaluate"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/point-types/{id} [put]
func (handler *Handler) UpdatePointType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePointType")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdatePointTypeRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update point type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Point type updated successfully", map[string]any{"id": id})

	response.WithJSON(w, response.StatusFor(http.StatusOK, report.Partial()), report)
}

// DeletePointType removes a point type that no booking references.
// @Summary Delete a point type
// @Tags PointType
// @Produce json
// @Param id path string true "Point type ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Still referenced"
// @Failure 500 {object} response.Error
// @Router /v1/point-types/{id} [delete]
func (handler *Handler) DeletePointType(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePointType")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete point type")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Point type deleted successfully", map[string]any{"id": chi.URLParam(r, constant.RequestParamID)})

	response.WithMessage(w, http.StatusOK, "Point type deleted successfully")
}
