package otaagency

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.OtaAgency
	otel    otel.Otel
}

func New(service service.OtaAgency, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ota-agencies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateOtaAgency)
		routerGroup.Get("/", handler.GetOtaAgencies)
		routerGroup.Get("/{id}", handler.GetOtaAgencyByID)
		routerGroup.Put("/{id}", handler.UpdateOtaAgency)
		routerGroup.Delete("/{id}", handler.DeleteOtaAgency)
	})
}

// CreateOtaAgency handles the creation of a new OTA agency.
// @Summary Create a OTA agency
// @Tags OtaAgency
// @Accept json
// @Produce json
// @Param request body dto.CreateOtaAgencyRequest true "OTA agency"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ota-agencies [post]
func (handler *Handler) CreateOtaAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateOtaAgency")
	defer scope.End()

	var req dto.CreateOtaAgencyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	id, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create OTA agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA agency created successfully", map[string]any{"id": id})

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// GetOtaAgencies lists OTA agency records.
// @Summary List OTA agency records
// @Tags OtaAgency
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by name"
// @Success 200 {object} response.Data[dto.GetOtaAgenciesResponse]
// @Failure 500 {object} response.Error
// @Router /v1/ota-agencies [get]
func (handler *Handler) GetOtaAgencies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtaAgencies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)
	queryParams.RestrictSort(model.TableName, model.FieldName, constant.FieldCreatedAt)

	filter := gDto.And(
		gDto.LikeIfSet(model.TableName, model.FieldName, r.URL.Query().Get(model.FieldName)),
	)

	result, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get OTA agency list")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// GetOtaAgencyByID retrieves a OTA agency by its ID.
// @Summary Get a OTA agency
// @Tags OtaAgency
// @Produce json
// @Param id path string true "OTA agency ID"
// @Success 200 {object} response.Data[dto.OtaAgencyResponse]
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ota-agencies/{id} [get]
func (handler *Handler) GetOtaAgencyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOtaAgencyByID")
	defer scope.End()

	result, err := handler.service.Get(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get OTA agency by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// UpdateOtaAgency patches the provided fields of a OTA agency.
// @Summary Update a OTA agency
// @Tags OtaAgency
// @Accept json
// @Produce json
// @Param id path string true "OTA agency ID"
// @Param request body dto.UpdateOtaAgencyRequest true "Fields to change"
// @Success 200 {object} response.Message "OTA agency updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/ota-agencies/{id} [put]
func (handler *Handler) UpdateOtaAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateOtaAgency")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateOtaAgencyRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update OTA agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA agency updated successfully", map[string]any{"id": id})

	response.WithMessage(w, http.StatusOK, "OTA agency updated successfully")
}

// DeleteOtaAgency removes a OTA agency that no booking references.
// @Summary Delete a OTA agency
// @Tags OtaAgency
// @Produce json
// @Param id path string true "OTA agency ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Still referenced"
// @Failure 500 {object} response.Error
// @Router /v1/ota-agencies/{id} [delete]
func (handler *Handler) DeleteOtaAgency(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteOtaAgency")
	defer scope.End()

	if err := handler.service.Delete(ctx, chi.URLParam(r, constant.RequestParamID)); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete OTA agency")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("OTA agency deleted successfully", map[string]any{"id": chi.URLParam(r, constant.RequestParamID)})

	response.WithMessage(w, http.StatusOK, "OTA agency deleted successfully")
}
