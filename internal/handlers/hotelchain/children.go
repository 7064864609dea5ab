package hotelchain

import (
	"net/http"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/validator"
	"github.com/chris-catignani/hotel-tracker-sub001/transport/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GetSubBrands lists the sub-brands of a hotel chain.
// @Summary List sub-brands
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Data[[]dto.SubBrandResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/sub-brands [get]
func (handler *Handler) GetSubBrands(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubBrands")
	defer scope.End()

	result, err := handler.service.GetSubBrands(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get sub-brands")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// CreateSubBrand adds a sub-brand to a hotel chain.
// @Summary Create a sub-brand
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param request body dto.CreateSubBrandRequest true "Sub-brand"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/sub-brands [post]
func (handler *Handler) CreateSubBrand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubBrand")
	defer scope.End()

	var req dto.CreateSubBrandRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateSubBrand(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create sub-brand")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// UpdateSubBrand patches a sub-brand. A changed base point rate recalculates the chain.
// @Summary Update a sub-brand
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param childID path string true "Sub-brand ID"
// @Param request body dto.UpdateSubBrandRequest true "Fields to change"
// @Success 200 {object} response.Data[loyaltyDto.RecalculationReport]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/sub-brands/{childID} [put]
func (handler *Handler) UpdateSubBrand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSubBrand")
	defer scope.End()

	var req dto.UpdateSubBrandRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	report, err := handler.service.UpdateSubBrand(ctx,
		chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update sub-brand")

		response.WithError(w, err)

		return
	}

	withRecalculation(w, report, "Sub-brand updated successfully")
}

// DeleteSubBrand removes a sub-brand that no booking uses.
// @Summary Delete a sub-brand
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param childID path string true "Sub-brand ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotel-chains/{id}/sub-brands/{childID} [delete]
func (handler *Handler) DeleteSubBrand(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSubBrand")
	defer scope.End()

	err := handler.service.DeleteSubBrand(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete sub-brand")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Sub-brand deleted successfully")
}

// GetEliteStatuses lists a chain's elite tiers, lowest rank first.
// @Summary List elite statuses
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Success 200 {object} response.Data[[]dto.EliteStatusResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/elite-statuses [get]
func (handler *Handler) GetEliteStatuses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEliteStatuses")
	defer scope.End()

	result, err := handler.service.GetEliteStatuses(ctx, chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get elite statuses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}

// CreateEliteStatus adds an elite tier to a hotel chain.
// @Summary Create an elite status
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param request body dto.CreateEliteStatusRequest true "Elite status"
// @Success 201 {object} response.Data[gDto.Created]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/elite-statuses [post]
func (handler *Handler) CreateEliteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEliteStatus")
	defer scope.End()

	var req dto.CreateEliteStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	id, err := handler.service.CreateEliteStatus(ctx, chi.URLParam(r, constant.RequestParamID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create elite status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, gDto.Created{ID: id})
}

// UpdateEliteStatus patches an elite tier. A changed point rate on the tier the
// user holds recalculates the chain.
// @Summary Update an elite status
// @Tags HotelChain
// @Accept json
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param childID path string true "Elite status ID"
// @Param request body dto.UpdateEliteStatusRequest true "Fields to change"
// @Success 200 {object} response.Data[loyaltyDto.RecalculationReport]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotel-chains/{id}/elite-statuses/{childID} [put]
func (handler *Handler) UpdateEliteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEliteStatus")
	defer scope.End()

	var req dto.UpdateEliteStatusRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	report, err := handler.service.UpdateEliteStatus(ctx,
		chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID), req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update elite status")

		response.WithError(w, err)

		return
	}

	withRecalculation(w, report, "Elite status updated successfully")
}

// DeleteEliteStatus removes an elite tier the user does not hold.
// @Summary Delete an elite status
// @Tags HotelChain
// @Produce json
// @Param id path string true "Hotel chain ID"
// @Param childID path string true "Elite status ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/hotel-chains/{id}/elite-statuses/{childID} [delete]
func (handler *Handler) DeleteEliteStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEliteStatus")
	defer scope.End()

	err := handler.service.DeleteEliteStatus(ctx, chi.URLParam(r, constant.RequestParamID), chi.URLParam(r, constant.RequestParamChildID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete elite status")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Elite status deleted successfully")
}
