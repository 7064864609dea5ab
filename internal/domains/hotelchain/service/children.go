package service

import (
	"context"
	"fmt"

	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	statusModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) CreateSubBrand(ctx context.Context, hotelChainID string, req dto.CreateSubBrandRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSubBrand")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getChain(ctx, hotelChainID); err != nil {
		return res, err
	}

	subBrand := req.ToModel(hotelChainID, shared.Actor(ctx))

	if err = s.subBrandRepo.Insert(ctx, subBrand); err != nil {
		log.Error().Err(err).Msg("failed to create sub-brand")

		return res, fmt.Errorf("failed to create sub-brand: %w", err)
	}

	s.invalidate(ctx, true)

	return subBrand.ID, nil
}

func (s *serviceImpl) GetSubBrands(ctx context.Context, hotelChainID string) (res []dto.SubBrandResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSubBrands")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getChain(ctx, hotelChainID); err != nil {
		return res, err
	}

	subBrands, err := s.subBrandRepo.GetAll(ctx, gDto.QueryParams{}, byChain(model.SubBrandTableName, hotelChainID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-brands")

		return res, fmt.Errorf("failed to get sub-brands: %w", err)
	}

	res = make([]dto.SubBrandResponse, len(subBrands))
	for i, subBrand := range subBrands {
		res[i].FromModel(subBrand)
	}

	return res, nil
}

func (s *serviceImpl) UpdateSubBrand(ctx context.Context, hotelChainID, id string, req dto.UpdateSubBrandRequest) (res *loyaltyDto.RecalculationReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSubBrand")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byChainAndID(model.SubBrandTableName, hotelChainID, id)

	current, err := s.subBrandRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-brand")

		return res, fmt.Errorf("failed to get sub-brand: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("sub-brand not found") // nolint:wrapcheck
	}

	if err = s.subBrandRepo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update sub-brand")

		return res, fmt.Errorf("failed to update sub-brand: %w", err)
	}

	s.invalidate(ctx, true)

	if !shared.Changed(current.BasePointRate, req.BasePointRate) {
		return res, nil
	}

	return s.recalculate(ctx, hotelChainID)
}

func (s *serviceImpl) DeleteSubBrand(ctx context.Context, hotelChainID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSubBrand")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byChainAndID(model.SubBrandTableName, hotelChainID, id)

	exist, err := s.subBrandRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check sub-brand existence")

		return fmt.Errorf("failed to check sub-brand existence: %w", err)
	}

	if !exist {
		return failure.NotFound("sub-brand not found") // nolint:wrapcheck
	}

	used, err := s.bookingRepo.Exist(ctx,
		gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldHotelChainSubBrandID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to check sub-brand usage")

		return fmt.Errorf("failed to check sub-brand usage: %w", err)
	}

	if used {
		return failure.Conflict("sub-brand is used by bookings") // nolint:wrapcheck
	}

	if err = s.subBrandRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete sub-brand")

		return fmt.Errorf("failed to delete sub-brand: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) CreateEliteStatus(ctx context.Context, hotelChainID string, req dto.CreateEliteStatusRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateEliteStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getChain(ctx, hotelChainID); err != nil {
		return res, err
	}

	eliteStatus := req.ToModel(hotelChainID, shared.Actor(ctx))

	if err = s.eliteStatusRepo.Insert(ctx, eliteStatus); err != nil {
		log.Error().Err(err).Msg("failed to create elite status")

		return res, fmt.Errorf("failed to create elite status: %w", err)
	}

	s.invalidate(ctx, true)

	return eliteStatus.ID, nil
}

func (s *serviceImpl) GetEliteStatuses(ctx context.Context, hotelChainID string) (res []dto.EliteStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetEliteStatuses")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getChain(ctx, hotelChainID); err != nil {
		return res, err
	}

	eliteStatuses, err := s.eliteStatusRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.EliteStatusTableName + "." + model.FieldRank, SortDir: gDto.SortDirAsc},
		byChain(model.EliteStatusTableName, hotelChainID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get elite statuses")

		return res, fmt.Errorf("failed to get elite statuses: %w", err)
	}

	res = make([]dto.EliteStatusResponse, len(eliteStatuses))
	for i, eliteStatus := range eliteStatuses {
		res[i].FromModel(eliteStatus)
	}

	return res, nil
}

// UpdateEliteStatus recalculates only when the edited tier is the one the
// user currently holds with this chain.
func (s *serviceImpl) UpdateEliteStatus(ctx context.Context, hotelChainID, id string, req dto.UpdateEliteStatusRequest) (res *loyaltyDto.RecalculationReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateEliteStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byChainAndID(model.EliteStatusTableName, hotelChainID, id)

	current, err := s.eliteStatusRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get elite status")

		return res, fmt.Errorf("failed to get elite status: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("elite status not found") // nolint:wrapcheck
	}

	if err = s.eliteStatusRepo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update elite status")

		return res, fmt.Errorf("failed to update elite status: %w", err)
	}

	s.invalidate(ctx, true)

	if !shared.Changed(&current.PointRate, req.PointRate) {
		return res, nil
	}

	held, err := s.isHeld(ctx, id)
	if err != nil || !held {
		return res, err
	}

	return s.recalculate(ctx, hotelChainID)
}

func (s *serviceImpl) DeleteEliteStatus(ctx context.Context, hotelChainID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteEliteStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := byChainAndID(model.EliteStatusTableName, hotelChainID, id)

	exist, err := s.eliteStatusRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check elite status existence")

		return fmt.Errorf("failed to check elite status existence: %w", err)
	}

	if !exist {
		return failure.NotFound("elite status not found") // nolint:wrapcheck
	}

	held, err := s.isHeld(ctx, id)
	if err != nil {
		return err
	}

	if held {
		return failure.Conflict("elite status is held in user statuses") // nolint:wrapcheck
	}

	if err = s.eliteStatusRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete elite status")

		return fmt.Errorf("failed to delete elite status: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) isHeld(ctx context.Context, eliteStatusID string) (bool, error) {
	status, err := s.statusRepo.Get(ctx,
		gDto.And(gDto.Eq(statusModel.TableName, statusModel.FieldEliteStatusID, eliteStatusID)))
	if err != nil {
		log.Error().Err(err).Str("eliteStatusID", eliteStatusID).Msg("failed to get user status")

		return false, fmt.Errorf("failed to get user status: %w", err)
	}

	return status.ID != constant.Empty, nil
}
