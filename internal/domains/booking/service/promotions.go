package service

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	promotionModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/rs/zerolog/log"
)

func (s *serviceImpl) GetPromotions(ctx context.Context, id string) (res []dto.BookingPromotionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPromotions")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureBooking(ctx, id); err != nil {
		return res, err
	}

	applied, err := s.bpRepo.GetApplied(ctx,
		gDto.And(gDto.Eq(model.BookingPromotionTableName, model.FieldBookingID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking promotions")

		return res, fmt.Errorf("failed to get booking promotions: %w", err)
	}

	res = make([]dto.BookingPromotionResponse, len(applied))
	for i, promotion := range applied {
		res[i].FromApplied(promotion)
	}

	return res, nil
}

// AddPromotion records a manual association. Manual rows survive re-matching
// while their promotion stays active.
func (s *serviceImpl) AddPromotion(ctx context.Context, id string, req dto.AddPromotionRequest) (res dto.BookingPromotionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddPromotion")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureBooking(ctx, id); err != nil {
		return res, err
	}

	exist, err := s.promotionRepo.Exist(ctx,
		shared.FilterByID(req.PromotionID, promotionModel.FieldID, promotionModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check promotion existence")

		return res, fmt.Errorf("failed to check promotion existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("promotion not found") // nolint:wrapcheck
	}

	current, err := s.getAssociation(ctx, id, req.PromotionID)
	if err != nil {
		return res, err
	}

	if current.ID != constant.Empty {
		return res, failure.Conflict("promotion is already applied to this booking") // nolint:wrapcheck
	}

	association := req.ToModel(id, shared.Actor(ctx))

	if err = s.bpRepo.Insert(ctx, association); err != nil {
		log.Error().Err(err).Msg("failed to add booking promotion")

		return res, fmt.Errorf("failed to add booking promotion: %w", err)
	}

	res.FromModel(association)

	return res, nil
}

// VerifyPromotion confirms an auto-applied row. Verifying twice is a no-op.
func (s *serviceImpl) VerifyPromotion(ctx context.Context, id, promotionID string) (res dto.BookingPromotionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VerifyPromotion")
	defer scope.End()
	defer scope.TraceIfError(err)

	association, err := s.getAssociation(ctx, id, promotionID)
	if err != nil {
		return res, err
	}

	switch association.Status {
	case constant.Empty:
		return res, failure.NotFound("booking promotion not found") // nolint:wrapcheck
	case model.StatusManual:
		return res, failure.BadRequestFromString("manual promotions cannot be verified") // nolint:wrapcheck
	case model.StatusAutoApplied:
		now := timezone.Now()
		user := shared.Actor(ctx)

		err = s.bpRepo.Update(ctx, map[string]any{
			model.FieldStatus:        model.StatusVerified,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}, shared.FilterByID(association.ID, model.FieldID, model.BookingPromotionTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to verify booking promotion")

			return res, fmt.Errorf("failed to verify booking promotion: %w", err)
		}

		association.Status = model.StatusVerified
		association.ModifiedAt = now
		association.ModifiedBy = user
	}

	res.FromModel(association)

	return res, nil
}

func (s *serviceImpl) RemovePromotion(ctx context.Context, id, promotionID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemovePromotion")
	defer scope.End()
	defer scope.TraceIfError(err)

	association, err := s.getAssociation(ctx, id, promotionID)
	if err != nil {
		return err
	}

	if association.ID == constant.Empty {
		return failure.NotFound("booking promotion not found") // nolint:wrapcheck
	}

	err = s.bpRepo.Delete(ctx, shared.FilterByID(association.ID, model.FieldID, model.BookingPromotionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to remove booking promotion")

		return fmt.Errorf("failed to remove booking promotion: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureBooking(ctx context.Context, id string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) getAssociation(ctx context.Context, bookingID, promotionID string) (model.BookingPromotion, error) {
	association, err := s.bpRepo.Get(ctx, gDto.And(
		gDto.Eq(model.BookingPromotionTableName, model.FieldBookingID, bookingID),
		gDto.Eq(model.BookingPromotionTableName, model.FieldPromotionID, promotionID),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking promotion")

		return association, fmt.Errorf("failed to get booking promotion: %w", err)
	}

	return association, nil
}
