package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/metrics"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	bookingRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	chainModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	chainRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	statusModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	statusRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/rs/zerolog/log"
)

type Loyalty interface {
	EstimatePoints(ctx context.Context, hotelChainID string, subBrandID *string, pretaxCost float64) (int, error)
	RecalculateLoyaltyForHotelChain(ctx context.Context, hotelChainID string) (dto.RecalculationReport, error)
}

// Points is the loyalty earn for a stay: pretax dollars times the combined rate.
func Points(pretaxCost, baseRate, eliteRate float64) int {
	return int(math.Round(pretaxCost * (baseRate + eliteRate)))
}

type serviceImpl struct {
	bookingRepo      bookingRepo.Booking
	chainRepo        chainRepo.HotelChain
	subBrandRepo     chainRepo.SubBrand
	statusRepo       statusRepo.UserStatus
	promotionService promotionService.Promotion
	otel             otel.Otel
}

func New(
	bookingRepo bookingRepo.Booking,
	chainRepo chainRepo.HotelChain,
	subBrandRepo chainRepo.SubBrand,
	statusRepo statusRepo.UserStatus,
	promotionService promotionService.Promotion,
	otel otel.Otel,
) Loyalty {
	return &serviceImpl{
		bookingRepo:      bookingRepo,
		chainRepo:        chainRepo,
		subBrandRepo:     subBrandRepo,
		statusRepo:       statusRepo,
		promotionService: promotionService,
		otel:             otel,
	}
}

type rates struct {
	chain     chainModel.HotelChain
	subBrands map[string]chainModel.SubBrand
	elite     float64
}

func (r rates) base(subBrandID *string) float64 {
	if subBrandID == nil {
		return chainModel.BaseRate(r.chain, nil)
	}

	subBrand, ok := r.subBrands[*subBrandID]
	if !ok {
		return chainModel.BaseRate(r.chain, nil)
	}

	return chainModel.BaseRate(r.chain, &subBrand)
}

func (s *serviceImpl) loadRates(ctx context.Context, hotelChainID string) (res rates, err error) {
	res.chain, err = s.chainRepo.Get(ctx, shared.FilterByID(hotelChainID, chainModel.FieldID, chainModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to get hotel chain")

		return res, fmt.Errorf("failed to get hotel chain: %w", err)
	}

	if res.chain.ID == constant.Empty {
		return res, failure.NotFound("hotel chain not found") // nolint:wrapcheck
	}

	subBrands, err := s.subBrandRepo.GetAll(ctx, gDto.QueryParams{},
		gDto.And(gDto.Eq(chainModel.SubBrandTableName, chainModel.FieldHotelChainID, hotelChainID)))
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to get sub-brands")

		return res, fmt.Errorf("failed to get sub-brands: %w", err)
	}

	res.subBrands = make(map[string]chainModel.SubBrand, len(subBrands))
	for _, subBrand := range subBrands {
		res.subBrands[subBrand.ID] = subBrand
	}

	status, err := s.statusRepo.GetDetail(ctx,
		gDto.And(gDto.Eq(statusModel.TableName, statusModel.FieldHotelChainID, hotelChainID)))
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to get user status")

		return res, fmt.Errorf("failed to get user status: %w", err)
	}

	res.elite = status.EliteRate()

	return res, nil
}

func (s *serviceImpl) EstimatePoints(ctx context.Context, hotelChainID string, subBrandID *string, pretaxCost float64) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EstimatePoints")
	defer scope.End()
	defer scope.TraceIfError(err)

	rates, err := s.loadRates(ctx, hotelChainID)
	if err != nil {
		return res, err
	}

	return Points(pretaxCost, rates.base(subBrandID), rates.elite), nil
}

// RecalculateLoyaltyForHotelChain recomputes the points of every booking under
// the chain whose points were not typed in by the user, then re-matches the
// bookings that changed so multiplier promotions follow. A booking whose
// update fails is listed in the report and the pass moves on.
func (s *serviceImpl) RecalculateLoyaltyForHotelChain(ctx context.Context, hotelChainID string) (res dto.RecalculationReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecalculateLoyaltyForHotelChain")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.HotelChainID = hotelChainID
	res.Failures = []promotionDto.Failure{}

	rates, err := s.loadRates(ctx, hotelChainID)
	if err != nil {
		return res, err
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{},
		gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldHotelChainID, hotelChainID)))
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	changed := []string{}

	for _, booking := range bookings {
		if booking.LoyaltyPointsManual {
			res.SkippedManual++
			metrics.ObserveLoyalty("skipped_manual")

			continue
		}

		points := Points(booking.PretaxCost, rates.base(booking.HotelChainSubBrandID), rates.elite)
		if booking.LoyaltyPointsEarned != nil && *booking.LoyaltyPointsEarned == points {
			res.Unchanged++
			metrics.ObserveLoyalty("unchanged")

			continue
		}

		fields := map[string]any{
			bookingModel.FieldLoyaltyPointsEarned: points,
			constant.FieldModifiedAt:              timezone.Now(),
			constant.FieldModifiedBy:              constant.ActorSystem,
		}

		updateErr := s.bookingRepo.Update(ctx, fields, shared.FilterByID(booking.ID, bookingModel.FieldID, bookingModel.TableName))
		if updateErr != nil {
			log.Error().Err(updateErr).Str("bookingID", booking.ID).Msg("failed to update loyalty points")

			res.Failures = append(res.Failures, promotionDto.Failure{BookingID: booking.ID, Error: updateErr.Error()})
			metrics.ObserveLoyalty("failed")

			continue
		}

		res.Updated++
		metrics.ObserveLoyalty("updated")

		changed = append(changed, booking.ID)
	}

	log.Info().
		Str("hotelChainID", hotelChainID).
		Int("updated", res.Updated).
		Int("skippedManual", res.SkippedManual).
		Int("unchanged", res.Unchanged).
		Int("failed", len(res.Failures)).
		Msg("loyalty points recalculated")

	res.Reevaluation, err = s.promotionService.ReevaluateBookings(ctx, changed)
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Msg("failed to reevaluate bookings after loyalty recalculation")

		return res, fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	return res, nil
}
