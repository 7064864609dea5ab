package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	chainModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	chainRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	loyaltyService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/rs/zerolog/log"
)

type UserStatus interface {
	GetAll(ctx context.Context) (dto.GetUserStatusesResponse, error)
	Set(ctx context.Context, hotelChainID string, req dto.SetUserStatusRequest) (dto.SetUserStatusResponse, error)
}

type serviceImpl struct {
	repo            repository.UserStatus
	chainRepo       chainRepo.HotelChain
	eliteStatusRepo chainRepo.EliteStatus
	loyalty         loyaltyService.Loyalty
	otel            otel.Otel
}

func New(
	repo repository.UserStatus,
	chainRepo chainRepo.HotelChain,
	eliteStatusRepo chainRepo.EliteStatus,
	loyalty loyaltyService.Loyalty,
	otel otel.Otel,
) UserStatus {
	return &serviceImpl{
		repo:            repo,
		chainRepo:       chainRepo,
		eliteStatusRepo: eliteStatusRepo,
		loyalty:         loyalty,
		otel:            otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetUserStatusesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	details, err := s.repo.GetDetails(ctx,
		gDto.QueryParams{SortBy: chainModel.TableName + "." + chainModel.FieldName, SortDir: gDto.SortDirAsc},
		gDto.And())
	if err != nil {
		log.Error().Err(err).Msg("failed to get user statuses")

		return res, fmt.Errorf("failed to get user statuses: %w", err)
	}

	res.FromModels(details)

	return res, nil
}

// Set records the tier held with a chain. Points are recalculated only when
// the tier actually changes.
func (s *serviceImpl) Set(ctx context.Context, hotelChainID string, req dto.SetUserStatusRequest) (res dto.SetUserStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	chain, err := s.chainRepo.Get(ctx, shared.FilterByID(hotelChainID, chainModel.FieldID, chainModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chain")

		return res, fmt.Errorf("failed to get hotel chain: %w", err)
	}

	if chain.ID == constant.Empty {
		return res, failure.NotFound("hotel chain not found") // nolint:wrapcheck
	}

	if err = s.ensureTierOfChain(ctx, hotelChainID, req.EliteStatusID); err != nil {
		return res, err
	}

	filter := gDto.And(gDto.Eq(model.TableName, model.FieldHotelChainID, hotelChainID))

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user status")

		return res, fmt.Errorf("failed to get user status: %w", err)
	}

	changed := true

	switch {
	case current.ID == constant.Empty:
		changed = req.EliteStatusID != nil

		err = s.repo.Insert(ctx, req.ToModel(hotelChainID, shared.Actor(ctx)))
	case sameTier(current.EliteStatusID, req.EliteStatusID):
		changed = false
	default:
		err = s.repo.Update(ctx, map[string]any{
			model.FieldEliteStatusID: req.EliteStatusID,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: shared.Actor(ctx),
		}, filter)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to save user status")

		return res, fmt.Errorf("failed to save user status: %w", err)
	}

	if changed {
		report, err := s.loyalty.RecalculateLoyaltyForHotelChain(ctx, hotelChainID)
		if err != nil {
			log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to recalculate loyalty points")

			return res, fmt.Errorf("failed to recalculate loyalty points: %w", err)
		}

		res.Recalculation = &report
	}

	detail, err := s.repo.GetDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get user status")

		return res, fmt.Errorf("failed to get user status: %w", err)
	}

	res.UserStatus.FromModel(detail)

	return res, nil
}

func (s *serviceImpl) ensureTierOfChain(ctx context.Context, hotelChainID string, eliteStatusID *string) error {
	if eliteStatusID == nil {
		return nil
	}

	exist, err := s.eliteStatusRepo.Exist(ctx, gDto.And(
		gDto.Eq(chainModel.EliteStatusTableName, chainModel.FieldID, *eliteStatusID),
		gDto.Eq(chainModel.EliteStatusTableName, chainModel.FieldHotelChainID, hotelChainID),
	))
	if err != nil {
		log.Error().Err(err).Msg("failed to check elite status")

		return fmt.Errorf("failed to check elite status: %w", err)
	}

	if !exist {
		return failure.BadRequestf("elite status %s does not belong to hotel chain %s", *eliteStatusID, hotelChainID) // nolint:wrapcheck
	}

	return nil
}

func sameTier(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
