package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type BenefitValuation interface {
	GetAll(ctx context.Context) (dto.GetValuationsResponse, error)
	SaveAll(ctx context.Context, req dto.SaveValuationsRequest) (dto.SaveValuationsResponse, error)
	Resolve(ctx context.Context, query resolver.Query) (dto.ResolveResponse, error)
}

type serviceImpl struct {
	repo             repository.BenefitValuation
	promotionService promotionService.Promotion
	transactor       gRepo.Transactor
	otel             otel.Otel
}

func New(repo repository.BenefitValuation, promotionService promotionService.Promotion, transactor gRepo.Transactor, otel otel.Otel) BenefitValuation {
	return &serviceImpl{
		repo:             repo,
		promotionService: promotionService,
		transactor:       transactor,
		otel:             otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetValuationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get benefit valuations")

		return res, fmt.Errorf("failed to get benefit valuations: %w", err)
	}

	res.FromModels(models)

	return res, nil
}

// SaveAll upserts the valuations in one transaction and re-matches every
// booking, since EQN and certificate values feed every promotion value.
func (s *serviceImpl) SaveAll(ctx context.Context, req dto.SaveValuationsRequest) (res dto.SaveValuationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SaveAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	valuations := req.ToModels(shared.Actor(ctx))

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		return s.repo.UpsertTx(ctx, tx, valuations)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to save benefit valuations")

		return res, fmt.Errorf("failed to save benefit valuations: %w", err)
	}

	res.Saved = len(valuations)

	res.Reevaluation, err = s.promotionService.ReevaluateAll(ctx)
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Msg("failed to reevaluate bookings after valuation save")

		return res, fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, query resolver.Query) (res dto.ResolveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer scope.TraceIfError(err)

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get benefit valuations")

		return res, fmt.Errorf("failed to get benefit valuations: %w", err)
	}

	res.FromResolution(resolver.Resolve(models, query))

	return res, nil
}
