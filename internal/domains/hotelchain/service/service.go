package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	bookingRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	loyaltyService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	statusRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotelChain    = "hotel-chain:get"
	cacheGetAllHotelChain = "hotel-chain:gets"
	cacheCountHotelChain  = "hotel-chain:count"
)

type HotelChain interface {
	Create(ctx context.Context, req dto.CreateHotelChainRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelChainsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelChainResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelChainRequest, id string) (*loyaltyDto.RecalculationReport, error)
	Delete(ctx context.Context, id string) error

	CreateSubBrand(ctx context.Context, hotelChainID string, req dto.CreateSubBrandRequest) (string, error)
	GetSubBrands(ctx context.Context, hotelChainID string) ([]dto.SubBrandResponse, error)
	UpdateSubBrand(ctx context.Context, hotelChainID, id string, req dto.UpdateSubBrandRequest) (*loyaltyDto.RecalculationReport, error)
	DeleteSubBrand(ctx context.Context, hotelChainID, id string) error

	CreateEliteStatus(ctx context.Context, hotelChainID string, req dto.CreateEliteStatusRequest) (string, error)
	GetEliteStatuses(ctx context.Context, hotelChainID string) ([]dto.EliteStatusResponse, error)
	UpdateEliteStatus(ctx context.Context, hotelChainID, id string, req dto.UpdateEliteStatusRequest) (*loyaltyDto.RecalculationReport, error)
	DeleteEliteStatus(ctx context.Context, hotelChainID, id string) error
}

type serviceImpl struct {
	repo            repository.HotelChain
	subBrandRepo    repository.SubBrand
	eliteStatusRepo repository.EliteStatus
	bookingRepo     bookingRepo.Booking
	statusRepo      statusRepo.UserStatus
	loyalty         loyaltyService.Loyalty
	promotions      promotionService.Promotion
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.HotelChain,
	subBrandRepo repository.SubBrand,
	eliteStatusRepo repository.EliteStatus,
	bookingRepo bookingRepo.Booking,
	statusRepo statusRepo.UserStatus,
	loyalty loyaltyService.Loyalty,
	promotions promotionService.Promotion,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) HotelChain {
	return &serviceImpl{
		repo:            repo,
		subBrandRepo:    subBrandRepo,
		eliteStatusRepo: eliteStatusRepo,
		bookingRepo:     bookingRepo,
		statusRepo:      statusRepo,
		loyalty:         loyalty,
		promotions:      promotions,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelChainRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	chain := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, chain); err != nil {
		log.Error().Err(err).Msg("failed to create hotel chain")

		return res, fmt.Errorf("failed to create hotel chain: %w", err)
	}

	s.invalidate(ctx, false)

	return chain.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelChainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotelChain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel chains")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel chains")

		return res, fmt.Errorf("failed to count hotel chains: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel chains")

		return res, fmt.Errorf("failed to get hotel chains: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotelChain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel chains")

		return res, fmt.Errorf("failed to count hotel chains: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Get returns the chain with its sub-brands and elite tiers.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelChainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotelChain, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel chain")

		return res, nil
	}

	chain, err := s.getChain(ctx, id)
	if err != nil {
		return res, err
	}

	subBrands, err := s.subBrandRepo.GetAll(ctx, gDto.QueryParams{}, byChain(model.SubBrandTableName, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get sub-brands")

		return res, fmt.Errorf("failed to get sub-brands: %w", err)
	}

	eliteStatuses, err := s.eliteStatusRepo.GetAll(ctx,
		gDto.QueryParams{SortBy: model.EliteStatusTableName + "." + model.FieldRank, SortDir: gDto.SortDirAsc},
		byChain(model.EliteStatusTableName, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to get elite statuses")

		return res, fmt.Errorf("failed to get elite statuses: %w", err)
	}

	res.FromModel(chain)
	res.WithChildren(subBrands, eliteStatuses)

	s.save(ctx, cacheKey, res)

	return res, nil
}

// Update recalculates loyalty points only when the base rate actually moves.
// A new point type re-prices every booking of the chain, since multiplier and
// bonus EQN promotions are valued through it.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelChainRequest, id string) (res *loyaltyDto.RecalculationReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.getChain(ctx, id)
	if err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update hotel chain")

		return res, fmt.Errorf("failed to update hotel chain: %w", err)
	}

	s.invalidate(ctx, true)

	if shared.Changed(current.BasePointRate, req.BasePointRate) {
		if res, err = s.recalculate(ctx, id); err != nil {
			return res, err
		}
	}

	if !shared.Changed(current.PointTypeID, req.PointTypeID) {
		return res, nil
	}

	if res == nil {
		res = &loyaltyDto.RecalculationReport{HotelChainID: id}
	}

	res.Reevaluation, err = s.promotions.ReevaluateMatching(ctx, byChain(bookingModel.TableName, id))
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Str("hotelChainID", id).Msg("failed to reevaluate bookings after point type change")

		return res, fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.getChain(ctx, id); err != nil {
		return err
	}

	bookings, err := s.bookingRepo.Count(ctx, byChain(bookingModel.TableName, id))
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotel chain bookings")

		return fmt.Errorf("failed to count hotel chain bookings: %w", err)
	}

	if bookings > 0 {
		return failure.Conflictf("hotel chain is used by %d bookings", bookings) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete hotel chain")

		return fmt.Errorf("failed to delete hotel chain: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) getChain(ctx context.Context, id string) (model.HotelChain, error) {
	chain, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", id).Msg("failed to get hotel chain")

		return chain, fmt.Errorf("failed to get hotel chain: %w", err)
	}

	if chain.ID == constant.Empty {
		return chain, failure.NotFound("hotel chain not found") // nolint:wrapcheck
	}

	return chain, nil
}

func (s *serviceImpl) recalculate(ctx context.Context, hotelChainID string) (*loyaltyDto.RecalculationReport, error) {
	report, err := s.loyalty.RecalculateLoyaltyForHotelChain(ctx, hotelChainID)
	if err != nil {
		log.Error().Err(err).Str("hotelChainID", hotelChainID).Msg("failed to recalculate loyalty points")

		return nil, fmt.Errorf("failed to recalculate loyalty points: %w", err)
	}

	return &report, nil
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save hotel chain cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, single bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if single {
			shared.InvalidateCaches(c, s.cache, cacheGetHotelChain)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotelChain)
		shared.InvalidateCaches(c, s.cache, cacheCountHotelChain)
	}()
}

func byChain(table, hotelChainID string) gDto.FilterGroup {
	return gDto.And(gDto.Eq(table, model.FieldHotelChainID, hotelChainID))
}

func byChainAndID(table, hotelChainID, id string) gDto.FilterGroup {
	return gDto.And(
		gDto.Eq(table, model.FieldID, id),
		gDto.Eq(table, model.FieldHotelChainID, hotelChainID),
	)
}
