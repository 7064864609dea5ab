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
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetShoppingPortal    = "shopping-portal:get"
	cacheGetAllShoppingPortal = "shopping-portal:gets"
	cacheCountShoppingPortal  = "shopping-portal:count"
)

type ShoppingPortal interface {
	Create(ctx context.Context, req dto.CreateShoppingPortalRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetShoppingPortalsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ShoppingPortalResponse, error)
	Update(ctx context.Context, req dto.UpdateShoppingPortalRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.ShoppingPortal
	bookingRepo bookingRepo.Booking
	promotions  promotionService.Promotion
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.ShoppingPortal,
	bookingRepo bookingRepo.Booking,
	promotions promotionService.Promotion,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) ShoppingPortal {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		promotions:  promotions,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateShoppingPortalRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create shopping portal")

		return res, fmt.Errorf("failed to create shopping portal: %w", err)
	}

	s.invalidate(ctx, false)

	return mod.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetShoppingPortalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllShoppingPortal, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shopping portals")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shopping portals")

		return res, fmt.Errorf("failed to count shopping portals: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping portals")

		return res, fmt.Errorf("failed to get shopping portals: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shopping portals to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountShoppingPortal, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count shopping portals")

		return res, fmt.Errorf("failed to count shopping portals: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shopping portal count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ShoppingPortalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetShoppingPortal, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for shopping portal")

		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping portal")

		return res, fmt.Errorf("failed to get shopping portal: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("shopping portal not found") // nolint:wrapcheck
	}

	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save shopping portal to cache")
		}
	}()

	return res, nil
}

// Update re-matches the shopping portal's bookings when its reward type or point type
// changes. Bookings keep the rate snapshotted when they were booked, but
// multiplier promotions are priced through the live reward type and point type.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateShoppingPortalRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get shopping portal")

		return fmt.Errorf("failed to get shopping portal: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("shopping portal not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update shopping portal")

		return fmt.Errorf("failed to update shopping portal: %w", err)
	}

	s.invalidate(ctx, true)

	rewardTypeChanged := req.RewardType != constant.Empty && req.RewardType != current.RewardType
	if !rewardTypeChanged && !shared.Changed(current.PointTypeID, req.PointTypeID) {
		return nil
	}

	report, err := s.promotions.ReevaluateMatching(ctx, gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldShoppingPortalID, id)))
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Str("shoppingPortalID", id).Msg("failed to reevaluate shopping portal bookings")

		return fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	log.Info().Str("shoppingPortalID", id).Int("processed", report.Processed).Int("failed", len(report.Failures)).Msg("shopping portal bookings reevaluated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check shopping portal existence")

		return fmt.Errorf("failed to check shopping portal existence: %w", err)
	}

	if !exist {
		return failure.NotFound("shopping portal not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.Count(ctx, gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldShoppingPortalID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to count shopping portal bookings")

		return fmt.Errorf("failed to count shopping portal bookings: %w", err)
	}

	if bookings > 0 {
		return failure.Conflictf("shopping portal is used by %d bookings", bookings) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete shopping portal")

		return fmt.Errorf("failed to delete shopping portal: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, single bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if single {
			shared.InvalidateCaches(c, s.cache, cacheGetShoppingPortal)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllShoppingPortal)
		shared.InvalidateCaches(c, s.cache, cacheCountShoppingPortal)
	}()
}
