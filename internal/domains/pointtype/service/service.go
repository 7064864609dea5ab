package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	cardModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	cardRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/repository"
	chainModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	chainRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/repository"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	portalModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	portalRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetPointType    = "point-type:get"
	cacheGetAllPointType = "point-type:gets"
	cacheCountPointType  = "point-type:count"
)

type PointType interface {
	Create(ctx context.Context, req dto.CreatePointTypeRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPointTypesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PointTypeResponse, error)
	Update(ctx context.Context, req dto.UpdatePointTypeRequest, id string) (promotionDto.Report, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo             repository.PointType
	chainRepo        chainRepo.HotelChain
	cardRepo         cardRepo.CreditCard
	portalRepo       portalRepo.ShoppingPortal
	promotionService promotionService.Promotion
	cfg              *config.Config
	cache            cache.RedisCache
	otel             otel.Otel
}

func New(
	repo repository.PointType,
	chainRepo chainRepo.HotelChain,
	cardRepo cardRepo.CreditCard,
	portalRepo portalRepo.ShoppingPortal,
	promotionService promotionService.Promotion,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) PointType {
	return &serviceImpl{
		repo:             repo,
		chainRepo:        chainRepo,
		cardRepo:         cardRepo,
		portalRepo:       portalRepo,
		promotionService: promotionService,
		cfg:              cfg,
		cache:            cache,
		otel:             otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePointTypeRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	pointType := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, pointType); err != nil {
		log.Error().Err(err).Msg("failed to create point type")

		return res, fmt.Errorf("failed to create point type: %w", err)
	}

	s.invalidate(ctx, false)

	return pointType.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPointTypesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllPointType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for point types")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count point types")

		return res, fmt.Errorf("failed to count point types: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get point types")

		return res, fmt.Errorf("failed to get point types: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save point types to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountPointType, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count point types")

		return res, fmt.Errorf("failed to count point types: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save point type count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PointTypeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPointType, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for point type")

		return res, nil
	}

	pointType, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get point type")

		return res, fmt.Errorf("failed to get point type: %w", err)
	}

	if pointType.ID == constant.Empty {
		return res, failure.NotFound("point type not found") // nolint:wrapcheck
	}

	res.FromModel(pointType)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save point type to cache")
		}
	}()

	return res, nil
}

// Update re-matches every booking when the point value changes, since
// loyalty, card and portal rewards are priced through it.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePointTypeRequest, id string) (res promotionDto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check point type existence")

		return res, fmt.Errorf("failed to check point type existence: %w", err)
	}

	if current.ID == constant.Empty {
		return res, failure.NotFound("point type not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update point type")

		return res, fmt.Errorf("failed to update point type: %w", err)
	}

	s.invalidate(ctx, true)

	if req.CentsPerPoint == nil || *req.CentsPerPoint == current.CentsPerPoint {
		return res, nil
	}

	res, err = s.promotionService.ReevaluateAll(ctx)
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Msg("failed to reevaluate bookings after point value change")

		return res, fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check point type existence")

		return fmt.Errorf("failed to check point type existence: %w", err)
	}

	if !exist {
		return failure.NotFound("point type not found") // nolint:wrapcheck
	}

	if err = s.ensureUnused(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete point type")

		return fmt.Errorf("failed to delete point type: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) ensureUnused(ctx context.Context, id string) error {
	checks := []struct {
		name  string
		exist func(context.Context, gDto.FilterGroup) (bool, error)
		table string
	}{
		{name: "hotel chains", exist: s.chainRepo.Exist, table: chainModel.TableName},
		{name: "credit cards", exist: s.cardRepo.Exist, table: cardModel.TableName},
		{name: "shopping portals", exist: s.portalRepo.Exist, table: portalModel.TableName},
	}

	for _, check := range checks {
		used, err := check.exist(ctx, gDto.And(gDto.Eq(check.table, chainModel.FieldPointTypeID, id)))
		if err != nil {
			log.Error().Err(err).Str("pointTypeID", id).Msg("failed to check point type usage")

			return fmt.Errorf("failed to check point type usage: %w", err)
		}

		if used {
			return failure.Conflictf("point type is used by %s", check.name) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, single bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if single {
			shared.InvalidateCaches(c, s.cache, cacheGetPointType)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllPointType)
		shared.InvalidateCaches(c, s.cache, cacheCountPointType)
	}()
}
