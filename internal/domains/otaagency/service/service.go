package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	bookingRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetOtaAgency    = "ota-agency:get"
	cacheGetAllOtaAgency = "ota-agency:gets"
	cacheCountOtaAgency  = "ota-agency:count"
)

type OtaAgency interface {
	Create(ctx context.Context, req dto.CreateOtaAgencyRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOtaAgenciesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.OtaAgencyResponse, error)
	Update(ctx context.Context, req dto.UpdateOtaAgencyRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.OtaAgency
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.OtaAgency,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) OtaAgency {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOtaAgencyRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create ota agency")

		return res, fmt.Errorf("failed to create ota agency: %w", err)
	}

	s.invalidate(ctx, false)

	return mod.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOtaAgenciesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOtaAgency, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for ota agencies")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ota agencies")

		return res, fmt.Errorf("failed to count ota agencies: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get ota agencies")

		return res, fmt.Errorf("failed to get ota agencies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ota agencies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOtaAgency, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count ota agencies")

		return res, fmt.Errorf("failed to count ota agencies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ota agency count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OtaAgencyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOtaAgency, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for ota agency")

		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get ota agency")

		return res, fmt.Errorf("failed to get ota agency: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("ota agency not found") // nolint:wrapcheck
	}

	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save ota agency to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOtaAgencyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check ota agency existence")

		return fmt.Errorf("failed to check ota agency existence: %w", err)
	}

	if !exist {
		return failure.NotFound("ota agency not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update ota agency")

		return fmt.Errorf("failed to update ota agency: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check ota agency existence")

		return fmt.Errorf("failed to check ota agency existence: %w", err)
	}

	if !exist {
		return failure.NotFound("ota agency not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.Count(ctx, gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldOtaAgencyID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to count ota agency bookings")

		return fmt.Errorf("failed to count ota agency bookings: %w", err)
	}

	if bookings > 0 {
		return failure.Conflictf("ota agency is used by %d bookings", bookings) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete ota agency")

		return fmt.Errorf("failed to delete ota agency: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, single bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if single {
			shared.InvalidateCaches(c, s.cache, cacheGetOtaAgency)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOtaAgency)
		shared.InvalidateCaches(c, s.cache, cacheCountOtaAgency)
	}()
}
