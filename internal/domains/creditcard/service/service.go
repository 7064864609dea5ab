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
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/repository"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetCreditCard    = "credit-card:get"
	cacheGetAllCreditCard = "credit-card:gets"
	cacheCountCreditCard  = "credit-card:count"
)

type CreditCard interface {
	Create(ctx context.Context, req dto.CreateCreditCardRequest) (string, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCreditCardsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.CreditCardResponse, error)
	Update(ctx context.Context, req dto.UpdateCreditCardRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.CreditCard
	bookingRepo bookingRepo.Booking
	promotions  promotionService.Promotion
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.CreditCard,
	bookingRepo bookingRepo.Booking,
	promotions promotionService.Promotion,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) CreditCard {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		promotions:  promotions,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCreditCardRequest) (res string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := req.ToModel(shared.Actor(ctx))

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create credit card")

		return res, fmt.Errorf("failed to create credit card: %w", err)
	}

	s.invalidate(ctx, false)

	return mod.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCreditCardsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCreditCard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for credit cards")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count credit cards")

		return res, fmt.Errorf("failed to count credit cards: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get credit cards")

		return res, fmt.Errorf("failed to get credit cards: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save credit cards to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCreditCard, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count credit cards")

		return res, fmt.Errorf("failed to count credit cards: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save credit card count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CreditCardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCreditCard, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for credit card")

		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get credit card")

		return res, fmt.Errorf("failed to get credit card: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save credit card to cache")
		}
	}()

	return res, nil
}

// Update re-matches the credit card's bookings when its reward type or point type
// changes. Bookings keep the rate snapshotted when they were booked, but
// multiplier promotions are priced through the live reward type and point type.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCreditCardRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get credit card")

		return fmt.Errorf("failed to get credit card: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.Actor(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update credit card")

		return fmt.Errorf("failed to update credit card: %w", err)
	}

	s.invalidate(ctx, true)

	rewardTypeChanged := req.RewardType != constant.Empty && req.RewardType != current.RewardType
	if !rewardTypeChanged && !shared.Changed(current.PointTypeID, req.PointTypeID) {
		return nil
	}

	report, err := s.promotions.ReevaluateMatching(ctx, gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldCreditCardID, id)))
	if err != nil && !errors.Is(err, promotionService.ErrPartialReevaluation) {
		log.Error().Err(err).Str("creditCardID", id).Msg("failed to reevaluate credit card bookings")

		return fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	log.Info().Str("creditCardID", id).Int("processed", report.Processed).Int("failed", len(report.Failures)).Msg("credit card bookings reevaluated")

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check credit card existence")

		return fmt.Errorf("failed to check credit card existence: %w", err)
	}

	if !exist {
		return failure.NotFound("credit card not found") // nolint:wrapcheck
	}

	bookings, err := s.bookingRepo.Count(ctx, gDto.And(gDto.Eq(bookingModel.TableName, bookingModel.FieldCreditCardID, id)))
	if err != nil {
		log.Error().Err(err).Msg("failed to count credit card bookings")

		return fmt.Errorf("failed to count credit card bookings: %w", err)
	}

	if bookings > 0 {
		return failure.Conflictf("credit card is used by %d bookings", bookings) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete credit card")

		return fmt.Errorf("failed to delete credit card: %w", err)
	}

	s.invalidate(ctx, true)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, single bool) {
	go func() {
		c := context.WithoutCancel(ctx)

		if single {
			shared.InvalidateCaches(c, s.cache, cacheGetCreditCard)
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllCreditCard)
		shared.InvalidateCaches(c, s.cache, cacheCountCreditCard)
	}()
}
