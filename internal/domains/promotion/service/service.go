package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/kafka"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/metrics"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	bvRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/repository"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	bookingRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/matcher"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Promotion interface {
	Create(ctx context.Context, req dto.PromotionRequest) (dto.SaveResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPromotionsResponse, error)
	Get(ctx context.Context, id string) (dto.PromotionResponse, error)
	Update(ctx context.Context, req dto.PromotionRequest, id string) (dto.SaveResponse, error)
	Delete(ctx context.Context, id string) (dto.Report, error)
	MatchPromotionsForBooking(ctx context.Context, bookingID string) ([]bookingModel.BookingPromotion, error)
	MatchPromotionsForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) ([]bookingModel.BookingPromotion, error)
	MatchPromotionsForAffectedBookings(ctx context.Context, promotionID string) (dto.Report, error)
	ReevaluateBookings(ctx context.Context, bookingIDs []string) (dto.Report, error)
	ReevaluateAll(ctx context.Context) (dto.Report, error)
	ReevaluateMatching(ctx context.Context, filter gDto.FilterGroup) (dto.Report, error)
}

type serviceImpl struct {
	repo                 repository.Promotion
	bookingRepo          bookingRepo.Booking
	bookingPromotionRepo bookingRepo.BookingPromotion
	valuationRepo        bvRepo.BenefitValuation
	transactor           gRepo.Transactor
	events               kafka.Publisher
	cfg                  *config.Config
	otel                 otel.Otel
}

func New(
	repo repository.Promotion,
	bookingRepo bookingRepo.Booking,
	bookingPromotionRepo bookingRepo.BookingPromotion,
	valuationRepo bvRepo.BenefitValuation,
	transactor gRepo.Transactor,
	events kafka.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Promotion {
	return &serviceImpl{
		repo:                 repo,
		bookingRepo:          bookingRepo,
		bookingPromotionRepo: bookingPromotionRepo,
		valuationRepo:        valuationRepo,
		transactor:           transactor,
		events:               events,
		cfg:                  cfg,
		otel:                 otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.PromotionRequest) (res dto.SaveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	promotion, err := req.ToModel(shared.Actor(ctx))
	if err != nil {
		return res, failure.BadRequest(err)
	}

	if err = s.repo.Insert(ctx, promotion); err != nil {
		log.Error().Err(err).Msg("failed to create promotion")

		return res, fmt.Errorf("failed to create promotion: %w", err)
	}

	res.ID = promotion.ID

	res.Reevaluation, err = s.reevaluateAfterSave(ctx, s.ReevaluateAll)
	if err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPromotionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count promotions")

		return res, fmt.Errorf("failed to count promotions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get promotions")

		return res, fmt.Errorf("failed to get promotions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PromotionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	promotion, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get promotion")

		return res, fmt.Errorf("failed to get promotion: %w", err)
	}

	if promotion.ID == constant.Empty {
		return res, failure.NotFound("promotion not found") // nolint:wrapcheck
	}

	res.FromModel(promotion)

	return res, nil
}

// Update replaces the promotion and re-matches the bookings it is applied to
// in the same transaction. Afterwards every booking is re-matched, since the
// new scope may now include bookings that were never associated.
func (s *serviceImpl) Update(ctx context.Context, req dto.PromotionRequest, id string) (res dto.SaveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check promotion existence")

		return res, fmt.Errorf("failed to check promotion existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("promotion not found") // nolint:wrapcheck
	}

	fields, err := req.ToFields(shared.Actor(ctx))
	if err != nil {
		return res, failure.BadRequest(err)
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, fields, filter); err != nil {
			return fmt.Errorf("failed to update promotion: %w", err)
		}

		bookingIDs, err := s.associatedBookingIDs(ctx, tx, id)
		if err != nil {
			return err
		}

		for _, bookingID := range bookingIDs {
			if _, err := s.MatchPromotionsForBookingTx(ctx, tx, bookingID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("promotionID", id).Msg("failed to update promotion")

		return res, err
	}

	res.ID = id

	res.Reevaluation, err = s.reevaluateAfterSave(ctx, s.ReevaluateAll)
	if err != nil {
		return res, err
	}

	return res, nil
}

// Delete removes the promotion, its associations cascade, and re-matches the
// bookings it was applied to.
func (s *serviceImpl) Delete(ctx context.Context, id string) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check promotion existence")

		return res, fmt.Errorf("failed to check promotion existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("promotion not found") // nolint:wrapcheck
	}

	var bookingIDs []string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		bookingIDs, err = s.associatedBookingIDs(ctx, tx, id)
		if err != nil {
			return err
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete promotion: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("promotionID", id).Msg("failed to delete promotion")

		return res, err
	}

	return s.reevaluateAfterSave(ctx, func(ctx context.Context) (dto.Report, error) {
		return s.ReevaluateBookings(ctx, bookingIDs)
	})
}

func (s *serviceImpl) MatchPromotionsForBooking(ctx context.Context, bookingID string) (res []bookingModel.BookingPromotion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MatchPromotionsForBooking")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		res, err = s.MatchPromotionsForBookingTx(ctx, tx, bookingID)

		return err
	})

	return res, err
}

// MatchPromotionsForBookingTx re-matches one booking inside the caller's
// transaction and returns the associations it ends up with.
func (s *serviceImpl) MatchPromotionsForBookingTx(ctx context.Context, sqltx *sqlx.Tx, bookingID string) (res []bookingModel.BookingPromotion, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MatchPromotionsForBookingTx")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.bookingRepo.GetDetailTx(ctx, sqltx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	promotions, err := s.repo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, gDto.And(gDto.Eq(model.TableName, model.FieldIsActive, true)))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active promotions")

		return res, fmt.Errorf("failed to get active promotions: %w", err)
	}

	valuations, err := s.valuationRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get benefit valuations")

		return res, fmt.Errorf("failed to get benefit valuations: %w", err)
	}

	existing, err := s.bookingPromotionRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{},
		gDto.And(gDto.Eq(bookingModel.BookingPromotionTableName, bookingModel.FieldBookingID, bookingID)))
	if err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to get booking promotions")

		return res, fmt.Errorf("failed to get booking promotions: %w", err)
	}

	active := make(map[string]bool, len(promotions))
	for _, promotion := range promotions {
		active[promotion.ID] = true
	}

	plan := matcher.Reconcile(
		bookingID,
		existing,
		matcher.MatchAll(promotions, booking, valuations),
		active,
		constant.ActorSystem,
		timezone.Now(),
	)

	if err = s.apply(ctx, sqltx, plan); err != nil {
		log.Error().Err(err).Str("bookingID", bookingID).Msg("failed to apply promotion matches")

		return res, err
	}

	metrics.ObserveMatch("applied", len(plan.Insert))
	metrics.ObserveMatch("refreshed", len(plan.Update))
	metrics.ObserveMatch("removed", len(plan.Delete))
	metrics.ObserveMatch("kept", len(plan.Result)-len(plan.Insert)-len(plan.Update))

	return plan.Result, nil
}

func (s *serviceImpl) apply(ctx context.Context, sqltx *sqlx.Tx, plan matcher.Plan) error {
	if plan.Empty() {
		return nil
	}

	if len(plan.Delete) > 0 {
		filter := gDto.And(gDto.In(bookingModel.BookingPromotionTableName, bookingModel.FieldID, plan.Delete))

		if err := s.bookingPromotionRepo.DeleteTx(ctx, sqltx, filter); err != nil {
			return fmt.Errorf("failed to remove booking promotions: %w", err)
		}
	}

	for _, row := range plan.Update {
		fields := map[string]any{
			bookingModel.FieldAppliedValue: row.AppliedValue,
			constant.FieldModifiedAt:       row.ModifiedAt,
			constant.FieldModifiedBy:       row.ModifiedBy,
		}

		filter := shared.FilterByID(row.ID, bookingModel.FieldID, bookingModel.BookingPromotionTableName)

		if err := s.bookingPromotionRepo.UpdateTx(ctx, sqltx, fields, filter); err != nil {
			return fmt.Errorf("failed to refresh booking promotion: %w", err)
		}
	}

	if len(plan.Insert) > 0 {
		if err := s.bookingPromotionRepo.InsertBulkTx(ctx, sqltx, plan.Insert); err != nil {
			return fmt.Errorf("failed to insert booking promotions: %w", err)
		}
	}

	return nil
}

func (s *serviceImpl) associatedBookingIDs(ctx context.Context, sqltx *sqlx.Tx, promotionID string) ([]string, error) {
	rows, err := s.bookingPromotionRepo.GetAllTx(ctx, sqltx, gDto.QueryParams{},
		gDto.And(gDto.Eq(bookingModel.BookingPromotionTableName, bookingModel.FieldPromotionID, promotionID)),
		bookingModel.FieldBookingID,
	)
	if err != nil {
		log.Error().Err(err).Str("promotionID", promotionID).Msg("failed to get associated bookings")

		return nil, fmt.Errorf("failed to get associated bookings: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.BookingID
	}

	return ids, nil
}
