package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel"
	bvRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/netcost"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/repository"
	cardRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/repository"
	chainRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/repository"
	loyaltyService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service"
	agencyRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/repository"
	promotionRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/repository"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	portalRepo "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/repository"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	gRepo "github.com/chris-catignani/hotel-tracker-sub001/shared/repository"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.BookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.BookingRequest, id string) (dto.BookingResponse, error)
	Delete(ctx context.Context, id string) error
	NetCost(ctx context.Context, id string) (netcost.Result, error)

	GetPromotions(ctx context.Context, id string) ([]dto.BookingPromotionResponse, error)
	AddPromotion(ctx context.Context, id string, req dto.AddPromotionRequest) (dto.BookingPromotionResponse, error)
	VerifyPromotion(ctx context.Context, id, promotionID string) (dto.BookingPromotionResponse, error)
	RemovePromotion(ctx context.Context, id, promotionID string) error
}

type Repositories struct {
	Booking          repository.Booking
	Certificate      repository.Certificate
	BookingPromotion repository.BookingPromotion
	HotelChain       chainRepo.HotelChain
	SubBrand         chainRepo.SubBrand
	CreditCard       cardRepo.CreditCard
	ShoppingPortal   portalRepo.ShoppingPortal
	OtaAgency        agencyRepo.OtaAgency
	Promotion        promotionRepo.Promotion
	BenefitValuation bvRepo.BenefitValuation
}

type serviceImpl struct {
	repo             repository.Booking
	certRepo         repository.Certificate
	bpRepo           repository.BookingPromotion
	chainRepo        chainRepo.HotelChain
	subBrandRepo     chainRepo.SubBrand
	cardRepo         cardRepo.CreditCard
	portalRepo       portalRepo.ShoppingPortal
	agencyRepo       agencyRepo.OtaAgency
	promotionRepo    promotionRepo.Promotion
	valuationRepo    bvRepo.BenefitValuation
	promotionService promotionService.Promotion
	loyalty          loyaltyService.Loyalty
	transactor       gRepo.Transactor
	otel             otel.Otel
}

func New(
	repos Repositories,
	promotionService promotionService.Promotion,
	loyalty loyaltyService.Loyalty,
	transactor gRepo.Transactor,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:             repos.Booking,
		certRepo:         repos.Certificate,
		bpRepo:           repos.BookingPromotion,
		chainRepo:        repos.HotelChain,
		subBrandRepo:     repos.SubBrand,
		cardRepo:         repos.CreditCard,
		portalRepo:       repos.ShoppingPortal,
		agencyRepo:       repos.OtaAgency,
		promotionRepo:    repos.Promotion,
		valuationRepo:    repos.BenefitValuation,
		promotionService: promotionService,
		loyalty:          loyalty,
		transactor:       transactor,
		otel:             otel,
	}
}

// Create stores the booking, its certificates and its matched promotions in
// one transaction.
func (s *serviceImpl) Create(ctx context.Context, req dto.BookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.prepare(ctx, req)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.saveRelations(ctx, tx, req, booking.ID, false)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	return s.Get(ctx, booking.ID)
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.repo.GetDetails(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(details, total, req.Limit)

	return res, nil
}

// Get returns the booking with its certificates, promotions and net cost.
func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	view, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(view.detail)
	res.WithRelations(view.certTypes, view.applied, view.netCost)

	return res, nil
}

// Update replaces every field of the booking and re-matches it. Points the
// user typed in on an earlier save are recomputed when the request omits them.
func (s *serviceImpl) Update(ctx context.Context, req dto.BookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return res, fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	booking, err := s.prepare(ctx, req)
	if err != nil {
		return res, err
	}

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.UpdateTx(ctx, tx, dto.ToFields(booking, shared.Actor(ctx)), filter); err != nil {
			return fmt.Errorf("failed to update booking: %w", err)
		}

		return s.saveRelations(ctx, tx, req, id, true)
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	return s.Get(ctx, id)
}

// Delete relies on the schema to cascade certificates and promotion rows.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking existence")

		return fmt.Errorf("failed to check booking existence: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	return nil
}

func (s *serviceImpl) NetCost(ctx context.Context, id string) (res netcost.Result, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".NetCost")
	defer scope.End()
	defer scope.TraceIfError(err)

	view, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	return view.netCost, nil
}

// prepare builds the row to store: references are checked, points are
// estimated when omitted and the card's current rate is snapshotted.
func (s *serviceImpl) prepare(ctx context.Context, req dto.BookingRequest) (model.Booking, error) {
	cardRate, err := s.checkReferences(ctx, req)
	if err != nil {
		return model.Booking{}, err
	}

	booking := req.ToModel(shared.Actor(ctx))

	if booking.CreditCardID != nil && booking.CardRewardRate == nil {
		booking.CardRewardRate = cardRate
	}

	if booking.LoyaltyPointsEarned == nil {
		points, err := s.loyalty.EstimatePoints(ctx, booking.HotelChainID, booking.HotelChainSubBrandID, booking.PretaxCost)
		if err != nil {
			log.Error().Err(err).Msg("failed to estimate loyalty points")

			return booking, fmt.Errorf("failed to estimate loyalty points: %w", err)
		}

		booking.LoyaltyPointsEarned = &points
	}

	return booking, nil
}

func (s *serviceImpl) saveRelations(ctx context.Context, tx *sqlx.Tx, req dto.BookingRequest, bookingID string, replace bool) error {
	if replace {
		err := s.certRepo.DeleteTx(ctx, tx, gDto.And(gDto.Eq(model.CertificateTableName, model.FieldBookingID, bookingID)))
		if err != nil {
			return fmt.Errorf("failed to clear certificates: %w", err)
		}
	}

	if certificates := req.ToCertificates(bookingID, shared.Actor(ctx)); len(certificates) > 0 {
		if err := s.certRepo.InsertBulkTx(ctx, tx, certificates); err != nil {
			return fmt.Errorf("failed to insert certificates: %w", err)
		}
	}

	if _, err := s.promotionService.MatchPromotionsForBookingTx(ctx, tx, bookingID); err != nil {
		return fmt.Errorf("failed to match promotions: %w", err)
	}

	return nil
}

type bookingView struct {
	detail    model.Detail
	certTypes []string
	applied   []model.AppliedPromotion
	netCost   netcost.Result
}

func (s *serviceImpl) load(ctx context.Context, id string) (res bookingView, err error) {
	res.detail, err = s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if res.detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	certificates, err := s.certRepo.GetAll(ctx, gDto.QueryParams{},
		gDto.And(gDto.Eq(model.CertificateTableName, model.FieldBookingID, id)))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get certificates")

		return res, fmt.Errorf("failed to get certificates: %w", err)
	}

	res.certTypes = make([]string, len(certificates))
	for i, certificate := range certificates {
		res.certTypes[i] = certificate.CertType
	}

	res.applied, err = s.bpRepo.GetApplied(ctx,
		gDto.And(gDto.Eq(model.BookingPromotionTableName, model.FieldBookingID, id)))
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking promotions")

		return res, fmt.Errorf("failed to get booking promotions: %w", err)
	}

	valuations, err := s.valuationRepo.GetAll(ctx, gDto.QueryParams{}, gDto.And())
	if err != nil {
		log.Error().Err(err).Msg("failed to get benefit valuations")

		return res, fmt.Errorf("failed to get benefit valuations: %w", err)
	}

	res.netCost = netcost.Calculate(netcost.FromDetail(res.detail, res.certTypes, res.applied), valuations)

	return res, nil
}
