package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bvMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/mocks"
	bvModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/service"
	cardMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/mocks"
	cardModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	chainMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/mocks"
	loyaltyMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service/mocks"
	agencyMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/mocks"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/mocks"
	promotionServiceMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	portalMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	txMocks "github.com/chris-catignani/hotel-tracker-sub001/shared/repository/mocks"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	repo          *bookingMocks.MockBooking
	certRepo      *bookingMocks.MockCertificate
	bpRepo        *bookingMocks.MockBookingPromotion
	chainRepo     *chainMocks.MockHotelChain
	subBrandRepo  *chainMocks.MockSubBrand
	cardRepo      *cardMocks.MockCreditCard
	portalRepo    *portalMocks.MockShoppingPortal
	agencyRepo    *agencyMocks.MockOtaAgency
	promotionRepo *promotionMocks.MockPromotion
	valuationRepo *bvMocks.MockBenefitValuation
	promotions    *promotionServiceMocks.MockPromotion
	loyalty       *loyaltyMocks.MockLoyalty
	transactor    *txMocks.Transactor
	svc           service.Booking
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:          bookingMocks.NewMockBooking(ctrl),
		certRepo:      bookingMocks.NewMockCertificate(ctrl),
		bpRepo:        bookingMocks.NewMockBookingPromotion(ctrl),
		chainRepo:     chainMocks.NewMockHotelChain(ctrl),
		subBrandRepo:  chainMocks.NewMockSubBrand(ctrl),
		cardRepo:      cardMocks.NewMockCreditCard(ctrl),
		portalRepo:    portalMocks.NewMockShoppingPortal(ctrl),
		agencyRepo:    agencyMocks.NewMockOtaAgency(ctrl),
		promotionRepo: promotionMocks.NewMockPromotion(ctrl),
		valuationRepo: bvMocks.NewMockBenefitValuation(ctrl),
		promotions:    promotionServiceMocks.NewMockPromotion(ctrl),
		loyalty:       loyaltyMocks.NewMockLoyalty(ctrl),
		transactor:    txMocks.NewTransactor(),
	}

	f.svc = service.New(service.Repositories{
		Booking:          f.repo,
		Certificate:      f.certRepo,
		BookingPromotion: f.bpRepo,
		HotelChain:       f.chainRepo,
		SubBrand:         f.subBrandRepo,
		CreditCard:       f.cardRepo,
		ShoppingPortal:   f.portalRepo,
		OtaAgency:        f.agencyRepo,
		Promotion:        f.promotionRepo,
		BenefitValuation: f.valuationRepo,
	}, f.promotions, f.loyalty, f.transactor, mocks.NewOtel())

	return f
}

func request() dto.BookingRequest {
	return dto.BookingRequest{
		HotelChainID:     "hyatt",
		PropertyName:     "Park Hyatt Tokyo",
		CheckIn:          "2026-03-01",
		CheckOut:         "2026-03-03",
		PretaxCost:       ptr(400.0),
		TotalCost:        ptr(500.0),
		CreditCardID:     ptr("csr"),
		CertificateTypes: []string{"fn_cat1_4"},
	}
}

// expectLoad wires the reads behind Get: one booking worth 500 that earned
// 2000 points at 1.5 cents with a 50 dollar promotion applied.
func (f *fixture) expectLoad(id string) {
	f.repo.EXPECT().
		GetDetail(gomock.Any(), gomock.Any()).
		Return(model.Detail{
			Booking: model.Booking{
				ID:                  id,
				HotelChainID:        "hyatt",
				NumNights:           2,
				PretaxCost:          400,
				TotalCost:           500,
				LoyaltyPointsEarned: ptr(2000),
			},
			HotelChainName:     "Hyatt",
			ChainCentsPerPoint: ptr(0.015),
		}, nil)
	f.certRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Certificate{{ID: "c1", BookingID: id, CertType: "fn_cat1_4"}}, nil)
	f.bpRepo.EXPECT().
		GetApplied(gomock.Any(), gomock.Any()).
		Return([]model.AppliedPromotion{{
			BookingPromotion: model.BookingPromotion{ID: "bp1", BookingID: id, PromotionID: "p1", AppliedValue: 50, Status: model.StatusAutoApplied},
			PromotionName:    "Hyatt bonus",
		}}, nil)
	f.valuationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bvModel.BenefitValuation{}, nil)
}

func TestBookingService_Create(t *testing.T) {
	f := newFixture(t)

	var inserted model.Booking

	f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.cardRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(cardModel.CreditCard{ID: "csr", RewardType: cardModel.RewardTypePoints, RewardRate: 3}, nil)
	f.loyalty.EXPECT().
		EstimatePoints(gomock.Any(), "hyatt", nil, 400.0).
		Return(2000, nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			inserted = booking

			return nil
		})
	f.certRepo.EXPECT().
		InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(1)).
		Return(nil)
	f.promotions.EXPECT().
		MatchPromotionsForBookingTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.BookingPromotion{}, nil)
	f.expectLoad("b1")

	res, err := f.svc.Create(context.Background(), request())
	require.NoError(t, err)

	assert.Equal(t, 2, inserted.NumNights)
	assert.Equal(t, 100.0, inserted.TaxAmount)
	assert.Equal(t, 2000, *inserted.LoyaltyPointsEarned)
	assert.False(t, inserted.LoyaltyPointsManual)
	assert.Equal(t, 3.0, *inserted.CardRewardRate)

	require.NotNil(t, res.NetCost)
	assert.InDelta(t, 420.0, res.NetCost.NetCost, 1e-9)
	assert.InDelta(t, 210.0, res.NetCost.Breakdown.NetCostPerNight, 1e-9)
	assert.Equal(t, []string{"fn_cat1_4"}, res.CertificateTypes)
	assert.Len(t, res.Promotions, 1)
}

func TestBookingService_CreateKeepsTypedPoints(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.CreditCardID = nil
	req.CertificateTypes = nil
	req.LoyaltyPointsEarned = ptr(5000)

	var inserted model.Booking

	f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().
		InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
			inserted = booking

			return nil
		})
	f.promotions.EXPECT().
		MatchPromotionsForBookingTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)
	f.expectLoad("b1")

	_, err := f.svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 5000, *inserted.LoyaltyPointsEarned)
	assert.True(t, inserted.LoyaltyPointsManual)
}

func TestBookingService_CreateRejectsBadReferences(t *testing.T) {
	tests := []struct {
		name    string
		req     func() dto.BookingRequest
		setup   func(f *fixture)
		message string
	}{
		{
			name: "unknown chain",
			req:  request,
			setup: func(f *fixture) {
				f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			message: "hotel chain hyatt not found",
		},
		{
			name: "sub-brand of another chain",
			req: func() dto.BookingRequest {
				req := request()
				req.HotelChainSubBrandID = ptr("courtyard")

				return req
			},
			setup: func(f *fixture) {
				f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.subBrandRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			message: "sub-brand courtyard does not belong to hotel chain hyatt",
		},
		{
			name: "unknown card",
			req:  request,
			setup: func(f *fixture) {
				f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.cardRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cardModel.CreditCard{}, nil)
			},
			message: "credit card csr not found",
		},
		{
			name: "unknown agency",
			req: func() dto.BookingRequest {
				req := request()
				req.CreditCardID = nil
				req.BookingSource = ptr(model.SourceOta)
				req.OtaAgencyID = ptr("expedia")

				return req
			},
			setup: func(f *fixture) {
				f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				f.agencyRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			message: "ota agency expedia not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			_, err := f.svc.Create(context.Background(), tt.req())

			assert.Equal(t, 400, failure.GetCode(err))
			assert.Equal(t, tt.message, err.Error())
			assert.Zero(t, f.transactor.Calls())
		})
	}
}

func TestBookingService_CreateMatchFailureRollsBack(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.CreditCardID = nil
	req.CertificateTypes = nil

	f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.loyalty.EXPECT().EstimatePoints(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(2000, nil)
	f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.promotions.EXPECT().
		MatchPromotionsForBookingTx(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("deadlock detected"))

	_, err := f.svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.Equal(t, 500, failure.GetCode(err))
}

func TestBookingService_Update(t *testing.T) {
	f := newFixture(t)

	req := request()
	req.CreditCardID = nil

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.chainRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.loyalty.EXPECT().EstimatePoints(gomock.Any(), "hyatt", nil, 400.0).Return(2000, nil)
	f.repo.EXPECT().
		UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ any) error {
			assert.NotContains(t, fields, model.FieldID)
			assert.Nil(t, fields[model.FieldCreditCardID])
			assert.Equal(t, false, fields[model.FieldLoyaltyPointsManual])

			return nil
		})
	f.certRepo.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.certRepo.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Len(1)).Return(nil)
	f.promotions.EXPECT().
		MatchPromotionsForBookingTx(gomock.Any(), gomock.Any(), "b1").
		Return(nil, nil)
	f.expectLoad("b1")

	res, err := f.svc.Update(context.Background(), req, "b1")
	require.NoError(t, err)

	assert.Equal(t, "b1", res.ID)
}

func TestBookingService_UpdateNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Update(context.Background(), request(), "missing")

	assert.Equal(t, 404, failure.GetCode(err))
}

func TestBookingService_NetCost(t *testing.T) {
	f := newFixture(t)
	f.expectLoad("b1")

	res, err := f.svc.NetCost(context.Background(), "b1")
	require.NoError(t, err)

	assert.InDelta(t, 30.0, res.Breakdown.LoyaltyPointsValue, 1e-9)
	assert.Equal(t, 50.0, res.Breakdown.PromoSavings)
	assert.InDelta(t, 420.0, res.NetCost, 1e-9)
}

func TestBookingService_VerifyPromotion(t *testing.T) {
	tests := []struct {
		name       string
		current    model.BookingPromotion
		wantUpdate bool
		wantStatus string
		wantCode   int
	}{
		{
			name:       "auto applied becomes verified",
			current:    model.BookingPromotion{ID: "bp1", Status: model.StatusAutoApplied},
			wantUpdate: true,
			wantStatus: model.StatusVerified,
		},
		{
			name:       "verified stays verified",
			current:    model.BookingPromotion{ID: "bp1", Status: model.StatusVerified},
			wantStatus: model.StatusVerified,
		},
		{
			name:     "manual rows cannot be verified",
			current:  model.BookingPromotion{ID: "bp1", Status: model.StatusManual},
			wantCode: 400,
		},
		{
			name:     "missing association",
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.bpRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.current, nil)

			if tt.wantUpdate {
				f.bpRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, model.StatusVerified, fields[model.FieldStatus])

						return nil
					})
			}

			res, err := f.svc.VerifyPromotion(context.Background(), "b1", "p1")

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.True(t, res.Verified)
		})
	}
}

func TestBookingService_AddPromotion(t *testing.T) {
	tests := []struct {
		name     string
		existing model.BookingPromotion
		wantCode int
	}{
		{name: "creates a manual row"},
		{name: "duplicate is a conflict", existing: model.BookingPromotion{ID: "bp1"}, wantCode: 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			f.promotionRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			f.bpRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.existing, nil)

			if tt.wantCode == 0 {
				f.bpRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			}

			res, err := f.svc.AddPromotion(context.Background(), "b1", dto.AddPromotionRequest{
				PromotionID:  "p1",
				AppliedValue: ptr(25.0),
			})

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusManual, res.Status)
			assert.Equal(t, 25.0, res.AppliedValue)
			assert.False(t, res.AutoApplied)
		})
	}
}

func TestBookingService_RemovePromotionNotFound(t *testing.T) {
	f := newFixture(t)

	f.bpRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.BookingPromotion{}, nil)

	err := f.svc.RemovePromotion(context.Background(), "b1", "p1")

	assert.Equal(t, 404, failure.GetCode(err))
}
