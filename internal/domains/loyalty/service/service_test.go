package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	chainMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/mocks"
	chainModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	statusMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/mocks"
	statusModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	bookingRepo      *bookingMocks.MockBooking
	chainRepo        *chainMocks.MockHotelChain
	subBrandRepo     *chainMocks.MockSubBrand
	statusRepo       *statusMocks.MockUserStatus
	promotionService *promotionMocks.MockPromotion
	svc              service.Loyalty
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		bookingRepo:      bookingMocks.NewMockBooking(ctrl),
		chainRepo:        chainMocks.NewMockHotelChain(ctrl),
		subBrandRepo:     chainMocks.NewMockSubBrand(ctrl),
		statusRepo:       statusMocks.NewMockUserStatus(ctrl),
		promotionService: promotionMocks.NewMockPromotion(ctrl),
	}

	f.svc = service.New(f.bookingRepo, f.chainRepo, f.subBrandRepo, f.statusRepo, f.promotionService, mocks.NewOtel())

	return f
}

func (f fixture) expectRates(chainRate float64, subBrands []chainModel.SubBrand, eliteRate *float64) {
	f.chainRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(chainModel.HotelChain{ID: "hyatt", BasePointRate: &chainRate}, nil)

	f.subBrandRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(subBrands, nil)

	f.statusRepo.EXPECT().
		GetDetail(gomock.Any(), gomock.Any()).
		Return(statusModel.Detail{ElitePointRate: eliteRate}, nil)
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name   string
		pretax float64
		base   float64
		elite  float64
		want   int
	}{
		{name: "base only", pretax: 750, base: 5, want: 3750},
		{name: "base and elite", pretax: 750, base: 5, elite: 5, want: 7500},
		{name: "rounds half up", pretax: 100.25, base: 2, want: 201},
		{name: "no rate", pretax: 750, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, service.Points(tt.pretax, tt.base, tt.elite))
		})
	}
}

func TestLoyaltyService_EstimatePoints(t *testing.T) {
	t.Run("sub-brand rate overrides the chain rate", func(t *testing.T) {
		f := newFixture(t)
		f.expectRates(5, []chainModel.SubBrand{{ID: "andaz", BasePointRate: ptr(4.0)}}, ptr(1.0))

		points, err := f.svc.EstimatePoints(context.Background(), "hyatt", ptr("andaz"), 100)

		require.NoError(t, err)
		assert.Equal(t, 500, points)
	})

	t.Run("chain rate without sub-brand", func(t *testing.T) {
		f := newFixture(t)
		f.expectRates(5, nil, nil)

		points, err := f.svc.EstimatePoints(context.Background(), "hyatt", nil, 100)

		require.NoError(t, err)
		assert.Equal(t, 500, points)
	})

	t.Run("unknown chain", func(t *testing.T) {
		f := newFixture(t)
		f.chainRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(chainModel.HotelChain{}, nil)

		_, err := f.svc.EstimatePoints(context.Background(), "nope", nil, 100)

		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestLoyaltyService_RecalculateLoyaltyForHotelChain(t *testing.T) {
	t.Run("skips manual entries and unchanged bookings", func(t *testing.T) {
		f := newFixture(t)
		f.expectRates(6, nil, ptr(2.0))

		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{ID: "auto", PretaxCost: 100, LoyaltyPointsEarned: ptr(500)},
				{ID: "manual", PretaxCost: 100, LoyaltyPointsEarned: ptr(12345), LoyaltyPointsManual: true},
				{ID: "same", PretaxCost: 50, LoyaltyPointsEarned: ptr(400)},
				{ID: "empty", PretaxCost: 10},
			}, nil)

		updated := []int{}
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				updated = append(updated, fields[bookingModel.FieldLoyaltyPointsEarned].(int))

				return nil
			}).
			Times(2)

		f.promotionService.EXPECT().
			ReevaluateBookings(gomock.Any(), []string{"auto", "empty"}).
			Return(promotionDto.Report{Processed: 2}, nil)

		report, err := f.svc.RecalculateLoyaltyForHotelChain(context.Background(), "hyatt")

		require.NoError(t, err)
		assert.Equal(t, []int{800, 80}, updated)
		assert.Equal(t, 2, report.Updated)
		assert.Equal(t, 1, report.SkippedManual)
		assert.Equal(t, 1, report.Unchanged)
		assert.Equal(t, 2, report.Reevaluation.Processed)
	})

	t.Run("partial reevaluation is reported, not returned", func(t *testing.T) {
		f := newFixture(t)
		f.expectRates(5, nil, nil)

		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1", PretaxCost: 100}}, nil)
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		partial := promotionDto.Report{Failures: []promotionDto.Failure{{BookingID: "b1", Error: "boom"}}}
		f.promotionService.EXPECT().
			ReevaluateBookings(gomock.Any(), []string{"b1"}).
			Return(partial, promotionService.ErrPartialReevaluation)

		report, err := f.svc.RecalculateLoyaltyForHotelChain(context.Background(), "hyatt")

		require.NoError(t, err)
		assert.True(t, report.Reevaluation.Partial())
	})

	t.Run("update failure is listed and the pass continues", func(t *testing.T) {
		f := newFixture(t)
		f.expectRates(5, nil, nil)

		f.bookingRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{{ID: "b1", PretaxCost: 100}, {ID: "b2", PretaxCost: 200}, {ID: "b3", PretaxCost: 300}}, nil)
		f.bookingRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ map[string]any, filter gDto.FilterGroup) error {
				_, args := filter.GetWhereClause()
				if args["id"] == "b2" {
					return errors.New("database error")
				}

				return nil
			}).
			Times(3)

		f.promotionService.EXPECT().
			ReevaluateBookings(gomock.Any(), []string{"b1", "b3"}).
			Return(promotionDto.Report{Processed: 2}, nil)

		report, err := f.svc.RecalculateLoyaltyForHotelChain(context.Background(), "hyatt")

		require.NoError(t, err)
		assert.Equal(t, 2, report.Updated)
		require.Len(t, report.Failures, 1)
		assert.Equal(t, "b2", report.Failures[0].BookingID)
		assert.Equal(t, "database error", report.Failures[0].Error)
		assert.True(t, report.Partial())
	})
}
