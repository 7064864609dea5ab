package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	chainMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/service"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	loyaltyMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/service/mocks"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	statusMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/mocks"
	statusModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

type fixture struct {
	repo            *chainMocks.MockHotelChain
	subBrandRepo    *chainMocks.MockSubBrand
	eliteStatusRepo *chainMocks.MockEliteStatus
	bookingRepo     *bookingMocks.MockBooking
	statusRepo      *statusMocks.MockUserStatus
	loyalty         *loyaltyMocks.MockLoyalty
	promotions      *promotionMocks.MockPromotion
	redis           *miniredis.Miniredis
	svc             service.HotelChain
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:            chainMocks.NewMockHotelChain(ctrl),
		subBrandRepo:    chainMocks.NewMockSubBrand(ctrl),
		eliteStatusRepo: chainMocks.NewMockEliteStatus(ctrl),
		bookingRepo:     bookingMocks.NewMockBooking(ctrl),
		statusRepo:      statusMocks.NewMockUserStatus(ctrl),
		loyalty:         loyaltyMocks.NewMockLoyalty(ctrl),
		promotions:      promotionMocks.NewMockPromotion(ctrl),
		redis:           server,
	}

	f.svc = service.New(f.repo, f.subBrandRepo, f.eliteStatusRepo, f.bookingRepo, f.statusRepo, f.loyalty, f.promotions, cfg,
		cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return f
}

func hyatt() model.HotelChain {
	return model.HotelChain{ID: "hyatt", Name: "Hyatt", LoyaltyProgram: "World of Hyatt", BasePointRate: ptr(5.0)}
}

func TestHotelChainService_Get(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hyatt(), nil).Times(1)
	f.subBrandRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.SubBrand{{ID: "park", HotelChainID: "hyatt", Name: "Park Hyatt"}}, nil).
		Times(1)
	f.eliteStatusRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.EliteStatus{{ID: "globalist", HotelChainID: "hyatt", PointRate: 1.5, Rank: 4}}, nil).
		Times(1)

	first, err := f.svc.Get(context.Background(), "hyatt")
	require.NoError(t, err)

	require.Eventually(t, func() bool { return f.redis.Exists("hotel-chain:get:hyatt") }, time.Second, 10*time.Millisecond)

	second, err := f.svc.Get(context.Background(), "hyatt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Len(t, first.SubBrands, 1)
	assert.Equal(t, 1.5, first.EliteStatuses[0].PointRate)
}

func TestHotelChainService_Update(t *testing.T) {
	tests := []struct {
		name            string
		current         model.HotelChain
		req             dto.UpdateHotelChainRequest
		wantRecalculate bool
		wantReevaluate  bool
	}{
		{
			name:            "rate change recalculates",
			current:         model.HotelChain{ID: "hyatt", BasePointRate: ptr(5.0)},
			req:             dto.UpdateHotelChainRequest{BasePointRate: ptr(6.0)},
			wantRecalculate: true,
		},
		{
			name:            "first rate recalculates",
			current:         model.HotelChain{ID: "hyatt"},
			req:             dto.UpdateHotelChainRequest{BasePointRate: ptr(5.0)},
			wantRecalculate: true,
		},
		{
			name:    "same rate does not",
			current: model.HotelChain{ID: "hyatt", BasePointRate: ptr(5.0)},
			req:     dto.UpdateHotelChainRequest{BasePointRate: ptr(5.0)},
		},
		{
			name:    "rename does not",
			current: model.HotelChain{ID: "hyatt", BasePointRate: ptr(5.0)},
			req:     dto.UpdateHotelChainRequest{Name: "Hyatt Hotels"},
		},
		{
			name:           "point type change re-matches the chain",
			current:        model.HotelChain{ID: "hyatt", PointTypeID: ptr("hyatt-points")},
			req:            dto.UpdateHotelChainRequest{PointTypeID: ptr("transferable")},
			wantReevaluate: true,
		},
		{
			name:    "same point type does not",
			current: model.HotelChain{ID: "hyatt", PointTypeID: ptr("hyatt-points")},
			req:     dto.UpdateHotelChainRequest{PointTypeID: ptr("hyatt-points")},
		},
		{
			name:            "rate and point type change do both",
			current:         model.HotelChain{ID: "hyatt", BasePointRate: ptr(5.0), PointTypeID: ptr("hyatt-points")},
			req:             dto.UpdateHotelChainRequest{BasePointRate: ptr(6.0), PointTypeID: ptr("transferable")},
			wantRecalculate: true,
			wantReevaluate:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.current, nil)
			f.repo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)

			if tt.wantRecalculate {
				f.loyalty.EXPECT().
					RecalculateLoyaltyForHotelChain(gomock.Any(), "hyatt").
					Return(loyaltyDto.RecalculationReport{HotelChainID: "hyatt", Updated: 3}, nil)
			}

			if tt.wantReevaluate {
				f.promotions.EXPECT().
					ReevaluateMatching(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (promotionDto.Report, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "hyatt", args["hotel_chain_id"])

						return promotionDto.Report{Processed: 7}, nil
					})
			}

			report, err := f.svc.Update(context.Background(), tt.req, "hyatt")
			require.NoError(t, err)

			if !tt.wantRecalculate && !tt.wantReevaluate {
				assert.Nil(t, report)

				return
			}

			require.NotNil(t, report)
			assert.Equal(t, "hyatt", report.HotelChainID)

			if tt.wantRecalculate {
				assert.Equal(t, 3, report.Updated)
			}

			if tt.wantReevaluate {
				assert.Equal(t, 7, report.Reevaluation.Processed)
			}
		})
	}
}

func TestHotelChainService_UpdatePointTypePartialReevaluation(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.HotelChain{ID: "hyatt"}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.promotions.EXPECT().
		ReevaluateMatching(gomock.Any(), gomock.Any()).
		Return(promotionDto.Report{Processed: 1, Failures: []promotionDto.Failure{{BookingID: "b2"}}}, fmt.Errorf("%w: 1 of 2", promotionService.ErrPartialReevaluation))

	report, err := f.svc.Update(context.Background(), dto.UpdateHotelChainRequest{PointTypeID: ptr("transferable")}, "hyatt")

	require.NoError(t, err)
	assert.Len(t, report.Reevaluation.Failures, 1)
}

func TestHotelChainService_DeleteWithBookings(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hyatt(), nil)
	f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	err := f.svc.Delete(context.Background(), "hyatt")

	assert.Equal(t, 409, failure.GetCode(err))
	assert.Equal(t, "hotel chain is used by 2 bookings", err.Error())
}

func TestHotelChainService_Delete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hyatt(), nil)
	f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, f.svc.Delete(context.Background(), "hyatt"))
}

func TestHotelChainService_DeleteSubBrandInUse(t *testing.T) {
	f := newFixture(t)

	f.subBrandRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.bookingRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

	err := f.svc.DeleteSubBrand(context.Background(), "hyatt", "park")

	assert.Equal(t, 409, failure.GetCode(err))
}

func TestHotelChainService_UpdateSubBrandRecalculates(t *testing.T) {
	f := newFixture(t)

	f.subBrandRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.SubBrand{ID: "park", HotelChainID: "hyatt"}, nil)
	f.subBrandRepo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	f.loyalty.EXPECT().
		RecalculateLoyaltyForHotelChain(gomock.Any(), "hyatt").
		Return(loyaltyDto.RecalculationReport{HotelChainID: "hyatt", Updated: 1}, nil)

	report, err := f.svc.UpdateSubBrand(context.Background(), "hyatt", "park", dto.UpdateSubBrandRequest{BasePointRate: ptr(3.0)})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, 1, report.Updated)
}

func TestHotelChainService_UpdateEliteStatus(t *testing.T) {
	tests := []struct {
		name            string
		held            bool
		wantRecalculate bool
	}{
		{name: "held tier recalculates", held: true, wantRecalculate: true},
		{name: "tier not held does not"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.eliteStatusRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.EliteStatus{ID: "globalist", HotelChainID: "hyatt", PointRate: 1.5}, nil)
			f.eliteStatusRepo.EXPECT().
				Update(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil)

			status := statusModel.UserStatus{}
			if tt.held {
				status = statusModel.UserStatus{ID: "s1", HotelChainID: "hyatt", EliteStatusID: ptr("globalist")}
			}

			f.statusRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(status, nil)

			if tt.wantRecalculate {
				f.loyalty.EXPECT().
					RecalculateLoyaltyForHotelChain(gomock.Any(), "hyatt").
					Return(loyaltyDto.RecalculationReport{HotelChainID: "hyatt"}, nil)
			}

			report, err := f.svc.UpdateEliteStatus(context.Background(), "hyatt", "globalist", dto.UpdateEliteStatusRequest{PointRate: ptr(2.0)})
			require.NoError(t, err)

			assert.Equal(t, tt.wantRecalculate, report != nil)
		})
	}
}

func TestHotelChainService_DeleteHeldEliteStatus(t *testing.T) {
	f := newFixture(t)

	f.eliteStatusRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.statusRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(statusModel.UserStatus{ID: "s1", EliteStatusID: ptr("globalist")}, nil)

	err := f.svc.DeleteEliteStatus(context.Background(), "hyatt", "globalist")

	assert.Equal(t, 409, failure.GetCode(err))
}

func TestHotelChainService_CreateSubBrandUnknownChain(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.HotelChain{}, nil)

	_, err := f.svc.CreateSubBrand(context.Background(), "missing", dto.CreateSubBrandRequest{Name: "Andaz"})

	assert.Equal(t, 404, failure.GetCode(err))
}
