package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	cardMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/service"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
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
	repo        *cardMocks.MockCreditCard
	bookingRepo *bookingMocks.MockBooking
	promotions  *promotionMocks.MockPromotion
	redis       *miniredis.Miniredis
	svc         service.CreditCard
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	f := fixture{
		repo:        cardMocks.NewMockCreditCard(ctrl),
		bookingRepo: bookingMocks.NewMockBooking(ctrl),
		promotions:  promotionMocks.NewMockPromotion(ctrl),
		redis:       server,
	}

	f.svc = service.New(f.repo, f.bookingRepo, f.promotions, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return f
}

func TestCreditCardService_Create(t *testing.T) {
	f := newFixture(t)

	var inserted model.CreditCard

	f.repo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, card model.CreditCard) error {
			inserted = card

			return nil
		})

	id, err := f.svc.Create(context.Background(), dto.CreateCreditCardRequest{
		Name:       "Chase Sapphire Reserve",
		RewardType: model.RewardTypePoints,
		RewardRate: ptr(3.0),
	})
	require.NoError(t, err)

	assert.Equal(t, inserted.ID, id)
	assert.Equal(t, 3.0, inserted.RewardRate)
	assert.Equal(t, "anonymous", inserted.CreatedBy)
}

func TestCreditCardService_GetAllCached(t *testing.T) {
	f := newFixture(t)

	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil).Times(1)
	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.CreditCard{{ID: "csr", Name: "Chase Sapphire Reserve", RewardRate: 3}}, nil).
		Times(1)

	first, err := f.svc.GetAll(context.Background(), params, gDto.And())
	require.NoError(t, err)

	require.Eventually(t, func() bool { return len(f.redis.Keys()) >= 2 }, time.Second, 10*time.Millisecond)

	second, err := f.svc.GetAll(context.Background(), params, gDto.And())
	require.NoError(t, err)

	assert.Equal(t, 1, first.TotalPage)
	assert.Equal(t, first, second)
}

func TestCreditCardService_Delete(t *testing.T) {
	tests := []struct {
		name     string
		exist    bool
		bookings int
		countErr error
		wantCode int
	}{
		{name: "unused card is deleted", exist: true},
		{name: "card used by bookings", exist: true, bookings: 4, wantCode: 409},
		{name: "unknown card", wantCode: 404},
		{name: "usage check fails", exist: true, countErr: errors.New("connection reset"), wantCode: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(tt.exist, nil)

			if tt.exist {
				f.bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(tt.bookings, tt.countErr)
			}

			if tt.wantCode == 0 {
				f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := f.svc.Delete(context.Background(), "csr")

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}

			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestCreditCardService_UpdateInvalidatesCache(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.CreditCard{ID: "csr", RewardRate: 3}, nil)

	_, err := f.svc.Get(context.Background(), "csr")
	require.NoError(t, err)
	require.Eventually(t, func() bool { return f.redis.Exists("credit-card:get:csr") }, time.Second, 10*time.Millisecond)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CreditCard{ID: "csr", RewardRate: 3}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Update(context.Background(), dto.UpdateCreditCardRequest{RewardRate: ptr(4.0)}, "csr"))

	assert.Eventually(t, func() bool { return !f.redis.Exists("credit-card:get:csr") }, time.Second, 10*time.Millisecond)
}

func TestCreditCardService_UpdateReevaluatesCardBookings(t *testing.T) {
	current := model.CreditCard{ID: "csr", RewardType: model.RewardTypePoints, RewardRate: 3, PointTypeID: ptr("ur")}

	tests := []struct {
		name           string
		req            dto.UpdateCreditCardRequest
		reevaluateErr  error
		wantReevaluate bool
		wantErr        bool
	}{
		{name: "rate only", req: dto.UpdateCreditCardRequest{RewardRate: ptr(4.0)}},
		{name: "same reward type", req: dto.UpdateCreditCardRequest{RewardType: model.RewardTypePoints}},
		{name: "reward type change", req: dto.UpdateCreditCardRequest{RewardType: model.RewardTypeCashback}, wantReevaluate: true},
		{name: "point type change", req: dto.UpdateCreditCardRequest{PointTypeID: ptr("mr")}, wantReevaluate: true},
		{
			name:           "partial failure is not an error",
			req:            dto.UpdateCreditCardRequest{PointTypeID: ptr("mr")},
			reevaluateErr:  fmt.Errorf("%w: 1 of 3", promotionService.ErrPartialReevaluation),
			wantReevaluate: true,
		},
		{
			name:           "listing failure is an error",
			req:            dto.UpdateCreditCardRequest{PointTypeID: ptr("mr")},
			reevaluateErr:  errors.New("connection reset"),
			wantReevaluate: true,
			wantErr:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			if tt.wantReevaluate {
				f.promotions.EXPECT().
					ReevaluateMatching(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (promotionDto.Report, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "csr", args["credit_card_id"])

						return promotionDto.Report{Processed: 2}, tt.reevaluateErr
					})
			}

			err := f.svc.Update(context.Background(), tt.req, "csr")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestCreditCardService_UpdateUnknownCard(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.CreditCard{}, nil)

	err := f.svc.Update(context.Background(), dto.UpdateCreditCardRequest{Name: "Sapphire"}, "missing")

	assert.Equal(t, 404, failure.GetCode(err))
}
