package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	portalMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func newService(t *testing.T) (*portalMocks.MockShoppingPortal, *bookingMocks.MockBooking, service.ShoppingPortal) {
	repo, bookingRepo, _, svc := newServiceWithPromotions(t)

	return repo, bookingRepo, svc
}

func newServiceWithPromotions(t *testing.T) (*portalMocks.MockShoppingPortal, *bookingMocks.MockBooking, *promotionMocks.MockPromotion, service.ShoppingPortal) {
	ctrl := gomock.NewController(t)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := portalMocks.NewMockShoppingPortal(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)
	promotions := promotionMocks.NewMockPromotion(ctrl)

	svc := service.New(repo, bookingRepo, promotions, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())

	return repo, bookingRepo, promotions, svc
}

func TestShoppingPortalService_Get(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ShoppingPortal{ID: "rakuten", Name: "rakuten"}, nil)

	res, err := svc.Get(context.Background(), "rakuten")
	require.NoError(t, err)

	assert.Equal(t, "rakuten", res.Name)
}

func TestShoppingPortalService_GetNotFound(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.ShoppingPortal{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, 404, failure.GetCode(err))
}

func TestShoppingPortalService_DeleteInUse(t *testing.T) {
	repo, bookingRepo, svc := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	err := svc.Delete(context.Background(), "rakuten")

	assert.Equal(t, 409, failure.GetCode(err))
}

func TestShoppingPortalService_Update(t *testing.T) {
	current := model.ShoppingPortal{ID: "rakuten", Name: "Rakuten", RewardType: model.RewardTypeCashback}

	tests := []struct {
		name           string
		req            dto.UpdateShoppingPortalRequest
		wantReevaluate bool
	}{
		{name: "rename", req: dto.UpdateShoppingPortalRequest{Name: "Rakuten US"}},
		{name: "reward type change", req: dto.UpdateShoppingPortalRequest{RewardType: model.RewardTypePoints}, wantReevaluate: true},
		{name: "first point type", req: dto.UpdateShoppingPortalRequest{PointTypeID: ptr("mr")}, wantReevaluate: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, promotions, svc := newServiceWithPromotions(t)

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(current, nil)
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

			if tt.wantReevaluate {
				promotions.EXPECT().
					ReevaluateMatching(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (promotionDto.Report, error) {
						_, args := filter.GetWhereClause()
						assert.Equal(t, "rakuten", args["shopping_portal_id"])

						return promotionDto.Report{Processed: 5}, nil
					})
			}

			require.NoError(t, svc.Update(context.Background(), tt.req, "rakuten"))
		})
	}
}
