package service_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/config"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/mocks"
	agencyMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/service"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (*agencyMocks.MockOtaAgency, *bookingMocks.MockBooking, service.OtaAgency) {
	ctrl := gomock.NewController(t)

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	repo := agencyMocks.NewMockOtaAgency(ctrl)
	bookingRepo := bookingMocks.NewMockBooking(ctrl)

	return repo, bookingRepo, service.New(repo, bookingRepo, cfg, cache.NewRedisCache(client, mocks.NewOtel()), mocks.NewOtel())
}

func TestOtaAgencyService_Get(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.OtaAgency{ID: "expedia", Name: "expedia"}, nil)

	res, err := svc.Get(context.Background(), "expedia")
	require.NoError(t, err)

	assert.Equal(t, "expedia", res.Name)
}

func TestOtaAgencyService_GetNotFound(t *testing.T) {
	repo, _, svc := newService(t)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.OtaAgency{}, nil)

	_, err := svc.Get(context.Background(), "missing")

	assert.Equal(t, 404, failure.GetCode(err))
}

func TestOtaAgencyService_DeleteInUse(t *testing.T) {
	repo, bookingRepo, svc := newService(t)

	repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	bookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	err := svc.Delete(context.Background(), "expedia")

	assert.Equal(t, 409, failure.GetCode(err))
}
