package promotion_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/promotion"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingID = "2f6c1d9e-3b7a-4c5d-8e9f-0a1b2c3d4e5f"

func newRouter(t *testing.T) (*svcMocks.MockPromotion, http.Handler) {
	t.Helper()

	svc := svcMocks.NewMockPromotion(gomock.NewController(t))
	handler := promotion.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()

	req := httptest.NewRequest(method, target, nil)
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	router.ServeHTTP(rec, req)

	return rec
}

func TestCreatePromotion(t *testing.T) {
	body := `{"name":"Hyatt Q1 bonus","type":"loyalty","valueType":"fixed","value":50}`

	tests := []struct {
		name     string
		body     string
		report   dto.Report
		wantCode int
	}{
		{
			name:     "created and matched",
			body:     body,
			report:   dto.Report{Processed: 4},
			wantCode: http.StatusCreated,
		},
		{
			name:     "created with failed bookings",
			body:     body,
			report:   dto.Report{Processed: 4, Failures: []dto.Failure{{BookingID: "b3", Error: "timeout"}}},
			wantCode: http.StatusMultiStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.SaveResponse{ID: "p1", Reevaluation: tt.report}, nil)

			rec := serve(router, http.MethodPost, "/v1/promotions", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), `"id":"p1"`)
		})
	}
}

func TestCreatePromotionInvalidType(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPost, "/v1/promotions", `{"name":"x","type":"airline","valueType":"fixed","value":5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetPromotionsFilters(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPromotionsResponse, error) {
			where, args := filter.GetWhereClause()

			assert.Equal(t, "(promotions.type = :type AND promotions.is_active = :is_active)", where)
			assert.Equal(t, map[string]any{"type": "loyalty", "is_active": true}, args)

			return dto.GetPromotionsResponse{}, nil
		})

	rec := serve(router, http.MethodGet, "/v1/promotions?type=loyalty&is_active=true", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/v1/promotions?is_active=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchPromotions(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().MatchPromotionsForBooking(gomock.Any(), bookingID).Return([]bookingModel.BookingPromotion{
		{BookingID: bookingID, PromotionID: "p1", AppliedValue: 50, Status: bookingModel.StatusAutoApplied},
	}, nil)

	rec := serve(router, http.MethodPost, "/v1/promotions/match", `{"bookingId":"`+bookingID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"appliedValue":50`)

	rec = serve(router, http.MethodPost, "/v1/promotions/match", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReevaluateBookings(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *svcMocks.MockPromotion)
		wantCode int
	}{
		{
			name: "all bookings when body is empty",
			mock: func(svc *svcMocks.MockPromotion) {
				svc.EXPECT().ReevaluateAll(gomock.Any()).Return(dto.Report{Processed: 12}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "all bookings when ids are empty",
			body: `{"bookingIds":[]}`,
			mock: func(svc *svcMocks.MockPromotion) {
				svc.EXPECT().ReevaluateAll(gomock.Any()).Return(dto.Report{Processed: 12}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "named bookings with a failure",
			body: `{"bookingIds":["` + bookingID + `"]}`,
			mock: func(svc *svcMocks.MockPromotion) {
				svc.EXPECT().ReevaluateBookings(gomock.Any(), []string{bookingID}).Return(
					dto.Report{Processed: 1, Failures: []dto.Failure{{BookingID: bookingID, Error: "boom"}}},
					fmt.Errorf("%w: 1 of 1", service.ErrPartialReevaluation),
				)
			},
			wantCode: http.StatusMultiStatus,
		},
		{
			name:     "invalid ids",
			body:     `{"bookingIds":["nope"]}`,
			mock:     func(_ *svcMocks.MockPromotion) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "listing bookings failed",
			mock: func(svc *svcMocks.MockPromotion) {
				svc.EXPECT().ReevaluateAll(gomock.Any()).Return(dto.Report{}, fmt.Errorf("failed to get bookings: %w", context.DeadlineExceeded))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.mock(svc)

			rec := serve(router, http.MethodPost, "/v1/promotions/reevaluate", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestDeletePromotion(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "p1").Return(dto.Report{Processed: 2}, nil)

	rec := serve(router, http.MethodDelete, "/v1/promotions/p1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"processed":2`)
}
