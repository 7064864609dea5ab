package hotelchain_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model/dto"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/service/mocks"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/hotelchain"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*svcMocks.MockHotelChain, http.Handler) {
	t.Helper()

	svc := svcMocks.NewMockHotelChain(gomock.NewController(t))
	handler := hotelchain.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestUpdateHotelChain(t *testing.T) {
	tests := []struct {
		name     string
		report   *loyaltyDto.RecalculationReport
		wantCode int
		wantBody string
	}{
		{
			name:     "no recalculation",
			wantCode: http.StatusOK,
			wantBody: "Hotel chain updated successfully",
		},
		{
			name:     "recalculated",
			report:   &loyaltyDto.RecalculationReport{HotelChainID: "hyatt", Updated: 3},
			wantCode: http.StatusOK,
			wantBody: `"updated":3`,
		},
		{
			name: "reevaluation partially failed",
			report: &loyaltyDto.RecalculationReport{
				HotelChainID: "hyatt",
				Updated:      3,
				Reevaluation: promotionDto.Report{Processed: 3, Failures: []promotionDto.Failure{{BookingID: "b1", Error: "boom"}}},
			},
			wantCode: http.StatusMultiStatus,
			wantBody: `"bookingId":"b1"`,
		},
		{
			name: "points update partially failed",
			report: &loyaltyDto.RecalculationReport{
				HotelChainID: "hyatt",
				Updated:      2,
				Failures:     []promotionDto.Failure{{BookingID: "b2", Error: "database error"}},
			},
			wantCode: http.StatusMultiStatus,
			wantBody: `"failures":[{"bookingId":"b2"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			svc.EXPECT().Update(gomock.Any(), gomock.Any(), "hyatt").Return(tt.report, nil)

			rec := serve(router, http.MethodPut, "/v1/hotel-chains/hyatt", `{"basePointRate":5}`)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestCreateHotelChainValidation(t *testing.T) {
	_, router := newRouter(t)

	rec := serve(router, http.MethodPost, "/v1/hotel-chains", `{"basePointRate":-1}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetHotelChainByID(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Get(gomock.Any(), "hyatt").Return(dto.HotelChainResponse{ID: "hyatt", Name: "Hyatt"}, nil)

	rec := serve(router, http.MethodGet, "/v1/hotel-chains/hyatt", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Hyatt"`)
}

func TestSubBrandRoutes(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().CreateSubBrand(gomock.Any(), "hyatt", dto.CreateSubBrandRequest{Name: "Park Hyatt"}).Return("ph", nil)
	svc.EXPECT().GetSubBrands(gomock.Any(), "hyatt").Return([]dto.SubBrandResponse{{ID: "ph", Name: "Park Hyatt"}}, nil)
	svc.EXPECT().UpdateSubBrand(gomock.Any(), "hyatt", "ph", gomock.Any()).Return(nil, nil)
	svc.EXPECT().DeleteSubBrand(gomock.Any(), "hyatt", "ph").Return(failure.Conflict("sub-brand is used by bookings"))

	rec := serve(router, http.MethodPost, "/v1/hotel-chains/hyatt/sub-brands", `{"name":"Park Hyatt"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"ph"`)

	rec = serve(router, http.MethodGet, "/v1/hotel-chains/hyatt/sub-brands", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodPut, "/v1/hotel-chains/hyatt/sub-brands/ph", `{"name":"Park"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodDelete, "/v1/hotel-chains/hyatt/sub-brands/ph", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestEliteStatusRoutes(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().CreateEliteStatus(gomock.Any(), "hyatt", gomock.Any()).Return("globalist", nil)
	svc.EXPECT().GetEliteStatuses(gomock.Any(), "missing").Return(nil, failure.NotFound("hotel chain not found"))
	svc.EXPECT().UpdateEliteStatus(gomock.Any(), "hyatt", "globalist", gomock.Any()).
		Return(&loyaltyDto.RecalculationReport{HotelChainID: "hyatt", Updated: 1}, nil)
	svc.EXPECT().DeleteEliteStatus(gomock.Any(), "hyatt", "globalist").Return(nil)

	rec := serve(router, http.MethodPost, "/v1/hotel-chains/hyatt/elite-statuses", `{"name":"Globalist","pointRate":3,"rank":4}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(router, http.MethodPost, "/v1/hotel-chains/hyatt/elite-statuses", `{"name":"Globalist","rank":4}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(router, http.MethodGet, "/v1/hotel-chains/missing/elite-statuses", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodPut, "/v1/hotel-chains/hyatt/elite-statuses/globalist", `{"pointRate":3.5}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"updated":1`)

	rec = serve(router, http.MethodDelete, "/v1/hotel-chains/hyatt/elite-statuses/globalist", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
