package userstatus_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model/dto"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/service/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/userstatus"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const globalist = "5b0f3f0e-8a5c-4d8e-9d39-2b1f2f0c6a11"

func TestSetUserStatus(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *svcMocks.MockUserStatus)
		wantCode int
	}{
		{
			name: "tier changed",
			body: `{"eliteStatusId":"` + globalist + `"}`,
			mock: func(svc *svcMocks.MockUserStatus) {
				id := globalist
				svc.EXPECT().Set(gomock.Any(), "hyatt", dto.SetUserStatusRequest{EliteStatusID: &id}).
					Return(dto.SetUserStatusResponse{Recalculation: &loyaltyDto.RecalculationReport{Updated: 2}}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "tier cleared",
			body: `{"eliteStatusId":null}`,
			mock: func(svc *svcMocks.MockUserStatus) {
				svc.EXPECT().Set(gomock.Any(), "hyatt", dto.SetUserStatusRequest{}).Return(dto.SetUserStatusResponse{}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "recalculation partially failed",
			body: `{"eliteStatusId":null}`,
			mock: func(svc *svcMocks.MockUserStatus) {
				svc.EXPECT().Set(gomock.Any(), "hyatt", gomock.Any()).Return(dto.SetUserStatusResponse{
					Recalculation: &loyaltyDto.RecalculationReport{
						Reevaluation: promotionDto.Report{Failures: []promotionDto.Failure{{BookingID: "b1", Error: "boom"}}},
					},
				}, nil)
			},
			wantCode: http.StatusMultiStatus,
		},
		{
			name:     "elite status id is not a uuid",
			body:     `{"eliteStatusId":"globalist"}`,
			mock:     func(_ *svcMocks.MockUserStatus) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "tier of another chain",
			body: `{"eliteStatusId":"` + globalist + `"}`,
			mock: func(svc *svcMocks.MockUserStatus) {
				svc.EXPECT().Set(gomock.Any(), "hyatt", gomock.Any()).
					Return(dto.SetUserStatusResponse{}, failure.BadRequestf("elite status %s does not belong to hotel chain %s", globalist, "hyatt"))
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := svcMocks.NewMockUserStatus(gomock.NewController(t))
			tt.mock(svc)

			handler := userstatus.New(svc, mocks.NewOtel())
			router := chi.NewRouter()
			router.Route("/v1", handler.Router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/user-statuses/hyatt", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetUserStatuses(t *testing.T) {
	svc := svcMocks.NewMockUserStatus(gomock.NewController(t))
	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetUserStatusesResponse{
		UserStatuses: []dto.UserStatusResponse{{HotelChainID: "hyatt", HotelChainName: "Hyatt"}},
	}, nil)

	handler := userstatus.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/user-statuses", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"hotelChainName":"Hyatt"`)
}
