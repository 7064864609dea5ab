package pointtype_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model/dto"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/service/mocks"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/pointtype"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*svcMocks.MockPointType, http.Handler) {
	t.Helper()

	svc := svcMocks.NewMockPointType(gomock.NewController(t))
	handler := pointtype.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreatePointType(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *svcMocks.MockPointType)
		wantCode int
	}{
		{
			name: "created",
			body: `{"name":"World of Hyatt","category":"hotel","centsPerPoint":0.017}`,
			mock: func(svc *svcMocks.MockPointType) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("new-id", nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid body",
			body:     `{"name":"World of Hyatt","category":"cash","centsPerPoint":0.017}`,
			mock:     func(_ *svcMocks.MockPointType) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{`,
			mock:     func(_ *svcMocks.MockPointType) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"name":"World of Hyatt","category":"hotel","centsPerPoint":0.017}`,
			mock: func(svc *svcMocks.MockPointType) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.mock(svc)

			rec := serve(router, http.MethodPost, "/v1/point-types", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetPointTypeByID(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Get(gomock.Any(), "x1").Return(dto.PointTypeResponse{ID: "x1", Name: "Found"}, nil)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.PointTypeResponse{}, failure.NotFound("point type not found"))

	rec := serve(router, http.MethodGet, "/v1/point-types/x1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"x1"`)

	rec = serve(router, http.MethodGet, "/v1/point-types/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetPointTypes(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetPointTypesResponse{TotalData: 1, TotalPage: 1}, nil)

	rec := serve(router, http.MethodGet, "/v1/point-types?name=a&sort_by=name", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalData":1`)
}

func TestUpdatePointType(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "x1").
		Return(promotionDto.Report{Processed: 4, Failures: []promotionDto.Failure{{BookingID: "b2", Error: "boom"}}}, nil)

	rec := serve(router, http.MethodPut, "/v1/point-types/x1", `{"centsPerPoint":0.02}`)

	assert.Equal(t, http.StatusMultiStatus, rec.Code)
}

func TestDeletePointType(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "x1").Return(failure.Conflictf("point type is used by %d bookings", 2))
	svc.EXPECT().Delete(gomock.Any(), "x2").Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/point-types/x1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "is used by 2 bookings")

	rec = serve(router, http.MethodDelete, "/v1/point-types/x2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
