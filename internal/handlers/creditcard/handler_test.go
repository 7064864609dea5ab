package creditcard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model/dto"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/service/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/creditcard"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/failure"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*svcMocks.MockCreditCard, http.Handler) {
	t.Helper()

	svc := svcMocks.NewMockCreditCard(gomock.NewController(t))
	handler := creditcard.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, strings.NewReader(body)))

	return rec
}

func TestCreateCreditCard(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *svcMocks.MockCreditCard)
		wantCode int
	}{
		{
			name: "created",
			body: `{"name":"Sapphire Reserve","rewardType":"points","rewardRate":3}`,
			mock: func(svc *svcMocks.MockCreditCard) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("new-id", nil)
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "invalid body",
			body:     `{"name":"Sapphire Reserve","rewardType":"miles","rewardRate":3}`,
			mock:     func(_ *svcMocks.MockCreditCard) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{`,
			mock:     func(_ *svcMocks.MockCreditCard) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "service failure",
			body: `{"name":"Sapphire Reserve","rewardType":"points","rewardRate":3}`,
			mock: func(svc *svcMocks.MockCreditCard) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return("", errors.New("db down"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.mock(svc)

			rec := serve(router, http.MethodPost, "/v1/credit-cards", tt.body)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetCreditCardByID(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Get(gomock.Any(), "x1").Return(dto.CreditCardResponse{ID: "x1", Name: "Found"}, nil)
	svc.EXPECT().Get(gomock.Any(), "missing").Return(dto.CreditCardResponse{}, failure.NotFound("credit card not found"))

	rec := serve(router, http.MethodGet, "/v1/credit-cards/x1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"x1"`)

	rec = serve(router, http.MethodGet, "/v1/credit-cards/missing", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetCreditCards(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(dto.GetCreditCardsResponse{TotalData: 1, TotalPage: 1}, nil)

	rec := serve(router, http.MethodGet, "/v1/credit-cards?name=a&sort_by=name", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"totalData":1`)
}

func TestUpdateCreditCard(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "x1").
		Return(nil)

	rec := serve(router, http.MethodPut, "/v1/credit-cards/x1", `{"name":"Renamed"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteCreditCard(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().Delete(gomock.Any(), "x1").Return(failure.Conflictf("credit card is used by %d bookings", 2))
	svc.EXPECT().Delete(gomock.Any(), "x2").Return(nil)

	rec := serve(router, http.MethodDelete, "/v1/credit-cards/x1", "")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "is used by 2 bookings")

	rec = serve(router, http.MethodDelete, "/v1/credit-cards/x2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
