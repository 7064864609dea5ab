package benefitvaluation_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
	svcMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/service/mocks"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/handlers/benefitvaluation"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const chainID = "0c2f4a8e-2a43-4a8c-8d0e-5c41a5f1c001"

func newRouter(t *testing.T) (*svcMocks.MockBenefitValuation, http.Handler) {
	t.Helper()

	svc := svcMocks.NewMockBenefitValuation(gomock.NewController(t))
	handler := benefitvaluation.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", handler.Router)

	return svc, router
}

func TestSaveValuations(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		mock     func(svc *svcMocks.MockBenefitValuation)
		wantCode int
	}{
		{
			name: "saved",
			body: `{"valuations":[{"isEqn":true,"value":12},{"hotelChainId":"` + chainID + `","certType":"fn_30k","value":null}]}`,
			mock: func(svc *svcMocks.MockBenefitValuation) {
				svc.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(dto.SaveValuationsResponse{Saved: 2}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "saved with failed reevaluation",
			body: `{"valuations":[{"isEqn":true,"value":12}]}`,
			mock: func(svc *svcMocks.MockBenefitValuation) {
				svc.EXPECT().SaveAll(gomock.Any(), gomock.Any()).Return(dto.SaveValuationsResponse{
					Saved:        1,
					Reevaluation: promotionDto.Report{Failures: []promotionDto.Failure{{BookingID: "b1", Error: "boom"}}},
				}, nil)
			},
			wantCode: http.StatusMultiStatus,
		},
		{
			name:     "two discriminators",
			body:     `{"valuations":[{"isEqn":true,"certType":"fn_30k","value":12}]}`,
			mock:     func(_ *svcMocks.MockBenefitValuation) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown value type",
			body:     `{"valuations":[{"isEqn":true,"value":12,"valueType":"miles"}]}`,
			mock:     func(_ *svcMocks.MockBenefitValuation) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.mock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/v1/benefit-valuations", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestResolveValuation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		mock     func(svc *svcMocks.MockBenefitValuation)
		wantCode int
	}{
		{
			name:  "eqn for a chain",
			query: "?is_eqn=true&hotel_chain_id=" + chainID,
			mock: func(svc *svcMocks.MockBenefitValuation) {
				svc.EXPECT().Resolve(gomock.Any(), resolver.Query{HotelChainID: chainID, IsEqn: true}).
					Return(dto.ResolveResponse{Value: 10, ValueType: "dollar", Source: resolver.SourceFallback}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:  "global benefit",
			query: "?benefit_type=breakfast",
			mock: func(svc *svcMocks.MockBenefitValuation) {
				svc.EXPECT().Resolve(gomock.Any(), resolver.Query{BenefitType: "breakfast"}).
					Return(dto.ResolveResponse{Value: 25, ValueType: "dollar", Source: resolver.SourceGlobal}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "no discriminator",
			query:    "?hotel_chain_id=" + chainID,
			mock:     func(_ *svcMocks.MockBenefitValuation) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed flag",
			query:    "?is_eqn=perhaps",
			mock:     func(_ *svcMocks.MockBenefitValuation) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, router := newRouter(t)
			tt.mock(svc)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/benefit-valuations/resolve"+tt.query, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestGetValuations(t *testing.T) {
	svc, router := newRouter(t)
	svc.EXPECT().GetAll(gomock.Any()).Return(dto.GetValuationsResponse{Valuations: []dto.ValuationResponse{{ID: "v1", IsEqn: true}}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/benefit-valuations", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"isEqn":true`)
}
