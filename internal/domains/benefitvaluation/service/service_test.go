package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	bvMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/service"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	promotionService "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service"
	promotionMocks "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/service/mocks"
	repoMocks "github.com/chris-catignani/hotel-tracker-sub001/shared/repository/mocks"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func ptr[T any](v T) *T { return &v }

func TestBenefitValuationService_SaveAll(t *testing.T) {
	req := dto.SaveValuationsRequest{Valuations: []dto.ValuationRequest{
		{IsEqn: true, Value: ptr(10.0)},
		{HotelChainID: ptr("7f1e1d9e-2f40-4c1f-9d3a-0a4c3e1b2c3d"), BenefitType: ptr("free_breakfast"), ValueType: model.ValueTypePoints},
	}}

	tests := []struct {
		name       string
		setupMock  func(repo *bvMocks.MockBenefitValuation, promotions *promotionMocks.MockPromotion)
		wantErr    bool
		wantReport promotionDto.Report
	}{
		{
			name: "saves then reevaluates every booking",
			setupMock: func(repo *bvMocks.MockBenefitValuation, promotions *promotionMocks.MockPromotion) {
				repo.EXPECT().
					UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, valuations []model.BenefitValuation) error {
						assert.Len(t, valuations, 2)
						assert.Equal(t, model.ValueTypeDollar, valuations[0].ValueType)
						assert.Nil(t, valuations[1].Value)

						return nil
					})

				promotions.EXPECT().
					ReevaluateAll(gomock.Any()).
					Return(promotionDto.Report{Processed: 4}, nil)
			},
			wantReport: promotionDto.Report{Processed: 4},
		},
		{
			name: "partial reevaluation is still a successful save",
			setupMock: func(repo *bvMocks.MockBenefitValuation, promotions *promotionMocks.MockPromotion) {
				repo.EXPECT().
					UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				promotions.EXPECT().
					ReevaluateAll(gomock.Any()).
					Return(promotionDto.Report{Processed: 1, Failures: []promotionDto.Failure{{BookingID: "b2", Error: "boom"}}},
						promotionService.ErrPartialReevaluation)
			},
			wantReport: promotionDto.Report{Processed: 1, Failures: []promotionDto.Failure{{BookingID: "b2", Error: "boom"}}},
		},
		{
			name: "upsert failure skips reevaluation",
			setupMock: func(repo *bvMocks.MockBenefitValuation, _ *promotionMocks.MockPromotion) {
				repo.EXPECT().
					UpsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)

			repo := bvMocks.NewMockBenefitValuation(ctrl)
			promotions := promotionMocks.NewMockPromotion(ctrl)
			svc := service.New(repo, promotions, repoMocks.NewTransactor(), mocks.NewOtel())

			tt.setupMock(repo, promotions)

			res, err := svc.SaveAll(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 2, res.Saved)
			assert.Equal(t, tt.wantReport, res.Reevaluation)
		})
	}
}

func TestBenefitValuationService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)

	repo := bvMocks.NewMockBenefitValuation(ctrl)
	svc := service.New(repo, promotionMocks.NewMockPromotion(ctrl), repoMocks.NewTransactor(), mocks.NewOtel())

	repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.BenefitValuation{
			{IsEqn: true, Value: ptr(10.0), ValueType: model.ValueTypeDollar},
			{HotelChainID: ptr("hyatt"), IsEqn: true, Value: ptr(20.0), ValueType: model.ValueTypeDollar},
		}, nil).
		Times(2)

	hyatt, err := svc.Resolve(context.Background(), resolver.Query{HotelChainID: "hyatt", IsEqn: true})
	require.NoError(t, err)

	marriott, err := svc.Resolve(context.Background(), resolver.Query{HotelChainID: "marriott", IsEqn: true})
	require.NoError(t, err)

	assert.Equal(t, dto.ResolveResponse{Value: 20, ValueType: model.ValueTypeDollar, Source: resolver.SourceChain}, hyatt)
	assert.Equal(t, dto.ResolveResponse{Value: 10, ValueType: model.ValueTypeDollar, Source: resolver.SourceGlobal}, marriott)
}

func TestSaveValuationsRequest_Check(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.ValuationRequest
		wantErr bool
	}{
		{name: "eqn", req: dto.ValuationRequest{IsEqn: true}},
		{name: "certificate", req: dto.ValuationRequest{CertType: ptr("fna_35k")}},
		{name: "no discriminator", req: dto.ValuationRequest{}, wantErr: true},
		{name: "two discriminators", req: dto.ValuationRequest{IsEqn: true, BenefitType: ptr("late_checkout")}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.SaveValuationsRequest{Valuations: []dto.ValuationRequest{tt.req}}

			err := req.Check()

			if tt.wantErr {
				assert.ErrorContains(t, err, "valuations[0]")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
