package netcost_test

import (
	"testing"

	bvModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/netcost"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func scenario() netcost.Booking {
	return netcost.Booking{
		HotelChainID:        "hyatt",
		TotalCost:           900,
		PretaxCost:          750,
		NumNights:           3,
		LoyaltyPointsEarned: 7500,
		ChainCentsPerPoint:  ptr(0.015),
		Card: &netcost.Card{
			RewardType:    netcost.RewardTypePoints,
			RewardRate:    3,
			CentsPerPoint: ptr(0.02),
		},
		Portal: &netcost.Portal{
			RewardType: netcost.RewardTypeCashback,
			Rate:       0.05,
			OnTotal:    true,
		},
	}
}

func TestCalculate_Scenario(t *testing.T) {
	result := netcost.Calculate(scenario(), nil)

	assert.InDelta(t, 45.0, result.Breakdown.PortalCashback, 1e-9)
	assert.InDelta(t, 54.0, result.Breakdown.CardReward, 1e-9)
	assert.InDelta(t, 112.5, result.Breakdown.LoyaltyPointsValue, 1e-9)
	assert.InDelta(t, 0.0, result.Breakdown.PromoSavings, 1e-9)
	assert.InDelta(t, 688.5, result.NetCost, 1e-9)
	assert.InDelta(t, 229.50, result.Breakdown.NetCostPerNight, 1e-9)
	assert.Equal(t, result.NetCost, result.Breakdown.NetCost)
}

func TestCalculate_IsDeterministic(t *testing.T) {
	booking := scenario()
	booking.Certificates = []string{"cat_1_4"}
	booking.Promotions = []netcost.Promotion{{ID: "p1", Name: "Bonus Journeys", AppliedValue: 40}}

	valuations := []bvModel.BenefitValuation{
		{CertType: ptr("cat_1_4"), Value: ptr(200.0), ValueType: bvModel.ValueTypeDollar},
	}

	first := netcost.Calculate(booking, valuations)
	second := netcost.Calculate(booking, valuations)

	assert.Equal(t, first, second)
	assert.Len(t, booking.Promotions, 1, "input must not be mutated")
}

func TestCalculate_AlwaysReturnsEveryComponent(t *testing.T) {
	result := netcost.Calculate(netcost.Booking{TotalCost: 100, PretaxCost: 90, NumNights: 1}, nil)

	keys := make([]string, 0, len(result.Breakdown.Components))
	for _, component := range result.Breakdown.Components {
		keys = append(keys, component.Key)

		assert.NotEmpty(t, component.Label)
		assert.NotEmpty(t, component.Formula)
		assert.NotEmpty(t, component.Description)
	}

	assert.Equal(t, []string{
		netcost.KeyCashCost,
		netcost.KeyPointsRedeemed,
		netcost.KeyCertificates,
		netcost.KeyPortalCashback,
		netcost.KeyCardReward,
		netcost.KeyLoyaltyPoints,
		netcost.KeyPromotions,
	}, keys)
	assert.InDelta(t, 100.0, result.NetCost, 1e-9)
}

func TestCalculate_RedeemedValueIsCostNeutral(t *testing.T) {
	booking := scenario()
	booking.PointsRedeemed = 25000
	booking.Certificates = []string{"cat_1_4", "cat_1_4"}

	valuations := []bvModel.BenefitValuation{
		{HotelChainID: ptr("hyatt"), CertType: ptr("cat_1_4"), Value: ptr(15000.0), ValueType: bvModel.ValueTypePoints},
	}

	result := netcost.Calculate(booking, valuations)

	assert.InDelta(t, 375.0, result.Breakdown.PointsRedeemedValue, 1e-9)
	assert.InDelta(t, 450.0, result.Breakdown.CertsValue, 1e-9)
	assert.InDelta(t, 688.5, result.NetCost, 1e-9)
}

func TestCalculate_MissingPointTypeDegradesToZero(t *testing.T) {
	booking := scenario()
	booking.ChainCentsPerPoint = nil
	booking.Card.CentsPerPoint = nil

	result := netcost.Calculate(booking, nil)

	assert.Equal(t, 0.0, result.Breakdown.CardReward)
	assert.Equal(t, 0.0, result.Breakdown.LoyaltyPointsValue)
	assert.InDelta(t, 855.0, result.NetCost, 1e-9)
}

func TestPortalCashback(t *testing.T) {
	tests := []struct {
		name   string
		portal *netcost.Portal
		want   float64
	}{
		{name: "no portal", portal: nil, want: 0},
		{name: "cashback on pretax", portal: &netcost.Portal{RewardType: netcost.RewardTypeCashback, Rate: 0.1}, want: 75},
		{name: "cashback on total", portal: &netcost.Portal{RewardType: netcost.RewardTypeCashback, Rate: 0.1, OnTotal: true}, want: 90},
		{name: "points on pretax", portal: &netcost.Portal{RewardType: netcost.RewardTypePoints, Rate: 10, CentsPerPoint: ptr(0.01)}, want: 75},
		{name: "points without point type", portal: &netcost.Portal{RewardType: netcost.RewardTypePoints, Rate: 10}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, netcost.PortalCashback(900, 750, tt.portal), 1e-9)
		})
	}
}

func TestCardReward_Cashback(t *testing.T) {
	card := &netcost.Card{RewardType: netcost.RewardTypeCashback, RewardRate: 0.02}

	assert.InDelta(t, 18.0, netcost.CardReward(900, card), 1e-9)
	assert.Equal(t, 0.0, netcost.CardReward(900, nil))
}

func TestFromDetail(t *testing.T) {
	detail := model.Detail{
		Booking: model.Booking{
			ID:                    "b1",
			HotelChainID:          "hyatt",
			TotalCost:             900,
			PretaxCost:            750,
			NumNights:             3,
			CreditCardID:          ptr("csr"),
			ShoppingPortalID:      ptr("rakuten"),
			PortalCashbackRate:    ptr(0.05),
			PortalCashbackOnTotal: true,
			LoyaltyPointsEarned:   ptr(7500),
		},
		ChainCentsPerPoint: ptr(0.015),
		CardRewardType:     ptr(netcost.RewardTypePoints),
		CardCurrentRate:    ptr(3.0),
		CardCentsPerPoint:  ptr(0.02),
		PortalRewardType:   ptr(netcost.RewardTypeCashback),
	}

	applied := []model.AppliedPromotion{
		{BookingPromotion: model.BookingPromotion{PromotionID: "p1", AppliedValue: 25}, PromotionName: "Stay bonus"},
	}

	snapshot := netcost.FromDetail(detail, []string{"cat_1_4"}, applied)

	require.NotNil(t, snapshot.Card)
	require.NotNil(t, snapshot.Portal)
	assert.Equal(t, 3.0, snapshot.Card.RewardRate)
	assert.Equal(t, 0.05, snapshot.Portal.Rate)
	assert.Equal(t, 7500, snapshot.LoyaltyPointsEarned)
	assert.Equal(t, []netcost.Promotion{{ID: "p1", Name: "Stay bonus", AppliedValue: 25}}, snapshot.Promotions)

	result := netcost.Calculate(snapshot, nil)
	assert.InDelta(t, 663.5, result.NetCost, 1e-9)
}

func TestFromDetail_PrefersSnapshotCardRate(t *testing.T) {
	detail := model.Detail{
		Booking: model.Booking{
			CreditCardID:   ptr("csr"),
			CardRewardRate: ptr(4.0),
		},
		CardCurrentRate: ptr(3.0),
	}

	snapshot := netcost.FromDetail(detail, nil, nil)

	assert.Equal(t, 4.0, snapshot.Card.RewardRate)
}
