package netcost

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
)

// FromDetail builds the calculator input from a joined booking row.
func FromDetail(detail model.Detail, certTypes []string, applied []model.AppliedPromotion) Booking {
	booking := Booking{
		HotelChainID:       detail.HotelChainID,
		TotalCost:          detail.TotalCost,
		PretaxCost:         detail.PretaxCost,
		NumNights:          detail.NumNights,
		ChainCentsPerPoint: detail.ChainCentsPerPoint,
		Certificates:       certTypes,
		Promotions:         make([]Promotion, 0, len(applied)),
	}

	if detail.PointsRedeemed != nil {
		booking.PointsRedeemed = *detail.PointsRedeemed
	}

	if detail.LoyaltyPointsEarned != nil {
		booking.LoyaltyPointsEarned = *detail.LoyaltyPointsEarned
	}

	if detail.CreditCardID != nil {
		booking.Card = &Card{
			RewardType:    deref(detail.CardRewardType, RewardTypePoints),
			RewardRate:    detail.EffectiveCardRate(),
			CentsPerPoint: detail.CardCentsPerPoint,
		}
	}

	if detail.ShoppingPortalID != nil {
		portal := &Portal{
			RewardType:    deref(detail.PortalRewardType, RewardTypeCashback),
			OnTotal:       detail.PortalCashbackOnTotal,
			CentsPerPoint: detail.PortalCentsPerPoint,
		}

		if detail.PortalCashbackRate != nil {
			portal.Rate = *detail.PortalCashbackRate
		}

		booking.Portal = portal
	}

	for _, promotion := range applied {
		booking.Promotions = append(booking.Promotions, Promotion{
			ID:           promotion.PromotionID,
			Name:         promotion.PromotionName,
			AppliedValue: promotion.AppliedValue,
		})
	}

	return booking
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}

	return *s
}
