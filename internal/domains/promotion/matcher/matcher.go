// Package matcher decides which promotions apply to a booking and what each is
// worth. It performs no IO; the promotion service feeds it rows and persists
// the resulting plan.
package matcher

import (
	"math"
	"time"

	bvModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/netcost"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model"
)

type Match struct {
	PromotionID string
	Value       float64
}

// Eligible reports whether the promotion applies to the booking: active, in
// scope, inside its date window and above its minimum spend.
func Eligible(promotion model.Promotion, booking bookingModel.Detail) bool {
	if !promotion.IsActive {
		return false
	}

	switch promotion.Type {
	case model.TypeCreditCard:
		if booking.CreditCardID == nil {
			return false
		}
	case model.TypePortal:
		if booking.ShoppingPortalID == nil {
			return false
		}
	}

	if !scoped(promotion.HotelChainID, &booking.HotelChainID) ||
		!scoped(promotion.HotelChainSubBrandID, booking.HotelChainSubBrandID) ||
		!scoped(promotion.CreditCardID, booking.CreditCardID) ||
		!scoped(promotion.ShoppingPortalID, booking.ShoppingPortalID) {
		return false
	}

	checkIn := dateOnly(booking.CheckIn)

	if promotion.StartDate != nil && checkIn.Before(dateOnly(*promotion.StartDate)) {
		return false
	}

	if promotion.EndDate != nil && checkIn.After(dateOnly(*promotion.EndDate)) {
		return false
	}

	if promotion.MinSpend != nil && booking.TotalCost < *promotion.MinSpend {
		return false
	}

	return true
}

// Value is the dollar contribution of an eligible promotion.
func Value(promotion model.Promotion, booking bookingModel.Detail, valuations []bvModel.BenefitValuation) float64 {
	var value float64

	switch promotion.ValueType {
	case model.ValueTypeFixed:
		value = promotion.Value
	case model.ValueTypePercentage:
		value = promotion.Value / 100 * booking.TotalCost //nolint:mnd
	case model.ValueTypePointsMultiplier:
		value = multiplierValue(promotion, booking)
	}

	if promotion.BonusEqns > 0 {
		eqn := resolver.Resolve(valuations, resolver.Query{HotelChainID: booking.HotelChainID, IsEqn: true})
		value += float64(promotion.BonusEqns) * eqn.Dollars(booking.ChainCentsPerPoint)
	}

	if promotion.BenefitType != nil && *promotion.BenefitType != "" {
		benefit := resolver.Resolve(valuations, resolver.Query{HotelChainID: booking.HotelChainID, BenefitType: *promotion.BenefitType})
		value += benefit.Dollars(booking.ChainCentsPerPoint)
	}

	return roundCents(value)
}

// multiplierValue prices the extra points a multiplier earns on top of the
// base earn of the program the promotion belongs to.
func multiplierValue(promotion model.Promotion, booking bookingModel.Detail) float64 {
	if promotion.Value <= 1 {
		return 0
	}

	snapshot := netcost.FromDetail(booking, nil, nil)
	extra := promotion.Value - 1

	switch promotion.Type {
	case model.TypeCreditCard:
		return netcost.CardReward(snapshot.TotalCost, snapshot.Card) * extra
	case model.TypePortal:
		return netcost.PortalCashback(snapshot.TotalCost, snapshot.PretaxCost, snapshot.Portal) * extra
	default:
		return netcost.PointsValue(float64(snapshot.LoyaltyPointsEarned), snapshot.ChainCentsPerPoint) * extra
	}
}

// MatchAll returns every eligible promotion with its value, in input order.
func MatchAll(promotions []model.Promotion, booking bookingModel.Detail, valuations []bvModel.BenefitValuation) []Match {
	matches := []Match{}

	for _, promotion := range promotions {
		if !Eligible(promotion, booking) {
			continue
		}

		matches = append(matches, Match{PromotionID: promotion.ID, Value: Value(promotion, booking, valuations)})
	}

	return matches
}

func scoped(promotionField, bookingField *string) bool {
	if promotionField == nil {
		return true
	}

	return bookingField != nil && *bookingField == *promotionField
}

func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}
