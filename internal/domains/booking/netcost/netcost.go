// Package netcost derives the cash-equivalent cost of a booking after rewards.
//
// Calculate is pure: it reads only its arguments, so the value stored by the
// promotion matcher and the value rendered for a booking always agree.
package netcost

import (
	"fmt"
	"math"

	bvModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
)

const (
	RewardTypeCashback = "cashback"
	RewardTypePoints   = "points"
)

const (
	KeyCashCost       = "cash_cost"
	KeyPointsRedeemed = "points_redeemed"
	KeyCertificates   = "certificates"
	KeyPortalCashback = "portal_cashback"
	KeyCardReward     = "card_reward"
	KeyLoyaltyPoints  = "loyalty_points"
	KeyPromotions     = "promotions"
)

// Card is the credit card used to pay. Rate is points per dollar, or the
// cashback fraction for cashback cards.
type Card struct {
	RewardType    string
	RewardRate    float64
	CentsPerPoint *float64
}

// Portal is the shopping portal the stay was booked through.
type Portal struct {
	RewardType    string
	Rate          float64
	OnTotal       bool
	CentsPerPoint *float64
}

type Promotion struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	AppliedValue float64 `json:"appliedValue"`
}

// Booking is the snapshot a net cost is computed from. Nil point values are
// read as zero so a cost can always be produced.
type Booking struct {
	HotelChainID        string
	TotalCost           float64
	PretaxCost          float64
	NumNights           int
	PointsRedeemed      int
	LoyaltyPointsEarned int
	ChainCentsPerPoint  *float64
	Card                *Card
	Portal              *Portal
	Certificates        []string
	Promotions          []Promotion
}

type Component struct {
	Key         string  `json:"key"`
	Label       string  `json:"label"`
	Formula     string  `json:"formula"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// Breakdown always carries every component, zero amounts included.
type Breakdown struct {
	CashCost            float64     `json:"cashCost"`
	PointsRedeemedValue float64     `json:"pointsRedeemedValue"`
	CertsValue          float64     `json:"certsValue"`
	PortalCashback      float64     `json:"portalCashback"`
	CardReward          float64     `json:"cardReward"`
	LoyaltyPointsValue  float64     `json:"loyaltyPointsValue"`
	PromoSavings        float64     `json:"promoSavings"`
	NetCost             float64     `json:"netCost"`
	NetCostPerNight     float64     `json:"netCostPerNight"`
	Components          []Component `json:"components"`
	Promotions          []Promotion `json:"promotions"`
}

type Result struct {
	NetCost   float64   `json:"netCost"`
	Breakdown Breakdown `json:"breakdown"`
}

// PointsValue prices points in dollars. A missing point value prices them at zero.
func PointsValue(points float64, dollarsPerPoint *float64) float64 {
	if dollarsPerPoint == nil {
		return 0
	}

	return points * *dollarsPerPoint
}

// PortalBasis is the amount portal cashback is earned on.
func PortalBasis(totalCost, pretaxCost float64, portal Portal) float64 {
	if portal.OnTotal {
		return totalCost
	}

	return pretaxCost
}

func PortalCashback(totalCost, pretaxCost float64, portal *Portal) float64 {
	if portal == nil {
		return 0
	}

	earned := portal.Rate * PortalBasis(totalCost, pretaxCost, *portal)
	if portal.RewardType == RewardTypePoints {
		return PointsValue(earned, portal.CentsPerPoint)
	}

	return earned
}

func CardReward(totalCost float64, card *Card) float64 {
	if card == nil {
		return 0
	}

	if card.RewardType == RewardTypeCashback {
		return totalCost * card.RewardRate
	}

	return PointsValue(totalCost*card.RewardRate, card.CentsPerPoint)
}

// Calculate returns the net cost of a booking and the components behind it.
// Redeemed points and certificates are reported but do not reduce the cost.
func Calculate(booking Booking, valuations []bvModel.BenefitValuation) Result {
	breakdown := Breakdown{
		CashCost:   booking.TotalCost,
		Promotions: []Promotion{},
	}

	breakdown.PointsRedeemedValue = PointsValue(float64(booking.PointsRedeemed), booking.ChainCentsPerPoint)

	for _, certType := range booking.Certificates {
		resolution := resolver.Resolve(valuations, resolver.Query{HotelChainID: booking.HotelChainID, CertType: certType})
		breakdown.CertsValue += resolution.Dollars(booking.ChainCentsPerPoint)
	}

	breakdown.PortalCashback = PortalCashback(booking.TotalCost, booking.PretaxCost, booking.Portal)
	breakdown.CardReward = CardReward(booking.TotalCost, booking.Card)
	breakdown.LoyaltyPointsValue = PointsValue(float64(booking.LoyaltyPointsEarned), booking.ChainCentsPerPoint)

	for _, promotion := range booking.Promotions {
		breakdown.PromoSavings += promotion.AppliedValue
		breakdown.Promotions = append(breakdown.Promotions, promotion)
	}

	breakdown.NetCost = booking.TotalCost -
		breakdown.PortalCashback -
		breakdown.CardReward -
		breakdown.LoyaltyPointsValue -
		breakdown.PromoSavings

	if booking.NumNights > 0 {
		breakdown.NetCostPerNight = roundCents(breakdown.NetCost / float64(booking.NumNights))
	}

	breakdown.Components = components(booking, breakdown)

	return Result{NetCost: breakdown.NetCost, Breakdown: breakdown}
}

func components(booking Booking, breakdown Breakdown) []Component {
	return []Component{
		{
			Key:         KeyCashCost,
			Label:       "Cash cost",
			Formula:     money(booking.TotalCost),
			Description: "Total charged including taxes and fees",
			Amount:      breakdown.CashCost,
		},
		{
			Key:         KeyPointsRedeemed,
			Label:       "Points redeemed",
			Formula:     fmt.Sprintf("%d pts × %s", booking.PointsRedeemed, perPoint(booking.ChainCentsPerPoint)),
			Description: "Value of points used to pay, shown for reference",
			Amount:      breakdown.PointsRedeemedValue,
		},
		{
			Key:         KeyCertificates,
			Label:       "Certificates",
			Formula:     fmt.Sprintf("%d certificate(s) = %s", len(booking.Certificates), money(breakdown.CertsValue)),
			Description: "Value of free-night certificates redeemed, shown for reference",
			Amount:      breakdown.CertsValue,
		},
		{
			Key:         KeyPortalCashback,
			Label:       "Portal cashback",
			Formula:     portalFormula(booking),
			Description: "Earned through the shopping portal",
			Amount:      breakdown.PortalCashback,
		},
		{
			Key:         KeyCardReward,
			Label:       "Card reward",
			Formula:     cardFormula(booking),
			Description: "Earned on the credit card used to pay",
			Amount:      breakdown.CardReward,
		},
		{
			Key:         KeyLoyaltyPoints,
			Label:       "Loyalty points",
			Formula:     fmt.Sprintf("%d pts × %s", booking.LoyaltyPointsEarned, perPoint(booking.ChainCentsPerPoint)),
			Description: "Hotel loyalty points earned on the stay",
			Amount:      breakdown.LoyaltyPointsValue,
		},
		{
			Key:         KeyPromotions,
			Label:       "Promotions",
			Formula:     fmt.Sprintf("%d promotion(s) = %s", len(booking.Promotions), money(breakdown.PromoSavings)),
			Description: "Sum of applied promotion values",
			Amount:      breakdown.PromoSavings,
		},
	}
}

func portalFormula(booking Booking) string {
	portal := booking.Portal
	if portal == nil {
		return "no portal"
	}

	basis := PortalBasis(booking.TotalCost, booking.PretaxCost, *portal)
	if portal.RewardType == RewardTypePoints {
		return fmt.Sprintf("%s × %g pts/$ × %s", money(basis), portal.Rate, perPoint(portal.CentsPerPoint))
	}

	return fmt.Sprintf("%s × %g%%", money(basis), portal.Rate*100) //nolint:mnd
}

func cardFormula(booking Booking) string {
	card := booking.Card
	if card == nil {
		return "no card"
	}

	if card.RewardType == RewardTypeCashback {
		return fmt.Sprintf("%s × %g%%", money(booking.TotalCost), card.RewardRate*100) //nolint:mnd
	}

	return fmt.Sprintf("%s × %gx × %s", money(booking.TotalCost), card.RewardRate, perPoint(card.CentsPerPoint))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func perPoint(dollarsPerPoint *float64) string {
	if dollarsPerPoint == nil {
		return "$0/pt"
	}

	return fmt.Sprintf("$%g/pt", *dollarsPerPoint)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:mnd
}
