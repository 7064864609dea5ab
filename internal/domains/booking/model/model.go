package model

import (
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID                    = "id"
	FieldHotelChainID          = "hotel_chain_id"
	FieldHotelChainSubBrandID  = "hotel_chain_sub_brand_id"
	FieldPropertyName          = "property_name"
	FieldCheckIn               = "check_in"
	FieldCheckOut              = "check_out"
	FieldNumNights             = "num_nights"
	FieldPretaxCost            = "pretax_cost"
	FieldTaxAmount             = "tax_amount"
	FieldTotalCost             = "total_cost"
	FieldCreditCardID          = "credit_card_id"
	FieldCardRewardRate        = "card_reward_rate"
	FieldShoppingPortalID      = "shopping_portal_id"
	FieldPortalCashbackRate    = "portal_cashback_rate"
	FieldPortalCashbackOnTotal = "portal_cashback_on_total"
	FieldLoyaltyPointsEarned   = "loyalty_points_earned"
	FieldLoyaltyPointsManual   = "loyalty_points_manual"
	FieldPointsRedeemed        = "points_redeemed"
	FieldNotes                 = "notes"
	FieldBookingSource         = "booking_source"
	FieldOtaAgencyID           = "ota_agency_id"
)

const (
	SourceDirectWeb = "direct_web"
	SourceDirectApp = "direct_app"
	SourceOta       = "ota"
	SourceOther     = "other"
)

// Booking is one stay. LoyaltyPointsManual marks points typed in by the user;
// recalculation never touches those.
type Booking struct {
	ID                    string    `db:"id"`
	HotelChainID          string    `db:"hotel_chain_id"`
	HotelChainSubBrandID  *string   `db:"hotel_chain_sub_brand_id"`
	PropertyName          string    `db:"property_name"`
	CheckIn               time.Time `db:"check_in"`
	CheckOut              time.Time `db:"check_out"`
	NumNights             int       `db:"num_nights"`
	PretaxCost            float64   `db:"pretax_cost"`
	TaxAmount             float64   `db:"tax_amount"`
	TotalCost             float64   `db:"total_cost"`
	CreditCardID          *string   `db:"credit_card_id"`
	CardRewardRate        *float64  `db:"card_reward_rate"`
	ShoppingPortalID      *string   `db:"shopping_portal_id"`
	PortalCashbackRate    *float64  `db:"portal_cashback_rate"`
	PortalCashbackOnTotal bool      `db:"portal_cashback_on_total"`
	LoyaltyPointsEarned   *int      `db:"loyalty_points_earned"`
	LoyaltyPointsManual   bool      `db:"loyalty_points_manual"`
	PointsRedeemed        *int      `db:"points_redeemed"`
	Notes                 *string   `db:"notes"`
	BookingSource         *string   `db:"booking_source"`
	OtaAgencyID           *string   `db:"ota_agency_id"`
	model.Metadata
}

// Detail is a booking joined with the reward-program rows its net cost depends on.
type Detail struct {
	Booking
	HotelChainName        string   `db:"hotel_chain_name" table:"hotel_chains" column:"name"`
	ChainBasePointRate    *float64 `db:"chain_base_point_rate" table:"hotel_chains" column:"base_point_rate"`
	ChainPointTypeID      *string  `db:"chain_point_type_id" table:"hotel_chains" column:"point_type_id"`
	ChainCentsPerPoint    *float64 `db:"chain_cents_per_point" table:"chain_point_types" column:"cents_per_point"`
	SubBrandName          *string  `db:"sub_brand_name" table:"hotel_chain_sub_brands" column:"name"`
	SubBrandBasePointRate *float64 `db:"sub_brand_base_point_rate" table:"hotel_chain_sub_brands" column:"base_point_rate"`
	CreditCardName        *string  `db:"credit_card_name" table:"credit_cards" column:"name"`
	CardRewardType        *string  `db:"card_reward_type" table:"credit_cards" column:"reward_type"`
	CardCurrentRate       *float64 `db:"card_current_rate" table:"credit_cards" column:"reward_rate"`
	CardCentsPerPoint     *float64 `db:"card_cents_per_point" table:"card_point_types" column:"cents_per_point"`
	PortalName            *string  `db:"portal_name" table:"shopping_portals" column:"name"`
	PortalRewardType      *string  `db:"portal_reward_type" table:"shopping_portals" column:"reward_type"`
	PortalCentsPerPoint   *float64 `db:"portal_cents_per_point" table:"portal_point_types" column:"cents_per_point"`
	OtaAgencyName         *string  `db:"ota_agency_name" table:"ota_agencies" column:"name"`
}

func (Detail) GetJoinQuery() string {
	return `JOIN hotel_chains ON hotel_chains.id = bookings.hotel_chain_id
		LEFT JOIN point_types chain_point_types ON chain_point_types.id = hotel_chains.point_type_id
		LEFT JOIN hotel_chain_sub_brands ON hotel_chain_sub_brands.id = bookings.hotel_chain_sub_brand_id
		LEFT JOIN credit_cards ON credit_cards.id = bookings.credit_card_id
		LEFT JOIN point_types card_point_types ON card_point_types.id = credit_cards.point_type_id
		LEFT JOIN shopping_portals ON shopping_portals.id = bookings.shopping_portal_id
		LEFT JOIN point_types portal_point_types ON portal_point_types.id = shopping_portals.point_type_id
		LEFT JOIN ota_agencies ON ota_agencies.id = bookings.ota_agency_id`
}

// EffectiveCardRate prefers the rate captured on the booking over the card's current rate.
func (d Detail) EffectiveCardRate() float64 {
	if d.CardRewardRate != nil {
		return *d.CardRewardRate
	}

	if d.CardCurrentRate != nil {
		return *d.CardCurrentRate
	}

	return 0
}
