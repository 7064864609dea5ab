package model

import (
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/model"
)

const (
	TableName  = "promotions"
	EntityName = "promotion"

	FieldID                   = "id"
	FieldName                 = "name"
	FieldType                 = "type"
	FieldValueType            = "value_type"
	FieldValue                = "value"
	FieldHotelChainID         = "hotel_chain_id"
	FieldHotelChainSubBrandID = "hotel_chain_sub_brand_id"
	FieldCreditCardID         = "credit_card_id"
	FieldShoppingPortalID     = "shopping_portal_id"
	FieldMinSpend             = "min_spend"
	FieldStartDate            = "start_date"
	FieldEndDate              = "end_date"
	FieldIsActive             = "is_active"
	FieldBonusEqns            = "bonus_eqns"
	FieldBenefitType          = "benefit_type"
)

const (
	TypeCreditCard = "credit_card"
	TypePortal     = "portal"
	TypeLoyalty    = "loyalty"
)

const (
	ValueTypeFixed            = "fixed"
	ValueTypePercentage       = "percentage"
	ValueTypePointsMultiplier = "points_multiplier"
)

// Promotion applies to bookings inside its scope and date window. Any scope
// field left nil does not restrict matching. BonusEqns and BenefitType add
// valuation-backed extras on top of Value.
type Promotion struct {
	ID                   string     `db:"id"`
	Name                 string     `db:"name"`
	Type                 string     `db:"type"`
	ValueType            string     `db:"value_type"`
	Value                float64    `db:"value"`
	HotelChainID         *string    `db:"hotel_chain_id"`
	HotelChainSubBrandID *string    `db:"hotel_chain_sub_brand_id"`
	CreditCardID         *string    `db:"credit_card_id"`
	ShoppingPortalID     *string    `db:"shopping_portal_id"`
	MinSpend             *float64   `db:"min_spend"`
	StartDate            *time.Time `db:"start_date"`
	EndDate              *time.Time `db:"end_date"`
	IsActive             bool       `db:"is_active"`
	BonusEqns            int        `db:"bonus_eqns"`
	BenefitType          *string    `db:"benefit_type"`
	model.Metadata
}
