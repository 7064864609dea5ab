package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	BookingPromotionTableName  = "booking_promotions"
	BookingPromotionEntityName = "booking promotion"

	FieldPromotionID  = "promotion_id"
	FieldAppliedValue = "applied_value"
	FieldStatus       = "status"
)

// Association states. The matcher creates auto_applied rows, the user may move
// them to verified, and manual rows are created by the user directly.
const (
	StatusAutoApplied = "auto_applied"
	StatusVerified    = "verified"
	StatusManual      = "manual"
)

type BookingPromotion struct {
	ID           string  `db:"id"`
	BookingID    string  `db:"booking_id"`
	PromotionID  string  `db:"promotion_id"`
	AppliedValue float64 `db:"applied_value"`
	Status       string  `db:"status"`
	model.Metadata
}

func (b BookingPromotion) AutoApplied() bool {
	return b.Status == StatusAutoApplied || b.Status == StatusVerified
}

func (b BookingPromotion) Verified() bool {
	return b.Status == StatusVerified || b.Status == StatusManual
}

// AppliedPromotion is an association joined with its promotion for display.
type AppliedPromotion struct {
	BookingPromotion
	PromotionName string `db:"promotion_name" table:"promotions" column:"name"`
	PromotionType string `db:"promotion_type" table:"promotions" column:"type"`
}

func (AppliedPromotion) GetJoinQuery() string {
	return "JOIN promotions ON promotions.id = booking_promotions.promotion_id"
}
