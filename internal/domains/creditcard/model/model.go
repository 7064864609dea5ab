package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "credit_cards"
	EntityName = "credit card"

	FieldID          = "id"
	FieldName        = "name"
	FieldRewardType  = "reward_type"
	FieldRewardRate  = "reward_rate"
	FieldPointTypeID = "point_type_id"
)

const (
	RewardTypeCashback = "cashback"
	RewardTypePoints   = "points"
)

// CreditCard earns RewardRate points (or cashback fraction) per dollar charged.
type CreditCard struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	RewardType  string  `db:"reward_type"`
	RewardRate  float64 `db:"reward_rate"`
	PointTypeID *string `db:"point_type_id"`
	model.Metadata
}
