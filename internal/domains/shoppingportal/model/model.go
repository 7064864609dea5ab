package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "shopping_portals"
	EntityName = "shopping portal"

	FieldID          = "id"
	FieldName        = "name"
	FieldRewardType  = "reward_type"
	FieldPointTypeID = "point_type_id"
)

const (
	RewardTypeCashback = "cashback"
	RewardTypePoints   = "points"
)

type ShoppingPortal struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	RewardType  string  `db:"reward_type"`
	PointTypeID *string `db:"point_type_id"`
	model.Metadata
}
