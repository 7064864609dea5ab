package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "point_types"
	EntityName = "point type"

	FieldID            = "id"
	FieldName          = "name"
	FieldCategory      = "category"
	FieldCentsPerPoint = "cents_per_point"
)

const (
	CategoryHotel        = "hotel"
	CategoryAirline      = "airline"
	CategoryTransferable = "transferable"
)

// PointType is a loyalty currency. CentsPerPoint is the dollar value of one
// point, despite the name, and is never negative.
type PointType struct {
	ID            string  `db:"id"`
	Name          string  `db:"name"`
	Category      string  `db:"category"`
	CentsPerPoint float64 `db:"cents_per_point"`
	model.Metadata
}
