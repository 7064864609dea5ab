package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "hotel_chains"
	EntityName = "hotel chain"

	FieldID             = "id"
	FieldName           = "name"
	FieldLoyaltyProgram = "loyalty_program"
	FieldBasePointRate  = "base_point_rate"
	FieldPointTypeID    = "point_type_id"
)

const (
	SubBrandTableName  = "hotel_chain_sub_brands"
	SubBrandEntityName = "sub-brand"

	FieldHotelChainID = "hotel_chain_id"
)

const (
	EliteStatusTableName  = "elite_statuses"
	EliteStatusEntityName = "elite status"

	FieldPointRate = "point_rate"
	FieldRank      = "rank"
)

// HotelChain rates are points earned per pretax dollar.
type HotelChain struct {
	ID             string   `db:"id"`
	Name           string   `db:"name"`
	LoyaltyProgram string   `db:"loyalty_program"`
	BasePointRate  *float64 `db:"base_point_rate"`
	PointTypeID    *string  `db:"point_type_id"`
	model.Metadata
}

// SubBrand overrides the chain base rate when BasePointRate is set.
type SubBrand struct {
	ID            string   `db:"id"`
	HotelChainID  string   `db:"hotel_chain_id"`
	Name          string   `db:"name"`
	BasePointRate *float64 `db:"base_point_rate"`
	model.Metadata
}

// EliteStatus is a tier whose PointRate stacks on top of the base rate.
type EliteStatus struct {
	ID           string  `db:"id"`
	HotelChainID string  `db:"hotel_chain_id"`
	Name         string  `db:"name"`
	PointRate    float64 `db:"point_rate"`
	Rank         int     `db:"rank"`
	model.Metadata
}

// BaseRate returns the sub-brand rate when it overrides the chain, else the chain rate.
func BaseRate(chain HotelChain, subBrand *SubBrand) float64 {
	if subBrand != nil && subBrand.BasePointRate != nil {
		return *subBrand.BasePointRate
	}

	if chain.BasePointRate != nil {
		return *chain.BasePointRate
	}

	return 0
}
