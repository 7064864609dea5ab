package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "benefit_valuations"
	EntityName = "benefit valuation"

	FieldID           = "id"
	FieldHotelChainID = "hotel_chain_id"
	FieldIsEqn        = "is_eqn"
	FieldCertType     = "cert_type"
	FieldBenefitType  = "benefit_type"
	FieldValue        = "value"
	FieldValueType    = "value_type"
)

const (
	ValueTypeDollar = "dollar"
	ValueTypePoints = "points"
)

// BenefitValuation prices an EQN, a certificate type or a named benefit.
// A nil HotelChainID is the global default. A nil Value marks the row as
// deleted: it is kept so a chain can fall back to the global row.
type BenefitValuation struct {
	ID           string   `db:"id"`
	HotelChainID *string  `db:"hotel_chain_id"`
	IsEqn        bool     `db:"is_eqn"`
	CertType     *string  `db:"cert_type"`
	BenefitType  *string  `db:"benefit_type"`
	Value        *float64 `db:"value"`
	ValueType    string   `db:"value_type"`
	model.Metadata
}
