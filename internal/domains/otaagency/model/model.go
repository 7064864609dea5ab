package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "ota_agencies"
	EntityName = "ota agency"

	FieldID   = "id"
	FieldName = "name"
)

type OtaAgency struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	model.Metadata
}
