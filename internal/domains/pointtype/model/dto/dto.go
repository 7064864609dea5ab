package dto

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/pointtype/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

type CreatePointTypeRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	Category      string   `json:"category" validate:"required,oneof=hotel airline transferable"`
	CentsPerPoint *float64 `json:"centsPerPoint" validate:"required,gte=0"`
}

func (c *CreatePointTypeRequest) ToModel(user string) model.PointType {
	now := timezone.Now()

	return model.PointType{
		ID:            uuid.NewString(),
		Name:          c.Name,
		Category:      c.Category,
		CentsPerPoint: *c.CentsPerPoint,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePointTypeRequest struct {
	Name          string   `db:"name" json:"name" validate:"omitempty,max=255"`
	Category      string   `db:"category" json:"category" validate:"omitempty,oneof=hotel airline transferable"`
	CentsPerPoint *float64 `db:"cents_per_point" json:"centsPerPoint" validate:"omitempty,gte=0"`
}

type PointTypeResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	CentsPerPoint float64 `json:"centsPerPoint"`
	gDto.Metadata
}

func (r *PointTypeResponse) FromModel(model model.PointType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Category = model.Category
	r.CentsPerPoint = model.CentsPerPoint
	r.Metadata.FromModel(model.Metadata)
}

type GetPointTypesResponse struct {
	PointTypes []PointTypeResponse `json:"pointTypes"`
	TotalPage  int                 `json:"totalPage"`
	TotalData  int                 `json:"totalData"`
}

func (r *GetPointTypesResponse) FromModels(models []model.PointType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.PointTypes = make([]PointTypeResponse, len(models))
	for i, mod := range models {
		r.PointTypes[i].FromModel(mod)
	}
}
