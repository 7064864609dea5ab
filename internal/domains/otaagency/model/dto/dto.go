package dto

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/otaagency/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

type CreateOtaAgencyRequest struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (c *CreateOtaAgencyRequest) ToModel(user string) model.OtaAgency {
	now := timezone.Now()

	return model.OtaAgency{
		ID:   uuid.NewString(),
		Name: c.Name,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateOtaAgencyRequest struct {
	Name string `db:"name" json:"name" validate:"required,max=255"`
}

type OtaAgencyResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	gDto.Metadata
}

func (r *OtaAgencyResponse) FromModel(model model.OtaAgency) {
	r.ID = model.ID
	r.Name = model.Name
	r.Metadata.FromModel(model.Metadata)
}

type GetOtaAgenciesResponse struct {
	OtaAgencies []OtaAgencyResponse `json:"otaAgencies"`
	TotalPage   int                 `json:"totalPage"`
	TotalData   int                 `json:"totalData"`
}

func (r *GetOtaAgenciesResponse) FromModels(models []model.OtaAgency, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.OtaAgencies = make([]OtaAgencyResponse, len(models))
	for i, mod := range models {
		r.OtaAgencies[i].FromModel(mod)
	}
}
