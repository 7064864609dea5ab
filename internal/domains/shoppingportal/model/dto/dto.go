package dto

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/shoppingportal/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

// Cashback rates live on the booking, portals only say what kind of reward they pay.
type CreateShoppingPortalRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	RewardType  string  `json:"rewardType" validate:"required,oneof=cashback points"`
	PointTypeID *string `json:"pointTypeId" validate:"omitempty,uuid"`
}

func (c *CreateShoppingPortalRequest) ToModel(user string) model.ShoppingPortal {
	now := timezone.Now()

	return model.ShoppingPortal{
		ID:          uuid.NewString(),
		Name:        c.Name,
		RewardType:  c.RewardType,
		PointTypeID: c.PointTypeID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateShoppingPortalRequest struct {
	Name        string  `db:"name" json:"name" validate:"omitempty,max=255"`
	RewardType  string  `db:"reward_type" json:"rewardType" validate:"omitempty,oneof=cashback points"`
	PointTypeID *string `db:"point_type_id" json:"pointTypeId" validate:"omitempty,uuid"`
}

type ShoppingPortalResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RewardType  string  `json:"rewardType"`
	PointTypeID *string `json:"pointTypeId"`
	gDto.Metadata
}

func (r *ShoppingPortalResponse) FromModel(model model.ShoppingPortal) {
	r.ID = model.ID
	r.Name = model.Name
	r.RewardType = model.RewardType
	r.PointTypeID = model.PointTypeID
	r.Metadata.FromModel(model.Metadata)
}

type GetShoppingPortalsResponse struct {
	ShoppingPortals []ShoppingPortalResponse `json:"shoppingPortals"`
	TotalPage       int                      `json:"totalPage"`
	TotalData       int                      `json:"totalData"`
}

func (r *GetShoppingPortalsResponse) FromModels(models []model.ShoppingPortal, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.ShoppingPortals = make([]ShoppingPortalResponse, len(models))
	for i, mod := range models {
		r.ShoppingPortals[i].FromModel(mod)
	}
}
