package dto

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/creditcard/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

type CreateCreditCardRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	RewardType  string   `json:"rewardType" validate:"required,oneof=cashback points"`
	RewardRate  *float64 `json:"rewardRate" validate:"required,gte=0"`
	PointTypeID *string  `json:"pointTypeId" validate:"omitempty,uuid"`
}

func (c *CreateCreditCardRequest) ToModel(user string) model.CreditCard {
	now := timezone.Now()

	return model.CreditCard{
		ID:          uuid.NewString(),
		Name:        c.Name,
		RewardType:  c.RewardType,
		RewardRate:  *c.RewardRate,
		PointTypeID: c.PointTypeID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCreditCardRequest struct {
	Name        string   `db:"name" json:"name" validate:"omitempty,max=255"`
	RewardType  string   `db:"reward_type" json:"rewardType" validate:"omitempty,oneof=cashback points"`
	RewardRate  *float64 `db:"reward_rate" json:"rewardRate" validate:"omitempty,gte=0"`
	PointTypeID *string  `db:"point_type_id" json:"pointTypeId" validate:"omitempty,uuid"`
}

type CreditCardResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	RewardType  string  `json:"rewardType"`
	RewardRate  float64 `json:"rewardRate"`
	PointTypeID *string `json:"pointTypeId"`
	gDto.Metadata
}

func (r *CreditCardResponse) FromModel(model model.CreditCard) {
	r.ID = model.ID
	r.Name = model.Name
	r.RewardType = model.RewardType
	r.RewardRate = model.RewardRate
	r.PointTypeID = model.PointTypeID
	r.Metadata.FromModel(model.Metadata)
}

type GetCreditCardsResponse struct {
	CreditCards []CreditCardResponse `json:"creditCards"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetCreditCardsResponse) FromModels(models []model.CreditCard, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.CreditCards = make([]CreditCardResponse, len(models))
	for i, mod := range models {
		r.CreditCards[i].FromModel(mod)
	}
}
