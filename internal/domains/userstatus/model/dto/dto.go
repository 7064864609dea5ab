package dto

import (
	loyaltyDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/loyalty/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/userstatus/model"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

// SetUserStatusRequest clears the tier when EliteStatusID is null.
type SetUserStatusRequest struct {
	EliteStatusID *string `json:"eliteStatusId" validate:"omitempty,uuid"`
}

func (r *SetUserStatusRequest) ToModel(hotelChainID, user string) model.UserStatus {
	now := timezone.Now()

	return model.UserStatus{
		ID:            uuid.NewString(),
		HotelChainID:  hotelChainID,
		EliteStatusID: r.EliteStatusID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UserStatusResponse struct {
	ID              string   `json:"id"`
	HotelChainID    string   `json:"hotelChainId"`
	HotelChainName  string   `json:"hotelChainName"`
	EliteStatusID   *string  `json:"eliteStatusId"`
	EliteStatusName *string  `json:"eliteStatusName"`
	ElitePointRate  *float64 `json:"elitePointRate"`
	gDto.Metadata
}

func (r *UserStatusResponse) FromModel(model model.Detail) {
	r.ID = model.ID
	r.HotelChainID = model.HotelChainID
	r.HotelChainName = model.HotelChainName
	r.EliteStatusID = model.EliteStatusID
	r.EliteStatusName = model.EliteStatusName
	r.ElitePointRate = model.ElitePointRate
	r.Metadata.FromModel(model.Metadata)
}

type GetUserStatusesResponse struct {
	UserStatuses []UserStatusResponse `json:"userStatuses"`
}

func (r *GetUserStatusesResponse) FromModels(models []model.Detail) {
	r.UserStatuses = make([]UserStatusResponse, len(models))
	for i, mod := range models {
		r.UserStatuses[i].FromModel(mod)
	}
}

type SetUserStatusResponse struct {
	UserStatus    UserStatusResponse              `json:"userStatus"`
	Recalculation *loyaltyDto.RecalculationReport `json:"recalculation,omitempty"`
}
