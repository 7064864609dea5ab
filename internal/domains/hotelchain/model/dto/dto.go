package dto

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/hotelchain/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

func metadata(user string) gModel.Metadata {
	now := timezone.Now()

	return gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}
}

type CreateHotelChainRequest struct {
	Name           string   `json:"name" validate:"required,max=255"`
	LoyaltyProgram string   `json:"loyaltyProgram" validate:"omitempty,max=255"`
	BasePointRate  *float64 `json:"basePointRate" validate:"omitempty,gte=0"`
	PointTypeID    *string  `json:"pointTypeId" validate:"omitempty,uuid"`
}

func (c *CreateHotelChainRequest) ToModel(user string) model.HotelChain {
	return model.HotelChain{
		ID:             uuid.NewString(),
		Name:           c.Name,
		LoyaltyProgram: c.LoyaltyProgram,
		BasePointRate:  c.BasePointRate,
		PointTypeID:    c.PointTypeID,
		Metadata:       metadata(user),
	}
}

type UpdateHotelChainRequest struct {
	Name           string   `db:"name" json:"name" validate:"omitempty,max=255"`
	LoyaltyProgram string   `db:"loyalty_program" json:"loyaltyProgram" validate:"omitempty,max=255"`
	BasePointRate  *float64 `db:"base_point_rate" json:"basePointRate" validate:"omitempty,gte=0"`
	PointTypeID    *string  `db:"point_type_id" json:"pointTypeId" validate:"omitempty,uuid"`
}

type HotelChainResponse struct {
	ID             string                `json:"id"`
	Name           string                `json:"name"`
	LoyaltyProgram string                `json:"loyaltyProgram"`
	BasePointRate  *float64              `json:"basePointRate"`
	PointTypeID    *string               `json:"pointTypeId"`
	SubBrands      []SubBrandResponse    `json:"subBrands,omitempty"`
	EliteStatuses  []EliteStatusResponse `json:"eliteStatuses,omitempty"`
	gDto.Metadata
}

func (r *HotelChainResponse) FromModel(model model.HotelChain) {
	r.ID = model.ID
	r.Name = model.Name
	r.LoyaltyProgram = model.LoyaltyProgram
	r.BasePointRate = model.BasePointRate
	r.PointTypeID = model.PointTypeID
	r.Metadata.FromModel(model.Metadata)
}

func (r *HotelChainResponse) WithChildren(subBrands []model.SubBrand, eliteStatuses []model.EliteStatus) {
	r.SubBrands = make([]SubBrandResponse, len(subBrands))
	for i, subBrand := range subBrands {
		r.SubBrands[i].FromModel(subBrand)
	}

	r.EliteStatuses = make([]EliteStatusResponse, len(eliteStatuses))
	for i, eliteStatus := range eliteStatuses {
		r.EliteStatuses[i].FromModel(eliteStatus)
	}
}

type GetHotelChainsResponse struct {
	HotelChains []HotelChainResponse `json:"hotelChains"`
	TotalPage   int                  `json:"totalPage"`
	TotalData   int                  `json:"totalData"`
}

func (r *GetHotelChainsResponse) FromModels(models []model.HotelChain, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.HotelChains = make([]HotelChainResponse, len(models))
	for i, mod := range models {
		r.HotelChains[i].FromModel(mod)
	}
}

type CreateSubBrandRequest struct {
	Name          string   `json:"name" validate:"required,max=255"`
	BasePointRate *float64 `json:"basePointRate" validate:"omitempty,gte=0"`
}

func (c *CreateSubBrandRequest) ToModel(hotelChainID, user string) model.SubBrand {
	return model.SubBrand{
		ID:            uuid.NewString(),
		HotelChainID:  hotelChainID,
		Name:          c.Name,
		BasePointRate: c.BasePointRate,
		Metadata:      metadata(user),
	}
}

type UpdateSubBrandRequest struct {
	Name          string   `db:"name" json:"name" validate:"omitempty,max=255"`
	BasePointRate *float64 `db:"base_point_rate" json:"basePointRate" validate:"omitempty,gte=0"`
}

type SubBrandResponse struct {
	ID            string   `json:"id"`
	HotelChainID  string   `json:"hotelChainId"`
	Name          string   `json:"name"`
	BasePointRate *float64 `json:"basePointRate"`
	gDto.Metadata
}

func (r *SubBrandResponse) FromModel(model model.SubBrand) {
	r.ID = model.ID
	r.HotelChainID = model.HotelChainID
	r.Name = model.Name
	r.BasePointRate = model.BasePointRate
	r.Metadata.FromModel(model.Metadata)
}

type CreateEliteStatusRequest struct {
	Name      string   `json:"name" validate:"required,max=255"`
	PointRate *float64 `json:"pointRate" validate:"required,gte=0"`
	Rank      int      `json:"rank" validate:"gte=0"`
}

func (c *CreateEliteStatusRequest) ToModel(hotelChainID, user string) model.EliteStatus {
	return model.EliteStatus{
		ID:           uuid.NewString(),
		HotelChainID: hotelChainID,
		Name:         c.Name,
		PointRate:    *c.PointRate,
		Rank:         c.Rank,
		Metadata:     metadata(user),
	}
}

type UpdateEliteStatusRequest struct {
	Name      string   `db:"name" json:"name" validate:"omitempty,max=255"`
	PointRate *float64 `db:"point_rate" json:"pointRate" validate:"omitempty,gte=0"`
	Rank      int      `db:"rank" json:"rank" validate:"gte=0"`
}

type EliteStatusResponse struct {
	ID           string  `json:"id"`
	HotelChainID string  `json:"hotelChainId"`
	Name         string  `json:"name"`
	PointRate    float64 `json:"pointRate"`
	Rank         int     `json:"rank"`
	gDto.Metadata
}

func (r *EliteStatusResponse) FromModel(model model.EliteStatus) {
	r.ID = model.ID
	r.HotelChainID = model.HotelChainID
	r.Name = model.Name
	r.PointRate = model.PointRate
	r.Rank = model.Rank
	r.Metadata.FromModel(model.Metadata)
}
