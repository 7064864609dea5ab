package dto

import (
	"errors"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/netcost"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

// BookingRequest is used for both create and full replacement. Omitted
// loyaltyPointsEarned is computed from the chain's earn rates.
type BookingRequest struct {
	HotelChainID          string   `json:"hotelChainId" validate:"required,uuid"`
	HotelChainSubBrandID  *string  `json:"hotelChainSubBrandId" validate:"omitempty,uuid"`
	PropertyName          string   `json:"propertyName" validate:"required,max=255"`
	CheckIn               string   `json:"checkIn" validate:"required,dateonly"`
	CheckOut              string   `json:"checkOut" validate:"required,dateonly"`
	NumNights             int      `json:"numNights" validate:"gte=0"`
	PretaxCost            *float64 `json:"pretaxCost" validate:"required,gte=0"`
	TaxAmount             *float64 `json:"taxAmount" validate:"omitempty,gte=0"`
	TotalCost             *float64 `json:"totalCost" validate:"required,gte=0"`
	CreditCardID          *string  `json:"creditCardId" validate:"omitempty,uuid"`
	CardRewardRate        *float64 `json:"cardRewardRate" validate:"omitempty,gte=0"`
	ShoppingPortalID      *string  `json:"shoppingPortalId" validate:"omitempty,uuid"`
	PortalCashbackRate    *float64 `json:"portalCashbackRate" validate:"omitempty,gte=0"`
	PortalCashbackOnTotal bool     `json:"portalCashbackOnTotal"`
	LoyaltyPointsEarned   *int     `json:"loyaltyPointsEarned" validate:"omitempty,gte=0"`
	PointsRedeemed        *int     `json:"pointsRedeemed" validate:"omitempty,gte=0"`
	CertificateTypes      []string `json:"certificateTypes" validate:"omitempty,dive,required,max=100"`
	Notes                 *string  `json:"notes" validate:"omitempty,max=2000"`
	BookingSource         *string  `json:"bookingSource" validate:"omitempty,oneof=direct_web direct_app ota other"`
	OtaAgencyID           *string  `json:"otaAgencyId" validate:"omitempty,uuid"`
}

func (r *BookingRequest) Check() error {
	checkIn, err := timezone.ParseDate(r.CheckIn)
	if err != nil {
		return fmt.Errorf("checkIn: %w", err)
	}

	checkOut, err := timezone.ParseDate(r.CheckOut)
	if err != nil {
		return fmt.Errorf("checkOut: %w", err)
	}

	if !checkOut.After(checkIn) {
		return errors.New("checkOut must be after checkIn")
	}

	if nights := timezone.NightsBetween(checkIn, checkOut); r.NumNights != 0 && r.NumNights != nights {
		return fmt.Errorf("numNights must be %d for the given dates", nights)
	}

	if *r.TotalCost < *r.PretaxCost {
		return errors.New("totalCost must be greater than or equal to pretaxCost")
	}

	if r.CardRewardRate != nil && r.CreditCardID == nil {
		return errors.New("cardRewardRate requires creditCardId")
	}

	if r.PortalCashbackRate != nil && r.ShoppingPortalID == nil {
		return errors.New("portalCashbackRate requires shoppingPortalId")
	}

	if r.BookingSource != nil && *r.BookingSource == model.SourceOta && r.OtaAgencyID == nil {
		return errors.New("otaAgencyId is required when bookingSource is ota")
	}

	return nil
}

// ToModel assumes Check has passed.
func (r *BookingRequest) ToModel(user string) model.Booking {
	checkIn, _ := timezone.ParseDate(r.CheckIn)
	checkOut, _ := timezone.ParseDate(r.CheckOut)

	nights := r.NumNights
	if nights == 0 {
		nights = timezone.NightsBetween(checkIn, checkOut)
	}

	tax := *r.TotalCost - *r.PretaxCost
	if r.TaxAmount != nil {
		tax = *r.TaxAmount
	}

	now := timezone.Now()

	return model.Booking{
		ID:                    uuid.NewString(),
		HotelChainID:          r.HotelChainID,
		HotelChainSubBrandID:  r.HotelChainSubBrandID,
		PropertyName:          r.PropertyName,
		CheckIn:               checkIn,
		CheckOut:              checkOut,
		NumNights:             nights,
		PretaxCost:            *r.PretaxCost,
		TaxAmount:             tax,
		TotalCost:             *r.TotalCost,
		CreditCardID:          r.CreditCardID,
		CardRewardRate:        r.CardRewardRate,
		ShoppingPortalID:      r.ShoppingPortalID,
		PortalCashbackRate:    r.PortalCashbackRate,
		PortalCashbackOnTotal: r.PortalCashbackOnTotal,
		LoyaltyPointsEarned:   r.LoyaltyPointsEarned,
		LoyaltyPointsManual:   r.LoyaltyPointsEarned != nil,
		PointsRedeemed:        r.PointsRedeemed,
		Notes:                 r.Notes,
		BookingSource:         r.BookingSource,
		OtaAgencyID:           r.OtaAgencyID,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

func (r *BookingRequest) ToCertificates(bookingID, user string) []model.Certificate {
	now := timezone.Now()

	certificates := make([]model.Certificate, len(r.CertificateTypes))
	for i, certType := range r.CertificateTypes {
		certificates[i] = model.Certificate{
			ID:        uuid.NewString(),
			BookingID: bookingID,
			CertType:  certType,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return certificates
}

// ToFields returns every column of the booking for a full replacement.
func ToFields(booking model.Booking, user string) map[string]any {
	fields := shared.ReplaceFields(booking, user)
	delete(fields, model.FieldID)

	return fields
}

type BookingResponse struct {
	ID                    string                     `json:"id"`
	HotelChainID          string                     `json:"hotelChainId"`
	HotelChainName        string                     `json:"hotelChainName"`
	HotelChainSubBrandID  *string                    `json:"hotelChainSubBrandId"`
	SubBrandName          *string                    `json:"subBrandName"`
	PropertyName          string                     `json:"propertyName"`
	CheckIn               string                     `json:"checkIn"`
	CheckOut              string                     `json:"checkOut"`
	NumNights             int                        `json:"numNights"`
	PretaxCost            float64                    `json:"pretaxCost"`
	TaxAmount             float64                    `json:"taxAmount"`
	TotalCost             float64                    `json:"totalCost"`
	CreditCardID          *string                    `json:"creditCardId"`
	CreditCardName        *string                    `json:"creditCardName"`
	CardRewardRate        *float64                   `json:"cardRewardRate"`
	ShoppingPortalID      *string                    `json:"shoppingPortalId"`
	PortalName            *string                    `json:"portalName"`
	PortalCashbackRate    *float64                   `json:"portalCashbackRate"`
	PortalCashbackOnTotal bool                       `json:"portalCashbackOnTotal"`
	LoyaltyPointsEarned   *int                       `json:"loyaltyPointsEarned"`
	LoyaltyPointsManual   bool                       `json:"loyaltyPointsManual"`
	PointsRedeemed        *int                       `json:"pointsRedeemed"`
	CertificateTypes      []string                   `json:"certificateTypes,omitempty"`
	Notes                 *string                    `json:"notes"`
	BookingSource         *string                    `json:"bookingSource"`
	OtaAgencyID           *string                    `json:"otaAgencyId"`
	OtaAgencyName         *string                    `json:"otaAgencyName"`
	Promotions            []BookingPromotionResponse `json:"promotions,omitempty"`
	NetCost               *netcost.Result            `json:"netCost,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Detail) {
	r.ID = model.ID
	r.HotelChainID = model.HotelChainID
	r.HotelChainName = model.HotelChainName
	r.HotelChainSubBrandID = model.HotelChainSubBrandID
	r.SubBrandName = model.SubBrandName
	r.PropertyName = model.PropertyName
	r.CheckIn = timezone.FormatDate(model.CheckIn)
	r.CheckOut = timezone.FormatDate(model.CheckOut)
	r.NumNights = model.NumNights
	r.PretaxCost = model.PretaxCost
	r.TaxAmount = model.TaxAmount
	r.TotalCost = model.TotalCost
	r.CreditCardID = model.CreditCardID
	r.CreditCardName = model.CreditCardName
	r.CardRewardRate = model.CardRewardRate
	r.ShoppingPortalID = model.ShoppingPortalID
	r.PortalName = model.PortalName
	r.PortalCashbackRate = model.PortalCashbackRate
	r.PortalCashbackOnTotal = model.PortalCashbackOnTotal
	r.LoyaltyPointsEarned = model.LoyaltyPointsEarned
	r.LoyaltyPointsManual = model.LoyaltyPointsManual
	r.PointsRedeemed = model.PointsRedeemed
	r.Notes = model.Notes
	r.BookingSource = model.BookingSource
	r.OtaAgencyID = model.OtaAgencyID
	r.OtaAgencyName = model.OtaAgencyName
	r.Metadata.FromModel(model.Metadata)
}

// WithRelations attaches certificates, applied promotions and the net cost.
func (r *BookingResponse) WithRelations(certTypes []string, applied []model.AppliedPromotion, result netcost.Result) {
	r.CertificateTypes = certTypes

	r.Promotions = make([]BookingPromotionResponse, len(applied))
	for i, promotion := range applied {
		r.Promotions[i].FromApplied(promotion)
	}

	r.NetCost = &result
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"totalPage"`
	TotalData int               `json:"totalData"`
}

func (r *GetBookingsResponse) FromModels(models []model.Detail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

type BookingPromotionResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"bookingId"`
	PromotionID   string  `json:"promotionId"`
	PromotionName string  `json:"promotionName,omitempty"`
	PromotionType string  `json:"promotionType,omitempty"`
	AppliedValue  float64 `json:"appliedValue"`
	Status        string  `json:"status"`
	AutoApplied   bool    `json:"autoApplied"`
	Verified      bool    `json:"verified"`
	gDto.Metadata
}

func (r *BookingPromotionResponse) FromModel(model model.BookingPromotion) {
	r.ID = model.ID
	r.BookingID = model.BookingID
	r.PromotionID = model.PromotionID
	r.AppliedValue = model.AppliedValue
	r.Status = model.Status
	r.AutoApplied = model.AutoApplied()
	r.Verified = model.Verified()
	r.Metadata.FromModel(model.Metadata)
}

func (r *BookingPromotionResponse) FromApplied(model model.AppliedPromotion) {
	r.FromModel(model.BookingPromotion)
	r.PromotionName = model.PromotionName
	r.PromotionType = model.PromotionType
}

// AddPromotionRequest records a promotion the matcher did not find.
type AddPromotionRequest struct {
	PromotionID  string   `json:"promotionId" validate:"required,uuid"`
	AppliedValue *float64 `json:"appliedValue" validate:"required,gte=0"`
}

func (r *AddPromotionRequest) ToModel(bookingID, user string) model.BookingPromotion {
	now := timezone.Now()

	return model.BookingPromotion{
		ID:           uuid.NewString(),
		BookingID:    bookingID,
		PromotionID:  r.PromotionID,
		AppliedValue: *r.AppliedValue,
		Status:       model.StatusManual,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}
