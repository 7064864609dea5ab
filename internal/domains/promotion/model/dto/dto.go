package dto

import (
	"fmt"
	"time"

	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	bookingDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

// PromotionRequest is used for both create and full replacement.
type PromotionRequest struct {
	Name                 string   `json:"name" validate:"required,max=255"`
	Type                 string   `json:"type" validate:"required,oneof=credit_card portal loyalty"`
	ValueType            string   `json:"valueType" validate:"required,oneof=fixed percentage points_multiplier"`
	Value                *float64 `json:"value" validate:"required,gte=0"`
	HotelChainID         *string  `json:"hotelChainId" validate:"omitempty,uuid"`
	HotelChainSubBrandID *string  `json:"hotelChainSubBrandId" validate:"omitempty,uuid"`
	CreditCardID         *string  `json:"creditCardId" validate:"omitempty,uuid"`
	ShoppingPortalID     *string  `json:"shoppingPortalId" validate:"omitempty,uuid"`
	MinSpend             *float64 `json:"minSpend" validate:"omitempty,gte=0"`
	StartDate            *string  `json:"startDate" validate:"omitempty,dateonly"`
	EndDate              *string  `json:"endDate" validate:"omitempty,dateonly"`
	IsActive             *bool    `json:"isActive"`
	BonusEqns            int      `json:"bonusEqns" validate:"gte=0"`
	BenefitType          *string  `json:"benefitType" validate:"omitempty,max=100"`
}

func (r *PromotionRequest) Check() error {
	if r.CreditCardID != nil && r.Type != model.TypeCreditCard {
		return fmt.Errorf("creditCardId is only allowed on credit_card promotions")
	}

	if r.ShoppingPortalID != nil && r.Type != model.TypePortal {
		return fmt.Errorf("shoppingPortalId is only allowed on portal promotions")
	}

	if r.HotelChainSubBrandID != nil && r.HotelChainID == nil {
		return fmt.Errorf("hotelChainSubBrandId requires hotelChainId")
	}

	if r.StartDate != nil && r.EndDate != nil && *r.EndDate < *r.StartDate {
		return fmt.Errorf("endDate must not be before startDate")
	}

	return nil
}

func (r *PromotionRequest) ToModel(user string) (model.Promotion, error) {
	startDate, err := parseOptionalDate(r.StartDate)
	if err != nil {
		return model.Promotion{}, err
	}

	endDate, err := parseOptionalDate(r.EndDate)
	if err != nil {
		return model.Promotion{}, err
	}

	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	now := timezone.Now()

	return model.Promotion{
		ID:                   uuid.NewString(),
		Name:                 r.Name,
		Type:                 r.Type,
		ValueType:            r.ValueType,
		Value:                *r.Value,
		HotelChainID:         r.HotelChainID,
		HotelChainSubBrandID: r.HotelChainSubBrandID,
		CreditCardID:         r.CreditCardID,
		ShoppingPortalID:     r.ShoppingPortalID,
		MinSpend:             r.MinSpend,
		StartDate:            startDate,
		EndDate:              endDate,
		IsActive:             isActive,
		BonusEqns:            r.BonusEqns,
		BenefitType:          r.BenefitType,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

// ToFields returns every column of the promotion for a full replacement.
func (r *PromotionRequest) ToFields(user string) (map[string]any, error) {
	promotion, err := r.ToModel(user)
	if err != nil {
		return nil, err
	}

	fields := shared.ReplaceFields(promotion, user)
	delete(fields, model.FieldID)

	return fields, nil
}

func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil //nolint:nilnil
	}

	parsed, err := timezone.ParseDate(*value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *value, err)
	}

	return &parsed, nil
}

type PromotionResponse struct {
	ID                   string   `json:"id"`
	Name                 string   `json:"name"`
	Type                 string   `json:"type"`
	ValueType            string   `json:"valueType"`
	Value                float64  `json:"value"`
	HotelChainID         *string  `json:"hotelChainId"`
	HotelChainSubBrandID *string  `json:"hotelChainSubBrandId"`
	CreditCardID         *string  `json:"creditCardId"`
	ShoppingPortalID     *string  `json:"shoppingPortalId"`
	MinSpend             *float64 `json:"minSpend"`
	StartDate            *string  `json:"startDate"`
	EndDate              *string  `json:"endDate"`
	IsActive             bool     `json:"isActive"`
	BonusEqns            int      `json:"bonusEqns"`
	BenefitType          *string  `json:"benefitType"`
	gDto.Metadata
}

func (r *PromotionResponse) FromModel(model model.Promotion) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.ValueType = model.ValueType
	r.Value = model.Value
	r.HotelChainID = model.HotelChainID
	r.HotelChainSubBrandID = model.HotelChainSubBrandID
	r.CreditCardID = model.CreditCardID
	r.ShoppingPortalID = model.ShoppingPortalID
	r.MinSpend = model.MinSpend
	r.StartDate = formatOptionalDate(model.StartDate)
	r.EndDate = formatOptionalDate(model.EndDate)
	r.IsActive = model.IsActive
	r.BonusEqns = model.BonusEqns
	r.BenefitType = model.BenefitType
	r.Metadata.FromModel(model.Metadata)
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.FormatDate(*t)

	return &formatted
}

type GetPromotionsResponse struct {
	Promotions []PromotionResponse `json:"promotions"`
	TotalPage  int                 `json:"totalPage"`
	TotalData  int                 `json:"totalData"`
}

func (r *GetPromotionsResponse) FromModels(models []model.Promotion, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Promotions = make([]PromotionResponse, len(models))
	for i, mod := range models {
		r.Promotions[i].FromModel(mod)
	}
}

type MatchRequest struct {
	BookingID string `json:"bookingId" validate:"required,uuid"`
}

type MatchResponse struct {
	BookingID string                                `json:"bookingId"`
	Applied   []bookingDto.BookingPromotionResponse `json:"applied"`
}

func (r *MatchResponse) FromModels(bookingID string, models []bookingModel.BookingPromotion) {
	r.BookingID = bookingID
	r.Applied = make([]bookingDto.BookingPromotionResponse, len(models))

	for i, mod := range models {
		r.Applied[i].FromModel(mod)
	}
}

// ReevaluateRequest with no ids re-matches every booking.
type ReevaluateRequest struct {
	BookingIDs []string `json:"bookingIds" validate:"omitempty,dive,uuid"`
}

type Failure struct {
	BookingID string `json:"bookingId"`
	Error     string `json:"error"`
}

// Report summarises a reevaluation run. Bookings listed in Failures kept
// their previous associations.
type Report struct {
	Processed int       `json:"processed"`
	Failures  []Failure `json:"failures"`
}

func (r Report) Partial() bool {
	return len(r.Failures) > 0
}

// EventBookingsReevaluated is the key of the event published after a reevaluation run.
const EventBookingsReevaluated = "bookings.reevaluated"

// ReevaluatedEvent is published to the booking events topic once a run finishes.
type ReevaluatedEvent struct {
	Event      string    `json:"event"`
	BookingIDs []string  `json:"bookingIds"`
	Processed  int       `json:"processed"`
	Failures   []Failure `json:"failures"`
	OccurredAt time.Time `json:"occurredAt"`
}

func NewReevaluatedEvent(bookingIDs []string, report Report) ReevaluatedEvent {
	return ReevaluatedEvent{
		Event:      EventBookingsReevaluated,
		BookingIDs: bookingIDs,
		Processed:  report.Processed,
		Failures:   report.Failures,
		OccurredAt: timezone.Now(),
	}
}

// Merge folds another run into r.
func (r *Report) Merge(other Report) {
	r.Processed += other.Processed
	r.Failures = append(r.Failures, other.Failures...)
}

type SaveResponse struct {
	ID           string `json:"id"`
	Reevaluation Report `json:"reevaluation"`
}
