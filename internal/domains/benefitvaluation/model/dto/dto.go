package dto

import (
	"errors"
	"fmt"

	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/resolver"
	promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/timezone"
	"github.com/google/uuid"
)

// ValuationRequest sets one valuation. A null value deletes it, which makes
// a chain row fall back to the global one.
type ValuationRequest struct {
	HotelChainID *string  `json:"hotelChainId" validate:"omitempty,uuid"`
	IsEqn        bool     `json:"isEqn"`
	CertType     *string  `json:"certType" validate:"omitempty,min=1,max=100"`
	BenefitType  *string  `json:"benefitType" validate:"omitempty,min=1,max=100"`
	Value        *float64 `json:"value" validate:"omitempty,gte=0"`
	ValueType    string   `json:"valueType" validate:"omitempty,oneof=dollar points"`
}

func (r *ValuationRequest) Check() error {
	discriminators := 0

	if r.IsEqn {
		discriminators++
	}

	if r.CertType != nil {
		discriminators++
	}

	if r.BenefitType != nil {
		discriminators++
	}

	if discriminators != 1 {
		return errors.New("exactly one of isEqn, certType or benefitType must be set")
	}

	return nil
}

func (r *ValuationRequest) ToModel(user string) model.BenefitValuation {
	valueType := r.ValueType
	if valueType == "" {
		valueType = model.ValueTypeDollar
	}

	now := timezone.Now()

	return model.BenefitValuation{
		ID:           uuid.NewString(),
		HotelChainID: r.HotelChainID,
		IsEqn:        r.IsEqn,
		CertType:     r.CertType,
		BenefitType:  r.BenefitType,
		Value:        r.Value,
		ValueType:    valueType,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type SaveValuationsRequest struct {
	Valuations []ValuationRequest `json:"valuations" validate:"required,dive"`
}

func (r *SaveValuationsRequest) Check() error {
	for idx := range r.Valuations {
		if err := r.Valuations[idx].Check(); err != nil {
			return fmt.Errorf("valuations[%d]: %w", idx, err)
		}
	}

	return nil
}

func (r *SaveValuationsRequest) ToModels(user string) []model.BenefitValuation {
	models := make([]model.BenefitValuation, len(r.Valuations))
	for i := range r.Valuations {
		models[i] = r.Valuations[i].ToModel(user)
	}

	return models
}

type ValuationResponse struct {
	ID           string   `json:"id"`
	HotelChainID *string  `json:"hotelChainId"`
	IsEqn        bool     `json:"isEqn"`
	CertType     *string  `json:"certType"`
	BenefitType  *string  `json:"benefitType"`
	Value        *float64 `json:"value"`
	ValueType    string   `json:"valueType"`
	gDto.Metadata
}

func (r *ValuationResponse) FromModel(model model.BenefitValuation) {
	r.ID = model.ID
	r.HotelChainID = model.HotelChainID
	r.IsEqn = model.IsEqn
	r.CertType = model.CertType
	r.BenefitType = model.BenefitType
	r.Value = model.Value
	r.ValueType = model.ValueType
	r.Metadata.FromModel(model.Metadata)
}

type GetValuationsResponse struct {
	Valuations []ValuationResponse `json:"valuations"`
}

func (r *GetValuationsResponse) FromModels(models []model.BenefitValuation) {
	r.Valuations = make([]ValuationResponse, len(models))
	for i, mod := range models {
		r.Valuations[i].FromModel(mod)
	}
}

type SaveValuationsResponse struct {
	Saved        int                 `json:"saved"`
	Reevaluation promotionDto.Report `json:"reevaluation"`
}

type ResolveResponse struct {
	Value     float64 `json:"value"`
	ValueType string  `json:"valueType"`
	Source    string  `json:"source"`
}

func (r *ResolveResponse) FromResolution(resolution resolver.Resolution) {
	r.Value = resolution.Value
	r.ValueType = resolution.ValueType
	r.Source = resolution.Source
}

// ResolveRequest is bound from the query string of the resolve endpoint.
type ResolveRequest struct {
	HotelChainID string `validate:"omitempty,uuid"`
	IsEqn        bool
	CertType     string `validate:"omitempty,max=100"`
	BenefitType  string `validate:"omitempty,max=100"`
}

func (r *ResolveRequest) Check() error {
	discriminators := 0

	for _, set := range []bool{r.IsEqn, r.CertType != "", r.BenefitType != ""} {
		if set {
			discriminators++
		}
	}

	if discriminators != 1 {
		return errors.New("exactly one of is_eqn, cert_type or benefit_type must be set")
	}

	return nil
}

func (r *ResolveRequest) ToQuery() resolver.Query {
	return resolver.Query{
		HotelChainID: r.HotelChainID,
		IsEqn:        r.IsEqn,
		CertType:     r.CertType,
		BenefitType:  r.BenefitType,
	}
}
