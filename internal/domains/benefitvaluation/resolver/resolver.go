// Package resolver prices benefits from a snapshot of valuation rows.
//
// Lookup runs chain override first, then the global default, then a fixed
// fallback. A row whose value is nil never wins: it hides nothing and lets the
// next tier through.
package resolver

import (
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/benefitvaluation/model"
)

// FallbackEqnValue is the dollar value of an EQN when no row prices it.
const FallbackEqnValue = 10.0

const (
	SourceChain    = "chain"
	SourceGlobal   = "global"
	SourceFallback = "fallback"
)

// Outcome is the state of one tier for a query.
type Outcome int

const (
	// Unset means no row exists for the tier.
	Unset Outcome = iota
	// Explicit means a row carries a value.
	Explicit
	// Deleted means a row exists with a nil value.
	Deleted
)

func (o Outcome) String() string {
	switch o {
	case Explicit:
		return "explicit"
	case Deleted:
		return "deleted"
	default:
		return "unset"
	}
}

// Query selects exactly one discriminator: IsEqn, CertType or BenefitType.
type Query struct {
	HotelChainID string
	IsEqn        bool
	CertType     string
	BenefitType  string
}

type Resolution struct {
	Value     float64 `json:"value"`
	ValueType string  `json:"valueType"`
	Source    string  `json:"source"`
}

// Dollars converts the resolution into dollars. Points are priced with
// dollarsPerPoint; a missing point value prices them at zero.
func (r Resolution) Dollars(dollarsPerPoint *float64) float64 {
	if r.ValueType != model.ValueTypePoints {
		return r.Value
	}

	if dollarsPerPoint == nil {
		return 0
	}

	return r.Value * *dollarsPerPoint
}

// Lookup reports the outcome of a single tier. A nil chainID inspects the global tier.
func Lookup(rows []model.BenefitValuation, chainID *string, query Query) (Outcome, model.BenefitValuation) {
	outcome := Unset

	var found model.BenefitValuation

	for _, row := range rows {
		if !sameScope(row.HotelChainID, chainID) || !sameDiscriminator(row, query) {
			continue
		}

		if row.Value != nil {
			return Explicit, row
		}

		outcome = Deleted
		found = row
	}

	return outcome, found
}

// Resolve never returns a nil value.
func Resolve(rows []model.BenefitValuation, query Query) Resolution {
	if query.HotelChainID != "" {
		chainID := query.HotelChainID

		if outcome, row := Lookup(rows, &chainID, query); outcome == Explicit {
			return Resolution{Value: *row.Value, ValueType: valueType(row), Source: SourceChain}
		}
	}

	if outcome, row := Lookup(rows, nil, query); outcome == Explicit {
		return Resolution{Value: *row.Value, ValueType: valueType(row), Source: SourceGlobal}
	}

	if query.IsEqn {
		return Resolution{Value: FallbackEqnValue, ValueType: model.ValueTypeDollar, Source: SourceFallback}
	}

	return Resolution{Value: 0, ValueType: model.ValueTypeDollar, Source: SourceFallback}
}

func valueType(row model.BenefitValuation) string {
	if row.ValueType == "" {
		return model.ValueTypeDollar
	}

	return row.ValueType
}

func sameScope(rowChainID, chainID *string) bool {
	if rowChainID == nil || chainID == nil {
		return rowChainID == nil && chainID == nil
	}

	return *rowChainID == *chainID
}

func sameDiscriminator(row model.BenefitValuation, query Query) bool {
	return row.IsEqn == query.IsEqn &&
		deref(row.CertType) == query.CertType &&
		deref(row.BenefitType) == query.BenefitType
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
