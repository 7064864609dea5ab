package matcher

import (
	"time"

	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	gModel "github.com/chris-catignani/hotel-tracker-sub001/shared/model"
	"github.com/google/uuid"
)

// Plan is the set of writes that brings a booking's associations in line with
// the latest matches. Result is the association set after the writes.
type Plan struct {
	Insert []bookingModel.BookingPromotion
	Update []bookingModel.BookingPromotion
	Delete []string
	Result []bookingModel.BookingPromotion
}

func (p Plan) Empty() bool {
	return len(p.Insert) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// Reconcile diffs existing associations against fresh matches.
//
//   - auto_applied rows follow the matcher: refreshed when still eligible, removed otherwise.
//   - verified rows keep their value while eligible and are removed once they are not.
//   - manual rows stay as long as their promotion is active.
//
// Existing rows keep their ids, so running it twice yields the same rows.
func Reconcile(bookingID string, existing []bookingModel.BookingPromotion, matches []Match, active map[string]bool, actor string, now time.Time) Plan {
	plan := Plan{
		Insert: []bookingModel.BookingPromotion{},
		Update: []bookingModel.BookingPromotion{},
		Delete: []string{},
		Result: []bookingModel.BookingPromotion{},
	}

	matched := make(map[string]float64, len(matches))
	for _, match := range matches {
		matched[match.PromotionID] = match.Value
	}

	seen := make(map[string]bool, len(existing))

	for _, row := range existing {
		value, eligible := matched[row.PromotionID]
		seen[row.PromotionID] = true

		switch row.Status {
		case bookingModel.StatusManual:
			if !active[row.PromotionID] {
				plan.Delete = append(plan.Delete, row.ID)

				continue
			}
		case bookingModel.StatusVerified:
			if !eligible {
				plan.Delete = append(plan.Delete, row.ID)

				continue
			}
		default:
			if !eligible {
				plan.Delete = append(plan.Delete, row.ID)

				continue
			}

			if row.AppliedValue != value {
				row.AppliedValue = value
				row.ModifiedAt = now
				row.ModifiedBy = actor
				plan.Update = append(plan.Update, row)
			}
		}

		plan.Result = append(plan.Result, row)
	}

	for _, match := range matches {
		if seen[match.PromotionID] {
			continue
		}

		row := bookingModel.BookingPromotion{
			ID:           uuid.NewString(),
			BookingID:    bookingID,
			PromotionID:  match.PromotionID,
			AppliedValue: match.Value,
			Status:       bookingModel.StatusAutoApplied,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  actor,
				ModifiedBy: actor,
			},
		}

		seen[match.PromotionID] = true
		plan.Insert = append(plan.Insert, row)
		plan.Result = append(plan.Result, row)
	}

	return plan
}
