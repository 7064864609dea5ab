package matcher_test

import (
	"testing"
	"time"

	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func association(id, promotionID, status string, value float64) bookingModel.BookingPromotion {
	return bookingModel.BookingPromotion{
		ID:           id,
		BookingID:    "b1",
		PromotionID:  promotionID,
		AppliedValue: value,
		Status:       status,
	}
}

func TestReconcile_InsertsNewMatches(t *testing.T) {
	now := time.Now()

	plan := matcher.Reconcile("b1", nil, []matcher.Match{{PromotionID: "p1", Value: 50}}, map[string]bool{"p1": true}, "system", now)

	require.Len(t, plan.Insert, 1)
	assert.Equal(t, "p1", plan.Insert[0].PromotionID)
	assert.Equal(t, bookingModel.StatusAutoApplied, plan.Insert[0].Status)
	assert.True(t, plan.Insert[0].AutoApplied())
	assert.False(t, plan.Insert[0].Verified())
	assert.NotEmpty(t, plan.Insert[0].ID)
	assert.Equal(t, plan.Insert, plan.Result)
}

func TestReconcile_IsIdempotent(t *testing.T) {
	now := time.Now()
	matches := []matcher.Match{{PromotionID: "p1", Value: 50}, {PromotionID: "p2", Value: 12.5}}
	active := map[string]bool{"p1": true, "p2": true}

	first := matcher.Reconcile("b1", nil, matches, active, "system", now)
	second := matcher.Reconcile("b1", first.Result, matches, active, "system", now)

	assert.True(t, second.Empty())
	assert.Equal(t, first.Result, second.Result)
}

func TestReconcile_RefreshesAutoValue(t *testing.T) {
	existing := []bookingModel.BookingPromotion{association("a1", "p1", bookingModel.StatusAutoApplied, 40)}

	plan := matcher.Reconcile("b1", existing, []matcher.Match{{PromotionID: "p1", Value: 45}}, map[string]bool{"p1": true}, "system", time.Now())

	require.Len(t, plan.Update, 1)
	assert.Equal(t, "a1", plan.Update[0].ID)
	assert.Equal(t, 45.0, plan.Update[0].AppliedValue)
	assert.Empty(t, plan.Insert)
	assert.Empty(t, plan.Delete)
}

func TestReconcile_KeepsVerifiedWhileEligible(t *testing.T) {
	existing := []bookingModel.BookingPromotion{association("a1", "p1", bookingModel.StatusVerified, 40)}

	plan := matcher.Reconcile("b1", existing, []matcher.Match{{PromotionID: "p1", Value: 45}}, map[string]bool{"p1": true}, "system", time.Now())

	assert.True(t, plan.Empty())
	require.Len(t, plan.Result, 1)
	assert.Equal(t, bookingModel.StatusVerified, plan.Result[0].Status)
	assert.Equal(t, 40.0, plan.Result[0].AppliedValue)
}

func TestReconcile_RemovesIneligible(t *testing.T) {
	existing := []bookingModel.BookingPromotion{
		association("a1", "p1", bookingModel.StatusAutoApplied, 40),
		association("a2", "p2", bookingModel.StatusVerified, 10),
		association("a3", "p3", bookingModel.StatusManual, 25),
		association("a4", "p4", bookingModel.StatusManual, 5),
	}

	plan := matcher.Reconcile("b1", existing, nil, map[string]bool{"p3": true}, "system", time.Now())

	assert.ElementsMatch(t, []string{"a1", "a2", "a4"}, plan.Delete)
	require.Len(t, plan.Result, 1)
	assert.Equal(t, "a3", plan.Result[0].ID)
}
