package dto

import promotionDto "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"

// RecalculationReport counts the bookings a chain-wide loyalty pass visited.
// Failures lists bookings whose points could not be written; the rest of the
// pass still ran.
type RecalculationReport struct {
	HotelChainID  string                 `json:"hotelChainId"`
	Updated       int                    `json:"updated"`
	SkippedManual int                    `json:"skippedManual"`
	Unchanged     int                    `json:"unchanged"`
	Failures      []promotionDto.Failure `json:"failures"`
	Reevaluation  promotionDto.Report    `json:"reevaluation"`
}

// Partial reports whether any booking missed either its points update or its
// promotion re-match.
func (r RecalculationReport) Partial() bool {
	return len(r.Failures) > 0 || r.Reevaluation.Partial()
}
