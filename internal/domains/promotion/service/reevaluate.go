package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/chris-catignani/hotel-tracker-sub001/infras/kafka"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/metrics"
	bookingModel "github.com/chris-catignani/hotel-tracker-sub001/internal/domains/booking/model"
	"github.com/chris-catignani/hotel-tracker-sub001/internal/domains/promotion/model/dto"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
	gDto "github.com/chris-catignani/hotel-tracker-sub001/shared/dto"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrPartialReevaluation is returned with the report when at least one
// booking could not be re-matched. The other bookings are committed.
var ErrPartialReevaluation = errors.New("some bookings failed to reevaluate")

// ReevaluateBookings re-matches each booking in its own transaction. One
// failure does not stop the others.
func (s *serviceImpl) ReevaluateBookings(ctx context.Context, bookingIDs []string) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReevaluateBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Failures = []dto.Failure{}

	ids := slices.Compact(slices.Sorted(slices.Values(bookingIDs)))
	if len(ids) == 0 {
		return res, nil
	}

	workers := s.cfg.App.Reevaluation.Workers
	if workers < 1 {
		workers = 1
	}

	scope.SetAttributes(map[string]any{"bookings": len(ids), "workers": workers})

	var (
		mu    sync.Mutex
		group errgroup.Group
	)

	group.SetLimit(workers)

	for _, id := range ids {
		group.Go(func() error {
			_, matchErr := s.MatchPromotionsForBooking(ctx, id)

			mu.Lock()
			defer mu.Unlock()

			if matchErr != nil {
				log.Error().Err(matchErr).Str("bookingID", id).Msg("failed to reevaluate booking")
				res.Failures = append(res.Failures, dto.Failure{BookingID: id, Error: matchErr.Error()})

				return nil
			}

			res.Processed++

			return nil
		})
	}

	_ = group.Wait()

	sort.Slice(res.Failures, func(i, j int) bool {
		return res.Failures[i].BookingID < res.Failures[j].BookingID
	})

	metrics.ObserveReevaluation(res.Processed, len(res.Failures))

	log.Info().Int("processed", res.Processed).Int("failed", len(res.Failures)).Msg("bookings reevaluated")

	s.publishReevaluated(ctx, ids, res)

	if res.Partial() {
		scope.AddEvent("reevaluation.partial", map[string]any{"failed": len(res.Failures)})

		return res, fmt.Errorf("%w: %d of %d", ErrPartialReevaluation, len(res.Failures), len(ids))
	}

	return res, nil
}

func (s *serviceImpl) ReevaluateAll(ctx context.Context) (dto.Report, error) {
	return s.ReevaluateMatching(ctx, gDto.FilterGroup{})
}

// ReevaluateMatching re-matches the bookings selected by filter. An empty
// filter selects every booking.
func (s *serviceImpl) ReevaluateMatching(ctx context.Context, filter gDto.FilterGroup) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ReevaluateMatching")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, filter, bookingModel.FieldID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list bookings")

		return res, fmt.Errorf("failed to list bookings: %w", err)
	}

	ids := make([]string, len(bookings))
	for i, booking := range bookings {
		ids[i] = booking.ID
	}

	return s.ReevaluateBookings(ctx, ids)
}

func (s *serviceImpl) MatchPromotionsForAffectedBookings(ctx context.Context, promotionID string) (res dto.Report, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MatchPromotionsForAffectedBookings")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := s.bookingPromotionRepo.GetAll(ctx, gDto.QueryParams{},
		gDto.And(gDto.Eq(bookingModel.BookingPromotionTableName, bookingModel.FieldPromotionID, promotionID)),
		bookingModel.FieldBookingID,
	)
	if err != nil {
		log.Error().Err(err).Str("promotionID", promotionID).Msg("failed to get associated bookings")

		return res, fmt.Errorf("failed to get associated bookings: %w", err)
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.BookingID
	}

	return s.ReevaluateBookings(ctx, ids)
}

// reevaluateAfterSave runs a follow-up reevaluation for a write that is
// already committed. A partial failure is reported in the body, not as an error.
func (s *serviceImpl) reevaluateAfterSave(ctx context.Context, run func(ctx context.Context) (dto.Report, error)) (dto.Report, error) {
	report, err := run(ctx)
	if err != nil && !errors.Is(err, ErrPartialReevaluation) {
		log.Error().Err(err).Msg("failed to reevaluate bookings")

		return report, fmt.Errorf("failed to reevaluate bookings: %w", err)
	}

	return report, nil
}

// publishReevaluated emits the run outcome. Delivery errors are logged only;
// the reevaluation itself is already committed.
func (s *serviceImpl) publishReevaluated(ctx context.Context, ids []string, report dto.Report) {
	if !s.events.Enabled() {
		return
	}

	err := s.events.SendMessages(ctx, s.events.Topic(), kafka.Message{
		Key:   dto.EventBookingsReevaluated,
		Value: dto.NewReevaluatedEvent(ids, report),
	})
	if err != nil {
		log.Warn().Err(err).Int("bookings", len(ids)).Msg("failed to publish reevaluation event")
	}
}
