package timezone

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/chris-catignani/hotel-tracker-sub001/shared/constant"
)

var location atomic.Pointer[time.Location]

// Configure sets the zone used for audit timestamps. An empty name means UTC.
// On error the previous zone stays in effect.
func Configure(name string) error {
	if name == "" {
		location.Store(time.UTC)

		return nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	location.Store(loc)

	return nil
}

// Location returns the configured zone, UTC until Configure succeeds.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}

	return time.UTC
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Format renders t in the configured zone.
func Format(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// ParseDate parses a YYYY-MM-DD stay date. Stay dates carry no time of day
// so they are pinned to UTC midnight to keep night counts exact.
func ParseDate(value string) (time.Time, error) {
	return time.ParseInLocation(constant.DateOnlyFormat, value, time.UTC)
}

// FormatDate renders a stay date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format(constant.DateOnlyFormat)
}

// NightsBetween counts the nights between two stay dates.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	out := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)

	return int(out.Sub(in).Hours() / 24) //nolint:mnd
}
