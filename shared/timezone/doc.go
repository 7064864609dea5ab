// Package timezone holds the application clock and the stay-date helpers.
//
// Audit timestamps (created_at, modified_at) use the zone configured through
// APP_TIMEZONE; check-in and check-out dates are calendar dates and are always
// handled in UTC so that night counts never drift across DST boundaries.
package timezone
