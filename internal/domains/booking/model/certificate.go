package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	CertificateTableName  = "booking_certificates"
	CertificateEntityName = "booking certificate"

	FieldBookingID = "booking_id"
	FieldCertType  = "cert_type"
)

// Certificate is a free-night certificate redeemed on a booking.
type Certificate struct {
	ID        string `db:"id"`
	BookingID string `db:"booking_id"`
	CertType  string `db:"cert_type"`
	model.Metadata
}
