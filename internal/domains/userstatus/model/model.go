package model

import "github.com/chris-catignani/hotel-tracker-sub001/shared/model"

const (
	TableName  = "user_statuses"
	EntityName = "user status"

	FieldID            = "id"
	FieldHotelChainID  = "hotel_chain_id"
	FieldEliteStatusID = "elite_status_id"
)

// UserStatus is the elite tier currently held with one chain. A nil
// EliteStatusID means no status.
type UserStatus struct {
	ID            string  `db:"id"`
	HotelChainID  string  `db:"hotel_chain_id"`
	EliteStatusID *string `db:"elite_status_id"`
	model.Metadata
}

// Detail joins the tier so its earn rate is at hand.
type Detail struct {
	UserStatus
	HotelChainName  string   `db:"hotel_chain_name" table:"hotel_chains" column:"name"`
	EliteStatusName *string  `db:"elite_status_name" table:"elite_statuses" column:"name"`
	ElitePointRate  *float64 `db:"elite_point_rate" table:"elite_statuses" column:"point_rate"`
}

func (Detail) GetJoinQuery() string {
	return `JOIN hotel_chains ON hotel_chains.id = user_statuses.hotel_chain_id
		LEFT JOIN elite_statuses ON elite_statuses.id = user_statuses.elite_status_id`
}

// EliteRate is zero when the user holds no tier.
func (d Detail) EliteRate() float64 {
	if d.ElitePointRate == nil {
		return 0
	}

	return *d.ElitePointRate
}
