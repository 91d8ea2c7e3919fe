package model

import "time"

// Reservation mirrors a row of the reservations table.
type Reservation struct {
	ID         int64     `json:"id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	PropertyID int64     `json:"property_id"`
	GuestID    int64     `json:"guest_id"`
}

// GuestReservation is a reservation together with the reserved property
// and that property's average rating.
type GuestReservation struct {
	Reservation
	Property PropertyWithRating `json:"property"`
}

// ListReservationsPayload is bound from the query string of GET /api/reservations.
type ListReservationsPayload struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p *ListReservationsPayload) Validate() error {
	return validate.Struct(p)
}
