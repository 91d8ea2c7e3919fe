package model

// Review mirrors a row of the property_reviews table.
type Review struct {
	ID            int64   `json:"id"`
	GuestID       int64   `json:"guest_id"`
	PropertyID    int64   `json:"property_id"`
	ReservationID int64   `json:"reservation_id"`
	Rating        int16   `json:"rating"`
	Message       *string `json:"message"`
}

// ListReviewsPayload is bound from GET /api/properties/:id/reviews.
type ListReviewsPayload struct {
	PropertyID int64 `param:"id" validate:"required,min=1"`
	Limit      int   `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p *ListReviewsPayload) Validate() error {
	return validate.Struct(p)
}
