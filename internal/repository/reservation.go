package repository

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ReservationRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewReservationRepository(db DBTX, log *zerolog.Logger) *ReservationRepository {
	return &ReservationRepository{db: db, log: log}
}

const guestReservationsQuery = `SELECT reservations.id, reservations.start_date, reservations.end_date,
reservations.property_id, reservations.guest_id,
` + propertyColumns + `, AVG(property_reviews.rating) AS average_rating
FROM reservations
JOIN properties ON reservations.property_id = properties.id
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id
WHERE reservations.guest_id = $1
GROUP BY properties.id, reservations.id
ORDER BY reservations.start_date DESC
LIMIT $2`

// GetAllReservations lists a guest's reservations, newest first, each with
// the reserved property and its average rating.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := r.db.Query(ctx, guestReservationsQuery, guestID, limit)
	if err != nil {
		logQueryError(ctx, r.log, "GetAllReservations", err)
		return nil, err
	}

	reservations, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.GuestReservation, error) {
		var (
			gr     model.GuestReservation
			rating ratingDest
		)
		dest := []any{
			&gr.ID, &gr.StartDate, &gr.EndDate, &gr.PropertyID, &gr.GuestID,
		}
		dest = append(dest, propertyDest(&gr.Property.Property)...)
		dest = append(dest, &rating.v)

		if err := row.Scan(dest...); err != nil {
			return gr, err
		}
		gr.Property.AverageRating = rating.value()
		return gr, nil
	})
	if err != nil {
		logQueryError(ctx, r.log, "GetAllReservations", err)
		return nil, err
	}
	return reservations, nil
}
