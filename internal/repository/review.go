package repository

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
)

type ReviewRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewReviewRepository(db DBTX, log *zerolog.Logger) *ReviewRepository {
	return &ReviewRepository{db: db, log: log}
}

// GetPropertyReviews lists the reviews left for a property, newest first.
func (r *ReviewRepository) GetPropertyReviews(ctx context.Context, propertyID int64, limit int) ([]model.Review, error) {
	const query = `SELECT id, guest_id, property_id, reservation_id, rating, message
FROM property_reviews
WHERE property_id = $1
ORDER BY id DESC
LIMIT $2`

	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := r.db.Query(ctx, query, propertyID, limit)
	if err != nil {
		logQueryError(ctx, r.log, "GetPropertyReviews", err)
		return nil, err
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Review, error) {
		var (
			rv      model.Review
			message pgtype.Text
		)
		if err := row.Scan(&rv.ID, &rv.GuestID, &rv.PropertyID, &rv.ReservationID, &rv.Rating, &message); err != nil {
			return rv, err
		}
		if message.Valid {
			rv.Message = &message.String
		}
		return rv, nil
	})
	if err != nil {
		logQueryError(ctx, r.log, "GetPropertyReviews", err)
		return nil, err
	}
	return reviews, nil
}
