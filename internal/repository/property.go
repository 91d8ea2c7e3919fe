package repository

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog"
)

type PropertyRepository struct {
	db  DBTX
	log *zerolog.Logger
}

func NewPropertyRepository(db DBTX, log *zerolog.Logger) *PropertyRepository {
	return &PropertyRepository{db: db, log: log}
}

// GetAllProperties runs the filtered search built by BuildPropertySearch.
// A non-positive limit falls back to DefaultLimit.
func (r *PropertyRepository) GetAllProperties(ctx context.Context, opts model.PropertySearchOptions, limit int) ([]model.PropertyWithRating, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	query, args := BuildPropertySearch(opts, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		logQueryError(ctx, r.log, "GetAllProperties", err)
		return nil, err
	}

	properties, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.PropertyWithRating, error) {
		return scanPropertyWithRating(row)
	})
	if err != nil {
		logQueryError(ctx, r.log, "GetAllProperties", err)
		return nil, err
	}
	return properties, nil
}

// AddProperty stores a new listing and returns the inserted row.
func (r *PropertyRepository) AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error) {
	const query = `INSERT INTO properties (owner_id, title, description, thumbnail_photo_url, cover_photo_url,
cost_per_night, street, city, province, post_code, country,
parking_spaces, number_of_bathrooms, number_of_bedrooms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + propertyColumns

	var created model.Property
	err := r.db.QueryRow(ctx, query,
		p.OwnerID, p.Title, p.Description, p.ThumbnailPhotoURL, p.CoverPhotoURL,
		p.CostPerNightCents(), p.Street, p.City, p.Province, p.PostCode, p.Country,
		max(p.ParkingSpaces, 0), max(p.NumberOfBathrooms, 0), max(p.NumberOfBedrooms, 0),
	).Scan(propertyDest(&created)...)
	if err != nil {
		logQueryError(ctx, r.log, "AddProperty", err)
		return nil, err
	}

	logger.FromContext(ctx, r.log).Info().
		Int64("property_id", created.ID).
		Int64("owner_id", created.OwnerID).
		Msg("property added")
	return &created, nil
}

// propertyDest lists scan targets in propertyColumns order.
func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID, &p.OwnerID, &p.Title, &p.Description,
		&p.ThumbnailPhotoURL, &p.CoverPhotoURL, &p.CostPerNight,
		&p.ParkingSpaces, &p.NumberOfBathrooms, &p.NumberOfBedrooms,
		&p.Country, &p.Street, &p.City, &p.Province,
		&p.PostCode, &p.Active,
	}
}

// ratingDest scans a nullable AVG(...) column.
type ratingDest struct {
	v pgtype.Float8
}

func (d *ratingDest) value() *float64 {
	if !d.v.Valid {
		return nil
	}
	f := d.v.Float64
	return &f
}

func scanPropertyWithRating(row rowScanner) (model.PropertyWithRating, error) {
	var (
		p      model.PropertyWithRating
		rating ratingDest
	)
	if err := row.Scan(append(propertyDest(&p.Property), &rating.v)...); err != nil {
		return p, err
	}
	p.AverageRating = rating.value()
	return p, nil
}
