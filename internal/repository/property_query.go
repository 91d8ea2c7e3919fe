package repository

import (
	"strconv"
	"strings"

	"github.com/FarzanehSa/LightBnB/internal/model"
)

// propertyColumns is qualified because every property query joins property_reviews.
const propertyColumns = `properties.id, properties.owner_id, properties.title, properties.description,
properties.thumbnail_photo_url, properties.cover_photo_url, properties.cost_per_night,
properties.parking_spaces, properties.number_of_bathrooms, properties.number_of_bedrooms,
properties.country, properties.street, properties.city, properties.province,
properties.post_code, properties.active`

const propertySearchBase = `SELECT ` + propertyColumns + `, AVG(property_reviews.rating) AS average_rating
FROM properties
LEFT JOIN property_reviews ON properties.id = property_reviews.property_id`

// queryBuilder appends clauses to a statement while numbering Postgres placeholders.
type queryBuilder struct {
	sql  strings.Builder
	args []any
}

// bind records v and returns its placeholder, "$1" for the first value.
func (b *queryBuilder) bind(v any) string {
	b.args = append(b.args, v)
	return "$" + strconv.Itoa(len(b.args))
}

func (b *queryBuilder) line(parts ...string) {
	b.sql.WriteByte('\n')
	for _, p := range parts {
		b.sql.WriteString(p)
	}
}

// BuildPropertySearch renders the filtered property search.
//
// Unset (zero) options add nothing. WHERE filters come in a fixed order
// (owner, city, minimum price, maximum price), the first one introduced by
// WHERE and the rest by AND. Prices compare whole currency units against the
// stored cents. The minimum rating filters groups with HAVING, and results
// are ordered by nightly cost. limit <= 0 leaves the result unbounded.
func BuildPropertySearch(opts model.PropertySearchOptions, limit int) (string, []any) {
	var b queryBuilder
	b.sql.WriteString(propertySearchBase)

	keyword := "WHERE "
	where := func(cond string) {
		b.line(keyword, cond)
		keyword = "AND "
	}

	if opts.OwnerID != 0 {
		where("owner_id = " + b.bind(opts.OwnerID))
	}
	if opts.City != "" {
		where("LOWER(city) LIKE " + b.bind("%"+strings.ToLower(opts.City)+"%"))
	}
	if opts.MinimumPricePerNight != 0 {
		where("(cost_per_night / 100) >= " + b.bind(opts.MinimumPricePerNight))
	}
	if opts.MaximumPricePerNight != 0 {
		where("(cost_per_night / 100) <= " + b.bind(opts.MaximumPricePerNight))
	}

	b.line("GROUP BY properties.id")

	if opts.MinimumRating != 0 {
		b.line("HAVING AVG(property_reviews.rating) >= ", b.bind(opts.MinimumRating))
	}

	b.line("ORDER BY cost_per_night")
	if limit > 0 {
		b.line("LIMIT ", b.bind(limit))
	}

	return b.sql.String(), b.args
}
