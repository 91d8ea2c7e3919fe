package model

import "math"

// Property mirrors a row of the properties table.
//
// CostPerNight is stored in cents.
type Property struct {
	ID                int64  `json:"id"`
	OwnerID           int64  `json:"owner_id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ThumbnailPhotoURL string `json:"thumbnail_photo_url"`
	CoverPhotoURL     string `json:"cover_photo_url"`
	CostPerNight      int64  `json:"cost_per_night"`
	ParkingSpaces     int32  `json:"parking_spaces"`
	NumberOfBathrooms int32  `json:"number_of_bathrooms"`
	NumberOfBedrooms  int32  `json:"number_of_bedrooms"`
	Country           string `json:"country"`
	Street            string `json:"street"`
	City              string `json:"city"`
	Province          string `json:"province"`
	PostCode          string `json:"post_code"`
	Active            bool   `json:"active"`
}

// PropertyWithRating is a property plus the average of its review ratings.
// AverageRating is nil when the property has no reviews.
type PropertyWithRating struct {
	Property
	AverageRating *float64 `json:"average_rating"`
}

// PropertySearchOptions are the optional filters of GetAllProperties.
//
// A zero value means "not set". Prices are whole currency units per night.
type PropertySearchOptions struct {
	OwnerID              int64
	City                 string
	MinimumPricePerNight int64
	MaximumPricePerNight int64
	MinimumRating        float64
}

// NewProperty is the input of PropertyRepository.AddProperty.
//
// CostPerNight is in currency units; the repository stores it in cents.
type NewProperty struct {
	OwnerID           int64
	Title             string
	Description       string
	ThumbnailPhotoURL string
	CoverPhotoURL     string
	CostPerNight      float64
	Street            string
	City              string
	Province          string
	PostCode          string
	Country           string
	ParkingSpaces     int32
	NumberOfBathrooms int32
	NumberOfBedrooms  int32
}

// CostPerNightCents converts the nightly cost to the stored integer cents.
func (p NewProperty) CostPerNightCents() int64 {
	return int64(math.Round(p.CostPerNight * 100))
}

// SearchPropertiesPayload is bound from the query string of GET /api/properties.
type SearchPropertiesPayload struct {
	OwnerID              int64   `query:"owner_id" validate:"omitempty,min=1"`
	City                 string  `query:"city" validate:"omitempty,max=255"`
	MinimumPricePerNight int64   `query:"minimum_price_per_night" validate:"omitempty,min=0"`
	MaximumPricePerNight int64   `query:"maximum_price_per_night" validate:"omitempty,min=0"`
	MinimumRating        float64 `query:"minimum_rating" validate:"omitempty,min=0,max=5"`
	Limit                int     `query:"limit" validate:"omitempty,min=1,max=100"`
}

func (p *SearchPropertiesPayload) Validate() error {
	return validate.Struct(p)
}

// Options converts the payload into repository search options.
func (p *SearchPropertiesPayload) Options() PropertySearchOptions {
	return PropertySearchOptions{
		OwnerID:              p.OwnerID,
		City:                 p.City,
		MinimumPricePerNight: p.MinimumPricePerNight,
		MaximumPricePerNight: p.MaximumPricePerNight,
		MinimumRating:        p.MinimumRating,
	}
}

// CreatePropertyPayload is the body of POST /api/properties.
// The owner is always the authenticated user.
type CreatePropertyPayload struct {
	Title             string  `json:"title" validate:"required,max=255"`
	Description       string  `json:"description"`
	ThumbnailPhotoURL string  `json:"thumbnail_photo_url" validate:"required,url,max=255"`
	CoverPhotoURL     string  `json:"cover_photo_url" validate:"required,url,max=255"`
	CostPerNight      float64 `json:"cost_per_night" validate:"required,gt=0"`
	Street            string  `json:"street" validate:"required,max=255"`
	City              string  `json:"city" validate:"required,max=255"`
	Province          string  `json:"province" validate:"required,max=255"`
	PostCode          string  `json:"post_code" validate:"required,max=255"`
	Country           string  `json:"country" validate:"required,max=255"`
	ParkingSpaces     int32   `json:"parking_spaces" validate:"min=0"`
	NumberOfBathrooms int32   `json:"number_of_bathrooms" validate:"min=0"`
	NumberOfBedrooms  int32   `json:"number_of_bedrooms" validate:"min=0"`
}

func (p *CreatePropertyPayload) Validate() error {
	return validate.Struct(p)
}

// NewProperty builds the repository input for the given owner.
func (p *CreatePropertyPayload) NewProperty(ownerID int64) NewProperty {
	return NewProperty{
		OwnerID:           ownerID,
		Title:             p.Title,
		Description:       p.Description,
		ThumbnailPhotoURL: p.ThumbnailPhotoURL,
		CoverPhotoURL:     p.CoverPhotoURL,
		CostPerNight:      p.CostPerNight,
		Street:            p.Street,
		City:              p.City,
		Province:          p.Province,
		PostCode:          p.PostCode,
		Country:           p.Country,
		ParkingSpaces:     p.ParkingSpaces,
		NumberOfBathrooms: p.NumberOfBathrooms,
		NumberOfBedrooms:  p.NumberOfBedrooms,
	}
}
