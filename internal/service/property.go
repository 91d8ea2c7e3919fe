package service

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/lib/job"
	"github.com/FarzanehSa/LightBnB/internal/logger"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/sqlerr"
	"github.com/rs/zerolog"
)

type PropertyStore interface {
	GetAllProperties(ctx context.Context, opts model.PropertySearchOptions, limit int) ([]model.PropertyWithRating, error)
	AddProperty(ctx context.Context, p model.NewProperty) (*model.Property, error)
}

type ReviewStore interface {
	GetPropertyReviews(ctx context.Context, propertyID int64, limit int) ([]model.Review, error)
}

type PropertyService struct {
	properties PropertyStore
	reviews    ReviewStore
	users      UserStore
	jobs       TaskEnqueuer
	log        *zerolog.Logger
}

func NewPropertyService(properties PropertyStore, reviews ReviewStore, users UserStore, jobs TaskEnqueuer, log *zerolog.Logger) *PropertyService {
	return &PropertyService{
		properties: properties,
		reviews:    reviews,
		users:      users,
		jobs:       jobs,
		log:        log,
	}
}

// Search runs the filtered property search. It never returns a nil slice.
func (s *PropertyService) Search(ctx context.Context, p *model.SearchPropertiesPayload) ([]model.PropertyWithRating, error) {
	properties, err := s.properties.GetAllProperties(ctx, p.Options(), p.Limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if properties == nil {
		properties = []model.PropertyWithRating{}
	}
	return properties, nil
}

// Create lists a property for ownerID and queues the owner's confirmation email.
func (s *PropertyService) Create(ctx context.Context, ownerID int64, p *model.CreatePropertyPayload) (*model.Property, error) {
	property, err := s.properties.AddProperty(ctx, p.NewProperty(ownerID))
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}

	s.notifyOwner(ctx, property)
	return property, nil
}

func (s *PropertyService) notifyOwner(ctx context.Context, property *model.Property) {
	owner, err := s.users.GetUserWithID(ctx, property.OwnerID)
	if err != nil {
		logger.FromContext(ctx, s.log).Warn().Err(err).
			Int64("property_id", property.ID).
			Msg("skipping listing email, owner lookup failed")
		return
	}

	task, err := job.NewPropertyListedTask(job.PropertyListedPayload{
		To:           owner.Email,
		OwnerName:    owner.Name,
		PropertyID:   property.ID,
		Title:        property.Title,
		City:         property.City,
		CostPerNight: property.CostPerNight,
	})
	if err != nil {
		return
	}
	enqueue(ctx, s.jobs, s.log, task)
}

// Reviews lists a property's reviews. It never returns a nil slice.
func (s *PropertyService) Reviews(ctx context.Context, p *model.ListReviewsPayload) ([]model.Review, error) {
	reviews, err := s.reviews.GetPropertyReviews(ctx, p.PropertyID, p.Limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if reviews == nil {
		reviews = []model.Review{}
	}
	return reviews, nil
}
