package handler

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/middleware"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

type PropertyService interface {
	Search(ctx context.Context, p *model.SearchPropertiesPayload) ([]model.PropertyWithRating, error)
	Create(ctx context.Context, ownerID int64, p *model.CreatePropertyPayload) (*model.Property, error)
	Reviews(ctx context.Context, p *model.ListReviewsPayload) ([]model.Review, error)
}

type PropertiesResponse struct {
	Properties []model.PropertyWithRating `json:"properties"`
}

func (r *PropertiesResponse) Count() int { return len(r.Properties) }

type ReviewsResponse struct {
	Reviews []model.Review `json:"reviews"`
}

func (r *ReviewsResponse) Count() int { return len(r.Reviews) }

type PropertyHandler struct {
	Handler
	properties PropertyService
}

func NewPropertyHandler(s *server.Server, properties PropertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:    NewHandler(s),
		properties: properties,
	}
}

func (h *PropertyHandler) Search(c echo.Context, p *model.SearchPropertiesPayload) (*PropertiesResponse, error) {
	properties, err := h.properties.Search(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &PropertiesResponse{Properties: properties}, nil
}

// Create lists a property owned by the signed-in user.
func (h *PropertyHandler) Create(c echo.Context, p *model.CreatePropertyPayload) (*model.Property, error) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}
	return h.properties.Create(c.Request().Context(), ownerID, p)
}

func (h *PropertyHandler) Reviews(c echo.Context, p *model.ListReviewsPayload) (*ReviewsResponse, error) {
	reviews, err := h.properties.Reviews(c.Request().Context(), p)
	if err != nil {
		return nil, err
	}
	return &ReviewsResponse{Reviews: reviews}, nil
}
