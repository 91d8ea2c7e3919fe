package handler

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/errs"
	"github.com/FarzanehSa/LightBnB/internal/middleware"
	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/server"
	"github.com/labstack/echo/v4"
)

type ReservationService interface {
	ListForGuest(ctx context.Context, guestID int64, p *model.ListReservationsPayload) ([]model.GuestReservation, error)
}

type ReservationsResponse struct {
	Reservations []model.GuestReservation `json:"reservations"`
}

func (r *ReservationsResponse) Count() int { return len(r.Reservations) }

type ReservationHandler struct {
	Handler
	reservations ReservationService
}

func NewReservationHandler(s *server.Server, reservations ReservationService) *ReservationHandler {
	return &ReservationHandler{
		Handler:      NewHandler(s),
		reservations: reservations,
	}
}

// List returns the signed-in guest's reservations.
func (h *ReservationHandler) List(c echo.Context, p *model.ListReservationsPayload) (*ReservationsResponse, error) {
	guestID, ok := middleware.GetUserID(c)
	if !ok {
		return nil, errs.NewUnauthorizedError("Unauthorized", false)
	}

	reservations, err := h.reservations.ListForGuest(c.Request().Context(), guestID, p)
	if err != nil {
		return nil, err
	}
	return &ReservationsResponse{Reservations: reservations}, nil
}
