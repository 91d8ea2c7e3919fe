package service

import (
	"context"

	"github.com/FarzanehSa/LightBnB/internal/model"
	"github.com/FarzanehSa/LightBnB/internal/sqlerr"
)

type ReservationStore interface {
	GetAllReservations(ctx context.Context, guestID int64, limit int) ([]model.GuestReservation, error)
}

type ReservationService struct {
	reservations ReservationStore
}

func NewReservationService(reservations ReservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// ListForGuest returns the guest's reservations, newest first.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID int64, p *model.ListReservationsPayload) ([]model.GuestReservation, error) {
	reservations, err := s.reservations.GetAllReservations(ctx, guestID, p.Limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if reservations == nil {
		reservations = []model.GuestReservation{}
	}
	return reservations, nil
}
