package service

import (
	"context"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
)

// QueryService exposes the read-only projections consumed by external
// callers.  It never writes; seat status mutation stays with the
// allocator behind ReservationService.
type QueryService struct {
	users        *repository.UserRepo
	events       *repository.EventRepo
	seats        *repository.SeatRepo
	reservations *repository.ReservationRepo
}

// NewQueryService constructs a QueryService; all dependencies must be non-nil.
func NewQueryService(users *repository.UserRepo, events *repository.EventRepo, seats *repository.SeatRepo, reservations *repository.ReservationRepo) *QueryService {
	if users == nil || events == nil || seats == nil || reservations == nil {
		panic("nil repository passed to NewQueryService")
	}
	return &QueryService{users: users, events: events, seats: seats, reservations: reservations}
}

// SeatsForEvent returns all seats of an event ordered by row label then
// seat number.  Returns ErrEventNotFound for an unknown event.
func (s *QueryService) SeatsForEvent(ctx context.Context, eventID uint64) ([]model.Seat, error) {
	if eventID == 0 {
		return nil, ErrInvalidArgument
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	return s.seats.GetByEvent(ctx, eventID)
}

// ReservationsForUser returns the user's reservations, newest first.
// Returns ErrUserNotFound for an unknown user.
func (s *QueryService) ReservationsForUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	if userID == 0 {
		return nil, ErrInvalidArgument
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.reservations.ListByUser(ctx, userID)
}
