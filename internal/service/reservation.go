// Package service implements the booking and cancellation protocol on top
// of the repository layer.  Handlers stay thin; every transactional rule
// lives here.
package service

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/queue"
	"github.com/smartseats/api/internal/repository"
)

// ErrInvalidArgument is returned when an operation receives a zero or
// otherwise malformed identifier.
var ErrInvalidArgument = errors.New("invalid argument")

// EventPublisher emits domain events after a booking commits.  A nil
// publisher disables publishing.
type EventPublisher interface {
	PublishReservationConfirmed(ctx context.Context, ev queue.ReservationConfirmedEvent) error
}

// ReservationService orchestrates booking and cancellation.  Both
// operations open one transaction spanning the seat status flip and the
// reservation row, so a seat can never be observed reserved without a
// matching reservation, or vice versa.
type ReservationService struct {
	db           *sql.DB
	users        *repository.UserRepo
	events       *repository.EventRepo
	reservations *repository.ReservationRepo
	allocator    *repository.SeatAllocator
	publisher    EventPublisher
}

// NewReservationService constructs a ReservationService.  The publisher
// may be nil; every other dependency must be non-nil.
func NewReservationService(db *sql.DB, users *repository.UserRepo, events *repository.EventRepo, reservations *repository.ReservationRepo, allocator *repository.SeatAllocator, publisher EventPublisher) *ReservationService {
	if db == nil || users == nil || events == nil || reservations == nil || allocator == nil {
		panic("nil dependency passed to NewReservationService")
	}
	return &ReservationService{
		db:           db,
		users:        users,
		events:       events,
		reservations: reservations,
		allocator:    allocator,
		publisher:    publisher,
	}
}

// Book reserves the given seat of the given event for the given user and
// returns the created reservation.
//
// Failure modes: ErrUserNotFound / ErrEventNotFound when the referenced
// rows are absent, ErrSeatNotFound when the seat does not exist,
// ErrSeatConflict when the seat is already reserved or belongs to a
// different event.  Conflicts are terminal for this call; the caller must
// pick another seat.  Any other error means the transaction did not
// commit and the whole call is safe to retry.
func (s *ReservationService) Book(ctx context.Context, userID, eventID, seatID uint64) (*model.Reservation, error) {
	if userID == 0 || eventID == 0 || seatID == 0 {
		return nil, ErrInvalidArgument
	}
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	seat, err := s.allocator.TryReserveTx(ctx, tx, seatID, eventID)
	if err != nil {
		return nil, err
	}

	rec := &model.Reservation{UserID: userID, EventID: eventID, SeatID: seatID}
	if err := s.reservations.CreateTx(ctx, tx, rec); err != nil {
		// Rolling back also reverts the seat to available; no partial state.
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true

	s.publishConfirmed(ctx, rec, event, seat)
	return rec, nil
}

// Cancel deletes the reservation and releases its seat as one
// transaction.  Cancelling an unknown or already cancelled reservation
// returns ErrReservationNotFound.
func (s *ReservationService) Cancel(ctx context.Context, reservationID uint64) error {
	if reservationID == 0 {
		return ErrInvalidArgument
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	rec, err := s.reservations.GetForUpdateTx(ctx, tx, reservationID)
	if err != nil {
		return err
	}
	if err := s.reservations.DeleteTx(ctx, tx, reservationID); err != nil {
		return err
	}
	if _, err := s.allocator.ReleaseTx(ctx, tx, rec.SeatID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// publishConfirmed emits the post-commit event.  Best effort: a broker
// outage is logged and otherwise ignored.
func (s *ReservationService) publishConfirmed(ctx context.Context, rec *model.Reservation, event *model.Event, seat *model.Seat) {
	if s.publisher == nil {
		return
	}
	ev := queue.ReservationConfirmedEvent{
		ReservationID: rec.ID,
		UserID:        rec.UserID,
		EventID:       rec.EventID,
		SeatID:        rec.SeatID,
		EventTitle:    event.Title,
		Venue:         event.Venue,
		SeatLabel:     seat.Label(),
		ConfirmedAt:   rec.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := s.publisher.PublishReservationConfirmed(ctx, ev); err != nil {
		log.Printf("reservation: publish confirmed event failed: %v", err)
	}
}
