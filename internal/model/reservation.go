package model

import "time"

// Reservation binds one user to exactly one seat for exactly one
// event.  At most one reservation may reference a given seat at any
// time; the seat allocator guarantees this together with a unique
// key on reservations.seat_id.  The event on the reservation must
// always equal the event of the referenced seat.
//
// Cancellation deletes the row; there is no soft CANCELLED state.
//
// Fields:
//  ID        – primary key identifier.
//  UserID    – user who made the reservation.
//  EventID   – event being attended.
//  SeatID    – seat occupied by this reservation.
//  CreatedAt – when the booking was committed.
type Reservation struct {
	ID        uint64    `json:"id"`         // reservations.id
	UserID    uint64    `json:"user_id"`    // reservations.user_id
	EventID   uint64    `json:"event_id"`   // reservations.event_id
	SeatID    uint64    `json:"seat_id"`    // reservations.seat_id
	CreatedAt time.Time `json:"created_at"` // reservations.created_at
}
