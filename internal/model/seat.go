package model

import (
	"strconv"
	"time"
)

// Seat status values.  A seat is either free to book or bound to
// exactly one reservation.  The status column is derived state: it
// must read `reserved` iff an active reservation references the
// seat, and only the seat allocator is allowed to write it.
const (
	SeatStatusAvailable = "available"
	SeatStatusReserved  = "reserved"
)

// Seat describes a single seat belonging to one event.  Seats are
// uniquely identified by their event, row label and seat number.
//
// Fields:
//  ID         – primary key identifier.
//  EventID    – event to which this seat belongs.
//  RowLabel   – letter or string designating the row (e.g. A, B, AA).
//  SeatNumber – number of the seat within the row (1-based).
//  Status     – `available` or `reserved`; owned by the seat allocator.
//  CreatedAt  – creation timestamp.
//  UpdatedAt  – last update timestamp.
type Seat struct {
	ID         uint64    `json:"id"`          // seats.id
	EventID    uint64    `json:"event_id"`    // seats.event_id
	RowLabel   string    `json:"row"`         // seats.row_label
	SeatNumber uint32    `json:"number"`      // seats.seat_number
	Status     string    `json:"status"`      // seats.status
	CreatedAt  time.Time `json:"created_at"`  // seats.created_at
	UpdatedAt  time.Time `json:"updated_at"`  // seats.updated_at
}

// Label renders the customary seat name, row label followed by the
// seat number (A1, B12).
func (s Seat) Label() string {
	return s.RowLabel + strconv.FormatUint(uint64(s.SeatNumber), 10)
}
