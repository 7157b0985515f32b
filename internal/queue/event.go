// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// ReservationConfirmedEvent is published after a booking transaction
// commits.  It carries enough context for downstream consumers to log or
// notify without querying the primary database.
type ReservationConfirmedEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	UserID        uint64 `json:"user_id"`
	EventID       uint64 `json:"event_id"`
	SeatID        uint64 `json:"seat_id"`
	EventTitle    string `json:"event_title"`
	Venue         string `json:"venue"`
	SeatLabel     string `json:"seat"`
	ConfirmedAt   string `json:"confirmed_at"`
}
