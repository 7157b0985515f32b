package model

import "time"

// Event represents a ticketed happening at a venue.  An event owns
// a set of seats (one row per seat in the `seats` table) which are
// provisioned together with the event and never deleted while a
// reservation could still reference them.
//
// Fields:
//  ID        – primary key identifier.
//  Title     – human readable event title.
//  Date      – when the event takes place.
//  Venue     – name of the venue hosting the event.
//  CreatedAt – creation timestamp.
//  UpdatedAt – last update timestamp.
type Event struct {
	ID        uint64    `json:"id"`         // events.id
	Title     string    `json:"title"`      // events.title
	Date      time.Time `json:"date"`       // events.date
	Venue     string    `json:"venue"`      // events.venue
	CreatedAt time.Time `json:"created_at"` // events.created_at
	UpdatedAt time.Time `json:"updated_at"` // events.updated_at
}
