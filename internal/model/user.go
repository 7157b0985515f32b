package model

import "time"

// User represents an application user record as stored in the
// `users` table.  A user owns zero or more reservations.  Email
// addresses are unique across the table; the store enforces this
// with a unique key and the repository surfaces violations as
// ErrEmailExists.
//
// Fields:
//  ID        – primary key identifier of the user.
//  Name      – display name.
//  Email     – unique email address, stored lower-cased.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type User struct {
	ID        uint64    `json:"id"`         // users.id
	Name      string    `json:"name"`       // users.name
	Email     string    `json:"email"`      // users.email
	CreatedAt time.Time `json:"created_at"` // users.created_at
	UpdatedAt time.Time `json:"updated_at"` // users.updated_at
}
