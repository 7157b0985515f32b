// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios: absent
// rows map to 404, a lost seat race maps to 409, and everything else is
// treated as a transient storage failure the caller may retry.
package repository

import "errors"

// ErrUserNotFound is returned when a user lookup yields no rows.
var ErrUserNotFound = errors.New("user not found")

// ErrEventNotFound is returned when an event lookup yields no rows.
var ErrEventNotFound = errors.New("event not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrReservationNotFound is returned when a reservation lookup yields no
// rows, including a cancel of an already cancelled reservation.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrSeatConflict is returned when a seat cannot be reserved: it is
// already reserved, or it does not belong to the event the caller named.
// The two cases are deliberately indistinguishable; either way the caller
// must pick another seat, and retrying the same request cannot succeed.
var ErrSeatConflict = errors.New("seat conflict")

// ErrEmailExists is returned when creating a user with an email address
// that is already taken.
var ErrEmailExists = errors.New("email already exists")
