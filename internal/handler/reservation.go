package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
	"github.com/smartseats/api/internal/service"
)

// Booker is the slice of ReservationService the reservation handlers
// need.  Taking an interface keeps the handlers testable with a stub.
type Booker interface {
	Book(ctx context.Context, userID, eventID, seatID uint64) (*model.Reservation, error)
	Cancel(ctx context.Context, reservationID uint64) error
}

// ReservationHandler adapts the booking protocol to HTTP.  Error mapping:
// absent user/event/seat/reservation -> 404, lost seat race or seat/event
// mismatch -> 409, malformed input -> 400, anything else -> 500 (the one
// class the client may retry verbatim).
type ReservationHandler struct {
	Svc Booker
}

// NewReservationHandler constructs a ReservationHandler; svc must be non-nil.
func NewReservationHandler(svc Booker) *ReservationHandler {
	if svc == nil {
		panic("nil service passed to NewReservationHandler")
	}
	return &ReservationHandler{Svc: svc}
}

// Create handles POST /v1/reservations.  The body must contain user_id,
// event_id and seat_id.  Returns 201 with the created reservation.
func (h *ReservationHandler) Create(c echo.Context) error {
	var body struct {
		UserID  uint64 `json:"user_id"`
		EventID uint64 `json:"event_id"`
		SeatID  uint64 `json:"seat_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.UserID == 0 || body.EventID == 0 || body.SeatID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "user_id, event_id and seat_id are required"})
	}

	rec, err := h.Svc.Book(c.Request().Context(), body.UserID, body.EventID, body.SeatID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, repository.ErrEventNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		case errors.Is(err, repository.ErrSeatNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "seat not found"})
		case errors.Is(err, repository.ErrSeatConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "seat not available"})
		case errors.Is(err, service.ErrInvalidArgument):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"reservation": rec})
}

// Delete handles DELETE /v1/reservations/:id.  Cancelling twice is an
// error: the second call finds no reservation and gets 404.
func (h *ReservationHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
	}
	if err := h.Svc.Cancel(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrReservationNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.NoContent(http.StatusNoContent)
}
