package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
)

// Queries is the read-only slice of the service layer the query handlers
// consume.
type Queries interface {
	SeatsForEvent(ctx context.Context, eventID uint64) ([]model.Seat, error)
	ReservationsForUser(ctx context.Context, userID uint64) ([]model.Reservation, error)
}

// QueryHandler serves the read-only projections.  It never mutates.
type QueryHandler struct {
	Svc Queries
}

// NewQueryHandler constructs a QueryHandler; svc must be non-nil.
func NewQueryHandler(svc Queries) *QueryHandler {
	if svc == nil {
		panic("nil service passed to NewQueryHandler")
	}
	return &QueryHandler{Svc: svc}
}

// SeatsForEvent handles GET /v1/events/:id/seats.  Seats come back
// ordered by row label then seat number.
func (h *QueryHandler) SeatsForEvent(c echo.Context) error {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || eventID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid event id"})
	}
	seats, err := h.Svc.SeatsForEvent(c.Request().Context(), eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "event not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if seats == nil {
		seats = []model.Seat{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": seats})
}

// ReservationsForUser handles GET /v1/users/:id/reservations, newest first.
func (h *QueryHandler) ReservationsForUser(c echo.Context) error {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || userID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}
	items, err := h.Svc.ReservationsForUser(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
