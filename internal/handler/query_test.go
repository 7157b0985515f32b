package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
)

type stubQueries struct {
	seatsFn        func(eventID uint64) ([]model.Seat, error)
	reservationsFn func(userID uint64) ([]model.Reservation, error)
}

func (s *stubQueries) SeatsForEvent(_ context.Context, eventID uint64) ([]model.Seat, error) {
	return s.seatsFn(eventID)
}

func (s *stubQueries) ReservationsForUser(_ context.Context, userID uint64) ([]model.Reservation, error) {
	return s.reservationsFn(userID)
}

func getWithParam(t *testing.T, fn echo.HandlerFunc, path, id string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)
	require.NoError(t, fn(c))
	return rec
}

func TestSeatsForEventReturnsOrderedItems(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		seatsFn: func(eventID uint64) ([]model.Seat, error) {
			assert.Equal(t, uint64(7), eventID)
			return []model.Seat{
				{ID: 1, EventID: 7, RowLabel: "A", SeatNumber: 1, Status: model.SeatStatusAvailable},
				{ID: 2, EventID: 7, RowLabel: "A", SeatNumber: 2, Status: model.SeatStatusReserved},
			}, nil
		},
	})
	rec := getWithParam(t, h.SeatsForEvent, "/v1/events/7/seats", "7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items"`)
	assert.Contains(t, rec.Body.String(), `"reserved"`)
}

func TestSeatsForEventEmptyGridIsEmptyArray(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		seatsFn: func(uint64) ([]model.Seat, error) { return nil, nil },
	})
	rec := getWithParam(t, h.SeatsForEvent, "/v1/events/7/seats", "7")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestSeatsForUnknownEventIs404(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		seatsFn: func(uint64) ([]model.Seat, error) { return nil, repository.ErrEventNotFound },
	})
	rec := getWithParam(t, h.SeatsForEvent, "/v1/events/99/seats", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSeatsForEventBadID(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		seatsFn: func(uint64) ([]model.Seat, error) {
			t.Fatal("service must not be called for a bad id")
			return nil, nil
		},
	})
	rec := getWithParam(t, h.SeatsForEvent, "/v1/events/abc/seats", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReservationsForUserReturnsItems(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		reservationsFn: func(userID uint64) ([]model.Reservation, error) {
			assert.Equal(t, uint64(1), userID)
			return []model.Reservation{{ID: 42, UserID: 1, EventID: 2, SeatID: 3}}, nil
		},
	})
	rec := getWithParam(t, h.ReservationsForUser, "/v1/users/1/reservations", "1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
}

func TestReservationsForUnknownUserIs404(t *testing.T) {
	h := NewQueryHandler(&stubQueries{
		reservationsFn: func(uint64) ([]model.Reservation, error) { return nil, repository.ErrUserNotFound },
	})
	rec := getWithParam(t, h.ReservationsForUser, "/v1/users/99/reservations", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
