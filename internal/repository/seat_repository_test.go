package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartseats/api/internal/model"
)

func TestSeatsForEventAreOrderedByRowThenNumber(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "event_id", "row_label", "seat_number", "status", "created_at", "updated_at"}).
		AddRow(1, 7, "A", 1, model.SeatStatusAvailable, now, now).
		AddRow(2, 7, "A", 2, model.SeatStatusReserved, now, now).
		AddRow(3, 7, "B", 1, model.SeatStatusAvailable, now, now)

	// The ordering clause is part of the contract, so the expectation
	// pins the full query.
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, event_id, row_label, seat_number, status, created_at, updated_at FROM seats WHERE event_id = ? ORDER BY row_label, seat_number`)).
		WithArgs(uint64(7)).
		WillReturnRows(rows)

	seats, err := NewSeatRepo(db).GetByEvent(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, seats, 3)
	assert.Equal(t, "A1", seats[0].Label())
	assert.Equal(t, "A2", seats[1].Label())
	assert.Equal(t, "B1", seats[2].Label())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatCreateBulkBuildsOneStatement(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO seats (event_id, row_label, seat_number) VALUES (?, ?, ?),(?, ?, ?)`)).
		WithArgs(uint64(7), "A", uint32(1), uint64(7), "A", uint32(2)).
		WillReturnResult(sqlmock.NewResult(2, 2))

	err = NewSeatRepo(db).CreateBulk(context.Background(), []model.Seat{
		{EventID: 7, RowLabel: "A", SeatNumber: 1},
		{EventID: 7, RowLabel: "A", SeatNumber: 2},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeatCreateBulkEmptyIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, NewSeatRepo(db).CreateBulk(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
