package main

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
)

const (
	reserveQ = `UPDATE seats SET status = 'reserved' WHERE id = ? AND event_id = ? AND status = 'available'`
	seatQ    = `SELECT id, event_id, row_label, seat_number, status, created_at, updated_at FROM seats WHERE id = ?`
	insertQ  = `INSERT INTO reservations (user_id, event_id, seat_id) VALUES (?, ?, ?)`
	createdQ = `SELECT created_at FROM reservations WHERE id = ?`
)

func reservedSeat(id, eventID uint64) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows([]string{"id", "event_id", "row_label", "seat_number", "status", "created_at", "updated_at"}).
		AddRow(id, eventID, "A", 2, model.SeatStatusReserved, now, now)
}

func TestPreBookCommitsSeatFlipAndRowTogether(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(reserveQ)).WithArgs(uint64(3), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(seatQ)).WithArgs(uint64(3)).
		WillReturnRows(reservedSeat(3, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertQ)).WithArgs(uint64(1), uint64(2), uint64(3)).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(regexp.QuoteMeta(createdQ)).WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))
	mock.ExpectCommit()

	rec, err := preBook(context.Background(), db,
		repository.NewSeatAllocator(), repository.NewReservationRepo(db), 1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
	// One Begin, one Commit: the seat flip and the reservation row cannot
	// land separately.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreBookRollsBackWhenReservationInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(reserveQ)).WithArgs(uint64(3), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(seatQ)).WithArgs(uint64(3)).
		WillReturnRows(reservedSeat(3, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertQ)).WithArgs(uint64(1), uint64(2), uint64(3)).
		WillReturnError(errors.New("storage fault"))
	mock.ExpectRollback()

	_, err = preBook(context.Background(), db,
		repository.NewSeatAllocator(), repository.NewReservationRepo(db), 1, 2, 3)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreBookTakenSeatRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(reserveQ)).WithArgs(uint64(3), uint64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(seatQ)).WithArgs(uint64(3)).
		WillReturnRows(reservedSeat(3, 2))
	mock.ExpectRollback()

	_, err = preBook(context.Background(), db,
		repository.NewSeatAllocator(), repository.NewReservationRepo(db), 1, 2, 3)
	assert.ErrorIs(t, err, repository.ErrSeatConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
