package repository

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
)

func TestReservationCreateTxPopulatesIDAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO reservations (user_id, event_id, seat_id) VALUES (?, ?, ?)`)).
		WithArgs(uint64(1), uint64(2), uint64(3)).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT created_at FROM reservations WHERE id = ?`)).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(created))

	tx := beginTx(t, db)
	rec := &model.Reservation{UserID: 1, EventID: 2, SeatID: 3}
	require.NoError(t, NewReservationRepo(db).CreateTx(context.Background(), tx, rec))
	assert.Equal(t, uint64(42), rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationCreateTxDuplicateSeatIsConflict(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO reservations (user_id, event_id, seat_id) VALUES (?, ?, ?)`)).
		WithArgs(uint64(1), uint64(2), uint64(3)).
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry '3' for key 'uq_reservations_seat'"))

	tx := beginTx(t, db)
	err = NewReservationRepo(db).CreateTx(context.Background(), tx, &model.Reservation{UserID: 1, EventID: 2, SeatID: 3})
	assert.ErrorIs(t, err, ErrSeatConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationDeleteTxMissingRowIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM reservations WHERE id = ?`)).
		WithArgs(uint64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	tx := beginTx(t, db)
	err = NewReservationRepo(db).DeleteTx(context.Background(), tx, 9)
	assert.ErrorIs(t, err, ErrReservationNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationsListByUserNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "user_id", "event_id", "seat_id", "created_at"}).
		AddRow(2, 1, 7, 12, now).
		AddRow(1, 1, 7, 11, now.Add(-time.Hour))
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, user_id, event_id, seat_id, created_at FROM reservations WHERE user_id = ? ORDER BY created_at DESC, id DESC`)).
		WithArgs(uint64(1)).
		WillReturnRows(rows)

	list, err := NewReservationRepo(db).ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint64(2), list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users (name, email) VALUES (?, ?)`)).
		WithArgs("Alice", "alice@example.com").
		WillReturnError(errors.New("Error 1062 (23000): Duplicate entry 'alice@example.com' for key 'uq_users_email'"))

	err = NewUserRepo(db).Create(context.Background(), &model.User{Name: "Alice", Email: "Alice@Example.com"})
	assert.ErrorIs(t, err, ErrEmailExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}
