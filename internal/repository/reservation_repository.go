package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/smartseats/api/internal/model"
)

// ReservationRepo provides CRUD operations for reservations.  Writes run
// within a caller-supplied transaction so that the reservation row and
// the seat status flip always commit or abort together.  All timestamp
// fields are stored in UTC.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// DB exposes the underlying handle so orchestration code can open
// transactions spanning this repository and the seat allocator.
func (r *ReservationRepo) DB() *sql.DB { return r.db }

// CreateTx inserts a new reservation within the scope of an existing
// transaction.  It populates the generated ID and the DB-assigned
// created_at on the provided record.  The caller must commit or roll
// back the transaction.  A duplicate seat reference trips the unique key
// on seat_id and is reported as ErrSeatConflict; with the allocator
// holding the seat's row lock this should not happen, the key is a
// backstop.
func (r *ReservationRepo) CreateTx(ctx context.Context, tx *sql.Tx, res *model.Reservation) error {
	const q = `INSERT INTO reservations (user_id, event_id, seat_id) VALUES (?, ?, ?)`
	result, err := tx.ExecContext(ctx, q, res.UserID, res.EventID, res.SeatID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrSeatConflict
		}
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)
	// Query back the row to populate the DB-assigned timestamp.
	const sel = `SELECT created_at FROM reservations WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, res.ID).Scan(&res.CreatedAt)
}

// GetByID fetches a reservation by id.  Returns ErrReservationNotFound
// when absent.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT id, user_id, event_id, seat_id, created_at FROM reservations WHERE id = ?`
	var res model.Reservation
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.UserID, &res.EventID, &res.SeatID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// GetForUpdateTx fetches a reservation inside the given transaction and
// locks its row, so a concurrent cancel of the same reservation blocks
// until this transaction finishes and then observes the deletion.
func (r *ReservationRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Reservation, error) {
	const q = `SELECT id, user_id, event_id, seat_id, created_at
	           FROM reservations WHERE id = ? FOR UPDATE`
	var res model.Reservation
	err := tx.QueryRowContext(ctx, q, id).
		Scan(&res.ID, &res.UserID, &res.EventID, &res.SeatID, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

// DeleteTx removes a reservation within the given transaction.  Returns
// ErrReservationNotFound when no row was deleted, which makes a double
// cancel an error rather than a silent no-op.
func (r *ReservationRepo) DeleteTx(ctx context.Context, tx *sql.Tx, id uint64) error {
	result, err := tx.ExecContext(ctx, `DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// ListByUser returns all reservations for the given user, newest first.
// When no reservations exist, an empty slice is returned.
func (r *ReservationRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Reservation, error) {
	const q = `SELECT id, user_id, event_id, seat_id, created_at
	           FROM reservations
	           WHERE user_id = ?
	           ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := rows.Scan(&res.ID, &res.UserID, &res.EventID, &res.SeatID, &res.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
