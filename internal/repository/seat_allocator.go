package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smartseats/api/internal/model"
)

// SeatAllocator owns the seat status transition.  It is the only type in
// the codebase allowed to write seats.status, and every mutation runs
// inside a transaction supplied by the caller.
//
// TryReserveTx is a compare-and-set, not a read-then-write: the flip from
// `available` to `reserved` happens in one conditional UPDATE, so of two
// concurrent transactions racing for the same seat the row lock serializes
// them and exactly one sees an affected row.  The loser gets
// ErrSeatConflict, never a queue slot.
type SeatAllocator struct{}

// NewSeatAllocator constructs a SeatAllocator.
func NewSeatAllocator() *SeatAllocator { return &SeatAllocator{} }

// TryReserveTx atomically flips an available seat of the given event to
// `reserved` and returns the updated seat.  It returns ErrSeatNotFound
// when no seat with this id exists, and ErrSeatConflict when the seat is
// already reserved or belongs to a different event.
func (a *SeatAllocator) TryReserveTx(ctx context.Context, tx *sql.Tx, seatID, eventID uint64) (*model.Seat, error) {
	const q = `UPDATE seats SET status = 'reserved'
	           WHERE id = ? AND event_id = ? AND status = 'available'`
	res, err := tx.ExecContext(ctx, q, seatID, eventID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Nothing matched: the seat is gone, taken, or on another event.
		// Re-read by id only to tell absence apart from a lost race.
		if _, err := seatByIDTx(ctx, tx, seatID); err != nil {
			return nil, err
		}
		return nil, ErrSeatConflict
	}
	return seatByIDTx(ctx, tx, seatID)
}

// ReleaseTx sets a seat back to `available` and returns it.  Releasing a
// seat that is already available is a no-op success, which lets callers
// retry a failed cancellation without special-casing the second attempt.
func (a *SeatAllocator) ReleaseTx(ctx context.Context, tx *sql.Tx, seatID uint64) (*model.Seat, error) {
	const q = `UPDATE seats SET status = 'available' WHERE id = ?`
	if _, err := tx.ExecContext(ctx, q, seatID); err != nil {
		return nil, err
	}
	// MySQL reports zero affected rows for a no-change update, so the
	// re-read, not RowsAffected, decides whether the seat exists.
	return seatByIDTx(ctx, tx, seatID)
}

func seatByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (*model.Seat, error) {
	const q = `SELECT id, event_id, row_label, seat_number, status, created_at, updated_at
	           FROM seats WHERE id = ?`
	var s model.Seat
	err := tx.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.EventID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}
