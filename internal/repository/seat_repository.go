package repository // repository defines data access for seats

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel comparisons

	"github.com/smartseats/api/internal/model"
)

// SeatRepo provides read and provisioning access to the `seats` table.
// It deliberately has no method that writes the status column; that
// mutation belongs to SeatAllocator alone.
type SeatRepo struct {
	db *sql.DB
}

// NewSeatRepo constructs a SeatRepo with the given DB handle.
func NewSeatRepo(db *sql.DB) *SeatRepo {
	return &SeatRepo{db: db}
}

// CreateBulk inserts multiple seats in a single statement.  Seats are
// created when an event is provisioned; status defaults to `available`
// in the database.
func (r *SeatRepo) CreateBulk(ctx context.Context, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	query := `INSERT INTO seats (event_id, row_label, seat_number) VALUES `
	args := make([]interface{}, 0, len(seats)*3)
	for i, s := range seats {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, s.EventID, s.RowLabel, s.SeatNumber)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

// GetByEvent retrieves all seats of an event ordered by row_label then
// seat_number.
func (r *SeatRepo) GetByEvent(ctx context.Context, eventID uint64) ([]model.Seat, error) {
	const q = `SELECT id, event_id, row_label, seat_number, status, created_at, updated_at
	           FROM seats
	           WHERE event_id = ?
	           ORDER BY row_label, seat_number`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(
			&s.ID, &s.EventID, &s.RowLabel, &s.SeatNumber, &s.Status,
			&s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a seat by its id.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT id, event_id, row_label, seat_number, status, created_at, updated_at
	           FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.EventID, &s.RowLabel, &s.SeatNumber, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}
