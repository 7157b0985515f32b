package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/smartseats/api/internal/model"
)

// EventRepo provides access to the `events` table.  Events are
// effectively immutable once their seats are attached, so only create
// and read operations exist here.
type EventRepo struct{ DB *sql.DB }

// NewEventRepo returns an EventRepo bound to the given database.
func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{DB: db} }

// Create inserts an event and populates its generated ID.
func (r *EventRepo) Create(ctx context.Context, e *model.Event) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO events (title, date, venue) VALUES (?, ?, ?)`,
		e.Title, e.Date, e.Venue)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// GetByID fetches an event by id. Returns ErrEventNotFound when absent.
func (r *EventRepo) GetByID(ctx context.Context, id uint64) (*model.Event, error) {
	const q = `SELECT id, title, date, venue, created_at, updated_at FROM events WHERE id = ?`
	var e model.Event
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&e.ID, &e.Title, &e.Date, &e.Venue, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return &e, nil
}
