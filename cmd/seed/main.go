// Command seed provisions the schema and loads sample data: two users,
// two events with their seat grids, and one pre-existing reservation.
// The seeded reservation goes through the seat allocator inside a single
// transaction, so the bootstrap respects the same consistency rule as
// live bookings: no seat reserved without a reservation row, and vice
// versa.  Running it against an already seeded database is a no-op.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/smartseats/api/internal/config"
	"github.com/smartseats/api/internal/database"
	"github.com/smartseats/api/internal/model"
	"github.com/smartseats/api/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	ctx := context.Background()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("database: %v", err)
	}

	users := repository.NewUserRepo(db)
	events := repository.NewEventRepo(db)
	seats := repository.NewSeatRepo(db)
	reservations := repository.NewReservationRepo(db)
	allocator := repository.NewSeatAllocator()

	// Idempotence guard: the first seeded user doubles as the marker.
	if _, err := users.GetByEmail(ctx, "alice@example.com"); err == nil {
		log.Println("sample data already present, nothing to do")
		return
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Fatalf("seed: %v", err)
	}

	alice := &model.User{Name: "Alice", Email: "alice@example.com"}
	bob := &model.User{Name: "Bob", Email: "bob@example.com"}
	for _, u := range []*model.User{alice, bob} {
		if err := users.Create(ctx, u); err != nil {
			log.Fatalf("seed user %s: %v", u.Email, err)
		}
	}

	musicFest := &model.Event{
		Title: "Music Fest",
		Date:  time.Date(2025, 12, 1, 19, 0, 0, 0, time.UTC),
		Venue: "Hall A",
	}
	concert := &model.Event{
		Title: "School Concert",
		Date:  time.Date(2025, 12, 15, 18, 30, 0, 0, time.UTC),
		Venue: "Main Hall",
	}
	for _, e := range []*model.Event{musicFest, concert} {
		if err := events.Create(ctx, e); err != nil {
			log.Fatalf("seed event %q: %v", e.Title, err)
		}
		if err := seats.CreateBulk(ctx, seatGrid(e.ID, []string{"A", "B"}, 4)); err != nil {
			log.Fatalf("seed seats for %q: %v", e.Title, err)
		}
	}

	// Pre-book seat A2 of Music Fest for Alice, the way the live path does.
	grid, err := seats.GetByEvent(ctx, musicFest.ID)
	if err != nil {
		log.Fatalf("seed: %v", err)
	}
	var seatA2 *model.Seat
	for i := range grid {
		if grid[i].RowLabel == "A" && grid[i].SeatNumber == 2 {
			seatA2 = &grid[i]
			break
		}
	}
	if seatA2 == nil {
		log.Fatal("seed: seat A2 missing from grid")
	}

	rec, err := preBook(ctx, db, allocator, reservations, alice.ID, musicFest.ID, seatA2.ID)
	if err != nil {
		log.Fatalf("seed reservation: %v", err)
	}

	log.Printf("sample data loaded: reservation %d holds seat %s of %q for %s",
		rec.ID, seatA2.Label(), musicFest.Title, alice.Name)
}

// preBook reserves one seat and records its reservation through the same
// transactional protocol live bookings follow.  Either the seat flip and
// the reservation row both commit or neither does.
func preBook(ctx context.Context, db *sql.DB, allocator *repository.SeatAllocator, reservations *repository.ReservationRepo, userID, eventID, seatID uint64) (*model.Reservation, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()
	if _, err := allocator.TryReserveTx(ctx, tx, seatID, eventID); err != nil {
		return nil, err
	}
	rec := &model.Reservation{UserID: userID, EventID: eventID, SeatID: seatID}
	if err := reservations.CreateTx(ctx, tx, rec); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	committed = true
	return rec, nil
}

// seatGrid builds rows×perRow seats for one event.
func seatGrid(eventID uint64, rows []string, perRow uint32) []model.Seat {
	out := make([]model.Seat, 0, len(rows)*int(perRow))
	for _, r := range rows {
		for n := uint32(1); n <= perRow; n++ {
			out = append(out, model.Seat{EventID: eventID, RowLabel: r, SeatNumber: n})
		}
	}
	return out
}
