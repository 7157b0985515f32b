package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Migrate creates the four entity tables when they do not exist yet.
// The statements carry the store-level constraints the rest of the code
// relies on: unique seat position per event, unique user email, and a
// unique seat reference per reservation as a backstop behind the
// allocator's conditional update.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			name       VARCHAR(255)    NOT NULL,
			email      VARCHAR(255)    NOT NULL,
			created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_users_email (email)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS events (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			title      VARCHAR(255)    NOT NULL,
			date       DATETIME        NOT NULL,
			venue      VARCHAR(255)    NOT NULL,
			created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS seats (
			id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			event_id    BIGINT UNSIGNED NOT NULL,
			row_label   VARCHAR(8)      NOT NULL,
			seat_number INT UNSIGNED    NOT NULL,
			status      ENUM('available','reserved') NOT NULL DEFAULT 'available',
			created_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_at  TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_seats_event_row_number (event_id, row_label, seat_number),
			CONSTRAINT fk_seats_event FOREIGN KEY (event_id) REFERENCES events (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

		`CREATE TABLE IF NOT EXISTS reservations (
			id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
			user_id    BIGINT UNSIGNED NOT NULL,
			event_id   BIGINT UNSIGNED NOT NULL,
			seat_id    BIGINT UNSIGNED NOT NULL,
			created_at TIMESTAMP       NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (id),
			UNIQUE KEY uq_reservations_seat (seat_id),
			KEY idx_reservations_user (user_id),
			CONSTRAINT fk_reservations_user  FOREIGN KEY (user_id)  REFERENCES users (id),
			CONSTRAINT fk_reservations_event FOREIGN KEY (event_id) REFERENCES events (id),
			CONSTRAINT fk_reservations_seat  FOREIGN KEY (seat_id)  REFERENCES seats (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
