// internal/infra/database/postgres_record_store.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"birthday_reminder/internal/domain/record"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminder_settings (
    id             SMALLINT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
    photo          BOOLEAN NOT NULL,
    repeat_enabled BOOLEAN NOT NULL,
    countdown_days INTEGER NOT NULL CHECK (countdown_days >= 0)
);
CREATE TABLE IF NOT EXISTS contacts (
    name          TEXT PRIMARY KEY,
    date_of_birth DATE NOT NULL
);
CREATE TABLE IF NOT EXISTS anniversaries (
    subject TEXT PRIMARY KEY,
    date    DATE NOT NULL
);`

// PostgresRecordStore implements record.Store with three tables.
type PostgresRecordStore struct {
	db *sql.DB
}

func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{db: db}
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", record.ErrStorageUnavailable, op, err)
}

func (r *PostgresRecordStore) GetSettings(ctx context.Context) (record.Settings, error) {
	query := `SELECT photo, repeat_enabled, countdown_days FROM reminder_settings WHERE id = 1`
	var s record.Settings
	err := r.db.QueryRowContext(ctx, query).Scan(&s.Photo, &s.Repeat, &s.CountdownDays)
	if err != nil {
		if err == sql.ErrNoRows {
			return record.Settings{}, fmt.Errorf("%w: settings not initialized", record.ErrStorageUnavailable)
		}
		return record.Settings{}, unavailable("reading settings", err)
	}
	return s, nil
}

func (r *PostgresRecordStore) GetContacts(ctx context.Context) (record.Dates, error) {
	return r.listDates(ctx, `SELECT name, date_of_birth FROM contacts`, "contacts")
}

func (r *PostgresRecordStore) GetAnniversaries(ctx context.Context) (record.Dates, error) {
	return r.listDates(ctx, `SELECT subject, date FROM anniversaries`, "anniversaries")
}

func (r *PostgresRecordStore) listDates(ctx context.Context, query, table string) (record.Dates, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("listing "+table, err)
	}
	defer rows.Close()

	dates := make(record.Dates)
	for rows.Next() {
		var key string
		var d time.Time
		if err := rows.Scan(&key, &d); err != nil {
			return nil, unavailable("scanning "+table, err)
		}
		dates[key] = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	}
	if err = rows.Err(); err != nil {
		return nil, unavailable("iterating "+table, err)
	}
	return dates, nil
}

// Init creates the schema and the default settings row.
func (r *PostgresRecordStore) Init(ctx context.Context) error {
	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for init: %w", err)
	}
	defer txn.Rollback()

	if _, err := txn.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("error creating schema: %w", err)
	}

	defaults := record.DefaultSettings()
	res, err := txn.ExecContext(ctx,
		`INSERT INTO reminder_settings (id, photo, repeat_enabled, countdown_days)
		 VALUES (1, $1, $2, $3) ON CONFLICT (id) DO NOTHING`,
		defaults.Photo, defaults.Repeat, defaults.CountdownDays)
	if err != nil {
		return fmt.Errorf("error inserting default settings: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return record.ErrAlreadyExists
	}

	return txn.Commit()
}

func (r *PostgresRecordStore) SaveSettings(ctx context.Context, s record.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	query := `UPDATE reminder_settings SET photo = $1, repeat_enabled = $2, countdown_days = $3 WHERE id = 1`
	res, err := r.db.ExecContext(ctx, query, s.Photo, s.Repeat, s.CountdownDays)
	if err != nil {
		return unavailable("saving settings", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: settings not initialized", record.ErrStorageUnavailable)
	}
	return nil
}

func (r *PostgresRecordStore) AddContact(ctx context.Context, name string, dateOfBirth string) error {
	d, err := record.ParseDate(dateOfBirth)
	if err != nil {
		return err
	}
	query := `INSERT INTO contacts (name, date_of_birth) VALUES ($1, $2)
	          ON CONFLICT (name) DO UPDATE SET date_of_birth = EXCLUDED.date_of_birth`
	if _, err := r.db.ExecContext(ctx, query, name, d); err != nil {
		return unavailable("adding contact", err)
	}
	return nil
}

func (r *PostgresRecordStore) RemoveContact(ctx context.Context, name string) error {
	return r.remove(ctx, `DELETE FROM contacts WHERE name = $1`, "contact", name)
}

func (r *PostgresRecordStore) AddAnniversary(ctx context.Context, subject string, date string) error {
	d, err := record.ParseDate(date)
	if err != nil {
		return err
	}
	query := `INSERT INTO anniversaries (subject, date) VALUES ($1, $2)
	          ON CONFLICT (subject) DO UPDATE SET date = EXCLUDED.date`
	if _, err := r.db.ExecContext(ctx, query, subject, d); err != nil {
		return unavailable("adding anniversary", err)
	}
	return nil
}

func (r *PostgresRecordStore) RemoveAnniversary(ctx context.Context, subject string) error {
	return r.remove(ctx, `DELETE FROM anniversaries WHERE subject = $1`, "anniversary", subject)
}

func (r *PostgresRecordStore) remove(ctx context.Context, query, what, key string) error {
	res, err := r.db.ExecContext(ctx, query, key)
	if err != nil {
		return unavailable("removing "+what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return unavailable("removing "+what, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s %q", record.ErrNotFound, what, key)
	}
	return nil
}
