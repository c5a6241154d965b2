package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"punchclock/internal/sheet"
)

const (
	// migration queries
	createEventsTableSQL = `
  CREATE TABLE IF NOT EXISTS events (
  position INTEGER PRIMARY KEY,
  start_time TEXT NOT NULL,
  stop_time TEXT
  )`

	// event queries
	selectEventsSQL = `SELECT start_time, stop_time FROM events ORDER BY position`
	deleteEventsSQL = `DELETE FROM events`
	insertEventSQL  = `INSERT INTO events (position, start_time, stop_time) VALUES (?, ?, ?)`
)

const timeLayout = time.RFC3339Nano

// SQLite keeps the sheet as rows of an events table, one per event, ordered
// by their position in the log.
type SQLite struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

func NewSQLite(ctx context.Context, path string, logger *zap.Logger) (*SQLite, error) {
	// ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// verify connection with database
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLite{db: db, path: path, logger: logger}

	if err := s.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return s, nil
}

func (s *SQLite) Path() string {
	return s.path
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// runs migrations on open
func (s *SQLite) runMigrations(ctx context.Context) error {
	tables := []string{
		createEventsTableSQL,
	}

	for _, tableSQL := range tables {
		if _, err := s.db.ExecContext(ctx, tableSQL); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}

	return nil
}

func (s *SQLite) Load(ctx context.Context) (*sheet.Sheet, error) {
	rows, err := s.db.QueryContext(ctx, selectEventsSQL)
	if err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}
	defer rows.Close()

	sh := sheet.New()
	for rows.Next() {
		var start string
		var stop sql.NullString
		if err := rows.Scan(&start, &stop); err != nil {
			return nil, &ReadError{Path: s.path, Err: err}
		}

		event, err := parseEventRow(start, stop)
		if err != nil {
			return nil, &ParseError{Path: s.path, Err: err}
		}
		sh.Events = append(sh.Events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, &ReadError{Path: s.path, Err: err}
	}

	s.logger.Debug("loaded sheet",
		zap.String("path", s.path),
		zap.Int("events", len(sh.Events)))
	return sh, nil
}

// Save replaces every stored event inside one transaction.
func (s *SQLite) Save(ctx context.Context, sh *sheet.Sheet) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, deleteEventsSQL); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	stmt, err := tx.PrepareContext(ctx, insertEventSQL)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	defer stmt.Close()

	for i, event := range sh.Events {
		start, err := formatTime(event.Start)
		if err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("event %d: %w", i, err)}
		}
		var stop sql.NullString
		if event.Stop != nil {
			stopText, err := formatTime(*event.Stop)
			if err != nil {
				return &WriteError{Path: s.path, Err: fmt.Errorf("event %d: %w", i, err)}
			}
			stop = sql.NullString{String: stopText, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, i, start, stop); err != nil {
			return &WriteError{Path: s.path, Err: fmt.Errorf("error inserting event %d: %w", i, err)}
		}
	}

	if err := tx.Commit(); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	s.logger.Debug("saved sheet",
		zap.String("path", s.path),
		zap.Int("events", len(sh.Events)))
	return nil
}

// formatTime rejects instants that could not be parsed back on load
func formatTime(t time.Time) (string, error) {
	t = t.UTC()
	if y := t.Year(); y < 0 || y > 9999 {
		return "", fmt.Errorf("time %s is outside the years 0 to 9999", t)
	}
	return t.Format(timeLayout), nil
}

func parseEventRow(start string, stop sql.NullString) (sheet.Event, error) {
	startTime, err := time.Parse(timeLayout, start)
	if err != nil {
		return sheet.Event{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}

	event := sheet.NewEvent(startTime)
	if stop.Valid {
		stopTime, err := time.Parse(timeLayout, stop.String)
		if err != nil {
			return sheet.Event{}, fmt.Errorf("invalid stop time %q: %w", stop.String, err)
		}
		event.Stop = &stopTime
	}
	return event, nil
}
