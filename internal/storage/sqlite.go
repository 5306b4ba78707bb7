// Package storage provides SQLite persistence for recitation sessions.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/noorlabs/murshid/internal/models"
)

// SQLiteStorage persists recitation sessions in a SQLite database.
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage opens or creates a SQLite database at dbPath and initializes the schema.
// Parent directories are created if they do not exist.
func NewSQLiteStorage(dbPath string) (*SQLiteStorage, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL: %w", err)
	}

	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQLiteStorage{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		surah_id INTEGER NOT NULL,
		surah_name TEXT NOT NULL,
		start_ayah INTEGER NOT NULL,
		end_ayah INTEGER NOT NULL,
		user_text TEXT,
		correct_text TEXT NOT NULL,
		accuracy INTEGER NOT NULL DEFAULT 0,
		errors TEXT,
		start_time TIMESTAMP NOT NULL,
		end_time TIMESTAMP,
		duration INTEGER NOT NULL DEFAULT 0
	);

	CREATE INDEX IF NOT EXISTS idx_sessions_surah_id ON sessions(surah_id);
	CREATE INDEX IF NOT EXISTS idx_sessions_start_time ON sessions(start_time);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveSession inserts the session or replaces an existing row with the same ID.
func (s *SQLiteStorage) SaveSession(ctx context.Context, session *models.TasmeaSession) error {
	errorsJSON, err := json.Marshal(session.Errors)
	if err != nil {
		return fmt.Errorf("failed to marshal errors: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO sessions
		 (id, surah_id, surah_name, start_ayah, end_ayah, user_text, correct_text,
		  accuracy, errors, start_time, end_time, duration)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, session.SurahID, session.SurahName, session.StartAyah, session.EndAyah,
		session.UserText, session.CorrectText, session.Accuracy, string(errorsJSON),
		session.StartTime, session.EndTime, session.Duration,
	)
	return err
}

// GetSession returns a session by ID.
func (s *SQLiteStorage) GetSession(ctx context.Context, id string) (*models.TasmeaSession, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, surah_id, surah_name, start_ayah, end_ayah, user_text, correct_text,
		        accuracy, errors, start_time, end_time, duration
		 FROM sessions WHERE id = ?`, id)

	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session not found: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns sessions newest first. A surahID of 0 returns all
// sessions, otherwise only those for the given surah.
func (s *SQLiteStorage) ListSessions(ctx context.Context, surahID int) ([]*models.TasmeaSession, error) {
	query := `SELECT id, surah_id, surah_name, start_ayah, end_ayah, user_text, correct_text,
	                 accuracy, errors, start_time, end_time, duration
	          FROM sessions`
	args := []any{}
	if surahID > 0 {
		query += " WHERE surah_id = ?"
		args = append(args, surahID)
	}
	query += " ORDER BY start_time DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.TasmeaSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// DeleteSession removes a session by ID.
func (s *SQLiteStorage) DeleteSession(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("session not found: %s", id)
	}
	return nil
}

// Stats aggregates completed sessions. A surahID of 0 covers all surahs,
// otherwise only sessions for that surah. An empty table yields zero stats.
func (s *SQLiteStorage) Stats(ctx context.Context, surahID int) (*models.SessionStats, error) {
	query := `SELECT COUNT(*),
	                 COALESCE(ROUND(AVG(accuracy)), 0),
	                 COALESCE(MAX(accuracy), 0),
	                 COALESCE(SUM(duration), 0)
	          FROM sessions WHERE end_time IS NOT NULL`
	args := []any{}
	if surahID > 0 {
		query += " AND surah_id = ?"
		args = append(args, surahID)
	}

	var stats models.SessionStats
	err := s.db.QueryRowContext(ctx, query, args...).
		Scan(&stats.TotalSessions, &stats.AverageAccuracy, &stats.BestAccuracy, &stats.TotalTime)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stats: %w", err)
	}
	return &stats, nil
}

// Close closes the underlying database.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*models.TasmeaSession, error) {
	var session models.TasmeaSession
	var userText, errorsJSON sql.NullString
	var endTime sql.NullTime

	err := row.Scan(
		&session.ID, &session.SurahID, &session.SurahName,
		&session.StartAyah, &session.EndAyah,
		&userText, &session.CorrectText,
		&session.Accuracy, &errorsJSON,
		&session.StartTime, &endTime, &session.Duration,
	)
	if err != nil {
		return nil, err
	}

	session.UserText = userText.String
	if endTime.Valid {
		t := endTime.Time
		session.EndTime = &t
	}
	session.Errors = []models.TasmeaError{}
	if errorsJSON.Valid && errorsJSON.String != "" {
		if err := json.Unmarshal([]byte(errorsJSON.String), &session.Errors); err != nil {
			return nil, fmt.Errorf("failed to unmarshal errors: %w", err)
		}
	}
	return &session, nil
}
