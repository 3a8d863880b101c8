// Package history keeps a local DuckDB record of finished attempts so
// past scores survive without any backend support.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "embed"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/google/uuid"
)

// schemaDDL holds the attempt history schema.
//
//go:embed schema.sql
var schemaDDL string

// Attempt kinds.
const (
	KindQuiz   = "quiz"
	KindReview = "review"
)

// Attempt is one finished quiz or review run.
type Attempt struct {
	ID             uuid.UUID
	Kind           string
	Score          int
	Total          int
	SetIDs         []int
	ElapsedSeconds int
	TakenAt        time.Time
}

// Store wraps the history database.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the history database at path and
// ensures the schema exists.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("history: create dir: %w", err)
	}
	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("history: open: %w", err)
	}
	if _, err := db.Exec(schemaDDL); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: ensure schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a finished attempt. A zero ID is assigned one.
func (s *Store) Record(ctx context.Context, attempt Attempt) error {
	if attempt.Kind != KindQuiz && attempt.Kind != KindReview {
		return fmt.Errorf("history: unknown attempt kind %q", attempt.Kind)
	}
	if attempt.ID == uuid.Nil {
		attempt.ID = uuid.New()
	}
	if attempt.TakenAt.IsZero() {
		attempt.TakenAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO attempts (attempt_id, kind, score, total, set_ids, elapsed_seconds, taken_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		attempt.ID.String(), attempt.Kind, attempt.Score, attempt.Total,
		joinSetIDs(attempt.SetIDs), attempt.ElapsedSeconds, attempt.TakenAt,
	)
	if err != nil {
		return fmt.Errorf("history: record attempt: %w", err)
	}
	return nil
}

// Recent returns up to limit attempts, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT attempt_id, kind, score, total, set_ids, elapsed_seconds, taken_at
		 FROM attempts ORDER BY taken_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var (
			attempt Attempt
			id      string
			setIDs  string
		)
		if err := rows.Scan(&id, &attempt.Kind, &attempt.Score, &attempt.Total,
			&setIDs, &attempt.ElapsedSeconds, &attempt.TakenAt); err != nil {
			return nil, fmt.Errorf("history: scan attempt: %w", err)
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("history: bad attempt id %q: %w", id, err)
		}
		attempt.ID = parsed
		attempt.SetIDs, err = splitSetIDs(setIDs)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, attempt)
	}
	return attempts, rows.Err()
}

// joinSetIDs renders set ids as a comma-separated string.
func joinSetIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// splitSetIDs parses the stored comma-separated set ids.
func splitSetIDs(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.New("history: corrupt set_ids column")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
