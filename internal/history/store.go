// Package history persists completed inference requests to PostgreSQL so the
// presentation layer can show recent checks. The store is optional; the
// server runs without it.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Entry is one recorded inference.
type Entry struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"createdAt"`
	Symptoms       []string  `json:"symptoms"`
	Description    string    `json:"description"`
	TopDisease     string    `json:"topDisease"`
	TopProbability float64   `json:"topProbability"`
	UrgencyLevel   string    `json:"urgencyLevel"`
	Status         string    `json:"status"`
}

const schema = `
CREATE TABLE IF NOT EXISTS prediction_history (
	id BIGSERIAL PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	symptoms TEXT[] NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	top_disease TEXT NOT NULL DEFAULT '',
	top_probability DOUBLE PRECISION NOT NULL DEFAULT 0,
	urgency_level TEXT NOT NULL,
	status TEXT NOT NULL
)`

// Store wraps a pgx pool with the history schema applied.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens a pool, verifies connectivity and ensures the schema.
func Connect(ctx context.Context, url string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	if s != nil && s.pool != nil {
		s.pool.Close()
	}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Record inserts one completed inference.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO prediction_history
			(symptoms, description, top_disease, top_probability, urgency_level, status)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		e.Symptoms, e.Description, e.TopDisease, e.TopProbability, e.UrgencyLevel, e.Status,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}
	return nil
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, created_at, symptoms, description, top_disease, top_probability, urgency_level, status
		 FROM prediction_history
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := make([]Entry, 0, limit)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.CreatedAt, &e.Symptoms, &e.Description,
			&e.TopDisease, &e.TopProbability, &e.UrgencyLevel, &e.Status); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
