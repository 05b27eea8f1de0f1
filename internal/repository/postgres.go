package repository

import (
	"context"
	"fmt"
	"time"

	"placefinder-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const schema = `
	CREATE TABLE IF NOT EXISTS search_log (
		id TEXT PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL,
		center_lat DOUBLE PRECISION NOT NULL,
		center_lng DOUBLE PRECISION NOT NULL,
		radius DOUBLE PRECISION NOT NULL,
		categories TEXT[] NOT NULL,
		grid_enabled BOOLEAN NOT NULL,
		fetch_all_pages BOOLEAN NOT NULL,
		query_count INTEGER NOT NULL,
		failed_queries INTEGER NOT NULL,
		place_count INTEGER NOT NULL,
		duration_ms BIGINT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS search_log_created_at_idx ON search_log (created_at DESC);
`

// Repository stores search summaries in PostgreSQL
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Migrate creates the search_log table if it does not exist
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// SaveSearch inserts one search summary
func (r *Repository) SaveSearch(ctx context.Context, entry models.SearchLog) error {
	sql := `
		INSERT INTO search_log (
			id, created_at, center_lat, center_lng, radius, categories,
			grid_enabled, fetch_all_pages, query_count, failed_queries, place_count, duration_ms
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, sql,
		entry.ID,
		entry.CreatedAt,
		entry.Center.Lat,
		entry.Center.Lng,
		entry.Radius,
		entry.Categories,
		entry.GridEnabled,
		entry.FetchAllPages,
		entry.QueryCount,
		entry.FailedQueries,
		entry.PlaceCount,
		entry.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("repository: failed to insert search log: %w", err)
	}

	return nil
}

// RecentSearches returns the latest search summaries, newest first
func (r *Repository) RecentSearches(ctx context.Context, limit int) ([]models.SearchLog, error) {
	sql := `
		SELECT
			id,
			created_at,
			center_lat,
			center_lng,
			radius,
			categories,
			grid_enabled,
			fetch_all_pages,
			query_count,
			failed_queries,
			place_count,
			duration_ms
		FROM search_log
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query search log: %w", err)
	}
	defer rows.Close()

	entries := []models.SearchLog{}
	for rows.Next() {
		var (
			entry      models.SearchLog
			durationMs int64
		)
		err := rows.Scan(
			&entry.ID,
			&entry.CreatedAt,
			&entry.Center.Lat,
			&entry.Center.Lng,
			&entry.Radius,
			&entry.Categories,
			&entry.GridEnabled,
			&entry.FetchAllPages,
			&entry.QueryCount,
			&entry.FailedQueries,
			&entry.PlaceCount,
			&durationMs,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan search log: %w", err)
		}
		entry.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return entries, nil
}
