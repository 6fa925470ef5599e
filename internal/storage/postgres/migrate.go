package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS postgis`,

	`CREATE TABLE IF NOT EXISTS reports (
		id              UUID PRIMARY KEY,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL,
		categories      JSONB NOT NULL DEFAULT '[]'::jsonb,
		geo             GEOMETRY(Point, 4326) NOT NULL,
		status          TEXT NOT NULL DEFAULT 'PENDING',
		important_votes INT NOT NULL DEFAULT 0 CHECK (important_votes >= 0),
		liked_user_ids  UUID[] NOT NULL DEFAULT '{}',
		owner_id        UUID NOT NULL,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_geo ON reports USING GIST (geo)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_status ON reports (status)`,
	`CREATE INDEX IF NOT EXISTS idx_reports_content ON reports (title, description) WHERE status <> 'DELETED'`,

	`CREATE TABLE IF NOT EXISTS report_status_history (
		id              UUID PRIMARY KEY,
		report_id       UUID NOT NULL REFERENCES reports(id),
		user_id         UUID NOT NULL,
		previous_status TEXT NOT NULL,
		new_status      TEXT NOT NULL,
		changed_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_history_report ON report_status_history (report_id, changed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_history_user ON report_status_history (user_id, changed_at)`,
	`CREATE INDEX IF NOT EXISTS idx_history_changed ON report_status_history (changed_at)`,

	`CREATE TABLE IF NOT EXISTS subscribers (
		user_id      UUID PRIMARY KEY,
		email        TEXT NOT NULL,
		geo          GEOMETRY(Point, 4326) NOT NULL,
		radius_km    FLOAT8 NOT NULL CHECK (radius_km > 0),
		push_enabled BOOLEAN NOT NULL DEFAULT true
	)`,
	`CREATE INDEX IF NOT EXISTS idx_subscribers_geo ON subscribers USING GIST (geo)`,

	`CREATE TABLE IF NOT EXISTS categories (
		id   UUID PRIMARY KEY,
		name TEXT NOT NULL UNIQUE
	)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id         UUID PRIMARY KEY,
		report_id  UUID NOT NULL REFERENCES reports(id),
		author_id  UUID NOT NULL,
		body       TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_report ON comments (report_id, created_at)`,
}

// Migrate applies the schema statements in order. Statements are idempotent
// so running at every startup is safe.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
