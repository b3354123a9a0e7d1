package seeder

import (
	"context"

	"jobmatch/internal/database"
)

// SchemaSeeder creates the tables and the lookup indexes the recommender
// queries by (location, experience, notification status).
type SchemaSeeder struct{}

func (SchemaSeeder) Name() string { return "schema" }

func (SchemaSeeder) Run(ctx context.Context, db database.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS jobs (
			id                  UUID PRIMARY KEY,
			title               TEXT NOT NULL,
			company             TEXT NOT NULL DEFAULT '',
			location            TEXT NOT NULL DEFAULT '',
			required_skills     TEXT[] NOT NULL DEFAULT '{}',
			description         TEXT NOT NULL DEFAULT '',
			experience_required INT NOT NULL DEFAULT 0,
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS profiles (
			id               UUID PRIMARY KEY,
			full_name        TEXT NOT NULL,
			email            TEXT NOT NULL UNIQUE,
			skills           TEXT NOT NULL DEFAULT '',
			years_experience INT NOT NULL DEFAULT 0,
			location         TEXT NOT NULL DEFAULT '',
			bio              TEXT NOT NULL DEFAULT '',
			created_at       TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS notifications (
			id                  UUID PRIMARY KEY,
			user_name           TEXT NOT NULL DEFAULT '',
			user_email          TEXT NOT NULL,
			job_title           TEXT NOT NULL DEFAULT '',
			company             TEXT NOT NULL DEFAULT '',
			location            TEXT NOT NULL DEFAULT '',
			description         TEXT NOT NULL DEFAULT '',
			required_skills     TEXT[] NOT NULL DEFAULT '{}',
			experience_required INT NOT NULL DEFAULT 0,
			match_score         DOUBLE PRECISION NOT NULL DEFAULT 0,
			status              TEXT NOT NULL DEFAULT 'unread',
			notification_type   TEXT NOT NULL DEFAULT 'new_candidate',
			created_at          TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_location ON jobs (location)`,
		`CREATE INDEX IF NOT EXISTS idx_jobs_experience ON jobs (experience_required)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_location ON profiles (location)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_experience ON profiles (years_experience)`,
		`CREATE INDEX IF NOT EXISTS idx_notifications_email_status ON notifications (user_email, status)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
