package repository

import (
	"context"
	"strings"

	"jobmatch/internal/database"
	"jobmatch/internal/matching"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	// InsertBatch stores one unread notification per recommended job.
	InsertBatch(ctx context.Context, email, name string, recs []matching.ScoredJob) (int, error)
	CountUnreadByEmail(ctx context.Context, email string) (int, error)
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) InsertBatch(ctx context.Context, email, name string, recs []matching.ScoredJob) (int, error) {
	if len(recs) == 0 {
		return 0, nil
	}
	email = strings.TrimSpace(strings.ToLower(email))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	inserted := 0
	for _, rec := range recs {
		j := rec.Job
		_, err := tx.Exec(ctx,
			`INSERT INTO notifications
			   (id, user_name, user_email, job_title, company, location, description,
			    required_skills, experience_required, match_score)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), name, email, j.Title, j.Company, j.Location, j.Description,
			j.RequiredSkills, j.ExperienceRequired, rec.MatchScore,
		)
		if err != nil {
			return 0, err
		}
		inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return inserted, nil
}

func (r *PostgresNotificationRepository) CountUnreadByEmail(ctx context.Context, email string) (int, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	var n int
	row := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM notifications WHERE user_email = $1 AND status = 'unread'`,
		email,
	)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
