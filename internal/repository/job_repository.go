package repository

import (
	"context"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/job"
)

type JobRepository interface {
	// ListAll fetches the whole corpus in insertion order; the engine is
	// refitted from this snapshot.
	ListAll(ctx context.Context) ([]job.Posting, error)
	Count(ctx context.Context) (int, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]job.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, company, location, required_skills, description, experience_required, created_at
		 FROM jobs
		 ORDER BY created_at ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Posting, 0)
	for rows.Next() {
		var j job.Posting
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.RequiredSkills, &j.Description, &j.ExperienceRequired, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) Count(ctx context.Context) (int, error) {
	var n int
	row := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM jobs`)
	if err := row.Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
