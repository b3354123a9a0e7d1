package repository

import (
	"context"
	"strings"

	"jobmatch/internal/database"
	"jobmatch/internal/domain/candidate"

	"github.com/google/uuid"
)

type ProfileRepository interface {
	// UpsertByEmail stores the candidate record, creating it on first
	// contact and refreshing it on repeat requests.
	UpsertByEmail(ctx context.Context, p candidate.Profile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) UpsertByEmail(ctx context.Context, p candidate.Profile) error {
	email := strings.TrimSpace(strings.ToLower(p.Email))
	_, err := r.db.Exec(ctx,
		`INSERT INTO profiles (id, full_name, email, skills, years_experience, location, bio)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (email) DO UPDATE SET
		   full_name = EXCLUDED.full_name,
		   skills = EXCLUDED.skills,
		   years_experience = EXCLUDED.years_experience,
		   location = EXCLUDED.location,
		   bio = EXCLUDED.bio,
		   updated_at = now()`,
		uuid.New(), p.FullName, email, p.Skills, p.YearsExperience, p.Location, p.Bio,
	)
	return err
}
