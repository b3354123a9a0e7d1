package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"jobmatch/internal/database"

	"github.com/google/uuid"
)

type profileRecord struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Skills          string `json:"skills"`
	YearsExperience int    `json:"years_of_experience"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
}

// ProfilesSeeder loads candidate profiles from a JSON file.
type ProfilesSeeder struct {
	Path  string
	Reset bool
}

func (ProfilesSeeder) Name() string { return "profiles" }

func (s ProfilesSeeder) Run(ctx context.Context, db database.DB) error {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	var records []profileRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("parse %s: %w", s.Path, err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if s.Reset {
		if _, err := tx.Exec(ctx, `DELETE FROM profiles`); err != nil {
			return err
		}
	}

	for _, rec := range records {
		email := strings.TrimSpace(strings.ToLower(rec.Email))
		if email == "" {
			continue
		}
		years := rec.YearsExperience
		if years < 0 {
			years = 0
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO profiles (id, full_name, email, skills, years_experience, location, bio)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (email) DO UPDATE SET
			   full_name = EXCLUDED.full_name,
			   skills = EXCLUDED.skills,
			   years_experience = EXCLUDED.years_experience,
			   location = EXCLUDED.location,
			   bio = EXCLUDED.bio,
			   updated_at = now()`,
			uuid.New(), rec.FullName, email, rec.Skills, years, rec.Location, rec.Bio,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
