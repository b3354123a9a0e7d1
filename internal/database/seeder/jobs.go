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

// skillList accepts either a JSON array of skills or the legacy
// comma-separated string the original data files used.
type skillList []string

func (s *skillList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*s = trimAll(arr)
		return nil
	}
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("required_skills must be a string or array of strings")
	}
	*s = trimAll(strings.Split(raw, ","))
	return nil
}

func trimAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	return out
}

type jobRecord struct {
	Title              string    `json:"title"`
	Company            string    `json:"company"`
	Location           string    `json:"location"`
	RequiredSkills     skillList `json:"required_skills"`
	Description        string    `json:"description"`
	ExperienceRequired int       `json:"experience_required"`
}

// JobsSeeder loads job postings from a JSON file. With Reset it erases the
// existing corpus first.
type JobsSeeder struct {
	Path  string
	Reset bool
}

func (JobsSeeder) Name() string { return "jobs" }

func (s JobsSeeder) Run(ctx context.Context, db database.DB) error {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return err
	}

	var records []jobRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return fmt.Errorf("parse %s: %w", s.Path, err)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if s.Reset {
		if _, err := tx.Exec(ctx, `DELETE FROM jobs`); err != nil {
			return err
		}
	}

	for _, rec := range records {
		if strings.TrimSpace(rec.Title) == "" {
			continue
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO jobs (id, title, company, location, required_skills, description, experience_required)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			uuid.New(), rec.Title, rec.Company, rec.Location,
			[]string(rec.RequiredSkills), rec.Description, rec.ExperienceRequired,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
