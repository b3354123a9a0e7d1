package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"jobmatch/internal/matching"
	"jobmatch/internal/repository"
)

type CorpusUsecase interface {
	Refresh(ctx context.Context) (CorpusInfo, error)
	Overview(ctx context.Context, sampleSize int) (CorpusOverview, error)
}

type CorpusInfo struct {
	Jobs     int       `json:"jobs"`
	Version  uint64    `json:"version"`
	FittedAt time.Time `json:"fitted_at"`
}

type CorpusOverview struct {
	TotalJobs int         `json:"total_jobs"`
	Fitted    bool        `json:"fitted"`
	Version   uint64      `json:"version"`
	FittedAt  *time.Time  `json:"fitted_at,omitempty"`
	Sample    []SampleJob `json:"sample_jobs"`
}

type SampleJob struct {
	Title              string   `json:"title"`
	Company            string   `json:"company"`
	Location           string   `json:"location"`
	RequiredSkills     []string `json:"required_skills"`
	ExperienceRequired int      `json:"experience_required"`
}

type Corpus struct {
	engine *matching.Engine
	jobs   repository.JobRepository
	cache  RecommendationCache
	logger *log.Logger
}

func NewCorpusUsecase(engine *matching.Engine, jobs repository.JobRepository, cache RecommendationCache, logger *log.Logger) *Corpus {
	if logger == nil {
		logger = log.Default()
	}
	return &Corpus{engine: engine, jobs: jobs, cache: cache, logger: logger}
}

// Refresh reloads the corpus from the store and refits the engine. This is
// the single exclusive rebuild path: scoring requests keep reading the old
// state until the new one is swapped in.
func (u *Corpus) Refresh(ctx context.Context) (CorpusInfo, error) {
	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return CorpusInfo{}, ErrInternal
	}

	state, err := u.engine.Refit(jobs)
	if err != nil {
		if errors.Is(err, matching.ErrEmptyCorpus) {
			return CorpusInfo{}, ErrNoJobsFound
		}
		return CorpusInfo{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, "recommend:*"); err != nil {
			u.logger.Printf("cache invalidation failed after refit | err=%v", err)
		}
	}

	u.logger.Printf("corpus refitted | jobs=%d version=%d", state.JobCount(), state.Version())
	return CorpusInfo{Jobs: state.JobCount(), Version: state.Version(), FittedAt: state.FittedAt()}, nil
}

func (u *Corpus) Overview(ctx context.Context, sampleSize int) (CorpusOverview, error) {
	if sampleSize <= 0 {
		sampleSize = 3
	}

	total, err := u.jobs.Count(ctx)
	if err != nil {
		return CorpusOverview{}, ErrInternal
	}

	out := CorpusOverview{TotalJobs: total, Sample: []SampleJob{}}

	state := u.engine.Snapshot()
	if state != nil {
		out.Fitted = true
		out.Version = state.Version()
		at := state.FittedAt()
		out.FittedAt = &at
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return CorpusOverview{}, ErrInternal
	}
	for i, j := range jobs {
		if i >= sampleSize {
			break
		}
		skills := j.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		out.Sample = append(out.Sample, SampleJob{
			Title:              j.Title,
			Company:            j.Company,
			Location:           j.Location,
			RequiredSkills:     skills,
			ExperienceRequired: j.ExperienceRequired,
		})
	}
	return out, nil
}
