package usecase

import (
	"context"
	"errors"
	"log"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/matching"
	"jobmatch/internal/repository"
)

type RecommendationUsecase interface {
	Recommend(ctx context.Context, p candidate.Profile) ([]RecommendationItem, error)
}

type RecommendationItem struct {
	JobTitle           string   `json:"job_title"`
	CompanyName        string   `json:"company_name"`
	JobLocation        string   `json:"job_location"`
	RequiredSkills     []string `json:"required_skills"`
	MatchScore         float64  `json:"match_score"`
	Description        string   `json:"description"`
	ExperienceRequired int      `json:"experience_required"`
}

// Notifier pushes a "recommendations ready" event to connected clients.
type Notifier interface {
	RecommendationsReady(email string, count int)
}

type Recommendation struct {
	engine        *matching.Engine
	jobs          repository.JobRepository
	profiles      repository.ProfileRepository
	notifications repository.NotificationRepository
	cache         RecommendationCache
	notifier      Notifier
	logger        *log.Logger
}

func NewRecommendationUsecase(
	engine *matching.Engine,
	jobs repository.JobRepository,
	profiles repository.ProfileRepository,
	notifications repository.NotificationRepository,
	cache RecommendationCache,
	notifier Notifier,
	logger *log.Logger,
) *Recommendation {
	if logger == nil {
		logger = log.Default()
	}
	return &Recommendation{
		engine:        engine,
		jobs:          jobs,
		profiles:      profiles,
		notifications: notifications,
		cache:         cache,
		notifier:      notifier,
		logger:        logger,
	}
}

func (u *Recommendation) Recommend(ctx context.Context, p candidate.Profile) ([]RecommendationItem, error) {
	if p.YearsExperience < 0 {
		return nil, ErrInvalidInput
	}

	// Normally the engine is fitted at startup or by the admin refresh
	// trigger; a lazy fit only covers the first request after an empty
	// startup corpus.
	if u.engine.Snapshot() == nil {
		if err := u.refit(ctx); err != nil && !errors.Is(err, matching.ErrEmptyCorpus) {
			return nil, ErrInternal
		}
	}

	state := u.engine.Snapshot()
	key := RecommendationCacheKey(p, state.Version())
	if u.cache != nil {
		var cached []RecommendationItem
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	scored, err := state.Score(p, u.engine.Options())
	if err != nil {
		if errors.Is(err, matching.ErrInvalidCandidate) {
			return nil, ErrInvalidInput
		}
		return nil, ErrInternal
	}

	items := make([]RecommendationItem, 0, len(scored))
	for _, s := range scored {
		skills := s.Job.RequiredSkills
		if skills == nil {
			skills = []string{}
		}
		items = append(items, RecommendationItem{
			JobTitle:           s.Job.Title,
			CompanyName:        s.Job.Company,
			JobLocation:        s.Job.Location,
			RequiredSkills:     skills,
			MatchScore:         s.MatchScore,
			Description:        s.Job.Description,
			ExperienceRequired: s.Job.ExperienceRequired,
		})
	}

	u.persistSideEffects(ctx, p, scored)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, items, 0); err != nil {
			u.logger.Printf("recommend cache set failed | email=%s err=%v", p.Email, err)
		}
	}

	return items, nil
}

// persistSideEffects stores the profile and the notifications; failures are
// logged, not surfaced, because the scoring result is already computed.
func (u *Recommendation) persistSideEffects(ctx context.Context, p candidate.Profile, scored []matching.ScoredJob) {
	if u.profiles != nil {
		if err := u.profiles.UpsertByEmail(ctx, p); err != nil {
			u.logger.Printf("profile upsert failed | email=%s err=%v", p.Email, err)
		}
	}

	if len(scored) == 0 {
		return
	}

	if u.notifications != nil {
		n, err := u.notifications.InsertBatch(ctx, p.Email, p.FullName, scored)
		if err != nil {
			u.logger.Printf("notification insert failed | email=%s err=%v", p.Email, err)
			return
		}
		if u.notifier != nil {
			u.notifier.RecommendationsReady(p.Email, n)
		}
	}
}

func (u *Recommendation) refit(ctx context.Context) error {
	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return err
	}
	_, err = u.engine.Refit(jobs)
	return err
}
