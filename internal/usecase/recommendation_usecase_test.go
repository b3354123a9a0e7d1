package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/matching"
)

type mockJobRepo struct {
	jobs []job.Posting
	err  error
}

func (m mockJobRepo) ListAll(context.Context) ([]job.Posting, error) { return m.jobs, m.err }
func (m mockJobRepo) Count(context.Context) (int, error)             { return len(m.jobs), m.err }

type mockProfileRepo struct {
	upserts int
	err     error
}

func (m *mockProfileRepo) UpsertByEmail(context.Context, candidate.Profile) error {
	m.upserts++
	return m.err
}

type mockNotificationRepo struct {
	inserted int
	err      error
}

func (m *mockNotificationRepo) InsertBatch(_ context.Context, _, _ string, recs []matching.ScoredJob) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	m.inserted += len(recs)
	return len(recs), nil
}

func (m *mockNotificationRepo) CountUnreadByEmail(context.Context, string) (int, error) {
	return m.inserted, nil
}

type mockCache struct {
	store   map[string][]byte
	deleted []string
}

func newMockCache() *mockCache { return &mockCache{store: map[string][]byte{}} }

func (m *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := m.store[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (m *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.store[key] = b
	return nil
}

func (m *mockCache) DeleteByPattern(_ context.Context, pattern string) error {
	m.deleted = append(m.deleted, pattern)
	m.store = map[string][]byte{}
	return nil
}

type mockNotifier struct {
	emails []string
	counts []int
}

func (m *mockNotifier) RecommendationsReady(email string, count int) {
	m.emails = append(m.emails, email)
	m.counts = append(m.counts, count)
}

func seedJobs() []job.Posting {
	return []job.Posting{
		{
			ID:                 uuid.New(),
			Title:              "Backend Engineer",
			Company:            "Acme",
			Location:           "Jakarta",
			RequiredSkills:     []string{"Go", "PostgreSQL"},
			Description:        "Build Go services on PostgreSQL",
			ExperienceRequired: 2,
		},
		{
			ID:                 uuid.New(),
			Title:              "Frontend Engineer",
			Company:            "Acme",
			Location:           "Bandung",
			RequiredSkills:     []string{"React", "CSS"},
			Description:        "Develop web interfaces with React",
			ExperienceRequired: 1,
		},
	}
}

func fittedRecommendation(t *testing.T, jobs []job.Posting) (*Recommendation, *mockNotificationRepo, *mockNotifier, *mockCache) {
	t.Helper()

	engine := matching.NewEngine(matching.DefaultOptions())
	if len(jobs) > 0 {
		if _, err := engine.Refit(jobs); err != nil {
			t.Fatalf("refit: %v", err)
		}
	}

	notifs := &mockNotificationRepo{}
	notifier := &mockNotifier{}
	cache := newMockCache()
	uc := NewRecommendationUsecase(
		engine,
		mockJobRepo{jobs: jobs},
		&mockProfileRepo{},
		notifs,
		cache,
		notifier,
		nil,
	)
	return uc, notifs, notifier, cache
}

func TestRecommend_ReturnsSortedMatches(t *testing.T) {
	uc, notifs, notifier, _ := fittedRecommendation(t, seedJobs())

	items, err := uc.Recommend(context.Background(), candidate.Profile{
		FullName:        "Jane Roe",
		Email:           "jane@example.com",
		Skills:          "Go, PostgreSQL",
		YearsExperience: 3,
		Location:        "Jakarta",
		Bio:             "backend developer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected recommendations")
	}
	if items[0].JobTitle != "Backend Engineer" {
		t.Fatalf("expected Backend Engineer first, got %s", items[0].JobTitle)
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].MatchScore < items[i].MatchScore {
			t.Fatalf("not sorted descending")
		}
	}
	if notifs.inserted != len(items) {
		t.Fatalf("expected %d notifications, got %d", len(items), notifs.inserted)
	}
	if len(notifier.emails) != 1 || notifier.emails[0] != "jane@example.com" {
		t.Fatalf("expected one push event for jane@example.com, got %v", notifier.emails)
	}
}

func TestRecommend_EmptyCorpus(t *testing.T) {
	uc, notifs, _, _ := fittedRecommendation(t, nil)

	items, err := uc.Recommend(context.Background(), candidate.Profile{
		FullName:        "Jane Roe",
		Email:           "jane@example.com",
		Skills:          "Go",
		YearsExperience: 1,
	})
	if err != nil {
		t.Fatalf("expected no error for empty corpus, got %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty result, got %d", len(items))
	}
	if notifs.inserted != 0 {
		t.Fatalf("expected no notifications, got %d", notifs.inserted)
	}
}

func TestRecommend_NegativeExperience(t *testing.T) {
	uc, _, _, _ := fittedRecommendation(t, seedJobs())

	_, err := uc.Recommend(context.Background(), candidate.Profile{
		Email:           "jane@example.com",
		Skills:          "Go",
		YearsExperience: -1,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRecommend_SecondCallHitsCache(t *testing.T) {
	uc, notifs, _, cache := fittedRecommendation(t, seedJobs())
	cand := candidate.Profile{
		FullName:        "Jane Roe",
		Email:           "jane@example.com",
		Skills:          "Go",
		YearsExperience: 2,
		Location:        "Jakarta",
	}

	first, err := uc.Recommend(context.Background(), cand)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(cache.store) == 0 {
		t.Fatalf("expected a cached entry after first call")
	}
	insertedAfterFirst := notifs.inserted

	second, err := uc.Recommend(context.Background(), cand)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != len(first) {
		t.Fatalf("cached result differs: %d vs %d", len(second), len(first))
	}
	if notifs.inserted != insertedAfterFirst {
		t.Fatalf("cache hit must not re-insert notifications")
	}
}

func TestCorpusRefresh_NoJobs(t *testing.T) {
	engine := matching.NewEngine(matching.DefaultOptions())
	uc := NewCorpusUsecase(engine, mockJobRepo{}, newMockCache(), nil)

	_, err := uc.Refresh(context.Background())
	if !errors.Is(err, ErrNoJobsFound) {
		t.Fatalf("expected ErrNoJobsFound, got %v", err)
	}
}

func TestCorpusRefresh_InvalidatesCache(t *testing.T) {
	engine := matching.NewEngine(matching.DefaultOptions())
	cache := newMockCache()
	cache.store["recommend:v0:stale"] = []byte(`[]`)
	uc := NewCorpusUsecase(engine, mockJobRepo{jobs: seedJobs()}, cache, nil)

	info, err := uc.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info.Jobs != 2 {
		t.Fatalf("expected 2 jobs fitted, got %d", info.Jobs)
	}
	if len(cache.deleted) == 0 {
		t.Fatalf("expected cache invalidation after refit")
	}
}

func TestCorpusOverview(t *testing.T) {
	engine := matching.NewEngine(matching.DefaultOptions())
	uc := NewCorpusUsecase(engine, mockJobRepo{jobs: seedJobs()}, nil, nil)

	out, err := uc.Overview(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out.TotalJobs != 2 {
		t.Fatalf("expected 2 total jobs, got %d", out.TotalJobs)
	}
	if out.Fitted {
		t.Fatalf("expected unfitted engine")
	}
	if len(out.Sample) != 1 {
		t.Fatalf("expected 1 sample job, got %d", len(out.Sample))
	}
}
