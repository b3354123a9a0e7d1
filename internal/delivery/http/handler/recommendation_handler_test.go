package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"jobmatch/internal/delivery/http/middleware"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/matching"
	"jobmatch/internal/usecase"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type recommendationData struct {
	Recommendations []usecase.RecommendationItem `json:"recommendations"`
	Count           int                          `json:"count"`
}

func newTestApp(t *testing.T, jobs []job.Posting) *fiber.App {
	t.Helper()

	engine := matching.NewEngine(matching.DefaultOptions())
	if len(jobs) > 0 {
		if _, err := engine.Refit(jobs); err != nil {
			t.Fatalf("refit: %v", err)
		}
	}

	recUC := usecase.NewRecommendationUsecase(engine, staticJobRepo{jobs}, nil, nil, nil, nil, nil)
	corpusUC := usecase.NewCorpusUsecase(engine, staticJobRepo{jobs}, nil, nil)

	f := fiber.New()
	f.Use(middleware.NewErrorMiddleware(nil).Middleware())

	NewRecommendationHandler(recUC).RegisterRoutes(f)
	NewJobsHandler(corpusUC).RegisterRoutes(f)
	NewAdminHandler(corpusUC).RegisterRoutes(f.Group("/admin"))

	return f
}

type staticJobRepo struct {
	jobs []job.Posting
}

func (r staticJobRepo) ListAll(context.Context) ([]job.Posting, error) { return r.jobs, nil }
func (r staticJobRepo) Count(context.Context) (int, error)             { return len(r.jobs), nil }

func testJobs() []job.Posting {
	return []job.Posting{
		{
			ID:                 uuid.New(),
			Title:              "Backend Engineer",
			Company:            "Acme",
			Location:           "Jakarta",
			RequiredSkills:     []string{"Go", "PostgreSQL"},
			Description:        "Build Go services",
			ExperienceRequired: 2,
		},
		{
			ID:                 uuid.New(),
			Title:              "Data Analyst",
			Company:            "Acme",
			Location:           "Singapore",
			RequiredSkills:     []string{"SQL", "Excel"},
			Description:        "Analyze business data",
			ExperienceRequired: 1,
		},
	}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (*semanticResponse, int) {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return &out, resp.StatusCode
}

func TestHandleRecommend_Success(t *testing.T) {
	app := newTestApp(t, testJobs())

	out, code := postJSON(t, app, "/recommendations", candidateBody(candidate.Profile{
		FullName:        "Ayu Lestari",
		Email:           "ayu@example.com",
		Skills:          "Go, PostgreSQL",
		YearsExperience: 3,
		Location:        "Jakarta",
		Bio:             "backend developer",
	}))
	if code != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}

	var data recommendationData
	if err := json.Unmarshal(out.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.Count == 0 || len(data.Recommendations) != data.Count {
		t.Fatalf("expected matching count, got count=%d items=%d", data.Count, len(data.Recommendations))
	}
	if data.Recommendations[0].JobTitle != "Backend Engineer" {
		t.Fatalf("expected Backend Engineer first, got %s", data.Recommendations[0].JobTitle)
	}
}

func TestHandleRecommend_InvalidBody(t *testing.T) {
	app := newTestApp(t, testJobs())

	req := httptest.NewRequest("POST", "/recommendations", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestHandleRecommend_MissingFields(t *testing.T) {
	app := newTestApp(t, testJobs())

	out, code := postJSON(t, app, "/recommendations", map[string]any{
		"email": "not-an-email",
	})
	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}

	var msgs []string
	if err := json.Unmarshal(out.Data, &msgs); err != nil {
		t.Fatalf("decode messages: %v", err)
	}
	if len(msgs) == 0 {
		t.Fatalf("expected field messages in data")
	}
}

func TestHandleRecommend_NegativeExperience(t *testing.T) {
	app := newTestApp(t, testJobs())

	_, code := postJSON(t, app, "/recommendations", map[string]any{
		"full_name":           "Ayu Lestari",
		"email":               "ayu@example.com",
		"skills":              "Go",
		"years_of_experience": -2,
		"location":            "Jakarta",
		"bio":                 "dev",
	})
	if code != fiber.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}
}

func TestHandleOverview(t *testing.T) {
	app := newTestApp(t, testJobs())

	req := httptest.NewRequest("GET", "/jobs?sample=1", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var out semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}

	var data usecase.CorpusOverview
	if err := json.Unmarshal(out.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.TotalJobs != 2 {
		t.Fatalf("expected 2 total jobs, got %d", data.TotalJobs)
	}
	if len(data.Sample) != 1 {
		t.Fatalf("expected 1 sample job, got %d", len(data.Sample))
	}
}

func TestHandleCorpusRefresh_NoJobs(t *testing.T) {
	app := newTestApp(t, nil)

	req := httptest.NewRequest("POST", "/admin/corpus/refresh", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func candidateBody(p candidate.Profile) map[string]any {
	return map[string]any{
		"full_name":           p.FullName,
		"email":               p.Email,
		"skills":              p.Skills,
		"years_of_experience": p.YearsExperience,
		"location":            p.Location,
		"bio":                 p.Bio,
	}
}
