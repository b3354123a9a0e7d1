package matching

import (
	"sort"
	"strings"
	"sync"
	"time"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
)

type Weights struct {
	Text       float64
	Attribute  float64
	Alpha      float64
	Experience float64
	Location   float64
}

func DefaultWeights() Weights {
	return Weights{
		Text:       0.7,
		Attribute:  0.3,
		Alpha:      0.5,
		Experience: 0.5,
		Location:   0.5,
	}
}

type Options struct {
	Weights           Weights
	MinScore          float64
	TopK              int
	DisableClassifier bool
}

func DefaultOptions() Options {
	return Options{
		Weights:  DefaultWeights(),
		MinScore: 0.1,
		TopK:     20,
	}
}

type ScoredJob struct {
	Job            job.Posting
	MatchScore     float64
	TextScore      float64
	AttributeScore float64
}

// CorpusState is an immutable fit of the job corpus: the vector space, one
// vector per job and the trained classifier. Concurrent scoring requests
// share one state without synchronization; a rebuild produces a fresh state
// that the Engine swaps in atomically.
type CorpusState struct {
	space      *VectorSpace
	jobs       []job.Posting
	vectors    [][]float64
	classifier *Classifier
	classOf    []int
	version    uint64
	fittedAt   time.Time
}

// FitCorpus builds a CorpusState from the job postings. An empty corpus
// yields ErrEmptyCorpus and no partial fit.
func FitCorpus(jobs []job.Posting, opts Options) (*CorpusState, error) {
	if len(jobs) == 0 {
		return nil, ErrEmptyCorpus
	}

	docs := make([][]string, 0, len(jobs))
	labels := make([]string, 0, len(jobs))
	for _, j := range jobs {
		docs = append(docs, jobTokens(j))
		labels = append(labels, j.Title)
	}

	space, err := FitVectorSpace(docs)
	if err != nil {
		return nil, err
	}

	state := &CorpusState{
		space:    space,
		jobs:     jobs,
		vectors:  make([][]float64, len(docs)),
		classOf:  make([]int, len(docs)),
		fittedAt: time.Now().UTC(),
	}
	for i, doc := range docs {
		state.vectors[i] = space.Transform(doc)
		state.classOf[i] = -1
	}

	if !opts.DisableClassifier {
		state.classifier = TrainClassifier(space, docs, labels)
		for i := range jobs {
			state.classOf[i] = state.classifier.ClassIndex(labels[i])
		}
	}
	return state, nil
}

func (s *CorpusState) Version() uint64 {
	if s == nil {
		return 0
	}
	return s.version
}

func (s *CorpusState) FittedAt() time.Time {
	if s == nil {
		return time.Time{}
	}
	return s.fittedAt
}

func (s *CorpusState) JobCount() int {
	if s == nil {
		return 0
	}
	return len(s.jobs)
}

// Score ranks every job in the corpus against the candidate. Pure given the
// state: the same candidate and state always yield identical ordered output.
func (s *CorpusState) Score(p candidate.Profile, opts Options) ([]ScoredJob, error) {
	if p.YearsExperience < 0 {
		return nil, ErrInvalidCandidate
	}
	if s == nil || len(s.jobs) == 0 {
		return []ScoredJob{}, nil
	}

	candTokens := candidateTokens(p)
	candVec := s.space.Transform(candTokens)
	candHasText := false
	for _, v := range candVec {
		if v != 0 {
			candHasText = true
			break
		}
	}

	// A candidate with no recognized vocabulary terms gets text relevance 0
	// for every job; the classifier prior alone is not a text signal.
	var probs []float64
	if candHasText && s.classifier != nil {
		probs = s.classifier.Proba(candTokens)
	}

	w := opts.Weights
	scored := make([]ScoredJob, 0, len(s.jobs))
	for i, j := range s.jobs {
		text := 0.0
		if candHasText {
			cos := Cosine(candVec, s.vectors[i])
			if probs != nil && s.classOf[i] >= 0 {
				text = blendText(cos, probs[s.classOf[i]], w.Alpha)
			} else {
				text = cos
			}
		}

		attr := AttributeScore(
			ExperienceFit(p.YearsExperience, j.ExperienceRequired),
			LocationFit(p.Location, j.Location),
			w.Experience,
			w.Location,
		)

		match := clamp01(w.Text*text + w.Attribute*attr)
		if match < opts.MinScore {
			continue
		}
		scored = append(scored, ScoredJob{
			Job:            j,
			MatchScore:     match,
			TextScore:      text,
			AttributeScore: attr,
		})
	}

	// stable: equal scores keep corpus order
	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].MatchScore > scored[b].MatchScore
	})

	if opts.TopK > 0 && len(scored) > opts.TopK {
		scored = scored[:opts.TopK]
	}
	return scored, nil
}

// Engine owns the current corpus state. Scoring requests read a snapshot;
// Refit builds a new state outside the lock and swaps it in under the write
// lock, so readers block only during the swap.
type Engine struct {
	mu      sync.RWMutex
	opts    Options
	state   *CorpusState
	version uint64
}

func NewEngine(opts Options) *Engine {
	return &Engine{opts: opts}
}

func (e *Engine) Options() Options {
	return e.opts
}

// Refit fits the jobs and installs the new state. On error (empty corpus)
// the previous state is kept.
func (e *Engine) Refit(jobs []job.Posting) (*CorpusState, error) {
	state, err := FitCorpus(jobs, e.opts)
	if err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.version++
	state.version = e.version
	e.state = state
	e.mu.Unlock()
	return state, nil
}

// Snapshot returns the current state, or nil before the first successful
// fit.
func (e *Engine) Snapshot() *CorpusState {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Score ranks the corpus against the candidate using the current state. An
// unfitted engine scores like an empty corpus: empty result, no error.
func (e *Engine) Score(p candidate.Profile) ([]ScoredJob, error) {
	return e.Snapshot().Score(p, e.opts)
}

func jobTokens(j job.Posting) []string {
	skills := strings.Join(j.RequiredSkills, ", ")
	toks := SkillTokens(skills)
	return append(toks, Tokenize(j.Description)...)
}

func candidateTokens(p candidate.Profile) []string {
	toks := SkillTokens(p.Skills)
	return append(toks, Tokenize(p.Bio)...)
}
