package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"jobmatch/internal/domain/candidate"
)

type recommendationCacheKeyInput struct {
	Email           string `json:"email"`
	Skills          string `json:"skills"`
	YearsExperience int    `json:"years_experience"`
	Location        string `json:"location"`
	Bio             string `json:"bio"`
	CorpusVersion   uint64 `json:"corpus_version"`
}

func normalizeCacheValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// RecommendationCacheKey hashes the scoring inputs plus the corpus version,
// so a refit naturally misses every stale entry.
func RecommendationCacheKey(p candidate.Profile, corpusVersion uint64) string {
	in := recommendationCacheKeyInput{
		Email:           normalizeCacheValue(p.Email),
		Skills:          normalizeCacheValue(p.Skills),
		YearsExperience: p.YearsExperience,
		Location:        normalizeCacheValue(p.Location),
		Bio:             normalizeCacheValue(p.Bio),
		CorpusVersion:   corpusVersion,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return fmt.Sprintf("recommend:v%d:%s", corpusVersion, hex.EncodeToString(sum[:]))
}
