package job

import (
	"time"

	"github.com/google/uuid"
)

// Posting is one job in the corpus. Immutable once loaded; the full set
// forms the read-only corpus for the duration of a scoring request.
type Posting struct {
	ID                 uuid.UUID
	Title              string
	Company            string
	Location           string
	RequiredSkills     []string
	Description        string
	ExperienceRequired int
	CreatedAt          time.Time
}
