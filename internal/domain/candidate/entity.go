package candidate

// Profile is a candidate record built fresh per request from caller input.
// The core never persists it; the service layer upserts it separately.
type Profile struct {
	FullName        string
	Email           string
	Skills          string
	YearsExperience int
	Location        string
	Bio             string
}
