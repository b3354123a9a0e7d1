package dto

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"jobmatch/internal/domain/candidate"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type RecommendationRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Skills          string `json:"skills" validate:"required"`
	YearsExperience int    `json:"years_of_experience" validate:"min=0"`
	Location        string `json:"location" validate:"required"`
	Bio             string `json:"bio" validate:"required"`
}

// Validate returns one message per failing field, suitable for the response
// envelope's data payload.
func (r RecommendationRequest) Validate() []string {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid request body"}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fieldMessage(fe))
	}
	return out
}

func (r RecommendationRequest) ToProfile() candidate.Profile {
	return candidate.Profile{
		FullName:        strings.TrimSpace(r.FullName),
		Email:           strings.TrimSpace(strings.ToLower(r.Email)),
		Skills:          strings.TrimSpace(r.Skills),
		YearsExperience: r.YearsExperience,
		Location:        strings.TrimSpace(r.Location),
		Bio:             strings.TrimSpace(r.Bio),
	}
}

func fieldMessage(fe validator.FieldError) string {
	field := jsonFieldName(fe.Field())
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param()
	default:
		return field + " is invalid"
	}
}

func jsonFieldName(structField string) string {
	switch structField {
	case "FullName":
		return "full_name"
	case "Email":
		return "email"
	case "Skills":
		return "skills"
	case "YearsExperience":
		return "years_of_experience"
	case "Location":
		return "location"
	case "Bio":
		return "bio"
	default:
		return strings.ToLower(structField)
	}
}
