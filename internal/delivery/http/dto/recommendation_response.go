package dto

import "jobmatch/internal/usecase"

type RecommendationResponse struct {
	Recommendations []usecase.RecommendationItem `json:"recommendations"`
	Count           int                          `json:"count"`
}

func NewRecommendationResponse(items []usecase.RecommendationItem) RecommendationResponse {
	if items == nil {
		items = []usecase.RecommendationItem{}
	}
	return RecommendationResponse{Recommendations: items, Count: len(items)}
}
