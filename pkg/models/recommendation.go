package models

import "time"

type RecommendationRequest struct {
	UserID             string   `json:"user_id" validate:"required"`
	Colors             []string `json:"colors,omitempty"`
	Categories         []string `json:"categories,omitempty"`
	NumRecommendations int      `json:"num_recommendations" validate:"omitempty,min=1,max=100"`
}

// Recommendation is one ranked product. SimilarityScore is set only on the
// personalized path; cold-start results carry no score at all, which is
// distinguishable from a zero score.
type Recommendation struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Color           string   `json:"color"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	ImageHref       string   `json:"image_href"`
	SimilarityScore *float64 `json:"similarity_score,omitempty"`
}

type RecommendationResponse struct {
	UserID          string           `json:"user_id"`
	Recommendations []Recommendation `json:"recommendations"`
	ColdStart       bool             `json:"cold_start"`
	GeneratedAt     time.Time        `json:"generated_at"`
}
