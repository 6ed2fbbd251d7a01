package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Rating is explicit feedback on a five-point scale.
type Rating int

const (
	RatingHate    Rating = 1
	RatingDislike Rating = 2
	RatingNeutral Rating = 3
	RatingLike    Rating = 4
	RatingLove    Rating = 5
)

// Valid reports whether the rating is on the 1-5 scale.
func (r Rating) Valid() bool {
	return r >= RatingHate && r <= RatingLove
}

// Weight maps the rating to a signed preference weight:
// 5 -> +1.0, 4 -> +0.5, 3 -> 0, 2 -> -0.5, 1 -> -1.0.
func (r Rating) Weight() float64 {
	return float64(r-RatingNeutral) / 2.0
}

// ratingAliases mirrors the reaction buttons exposed by the UI.
var ratingAliases = map[string]Rating{
	"love":    RatingLove,
	"like":    RatingLike,
	"dislike": RatingDislike,
	"hate":    RatingHate,
}

// UnmarshalJSON accepts a numeric rating (1-5) or a reaction alias
// ("love", "like", "dislike", "hate"). Unrecognized aliases decode to an
// out-of-range value so the engine rejects them as invalid.
func (r *Rating) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Rating(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("rating must be an integer or a reaction string")
	}

	if alias, ok := ratingAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		*r = alias
	} else {
		*r = 0
	}
	return nil
}

// InteractionEvent is one rated interaction. Events are append-only; the
// timestamp exists for ordering, no decay is applied to older events.
type InteractionEvent struct {
	ProductID string    `json:"product_id"`
	Rating    Rating    `json:"rating"`
	Timestamp time.Time `json:"timestamp"`
}

type InteractionRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Rating    Rating `json:"rating"`
}

type InteractionResponse struct {
	Accepted          bool `json:"accepted"`
	TotalInteractions int  `json:"total_interactions"`
}
