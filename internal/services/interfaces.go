package services

import (
	"context"

	"github.com/modaiq/stylerec/pkg/models"
)

// Recommender is the engine surface the HTTP boundary consumes.
type Recommender interface {
	GetRecommendations(ctx context.Context, userID string, colors, categories []string, n int) ([]models.Recommendation, bool)
	RecordInteraction(ctx context.Context, userID, productID string, rating models.Rating) (int, error)
}

// InteractionSink receives accepted interaction events for out-of-process
// consumers (analytics, retraining). Best effort: publish failures never
// fail the interaction itself.
type InteractionSink interface {
	Publish(ctx context.Context, userID, productID string, rating models.Rating) error
}
