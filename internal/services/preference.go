package services

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

// PreferenceVectorComputer derives a single query vector from a user's
// rated history. The vector is ephemeral: recomputed on every request from
// the full history, never cached across calls.
type PreferenceVectorComputer struct {
	catalog *catalog.Catalog
}

func NewPreferenceVectorComputer(cat *catalog.Catalog) *PreferenceVectorComputer {
	return &PreferenceVectorComputer{catalog: cat}
}

// Compute returns the weighted preference vector, or ok=false when the
// history carries no usable signal (no events, or only neutral ratings).
// The vector is the weight-scaled sum of rated embeddings divided by the
// total absolute weight. It is not re-normalized to unit length: magnitude
// grows as the user commits to a style, which shrinks distances on search.
func (c *PreferenceVectorComputer) Compute(history []models.InteractionEvent) ([]float64, bool) {
	vec := make([]float64, c.catalog.Dimension())
	var totalWeight float64

	for _, ev := range history {
		w := ev.Rating.Weight()
		if w == 0 {
			continue
		}
		product, ok := c.catalog.ByID(ev.ProductID)
		if !ok {
			// The store validates ids on record; a miss here would mean a
			// catalog swap mid-process, which does not happen.
			continue
		}
		floats.AddScaled(vec, w, product.Embedding)
		totalWeight += math.Abs(w)
	}

	if totalWeight == 0 {
		return nil, false
	}

	floats.Scale(1/totalWeight, vec)
	return vec, true
}
