package services

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/modaiq/stylerec/internal/catalog"
)

// DefaultLambda is the default relevance/diversity trade-off for MMR.
const DefaultLambda = 0.7

// DiversityReranker re-orders filtered candidates with Maximal Marginal
// Relevance. Higher lambda biases toward relevance and tolerates
// near-duplicate top matches; lower lambda spreads the selection across
// the candidate embedding space. This is what keeps a sharply focused
// preference vector from producing n near-identical items.
type DiversityReranker struct {
	catalog *catalog.Catalog
	lambda  float64
}

func NewDiversityReranker(cat *catalog.Catalog, lambda float64) *DiversityReranker {
	return &DiversityReranker{catalog: cat, lambda: lambda}
}

// Rerank greedily selects up to n candidates. Each round scores every
// unselected candidate as
//
//	lambda*relevance - (1-lambda)*max cosine similarity to the selected set
//
// and takes the best; the first round has no diversity term, so it picks
// the most relevant candidate. Ties keep the incoming relevance order
// (which itself broke ties by catalog order).
func (r *DiversityReranker) Rerank(candidates []SearchResult, n int) []SearchResult {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}

	remaining := make([]SearchResult, len(candidates))
	copy(remaining, candidates)
	selected := make([]SearchResult, 0, n)

	for len(selected) < n && len(remaining) > 0 {
		bestIdx := 0
		bestScore := math.Inf(-1)

		for i, c := range remaining {
			score := r.lambda * c.Similarity
			if len(selected) > 0 {
				maxSim := math.Inf(-1)
				for _, s := range selected {
					sim := cosineSimilarity(
						r.catalog.At(c.Index).Embedding,
						r.catalog.At(s.Index).Embedding,
					)
					if sim > maxSim {
						maxSim = sim
					}
				}
				score -= (1 - r.lambda) * maxSim
			}
			// Strict comparison: on a tie the earlier candidate wins.
			if score > bestScore {
				bestScore = score
				bestIdx = i
			}
		}

		selected = append(selected, remaining[bestIdx])
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}

// cosineSimilarity tolerates non-unit inputs even though catalog
// embeddings are normalized at load.
func cosineSimilarity(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}
