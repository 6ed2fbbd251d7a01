package services

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/modaiq/stylerec/internal/catalog"
)

// SearchResult is one catalog entry scored against a query vector.
type SearchResult struct {
	Index      int // catalog position
	Distance   float64
	Similarity float64
}

// SimilarityIndex performs exhaustive nearest-neighbor search over the
// catalog embeddings. It is a pure geometric primitive: no filtering, no
// pruning, every query scans the full catalog.
type SimilarityIndex struct {
	catalog *catalog.Catalog
}

func NewSimilarityIndex(cat *catalog.Catalog) *SimilarityIndex {
	return &SimilarityIndex{catalog: cat}
}

// Search returns every product ordered by ascending Euclidean distance to
// the query. Ties keep catalog insertion order so results are
// deterministic. Similarity is 1/(1+distance): monotonic in distance and
// exactly 1 at distance zero.
func (idx *SimilarityIndex) Search(query []float64) []SearchResult {
	results := make([]SearchResult, idx.catalog.Len())
	for i := range results {
		d := floats.Distance(query, idx.catalog.At(i).Embedding, 2)
		results[i] = SearchResult{
			Index:      i,
			Distance:   d,
			Similarity: 1 / (1 + d),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results
}
