package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiversityReranker_PureRelevanceKeepsOrder(t *testing.T) {
	cat := testCatalog(t,
		product("a", 1, 0),
		product("b", 0.8, 0.6),
		product("c", 0, 1),
	)
	reranker := NewDiversityReranker(cat, 1.0)

	candidates := []SearchResult{
		{Index: 0, Similarity: 1.0},
		{Index: 1, Similarity: 0.6},
		{Index: 2, Similarity: 0.4},
	}
	out := reranker.Rerank(candidates, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "a", cat.At(out[0].Index).ID)
	assert.Equal(t, "b", cat.At(out[1].Index).ID)
	assert.Equal(t, "c", cat.At(out[2].Index).ID)
}

func TestDiversityReranker_PenalizesNearDuplicates(t *testing.T) {
	// b is the second most relevant candidate but nearly collinear with a;
	// at lambda 0.5 the orthogonal c beats it for the second slot.
	cat := testCatalog(t,
		product("a", 1, 0),
		product("b", 0.8, 0.6),
		product("c", 0, 1),
	)
	reranker := NewDiversityReranker(cat, 0.5)

	candidates := []SearchResult{
		{Index: 0, Similarity: 1.0},
		{Index: 1, Similarity: 0.61},
		{Index: 2, Similarity: 0.41},
	}
	// round 2: b scores 0.5*0.61 - 0.5*0.8 = -0.095, c scores 0.5*0.41 - 0 = 0.205
	out := reranker.Rerank(candidates, 2)
	require.Len(t, out, 2)
	assert.Equal(t, "a", cat.At(out[0].Index).ID)
	assert.Equal(t, "c", cat.At(out[1].Index).ID)
}

func TestDiversityReranker_TieKeepsEarlierCandidate(t *testing.T) {
	cat := testCatalog(t,
		product("a", 1, 0, 0),
		product("b", 0, 1, 0),
		product("c", 0, 0, 1),
	)
	reranker := NewDiversityReranker(cat, 0.7)

	// b and c are both orthogonal to a and equally relevant
	candidates := []SearchResult{
		{Index: 0, Similarity: 1.0},
		{Index: 1, Similarity: 0.5},
		{Index: 2, Similarity: 0.5},
	}
	out := reranker.Rerank(candidates, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "a", cat.At(out[0].Index).ID)
	assert.Equal(t, "b", cat.At(out[1].Index).ID)
	assert.Equal(t, "c", cat.At(out[2].Index).ID)
}

func TestDiversityReranker_FewerCandidatesThanRequested(t *testing.T) {
	cat := testCatalog(t,
		product("a", 1, 0),
		product("b", 0, 1),
	)
	reranker := NewDiversityReranker(cat, 0.7)

	candidates := []SearchResult{
		{Index: 0, Similarity: 0.9},
		{Index: 1, Similarity: 0.8},
	}
	out := reranker.Rerank(candidates, 10)
	assert.Len(t, out, 2)
}

func TestDiversityReranker_DegenerateInputs(t *testing.T) {
	cat := testCatalog(t, product("a", 1, 0))
	reranker := NewDiversityReranker(cat, 0.7)

	assert.Nil(t, reranker.Rerank(nil, 5))
	assert.Nil(t, reranker.Rerank([]SearchResult{{Index: 0, Similarity: 1}}, 0))
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 0}, []float64{2, 0}), 1e-12)
	assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-12)
	assert.InDelta(t, -1.0, cosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-12)
	assert.Zero(t, cosineSimilarity([]float64{0, 0}, []float64{1, 0}))
}
