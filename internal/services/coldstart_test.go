package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

// numberedCatalog builds count products on the unit circle so every
// embedding is distinct and already normalized.
func numberedCatalog(t *testing.T, count int) *catalog.Catalog {
	t.Helper()
	products := make([]models.Product, count)
	for i := range products {
		angle := float64(i) / float64(count) * math.Pi / 2
		products[i] = product(fmt.Sprintf("p%d", i), math.Cos(angle), math.Sin(angle))
	}
	cat, err := catalog.New(products)
	if err != nil {
		t.Fatal(err)
	}
	return cat
}

func TestColdStartSampler_EvenSpread(t *testing.T) {
	cat := numberedCatalog(t, 10)
	sampler := NewColdStartSampler(cat, NewCandidateFilter(cat))

	// 10 candidates, 2 requested: stride 10/(2*2)=2
	picks := sampler.Sample(FilterCriteria{}, 2)
	assert.Equal(t, []int{0, 2}, picks)

	// 10 candidates, 5 requested: stride collapses to 1
	picks = sampler.Sample(FilterCriteria{}, 5)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, picks)
}

func TestColdStartSampler_TruncatesSmallCatalog(t *testing.T) {
	cat := numberedCatalog(t, 3)
	sampler := NewColdStartSampler(cat, NewCandidateFilter(cat))

	picks := sampler.Sample(FilterCriteria{}, 5)
	assert.Equal(t, []int{0, 1, 2}, picks)
}

func TestColdStartSampler_RespectsFilters(t *testing.T) {
	cat := testCatalog(t,
		styled("p1", "red", "shoes", 1, 0),
		styled("p2", "blue", "shoes", 0, 1),
		styled("p3", "red", "shirts", 0.6, 0.8),
	)
	sampler := NewColdStartSampler(cat, NewCandidateFilter(cat))

	picks := sampler.Sample(FilterCriteria{Colors: []string{"red"}}, 5)
	assert.Equal(t, []int{0, 2}, picks)
}

func TestColdStartSampler_NothingMatches(t *testing.T) {
	cat := numberedCatalog(t, 4)
	sampler := NewColdStartSampler(cat, NewCandidateFilter(cat))

	assert.Nil(t, sampler.Sample(FilterCriteria{Colors: []string{"purple"}}, 3))
	assert.Nil(t, sampler.Sample(FilterCriteria{}, 0))
}
