package services

import (
	"golang.org/x/text/cases"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

// Products without a scraped color carry this placeholder; they are
// excluded whenever a color filter is active.
const unknownColor = "unknown"

// FilterCriteria holds a request's candidate constraints. Empty color and
// category lists mean no constraint; when both are set they are ANDed.
type FilterCriteria struct {
	Colors     []string
	Categories []string
	Exclude    map[string]struct{} // already-rated product ids
}

// CandidateFilter removes already-rated products and applies color and
// category constraints. Matching is Unicode case-insensitive. The filter
// never reorders: surviving candidates keep their input order.
type CandidateFilter struct {
	catalog *catalog.Catalog
}

func NewCandidateFilter(cat *catalog.Catalog) *CandidateFilter {
	return &CandidateFilter{catalog: cat}
}

// compiledCriteria is FilterCriteria with the match lists case-folded once.
type compiledCriteria struct {
	colors     map[string]struct{}
	categories map[string]struct{}
	exclude    map[string]struct{}
}

func compile(crit FilterCriteria) compiledCriteria {
	return compiledCriteria{
		colors:     foldSet(crit.Colors),
		categories: foldSet(crit.Categories),
		exclude:    crit.Exclude,
	}
}

func (cc compiledCriteria) matches(p *models.Product) bool {
	if _, rated := cc.exclude[p.ID]; rated {
		return false
	}
	if len(cc.colors) > 0 {
		color := fold(p.Color)
		if color == unknownColor {
			return false
		}
		if _, ok := cc.colors[color]; !ok {
			return false
		}
	}
	if len(cc.categories) > 0 {
		if _, ok := cc.categories[fold(p.Category)]; !ok {
			return false
		}
	}
	return true
}

// Apply filters ordered search results, preserving relevance order.
func (f *CandidateFilter) Apply(results []SearchResult, crit FilterCriteria) []SearchResult {
	cc := compile(crit)
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if cc.matches(f.catalog.At(r.Index)) {
			out = append(out, r)
		}
	}
	return out
}

// FilterCatalog returns the catalog positions passing the criteria, in
// catalog order. The cold-start sampler walks this.
func (f *CandidateFilter) FilterCatalog(crit FilterCriteria) []int {
	cc := compile(crit)
	var out []int
	for i := 0; i < f.catalog.Len(); i++ {
		if cc.matches(f.catalog.At(i)) {
			out = append(out, i)
		}
	}
	return out
}

// fold applies Unicode case folding. A cases.Caser is stateful, so one is
// created per call rather than shared.
func fold(s string) string {
	return cases.Fold().String(s)
}

func foldSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[fold(v)] = struct{}{}
	}
	return set
}
