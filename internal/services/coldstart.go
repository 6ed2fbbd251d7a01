package services

import "github.com/modaiq/stylerec/internal/catalog"

// ColdStartSampler produces a representative candidate set for users with
// no usable preference vector.
type ColdStartSampler struct {
	catalog *catalog.Catalog
	filter  *CandidateFilter
}

func NewColdStartSampler(cat *catalog.Catalog, filter *CandidateFilter) *ColdStartSampler {
	return &ColdStartSampler{catalog: cat, filter: filter}
}

// Sample filters the full catalog, then picks evenly spaced entries so the
// result spans the filtered catalog instead of leading with whatever
// ordering the load happened to produce. Returns catalog positions;
// truncates when the filtered set runs out before n items are collected.
func (s *ColdStartSampler) Sample(crit FilterCriteria, n int) []int {
	if n <= 0 {
		return nil
	}

	filtered := s.filter.FilterCatalog(crit)
	if len(filtered) == 0 {
		return nil
	}

	step := len(filtered) / (n * 2)
	if step < 1 {
		step = 1
	}

	picks := make([]int, 0, n)
	for i := 0; i < len(filtered) && len(picks) < n; i += step {
		picks = append(picks, filtered[i])
	}
	return picks
}
