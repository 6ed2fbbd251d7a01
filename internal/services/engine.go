package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

// RecommendationEngine orchestrates preference computation, similarity
// search, filtering, diversity re-ranking and cold-start sampling. The
// catalog is read-only and shared across requests without synchronization;
// per-user state lives in the InteractionStore.
type RecommendationEngine struct {
	catalog    *catalog.Catalog
	store      *InteractionStore
	preference *PreferenceVectorComputer
	index      *SimilarityIndex
	filter     *CandidateFilter
	reranker   *DiversityReranker
	coldStart  *ColdStartSampler
	sink       InteractionSink
	metrics    *Metrics
	logger     *logrus.Logger
}

func NewRecommendationEngine(
	cat *catalog.Catalog,
	lambda float64,
	sink InteractionSink,
	metrics *Metrics,
	logger *logrus.Logger,
) (*RecommendationEngine, error) {
	if cat == nil || cat.Len() == 0 {
		return nil, catalog.ErrEmptyCatalog
	}
	if lambda <= 0 || lambda > 1 {
		lambda = DefaultLambda
	}

	filter := NewCandidateFilter(cat)
	return &RecommendationEngine{
		catalog:    cat,
		store:      NewInteractionStore(cat, logger),
		preference: NewPreferenceVectorComputer(cat),
		index:      NewSimilarityIndex(cat),
		filter:     filter,
		reranker:   NewDiversityReranker(cat, lambda),
		coldStart:  NewColdStartSampler(cat, filter),
		sink:       sink,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Store exposes the per-user interaction state, e.g. for history endpoints.
func (e *RecommendationEngine) Store() *InteractionStore {
	return e.store
}

// GetRecommendations returns up to n products for the user. The second
// return is true when the cold-start path was taken, in which case the
// items carry no similarity scores. A short or empty result means the
// filters left nothing more to recommend; it is not an error.
//
// The user's history is snapshotted once at the start; the search, filter
// and re-rank work runs on the copy with no lock held, so concurrent
// writers for the same user are never blocked by it.
func (e *RecommendationEngine) GetRecommendations(
	ctx context.Context,
	userID string,
	colors, categories []string,
	n int,
) ([]models.Recommendation, bool) {
	_ = ctx // pure in-memory computation, nothing to cancel

	history, rated := e.store.Snapshot(userID)
	crit := FilterCriteria{Colors: colors, Categories: categories, Exclude: rated}

	query, ok := e.preference.Compute(history)
	if !ok {
		recs := e.coldStartRecommendations(crit, n)
		if e.metrics != nil {
			e.metrics.RecommendationsServed.WithLabelValues("cold_start").Add(float64(len(recs)))
		}
		e.logger.WithFields(logrus.Fields{
			"user_id": userID,
			"count":   len(recs),
		}).Debug("Served cold-start recommendations")
		return recs, true
	}

	var results []SearchResult
	if e.metrics != nil {
		timer := prometheus.NewTimer(e.metrics.SearchDuration)
		results = e.index.Search(query)
		timer.ObserveDuration()
	} else {
		results = e.index.Search(query)
	}

	candidates := e.filter.Apply(results, crit)
	top := e.reranker.Rerank(candidates, n)

	recs := make([]models.Recommendation, len(top))
	for i, r := range top {
		recs[i] = e.toRecommendation(r.Index)
		score := r.Similarity
		recs[i].SimilarityScore = &score
	}

	if e.metrics != nil {
		e.metrics.RecommendationsServed.WithLabelValues("personalized").Add(float64(len(recs)))
	}
	e.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"candidates": len(candidates),
		"count":      len(recs),
	}).Debug("Served personalized recommendations")

	return recs, false
}

// RecordInteraction delegates to the store and reports the user's total
// interaction count. Accepted events are also forwarded to the sink when
// one is configured.
func (e *RecommendationEngine) RecordInteraction(
	ctx context.Context,
	userID, productID string,
	rating models.Rating,
) (int, error) {
	total, err := e.store.Record(userID, productID, rating)
	if err != nil {
		return 0, err
	}

	if e.metrics != nil {
		e.metrics.InteractionsRecorded.Inc()
	}
	if e.sink != nil {
		if err := e.sink.Publish(ctx, userID, productID, rating); err != nil {
			e.logger.WithError(err).Warn("Failed to publish interaction event")
		}
	}
	return total, nil
}

func (e *RecommendationEngine) coldStartRecommendations(crit FilterCriteria, n int) []models.Recommendation {
	picks := e.coldStart.Sample(crit, n)
	recs := make([]models.Recommendation, len(picks))
	for i, idx := range picks {
		recs[i] = e.toRecommendation(idx)
	}
	return recs
}

func (e *RecommendationEngine) toRecommendation(idx int) models.Recommendation {
	p := e.catalog.At(idx)
	return models.Recommendation{
		ID:        p.ID,
		Title:     p.Title,
		Color:     p.Color,
		Category:  p.Category,
		Price:     p.Price,
		ImageHref: p.ImageHref,
	}
}
