package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/modaiq/stylerec/internal/catalog"
	"github.com/modaiq/stylerec/pkg/models"
)

// InteractionStore keeps per-user rated interaction history in process
// memory. Profiles are created on the first write and live until the
// process exits; nothing is persisted.
type InteractionStore struct {
	catalog *catalog.Catalog
	logger  *logrus.Logger

	mu       sync.RWMutex
	profiles map[string]*userProfile
}

// userProfile is one user's mutable state. The profile mutex serializes
// appends so the event list and the derived rated-id set never diverge;
// profiles for different users never block each other.
type userProfile struct {
	mu       sync.Mutex
	events   []models.InteractionEvent
	ratedIDs map[string]struct{}
}

func NewInteractionStore(cat *catalog.Catalog, logger *logrus.Logger) *InteractionStore {
	return &InteractionStore{
		catalog:  cat,
		logger:   logger,
		profiles: make(map[string]*userProfile),
	}
}

func (s *InteractionStore) profile(userID string, create bool) *userProfile {
	s.mu.RLock()
	p := s.profiles[userID]
	s.mu.RUnlock()
	if p != nil || !create {
		return p
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if p = s.profiles[userID]; p == nil {
		p = &userProfile{ratedIDs: make(map[string]struct{})}
		s.profiles[userID] = p
	}
	return p
}

// Record validates and appends one interaction, returning the user's total
// interaction count after the append. Invalid input is rejected before any
// state changes.
func (s *InteractionStore) Record(userID, productID string, rating models.Rating) (int, error) {
	if !rating.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRating, rating)
	}
	if !s.catalog.Has(productID) {
		return 0, fmt.Errorf("%w: %q", ErrUnknownProduct, productID)
	}

	p := s.profile(userID, true)
	p.mu.Lock()
	p.events = append(p.events, models.InteractionEvent{
		ProductID: productID,
		Rating:    rating,
		Timestamp: time.Now(),
	})
	p.ratedIDs[productID] = struct{}{}
	total := len(p.events)
	p.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"user_id":    userID,
		"product_id": productID,
		"rating":     rating,
		"weight":     rating.Weight(),
	}).Debug("Recorded interaction")

	return total, nil
}

// History returns a copy of the user's ordered events. Unknown users are
// not an error; they get an empty history.
func (s *InteractionStore) History(userID string) []models.InteractionEvent {
	events, _ := s.Snapshot(userID)
	return events
}

// Snapshot returns the ordered history and the rated-id set in a single
// critical section so a recommendation request sees a consistent view of
// the user. Both returns are copies; callers can work on them with no lock
// held.
func (s *InteractionStore) Snapshot(userID string) ([]models.InteractionEvent, map[string]struct{}) {
	p := s.profile(userID, false)
	if p == nil {
		return nil, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	events := make([]models.InteractionEvent, len(p.events))
	copy(events, p.events)

	rated := make(map[string]struct{}, len(p.ratedIDs))
	for id := range p.ratedIDs {
		rated[id] = struct{}{}
	}
	return events, rated
}

// Count returns the user's total interaction count.
func (s *InteractionStore) Count(userID string) int {
	p := s.profile(userID, false)
	if p == nil {
		return 0
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}
