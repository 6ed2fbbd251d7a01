package services

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modaiq/stylerec/pkg/models"
)

func TestInteractionStore_Record(t *testing.T) {
	cat := testCatalog(t,
		product("p1", 1, 0),
		product("p2", 0, 1),
	)
	store := NewInteractionStore(cat, testLogger())

	total, err := store.Record("u1", "p1", models.RatingLove)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	total, err = store.Record("u1", "p2", models.RatingHate)
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	history := store.History("u1")
	require.Len(t, history, 2)
	assert.Equal(t, "p1", history[0].ProductID)
	assert.Equal(t, models.RatingLove, history[0].Rating)
	assert.Equal(t, "p2", history[1].ProductID)
}

func TestInteractionStore_InvalidRating(t *testing.T) {
	cat := testCatalog(t, product("p1", 1, 0))
	store := NewInteractionStore(cat, testLogger())

	for _, rating := range []models.Rating{0, 6, -1} {
		t.Run(fmt.Sprintf("rating_%d", rating), func(t *testing.T) {
			_, err := store.Record("u1", "p1", rating)
			assert.ErrorIs(t, err, ErrInvalidRating)
		})
	}

	// rejected interactions leave no state behind
	assert.Empty(t, store.History("u1"))
	assert.Equal(t, 0, store.Count("u1"))
}

func TestInteractionStore_UnknownProduct(t *testing.T) {
	cat := testCatalog(t, product("p1", 1, 0))
	store := NewInteractionStore(cat, testLogger())

	_, err := store.Record("u1", "p1", models.RatingLike)
	require.NoError(t, err)

	_, err = store.Record("u1", "nonexistent", models.RatingLike)
	assert.ErrorIs(t, err, ErrUnknownProduct)

	// count stays at the prior value
	assert.Equal(t, 1, store.Count("u1"))
}

func TestInteractionStore_UnknownUser(t *testing.T) {
	cat := testCatalog(t, product("p1", 1, 0))
	store := NewInteractionStore(cat, testLogger())

	assert.Empty(t, store.History("ghost"))
	assert.Equal(t, 0, store.Count("ghost"))

	events, rated := store.Snapshot("ghost")
	assert.Empty(t, events)
	assert.Empty(t, rated)
}

func TestInteractionStore_SnapshotIsACopy(t *testing.T) {
	cat := testCatalog(t,
		product("p1", 1, 0),
		product("p2", 0, 1),
	)
	store := NewInteractionStore(cat, testLogger())

	_, err := store.Record("u1", "p1", models.RatingLove)
	require.NoError(t, err)

	events, rated := store.Snapshot("u1")
	events[0].ProductID = "mutated"
	rated["p2"] = struct{}{}

	history := store.History("u1")
	assert.Equal(t, "p1", history[0].ProductID)

	_, freshRated := store.Snapshot("u1")
	assert.Len(t, freshRated, 1)
}

func TestInteractionStore_ConcurrentWrites(t *testing.T) {
	cat := testCatalog(t,
		product("p1", 1, 0),
		product("p2", 0, 1),
	)
	store := NewInteractionStore(cat, testLogger())

	const goroutines = 16
	const perGoroutine = 50

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			userID := fmt.Sprintf("u%d", g%4)
			for i := 0; i < perGoroutine; i++ {
				_, err := store.Record(userID, "p1", models.RatingLike)
				assert.NoError(t, err)
			}
		}(g)
	}
	wg.Wait()

	// 4 users, 4 goroutines each: no appends lost
	for u := 0; u < 4; u++ {
		userID := fmt.Sprintf("u%d", u)
		assert.Equal(t, 4*perGoroutine, store.Count(userID))

		_, rated := store.Snapshot(userID)
		assert.Len(t, rated, 1)
	}
}
