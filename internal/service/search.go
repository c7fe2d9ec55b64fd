package service

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/shirleys-kitchen/backend/internal/model"
)

const searchResultCap = 10

// SearchService emulates a remote search backend: it holds its own snapshot
// of the collection and answers queries after a randomized delay. It owns no
// persistence; the snapshot is refreshed by the store's change listener.
// A caller that has issued a newer query cancels the old one through its
// context instead of relying on timer ordering.
type SearchService struct {
	mu      sync.RWMutex
	recipes []model.Recipe

	minDelay time.Duration
	jitter   time.Duration
}

// NewSearchService creates a search service with the default 50-200ms
// simulated latency.
func NewSearchService() *SearchService {
	return &SearchService{
		minDelay: 50 * time.Millisecond,
		jitter:   150 * time.Millisecond,
	}
}

// UpdateIndex replaces the snapshot the service searches over.
func (s *SearchService) UpdateIndex(recipes []model.Recipe) {
	s.mu.Lock()
	s.recipes = recipes
	s.mu.Unlock()
}

// SearchRecipes returns up to ten recipes whose title, ingredients, or
// description contain the query (case-insensitive). A blank query resolves
// immediately to an empty result. The simulated latency is skipped when the
// service was built without one (tests); cancellation aborts the wait.
func (s *SearchService) SearchRecipes(ctx context.Context, query string) ([]model.Recipe, error) {
	if strings.TrimSpace(query) == "" {
		return []model.Recipe{}, nil
	}

	if delay := s.delay(); delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	lower := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]model.Recipe, 0, searchResultCap)
	for _, r := range s.recipes {
		if matchesQuery(r, lower) {
			results = append(results, r)
			if len(results) == searchResultCap {
				break
			}
		}
	}
	return results, nil
}

// NewSearchServiceWithLatency creates a search service with custom simulated
// latency. Zero values disable the delay entirely; tests use this.
func NewSearchServiceWithLatency(minDelay, jitter time.Duration) *SearchService {
	return &SearchService{minDelay: minDelay, jitter: jitter}
}

func (s *SearchService) delay() time.Duration {
	if s.jitter <= 0 {
		return s.minDelay
	}
	return s.minDelay + time.Duration(rand.Int63n(int64(s.jitter)))
}

func matchesQuery(r model.Recipe, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(r.Title), lowerQuery) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing), lowerQuery) {
			return true
		}
	}
	return r.Description != "" &&
		strings.Contains(strings.ToLower(r.Description), lowerQuery)
}
