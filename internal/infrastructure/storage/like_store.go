package storage

import (
	"sync"

	"TechDashboard/internal/domain"
	"TechDashboard/internal/ports"
)

// LikeStore keeps like counts in process memory. Entries are never evicted.
type LikeStore struct {
	mu     sync.Mutex
	counts map[string]int
}

var _ ports.LikeStore = (*LikeStore)(nil)

// NewLikeStore returns an empty store.
func NewLikeStore() *LikeStore {
	return &LikeStore{counts: map[string]int{}}
}

// Get returns the current count for url, or 0 if it was never liked.
func (s *LikeStore) Get(url string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.counts[url]
}

// Apply increments on like and decrements on unlike, never going below zero.
// Unknown actions leave the count untouched.
func (s *LikeStore) Apply(url string, action domain.Action) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.counts[url]
	switch action {
	case domain.ActionLike:
		current++
	case domain.ActionUnlike:
		current = max(current-1, 0)
	default:
		return current
	}
	s.counts[url] = current

	return current
}

// Len reports how many URLs have an entry.
func (s *LikeStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.counts)
}
