package animals

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps listings in process memory. It is safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	animals []Animal
	nextID  int64
	now     func() time.Time
}

// NewMemoryStore returns a store pre-filled with seed. Seed IDs are
// reassigned sequentially starting at 1.
func NewMemoryStore(seed ...Animal) *MemoryStore {
	s := &MemoryStore{nextID: 1, now: time.Now}
	for _, a := range seed {
		_, _ = s.Create(context.Background(), a)
	}
	return s
}

func (s *MemoryStore) List(_ context.Context, offset, limit int) ([]Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 {
		offset = 0
	}
	if offset >= len(s.animals) || limit <= 0 {
		return []Animal{}, nil
	}
	end := min(offset+limit, len(s.animals))
	return slices.Clone(s.animals[offset:end]), nil
}

func (s *MemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.animals), nil
}

func (s *MemoryStore) Get(_ context.Context, id int64) (Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, a := range s.animals {
		if a.ID == id {
			return a, nil
		}
	}
	return Animal{}, ErrNotFound
}

func (s *MemoryStore) Search(_ context.Context, query string) ([]Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []Animal{}
	for _, a := range s.animals {
		if matches(a, query) {
			results = append(results, a)
		}
	}
	return results, nil
}

func (s *MemoryStore) Random(_ context.Context, n int) ([]Animal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n = min(n, len(s.animals))
	if n <= 0 {
		return []Animal{}, nil
	}

	picked := make([]Animal, 0, n)
	for _, i := range rand.Perm(len(s.animals))[:n] {
		picked = append(picked, s.animals[i])
	}
	return picked, nil
}

func (s *MemoryStore) Create(_ context.Context, a Animal) (Animal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a.ID = s.nextID
	s.nextID++
	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now().UTC()
	}
	s.animals = append(s.animals, a)
	return a, nil
}

func matches(a Animal, query string) bool {
	for _, field := range []string{a.Name, a.Species, a.Breed, a.Description, a.City} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
