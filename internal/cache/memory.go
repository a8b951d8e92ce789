package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/quantmind-br/themebundle/internal/domain"
	"golang.org/x/sync/singleflight"
)

// errNilArtifact is returned when a compute function yields neither a value nor an error
var errNilArtifact = errors.New("compute returned no artifact")

// MemoryStore keeps artifacts in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]*domain.CombinedArtifact
	group singleflight.Group
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*domain.CombinedArtifact)}
}

// GetOrCompute returns the stored artifact or computes and stores it.
// Concurrent misses for one key share a single compute call.
func (s *MemoryStore) GetOrCompute(ctx context.Context, key string, compute domain.ComputeFunc) (*domain.CombinedArtifact, error) {
	if a, ok := s.lookup(key); ok {
		return a, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		// a flight that finished just before this one may have stored it
		if a, ok := s.lookup(key); ok {
			return a, nil
		}
		a, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, errNilArtifact
		}
		s.mu.Lock()
		s.items[key] = a
		s.mu.Unlock()
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CombinedArtifact), nil
}

// Get retrieves an artifact from the store
func (s *MemoryStore) Get(ctx context.Context, key string) (*domain.CombinedArtifact, error) {
	if a, ok := s.lookup(key); ok {
		return a, nil
	}
	return nil, domain.ErrCacheMiss
}

// Delete removes a key from the store
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

// Clear removes all entries
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]*domain.CombinedArtifact)
	return nil
}

// Size returns the number of entries
func (s *MemoryStore) Size() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.items))
}

// Close releases store resources
func (s *MemoryStore) Close() error {
	return s.Clear()
}

func (s *MemoryStore) lookup(key string) (*domain.CombinedArtifact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.items[key]
	return a, ok
}

// Stats returns store statistics
func (s *MemoryStore) Stats() map[string]interface{} {
	return map[string]interface{}{
		"entries": s.Size(),
	}
}
