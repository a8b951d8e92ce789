package cache

import (
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/utils"
)

// Ensure stores implement domain.Store
var (
	_ domain.Store = (*MemoryStore)(nil)
	_ domain.Store = (*BadgerStore)(nil)
)

// Backend names accepted by New
const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Options contains cache configuration options
type Options struct {
	Backend   string
	Directory string
	InMemory  bool
	TTL       time.Duration
	Logger    *utils.Logger
}

// DefaultOptions returns default cache options
func DefaultOptions() Options {
	return Options{
		Backend:   BackendMemory,
		Directory: "",
		InMemory:  false,
		TTL:       0,
	}
}

// StatsProvider is implemented by stores that report usage statistics
type StatsProvider interface {
	Stats() map[string]interface{}
}

// StatsOf returns the statistics of store, or nil when it reports none
func StatsOf(store domain.Store) map[string]interface{} {
	if p, ok := store.(StatsProvider); ok {
		return p.Stats()
	}
	return nil
}

// New creates the store selected by opts.Backend
func New(opts Options) (domain.Store, error) {
	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendBadger:
		return NewBadgerStore(opts)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// encodeArtifact serializes an artifact for persistent storage
func encodeArtifact(a *domain.CombinedArtifact) ([]byte, error) {
	return cbor.Marshal(a)
}

// decodeArtifact deserializes an artifact written by encodeArtifact
func decodeArtifact(data []byte) (*domain.CombinedArtifact, error) {
	var a domain.CombinedArtifact
	if err := cbor.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("corrupt cache entry: %w", err)
	}
	return &a, nil
}
