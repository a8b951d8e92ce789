package cache

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dgraph-io/badger/v4"
	"github.com/quantmind-br/themebundle/internal/domain"
	"github.com/quantmind-br/themebundle/internal/utils"
	"golang.org/x/sync/singleflight"
)

const (
	gcInterval     = 5 * time.Minute
	gcDiscardRatio = 0.5
	openMaxElapsed = 10 * time.Second
)

// BadgerStore is a store implementation using BadgerDB
type BadgerStore struct {
	db     *badger.DB
	ttl    time.Duration
	group  singleflight.Group
	stop   chan struct{}
	closed sync.Once
}

// NewBadgerStore opens a BadgerDB store. Opening retries while another
// process holds the directory lock.
func NewBadgerStore(opts Options) (*BadgerStore, error) {
	var badgerOpts badger.Options

	if opts.InMemory {
		badgerOpts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Directory == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			opts.Directory = homeDir + "/.themebundle/cache"
		}

		// Ensure directory exists
		if err := os.MkdirAll(opts.Directory, 0755); err != nil {
			return nil, err
		}

		badgerOpts = badger.DefaultOptions(opts.Directory)
	}

	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(newBadgerLogger(opts.Logger))
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := openWithRetry(badgerOpts)
	if err != nil {
		return nil, err
	}

	s := &BadgerStore{
		db:   db,
		ttl:  opts.TTL,
		stop: make(chan struct{}),
	}

	if !opts.InMemory {
		go s.runGC()
	}

	return s, nil
}

func openWithRetry(opts badger.Options) (*badger.DB, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxElapsedTime = openMaxElapsed

	return backoff.RetryWithData(func() (*badger.DB, error) {
		db, err := badger.Open(opts)
		if err != nil && !isLockError(err) {
			return nil, backoff.Permanent(err)
		}
		return db, err
	}, b)
}

func isLockError(err error) bool {
	return strings.Contains(err.Error(), "directory lock")
}

func (s *BadgerStore) runGC() {
	ticker := time.NewTicker(gcInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			_ = s.db.RunValueLogGC(gcDiscardRatio)
		}
	}
}

// GetOrCompute returns the stored artifact or computes and stores it.
// Concurrent misses for one key share a single compute call.
func (s *BadgerStore) GetOrCompute(ctx context.Context, key string, compute domain.ComputeFunc) (*domain.CombinedArtifact, error) {
	a, err := s.Get(ctx, key)
	if err == nil {
		return a, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		return nil, err
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if a, err := s.Get(ctx, key); err == nil {
			return a, nil
		}
		a, err := compute(ctx)
		if err != nil {
			return nil, err
		}
		if a == nil {
			return nil, errNilArtifact
		}
		if err := s.set(key, a); err != nil {
			return nil, err
		}
		return a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CombinedArtifact), nil
}

// Get retrieves an artifact from the store
func (s *BadgerStore) Get(ctx context.Context, key string) (*domain.CombinedArtifact, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.ErrCacheMiss
			}
			return err
		}

		value, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}

	return decodeArtifact(value)
}

func (s *BadgerStore) set(key string, a *domain.CombinedArtifact) error {
	value, err := encodeArtifact(a)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(key), value)
		if s.ttl > 0 {
			e = e.WithTTL(s.ttl)
		}
		return txn.SetEntry(e)
	})
}

// Delete removes a key from the store
func (s *BadgerStore) Delete(ctx context.Context, key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Close releases store resources
func (s *BadgerStore) Close() error {
	var err error
	s.closed.Do(func() {
		close(s.stop)
		err = s.db.Close()
	})
	return err
}

// Clear removes all entries from the store
func (s *BadgerStore) Clear() error {
	return s.db.DropAll()
}

// Size returns the number of entries in the store
func (s *BadgerStore) Size() int64 {
	var count int64
	_ = s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	return count
}

// Stats returns store statistics
func (s *BadgerStore) Stats() map[string]interface{} {
	lsm, vlog := s.db.Size()
	return map[string]interface{}{
		"entries":   s.Size(),
		"lsm_size":  lsm,
		"vlog_size": vlog,
	}
}

// badgerLogger forwards BadgerDB log output to zerolog
type badgerLogger struct {
	log *utils.Logger
}

func newBadgerLogger(log *utils.Logger) *badgerLogger {
	return &badgerLogger{log: log.WithComponent("badger")}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error().Msgf(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn().Msgf(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Trace().Msgf(strings.TrimSpace(format), args...)
}
