package cache

import (
	"errors"
	"fmt"
	"time"

	"goldconv/internal/quote"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

var ErrSessionRejected = errors.New("session store rejected the session")

// RistrettoSessionStore keeps conversion sessions in a bounded cache with an idle TTL.
// Every read slides the TTL. Sessions dropped by eviction or expiry get their engine closed.
type RistrettoSessionStore struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSessionStore(maxItems int64, ttl time.Duration) (*RistrettoSessionStore, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters:        10 * maxItems,
		MaxCost:            maxItems,
		BufferItems:        64,
		Metrics:            true,
		IgnoreInternalCost: true,
		OnEvict: func(item *ristretto.Item) {
			if e, ok := item.Value.(*quote.Engine); ok {
				e.Close()
			}
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create session store failed: %w", err)
	}
	return &RistrettoSessionStore{cache: c, ttl: ttl}, nil
}

func (s *RistrettoSessionStore) Get(id uuid.UUID) (*quote.Engine, bool) {
	v, ok := s.cache.Get(toKey(id))
	if !ok {
		return nil, false
	}
	e, ok := v.(*quote.Engine)
	if !ok {
		return nil, false
	}
	s.cache.SetWithTTL(toKey(id), e, 1, s.ttl)
	return e, true
}

// Put stores the session and waits until it is visible to readers.
func (s *RistrettoSessionStore) Put(id uuid.UUID, e *quote.Engine) error {
	if !s.cache.SetWithTTL(toKey(id), e, 1, s.ttl) {
		return fmt.Errorf("%w: %s", ErrSessionRejected, id)
	}
	s.cache.Wait()
	if _, ok := s.cache.Get(toKey(id)); !ok {
		return fmt.Errorf("%w: %s", ErrSessionRejected, id)
	}
	return nil
}

func (s *RistrettoSessionStore) Delete(id uuid.UUID) {
	if v, ok := s.cache.Get(toKey(id)); ok {
		if e, ok := v.(*quote.Engine); ok {
			e.Close()
		}
	}
	s.cache.Del(toKey(id))
	s.cache.Wait()
}

func (s *RistrettoSessionStore) Stats() quote.SessionStats {
	m := s.cache.Metrics
	if m == nil {
		return quote.SessionStats{}
	}
	return quote.SessionStats{
		Added:    m.KeysAdded(),
		Evicted:  m.KeysEvicted(),
		Hits:     m.Hits(),
		Misses:   m.Misses(),
		HitRatio: m.Ratio(),
	}
}

func (s *RistrettoSessionStore) Close() { s.cache.Close() }

func toKey(id uuid.UUID) string { return "session:" + id.String() }
