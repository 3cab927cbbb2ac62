package store

import (
	"github.com/cockroachdb/errors"
	"github.com/dgraph-io/ristretto/v2"
)

// CachedStore is a read-through node cache in front of another Store. Gets
// served from the cache skip the inner store entirely; writes go to the inner
// store first and refresh the cache only on success. Eviction is ristretto's
// business, so a miss is always answerable from the inner store.
type CachedStore struct {
	inner Store
	cache *ristretto.Cache[int64, []byte]
}

// NewCachedStore wraps inner with a cache bounded to maxBytes of payload.
func NewCachedStore(inner Store, maxBytes int64) (*CachedStore, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[int64, []byte]{
		NumCounters: 1e5,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create node cache")
	}
	return &CachedStore{inner: inner, cache: cache}, nil
}

func (s *CachedStore) SetRootID(id int64) error {
	return s.inner.SetRootID(id)
}

func (s *CachedStore) RootID() (int64, error) {
	return s.inner.RootID()
}

func (s *CachedStore) CreateNode(payload []byte) (int64, error) {
	id, err := s.inner.CreateNode(payload)
	if err != nil {
		return 0, err
	}
	s.cache.Set(id, append([]byte(nil), payload...), int64(len(payload)))
	return id, nil
}

func (s *CachedStore) GetNode(id int64) ([]byte, error) {
	if payload, ok := s.cache.Get(id); ok {
		return append([]byte(nil), payload...), nil
	}
	payload, err := s.inner.GetNode(id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(id, append([]byte(nil), payload...), int64(len(payload)))
	return payload, nil
}

func (s *CachedStore) UpdateNode(id int64, payload []byte) error {
	if err := s.inner.UpdateNode(id, payload); err != nil {
		// a failed write must not leave a stale hit behind
		s.cache.Del(id)
		return err
	}
	s.cache.Set(id, append([]byte(nil), payload...), int64(len(payload)))
	return nil
}

func (s *CachedStore) DeleteNode(id int64) error {
	if err := s.inner.DeleteNode(id); err != nil {
		return err
	}
	s.cache.Del(id)
	return nil
}

func (s *CachedStore) Close() error {
	s.cache.Close()
	return s.inner.Close()
}

// Wait blocks until pending cache writes are applied. Tests use this to make
// Set visible before asserting on hits.
func (s *CachedStore) Wait() {
	s.cache.Wait()
}
