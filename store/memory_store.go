package store

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// MemoryStore is the reference Store: a map guarded by a mutex. Payloads are
// copied on the way in and out so callers cannot alias internal state.
type MemoryStore struct {
	mu     sync.RWMutex
	nodes  map[int64][]byte
	nextID int64
	rootID *int64
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nodes:  make(map[int64][]byte),
		nextID: 1,
	}
}

func (s *MemoryStore) SetRootID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.rootID = &id
	return nil
}

func (s *MemoryStore) RootID() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrStoreClosed
	}
	if s.rootID == nil {
		return 0, ErrRootNotSet
	}
	return *s.rootID, nil
}

func (s *MemoryStore) CreateNode(payload []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	id := s.nextID
	s.nextID++
	s.nodes[id] = append([]byte(nil), payload...)
	return id, nil
}

func (s *MemoryStore) GetNode(id int64) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	payload, ok := s.nodes[id]
	if !ok {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	return append([]byte(nil), payload...), nil
}

func (s *MemoryStore) UpdateNode(id int64, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.nodes[id]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	s.nodes[id] = append([]byte(nil), payload...)
	return nil
}

func (s *MemoryStore) DeleteNode(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, ok := s.nodes[id]; !ok {
		return errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	delete(s.nodes, id)
	return nil
}

// Close drops the node table. Further calls fail with ErrStoreClosed, which
// helps catch use-after-close bugs in the tree layer.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.nodes = nil
	s.closed = true
	return nil
}

// Len reports how many nodes are stored. Test helper.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nodes)
}
