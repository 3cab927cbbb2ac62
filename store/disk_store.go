package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// DiskStore keeps one file per node under a directory, plus a meta.json with
// the id counter and the root cell. Reopening the directory resumes the id
// sequence, so ids stay fresh across restarts.
type DiskStore struct {
	mu     sync.Mutex
	dir    string
	meta   diskMeta
	closed bool
}

type diskMeta struct {
	StoreID string `json:"store_id"`
	NextID  int64  `json:"next_id"`
	RootID  *int64 `json:"root_id,omitempty"`
}

const metaFile = "meta.json"

// NewDiskStore opens dir, creating it and a fresh metadata file when absent.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create store directory %s", dir)
	}

	s := &DiskStore{
		dir:  dir,
		meta: diskMeta{StoreID: uuid.NewString(), NextID: 1},
	}

	metaPath := filepath.Join(dir, metaFile)
	if data, err := os.ReadFile(metaPath); err == nil {
		if err := json.Unmarshal(data, &s.meta); err != nil {
			return nil, errors.Wrapf(err, "parse %s", metaPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "read %s", metaPath)
	} else if err := s.saveMeta(); err != nil {
		return nil, err
	}

	return s, nil
}

// ID returns the store's identity, assigned once at creation.
func (s *DiskStore) ID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.meta.StoreID
}

// saveMeta assumes the lock is held.
func (s *DiskStore) saveMeta() error {
	data, err := json.MarshalIndent(s.meta, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal store metadata")
	}
	metaPath := filepath.Join(s.dir, metaFile)
	if err := os.WriteFile(metaPath, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", metaPath)
	}
	return nil
}

func (s *DiskStore) nodePath(id int64) string {
	return filepath.Join(s.dir, fmt.Sprintf("node_%d.json", id))
}

func (s *DiskStore) SetRootID(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	s.meta.RootID = &id
	return s.saveMeta()
}

func (s *DiskStore) RootID() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStoreClosed
	}
	if s.meta.RootID == nil {
		return 0, ErrRootNotSet
	}
	return *s.meta.RootID, nil
}

func (s *DiskStore) CreateNode(payload []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrStoreClosed
	}

	id := s.meta.NextID
	if err := os.WriteFile(s.nodePath(id), payload, 0644); err != nil {
		return 0, errors.Wrapf(err, "write node %d", id)
	}
	s.meta.NextID++
	if err := s.saveMeta(); err != nil {
		return 0, err
	}
	return id, nil
}

func (s *DiskStore) GetNode(id int64) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrStoreClosed
	}
	data, err := os.ReadFile(s.nodePath(id))
	if os.IsNotExist(err) {
		return nil, errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read node %d", id)
	}
	return data, nil
}

func (s *DiskStore) UpdateNode(id int64, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	if _, err := os.Stat(s.nodePath(id)); os.IsNotExist(err) {
		return errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	if err := os.WriteFile(s.nodePath(id), payload, 0644); err != nil {
		return errors.Wrapf(err, "write node %d", id)
	}
	return nil
}

func (s *DiskStore) DeleteNode(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}
	err := os.Remove(s.nodePath(id))
	if os.IsNotExist(err) {
		return errors.Wrapf(ErrNodeNotFound, "node %d", id)
	}
	if err != nil {
		return errors.Wrapf(err, "delete node %d", id)
	}
	return nil
}

func (s *DiskStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.saveMeta()
}
