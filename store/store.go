// Package store persists whole tree nodes keyed by an integer id and keeps
// the root-id bookkeeping cell. Payloads are opaque: the tree layer encodes
// nodes (see zigzag.Encode) before handing them over.
package store

import "github.com/cockroachdb/errors"

var (
	ErrNodeNotFound = errors.New("node not found")
	ErrRootNotSet   = errors.New("root id not set")
	ErrStoreClosed  = errors.New("store is closed")
)

// Store is the node persistence contract. Ids handed out by CreateNode are
// fresh and monotonically increasing from 1; they are never reused, even
// after DeleteNode. Callers serialize access at the tree layer; only the
// in-process implementations here guard themselves with locks.
type Store interface {
	SetRootID(id int64) error
	RootID() (int64, error)
	CreateNode(payload []byte) (int64, error)
	GetNode(id int64) ([]byte, error)
	UpdateNode(id int64, payload []byte) error
	DeleteNode(id int64) error
	Close() error
}
