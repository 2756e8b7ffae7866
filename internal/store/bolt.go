// Package store keeps the last good snapshot of every polled collection in a
// BoltDB file so a restarted dashboard can render before its first fetch
// completes.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	bolt "github.com/boltdb/bolt"

	"merchant-dashboard/internal/models"
)

const bucketName = "snapshots"

var ErrClosed = errors.New("snapshot store is closed")

// Store wraps a BoltDB database holding JSON encoded snapshots
type Store struct {
	db *bolt.DB
}

// New opens (or creates) the database at path and ensures the bucket exists
func New(path string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create snapshot bucket: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Ping verifies the database file is still usable
func (s *Store) Ping() error {
	if s.db == nil {
		return ErrClosed
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket([]byte(bucketName)) == nil {
			return fmt.Errorf("bucket %q missing", bucketName)
		}
		return nil
	})
}

// Keys lists the stored entry keys in byte order
func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	keys := []string{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	return keys, err
}

func (s *Store) get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			// v is only valid inside the transaction
			data = append([]byte(nil), v...)
		}
		return nil
	})
	return data, err
}

// put writes data under key. Identical payloads are not rewritten; it
// reports whether a write happened.
func (s *Store) put(key string, data []byte) (bool, error) {
	if s.db == nil {
		return false, ErrClosed
	}
	written := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if bytes.Equal(b.Get([]byte(key)), data) {
			return nil
		}
		written = true
		return b.Put([]byte(key), data)
	})
	return written, err
}

// EntryKey builds the storage key of a snapshot from the controller name and
// its request parameters in sorted order.
func EntryKey(name string, params map[string]string) string {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(name)
	for _, k := range names {
		b.WriteByte('|')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(params[k])
	}
	return b.String()
}

// Cache is a typed view of the store for one record type
type Cache[T any] struct {
	store *Store
}

func NewCache[T any](s *Store) *Cache[T] {
	return &Cache[T]{store: s}
}

// Load returns the snapshot stored for name and params, or nil when there
// is none
func (c *Cache[T]) Load(name string, params map[string]string) (*models.Snapshot[T], error) {
	data, err := c.store.get(EntryKey(name, params))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil
	}

	var snapshot models.Snapshot[T]
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode cached snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save stores snapshot under its own request parameters
func (c *Cache[T]) Save(name string, snapshot *models.Snapshot[T]) error {
	if snapshot == nil {
		return nil
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	_, err = c.store.put(EntryKey(name, snapshot.RequestParams), data)
	return err
}
