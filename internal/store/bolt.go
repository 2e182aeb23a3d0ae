package store

import (
	"context"
	"time"

	bolt "github.com/boltdb/bolt"
)

const boltBucket = "itinerary"

// Bolt is a KV backend in a single BoltDB file.
type Bolt struct {
	db *bolt.DB
}

var _ KV = (*Bolt)(nil)

// NewBolt opens (or creates) the database at path and ensures the bucket exists.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

// Get implements KV.
func (b *Bolt) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(boltBucket)).Get([]byte(key))
		if v == nil {
			return ErrKeyNotFound
		}
		// v is only valid inside the transaction.
		out = append([]byte(nil), v...)
		return nil
	})
	return out, err
}

// Put implements KV.
func (b *Bolt) Put(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(boltBucket)).Put([]byte(key), value)
	})
}

// Close releases the database file lock.
func (b *Bolt) Close() error {
	return b.db.Close()
}
