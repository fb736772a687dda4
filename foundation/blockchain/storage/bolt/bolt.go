// Package bolt implements the database Storage interface on top of a
// bbolt key-value file.
package bolt

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxchain/ledger/foundation/blockchain/database"
	bolt "go.etcd.io/bbolt"
)

// chainBucket is the single bucket all chain records live in.
var chainBucket = []byte("chain")

// Bolt represents the storage implementation for reading and storing chain
// records in a bbolt database file. This implements the database.Storage
// interface.
type Bolt struct {
	db *bolt.DB
}

// New opens the bbolt database file at the specified path, creating the
// file and its parent directory when they don't exist.
func New(dbPath string) (*Bolt, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, err
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening database file %q: %w", dbPath, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(chainBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

// Close releases the underlying database file.
func (b *Bolt) Close() error {
	return b.db.Close()
}

// Get reads the record stored under the specified key. database.ErrNotFound
// is returned when the key is absent.
func (b *Bolt) Get(key string) ([]byte, error) {
	var data []byte

	err := b.db.View(func(tx *bolt.Tx) error {
		value := tx.Bucket(chainBucket).Get([]byte(key))
		if value == nil {
			return database.ErrNotFound
		}

		// The value is only valid inside this transaction.
		data = append(data, value...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return data, nil
}

// Put stores the record under the specified key, replacing any existing
// record.
func (b *Bolt) Put(key string, data []byte) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(chainBucket).Put([]byte(key), data)
	})
}
