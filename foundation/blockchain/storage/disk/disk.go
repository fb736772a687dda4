// Package disk implements the database Storage interface with one JSON
// file per record so a chain can be inspected with nothing but cat.
package disk

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/luxchain/ledger/foundation/blockchain/database"
)

// Disk represents the storage implementation for reading and storing chain
// records in their own separate files on disk. This implements the
// database.Storage interface.
type Disk struct {
	dbPath string
}

// New constructs a Disk value for use, creating the directory as needed.
func New(dbPath string) (*Disk, error) {
	if err := os.MkdirAll(dbPath, 0755); err != nil {
		return nil, err
	}

	return &Disk{dbPath: dbPath}, nil
}

// Close in this implementation has nothing to do since a new file is
// written for each record and then immediately closed.
func (d *Disk) Close() error {
	return nil
}

// Get reads the record stored under the specified key. database.ErrNotFound
// is returned when no file exists for the key.
func (d *Disk) Get(key string) ([]byte, error) {
	data, err := os.ReadFile(d.getPath(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}

	return data, nil
}

// Put stores the record under the specified key, replacing any existing
// record. The record is written indented to keep the files readable.
func (d *Disk) Put(key string, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return err
	}

	return os.WriteFile(d.getPath(key), buf.Bytes(), 0600)
}

// getPath forms the path to the file holding the specified key.
func (d *Disk) getPath(key string) string {
	return filepath.Join(d.dbPath, key+".json")
}
