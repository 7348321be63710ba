package ticket

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const bucketName = "items"

// MissingColumnError reports that persisted rows lack a required column.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("stored rows are missing column %q", e.Column)
}

// DB defines the durable-store collaborator. The store is row-oriented and
// supports only whole-set operations: partial updates are never performed.
type DB interface {
	// ReadAll returns every persisted item in insertion order
	ReadAll() ([]Item, error)

	// ReplaceAll atomically replaces the full item set
	ReplaceAll(items []Item) error

	// Close closes the database connection
	Close() error
}

// BoltDB implements the DB interface using BoltDB
type BoltDB struct {
	db *bbolt.DB
}

// NewBoltDB creates a new BoltDB instance
func NewBoltDB(path string) (*BoltDB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening boltdb: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}

	return &BoltDB{db: db}, nil
}

// ReadAll returns all items in insertion order. Rows missing a required
// column yield a MissingColumnError instead of silently degrading.
func (b *BoltDB) ReadAll() ([]Item, error) {
	items := make([]Item, 0)
	err := b.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketName))
		return bucket.ForEach(func(k, v []byte) error {
			if err := checkColumns(v); err != nil {
				return err
			}
			var item Item
			if err := json.Unmarshal(v, &item); err != nil {
				return fmt.Errorf("unmarshaling item: %w", err)
			}
			items = append(items, item)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ReplaceAll replaces the whole item set in one transaction. Keys are a
// monotonic sequence so insertion order survives a round trip.
func (b *BoltDB) ReplaceAll(items []Item) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		if err := tx.DeleteBucket([]byte(bucketName)); err != nil {
			return fmt.Errorf("clearing bucket: %w", err)
		}
		bucket, err := tx.CreateBucket([]byte(bucketName))
		if err != nil {
			return fmt.Errorf("recreating bucket: %w", err)
		}
		for i, item := range items {
			data, err := json.Marshal(item)
			if err != nil {
				return fmt.Errorf("marshaling item: %w", err)
			}
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(i))
			if err := bucket.Put(key, data); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close closes the database connection
func (b *BoltDB) Close() error {
	return b.db.Close()
}

func checkColumns(row []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(row, &fields); err != nil {
		return fmt.Errorf("unmarshaling row: %w", err)
	}
	for _, column := range Columns {
		if _, ok := fields[column]; !ok {
			return &MissingColumnError{Column: column}
		}
	}
	return nil
}
