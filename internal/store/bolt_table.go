package store

import (
	"encoding/json"
	"fmt"

	"github.com/boltdb/bolt"
)

type IdentifiableEntry interface {
	ID() string
}

type FilterFunction[E IdentifiableEntry] func(*E) (bool, error)

// BoltTable stores JSON-encoded entries of one type in a single bolt bucket,
// keyed by the entry's ID.
type BoltTable[E IdentifiableEntry] struct {
	bucketName []byte
	database   *bolt.DB
}

func NewBoltTable[E IdentifiableEntry](database *bolt.DB, bucketName string) (*BoltTable[E], error) {
	if database == nil {
		return nil, fmt.Errorf("database parameter is nil")
	}
	if bucketName == "" {
		return nil, fmt.Errorf("bucketName parameter is empty")
	}

	table := &BoltTable[E]{
		bucketName: []byte(bucketName),
		database:   database,
	}
	err := database.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(table.bucketName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}

func (b *BoltTable[E]) Get(key string) (*E, error) {
	var entry *E = nil
	err := b.database.View(func(tx *bolt.Tx) error {
		valueBytes := tx.Bucket(b.bucketName).Get([]byte(key))
		if valueBytes == nil {
			return nil
		}
		var err error
		entry, err = b.decode(valueBytes)
		return err
	})
	return entry, err
}

func (b *BoltTable[E]) Has(key string) (bool, error) {
	entry, err := b.Get(key)
	return entry != nil, err
}

func (b *BoltTable[E]) Insert(entry *E) error {
	return b.database.Update(func(tx *bolt.Tx) error {
		valueBytes, err := b.encode(entry)
		if err != nil {
			return err
		}
		return tx.Bucket(b.bucketName).Put([]byte((*entry).ID()), valueBytes)
	})
}

func (b *BoltTable[E]) List() ([]E, error) {
	var entries []E
	err := b.Iterate(func(entry *E) error {
		entries = append(entries, *entry)
		return nil
	})
	return entries, err
}

func (b *BoltTable[E]) Search(fn FilterFunction[E]) ([]E, error) {
	var entries []E
	err := b.Iterate(func(entry *E) error {
		keep, err := fn(entry)
		if err != nil {
			return err
		}
		if keep {
			entries = append(entries, *entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (b *BoltTable[E]) Iterate(fn func(*E) error) error {
	return b.database.View(func(tx *bolt.Tx) error {
		return tx.Bucket(b.bucketName).ForEach(func(key, value []byte) error {
			entry, err := b.decode(value)
			if err != nil {
				return err
			}
			return fn(entry)
		})
	})
}

func (b *BoltTable[E]) encode(entry *E) ([]byte, error) {
	return json.Marshal(entry)
}

func (b *BoltTable[E]) decode(data []byte) (*E, error) {
	entry := new(E)
	if err := json.Unmarshal(data, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
