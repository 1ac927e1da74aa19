package db

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const bucketExportedCards = "ExportedCards"

// BoltStorage implements storage interface for BoltDB
type BoltStorage struct {
	db *bolt.DB
}

// Get exported card from database
func (b *BoltStorage) Get(key string) (ExportedCard, error) {
	var res ExportedCard
	err := b.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketExportedCards))
		jdata := bucket.Get([]byte(key))
		if len(jdata) == 0 {
			return ErrNotFound
		}
		if err := json.Unmarshal(jdata, &res); err != nil {
			return fmt.Errorf("unmarshal exported card: %w", err)
		}
		return nil
	})
	if err != nil {
		return ExportedCard{}, err
	}
	return res, nil
}

// Save exported card to database
func (b *BoltStorage) Save(card ExportedCard) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(bucketExportedCards))
		jdata, err := json.Marshal(card)
		if err != nil {
			return fmt.Errorf("marshal exported card: %w", err)
		}
		if err := bucket.Put([]byte(card.Key), jdata); err != nil {
			return fmt.Errorf("put exported card: %w", err)
		}
		return nil
	})
}

// NewBoltStorage creates BoltStorage instance and initialize buckets
func NewBoltStorage(db *bolt.DB) (*BoltStorage, error) {
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketExportedCards))
		return err
	})
	if err != nil {
		return nil, err
	}
	return &BoltStorage{db: db}, nil
}
