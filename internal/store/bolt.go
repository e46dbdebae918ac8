package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

var accountsBucketName = []byte("accounts")

type boltEntry struct {
	ID string `json:"id"`
	recordJSON
}

// BoltStore keeps the snapshot in a bbolt bucket keyed by position. bbolt
// holds an exclusive file lock, so a second process opening the same store
// waits for the timeout and fails instead of interleaving writes.
type BoltStore struct {
	db *bolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("can not create database directory %s: %w", filepath.Dir(path), err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("can not open database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(accountsBucketName)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() (Snapshot, error) {
	snap := Snapshot{}
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(accountsBucketName).ForEach(func(k, v []byte) error {
			var raw boltEntry
			if err := json.Unmarshal(v, &raw); err != nil {
				return fmt.Errorf("%w: %v", ErrCorrupt, err)
			}

			rec, err := raw.toRecord()
			if err != nil {
				return fmt.Errorf("account %s: %w", raw.ID, err)
			}

			snap = append(snap, Entry{ID: raw.ID, Record: rec})
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	if err := snap.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}

	return snap, nil
}

// Save drops and rebuilds the bucket in one update transaction.
func (s *BoltStore) Save(snap Snapshot) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(accountsBucketName); err != nil {
			return err
		}
		bucket, err := tx.CreateBucket(accountsBucketName)
		if err != nil {
			return err
		}

		for i, e := range snap {
			raw, err := json.Marshal(boltEntry{ID: e.ID, recordJSON: toRecordJSON(e.Record)})
			if err != nil {
				return err
			}
			if err := bucket.Put(itob(uint64(i)), raw); err != nil {
				return err
			}
		}

		return nil
	})
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}

func itob(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
