package runlog

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

var runsBucket = []byte("runs")

// BoltStore keeps runs in a bbolt file, one JSON value per run ID.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore opens (or creates) the ledger at path.
func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &BoltStore{db: db}, nil
}

func (b *BoltStore) Record(run Run) error {
	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(run.ID), data)
	})
}

func (b *BoltStore) Get(id string) (Run, error) {
	var run Run
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		// v is only valid inside the transaction; Unmarshal copies what it needs.
		return json.Unmarshal(v, &run)
	})
	return run, err
}

func (b *BoltStore) List() ([]Run, error) {
	var runs []Run
	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var run Run
			if err := json.Unmarshal(v, &run); err != nil {
				return fmt.Errorf("failed to decode run %s: %w", k, err)
			}
			runs = append(runs, run)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortRuns(runs)
	return runs, nil
}

func (b *BoltStore) Close() error {
	return b.db.Close()
}
