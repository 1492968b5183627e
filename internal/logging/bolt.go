package logging

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/rlbench/bsuite/internal/models"
)

// DefaultBucket is the bucket holding episode records in a shared store.
const DefaultBucket = "episodes"

// DefaultLockTimeout bounds how long an append waits for the store's file
// lock before failing.
const DefaultLockTimeout = 10 * time.Second

// BoltSink appends records to a single bbolt database shared by many
// independent processes on one machine. Each append acquires the database
// file lock, writes the row inside one transaction, commits, and releases —
// so rows from concurrent writers never interleave, and readers observe only
// committed rows.
type BoltSink struct {
	path    string
	bucket  []byte
	timeout time.Duration
	runID   string
}

// NewBoltSink binds a sink to a shared store path. bucket defaults to
// DefaultBucket and lockTimeout to DefaultLockTimeout when zero-valued. The
// database file is created on first append.
func NewBoltSink(path, bucket string, lockTimeout time.Duration) *BoltSink {
	if bucket == "" {
		bucket = DefaultBucket
	}
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &BoltSink{
		path:    path,
		bucket:  []byte(bucket),
		timeout: lockTimeout,
		runID:   uuid.NewString(),
	}
}

func (s *BoltSink) Append(r models.Record) error {
	r.RunID = s.runID

	db, err := bolt.Open(s.path, 0o600, &bolt.Options{Timeout: s.timeout})
	if err != nil {
		return fmt.Errorf("acquiring shared store %s: %v: %w", s.path, err, models.ErrSinkWrite)
	}
	defer db.Close()

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(s.bucket)
		if err != nil {
			return fmt.Errorf("bucket %s: %w", s.bucket, err)
		}
		seq, err := b.NextSequence()
		if err != nil {
			return fmt.Errorf("next sequence: %w", err)
		}
		v, err := encodeRecord(r)
		if err != nil {
			return err
		}
		return b.Put(serializeSeq(seq), v)
	})
	if err != nil {
		return fmt.Errorf("appending to shared store: %v: %w", err, models.ErrSinkWrite)
	}
	return nil
}

// Close releases nothing: the file lock is only held for the duration of each
// Append. Kept for the sink contract.
func (s *BoltSink) Close() error {
	return nil
}

// ReadAll returns every committed record of a shared store in append order.
// Intended for the analysis stage and tests.
func ReadAll(path, bucket string) ([]models.Record, error) {
	if bucket == "" {
		bucket = DefaultBucket
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{
		ReadOnly: true,
		Timeout:  DefaultLockTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("opening shared store %s: %w", path, err)
	}
	defer db.Close()

	var records []models.Record
	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}
		return b.ForEach(func(_, v []byte) error {
			r, err := decodeRecord(v)
			if err != nil {
				return err
			}
			records = append(records, r)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("reading shared store: %w", err)
	}
	return records, nil
}

// serializeSeq formats a sequence number as a fixed-length hex key so that
// byte order matches append order.
func serializeSeq(seq uint64) []byte {
	return []byte(fmt.Sprintf("%016x", seq))
}

func encodeRecord(r models.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("encoding record: %w", err)
	}
	return buf.Bytes(), nil
}

func decodeRecord(v []byte) (models.Record, error) {
	var r models.Record
	if err := gob.NewDecoder(bytes.NewReader(v)).Decode(&r); err != nil {
		return r, fmt.Errorf("decoding record: %w", err)
	}
	return r, nil
}
