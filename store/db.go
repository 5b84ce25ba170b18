// Package store is a bbolt-backed key/value layer adapted into a durable
// txvalidate.UTxOView: a read-mostly UTxO snapshot a caller can populate
// once (e.g. by replaying chain history) and then hand to repeated
// Validate calls without loading the full set into memory.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/cardanogo/byronvalidate/txvalidate"
)

var bucketUTxO = []byte("utxo_by_outpoint")

// BoltUTxOView is a txvalidate.UTxOView backed by a single bbolt bucket,
// keyed by the canonical (prev_tx_id, index) pair. It satisfies
// txvalidate.UTxOView's read-only contract: Lookup never mutates the
// database, and Put/Delete are the only write paths, called by whatever
// replays chain history into the view, never by the rule engine itself.
type BoltUTxOView struct {
	db *bolt.DB
}

// Open opens (creating if absent) a bbolt database at path dedicated to
// one UTxO snapshot.
func Open(path string) (*BoltUTxOView, error) {
	if path == "" {
		return nil, fmt.Errorf("store: path required")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("store: create dir: %w", err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("store: open bbolt: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketUTxO)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}
	return &BoltUTxOView{db: db}, nil
}

func (v *BoltUTxOView) Close() error {
	if v == nil || v.db == nil {
		return nil
	}
	return v.db.Close()
}

// Lookup implements txvalidate.UTxOView.
func (v *BoltUTxOView) Lookup(key txvalidate.TxOutPoint) (txvalidate.TxOut, bool) {
	var out txvalidate.TxOut
	var found bool
	_ = v.db.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket(bucketUTxO).Get(encodeOutpointKey(key))
		if raw == nil {
			return nil
		}
		decoded, err := decodeUtxoEntry(raw)
		if err != nil {
			return nil
		}
		out, found = decoded, true
		return nil
	})
	return out, found
}

// Put records that key now refers to out, for use while replaying chain
// history to build a snapshot; the rule engine never calls this.
func (v *BoltUTxOView) Put(key txvalidate.TxOutPoint, out txvalidate.TxOut) error {
	return v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUTxO).Put(encodeOutpointKey(key), encodeUtxoEntry(out))
	})
}

// Delete removes a spent entry from the snapshot.
func (v *BoltUTxOView) Delete(key txvalidate.TxOutPoint) error {
	return v.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUTxO).Delete(encodeOutpointKey(key))
	})
}

// All walks every entry currently in the snapshot in bbolt's key order,
// calling fn with each decoded outpoint and output. It stops and returns
// fn's error as soon as fn returns one. Used for dumping or replaying a
// snapshot (e.g. into a fresh MapUTxOView), never by the rule engine.
func (v *BoltUTxOView) All(fn func(txvalidate.TxOutPoint, txvalidate.TxOut) error) error {
	return v.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUTxO).ForEach(func(k, raw []byte) error {
			key, err := decodeOutpointKey(k)
			if err != nil {
				return fmt.Errorf("store: decode key: %w", err)
			}
			out, err := decodeUtxoEntry(raw)
			if err != nil {
				return fmt.Errorf("store: decode entry: %w", err)
			}
			return fn(key, out)
		})
	})
}

var _ txvalidate.UTxOView = (*BoltUTxOView)(nil)
