// Package storage persists the three record lists as JSON arrays under
// fixed keys in a local bolt database. Key names are versioned by suffix
// only; a record-shape change requires a new key, there is no migration.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
	"go.uber.org/zap"

	"github.com/bmsprints/bmsprints/internal/models"
)

const bucketRecords = "records"

const (
	keyServices  = "bms_services_v2"
	keyOrders    = "bms_orders_v2"
	keyRecurring = "bms_costs_v2"
)

// DB wraps the bolt file holding the shop's records.
type DB struct {
	bolt *bbolt.DB
	log  *zap.Logger
}

// Open opens (creating if needed) the bolt file at path.
func Open(path string, log *zap.Logger) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}
	b, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	err = b.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketRecords))
		return err
	})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("create bucket: %w", err)
	}
	return &DB{bolt: b, log: log}, nil
}

func (d *DB) Close() error { return d.bolt.Close() }

// LoadAll reads the three slots in one transaction. A missing slot yields
// an empty list. If any slot fails to parse, all three lists reset to
// empty together; there is no partial recovery. The reset is logged but
// not surfaced to the caller.
func (d *DB) LoadAll() (services []models.Service, orders []models.Order, recurring []models.RecurringCost) {
	services = []models.Service{}
	orders = []models.Order{}
	recurring = []models.RecurringCost{}

	err := d.bolt.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketRecords))
		if err := unmarshalSlot(b.Get([]byte(keyServices)), &services); err != nil {
			return fmt.Errorf("slot %s: %w", keyServices, err)
		}
		if err := unmarshalSlot(b.Get([]byte(keyOrders)), &orders); err != nil {
			return fmt.Errorf("slot %s: %w", keyOrders, err)
		}
		if err := unmarshalSlot(b.Get([]byte(keyRecurring)), &recurring); err != nil {
			return fmt.Errorf("slot %s: %w", keyRecurring, err)
		}
		return nil
	})
	if err != nil {
		d.log.Warn("storage corrupt, resetting all records", zap.Error(err))
		return []models.Service{}, []models.Order{}, []models.RecurringCost{}
	}
	return services, orders, recurring
}

func unmarshalSlot(raw []byte, dst any) error {
	if raw == nil {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func (d *DB) SaveServices(list []models.Service) error {
	return d.put(keyServices, list)
}

func (d *DB) SaveOrders(list []models.Order) error {
	return d.put(keyOrders, list)
}

func (d *DB) SaveRecurring(list []models.RecurringCost) error {
	return d.put(keyRecurring, list)
}

// put overwrites one slot with the JSON encoding of list.
func (d *DB) put(key string, list any) error {
	buf, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).Put([]byte(key), buf)
	})
}

// putRaw writes arbitrary bytes into a slot. Tests use it to simulate a
// corrupted record.
func (d *DB) putRaw(key string, raw []byte) error {
	return d.bolt.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucketRecords)).Put([]byte(key), raw)
	})
}
