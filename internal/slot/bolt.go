package slot

import (
	"fmt"
	"time"

	"go.etcd.io/bbolt"
)

const boltBucketSlots = "slots" // key: slot name -> JSON payload

// Bolt persists slots inside a single bbolt bucket.
type Bolt struct {
	db *bbolt.DB
}

// OpenBolt opens (creating if needed) a bbolt file at path with the slots
// bucket in place.
func OpenBolt(path string) (*Bolt, error) {
	if path == "" {
		path = "tintshop.bolt"
	}
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open bolt: %w", err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketSlots))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create slots bucket: %w", err)
	}
	return &Bolt{db: db}, nil
}

// Driver returns the adapter driver identifier.
func (b *Bolt) Driver() Driver { return DriverBolt }

// Load returns a copy of the payload for name, or (nil, nil) when absent.
func (b *Bolt) Load(name Name) ([]byte, error) {
	var payload []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		raw := tx.Bucket([]byte(boltBucketSlots)).Get([]byte(name))
		if raw != nil {
			payload = make([]byte, len(raw))
			copy(payload, raw)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", name, err)
	}
	return payload, nil
}

// Save writes the payload for name.
func (b *Bolt) Save(name Name, payload []byte) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSlots)).Put([]byte(name), payload)
	})
	if err != nil {
		return fmt.Errorf("save slot %q: %w", name, err)
	}
	return nil
}

// Remove deletes the key for name; absence is not an error.
func (b *Bolt) Remove(name Name) error {
	err := b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketSlots)).Delete([]byte(name))
	})
	if err != nil {
		return fmt.Errorf("remove slot %q: %w", name, err)
	}
	return nil
}

// Close closes the underlying file.
func (b *Bolt) Close() error { return b.db.Close() }
