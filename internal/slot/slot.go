// Package slot implements the durable persistence adapter: four
// independently keyed slots holding JSON payloads, with interchangeable
// storage drivers. Adapters own no in-memory state; they hold only the
// durable copies they are told to write.
package slot

import (
	"encoding/json"
	"fmt"

	"tintshop/pkg/domain"
)

// Name identifies one durable storage slot.
type Name string

// The four slots. Three hold record sequences, settings holds a singleton
// object.
const (
	Customers    Name = "customers"
	Appointments Name = "appointments"
	Sales        Name = "sales"
	Settings     Name = "settings"
)

// All lists every slot, in persistence order.
var All = []Name{Customers, Appointments, Sales, Settings}

// Driver identifies a concrete slot storage implementation.
type Driver string

const (
	DriverMemory Driver = "memory" // in-memory only (tests / ephemeral)
	DriverSQLite Driver = "sqlite" // embedded sqlite file
	DriverBolt   Driver = "bolt"   // bbolt file
)

// Adapter reads and writes raw slot payloads. Load returns (nil, nil) when
// the slot is absent; decode leniency lives in LoadCollection and
// LoadSingleton, not in the drivers.
type Adapter interface {
	Load(name Name) ([]byte, error)
	Save(name Name, payload []byte) error
	Remove(name Name) error
	Driver() Driver
	Close() error
}

// LoadCollection decodes a record sequence from a slot. An absent,
// unparsable, or wrong-shaped payload yields an empty sequence; it never
// returns an error. Corrupt durable data is recovered silently by design.
func LoadCollection[T any](a Adapter, name Name) []T {
	raw, err := a.Load(name)
	if err != nil || len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

// LoadSingleton decodes a singleton object from a slot, substituting the
// zero value under the same fault conditions as LoadCollection.
func LoadSingleton[T any](a Adapter, name Name) T {
	var zero T
	raw, err := a.Load(name)
	if err != nil || len(raw) == 0 {
		return zero
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero
	}
	return out
}

// Save serializes value and writes it to the named slot. Write failures are
// surfaced as a domain.SaveError so callers can warn the user instead of
// silently losing data.
func Save(a Adapter, name Name, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode slot %q: %w", name, err)
	}
	if err := a.Save(name, payload); err != nil {
		return domain.SaveError{Slot: string(name), Err: err}
	}
	return nil
}
