// Package store holds the in-memory session state: the four slots plus the
// transient editing pointers. It is the single source of truth while the
// application runs; all mutation flows through the CRUD controllers and the
// backup service, never through presentation code.
package store

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"tintshop/internal/slot"
	"tintshop/pkg/domain"
)

// Store owns the in-memory representations of all four slots for the
// lifetime of one session. Collections keep insertion order; they are
// sequences, not sets.
type Store struct {
	mu      sync.RWMutex
	adapter slot.Adapter
	log     zerolog.Logger

	customers    []domain.Customer
	appointments []domain.Appointment
	sales        []domain.Sale
	settings     domain.Settings

	// One editing pointer per entity kind; empty means creation mode.
	editing map[domain.EntityType]string
}

// Snapshot is a deep copy of the four slots, used by export, import, and
// KPI computation.
type Snapshot struct {
	Customers    []domain.Customer
	Appointments []domain.Appointment
	Sales        []domain.Sale
	Settings     domain.Settings
}

// Open loads all four slots through the adapter. Absent or corrupt durable
// data degrades to empty defaults; loading never fails.
func Open(adapter slot.Adapter, log zerolog.Logger) *Store {
	s := &Store{
		adapter: adapter,
		log:     log,
		editing: make(map[domain.EntityType]string),
	}
	s.customers = slot.LoadCollection[domain.Customer](adapter, slot.Customers)
	s.appointments = slot.LoadCollection[domain.Appointment](adapter, slot.Appointments)
	s.sales = slot.LoadCollection[domain.Sale](adapter, slot.Sales)
	s.settings = slot.LoadSingleton[domain.Settings](adapter, slot.Settings)
	log.Debug().
		Int("customers", len(s.customers)).
		Int("appointments", len(s.appointments)).
		Int("sales", len(s.sales)).
		Str("driver", string(adapter.Driver())).
		Msg("state loaded")
	return s
}

// Adapter exposes the underlying persistence adapter.
func (s *Store) Adapter() slot.Adapter { return s.adapter }

// Customers returns a copy of the customer collection.
func (s *Store) Customers() []domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.customers)
}

// Appointments returns a copy of the appointment collection.
func (s *Store) Appointments() []domain.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.appointments)
}

// Sales returns a copy of the sales collection.
func (s *Store) Sales() []domain.Sale {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSlice(s.sales)
}

// Settings returns the current settings object.
func (s *Store) Settings() domain.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// SetCustomers replaces the customer collection in memory.
func (s *Store) SetCustomers(recs []domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = cloneSlice(recs)
}

// SetAppointments replaces the appointment collection in memory.
func (s *Store) SetAppointments(recs []domain.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments = cloneSlice(recs)
}

// SetSales replaces the sales collection in memory.
func (s *Store) SetSales(recs []domain.Sale) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sales = cloneSlice(recs)
}

// UpdateSettings replaces the settings object and persists its slot.
func (s *Store) UpdateSettings(settings domain.Settings) error {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
	return s.Persist(slot.Settings)
}

// EditingID returns the editing pointer for kind; empty means creation mode.
func (s *Store) EditingID(kind domain.EntityType) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editing[kind]
}

// SetEditing points kind at id. Beginning an edit while another edit of the
// same kind is in progress silently abandons the first without mutating it.
func (s *Store) SetEditing(kind domain.EntityType, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing[kind] = id
}

// ClearEditing resets kind to creation mode.
func (s *Store) ClearEditing(kind domain.EntityType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.editing, kind)
}

// Persist writes the named slot's current in-memory value through the
// adapter. A failed write surfaces as a domain.SaveError; memory and
// durable state only converge once this returns nil.
func (s *Store) Persist(name slot.Name) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	switch name {
	case slot.Customers:
		return slot.Save(s.adapter, name, s.customers)
	case slot.Appointments:
		return slot.Save(s.adapter, name, s.appointments)
	case slot.Sales:
		return slot.Save(s.adapter, name, s.sales)
	case slot.Settings:
		return slot.Save(s.adapter, name, s.settings)
	default:
		return errors.New("unknown slot " + string(name))
	}
}

// Snapshot returns a deep copy of all four slots.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Customers:    cloneSlice(s.customers),
		Appointments: cloneSlice(s.appointments),
		Sales:        cloneSlice(s.sales),
		Settings:     s.settings,
	}
}

// Replace swaps all four slots atomically and persists each. Editing
// pointers are cleared: any open form referred to records that no longer
// exist. Persist failures are joined and surfaced; the in-memory swap has
// already happened.
func (s *Store) Replace(snap Snapshot) error {
	s.mu.Lock()
	s.customers = cloneSlice(snap.Customers)
	s.appointments = cloneSlice(snap.Appointments)
	s.sales = cloneSlice(snap.Sales)
	s.settings = snap.Settings
	s.editing = make(map[domain.EntityType]string)
	s.mu.Unlock()

	var errs []error
	for _, name := range slot.All {
		if err := s.Persist(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Reset clears all four slots to their empty defaults in memory and removes
// their durable copies. Irreversible; callers gate it behind confirmation.
func (s *Store) Reset() error {
	s.mu.Lock()
	s.customers = []domain.Customer{}
	s.appointments = []domain.Appointment{}
	s.sales = []domain.Sale{}
	s.settings = domain.Settings{}
	s.editing = make(map[domain.EntityType]string)
	s.mu.Unlock()

	var errs []error
	for _, name := range slot.All {
		if err := s.adapter.Remove(name); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Log returns the store's logger for collaborating services.
func (s *Store) Log() zerolog.Logger { return s.log }

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
