// Package backup implements whole-state export and import as a single JSON
// document, plus the full reset. Export is the only supported way to move
// data between machines; the durable slots themselves are private.
package backup

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tintshop/internal/archive"
	"tintshop/internal/store"
	"tintshop/pkg/domain"
)

const (
	// FormatName tags exported documents so foreign JSON is recognizable.
	FormatName = "tintshop-backup"
	// SchemaVersion is written into every export. Import does not reject
	// other versions; unknown fields are dropped and missing sections
	// degrade to empty.
	SchemaVersion = 1
)

// ErrMalformedDocument is returned by Import when the payload is not a JSON
// object at the top level. Anything less broken than that is repaired
// section by section instead of rejected.
var ErrMalformedDocument = errors.New("backup: malformed document")

// Meta describes an exported document.
type Meta struct {
	Name       string `json:"name"`
	Version    int    `json:"version"`
	ExportedAt string `json:"exportedAt"`
}

// Document is the export format: all four slots plus provenance metadata.
type Document struct {
	Meta         Meta                 `json:"meta"`
	Customers    []domain.Customer    `json:"customers"`
	Appointments []domain.Appointment `json:"appointments"`
	Sales        []domain.Sale        `json:"sales"`
	Settings     domain.Settings      `json:"settings"`
}

// Service performs export, import, and reset against one store.
type Service struct {
	store *store.Store
	now   func() time.Time
	log   zerolog.Logger
}

// NewService returns a backup service bound to st.
func NewService(st *store.Store) *Service {
	return &Service{store: st, now: time.Now, log: st.Log()}
}

// Export captures the current state as a Document. The timestamp is UTC
// with millisecond precision.
func (s *Service) Export() Document {
	snap := s.store.Snapshot()
	return Document{
		Meta: Meta{
			Name:       FormatName,
			Version:    SchemaVersion,
			ExportedAt: isoMillis(s.now()),
		},
		Customers:    snap.Customers,
		Appointments: snap.Appointments,
		Sales:        snap.Sales,
		Settings:     snap.Settings,
	}
}

// ExportJSON returns the current state as an indented JSON document.
func (s *Service) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(s.Export(), "", "  ")
}

// Import replaces all four slots from an exported document. Only a payload
// that fails to parse as a JSON object is rejected; within a parsed
// document each section is decoded independently, and a section that is
// missing or has the wrong shape degrades to empty rather than failing the
// whole import. The replacement is persisted immediately.
func (s *Service) Import(data []byte) error {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(data, &sections); err != nil || sections == nil {
		return ErrMalformedDocument
	}
	snap := store.Snapshot{
		Customers:    decodeCollection[domain.Customer](sections["customers"]),
		Appointments: decodeCollection[domain.Appointment](sections["appointments"]),
		Sales:        decodeCollection[domain.Sale](sections["sales"]),
		Settings:     decodeSingleton[domain.Settings](sections["settings"]),
	}
	s.log.Info().
		Int("customers", len(snap.Customers)).
		Int("appointments", len(snap.Appointments)).
		Int("sales", len(snap.Sales)).
		Msg("importing backup document")
	return s.store.Replace(snap)
}

// ResetAll wipes every slot back to its empty default, in memory and on
// disk. Irreversible; callers gate it behind explicit confirmation.
func (s *Service) ResetAll() error {
	s.log.Info().Msg("resetting all data")
	return s.store.Reset()
}

// WriteArchive exports the current state into dest under a timestamped
// key. Returns the stored entry's metadata.
func (s *Service) WriteArchive(ctx context.Context, dest archive.Store) (archive.Info, error) {
	payload, err := s.ExportJSON()
	if err != nil {
		return archive.Info{}, err
	}
	key := FileName(s.now())
	info, err := dest.Put(ctx, key, strings.NewReader(string(payload)), archive.PutOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return archive.Info{}, err
	}
	s.log.Info().Str("key", info.Key).Int64("bytes", info.Size).Str("driver", string(dest.Driver())).Msg("backup archived")
	return info, nil
}

// FileName builds the suggested download name for an export taken at t.
// Colons and dots in the timestamp are replaced so the name is safe on
// every filesystem.
func FileName(t time.Time) string {
	ts := strings.NewReplacer(":", "-", ".", "-").Replace(isoMillis(t))
	return "tintshop-data-" + ts + ".json"
}

func isoMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

func decodeCollection[T any](raw json.RawMessage) []T {
	if len(raw) == 0 {
		return []T{}
	}
	var out []T
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []T{}
	}
	return out
}

func decodeSingleton[T any](raw json.RawMessage) T {
	var zero T
	if len(raw) == 0 {
		return zero
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero
	}
	return out
}
