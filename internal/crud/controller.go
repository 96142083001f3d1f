package crud

import (
	"strings"

	"github.com/rs/zerolog"

	"tintshop/internal/ident"
	"tintshop/internal/store"
	"tintshop/pkg/domain"
)

// Outcome reports what a successful Submit did.
type Outcome int

const (
	// Created means a new record was appended.
	Created Outcome = iota + 1
	// Updated means an existing record was overwritten in place.
	Updated
	// Skipped means the editing pointer was stale: the target record was
	// deleted while the form was open, so the submit became a no-op rather
	// than resurrecting the record.
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Created:
		return "created"
	case Updated:
		return "updated"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Controller drives the two-state lifecycle (Creating / Editing) for one
// entity kind. The editing pointer lives in the store so a delete issued
// anywhere can reset the controller to creation mode.
type Controller[T domain.Record] struct {
	schema Schema[T]
	store  *store.Store
	list   func() []T
	set    func([]T)
	log    zerolog.Logger
}

func newController[T domain.Record](schema Schema[T], st *store.Store, list func() []T, set func([]T)) *Controller[T] {
	return &Controller[T]{
		schema: schema,
		store:  st,
		list:   list,
		set:    set,
		log:    st.Log().With().Str("entity", string(schema.Entity)).Logger(),
	}
}

// NewCustomers returns the customer controller bound to st.
func NewCustomers(st *store.Store) *Controller[domain.Customer] {
	return newController(CustomerSchema(), st, st.Customers, st.SetCustomers)
}

// NewAppointments returns the appointment controller bound to st.
func NewAppointments(st *store.Store) *Controller[domain.Appointment] {
	return newController(AppointmentSchema(), st, st.Appointments, st.SetAppointments)
}

// NewSales returns the sale controller bound to st.
func NewSales(st *store.Store) *Controller[domain.Sale] {
	return newController(SaleSchema(), st, st.Sales, st.SetSales)
}

// Entity returns the entity kind this controller manages.
func (c *Controller[T]) Entity() domain.EntityType { return c.schema.Entity }

// Submit validates fields and either appends a new record (Creating) or
// overwrites the record the editing pointer targets (Editing). On
// validation failure nothing is mutated or persisted and the returned
// domain.ValidationError names the offending field. On success the whole
// collection is persisted and the controller returns to Creating.
func (c *Controller[T]) Submit(form Form) (T, Outcome, error) {
	var zero T
	if err := c.validate(form); err != nil {
		c.log.Warn().Err(err).Msg("submit rejected")
		return zero, 0, err
	}

	if id := c.store.EditingID(c.schema.Entity); id != "" {
		c.store.ClearEditing(c.schema.Entity)
		recs := c.list()
		idx := indexOf(recs, id)
		if idx < 0 {
			// The record was deleted while the form was open. Do not
			// resurrect it.
			c.log.Debug().Str("id", id).Msg("stale edit pointer, submit skipped")
			return zero, Skipped, nil
		}
		rec := recs[idx]
		c.schema.Apply(&rec, form)
		recs[idx] = rec
		c.set(recs)
		if err := c.store.Persist(c.schema.Slot); err != nil {
			c.log.Warn().Err(err).Str("id", id).Msg("record updated in memory but not saved")
			return rec, Updated, err
		}
		c.log.Info().Str("id", id).Msg("record updated")
		return rec, Updated, nil
	}

	rec := c.schema.New()
	c.schema.Apply(&rec, form)
	c.schema.SetID(&rec, ident.New(c.schema.IDPrefix))
	recs := append(c.list(), rec)
	c.set(recs)
	if err := c.store.Persist(c.schema.Slot); err != nil {
		c.log.Warn().Err(err).Str("id", rec.RecordID()).Msg("record created in memory but not saved")
		return rec, Created, err
	}
	c.log.Info().Str("id", rec.RecordID()).Msg("record created")
	return rec, Created, nil
}

// BeginEdit points the controller at id and returns the record's current
// values for form pre-population. Unknown ids are a no-op. Beginning a new
// edit abandons any edit already in progress without mutating its target.
func (c *Controller[T]) BeginEdit(id string) (T, bool) {
	var zero T
	recs := c.list()
	idx := indexOf(recs, id)
	if idx < 0 {
		return zero, false
	}
	c.store.SetEditing(c.schema.Entity, id)
	return recs[idx], true
}

// CancelEdit clears the editing pointer without touching any record.
func (c *Controller[T]) CancelEdit() {
	c.store.ClearEditing(c.schema.Entity)
}

// Delete removes the record with the given id (no-op if absent) and
// persists the collection. Deleting the record currently open for edit
// resets the controller to Creating, so a later submit cannot apply a
// phantom update.
func (c *Controller[T]) Delete(id string) error {
	recs := c.list()
	kept := recs[:0:0]
	for _, rec := range recs {
		if rec.RecordID() != id {
			kept = append(kept, rec)
		}
	}
	if c.store.EditingID(c.schema.Entity) == id {
		c.store.ClearEditing(c.schema.Entity)
	}
	c.set(kept)
	if err := c.store.Persist(c.schema.Slot); err != nil {
		c.log.Warn().Err(err).Str("id", id).Msg("record deleted in memory but not saved")
		return err
	}
	c.log.Info().Str("id", id).Msg("record deleted")
	return nil
}

func (c *Controller[T]) validate(form Form) error {
	for _, f := range c.schema.Fields {
		raw, ok := form.get(f.Name)
		if f.Required && (!ok || strings.TrimSpace(raw) == "") {
			return domain.ValidationError{Entity: c.schema.Entity, Field: f.Name}
		}
		if f.Finite && ok && !domain.ParsesFinite(raw) {
			return domain.ValidationError{Entity: c.schema.Entity, Field: f.Name}
		}
	}
	return nil
}

func indexOf[T domain.Record](recs []T, id string) int {
	for i, rec := range recs {
		if rec.RecordID() == id {
			return i
		}
	}
	return -1
}
