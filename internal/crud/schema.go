// Package crud implements the create/edit/delete lifecycle shared by the
// three record kinds. One generic controller carries the whole state
// machine; per-entity behavior is captured in a Schema so the validation
// and coercion logic lives in exactly one place.
package crud

import (
	"strings"

	"tintshop/internal/slot"
	"tintshop/pkg/domain"
)

// Form is a submitted field set keyed by field name. Absent keys mean "not
// resubmitted": on update the existing value is preserved.
type Form map[string]string

func (f Form) get(name string) (string, bool) {
	v, ok := f[name]
	return v, ok
}

func (f Form) trimmed(name string) (string, bool) {
	v, ok := f[name]
	return strings.TrimSpace(v), ok
}

// Field describes validation and coercion policy for one submitted field.
type Field struct {
	Name     string
	Required bool // reject when missing or blank
	Finite   bool // reject when it does not parse to a finite number
}

// Schema describes one entity kind to the generic controller.
type Schema[T domain.Record] struct {
	Entity   domain.EntityType
	Slot     slot.Name
	IDPrefix string
	Fields   []Field
	// New returns the entity's default shape for creation.
	New func() T
	// Apply merges the submitted fields onto rec. Only keys present in the
	// form are written; the id is never touched.
	Apply func(rec *T, form Form)
	// SetID assigns the identifier exactly once, at creation.
	SetID func(rec *T, id string)
}

// CustomerSchema validates and merges customer submissions.
func CustomerSchema() Schema[domain.Customer] {
	return Schema[domain.Customer]{
		Entity:   domain.EntityCustomer,
		Slot:     slot.Customers,
		IDPrefix: "c",
		Fields: []Field{
			{Name: "name", Required: true},
			{Name: "phone"},
			{Name: "email"},
			{Name: "vehicle"},
			{Name: "notes"},
		},
		New: func() domain.Customer { return domain.Customer{} },
		Apply: func(rec *domain.Customer, form Form) {
			if v, ok := form.trimmed("name"); ok {
				rec.Name = v
			}
			if v, ok := form.trimmed("phone"); ok {
				rec.Phone = v
			}
			if v, ok := form.trimmed("email"); ok {
				rec.Email = v
			}
			if v, ok := form.trimmed("vehicle"); ok {
				rec.Vehicle = v
			}
			if v, ok := form.trimmed("notes"); ok {
				rec.Notes = v
			}
		},
		SetID: func(rec *domain.Customer, id string) { rec.ID = id },
	}
}

// AppointmentSchema validates and merges appointment submissions. Price is
// coerced permissively (unparsable input becomes 0); status stays an open
// string defaulting to Scheduled.
func AppointmentSchema() Schema[domain.Appointment] {
	return Schema[domain.Appointment]{
		Entity:   domain.EntityAppointment,
		Slot:     slot.Appointments,
		IDPrefix: "a",
		Fields: []Field{
			{Name: "date", Required: true},
			{Name: "time", Required: true},
			{Name: "customer", Required: true},
			{Name: "vehicle"},
			{Name: "service"},
			{Name: "price"},
			{Name: "status"},
		},
		New: func() domain.Appointment {
			return domain.Appointment{Status: domain.StatusScheduled}
		},
		Apply: func(rec *domain.Appointment, form Form) {
			if v, ok := form.trimmed("date"); ok {
				rec.Date = v
			}
			if v, ok := form.trimmed("time"); ok {
				rec.Time = v
			}
			if v, ok := form.trimmed("customer"); ok {
				rec.Customer = v
			}
			if v, ok := form.trimmed("vehicle"); ok {
				rec.Vehicle = v
			}
			if v, ok := form.trimmed("service"); ok {
				rec.Service = v
			}
			if v, ok := form.get("price"); ok {
				rec.Price = domain.CoerceNumber(v)
			}
			if v, ok := form.trimmed("status"); ok {
				if v == "" {
					v = domain.StatusScheduled
				}
				rec.Status = v
			}
		},
		SetID: func(rec *domain.Appointment, id string) { rec.ID = id },
	}
}

// SaleSchema validates and merges sale submissions. The amount must parse
// to a finite number; a silent 0 would corrupt revenue aggregation.
func SaleSchema() Schema[domain.Sale] {
	return Schema[domain.Sale]{
		Entity:   domain.EntitySale,
		Slot:     slot.Sales,
		IDPrefix: "s",
		Fields: []Field{
			{Name: "date", Required: true},
			{Name: "customer"},
			{Name: "item", Required: true},
			{Name: "amount", Required: true, Finite: true},
			{Name: "payment"},
			{Name: "notes"},
		},
		New: func() domain.Sale { return domain.Sale{} },
		Apply: func(rec *domain.Sale, form Form) {
			if v, ok := form.trimmed("date"); ok {
				rec.Date = v
			}
			if v, ok := form.trimmed("customer"); ok {
				rec.Customer = v
			}
			if v, ok := form.trimmed("item"); ok {
				rec.Item = v
			}
			if v, ok := form.get("amount"); ok {
				rec.Amount = domain.CoerceNumber(v)
			}
			if v, ok := form.trimmed("payment"); ok {
				rec.Payment = v
			}
			if v, ok := form.trimmed("notes"); ok {
				rec.Notes = v
			}
		},
		SetID: func(rec *domain.Sale, id string) { rec.ID = id },
	}
}
