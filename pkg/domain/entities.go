// Package domain defines the persistent entities, value types, and error
// kinds shared by the tintshop record manager.
package domain

// EntityType identifies the kind of record stored in a collection slot.
type EntityType string

// Supported entity type identifiers used in editing pointers and persistence slots.
const (
	// EntityCustomer identifies a customer record.
	EntityCustomer EntityType = "customer"
	// EntityAppointment identifies an appointment record.
	EntityAppointment EntityType = "appointment"
	// EntitySale identifies a sale record.
	EntitySale EntityType = "sale"
)

// Appointment status is an open string, not a closed enum. Only two values
// carry recognized semantics: Completed and Cancelled drive KPI filtering
// and badge classification. Anything else is displayed verbatim.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Customer is a client of the shop. Only the name is mandatory; contact and
// vehicle details are free text.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Vehicle string `json:"vehicle"`
	Notes   string `json:"notes"`
}

// Appointment is a scheduled job. The customer field is free text, not a
// reference into the customers collection.
type Appointment struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Time     string  `json:"time"`
	Customer string  `json:"customer"`
	Vehicle  string  `json:"vehicle"`
	Service  string  `json:"service"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
}

// Sale is a completed transaction.
type Sale struct {
	ID       string  `json:"id"`
	Date     string  `json:"date"`
	Customer string  `json:"customer"`
	Item     string  `json:"item"`
	Amount   float64 `json:"amount"`
	Payment  string  `json:"payment"`
	Notes    string  `json:"notes"`
}

// Settings is the singleton business profile. It has no ID; it is identified
// by its storage slot alone.
type Settings struct {
	BusinessName string  `json:"businessName"`
	TaxRate      float64 `json:"taxRate"`
	Address      string  `json:"address"`
	ShopPhone    string  `json:"shopPhone"`
	ShopEmail    string  `json:"shopEmail"`
}

// Record is implemented by every collection entity.
type Record interface {
	RecordID() string
}

// RecordID returns the customer's opaque identifier.
func (c Customer) RecordID() string { return c.ID }

// RecordID returns the appointment's opaque identifier.
func (a Appointment) RecordID() string { return a.ID }

// RecordID returns the sale's opaque identifier.
func (s Sale) RecordID() string { return s.ID }
