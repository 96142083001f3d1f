package store

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshop/internal/slot"
	"tintshop/pkg/domain"
)

func newTestStore(t *testing.T) (*Store, *slot.Memory) {
	t.Helper()
	m := slot.NewMemory()
	return Open(m, zerolog.Nop()), m
}

func TestOpenLoadsSeededState(t *testing.T) {
	m := slot.NewMemory()
	m.SeedRaw(slot.Customers, []byte(`[{"id":"c_1","name":"Jane"}]`))
	m.SeedRaw(slot.Appointments, []byte(`garbage`))
	m.SeedRaw(slot.Settings, []byte(`{"businessName":"Shine Co","taxRate":8.5}`))

	s := Open(m, zerolog.Nop())
	assert.Len(t, s.Customers(), 1)
	assert.Empty(t, s.Appointments(), "corrupt slot degrades to empty")
	assert.Empty(t, s.Sales())
	assert.Equal(t, "Shine Co", s.Settings().BusinessName)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, _ := newTestStore(t)
	s.SetCustomers([]domain.Customer{{ID: "c_1", Name: "Jane"}})

	got := s.Customers()
	got[0].Name = "changed"
	assert.Equal(t, "Jane", s.Customers()[0].Name)
}

func TestPersistRoundTrip(t *testing.T) {
	s, m := newTestStore(t)
	s.SetSales([]domain.Sale{{ID: "s_1", Amount: 100}})
	require.NoError(t, s.Persist(slot.Sales))

	reopened := Open(m, zerolog.Nop())
	if assert.Len(t, reopened.Sales(), 1) {
		assert.Equal(t, 100.0, reopened.Sales()[0].Amount)
	}
}

func TestPersistSurfacesWriteFailure(t *testing.T) {
	s, m := newTestStore(t)
	m.FailWrites(errors.New("disk full"))
	s.SetCustomers([]domain.Customer{{ID: "c_1"}})

	err := s.Persist(slot.Customers)
	var saveErr domain.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "customers", saveErr.Slot)
	// in-memory state is kept even though the write failed
	assert.Len(t, s.Customers(), 1)
}

func TestEditingPointers(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.EditingID(domain.EntityCustomer))

	s.SetEditing(domain.EntityCustomer, "c_1")
	s.SetEditing(domain.EntitySale, "s_9")
	assert.Equal(t, "c_1", s.EditingID(domain.EntityCustomer))
	assert.Equal(t, "s_9", s.EditingID(domain.EntitySale))

	s.ClearEditing(domain.EntityCustomer)
	assert.Empty(t, s.EditingID(domain.EntityCustomer))
	assert.Equal(t, "s_9", s.EditingID(domain.EntitySale), "other kinds unaffected")
}

func TestReplaceSwapsAndClearsEditing(t *testing.T) {
	s, m := newTestStore(t)
	s.SetCustomers([]domain.Customer{{ID: "c_old"}})
	s.SetEditing(domain.EntityCustomer, "c_old")

	require.NoError(t, s.Replace(Snapshot{
		Customers: []domain.Customer{{ID: "c_new", Name: "New"}},
		Settings:  domain.Settings{BusinessName: "Shine Co"},
	}))

	assert.Equal(t, "c_new", s.Customers()[0].ID)
	assert.Empty(t, s.EditingID(domain.EntityCustomer))
	assert.Equal(t, "Shine Co", s.Settings().BusinessName)

	reopened := Open(m, zerolog.Nop())
	assert.Len(t, reopened.Customers(), 1)
	assert.Empty(t, reopened.Appointments())
}

func TestResetRestoresDefaults(t *testing.T) {
	s, m := newTestStore(t)
	s.SetCustomers([]domain.Customer{{ID: "c_1"}})
	require.NoError(t, s.Persist(slot.Customers))
	require.NoError(t, s.UpdateSettings(domain.Settings{BusinessName: "Shine Co"}))
	s.SetEditing(domain.EntityCustomer, "c_1")

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Customers())
	assert.Zero(t, s.Settings())
	assert.Empty(t, s.EditingID(domain.EntityCustomer))

	raw, err := m.Load(slot.Customers)
	require.NoError(t, err)
	assert.Nil(t, raw, "durable copy removed")
}

func TestUpdateSettingsPersists(t *testing.T) {
	s, m := newTestStore(t)
	require.NoError(t, s.UpdateSettings(domain.Settings{BusinessName: "Shine Co", TaxRate: 8.5}))

	reopened := Open(m, zerolog.Nop())
	assert.Equal(t, 8.5, reopened.Settings().TaxRate)
}
