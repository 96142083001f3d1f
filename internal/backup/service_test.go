package backup

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshop/internal/archive"
	"tintshop/internal/slot"
	"tintshop/internal/store"
	"tintshop/pkg/domain"
)

func newFixture(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	st := store.Open(slot.NewMemory(), zerolog.Nop())
	return NewService(st), st
}

func seed(t *testing.T, st *store.Store) {
	t.Helper()
	st.SetCustomers([]domain.Customer{{ID: "c_1", Name: "Jane"}, {ID: "c_2", Name: "Bob"}})
	st.SetAppointments([]domain.Appointment{{ID: "a_1", Date: "2026-09-01", Time: "10:00", Customer: "Jane", Status: domain.StatusScheduled}})
	st.SetSales([]domain.Sale{{ID: "s_1", Date: "2026-08-15", Item: "Tint", Amount: 199.5}})
	require.NoError(t, st.UpdateSettings(domain.Settings{BusinessName: "Shine Co", TaxRate: 8.5}))
}

func TestExportMeta(t *testing.T) {
	svc, st := newFixture(t)
	seed(t, st)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 5, 6, 789_000_000, time.UTC)
	}

	doc := svc.Export()
	assert.Equal(t, FormatName, doc.Meta.Name)
	assert.Equal(t, SchemaVersion, doc.Meta.Version)
	assert.Equal(t, "2026-08-30T14:05:06.789Z", doc.Meta.ExportedAt)
	assert.Len(t, doc.Customers, 2)
	assert.Len(t, doc.Appointments, 1)
	assert.Len(t, doc.Sales, 1)
	assert.Equal(t, "Shine Co", doc.Settings.BusinessName)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, st := newFixture(t)
	seed(t, st)
	payload, err := svc.ExportJSON()
	require.NoError(t, err)

	fresh, freshStore := newFixture(t)
	require.NoError(t, fresh.Import(payload))

	snap := freshStore.Snapshot()
	assert.Equal(t, st.Customers(), snap.Customers)
	assert.Equal(t, st.Appointments(), snap.Appointments)
	assert.Equal(t, st.Sales(), snap.Sales)
	assert.Equal(t, st.Settings(), snap.Settings)
}

func TestImportMalformedDocument(t *testing.T) {
	svc, st := newFixture(t)
	seed(t, st)

	for _, payload := range []string{"", "not json", "[]", `"str"`, "null"} {
		err := svc.Import([]byte(payload))
		assert.ErrorIs(t, err, ErrMalformedDocument, "payload %q", payload)
	}
	assert.Len(t, st.Customers(), 2, "state untouched after rejected import")
}

func TestImportRepairsDamagedSections(t *testing.T) {
	svc, st := newFixture(t)

	require.NoError(t, svc.Import([]byte(`{
		"customers": [{"id":"c_1","name":"Jane"},{"id":"c_2","name":"Bob"}],
		"appointments": "oops",
		"settings": 42
	}`)))

	snap := st.Snapshot()
	assert.Len(t, snap.Customers, 2)
	assert.Empty(t, snap.Appointments, "damaged section degrades to empty")
	assert.Empty(t, snap.Sales, "missing section degrades to empty")
	assert.Zero(t, snap.Settings)
}

func TestImportClearsEditingPointers(t *testing.T) {
	svc, st := newFixture(t)
	st.SetEditing(domain.EntityCustomer, "c_1")

	require.NoError(t, svc.Import([]byte(`{"customers":[]}`)))
	assert.Empty(t, st.EditingID(domain.EntityCustomer))
}

func TestResetAll(t *testing.T) {
	svc, st := newFixture(t)
	seed(t, st)

	require.NoError(t, svc.ResetAll())
	snap := st.Snapshot()
	assert.Empty(t, snap.Customers)
	assert.Empty(t, snap.Appointments)
	assert.Empty(t, snap.Sales)
	assert.Zero(t, snap.Settings)
}

func TestFileName(t *testing.T) {
	ts := time.Date(2026, 8, 30, 14, 5, 6, 789_000_000, time.UTC)
	assert.Equal(t, "tintshop-data-2026-08-30T14-05-06-789Z.json", FileName(ts))
}

func TestWriteArchive(t *testing.T) {
	svc, st := newFixture(t)
	seed(t, st)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 30, 14, 5, 6, 789_000_000, time.UTC)
	}

	dest := archive.NewMemory()
	info, err := svc.WriteArchive(context.Background(), dest)
	require.NoError(t, err)
	assert.Equal(t, "tintshop-data-2026-08-30T14-05-06-789Z.json", info.Key)
	assert.Equal(t, "application/json", info.ContentType)

	_, rc, err := dest.Get(context.Background(), info.Key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, FormatName, doc.Meta.Name)
	assert.Len(t, doc.Customers, 2)

	// A second export at the same timestamp collides with the immutable key.
	_, err = svc.WriteArchive(context.Background(), dest)
	assert.ErrorIs(t, err, archive.ErrExists)
}
