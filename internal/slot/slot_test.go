package slot

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshop/pkg/domain"
)

func openAdapters(t *testing.T) map[string]Adapter {
	t.Helper()
	dir := t.TempDir()
	sq, err := OpenSQLite(filepath.Join(dir, "slots.db"))
	require.NoError(t, err)
	bl, err := OpenBolt(filepath.Join(dir, "slots.bolt"))
	require.NoError(t, err)
	adapters := map[string]Adapter{
		"memory": NewMemory(),
		"sqlite": sq,
		"bolt":   bl,
	}
	t.Cleanup(func() {
		for _, a := range adapters {
			_ = a.Close()
		}
	})
	return adapters
}

func TestAdapterContract(t *testing.T) {
	for name, a := range openAdapters(t) {
		t.Run(name, func(t *testing.T) {
			raw, err := a.Load(Customers)
			require.NoError(t, err)
			assert.Nil(t, raw, "absent slot must load as nil")

			require.NoError(t, a.Save(Customers, []byte(`[{"id":"c_1"}]`)))
			raw, err = a.Load(Customers)
			require.NoError(t, err)
			assert.JSONEq(t, `[{"id":"c_1"}]`, string(raw))

			require.NoError(t, a.Save(Customers, []byte(`[]`)))
			raw, err = a.Load(Customers)
			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(raw))

			require.NoError(t, a.Remove(Customers))
			raw, err = a.Load(Customers)
			require.NoError(t, err)
			assert.Nil(t, raw)

			// removing an absent slot is not an error
			require.NoError(t, a.Remove(Customers))
		})
	}
}

func TestAdapterSlotsAreIndependent(t *testing.T) {
	for name, a := range openAdapters(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, a.Save(Sales, []byte(`[1]`)))
			require.NoError(t, a.Save(Settings, []byte(`{}`)))
			require.NoError(t, a.Remove(Sales))
			raw, err := a.Load(Settings)
			require.NoError(t, err)
			assert.JSONEq(t, `{}`, string(raw))
		})
	}
}

func TestLoadCollectionLeniency(t *testing.T) {
	m := NewMemory()

	assert.Empty(t, LoadCollection[domain.Customer](m, Customers), "absent slot")

	m.SeedRaw(Customers, []byte(`{not json`))
	assert.Empty(t, LoadCollection[domain.Customer](m, Customers), "corrupt payload")

	m.SeedRaw(Customers, []byte(`null`))
	assert.Empty(t, LoadCollection[domain.Customer](m, Customers), "json null")

	m.SeedRaw(Customers, []byte(`{"id":"c_1"}`))
	assert.Empty(t, LoadCollection[domain.Customer](m, Customers), "wrong shape")

	m.SeedRaw(Customers, []byte(`[{"id":"c_1","name":"Jane"}]`))
	got := LoadCollection[domain.Customer](m, Customers)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "Jane", got[0].Name)
	}
}

func TestLoadSingletonLeniency(t *testing.T) {
	m := NewMemory()

	assert.Zero(t, LoadSingleton[domain.Settings](m, Settings))

	m.SeedRaw(Settings, []byte(`"oops"`))
	assert.Zero(t, LoadSingleton[domain.Settings](m, Settings))

	m.SeedRaw(Settings, []byte(`{"businessName":"Shine Co"}`))
	assert.Equal(t, "Shine Co", LoadSingleton[domain.Settings](m, Settings).BusinessName)
}

func TestSaveWrapsWriteFailure(t *testing.T) {
	m := NewMemory()
	boom := errors.New("disk full")
	m.FailWrites(boom)

	err := Save(m, Sales, []domain.Sale{})
	var saveErr domain.SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, "sales", saveErr.Slot)
	assert.ErrorIs(t, err, boom)
}
