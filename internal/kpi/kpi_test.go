package kpi

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tintshop/internal/store"
	"tintshop/pkg/domain"
)

var now = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

func TestComputeUpcomingAppointments(t *testing.T) {
	snap := store.Snapshot{
		Appointments: []domain.Appointment{
			{Date: "2026-08-30", Status: domain.StatusScheduled}, // today counts
			{Date: "2026-09-15", Status: domain.StatusCompleted}, // future, any non-cancelled status
			{Date: "2026-09-15", Status: "CANCELLED"},            // cancelled in any casing excluded
			{Date: "2026-08-29", Status: domain.StatusScheduled}, // past
			{Date: "soon", Status: domain.StatusScheduled},       // unparsable date excluded
			{Date: "", Status: domain.StatusScheduled},
		},
	}
	sum := Compute(snap, now)
	assert.Equal(t, 2, sum.UpcomingAppointments)
}

func TestComputeMonthRevenue(t *testing.T) {
	snap := store.Snapshot{
		Sales: []domain.Sale{
			{Date: "2026-08-01", Amount: 100},
			{Date: "2026-08-30", Amount: 49.5},
			{Date: "2026-07-31", Amount: 500}, // previous month
			{Date: "2025-08-15", Amount: 500}, // same month, other year
			{Date: "yesterday", Amount: 1000}, // unparsable
		},
	}
	sum := Compute(snap, now)
	assert.Equal(t, 149.5, sum.MonthRevenue)
}

func TestComputeCustomers(t *testing.T) {
	snap := store.Snapshot{
		Customers: []domain.Customer{{ID: "c_1"}, {ID: "c_2"}, {ID: "c_3"}},
	}
	assert.Equal(t, 3, Compute(snap, now).Customers)
}

func TestTone(t *testing.T) {
	assert.Equal(t, ToneSuccess, Tone("Completed"))
	assert.Equal(t, ToneSuccess, Tone("completed"))
	assert.Equal(t, ToneWarn, Tone(" Cancelled "))
	assert.Equal(t, ToneNeutral, Tone("Scheduled"))
	assert.Equal(t, ToneNeutral, Tone("Waiting on parts"))
	assert.Equal(t, ToneNeutral, Tone(""))
}

func TestCollector(t *testing.T) {
	c := NewCollector(func() Summary {
		return Summary{Customers: 3, UpcomingAppointments: 2, MonthRevenue: 149.5}
	})

	expected := `
# HELP tintshop_appointments_upcoming Appointments dated today or later and not cancelled.
# TYPE tintshop_appointments_upcoming gauge
tintshop_appointments_upcoming 2
# HELP tintshop_customers_total Number of customer records.
# TYPE tintshop_customers_total gauge
tintshop_customers_total 3
# HELP tintshop_revenue_month Sum of sale amounts dated in the current calendar month.
# TYPE tintshop_revenue_month gauge
tintshop_revenue_month 149.5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected)))
}
