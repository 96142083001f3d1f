// Package kpi derives the dashboard indicators from a state snapshot. All
// computation is read-only and recomputed from scratch on demand; nothing
// here caches or mutates.
package kpi

import (
	"strings"
	"time"

	"tintshop/internal/store"
)

// Summary holds the three headline indicators.
type Summary struct {
	Customers            int
	UpcomingAppointments int
	MonthRevenue         float64
}

// Badge tones returned by Tone.
const (
	ToneSuccess = "success"
	ToneWarn    = "warn"
	ToneNeutral = "neutral"
)

// Compute derives the summary from snap as of now. Appointments count as
// upcoming when their date parses, is today or later, and the status is not
// cancelled (any casing). Month revenue sums sale amounts whose date parses
// into the current calendar month; unparsable dates are excluded from both.
func Compute(snap store.Snapshot, now time.Time) Summary {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	upcoming := 0
	for _, a := range snap.Appointments {
		d, err := time.ParseInLocation(time.DateOnly, a.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Before(today) {
			continue
		}
		if strings.EqualFold(a.Status, "cancelled") {
			continue
		}
		upcoming++
	}

	var revenue float64
	for _, s := range snap.Sales {
		d, err := time.ParseInLocation(time.DateOnly, s.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Year() == now.Year() && d.Month() == now.Month() {
			revenue += s.Amount
		}
	}

	return Summary{
		Customers:            len(snap.Customers),
		UpcomingAppointments: upcoming,
		MonthRevenue:         revenue,
	}
}

// Tone classifies an appointment status for display. Completed reads as
// success and cancelled as a warning; every other value, including custom
// statuses, is neutral.
func Tone(status string) string {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "completed":
		return ToneSuccess
	case "cancelled":
		return ToneWarn
	default:
		return ToneNeutral
	}
}
