package kpi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector exposes the dashboard indicators as Prometheus gauges. Values
// are recomputed from a fresh snapshot on every scrape, matching the
// recompute-on-render model of the rest of the application.
type Collector struct {
	snapshot func() Summary

	customers    *prometheus.Desc
	upcoming     *prometheus.Desc
	monthRevenue *prometheus.Desc
}

// NewCollector returns a collector that derives gauge values from snapshot
// on each scrape.
func NewCollector(snapshot func() Summary) *Collector {
	return &Collector{
		snapshot: snapshot,
		customers: prometheus.NewDesc(
			"tintshop_customers_total",
			"Number of customer records.",
			nil, nil,
		),
		upcoming: prometheus.NewDesc(
			"tintshop_appointments_upcoming",
			"Appointments dated today or later and not cancelled.",
			nil, nil,
		),
		monthRevenue: prometheus.NewDesc(
			"tintshop_revenue_month",
			"Sum of sale amounts dated in the current calendar month.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.customers
	ch <- c.upcoming
	ch <- c.monthRevenue
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	sum := c.snapshot()
	ch <- prometheus.MustNewConstMetric(c.customers, prometheus.GaugeValue, float64(sum.Customers))
	ch <- prometheus.MustNewConstMetric(c.upcoming, prometheus.GaugeValue, float64(sum.UpcomingAppointments))
	ch <- prometheus.MustNewConstMetric(c.monthRevenue, prometheus.GaugeValue, sum.MonthRevenue)
}
