package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"tintshop/internal/kpi"
)

var kpiListen string

var kpiCmd = &cobra.Command{
	Use:   "kpi",
	Short: "Show dashboard indicators",
	Long: `Kpi prints the customer count, upcoming appointment count, and
current-month revenue. With --listen it instead serves the same numbers
as Prometheus gauges on /metrics until interrupted.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := func() kpi.Summary {
			return kpi.Compute(shop.store.Snapshot(), time.Now())
		}
		if kpiListen != "" {
			reg := prometheus.NewRegistry()
			reg.MustRegister(kpi.NewCollector(snapshot))
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			shop.log.Info().Str("addr", kpiListen).Msg("serving metrics")
			srv := &http.Server{Addr: kpiListen, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
			return srv.ListenAndServe()
		}
		sum := snapshot()
		fmt.Fprintf(os.Stdout, "Customers:             %d\n", sum.Customers)
		fmt.Fprintf(os.Stdout, "Upcoming appointments: %d\n", sum.UpcomingAppointments)
		fmt.Fprintf(os.Stdout, "Revenue this month:    %.2f\n", sum.MonthRevenue)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(kpiCmd)
	kpiCmd.Flags().StringVar(&kpiListen, "listen", "", "Serve /metrics on this address instead of printing")
}
