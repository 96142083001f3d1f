package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"tintshop/internal/backup"
	"tintshop/internal/crud"
	"tintshop/internal/slot"
	"tintshop/internal/store"
	"tintshop/pkg/domain"
)

// app wires one storage adapter, the in-memory store, and the services on
// top of it. Built once per invocation in PersistentPreRunE.
type app struct {
	log     zerolog.Logger
	adapter slot.Adapter
	store   *store.Store

	customers    *crud.Controller[domain.Customer]
	appointments *crud.Controller[domain.Appointment]
	sales        *crud.Controller[domain.Sale]
	backup       *backup.Service
}

var shop *app

var rootCmd = &cobra.Command{
	Use:   "tintshop",
	Short: "Record manager for a tinting and detailing shop",
	Long: `Tintshop keeps the shop's customers, appointments, sales, and
business settings in a local embedded database, with JSON export and
import for backups.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		shop = a
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if shop != nil {
			_ = shop.adapter.Close()
		}
	},
}

func newApp() (*app, error) {
	log := newLogger()
	adapter, err := slot.Open()
	if err != nil {
		return nil, err
	}
	st := store.Open(adapter, log)
	return &app{
		log:          log,
		adapter:      adapter,
		store:        st,
		customers:    crud.NewCustomers(st),
		appointments: crud.NewAppointments(st),
		sales:        crud.NewSales(st),
		backup:       backup.NewService(st),
	}, nil
}

// newLogger builds a console logger. TINTSHOP_LOG_LEVEL selects verbosity;
// the default shows warnings and above so record listings stay clean.
func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if raw := os.Getenv("TINTSHOP_LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(raw)); err == nil {
			level = parsed
		}
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
