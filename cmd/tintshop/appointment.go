package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tintshop/internal/crud"
	"tintshop/internal/kpi"
)

var (
	apptDate     string
	apptTime     string
	apptCustomer string
	apptVehicle  string
	apptService  string
	apptPrice    string
	apptStatus   string
)

func appointmentFields() map[string]*string {
	return map[string]*string{
		"date":     &apptDate,
		"time":     &apptTime,
		"customer": &apptCustomer,
		"vehicle":  &apptVehicle,
		"service":  &apptService,
		"price":    &apptPrice,
		"status":   &apptStatus,
	}
}

func registerAppointmentFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&apptDate, "date", "", "Appointment date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&apptTime, "time", "", "Appointment time (required)")
	cmd.Flags().StringVar(&apptCustomer, "customer", "", "Customer name (required)")
	cmd.Flags().StringVar(&apptVehicle, "vehicle", "", "Vehicle description")
	cmd.Flags().StringVar(&apptService, "service", "", "Service description")
	cmd.Flags().StringVar(&apptPrice, "price", "", "Quoted price; unparsable input becomes 0")
	cmd.Flags().StringVar(&apptStatus, "status", "", "Status; empty defaults to Scheduled")
}

var appointmentCmd = &cobra.Command{
	Use:     "appointment",
	Aliases: []string{"appt"},
	Short:   "Manage appointment records",
}

var appointmentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an appointment record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, _, err := shop.appointments.Submit(fullForm(appointmentFields()))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created appointment %s\n", rec.ID)
		return nil
	},
}

var appointmentEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of an existing appointment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cur, ok := shop.appointments.BeginEdit(args[0])
		if !ok {
			return fmt.Errorf("no appointment with id %s", args[0])
		}
		form := crud.Form{
			"date":     cur.Date,
			"time":     cur.Time,
			"customer": cur.Customer,
			"vehicle":  cur.Vehicle,
			"service":  cur.Service,
			"price":    strconv.FormatFloat(cur.Price, 'f', -1, 64),
			"status":   cur.Status,
		}
		rec, outcome, err := shop.appointments.Submit(overlayChanged(cmd, appointmentFields(), form))
		if err != nil {
			return err
		}
		if outcome == crud.Skipped {
			fmt.Fprintln(os.Stdout, "Appointment was deleted; nothing updated.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Updated appointment %s\n", rec.ID)
		return nil
	},
}

var appointmentDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an appointment record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.appointments.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted appointment %s\n", args[0])
		return nil
	},
}

var appointmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointment records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := shop.store.Appointments()
		if len(recs) == 0 {
			fmt.Fprintln(os.Stdout, "No appointments.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTIME\tCUSTOMER\tSERVICE\tPRICE\tSTATUS")
		for _, a := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%.2f\t%s (%s)\n",
				a.ID, a.Date, a.Time, a.Customer, a.Service, a.Price, a.Status, kpi.Tone(a.Status))
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(appointmentCmd)
	appointmentCmd.AddCommand(appointmentAddCmd, appointmentEditCmd, appointmentDeleteCmd, appointmentListCmd)
	registerAppointmentFlags(appointmentAddCmd)
	registerAppointmentFlags(appointmentEditCmd)
}
