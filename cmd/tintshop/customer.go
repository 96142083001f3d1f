package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tintshop/internal/crud"
)

var (
	customerName    string
	customerPhone   string
	customerEmail   string
	customerVehicle string
	customerNotes   string
)

func customerFields() map[string]*string {
	return map[string]*string{
		"name":    &customerName,
		"phone":   &customerPhone,
		"email":   &customerEmail,
		"vehicle": &customerVehicle,
		"notes":   &customerNotes,
	}
}

func registerCustomerFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&customerName, "name", "", "Customer name (required)")
	cmd.Flags().StringVar(&customerPhone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&customerEmail, "email", "", "Email address")
	cmd.Flags().StringVar(&customerVehicle, "vehicle", "", "Vehicle description")
	cmd.Flags().StringVar(&customerNotes, "notes", "", "Free-form notes")
}

var customerCmd = &cobra.Command{
	Use:   "customer",
	Short: "Manage customer records",
}

var customerAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a customer record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, _, err := shop.customers.Submit(fullForm(customerFields()))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created customer %s\n", rec.ID)
		return nil
	},
}

var customerEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of an existing customer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cur, ok := shop.customers.BeginEdit(args[0])
		if !ok {
			return fmt.Errorf("no customer with id %s", args[0])
		}
		form := crud.Form{
			"name":    cur.Name,
			"phone":   cur.Phone,
			"email":   cur.Email,
			"vehicle": cur.Vehicle,
			"notes":   cur.Notes,
		}
		rec, outcome, err := shop.customers.Submit(overlayChanged(cmd, customerFields(), form))
		if err != nil {
			return err
		}
		if outcome == crud.Skipped {
			fmt.Fprintln(os.Stdout, "Customer was deleted; nothing updated.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Updated customer %s\n", rec.ID)
		return nil
	},
}

var customerDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a customer record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.customers.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted customer %s\n", args[0])
		return nil
	},
}

var customerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List customer records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := shop.store.Customers()
		if len(recs) == 0 {
			fmt.Fprintln(os.Stdout, "No customers.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPHONE\tEMAIL\tVEHICLE")
		for _, c := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Phone, c.Email, c.Vehicle)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(customerCmd)
	customerCmd.AddCommand(customerAddCmd, customerEditCmd, customerDeleteCmd, customerListCmd)
	registerCustomerFlags(customerAddCmd)
	registerCustomerFlags(customerEditCmd)
}
