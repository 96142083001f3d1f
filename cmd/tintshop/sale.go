package main

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"tintshop/internal/crud"
)

var (
	saleDate     string
	saleCustomer string
	saleItem     string
	saleAmount   string
	salePayment  string
	saleNotes    string
)

func saleFields() map[string]*string {
	return map[string]*string{
		"date":     &saleDate,
		"customer": &saleCustomer,
		"item":     &saleItem,
		"amount":   &saleAmount,
		"payment":  &salePayment,
		"notes":    &saleNotes,
	}
}

func registerSaleFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&saleDate, "date", "", "Sale date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&saleCustomer, "customer", "", "Customer name")
	cmd.Flags().StringVar(&saleItem, "item", "", "Item or service sold (required)")
	cmd.Flags().StringVar(&saleAmount, "amount", "", "Amount; must parse to a number (required)")
	cmd.Flags().StringVar(&salePayment, "payment", "", "Payment method")
	cmd.Flags().StringVar(&saleNotes, "notes", "", "Free-form notes")
}

var saleCmd = &cobra.Command{
	Use:   "sale",
	Short: "Manage sale records",
}

var saleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a sale record",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, _, err := shop.sales.Submit(fullForm(saleFields()))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Created sale %s (%.2f)\n", rec.ID, rec.Amount)
		return nil
	},
}

var saleEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Update fields of an existing sale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cur, ok := shop.sales.BeginEdit(args[0])
		if !ok {
			return fmt.Errorf("no sale with id %s", args[0])
		}
		form := crud.Form{
			"date":     cur.Date,
			"customer": cur.Customer,
			"item":     cur.Item,
			"amount":   strconv.FormatFloat(cur.Amount, 'f', -1, 64),
			"payment":  cur.Payment,
			"notes":    cur.Notes,
		}
		rec, outcome, err := shop.sales.Submit(overlayChanged(cmd, saleFields(), form))
		if err != nil {
			return err
		}
		if outcome == crud.Skipped {
			fmt.Fprintln(os.Stdout, "Sale was deleted; nothing updated.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Updated sale %s\n", rec.ID)
		return nil
	},
}

var saleDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a sale record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := shop.sales.Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Deleted sale %s\n", args[0])
		return nil
	},
}

var saleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sale records",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := shop.store.Sales()
		if len(recs) == 0 {
			fmt.Fprintln(os.Stdout, "No sales.")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tCUSTOMER\tITEM\tAMOUNT\tPAYMENT")
		for _, s := range recs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%s\n", s.ID, s.Date, s.Customer, s.Item, s.Amount, s.Payment)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(saleCmd)
	saleCmd.AddCommand(saleAddCmd, saleEditCmd, saleDeleteCmd, saleListCmd)
	registerSaleFlags(saleAddCmd)
	registerSaleFlags(saleEditCmd)
}
