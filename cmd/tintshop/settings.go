package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	settingsBusinessName string
	settingsTaxRate      float64
	settingsAddress      string
	settingsShopPhone    string
	settingsShopEmail    string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or update the business profile",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current business settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := shop.store.Settings()
		fmt.Fprintf(os.Stdout, "Business name: %s\n", s.BusinessName)
		fmt.Fprintf(os.Stdout, "Tax rate:      %.2f%%\n", s.TaxRate)
		fmt.Fprintf(os.Stdout, "Address:       %s\n", s.Address)
		fmt.Fprintf(os.Stdout, "Phone:         %s\n", s.ShopPhone)
		fmt.Fprintf(os.Stdout, "Email:         %s\n", s.ShopEmail)
		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Update business settings fields",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s := shop.store.Settings()
		if cmd.Flags().Changed("business-name") {
			s.BusinessName = settingsBusinessName
		}
		if cmd.Flags().Changed("tax-rate") {
			s.TaxRate = settingsTaxRate
		}
		if cmd.Flags().Changed("address") {
			s.Address = settingsAddress
		}
		if cmd.Flags().Changed("phone") {
			s.ShopPhone = settingsShopPhone
		}
		if cmd.Flags().Changed("email") {
			s.ShopEmail = settingsShopEmail
		}
		if err := shop.store.UpdateSettings(s); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "Settings saved.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	settingsSetCmd.Flags().StringVar(&settingsBusinessName, "business-name", "", "Business display name")
	settingsSetCmd.Flags().Float64Var(&settingsTaxRate, "tax-rate", 0, "Tax rate percentage")
	settingsSetCmd.Flags().StringVar(&settingsAddress, "address", "", "Street address")
	settingsSetCmd.Flags().StringVar(&settingsShopPhone, "phone", "", "Shop phone number")
	settingsSetCmd.Flags().StringVar(&settingsShopEmail, "email", "", "Shop email address")
}
