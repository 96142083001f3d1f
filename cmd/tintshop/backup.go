package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"tintshop/internal/archive"
	"tintshop/internal/backup"
)

var (
	exportOut       string
	exportToArchive bool
	importYes       bool
	resetYes        bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON backup document",
	Long: `Export writes every record and the business settings into one JSON
document. By default it goes to a timestamped file in the current
directory; --out redirects it, "-" writes to stdout, and --archive sends
it to the configured archive backend instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportToArchive {
			dest, err := archive.Open(cmd.Context())
			if err != nil {
				return err
			}
			info, err := shop.backup.WriteArchive(cmd.Context(), dest)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "Archived %s (%d bytes, %s)\n", info.Key, info.Size, dest.Driver())
			return nil
		}
		payload, err := shop.backup.ExportJSON()
		if err != nil {
			return err
		}
		if exportOut == "-" {
			_, err = os.Stdout.Write(append(payload, '\n'))
			return err
		}
		name := exportOut
		if name == "" {
			name = backup.FileName(time.Now())
		}
		if err := os.WriteFile(name, payload, 0o644); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Exported to %s\n", name)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace all data from a JSON backup document",
	Long: `Import replaces every record and the business settings with the
contents of a backup document. Sections that are missing or damaged come
back empty; the rest of the document still imports. Requires --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !importYes {
			return fmt.Errorf("import replaces all current data; re-run with --yes to confirm")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := shop.backup.Import(data); err != nil {
			return err
		}
		snap := shop.store.Snapshot()
		fmt.Fprintf(os.Stdout, "Imported %d customers, %d appointments, %d sales\n",
			len(snap.Customers), len(snap.Appointments), len(snap.Sales))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all data and restore empty defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("reset permanently deletes all data; re-run with --yes to confirm")
		}
		if err := shop.backup.ResetAll(); err != nil {
			return err
		}
		fmt.Fprintln(os.Stdout, "All data deleted.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd, resetCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file; \"-\" for stdout (default timestamped name)")
	exportCmd.Flags().BoolVar(&exportToArchive, "archive", false, "Write to the configured archive backend instead of a file")
	importCmd.Flags().BoolVarP(&importYes, "yes", "y", false, "Confirm replacing all current data")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Confirm deleting all data")
}
