package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/reports"
)

func newExportCommand(bookPath *string) *cobra.Command {
	var asOf string
	var currency string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Export the balance report as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildBalanceReport(cmd, *bookPath, asOf, currency)
			if err != nil {
				return err
			}

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("creating export file: %w", err)
			}
			defer f.Close()

			if err := reports.WriteCSV(f, report); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d accounts to %s\n", len(report.Rows), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "only count transactions strictly before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&currency, "currency", "", "reporting currency code (defaults to tally.yaml)")

	return cmd
}
