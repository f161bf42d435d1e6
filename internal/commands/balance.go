package commands

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/pricedb"
	"github.com/tally-dev/tally/internal/reports"
)

func newBalanceCommand(bookPath *string) *cobra.Command {
	var asOf string
	var currency string

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Show account balances converted to the reporting currency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := buildBalanceReport(cmd, *bookPath, asOf, currency)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ACCOUNT\tTYPE\tTOTAL\tIN "+report.Currency.Mnemonic)
			for _, row := range report.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
					row.Account.Path, row.Account.Type, row.Total, row.Converted)
			}

			types := make([]model.AccountType, 0, len(report.TotalsByType))
			for t := range report.TotalsByType {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

			fmt.Fprintln(w, "\t\t\t")
			for _, t := range types {
				fmt.Fprintf(w, "%s\t\t\t%s\n", t, report.TotalsByType[t])
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "only count transactions strictly before this date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&currency, "currency", "", "reporting currency code (defaults to tally.yaml)")

	return cmd
}

// buildBalanceReport loads the book and assembles the balance report
// shared by the balance and export commands.
func buildBalanceReport(cmd *cobra.Command, bookFlag, asOfFlag, currencyFlag string) (*reports.BalanceReport, error) {
	e, err := loadEnv(bookFlag)
	if err != nil {
		return nil, err
	}

	code := currencyFlag
	if code == "" {
		code = e.mainCurrency
	}
	if code == "" {
		return nil, fmt.Errorf("no reporting currency configured (pass --currency or set currency.main in %s)", "tally.yaml")
	}

	asOf, err := parseAsOf(asOfFlag)
	if err != nil {
		return nil, err
	}

	store, b, err := openBook(cmd.Context(), e)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	currency, ok := b.CommodityByMnemonic(code)
	if !ok {
		return nil, fmt.Errorf("unknown currency %q: not a commodity in this book", code)
	}

	return reports.Balance(b, pricedb.New(b.Prices()), currency, asOf)
}
