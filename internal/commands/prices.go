package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/guid"
	"github.com/tally-dev/tally/internal/importer"
	"github.com/tally-dev/tally/internal/model"
)

func newPricesCommand(bookPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prices",
		Short: "Manage historical price quotes",
	}

	cmd.AddCommand(newPricesImportCommand(bookPath))
	cmd.AddCommand(newPricesListCommand(bookPath))

	return cmd
}

func newPricesImportCommand(bookPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import price quotes from a CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*bookPath)
			if err != nil {
				return err
			}

			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q", format)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening quotes file: %w", err)
			}
			defer f.Close()

			quotes, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			store, b, err := openBook(cmd.Context(), e)
			if err != nil {
				return err
			}
			defer store.Close()

			prices, err := resolveQuotes(b, quotes)
			if err != nil {
				return err
			}

			if err := store.SavePrices(cmd.Context(), prices); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d quotes\n", len(prices))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "quotes", "quote file format")

	return cmd
}

// resolveQuotes turns parsed quotes into prices, resolving mnemonics
// against the book's commodity table.
func resolveQuotes(b *book.Book, quotes []importer.Quote) ([]model.Price, error) {
	prices := make([]model.Price, 0, len(quotes))
	for _, q := range quotes {
		commodity, ok := b.CommodityByMnemonic(q.Commodity)
		if !ok {
			return nil, fmt.Errorf("unknown commodity %q", q.Commodity)
		}
		currency, ok := b.CommodityByMnemonic(q.Currency)
		if !ok {
			return nil, fmt.Errorf("unknown currency %q", q.Currency)
		}
		if !currency.IsCurrency() {
			return nil, fmt.Errorf("%q is not a currency", q.Currency)
		}

		num, denom, err := model.Rational(q.Value)
		if err != nil {
			return nil, err
		}

		prices = append(prices, model.Price{
			GUID:          guid.New(),
			CommodityGUID: commodity.GUID,
			CurrencyGUID:  currency.GUID,
			Date:          q.Date,
			ValueNum:      num,
			ValueDenom:    denom,
			Source:        q.Source,
		})
	}
	return prices, nil
}

func newPricesListCommand(bookPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [MNEMONIC]",
		Short: "List stored price quotes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(*bookPath)
			if err != nil {
				return err
			}

			store, b, err := openBook(cmd.Context(), e)
			if err != nil {
				return err
			}
			defer store.Close()

			filter := ""
			if len(args) > 0 {
				filter = args[0]
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tCOMMODITY\tCURRENCY\tRATE\tSOURCE")
			for _, p := range b.Prices() {
				commodity, _ := b.Commodity(p.CommodityGUID)
				currency, _ := b.Commodity(p.CurrencyGUID)
				if filter != "" && commodity.Mnemonic != filter {
					continue
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					p.Date.Format(dateFormat), commodity.Mnemonic, currency.Mnemonic,
					p.Rate(), p.Source)
			}
			return w.Flush()
		},
	}

	return cmd
}
