package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/guid"
	"github.com/tally-dev/tally/internal/model"
)

func newAddCommand(bookPath *string) *cobra.Command {
	var date string
	var description string
	var from string
	var to string
	var amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transfer between two accounts",
		Args:  cobra.NoArgs,
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

			txn, err := buildTransfer(b, date, description, from, to, amount)
			if err != nil {
				return err
			}

			if verrs := book.ValidateTransaction(txn, b); len(verrs) > 0 {
				msgs := make([]string, len(verrs))
				for i, ve := range verrs {
					msgs[i] = ve.Error()
				}
				return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
			}

			if err := store.CreateTransaction(cmd.Context(), txn); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s (%s)\n", description, txn.GUID)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(dateFormat), "transaction date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&description, "description", "", "transaction description (required)")
	cmd.Flags().StringVar(&from, "from", "", "source account path (required)")
	cmd.Flags().StringVar(&to, "to", "", "destination account path (required)")
	cmd.Flags().StringVar(&amount, "amount", "", "amount in the accounts' commodity (required)")
	_ = cmd.MarkFlagRequired("description")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// buildTransfer assembles a balanced two-split transaction moving
// amount from one account to another. Both accounts must share a
// commodity; cross-commodity entries need explicit split quantities,
// which the CLI does not take.
func buildTransfer(b *book.Book, date, description, from, to, amount string) (model.Transaction, error) {
	day, err := time.Parse(dateFormat, date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing --date %q: %w", date, err)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing --amount %q: %w", amount, err)
	}
	if !value.IsPositive() {
		return model.Transaction{}, fmt.Errorf("--amount must be positive")
	}

	source, ok := b.AccountByPath(from)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: %s", book.ErrUnknownAccount, from)
	}
	dest, ok := b.AccountByPath(to)
	if !ok {
		return model.Transaction{}, fmt.Errorf("%w: %s", book.ErrUnknownAccount, to)
	}
	if source.CommodityGUID != dest.CommodityGUID {
		return model.Transaction{}, fmt.Errorf("accounts %s and %s use different commodities", from, to)
	}

	num, denom, err := model.Rational(value)
	if err != nil {
		return model.Transaction{}, err
	}

	txGUID := guid.New()
	return model.Transaction{
		GUID:         txGUID,
		CurrencyGUID: source.CommodityGUID,
		Date:         day,
		Description:  description,
		Splits: []model.Split{
			{
				GUID:            guid.New(),
				TransactionGUID: txGUID,
				AccountGUID:     source.GUID,
				ValueNum:        -num,
				ValueDenom:      denom,
				QuantityNum:     -num,
				QuantityDenom:   denom,
			},
			{
				GUID:            guid.New(),
				TransactionGUID: txGUID,
				AccountGUID:     dest.GUID,
				ValueNum:        num,
				ValueDenom:      denom,
				QuantityNum:     num,
				QuantityDenom:   denom,
			},
		},
	}, nil
}
