// Package reports computes read-only views over a book, composing
// balance aggregation with price conversion into the user's
// reporting currency.
package reports

import (
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
	"github.com/tally-dev/tally/internal/pricedb"
)

// Row is one account line in a balance report.
type Row struct {
	Account   model.Account
	Commodity model.Commodity
	Total     money.Money // native commodity, non-negative magnitude
	Converted money.Money // reporting currency
}

// BalanceReport holds per-account balances and per-type grand totals,
// all converted into a single reporting currency.
type BalanceReport struct {
	AsOf         time.Time
	Currency     model.Commodity
	Rows         []Row
	TotalsByType map[model.AccountType]money.Money
}

// Balance builds a balance report as of the cutoff (zero time means
// all history). Hidden accounts and the ROOT account are skipped.
// Fails when an account's commodity has no applicable quote against
// the reporting currency.
func Balance(b *book.Book, prices *pricedb.DB, currency model.Commodity, asOf time.Time) (*BalanceReport, error) {
	report := &BalanceReport{
		AsOf:         asOf,
		Currency:     currency,
		TotalsByType: make(map[model.AccountType]money.Money),
	}

	for _, a := range b.Accounts() {
		if a.IsRoot() || a.Hidden {
			continue
		}

		commodity, ok := b.Commodity(a.CommodityGUID)
		if !ok {
			return nil, fmt.Errorf("account %s: unknown commodity %s", a.Path, a.CommodityGUID)
		}

		total, err := b.Total(a.GUID, asOf)
		if err != nil {
			return nil, fmt.Errorf("totaling %s: %w", a.Path, err)
		}

		converted, err := prices.Convert(total, commodity, currency, asOf)
		if err != nil {
			return nil, fmt.Errorf("converting %s: %w", a.Path, err)
		}

		report.Rows = append(report.Rows, Row{
			Account:   a,
			Commodity: commodity,
			Total:     total,
			Converted: converted,
		})

		typeTotal, ok := report.TotalsByType[a.Type]
		if !ok {
			typeTotal = money.Zero(currency.Mnemonic)
		}
		typeTotal, err = typeTotal.Add(converted)
		if err != nil {
			return nil, err
		}
		report.TotalsByType[a.Type] = typeTotal
	}

	return report, nil
}
