package storage

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// SaveCommodity inserts or updates a commodity.
func (s *Store) SaveCommodity(ctx context.Context, c model.Commodity) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO commodities (guid, namespace, mnemonic, fullname)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (guid) DO UPDATE SET
		   namespace = excluded.namespace,
		   mnemonic = excluded.mnemonic,
		   fullname = excluded.fullname`,
		c.GUID, c.Namespace, c.Mnemonic, c.FullName)
	if err != nil {
		return fmt.Errorf("saving commodity %s: %w", c.Mnemonic, err)
	}
	return nil
}

// SaveAccount inserts or updates an account. Hierarchy rules are
// checked upstream by the book validator.
func (s *Store) SaveAccount(ctx context.Context, a model.Account) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO accounts (guid, name, account_type, commodity_guid, parent_guid,
		                       code, description, hidden, placeholder)
		 VALUES (?, ?, ?, NULLIF(?, ''), NULLIF(?, ''), ?, ?, ?, ?)
		 ON CONFLICT (guid) DO UPDATE SET
		   name = excluded.name,
		   account_type = excluded.account_type,
		   commodity_guid = excluded.commodity_guid,
		   parent_guid = excluded.parent_guid,
		   code = excluded.code,
		   description = excluded.description,
		   hidden = excluded.hidden,
		   placeholder = excluded.placeholder`,
		a.GUID, a.Name, a.Type, a.CommodityGUID, a.ParentGUID,
		a.Code, a.Description, a.Hidden, a.Placeholder)
	if err != nil {
		return fmt.Errorf("saving account %s: %w", a.Name, err)
	}
	return nil
}

// SavePrices upserts quotes, keyed by (commodity, currency, date) so
// re-importing a feed refreshes rather than duplicates.
func (s *Store) SavePrices(ctx context.Context, prices []model.Price) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning price transaction: %w", err)
	}
	defer tx.Rollback()

	for _, p := range prices {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO prices (guid, commodity_guid, currency_guid, date,
			                     value_num, value_denom, source)
			 VALUES (?, ?, ?, ?, ?, ?, ?)
			 ON CONFLICT (commodity_guid, currency_guid, date) DO UPDATE SET
			   value_num = excluded.value_num,
			   value_denom = excluded.value_denom,
			   source = excluded.source`,
			p.GUID, p.CommodityGUID, p.CurrencyGUID, p.Date.Format(dateFormat),
			p.ValueNum, p.ValueDenom, p.Source); err != nil {
			return fmt.Errorf("saving price %s/%s@%s: %w",
				p.CommodityGUID, p.CurrencyGUID, p.Date.Format(dateFormat), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing prices: %w", err)
	}
	return nil
}

// CreateTransaction inserts a transaction and its splits atomically.
// Unbalanced value legs are rejected; posted splits are never
// modified afterwards.
func (s *Store) CreateTransaction(ctx context.Context, txn model.Transaction) error {
	if len(txn.Splits) == 0 {
		return fmt.Errorf("transaction %s has no splits", txn.GUID)
	}
	sum := decimal.Zero
	for _, sp := range txn.Splits {
		sum = sum.Add(sp.Value())
	}
	if !sum.IsZero() {
		return fmt.Errorf("transaction %s does not balance: split values sum to %s", txn.GUID, sum)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (guid, currency_guid, post_date, description)
		 VALUES (?, ?, ?, ?)`,
		txn.GUID, txn.CurrencyGUID, txn.Date.Format(dateFormat), txn.Description); err != nil {
		return fmt.Errorf("inserting transaction: %w", err)
	}

	for _, sp := range txn.Splits {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO splits (guid, tx_guid, account_guid, value_num, value_denom,
			                     quantity_num, quantity_denom)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			sp.GUID, sp.TransactionGUID, sp.AccountGUID,
			sp.ValueNum, sp.ValueDenom, sp.QuantityNum, sp.QuantityDenom); err != nil {
			return fmt.Errorf("inserting split %s: %w", sp.GUID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
