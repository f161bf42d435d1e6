package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/tally-dev/tally/internal/book"
	"github.com/tally-dev/tally/internal/model"
)

// dateFormat is how dates are stored in the database.
const dateFormat = "2006-01-02"

// LoadBook reads the whole database into an in-memory book snapshot.
func (s *Store) LoadBook(ctx context.Context) (*book.Book, error) {
	commodities, err := s.loadCommodities(ctx)
	if err != nil {
		return nil, err
	}
	accounts, err := s.loadAccounts(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := s.loadTransactions(ctx)
	if err != nil {
		return nil, err
	}
	prices, err := s.loadPrices(ctx)
	if err != nil {
		return nil, err
	}

	b, err := book.New(commodities, accounts, transactions, prices)
	if err != nil {
		return nil, fmt.Errorf("assembling book: %w", err)
	}
	return b, nil
}

func (s *Store) loadCommodities(ctx context.Context) ([]model.Commodity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, namespace, mnemonic, fullname FROM commodities`)
	if err != nil {
		return nil, fmt.Errorf("querying commodities: %w", err)
	}
	defer rows.Close()

	var out []model.Commodity
	for rows.Next() {
		var c model.Commodity
		if err := rows.Scan(&c.GUID, &c.Namespace, &c.Mnemonic, &c.FullName); err != nil {
			return nil, fmt.Errorf("scanning commodity: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (s *Store) loadAccounts(ctx context.Context) ([]model.Account, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, name, account_type, COALESCE(commodity_guid, ''),
		        COALESCE(parent_guid, ''), code, description, hidden, placeholder
		 FROM accounts`)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var out []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.GUID, &a.Name, &a.Type, &a.CommodityGUID,
			&a.ParentGUID, &a.Code, &a.Description, &a.Hidden, &a.Placeholder); err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) loadTransactions(ctx context.Context) ([]model.Transaction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, currency_guid, post_date, description FROM transactions`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	defer rows.Close()

	byGUID := make(map[string]*model.Transaction)
	var order []string
	for rows.Next() {
		var tx model.Transaction
		var date string
		if err := rows.Scan(&tx.GUID, &tx.CurrencyGUID, &date, &tx.Description); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		tx.Date, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parsing transaction date %q: %w", date, err)
		}
		byGUID[tx.GUID] = &tx
		order = append(order, tx.GUID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.attachSplits(ctx, byGUID); err != nil {
		return nil, err
	}

	out := make([]model.Transaction, 0, len(order))
	for _, guid := range order {
		out = append(out, *byGUID[guid])
	}
	return out, nil
}

func (s *Store) attachSplits(ctx context.Context, txs map[string]*model.Transaction) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, tx_guid, account_guid, value_num, value_denom,
		        quantity_num, quantity_denom
		 FROM splits`)
	if err != nil {
		return fmt.Errorf("querying splits: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var sp model.Split
		if err := rows.Scan(&sp.GUID, &sp.TransactionGUID, &sp.AccountGUID,
			&sp.ValueNum, &sp.ValueDenom, &sp.QuantityNum, &sp.QuantityDenom); err != nil {
			return fmt.Errorf("scanning split: %w", err)
		}
		tx, ok := txs[sp.TransactionGUID]
		if !ok {
			return fmt.Errorf("split %s references unknown transaction %s", sp.GUID, sp.TransactionGUID)
		}
		tx.Splits = append(tx.Splits, sp)
	}
	return rows.Err()
}

func (s *Store) loadPrices(ctx context.Context) ([]model.Price, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT guid, commodity_guid, currency_guid, date, value_num, value_denom, source
		 FROM prices`)
	if err != nil {
		return nil, fmt.Errorf("querying prices: %w", err)
	}
	defer rows.Close()

	var out []model.Price
	for rows.Next() {
		var p model.Price
		var date string
		if err := rows.Scan(&p.GUID, &p.CommodityGUID, &p.CurrencyGUID, &date,
			&p.ValueNum, &p.ValueDenom, &p.Source); err != nil {
			return nil, fmt.Errorf("scanning price: %w", err)
		}
		p.Date, err = time.Parse(dateFormat, date)
		if err != nil {
			return nil, fmt.Errorf("parsing price date %q: %w", date, err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
