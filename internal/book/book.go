// Package book holds an in-memory snapshot of a ledger book: the
// account tree, commodities, transactions and prices, indexed by
// GUID. The snapshot is assembled once from pre-fetched records and
// read-only afterwards; nothing here loads data on demand.
package book

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

var (
	// ErrRootAccount is returned when a total is requested for the
	// synthetic ROOT account, which has no meaningful balance.
	ErrRootAccount = errors.New("root account has no total")
	// ErrUnknownAccount is returned for GUIDs not present in the book.
	ErrUnknownAccount = errors.New("unknown account")
	// ErrNoRoot is returned when the account set has no single root.
	ErrNoRoot = errors.New("book must have exactly one ROOT account")
)

// Book is an arena of ledger records. Accounts reference their parent
// and commodity by GUID; the arena resolves them, so the tree carries
// no object cycles.
type Book struct {
	accounts     map[string]model.Account
	children     map[string][]string
	byPath       map[string]string
	commodities  map[string]model.Commodity
	transactions map[string]model.Transaction
	splits       map[string][]model.Split
	prices       []model.Price
	rootGUID     string
}

// New assembles a book from pre-fetched records, indexes the tree and
// materializes account paths. It fails unless exactly one ROOT
// account without a parent exists.
func New(commodities []model.Commodity, accounts []model.Account, transactions []model.Transaction, prices []model.Price) (*Book, error) {
	b := &Book{
		accounts:     make(map[string]model.Account, len(accounts)),
		children:     make(map[string][]string),
		byPath:       make(map[string]string, len(accounts)),
		commodities:  make(map[string]model.Commodity, len(commodities)),
		transactions: make(map[string]model.Transaction, len(transactions)),
		splits:       make(map[string][]model.Split),
		prices:       prices,
	}

	for _, c := range commodities {
		b.commodities[c.GUID] = c
	}

	for _, a := range accounts {
		b.accounts[a.GUID] = a
		if a.ParentGUID != "" {
			b.children[a.ParentGUID] = append(b.children[a.ParentGUID], a.GUID)
		}
		if a.IsRoot() && a.ParentGUID == "" {
			if b.rootGUID != "" {
				return nil, fmt.Errorf("%w: found %s and %s", ErrNoRoot, b.rootGUID, a.GUID)
			}
			b.rootGUID = a.GUID
		}
	}
	if b.rootGUID == "" {
		return nil, ErrNoRoot
	}

	// Deterministic child order.
	for _, ids := range b.children {
		sort.Slice(ids, func(i, j int) bool {
			return b.accounts[ids[i]].Name < b.accounts[ids[j]].Name
		})
	}

	b.materializePaths(b.rootGUID, nil)

	for _, tx := range transactions {
		b.transactions[tx.GUID] = tx
		for _, s := range tx.Splits {
			b.splits[s.AccountGUID] = append(b.splits[s.AccountGUID], s)
		}
	}

	return b, nil
}

// materializePaths walks the tree from guid, writing each account's
// ancestor chain joined by ":". The root itself keeps an empty path.
func (b *Book) materializePaths(guid string, ancestors []string) {
	a := b.accounts[guid]
	if !a.IsRoot() {
		ancestors = append(ancestors, a.Name)
		a.Path = strings.Join(ancestors, ":")
		b.accounts[guid] = a
		b.byPath[a.Path] = guid
	}
	for _, child := range b.children[guid] {
		b.materializePaths(child, ancestors)
	}
}

// Root returns the book's ROOT account.
func (b *Book) Root() model.Account {
	return b.accounts[b.rootGUID]
}

// Account returns an account by GUID.
func (b *Book) Account(guid string) (model.Account, bool) {
	a, ok := b.accounts[guid]
	return a, ok
}

// AccountByPath returns an account by its materialized path, e.g.
// "Assets:Bank:Checking".
func (b *Book) AccountByPath(path string) (model.Account, bool) {
	guid, ok := b.byPath[path]
	if !ok {
		return model.Account{}, false
	}
	return b.accounts[guid], true
}

// Accounts returns all accounts sorted by path, root first.
func (b *Book) Accounts() []model.Account {
	out := make([]model.Account, 0, len(b.accounts))
	for _, a := range b.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].IsRoot() != out[j].IsRoot() {
			return out[i].IsRoot()
		}
		return out[i].Path < out[j].Path
	})
	return out
}

// Subtree returns the accounts under (and including) the account at
// the given path, by materialized-path prefix match.
func (b *Book) Subtree(path string) []model.Account {
	var out []model.Account
	for _, a := range b.Accounts() {
		if a.Path == path || strings.HasPrefix(a.Path, path+":") {
			out = append(out, a)
		}
	}
	return out
}

// Children returns the direct children of an account, ordered by name.
func (b *Book) Children(guid string) []model.Account {
	ids := b.children[guid]
	out := make([]model.Account, 0, len(ids))
	for _, id := range ids {
		out = append(out, b.accounts[id])
	}
	return out
}

// Commodity returns a commodity by GUID.
func (b *Book) Commodity(guid string) (model.Commodity, bool) {
	c, ok := b.commodities[guid]
	return c, ok
}

// CommodityByMnemonic returns the first commodity with the given
// short code.
func (b *Book) CommodityByMnemonic(mnemonic string) (model.Commodity, bool) {
	for _, c := range b.commodities {
		if c.Mnemonic == mnemonic {
			return c, true
		}
	}
	return model.Commodity{}, false
}

// Splits returns the splits referencing an account.
func (b *Book) Splits(accountGUID string) []model.Split {
	return b.splits[accountGUID]
}

// Transaction returns a transaction by GUID.
func (b *Book) Transaction(guid string) (model.Transaction, bool) {
	tx, ok := b.transactions[guid]
	return tx, ok
}

// Transactions returns all transactions sorted by date.
func (b *Book) Transactions() []model.Transaction {
	out := make([]model.Transaction, 0, len(b.transactions))
	for _, tx := range b.transactions {
		out = append(out, tx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

// Prices returns the book's price quotes.
func (b *Book) Prices() []model.Price {
	return b.prices
}

// Exists reports whether an account GUID is present in the book.
func (b *Book) Exists(guid string) bool {
	_, ok := b.accounts[guid]
	return ok
}

// Total folds an account's splits into its balance as of a cutoff.
//
// When asOf is non-zero only splits whose transaction date is
// strictly before it count. Each split's rational quantity is summed
// in the account's commodity, and a negative net is returned as its
// positive magnitude; callers track directionality separately.
// Recomputed from the full split set on every call.
func (b *Book) Total(accountGUID string, asOf time.Time) (money.Money, error) {
	a, ok := b.accounts[accountGUID]
	if !ok {
		return money.Money{}, fmt.Errorf("%w: %s", ErrUnknownAccount, accountGUID)
	}
	if a.IsRoot() {
		return money.Money{}, ErrRootAccount
	}

	commodity, ok := b.commodities[a.CommodityGUID]
	if !ok {
		return money.Money{}, fmt.Errorf("account %s: unknown commodity %s", a.Name, a.CommodityGUID)
	}

	total := money.Zero(commodity.Mnemonic)
	for _, s := range b.splits[accountGUID] {
		tx, ok := b.transactions[s.TransactionGUID]
		if !ok {
			return money.Money{}, fmt.Errorf("split %s: unknown transaction %s", s.GUID, s.TransactionGUID)
		}
		if !asOf.IsZero() && !tx.Date.Before(asOf) {
			continue
		}
		sum, err := total.Add(money.New(s.Quantity(), commodity.Mnemonic))
		if err != nil {
			return money.Money{}, err
		}
		total = sum
	}

	if total.IsNegative() {
		return total.Abs(), nil
	}
	return total, nil
}
