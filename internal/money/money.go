// Package money provides an immutable fixed-currency monetary amount
// with exact decimal arithmetic and locale-aware formatting.
package money

import (
	"errors"
	"fmt"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrCurrencyMismatch is returned by arithmetic between two Money
// values of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// subUnitDigits is the fraction rendered for non-zero amounts smaller
// than the currency's smallest unit, so tiny rates stay legible
// instead of rounding to zero.
const subUnitDigits = 6

// Money is an immutable amount denominated in a single currency.
// Arithmetic returns new values; the zero Money is zero of no
// currency and cannot be combined with denominated values.
type Money struct {
	amount decimal.Decimal
	code   string
}

// New returns a Money of the given amount and currency code.
func New(amount decimal.Decimal, code string) Money {
	return Money{amount: amount, code: code}
}

// FromFloat returns a Money from a float amount.
func FromFloat(amount float64, code string) Money {
	return Money{amount: decimal.NewFromFloat(amount), code: code}
}

// Zero returns a zero Money in the given currency.
func Zero(code string) Money {
	return Money{code: code}
}

// Currency returns the currency code.
func (m Money) Currency() string { return m.code }

// Amount returns the raw decimal amount.
func (m Money) Amount() decimal.Decimal { return m.amount }

// InexactFloat64 returns the amount as a float64, losing exactness.
func (m Money) InexactFloat64() float64 { return m.amount.InexactFloat64() }

// Add returns m + n, or ErrCurrencyMismatch when the codes differ.
func (m Money) Add(n Money) (Money, error) {
	if m.code != n.code {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.code, n.code)
	}
	return Money{amount: m.amount.Add(n.amount), code: m.code}, nil
}

// Sub returns m - n, or ErrCurrencyMismatch when the codes differ.
func (m Money) Sub(n Money) (Money, error) {
	if m.code != n.code {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.code, n.code)
	}
	return Money{amount: m.amount.Sub(n.amount), code: m.code}, nil
}

// Mul returns the amount scaled by the given factor, same currency.
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), code: m.code}
}

// Neg returns the amount with its sign flipped.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), code: m.code}
}

// Abs returns the non-negative magnitude of the amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), code: m.code}
}

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

// Equal reports whether two values have the same amount and currency.
func (m Money) Equal(n Money) bool {
	return m.code == n.code && m.amount.Equal(n.amount)
}

// currency resolves the go-money currency record for the code.
// Unregistered codes (stock tickers and the like) get go-money's
// default record: two fraction digits, the code as its own symbol.
func (m Money) currency() *gomoney.Currency {
	return gomoney.New(0, m.code).Currency()
}

// digits returns the fraction to render: the currency's natural
// fraction, widened for sub-unit amounts.
func (m Money) digits() int32 {
	frac := int32(m.currency().Fraction)
	if !m.amount.IsZero() && m.amount.Abs().LessThan(decimal.New(1, -frac)) {
		return subUnitDigits
	}
	return frac
}

// String renders the amount with the currency's symbol, separators
// and fraction, e.g. "€100.00" or "$0.000058". Unregistered codes
// (stock tickers) render as "10.00 GOOG": go-money's default template
// glues the code onto the amount, so a space is inserted.
func (m Money) String() string {
	cur := m.currency()
	digits := m.digits()
	template := cur.Template
	if gomoney.GetCurrency(m.code) == nil {
		template = "1 $"
	}
	f := gomoney.NewFormatter(int(digits), cur.Decimal, cur.Thousand, cur.Grapheme, template)
	return f.Format(m.amount.Shift(digits).Round(0).IntPart())
}
