package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAdd_ZeroIdentity(t *testing.T) {
	m := New(dec("123.45"), "EUR")
	sum, err := m.Add(Zero("EUR"))
	require.NoError(t, err)
	assert.True(t, sum.Equal(m))
	assert.Equal(t, 123.45, sum.InexactFloat64())
}

func TestAdd_CurrencyMismatch(t *testing.T) {
	m := New(dec("10"), "EUR")
	_, err := m.Add(New(dec("10"), "USD"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestSub_CurrencyMismatch(t *testing.T) {
	m := New(dec("10"), "EUR")
	_, err := m.Sub(New(dec("3"), "GBP"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)
}

func TestMul(t *testing.T) {
	m := New(dec("10"), "EUR").Mul(dec("2.5"))
	assert.True(t, m.Amount().Equal(dec("25")))
	assert.Equal(t, "EUR", m.Currency())
}

func TestNegAbs(t *testing.T) {
	m := New(dec("-50"), "EUR")
	assert.True(t, m.IsNegative())
	assert.True(t, m.Abs().Amount().Equal(dec("50")))
	assert.True(t, m.Neg().IsPositive())
	assert.False(t, m.Abs().IsNegative())
}

func TestString_EUR(t *testing.T) {
	assert.Equal(t, "€100.00", New(dec("100"), "EUR").String())
}

func TestString_Negative(t *testing.T) {
	assert.Equal(t, "-$12.50", New(dec("-12.5"), "USD").String())
}

func TestString_NoFractionCurrency(t *testing.T) {
	assert.Equal(t, "¥100", New(dec("100"), "JPY").String())
}

func TestString_SubUnitAmount(t *testing.T) {
	// Amounts below the smallest unit widen to six digits instead of
	// rounding to zero.
	assert.Equal(t, "$0.000058", New(dec("0.0000581"), "USD").String())
}

func TestString_ZeroStaysAtNaturalFraction(t *testing.T) {
	assert.Equal(t, "$0.00", Zero("USD").String())
}

func TestString_UnregisteredCode(t *testing.T) {
	// Tickers fall back to go-money's default record (two digits,
	// code as symbol) with a space separating amount and code.
	assert.Equal(t, "10.00 GOOG", New(dec("10"), "GOOG").String())
	assert.Equal(t, "-2.50 GOOG", New(dec("-2.5"), "GOOG").String())
}

func TestString_Thousands(t *testing.T) {
	assert.Equal(t, "€1,234,567.89", New(dec("1234567.89"), "EUR").String())
}
