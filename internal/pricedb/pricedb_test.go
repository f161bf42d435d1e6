package pricedb

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

var (
	usd = model.Commodity{GUID: "usd-guid", Namespace: model.NamespaceCurrency, Mnemonic: "USD"}
	eur = model.Commodity{GUID: "eur-guid", Namespace: model.NamespaceCurrency, Mnemonic: "EUR"}
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// quote builds a price of rate num/denom for one unit of from in to.
func quote(from, to model.Commodity, day time.Time, num, denom int64) model.Price {
	return model.Price{
		GUID:          "p-" + day.Format("20060102"),
		CommodityGUID: from.GUID,
		CurrencyGUID:  to.GUID,
		Date:          day,
		ValueNum:      num,
		ValueDenom:    denom,
	}
}

func TestConvert_SameCommodity(t *testing.T) {
	db := New(nil)
	m := money.New(dec("42"), "USD")
	got, err := db.Convert(m, usd, usd, time.Time{})
	require.NoError(t, err)
	assert.True(t, got.Equal(m))
}

func TestConvert_DirectQuote(t *testing.T) {
	db := New([]model.Price{quote(usd, eur, date(2023, 1, 1), 9, 10)})
	got, err := db.Convert(money.New(dec("100"), "USD"), usd, eur, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency())
	assert.True(t, got.Amount().Equal(dec("90")))
}

func TestConvert_ReciprocalFallback(t *testing.T) {
	// Only the inverse pair is quoted: 1 EUR = 1.25 USD.
	db := New([]model.Price{quote(eur, usd, date(2023, 1, 1), 5, 4)})
	got, err := db.Convert(money.New(dec("100"), "USD"), usd, eur, time.Time{})
	require.NoError(t, err)
	assert.True(t, got.Amount().Equal(dec("80")))
}

func TestConvert_NoPrice(t *testing.T) {
	db := New(nil)
	_, err := db.Convert(money.New(dec("1"), "USD"), usd, eur, time.Time{})
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestRateAsOf_PicksLatestAtOrBefore(t *testing.T) {
	db := New([]model.Price{
		quote(usd, eur, date(2023, 6, 1), 95, 100),
		quote(usd, eur, date(2023, 1, 1), 9, 10),
	})

	rate, err := db.RateAsOf(usd.GUID, eur.GUID, date(2023, 5, 31))
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("0.9")))

	// A quote dated exactly asOf counts.
	rate, err = db.RateAsOf(usd.GUID, eur.GUID, date(2023, 6, 1))
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("0.95")))
}

func TestRateAsOf_ZeroTimeMeansLatest(t *testing.T) {
	db := New([]model.Price{
		quote(usd, eur, date(2023, 1, 1), 9, 10),
		quote(usd, eur, date(2023, 6, 1), 95, 100),
	})
	rate, err := db.RateAsOf(usd.GUID, eur.GUID, time.Time{})
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("0.95")))
}

func TestRateAsOf_NothingBeforeDate(t *testing.T) {
	db := New([]model.Price{quote(usd, eur, date(2023, 6, 1), 95, 100)})
	_, err := db.RateAsOf(usd.GUID, eur.GUID, date(2023, 1, 1))
	assert.ErrorIs(t, err, ErrNoPrice)
}

func TestRateAsOf_SameCommodityIsOne(t *testing.T) {
	db := New(nil)
	rate, err := db.RateAsOf(usd.GUID, usd.GUID, time.Time{})
	require.NoError(t, err)
	assert.True(t, rate.Equal(dec("1")))
}

func TestConvert_InverseConsistent(t *testing.T) {
	day := date(2023, 1, 1)
	db := New([]model.Price{quote(usd, eur, day, 85, 100)})

	start := money.New(dec("100"), "USD")
	there, err := db.Convert(start, usd, eur, day)
	require.NoError(t, err)
	back, err := db.Convert(there, eur, usd, day)
	require.NoError(t, err)

	diff := back.Amount().Sub(start.Amount()).Abs()
	assert.True(t, diff.LessThan(dec("0.000001")), "round trip drifted by %s", diff)
}

func TestNew_SkipsZeroRates(t *testing.T) {
	db := New([]model.Price{quote(usd, eur, date(2023, 1, 1), 0, 100)})
	_, err := db.RateAsOf(usd.GUID, eur.GUID, time.Time{})
	assert.ErrorIs(t, err, ErrNoPrice)
}
