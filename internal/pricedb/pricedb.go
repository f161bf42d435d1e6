// Package pricedb indexes historical price quotes and converts
// monetary amounts between commodities as of a date.
package pricedb

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

// ErrNoPrice is returned when no quote exists for a commodity pair as
// of the requested date, in either direction.
var ErrNoPrice = errors.New("no price available")

type pair struct {
	from string
	to   string
}

// history is a chronological series of rates for one pair. Dates and
// rates are parallel slices kept sorted by date.
type history struct {
	dates []time.Time
	rates []decimal.Decimal
}

// rateAsOf returns the latest rate dated at-or-before asOf, or the
// latest overall when asOf is the zero time.
func (h *history) rateAsOf(asOf time.Time) (decimal.Decimal, bool) {
	if len(h.dates) == 0 {
		return decimal.Zero, false
	}
	if asOf.IsZero() {
		return h.rates[len(h.rates)-1], true
	}
	// First index strictly after asOf; the quote we want sits just
	// before it.
	i := sort.Search(len(h.dates), func(i int) bool {
		return h.dates[i].After(asOf)
	})
	if i == 0 {
		return decimal.Zero, false
	}
	return h.rates[i-1], true
}

// DB is an in-memory quote index keyed by ordered commodity pair.
// It is built once from a loaded price set and never mutated.
type DB struct {
	quotes map[pair]*history
}

// New indexes the given quotes. Quotes with a zero rate are skipped.
func New(prices []model.Price) *DB {
	db := &DB{quotes: make(map[pair]*history)}
	for _, p := range prices {
		rate := p.Rate()
		if rate.IsZero() {
			continue
		}
		k := pair{from: p.CommodityGUID, to: p.CurrencyGUID}
		h, ok := db.quotes[k]
		if !ok {
			h = &history{}
			db.quotes[k] = h
		}
		h.dates = append(h.dates, p.Date)
		h.rates = append(h.rates, rate)
	}
	for _, h := range db.quotes {
		sort.Sort(chronological{h})
	}
	return db
}

type chronological struct{ *history }

func (c chronological) Len() int           { return len(c.dates) }
func (c chronological) Less(i, j int) bool { return c.dates[i].Before(c.dates[j]) }
func (c chronological) Swap(i, j int) {
	c.dates[i], c.dates[j] = c.dates[j], c.dates[i]
	c.rates[i], c.rates[j] = c.rates[j], c.rates[i]
}

// RateAsOf returns the exchange rate from one commodity to another as
// of the given date (zero time means latest overall). A direct quote
// wins; failing that the reciprocal of an inverse quote is used.
func (db *DB) RateAsOf(fromGUID, toGUID string, asOf time.Time) (decimal.Decimal, error) {
	if fromGUID == toGUID {
		return decimal.NewFromInt(1), nil
	}
	if h, ok := db.quotes[pair{from: fromGUID, to: toGUID}]; ok {
		if rate, ok := h.rateAsOf(asOf); ok {
			return rate, nil
		}
	}
	if h, ok := db.quotes[pair{from: toGUID, to: fromGUID}]; ok {
		if rate, ok := h.rateAsOf(asOf); ok {
			return decimal.NewFromInt(1).Div(rate), nil
		}
	}
	return decimal.Zero, fmt.Errorf("%w: %s -> %s", ErrNoPrice, fromGUID, toGUID)
}

// Convert re-denominates an amount from one commodity into another
// using the applicable quote. Converting a commodity to itself
// returns the amount unchanged for any quote set. Pure; no I/O.
func (db *DB) Convert(m money.Money, from, to model.Commodity, asOf time.Time) (money.Money, error) {
	if from.GUID == to.GUID {
		return m, nil
	}
	rate, err := db.RateAsOf(from.GUID, to.GUID, asOf)
	if err != nil {
		return money.Money{}, fmt.Errorf("%w: %s -> %s", ErrNoPrice, from.Mnemonic, to.Mnemonic)
	}
	return money.New(m.Amount().Mul(rate), to.Mnemonic), nil
}
