package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is a historical quote: one unit of the commodity was worth
// ValueNum/ValueDenom units of the currency on Date. Immutable once
// recorded; newer quotes are added alongside, never in place.
type Price struct {
	GUID          string
	CommodityGUID string
	CurrencyGUID  string
	Date          time.Time
	ValueNum      int64
	ValueDenom    int64
	Source        string
}

// Rate returns the quoted exchange rate as a decimal.
func (p Price) Rate() decimal.Decimal {
	return ratio(p.ValueNum, p.ValueDenom)
}
