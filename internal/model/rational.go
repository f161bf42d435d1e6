package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Rational converts a decimal into the num/denom pair stored on
// splits and prices. Fails when either side overflows int64.
func Rational(d decimal.Decimal) (num, denom int64, err error) {
	rat := d.Rat()
	if !rat.Num().IsInt64() || !rat.Denom().IsInt64() {
		return 0, 0, fmt.Errorf("amount %s does not fit a rational", d)
	}
	return rat.Num().Int64(), rat.Denom().Int64(), nil
}
