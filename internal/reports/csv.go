package reports

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Header is the CSV header for exported balance reports.
const Header = "account,type,commodity,total,currency,converted"

const (
	numFields    = 6
	colAccount   = 0
	colType      = 1
	colCommodity = 2
	colTotal     = 3
	colCurrency  = 4
	colConverted = 5
)

// MarshalRow converts a report row to a CSV row.
func MarshalRow(r Row) []string {
	row := make([]string, numFields)
	row[colAccount] = r.Account.Path
	row[colType] = string(r.Account.Type)
	row[colCommodity] = r.Commodity.Mnemonic
	row[colTotal] = r.Total.Amount().String()
	row[colCurrency] = r.Converted.Currency()
	row[colConverted] = r.Converted.Amount().String()
	return row
}

// WriteCSV writes a balance report (header included).
func WriteCSV(w io.Writer, report *BalanceReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, r := range report.Rows {
		if err := cw.Write(MarshalRow(r)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
