package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuotesParser parses the generic quotes CSV format:
// date,commodity,currency,value,source with an ISO date.
type QuotesParser struct{}

const (
	quotesDateFormat   = "2006-01-02"
	quotesNumFields    = 5
	quotesColDate      = 0
	quotesColCommodity = 1
	quotesColCurrency  = 2
	quotesColValue     = 3
	quotesColSource    = 4
)

// Format returns the parser name.
func (p *QuotesParser) Format() string { return "quotes" }

// Parse reads a quotes CSV and returns Quotes.
func (p *QuotesParser) Parse(r io.Reader) ([]Quote, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = quotesNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading quotes CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var quotes []Quote
	for i, rec := range records[1:] {
		q, err := parseQuoteRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

func parseQuoteRow(rec []string) (Quote, error) {
	date, err := time.Parse(quotesDateFormat, rec[quotesColDate])
	if err != nil {
		return Quote{}, fmt.Errorf("parsing date %q: %w", rec[quotesColDate], err)
	}

	value, err := decimal.NewFromString(rec[quotesColValue])
	if err != nil {
		return Quote{}, fmt.Errorf("parsing value %q: %w", rec[quotesColValue], err)
	}
	if !value.IsPositive() {
		return Quote{}, fmt.Errorf("value %s must be positive", value)
	}

	commodity := strings.TrimSpace(rec[quotesColCommodity])
	currency := strings.TrimSpace(rec[quotesColCurrency])
	if commodity == "" || currency == "" {
		return Quote{}, fmt.Errorf("commodity and currency are required")
	}

	return Quote{
		Date:      date,
		Commodity: commodity,
		Currency:  currency,
		Value:     value,
		Source:    rec[quotesColSource],
	}, nil
}
