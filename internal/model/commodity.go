package model

// Namespace groups commodities by what kind of thing they trade as.
type Namespace string

const (
	NamespaceCurrency Namespace = "CURRENCY"
	NamespaceStock    Namespace = "STOCK"
	NamespaceFund     Namespace = "FUND"
)

// Commodity is any tradable unit tracked by a book: a currency or a
// non-currency asset such as a stock or mutual fund.
type Commodity struct {
	GUID      string
	Namespace Namespace
	Mnemonic  string // short code, e.g. "EUR" or "GOOG"
	FullName  string
}

// IsCurrency reports whether the commodity is a plain currency.
func (c Commodity) IsCurrency() bool {
	return c.Namespace == NamespaceCurrency
}
