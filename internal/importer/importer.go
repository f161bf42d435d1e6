// Package importer parses external price-quote files into raw quote
// records. Resolving mnemonics against a book and persisting happens
// in the command layer.
package importer

import (
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Quote is one parsed price row, still keyed by mnemonic.
type Quote struct {
	Date      time.Time
	Commodity string // mnemonic, e.g. "GOOG" or "USD"
	Currency  string // mnemonic of the quoting currency
	Value     decimal.Decimal
	Source    string
}

// Parser converts a quote file into Quotes.
type Parser interface {
	Parse(r io.Reader) ([]Quote, error)
	Format() string
}

// Registry holds named parsers.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate format.
func (r *Registry) Register(p Parser) {
	key := strings.ToLower(p.Format())
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser format: " + key)
	}
	r.parsers[key] = p
}

// Get returns the parser for format, or nil.
func (r *Registry) Get(format string) Parser {
	return r.parsers[strings.ToLower(format)]
}

// Formats returns the registered format names.
func (r *Registry) Formats() []string {
	out := make([]string, 0, len(r.parsers))
	for k := range r.parsers {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&QuotesParser{})
	return r
}
