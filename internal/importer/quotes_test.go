package importer

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotesParser_Parse(t *testing.T) {
	input := `date,commodity,currency,value,source
2023-01-15,GOOG,USD,91.13,user:price-editor
2023-02-01,USD,EUR,0.92,feed
`
	quotes, err := (&QuotesParser{}).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	assert.Equal(t, "GOOG", quotes[0].Commodity)
	assert.Equal(t, "USD", quotes[0].Currency)
	assert.Equal(t, "91.13", quotes[0].Value.String())
	assert.Equal(t, "user:price-editor", quotes[0].Source)
	assert.True(t, quotes[0].Date.Equal(time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)))

	assert.Equal(t, "0.92", quotes[1].Value.String())
}

func TestQuotesParser_HeaderOnly(t *testing.T) {
	quotes, err := (&QuotesParser{}).Parse(strings.NewReader("date,commodity,currency,value,source\n"))
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestQuotesParser_BadDate(t *testing.T) {
	input := "date,commodity,currency,value,source\n15/01/2023,GOOG,USD,91.13,feed\n"
	_, err := (&QuotesParser{}).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestQuotesParser_NonPositiveValue(t *testing.T) {
	input := "date,commodity,currency,value,source\n2023-01-15,GOOG,USD,0,feed\n"
	_, err := (&QuotesParser{}).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive")
}

func TestQuotesParser_WrongFieldCount(t *testing.T) {
	input := "date,commodity,currency,value,source\n2023-01-15,GOOG,USD\n"
	_, err := (&QuotesParser{}).Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestQuotesParser_MissingMnemonic(t *testing.T) {
	input := "date,commodity,currency,value,source\n2023-01-15, ,USD,91.13,feed\n"
	_, err := (&QuotesParser{}).Parse(strings.NewReader(input))
	assert.Error(t, err)
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("quotes"))
	assert.NotNil(t, r.Get("QUOTES"))
	assert.Nil(t, r.Get("nope"))
	assert.Contains(t, r.Formats(), "quotes")
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := DefaultRegistry()
	assert.Panics(t, func() { r.Register(&QuotesParser{}) })
}
