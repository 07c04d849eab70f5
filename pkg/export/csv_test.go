package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVEmptyTableReturnsNil(t *testing.T) {
	out := CSV(Table{Headers: []string{"A", "B"}, Rows: nil})
	assert.Nil(t, out)
}

func TestCSVHeaderAndRowOrder(t *testing.T) {
	out := CSV(Table{
		Headers: []string{"Produce Name", "Type", "Branch"},
		Rows: [][]string{
			{"Super Beans", "Beans", "Maganjo"},
			{"Hybrid Maize", "Grain Maize", "Matugga"},
		},
	})
	require.NotNil(t, out)

	lines := strings.Split(string(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Produce Name,Type,Branch", lines[0])
	assert.Equal(t, "Super Beans,Beans,Maganjo", lines[1])
	assert.Equal(t, "Hybrid Maize,Grain Maize,Matugga", lines[2])
}

func TestCSVQuotesOnlyCommaFields(t *testing.T) {
	out := CSV(Table{
		Headers: []string{"Buyer", "Location"},
		Rows: [][]string{
			{"Kampala Traders, Ltd", "Nakasero"},
		},
	})
	require.NotNil(t, out)

	lines := strings.Split(string(out), "\n")
	assert.Equal(t, `"Kampala Traders, Ltd",Nakasero`, lines[1])
}

func TestCSVDoesNotEscapeEmbeddedQuotes(t *testing.T) {
	// Embedded quotes pass through untouched, even inside a quoted field.
	out := CSV(Table{
		Headers: []string{"Dealer"},
		Rows: [][]string{
			{`Okello "Junior", Arua`},
		},
	})
	require.NotNil(t, out)

	lines := strings.Split(string(out), "\n")
	assert.Equal(t, `"Okello "Junior", Arua"`, lines[1])
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 31, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "karibu_inventory_report_2024-01-31.csv", Filename("inventory", "csv", now))
	assert.Equal(t, "karibu_credit_sales_report_2024-01-31.pdf", Filename("credit_sales", "pdf", now))
	assert.Equal(t, "karibu_complete_report_2024-01-31.pdf", Filename("complete", "pdf", now))
}
