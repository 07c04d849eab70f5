package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testGeneratedAt = time.Date(2024, 1, 31, 10, 30, 0, 0, time.UTC)

func TestPDFProducesDocument(t *testing.T) {
	table := Table{
		Headers: []string{"Produce Name", "Type", "Tonnage (Kg)"},
		Rows: [][]string{
			{"Super Beans", "Beans", "1200"},
			{"Hybrid Maize", "Grain Maize", "2500"},
		},
	}

	out, err := PDF(table, PDFOptions{
		OrgName:     "Karibu Groceries LTD",
		Title:       "Inventory Report",
		GeneratedAt: testGeneratedAt,
		Summary:     []string{"Total Items: 2"},
		HeadFill:    ColorGreen,
		AltRowFill:  ColorGreenTint,
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFEmptyTableStillSucceeds(t *testing.T) {
	out, err := PDF(Table{Headers: []string{"A", "B"}}, PDFOptions{
		OrgName:     "Karibu Groceries LTD",
		Title:       "Sales Report",
		GeneratedAt: testGeneratedAt,
		HeadFill:    ColorGreen,
		AltRowFill:  ColorGreenTint,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestPDFLandscapeOrientation(t *testing.T) {
	out, err := PDF(Table{
		Headers: []string{"Buyer", "Amount Due"},
		Rows:    [][]string{{"Kampala Traders", "UGX 2,500,000"}},
	}, PDFOptions{
		OrgName:     "Karibu Groceries LTD",
		Title:       "Credit Sales Report",
		GeneratedAt: testGeneratedAt,
		Landscape:   true,
		HeadFill:    ColorEarth,
		AltRowFill:  ColorEarthTint,
	})
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(out[:4]))
}

func TestFullReportPDF(t *testing.T) {
	section := FullReportSection{
		Title:      "Inventory",
		TitleColor: ColorGreen,
		HeadFill:   ColorGreen,
		Table: Table{
			Headers: []string{"Produce Name", "Tonnage (Kg)"},
			Rows:    [][]string{{"Super Beans", "1200"}},
		},
	}

	out, err := FullReportPDF(FullReportOptions{
		OrgName:      "Karibu Groceries LTD",
		Title:        "Complete Business Report",
		GeneratedAt:  testGeneratedAt,
		SummaryTitle: "Executive Summary",
		SummaryLines: []string{"Total Stock: 7,650 Kg", "Total Revenue: UGX 956,500"},
		Sections:     []FullReportSection{section, section, section},
	})
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}
