package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXEmptyTableReturnsNil(t *testing.T) {
	out, err := XLSX(Table{Headers: []string{"A"}}, "Inventory")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestXLSXRoundTrip(t *testing.T) {
	out, err := XLSX(Table{
		Headers: []string{"Produce Name", "Branch"},
		Rows: [][]string{
			{"Super Beans", "Maganjo"},
			{"Soybeans Premium", "Matugga"},
		},
	}, "Inventory")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Inventory")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Produce Name", "Branch"}, rows[0])
	assert.Equal(t, []string{"Soybeans Premium", "Matugga"}, rows[2])
}
