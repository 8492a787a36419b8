package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "products.xlsx")

	headers := []string{"ID", "Name", "Stock"}
	rows := [][]string{
		{"1", "Gin", "5"},
		{"2", "Tonic Water", "48"},
	}
	require.NoError(t, WriteXLSX(path, "Products", headers, rows))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Products", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Name", name)

	gin, err := f.GetCellValue("Products", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Gin", gin)

	stock, err := f.GetCellValue("Products", "C3")
	require.NoError(t, err)
	assert.Equal(t, "48", stock)
}

func TestWriteXLSX_EmptyRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, "Empty", []string{"ID"}, nil))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Empty", "A1")
	require.NoError(t, err)
	assert.Equal(t, "ID", header)
}
